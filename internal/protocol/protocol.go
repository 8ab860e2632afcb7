// Package protocol is the single-byte serial vocabulary: inbound mode
// commands and outbound button reports.
//
// Inbound bytes are read one per tick; anything outside the command set
// (including "nothing available") leaves the mode unchanged. Outbound
// reports are one tag byte followed by a line terminator, written without
// waiting for an acknowledgement.
package protocol

import "breather-go/types"

// Terminator ends every outbound report.
const Terminator = '\n'

// Inputs is the number of reporting buttons.
const Inputs = 2

// Vocabulary assigns letters to commands and reports.
type Vocabulary struct {
	Name string
	// Commands maps an inbound byte to the mode it selects.
	Commands map[byte]types.Mode
	// Reports[i] tags a confirmed release of input i.
	Reports [Inputs]byte
}

var (
	// Normalized is the default vocabulary. Report tags are digits so they
	// can never be confused with a command letter echoed back.
	Normalized = Vocabulary{
		Name: "normalized",
		Commands: map[byte]types.Mode{
			's': types.ModeStartOnly,
			'n': types.ModeOff,
			'b': types.ModeOn,
		},
		Reports: [Inputs]byte{'1', '2'},
	}

	// LegacyBreathe is the first prototype's vocabulary. Its report for
	// input 1 is also the "off" command letter.
	LegacyBreathe = Vocabulary{
		Name: "legacy-breathe",
		Commands: map[byte]types.Mode{
			's': types.ModeStartOnly,
			'n': types.ModeOff,
			'b': types.ModeOn,
		},
		Reports: [Inputs]byte{'n', 'p'},
	}

	// LegacyWindow is the second prototype's vocabulary. It had no inbound
	// commands.
	LegacyWindow = Vocabulary{
		Name:     "legacy-window",
		Commands: map[byte]types.Mode{},
		Reports:  [Inputs]byte{'n', 'b'},
	}
)

// ByName looks up one of the built-in vocabularies.
func ByName(name string) (Vocabulary, bool) {
	for _, v := range []Vocabulary{Normalized, LegacyBreathe, LegacyWindow} {
		if v.Name == name {
			return v, true
		}
	}
	return Vocabulary{}, false
}

// Decode maps one inbound byte to a mode command.
func (v Vocabulary) Decode(b byte) (types.Mode, bool) {
	m, ok := v.Commands[b]
	return m, ok
}

// Report returns the outbound frame for a confirmed release of input i
// (0-based), or nil when i is out of range.
func (v Vocabulary) Report(i int) []byte {
	if i < 0 || i >= Inputs {
		return nil
	}
	return []byte{v.Reports[i], Terminator}
}

// Collisions returns the report tags that are also command letters.
func (v Vocabulary) Collisions() []byte {
	var out []byte
	for _, r := range v.Reports {
		if _, ok := v.Commands[r]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Parser tracks the mode selected by the inbound byte stream. The last
// recognised command wins.
type Parser struct {
	vocab Vocabulary
	mode  types.Mode
}

// NewParser returns a parser starting in initial.
func NewParser(v Vocabulary, initial types.Mode) *Parser {
	return &Parser{vocab: v, mode: initial}
}

// Feed applies one inbound byte and reports whether it changed the mode.
func (p *Parser) Feed(b byte) (types.Mode, bool) {
	m, ok := p.vocab.Decode(b)
	if !ok || m == p.mode {
		return p.mode, false
	}
	p.mode = m
	return m, true
}

// Mode returns the current mode.
func (p *Parser) Mode() types.Mode { return p.mode }
