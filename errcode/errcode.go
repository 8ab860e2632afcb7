package errcode

// Code is a stable error identifier used at bring-up and in logs.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	HALNotReady   Code = "hal_not_ready"
	Unsupported   Code = "unsupported"

	UnknownBus Code = "unknown_bus"
	UnknownPin Code = "unknown_pin"
	PinInUse   Code = "pin_in_use"

	Error Code = "error" // generic fallback
)

// E keeps an operation name, a message and a cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap returns an *E for op with code c and cause err.
func Wrap(c Code, op string, err error) error {
	return &E{C: c, Op: op, Err: err}
}

// New returns an *E for op with code c and a message.
func New(c Code, op, msg string) error {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
