//go:build linux && !rp2040 && !rp2350

package hostio

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLine struct {
	levels []bool
	fail   []bool
	i      int
}

func (s *scriptedLine) Read() (bool, error) {
	i := s.i
	s.i++
	if i < len(s.fail) && s.fail[i] {
		return false, errors.New("read /sys/class/gpio/gpio2/value: no such device")
	}
	return s.levels[i], nil
}

func TestGPIOInput_FailedReadHoldsLastLevel(t *testing.T) {
	line := &scriptedLine{
		levels: []bool{true, true, false, false, false},
		fail:   []bool{false, false, true, true, false},
	}
	in := newGPIOInput(line, 2, zerolog.Nop())

	assert.True(t, in.Read())
	assert.True(t, in.Read())
	require.NoError(t, in.Err())

	// The line dies while the button is held: no fake release.
	assert.True(t, in.Read())
	assert.True(t, in.Read())
	require.Error(t, in.Err())
	assert.Contains(t, in.Err().Error(), "gpio read 2")

	// Recovery does not clear the recorded fault.
	assert.False(t, in.Read())
	assert.Error(t, in.Err())
}
