package platform

import (
	"breather-go/internal/halcore"
	"breather-go/internal/loop"
	"breather-go/internal/platform/boards"
)

// Hardware is the brought-up set of collaborators for one board.
type Hardware struct {
	Board   boards.Board
	Inputs  [2]halcore.DigitalInputReader
	Outputs [2]halcore.PwmOutput
	Serial  halcore.ByteChannel
}

// Deps wires the hardware into the control loop.
func (h *Hardware) Deps(obs loop.Observer) loop.Deps {
	return loop.Deps{
		Inputs:   h.Inputs,
		Outputs:  h.Outputs,
		Serial:   h.Serial,
		Observer: obs,
	}
}
