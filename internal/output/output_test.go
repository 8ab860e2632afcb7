package output

import (
	"testing"

	"breather-go/types"
)

func TestMap_Breathe(t *testing.T) {
	cases := []struct {
		mode types.Mode
		r    uint8
		want Duties
	}{
		{types.ModeOn, 96, Duties{13, 13}},
		{types.ModeStartOnly, 200, Duties{0, 225}},
		{types.ModeStartOnly, 255, Duties{0, 252}},
		{types.ModeStartOnly, 0, Duties{0, 125}},
		{types.ModeOn, 255, Duties{29, 29}},
		{types.ModeOn, 0, Duties{4, 4}},
		{types.ModeOff, 0, Duties{4, 4}},
		{types.ModeOff, 255, Duties{4, 4}},
	}
	for _, c := range cases {
		if got := Map(types.VariantBreathe, c.mode, c.r); got != c.want {
			t.Errorf("Map(%v,%d)=%+v want %+v", c.mode, c.r, got, c.want)
		}
	}
}

func TestMap_WindowIgnoresMode(t *testing.T) {
	for _, m := range []types.Mode{types.ModeStartOnly, types.ModeOn, types.ModeOff} {
		for _, r := range []uint8{120, 183, 245} {
			if got := Map(types.VariantWindow, m, r); got != (Duties{r, r}) {
				t.Fatalf("Map(window,%v,%d)=%+v", m, r, got)
			}
		}
	}
}

// Every input maps without wrapping.
func TestMap_Total(t *testing.T) {
	for r := 0; r <= 255; r++ {
		d := Map(types.VariantBreathe, types.ModeStartOnly, uint8(r))
		if int(d.Ch2) != 125+r/2 {
			t.Fatalf("r=%d ch2=%d", r, d.Ch2)
		}
		d = Map(types.VariantBreathe, types.ModeOn, uint8(r))
		if int(d.Ch1) != 4+r/10 {
			t.Fatalf("r=%d ch1=%d", r, d.Ch1)
		}
	}
}
