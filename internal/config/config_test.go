package config

import (
	"testing"
	"time"

	"breather-go/errcode"
	"breather-go/types"
)

func TestDefaults(t *testing.T) {
	p := Breathe()
	if p.Step != 1 || p.Depth != 125 || p.Period != 10*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.InitialMode != types.ModeStartOnly {
		t.Fatalf("initial mode=%v", p.InitialMode)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Breathe invalid: %v", err)
	}
	if err := Window().Validate(); err != nil {
		t.Fatalf("Window invalid: %v", err)
	}
	if Window().Variant != types.VariantWindow {
		t.Fatalf("Window variant=%v", Window().Variant)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Profile)
	}{
		{"zero step", func(p *Profile) { p.Step = 0 }},
		{"zero period", func(p *Profile) { p.Period = 0 }},
		{"deep window", func(p *Profile) { p.Variant = types.VariantWindow; p.Depth = 250 }},
		{"empty window", func(p *Profile) { p.Variant = types.VariantWindow; p.Depth = 0 }},
		{"bad variant", func(p *Profile) { p.Variant = 9 }},
	}
	for _, c := range cases {
		p := Breathe()
		c.mut(&p)
		if err := p.Validate(); errcode.Of(err) != errcode.InvalidParams {
			t.Errorf("%s: got %v", c.name, err)
		}
	}
}

func TestProfileLookup(t *testing.T) {
	if p, ok := ProfileLookup("window"); !ok || p.Name != "window" {
		t.Fatalf("lookup window: %+v %v", p, ok)
	}
	if p, ok := ProfileLookup(""); !ok || p.Name != "breathe" {
		t.Fatalf("lookup default: %+v %v", p, ok)
	}
	if _, ok := ProfileLookup("strobe"); ok {
		t.Fatalf("lookup strobe should fail")
	}
}
