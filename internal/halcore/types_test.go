package halcore

import "testing"

type levelPin struct{ level bool }

func (p *levelPin) ConfigureInput(Pull) error { return nil }
func (p *levelPin) Get() bool                 { return p.level }
func (p *levelPin) Number() int               { return 2 }

func TestPolarity(t *testing.T) {
	p := &levelPin{level: true}
	if (ActiveLow{Pin: p}).Read() {
		t.Fatal("high level read wrong")
	}
	p.level = false
	if !(ActiveLow{Pin: p}).Read() {
		t.Fatal("low level read wrong")
	}
}
