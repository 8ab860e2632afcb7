package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(PinInUse) != PinInUse {
		t.Fatalf("Of(Code) lost the code")
	}
	if Of(New(InvalidParams, "config", "step is zero")) != InvalidParams {
		t.Fatalf("Of(*E) lost the code")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("Of(foreign) should fall back to Error")
	}
}

func TestE_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("no such device")
	err := Wrap(UnknownBus, "serial", cause)
	if err.Error() != "serial: unknown_bus: no such device" {
		t.Fatalf("Error()=%q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatalf("Unwrap lost the cause")
	}
	if s := New(InvalidParams, "", "depth too large").Error(); s != "invalid_params: depth too large" {
		t.Fatalf("Error()=%q", s)
	}
}

func TestE_HaltLineKeepsCause(t *testing.T) {
	err := Wrap(UnknownBus, "uart0", errors.New("baud rate not supported"))
	line := string(Of(err)) + " " + err.Error()
	if line != "unknown_bus uart0: unknown_bus: baud rate not supported" {
		t.Fatalf("halt line=%q", line)
	}
}
