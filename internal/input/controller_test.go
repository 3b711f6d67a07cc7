package input

import "testing"

func TestControllerShiftRegisterOrder(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonB, false)
	c.SetButton(ButtonSelect, true)
	c.SetButton(ButtonStart, false)
	c.SetButton(ButtonUp, true)
	c.SetButton(ButtonDown, true)
	c.SetButton(ButtonLeft, false)
	c.SetButton(ButtonRight, true)

	c.Write(1)
	c.Write(0)

	want := []uint8{1, 0, 1, 0, 1, 1, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Fatalf("read %d = %d, want %d", i, got, w)
		}
	}
	for i := 0; i < 4; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read after exhaustion = %d, want 1", got)
		}
	}
}

func TestControllerStrobeHighKeepsReloading(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.Write(1)

	if c.Read() != 1 {
		t.Error("expected A pressed while strobe high")
	}
	c.SetButton(ButtonA, false)
	if c.Read() != 0 {
		t.Error("expected live reload to reflect newly released A while strobe high")
	}
}
