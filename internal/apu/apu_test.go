package apu

import "testing"

func TestWriteRegisterAcceptsChannelRange(t *testing.T) {
	a := New()
	a.WriteRegister(0x4000, 0x7F)
	a.WriteRegister(0x4013, 0x01)
	a.WriteRegister(0x4015, 0x0F)
	a.WriteRegister(0x4017, 0x40)

	if a.regs[0] != 0x7F {
		t.Errorf("regs[0] = %#02x, want 0x7F", a.regs[0])
	}
	if a.regs[0x17] != 0x40 {
		t.Errorf("regs[0x17] = %#02x, want 0x40", a.regs[0x17])
	}
}

func TestReadStatusIsDeterministicStub(t *testing.T) {
	a := New()
	if a.ReadStatus() != 0 {
		t.Errorf("ReadStatus() = %#02x, want 0 (stub reports all channels silent)", a.ReadStatus())
	}
}
