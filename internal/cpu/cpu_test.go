package cpu

import "testing"

// mockMemory is a flat 64 KiB address space with no mirroring, for
// exercising the CPU in isolation from the bus.
type mockMemory struct {
	data [0x10000]uint8
}

func (m *mockMemory) Read(addr uint16) uint8          { return m.data[addr] }
func (m *mockMemory) Write(addr uint16, value uint8)  { m.data[addr] = value }

func (m *mockMemory) setBytes(addr uint16, values ...uint8) {
	for i, v := range values {
		m.data[addr+uint16(i)] = v
	}
}

func newTestCPU() (*CPU, *mockMemory) {
	mem := &mockMemory{}
	c := New(mem)
	return c, mem
}

// Scenario 1: Reset leaves PC/SP/status/cycles at their documented
// power-up values.
func TestResetScenario(t *testing.T) {
	c, mem := newTestCPU()
	mem.setBytes(0xFFFC, 0x00, 0x80)
	c.Reset()

	if c.PC != 0x8000 {
		t.Errorf("PC = %#04x, want 0x8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Errorf("SP = %#02x, want 0xFD", c.SP)
	}
	if c.P != 0x24 {
		t.Errorf("P = %#02x, want 0x24", c.P)
	}
	if c.TotalCycles() != 7 {
		t.Errorf("TotalCycles() = %d, want 7", c.TotalCycles())
	}
}

// Scenario 2: JMP ($10FF) reproduces the page-wrap indirect bug.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, mem := newTestCPU()
	mem.setBytes(0xFFFC, 0x00, 0x80)
	c.Reset()

	mem.data[0x1000] = 0x12
	mem.data[0x10FF] = 0x34
	mem.data[0x1100] = 0x56
	mem.setBytes(0x8000, 0x6C, 0xFF, 0x10)

	c.Step()

	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234 (buggy fetch should read hi byte from 0x1000, not 0x1100)", c.PC)
	}
}

func TestADCOverflowAndCarry(t *testing.T) {
	cases := []struct {
		a, b, carryIn   uint8
		wantA           uint8
		wantC, wantV, wantZ, wantN bool
	}{
		{0x50, 0x10, 0, 0x60, false, false, false, false},
		{0x50, 0x50, 0, 0xA0, false, true, false, true},
		{0xD0, 0x90, 0, 0x60, true, true, false, false},
		{0xFF, 0x01, 0, 0x00, true, false, true, false},
		{0x00, 0x00, 1, 0x01, false, false, false, false},
	}
	for _, tc := range cases {
		c, mem := newTestCPU()
		mem.setBytes(0xFFFC, 0x00, 0x80)
		c.Reset()
		c.A = tc.a
		c.setFlag(FlagCarry, tc.carryIn != 0)
		mem.setBytes(0x8000, 0x69, tc.b) // ADC immediate
		c.Step()

		if c.A != tc.wantA {
			t.Errorf("ADC %#02x+%#02x: A = %#02x, want %#02x", tc.a, tc.b, c.A, tc.wantA)
		}
		if c.flag(FlagCarry) != tc.wantC {
			t.Errorf("ADC %#02x+%#02x: carry = %v, want %v", tc.a, tc.b, c.flag(FlagCarry), tc.wantC)
		}
		if c.flag(FlagOverflow) != tc.wantV {
			t.Errorf("ADC %#02x+%#02x: overflow = %v, want %v", tc.a, tc.b, c.flag(FlagOverflow), tc.wantV)
		}
		if c.flag(FlagZero) != tc.wantZ {
			t.Errorf("ADC %#02x+%#02x: zero = %v, want %v", tc.a, tc.b, c.flag(FlagZero), tc.wantZ)
		}
		if c.flag(FlagNegative) != tc.wantN {
			t.Errorf("ADC %#02x+%#02x: negative = %v, want %v", tc.a, tc.b, c.flag(FlagNegative), tc.wantN)
		}
	}
}

func TestBRKAndRTIPushPullBreakBits(t *testing.T) {
	c, mem := newTestCPU()
	mem.setBytes(0xFFFC, 0x00, 0x80)
	c.Reset()
	mem.setBytes(0xFFFE, 0x00, 0x90) // IRQ/BRK vector -> 0x9000
	c.P = 0x00
	mem.data[0x8000] = 0x00 // BRK

	c.Step()

	pushed := mem.data[0x0100+int(c.SP)+1]
	if pushed&0x10 == 0 || pushed&0x20 == 0 {
		t.Errorf("BRK pushed status %#02x, want bits 4 and 5 set", pushed)
	}
	if c.PC != 0x9000 {
		t.Errorf("PC after BRK = %#04x, want 0x9000", c.PC)
	}

	mem.setBytes(0x9000, 0x40) // RTI
	c.Step()
	if c.flag(FlagBreak) {
		t.Errorf("status after RTI has Break set, want clear")
	}
	if !c.flag(FlagUnused) {
		t.Errorf("status after RTI has Unused clear, want set")
	}
}

func TestNMITakesPriorityOverIRQ(t *testing.T) {
	c, mem := newTestCPU()
	mem.setBytes(0xFFFC, 0x00, 0x80)
	c.Reset()
	c.setFlag(FlagInterruptDisable, false)
	mem.setBytes(0xFFFA, 0x00, 0xA0) // NMI vector -> 0xA000
	mem.setBytes(0xFFFE, 0x00, 0xB0) // IRQ vector -> 0xB000

	c.TriggerIRQ()
	c.TriggerNMI()
	c.Step()

	if c.PC != 0xA000 {
		t.Errorf("PC = %#04x, want 0xA000 (NMI must be serviced ahead of a pending IRQ)", c.PC)
	}
}

func TestBranchTakenCyclesIncludePageCross(t *testing.T) {
	c, mem := newTestCPU()
	mem.setBytes(0xFFFC, 0x00, 0x80)
	c.Reset()
	c.setFlag(FlagZero, true)
	mem.data[0x80FD] = 0xF0 // BEQ at the end of the page
	mem.data[0x80FE] = 0x10 // offset +16, crosses into the next page

	c.PC = 0x80FD
	cycles := c.Step()
	if cycles != 4 {
		t.Errorf("BEQ taken+page-cross cycles = %d, want 4", cycles)
	}
}
