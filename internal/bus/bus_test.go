package bus

import "testing"

type stubPPU struct {
	regs [8]uint8
	oam  [256]uint8
}

func (p *stubPPU) ReadRegister(addr uint16) uint8         { return p.regs[addr&7] }
func (p *stubPPU) WriteRegister(addr uint16, value uint8) { p.regs[addr&7] = value }
func (p *stubPPU) OAMDMAWrite(data *[256]uint8)           { p.oam = *data }

type stubAPU struct{ last uint16 }

func (a *stubAPU) WriteRegister(addr uint16, value uint8) { a.last = addr }
func (a *stubAPU) ReadStatus() uint8                      { return 0x55 }

type stubMapper struct{ reads, writes int }

func (m *stubMapper) CPURead(addr uint16) uint8         { m.reads++; return uint8(addr) }
func (m *stubMapper) CPUWrite(addr uint16, value uint8) { m.writes++ }

type stubController struct{ written uint8 }

func (c *stubController) Write(v uint8) { c.written = v }
func (c *stubController) Read() uint8   { return 0x42 }

func newTestBus() (*Bus, *stubPPU, *stubMapper) {
	b := New()
	ppu := &stubPPU{}
	mpr := &stubMapper{}
	b.SetPPU(ppu)
	b.SetAPU(&stubAPU{})
	b.SetMapper(mpr)
	b.SetController(0, &stubController{})
	b.SetController(1, &stubController{})
	return b, ppu, mpr
}

func TestRAMMirroring(t *testing.T) {
	b, _, _ := newTestBus()
	b.CPUWrite(0x0000, 0xAB)
	if got := b.CPURead(0x0800); got != 0xAB {
		t.Errorf("CPURead(0x0800) = %#02x, want 0xAB (mirrors 0x0000)", got)
	}
	if got := b.CPURead(0x1800); got != 0xAB {
		t.Errorf("CPURead(0x1800) = %#02x, want 0xAB (mirrors 0x0000)", got)
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	b, ppu, _ := newTestBus()
	b.CPUWrite(0x2000, 0x11)
	if ppu.regs[0] != 0x11 {
		t.Fatal("write to 0x2000 did not reach PPU register 0")
	}
	b.CPUWrite(0x2008, 0x22) // mirrors 0x2000
	if ppu.regs[0] != 0x22 {
		t.Errorf("write to 0x2008 should mirror register 0, got %#02x", ppu.regs[0])
	}
}

func TestMapperWindow(t *testing.T) {
	b, _, mpr := newTestBus()
	b.CPUWrite(0x8000, 0x01)
	b.CPURead(0x8000)
	if mpr.writes != 1 || mpr.reads != 1 {
		t.Errorf("mapper reads=%d writes=%d, want 1/1", mpr.reads, mpr.writes)
	}
}

func TestOAMDMAStalls513Cycles(t *testing.T) {
	b, ppu, _ := newTestBus()
	var stalled uint32
	b.SetDMAStallCallback(func(n uint32) { stalled = n })

	b.CPUWrite(0x0200, 0x7F) // seed a RAM byte the DMA will copy
	b.CPUWrite(0x4014, 0x02) // DMA from page 0x02 (RAM)

	if stalled != 513 {
		t.Errorf("DMA stall = %d cycles, want 513", stalled)
	}
	if ppu.oam[0] != 0x7F {
		t.Errorf("OAM[0] after DMA = %#02x, want 0x7F", ppu.oam[0])
	}
}
