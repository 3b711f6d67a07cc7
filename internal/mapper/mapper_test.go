package mapper

import (
	"errors"
	"testing"

	"gones/internal/cartdesc"
)

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x8000), Mapper: 99}
	_, err := New(desc)
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("New() error = %v, want wrapped ErrUnsupportedMapper", err)
	}
}

func TestNROMLinearAndMirroredPRG(t *testing.T) {
	// 16 KiB PRG mirrors to fill the 32 KiB CPU window.
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x4000), Mapper: 0}
	desc.PRGROM[0] = 0xAB
	desc.PRGROM[0x3FFF] = 0xCD
	m, err := New(desc)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.CPURead(0x8000); got != 0xAB {
		t.Errorf("CPURead(0x8000) = %#02x, want 0xAB", got)
	}
	if got := m.CPURead(0xC000); got != 0xAB {
		t.Errorf("CPURead(0xC000) = %#02x, want 0xAB (mirrored 16KiB bank)", got)
	}
	if got := m.CPURead(0xBFFF); got != 0xCD {
		t.Errorf("CPURead(0xBFFF) = %#02x, want 0xCD", got)
	}
}

// Scenario 5: MMC3 PRG banking.
func TestMMC3PRGBanking(t *testing.T) {
	prg := make([]uint8, 32*0x2000)
	for bank := 0; bank < 32; bank++ {
		for i := range prg[bank*0x2000 : (bank+1)*0x2000] {
			prg[bank*0x2000+i] = uint8(bank)
		}
	}
	desc := &cartdesc.Cartridge{PRGROM: prg, Mapper: 4}
	m, err := New(desc)
	if err != nil {
		t.Fatal(err)
	}

	if got := m.CPURead(0xC000); got != 30 {
		t.Errorf("CPURead(0xC000) = %d, want 30 (second-to-last bank fixed by default)", got)
	}
	if got := m.CPURead(0xE000); got != 31 {
		t.Errorf("CPURead(0xE000) = %d, want 31 (last bank always fixed)", got)
	}

	m.CPUWrite(0x8000, 0x06) // select register 6 (the $8000 PRG window)
	m.CPUWrite(0x8001, 5)
	if got := m.CPURead(0x8000); got != 5 {
		t.Errorf("CPURead(0x8000) = %d, want 5 after selecting bank 5", got)
	}

	m.CPUWrite(0x8000, 0x46) // PRG mode bit set: swap $8000/$C000 roles
	if got := m.CPURead(0x8000); got != 30 {
		t.Errorf("CPURead(0x8000) after PRG-mode swap = %d, want 30", got)
	}
	if got := m.CPURead(0xC000); got != 5 {
		t.Errorf("CPURead(0xC000) after PRG-mode swap = %d, want 5", got)
	}
}

func TestMMC3IRQCounter(t *testing.T) {
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x2000), Mapper: 4}
	m, err := New(desc)
	if err != nil {
		t.Fatal(err)
	}
	mmc3 := m.(*MMC3)

	const latch = 4
	mmc3.CPUWrite(0xC000, latch) // IRQ latch
	mmc3.CPUWrite(0xE001, 0)     // enable IRQ
	mmc3.CPUWrite(0xC001, 0)     // force reload on next clock

	for i := 0; i < latch; i++ {
		mmc3.ScanlineTick()
		if mmc3.IRQPending() {
			t.Fatalf("IRQ asserted early, after %d ticks", i+1)
		}
	}
	mmc3.ScanlineTick()
	if !mmc3.IRQPending() {
		t.Errorf("IRQ not asserted after latch+1 ticks from a reload event")
	}
}

// PPURead/PPUWrite must not clock the scanline IRQ counter themselves:
// only the PPU's own A12-edge detector drives ScanlineTick. Otherwise
// pattern-table fetches clock the counter a second time per edge and
// the IRQ fires at roughly half the configured scanline count.
func TestMMC3PPUAccessDoesNotSelfClockIRQ(t *testing.T) {
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x2000), Mapper: 4}
	m, err := New(desc)
	if err != nil {
		t.Fatal(err)
	}
	mmc3 := m.(*MMC3)

	mmc3.CPUWrite(0xC000, 1) // IRQ latch = 1
	mmc3.CPUWrite(0xE001, 0) // enable IRQ
	mmc3.CPUWrite(0xC001, 0) // force reload on next ScanlineTick

	for addr := uint16(0); addr < 0x2000; addr += 0x40 {
		mmc3.PPURead(addr)
		mmc3.PPUWrite(addr, 0)
	}
	if mmc3.IRQPending() {
		t.Error("PPURead/PPUWrite must not clock the IRQ counter; only ScanlineTick may")
	}

	mmc3.ScanlineTick() // reload: counter = latch (1)
	mmc3.ScanlineTick() // decrement to 0: IRQ asserts
	if !mmc3.IRQPending() {
		t.Error("ScanlineTick should still clock and assert the IRQ once latch+1 ticks have elapsed")
	}
}

func TestMMC1SerialShiftCommitsControl(t *testing.T) {
	desc := &cartdesc.Cartridge{PRGROM: make([]uint8, 0x4000), Mapper: 1}
	m, err := New(desc)
	if err != nil {
		t.Fatal(err)
	}
	mmc1 := m.(*MMC1)

	// Write 0b00011 into control across 5 single-bit writes, LSB first.
	bits := []uint8{1, 1, 0, 0, 0}
	for _, b := range bits {
		m.CPUWrite(0x8000, b)
	}
	if mmc1.control != 0x03 {
		t.Errorf("control = %#02x, want 0x03", mmc1.control)
	}
}
