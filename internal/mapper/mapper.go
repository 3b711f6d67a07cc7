// Package mapper implements cartridge bank-switching logic: NROM,
// MMC1, and MMC3.
package mapper

import (
	"errors"
	"fmt"

	"gones/internal/cartdesc"
)

// ErrUnsupportedMapper is wrapped into the error New returns when a
// cartridge names a mapper number this core does not implement.
var ErrUnsupportedMapper = errors.New("unsupported mapper")

// Mapper is the shared contract every cartridge bank-switcher
// satisfies. ScanlineTick and IRQPending are optional: a mapper that
// never drives an IRQ (NROM, MMC1) simply does not implement the
// interfaces below, and callers type-assert for them.
type Mapper interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, value uint8)
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, value uint8)
	MirrorMode() cartdesc.MirrorMode
}

// ScanlineTicker is implemented by mappers that drive a scanline IRQ
// counter off the PPU's pattern-table address bit 12 (MMC3).
type ScanlineTicker interface {
	ScanlineTick()
}

// IRQSource is implemented by mappers that can assert an IRQ (MMC3).
type IRQSource interface {
	IRQPending() bool
}

// StateSaver is implemented by every mapper in this package. SaveState
// returns a value of the mapper's own concrete state type (NROMState,
// MMC1State, or MMC3State); LoadState expects that same type back and
// panics on a mismatch, mirroring a programmer error rather than a
// recoverable one (state is never persisted across process boundaries,
// so the type is always known at the call site).
type StateSaver interface {
	SaveState() any
	LoadState(any)
}

// New constructs the mapper named by desc.Mapper, or fails with an
// error wrapping ErrUnsupportedMapper.
func New(desc *cartdesc.Cartridge) (Mapper, error) {
	switch desc.Mapper {
	case 0:
		return newNROM(desc), nil
	case 1:
		return newMMC1(desc), nil
	case 4:
		return newMMC3(desc), nil
	default:
		return nil, fmt.Errorf("mapper %d: %w", desc.Mapper, ErrUnsupportedMapper)
	}
}

// chrMemory returns the CHR-ROM slice, allocating CHR-RAM when the
// cartridge carries none.
func chrMemory(desc *cartdesc.Cartridge) []uint8 {
	if desc.CHRIsRAM || len(desc.CHRROM) == 0 {
		return make([]uint8, cartdesc.CHRRAMSize)
	}
	return desc.CHRROM
}
