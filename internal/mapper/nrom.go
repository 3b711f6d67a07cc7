package mapper

import "gones/internal/cartdesc"

// NROM (mapper 0) has no bank switching. PRG-ROM is 16KiB (mirrored
// to fill the 32KiB CPU window) or 32KiB (linear); CHR is 8KiB ROM or
// RAM.
type NROM struct {
	prgROM   []uint8
	chr      []uint8
	chrIsRAM bool
	prgRAM   [0x2000]uint8
	prgMask  uint32
	mirror   cartdesc.MirrorMode
}

func newNROM(desc *cartdesc.Cartridge) *NROM {
	return &NROM{
		prgROM:   desc.PRGROM,
		chr:      chrMemory(desc),
		chrIsRAM: desc.CHRIsRAM || len(desc.CHRROM) == 0,
		prgMask:  uint32(len(desc.PRGROM) - 1),
		mirror:   desc.Mirror,
	}
}

func (m *NROM) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		if len(m.prgROM) == 0 {
			return 0
		}
		return m.prgROM[uint32(addr-0x8000)&m.prgMask]
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *NROM) CPUWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = value
	}
}

func (m *NROM) PPURead(addr uint16) uint8 {
	if int(addr) < len(m.chr) {
		return m.chr[addr]
	}
	return 0
}

func (m *NROM) PPUWrite(addr uint16, value uint8) {
	if m.chrIsRAM && int(addr) < len(m.chr) {
		m.chr[addr] = value
	}
}

func (m *NROM) MirrorMode() cartdesc.MirrorMode { return m.mirror }
