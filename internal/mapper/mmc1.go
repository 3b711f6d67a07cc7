package mapper

import "gones/internal/cartdesc"

// MMC1 (mapper 1) feeds CPU writes to $8000-$FFFF through a 5-bit
// serial shift register; the fifth bit commits one of four internal
// registers selected by bits 13-14 of the write address.
type MMC1 struct {
	prgROM   []uint8
	chr      []uint8
	chrIsRAM bool
	prgRAM   [0x2000]uint8

	shift      uint8
	shiftCount uint8

	control  uint8
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8

	prgBanks16k uint32
	chrBanks4k  uint32
}

func newMMC1(desc *cartdesc.Cartridge) *MMC1 {
	chr := chrMemory(desc)
	m := &MMC1{
		prgROM:      desc.PRGROM,
		chr:         chr,
		chrIsRAM:    desc.CHRIsRAM || len(desc.CHRROM) == 0,
		control:     0x0C,
		prgBanks16k: uint32(len(desc.PRGROM) / 0x4000),
		chrBanks4k:  uint32(len(chr) / 0x1000),
	}
	if m.prgBanks16k == 0 {
		m.prgBanks16k = 1
	}
	if m.chrBanks4k == 0 {
		m.chrBanks4k = 1
	}
	return m
}

func (m *MMC1) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.prgROM[m.prgOffset(addr)]
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *MMC1) prgOffset(addr uint16) uint32 {
	mode := (m.control >> 2) & 3
	switch mode {
	case 0, 1:
		banks32k := m.prgBanks16k / 2
		if banks32k == 0 {
			banks32k = 1
		}
		bank := (uint32(m.prgBank&0x0E) >> 1) % banks32k
		return bank*0x8000 + uint32(addr&0x7FFF)
	case 2:
		if addr < 0xC000 {
			return uint32(addr & 0x3FFF)
		}
		bank := uint32(m.prgBank&0x0F) % m.prgBanks16k
		return bank*0x4000 + uint32(addr&0x3FFF)
	default: // 3
		if addr < 0xC000 {
			bank := uint32(m.prgBank&0x0F) % m.prgBanks16k
			return bank*0x4000 + uint32(addr&0x3FFF)
		}
		bank := m.prgBanks16k - 1
		return bank*0x4000 + uint32(addr&0x3FFF)
	}
}

func (m *MMC1) CPUWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = value
		return
	}
	if addr < 0x8000 {
		return
	}

	if value&0x80 != 0 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shift = (m.shift >> 1) | ((value & 1) << 4)
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	switch (addr >> 13) & 3 {
	case 0:
		m.control = m.shift
	case 1:
		m.chrBank0 = m.shift
	case 2:
		m.chrBank1 = m.shift
	case 3:
		m.prgBank = m.shift
	}
	m.shift = 0
	m.shiftCount = 0
}

func (m *MMC1) PPURead(addr uint16) uint8 {
	off := m.chrOffset(addr)
	if int(off) < len(m.chr) {
		return m.chr[off]
	}
	return 0
}

func (m *MMC1) PPUWrite(addr uint16, value uint8) {
	if !m.chrIsRAM {
		return
	}
	off := m.chrOffset(addr)
	if int(off) < len(m.chr) {
		m.chr[off] = value
	}
}

func (m *MMC1) chrOffset(addr uint16) uint32 {
	if (m.control>>4)&1 == 0 {
		// 8 KiB mode: low bit of chrBank0 is ignored.
		banks8k := m.chrBanks4k / 2
		if banks8k == 0 {
			banks8k = 1
		}
		bank := uint32(m.chrBank0>>1) % banks8k
		return bank*0x2000 + uint32(addr&0x1FFF)
	}
	// 4 KiB mode: two independently switched 4 KiB windows.
	if addr < 0x1000 {
		bank := uint32(m.chrBank0) % m.chrBanks4k
		return bank*0x1000 + uint32(addr&0x0FFF)
	}
	bank := uint32(m.chrBank1) % m.chrBanks4k
	return bank*0x1000 + uint32(addr&0x0FFF)
}

func (m *MMC1) MirrorMode() cartdesc.MirrorMode {
	switch m.control & 3 {
	case 0:
		return cartdesc.MirrorSingleScreenLower
	case 1:
		return cartdesc.MirrorSingleScreenUpper
	case 2:
		return cartdesc.MirrorVertical
	default:
		return cartdesc.MirrorHorizontal
	}
}
