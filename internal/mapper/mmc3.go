package mapper

import "gones/internal/cartdesc"

// MMC3 (mapper 4) switches four 8 KiB PRG windows and eight 1 KiB CHR
// windows through eight bank registers, and drives a scanline IRQ
// counter clocked by the PPU's A12 address-line edge.
type MMC3 struct {
	prgROM    []uint8
	chr       []uint8
	chrIsRAM  bool
	prgRAM    [0x2000]uint8
	ramEnable bool

	bankSelect uint8 // target register (0-7), PRG mode bit 6, CHR inversion bit 7
	regs       [8]uint8

	prgBanks8k int
	chrBanks1k int

	fourScreen bool
	mirror     cartdesc.MirrorMode

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnabled bool
	irqActive  bool
}

func newMMC3(desc *cartdesc.Cartridge) *MMC3 {
	chr := chrMemory(desc)
	fourScreen := desc.Mirror == cartdesc.MirrorFourScreen
	mirror := desc.Mirror
	if !fourScreen {
		// MMC3's own $A000 writes pick between horizontal and
		// vertical; start from the header's value.
		if mirror != cartdesc.MirrorHorizontal {
			mirror = cartdesc.MirrorVertical
		}
	}
	prgBanks8k := len(desc.PRGROM) / 0x2000
	if prgBanks8k == 0 {
		prgBanks8k = 1
	}
	chrBanks1k := len(chr) / 0x400
	if chrBanks1k == 0 {
		chrBanks1k = 1
	}
	return &MMC3{
		prgROM:     desc.PRGROM,
		chr:        chr,
		chrIsRAM:   desc.CHRIsRAM || len(desc.CHRROM) == 0,
		ramEnable:  true,
		prgBanks8k: prgBanks8k,
		chrBanks1k: chrBanks1k,
		fourScreen: fourScreen,
		mirror:     mirror,
	}
}

func (m *MMC3) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		return m.prgROM[m.prgOffset(addr)]
	case addr >= 0x6000:
		if !m.ramEnable {
			return 0
		}
		return m.prgRAM[addr-0x6000]
	default:
		return 0
	}
}

func (m *MMC3) prgOffset(addr uint16) int {
	secondLast := m.prgBanks8k - 2
	last := m.prgBanks8k - 1
	prgMode := (m.bankSelect >> 6) & 1

	var bank int
	switch {
	case addr < 0xA000: // $8000-$9FFF
		if prgMode == 0 {
			bank = int(m.regs[6]) % m.prgBanks8k
		} else {
			bank = secondLast
		}
	case addr < 0xC000: // $A000-$BFFF
		bank = int(m.regs[7]) % m.prgBanks8k
	case addr < 0xE000: // $C000-$DFFF
		if prgMode == 0 {
			bank = secondLast
		} else {
			bank = int(m.regs[6]) % m.prgBanks8k
		}
	default: // $E000-$FFFF
		bank = last
	}
	if bank < 0 {
		bank = 0
	}
	return bank*0x2000 + int(addr&0x1FFF)
}

func (m *MMC3) CPUWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		if m.ramEnable {
			m.prgRAM[addr-0x6000] = value
		}
		return
	}
	if addr < 0x8000 {
		return
	}

	even := addr&1 == 0
	switch {
	case addr < 0xA000: // $8000-$9FFF
		if even {
			m.bankSelect = value
		} else {
			m.regs[m.bankSelect&7] = value
		}
	case addr < 0xC000: // $A000-$BFFF
		if even {
			if !m.fourScreen {
				if value&1 == 0 {
					m.mirror = cartdesc.MirrorVertical
				} else {
					m.mirror = cartdesc.MirrorHorizontal
				}
			}
		} else {
			m.ramEnable = value&0x80 != 0
		}
	case addr < 0xE000: // $C000-$DFFF
		if even {
			m.irqLatch = value
		} else {
			m.irqReload = true
			m.irqCounter = 0
		}
	default: // $E000-$FFFF
		if even {
			m.irqEnabled = false
			m.irqActive = false
		} else {
			m.irqEnabled = true
		}
	}
}

func (m *MMC3) PPURead(addr uint16) uint8 {
	off := m.chrOffset(addr)
	if off < len(m.chr) {
		return m.chr[off]
	}
	return 0
}

func (m *MMC3) PPUWrite(addr uint16, value uint8) {
	if !m.chrIsRAM {
		return
	}
	off := m.chrOffset(addr)
	if off < len(m.chr) {
		m.chr[off] = value
	}
}

// chrOffset maps a PPU pattern-table address to a byte offset in the
// CHR array. With bank-select bit 7 clear, R0/R1 are 2 KiB windows at
// $0000/$0800 (the low bit of the register is forced per half) and
// R2..R5 are 1 KiB windows at $1000..$1C00; bit 7 swaps the two
// regions.
func (m *MMC3) chrOffset(addr uint16) int {
	within := int(addr & 0x03FF)
	slot := int(addr>>10) & 7
	if (m.bankSelect>>7)&1 != 0 {
		slot ^= 4
	}

	var bank int
	switch slot {
	case 0:
		bank = int(m.regs[0] & 0xFE)
	case 1:
		bank = int(m.regs[0] | 1)
	case 2:
		bank = int(m.regs[1] & 0xFE)
	case 3:
		bank = int(m.regs[1] | 1)
	case 4:
		bank = int(m.regs[2])
	case 5:
		bank = int(m.regs[3])
	case 6:
		bank = int(m.regs[4])
	default:
		bank = int(m.regs[5])
	}
	return (bank%m.chrBanks1k)*0x400 + within
}

// ScanlineTick is invoked by the PPU on every A12 0->1 transition.
func (m *MMC3) ScanlineTick() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}
	if m.irqCounter == 0 && m.irqEnabled {
		m.irqActive = true
	}
}

// IRQPending reports whether the MMC3 IRQ line is currently asserted.
func (m *MMC3) IRQPending() bool { return m.irqActive }

func (m *MMC3) MirrorMode() cartdesc.MirrorMode {
	if m.fourScreen {
		return cartdesc.MirrorFourScreen
	}
	return m.mirror
}
