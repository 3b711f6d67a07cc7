package mapper

import "gones/internal/cartdesc"

// NROMState is the value SaveState/LoadState exchange for an *NROM.
// PRG/CHR ROM are immutable and not included; PRG RAM and CHR RAM (when
// present) are, since they carry runtime state.
type NROMState struct {
	PRGRAM [0x2000]uint8
	CHR    []uint8
}

func (m *NROM) SaveState() any {
	s := NROMState{PRGRAM: m.prgRAM}
	if m.chrIsRAM {
		s.CHR = append([]uint8(nil), m.chr...)
	}
	return s
}

func (m *NROM) LoadState(v any) {
	s := v.(NROMState)
	m.prgRAM = s.PRGRAM
	if m.chrIsRAM && len(s.CHR) == len(m.chr) {
		copy(m.chr, s.CHR)
	}
}

// MMC1State is the value SaveState/LoadState exchange for an *MMC1.
type MMC1State struct {
	PRGRAM [0x2000]uint8
	CHR    []uint8

	Shift      uint8
	ShiftCount uint8
	Control    uint8
	ChrBank0   uint8
	ChrBank1   uint8
	PrgBank    uint8
}

func (m *MMC1) SaveState() any {
	s := MMC1State{
		PRGRAM:     m.prgRAM,
		Shift:      m.shift,
		ShiftCount: m.shiftCount,
		Control:    m.control,
		ChrBank0:   m.chrBank0,
		ChrBank1:   m.chrBank1,
		PrgBank:    m.prgBank,
	}
	if m.chrIsRAM {
		s.CHR = append([]uint8(nil), m.chr...)
	}
	return s
}

func (m *MMC1) LoadState(v any) {
	s := v.(MMC1State)
	m.prgRAM = s.PRGRAM
	m.shift, m.shiftCount = s.Shift, s.ShiftCount
	m.control, m.chrBank0, m.chrBank1, m.prgBank = s.Control, s.ChrBank0, s.ChrBank1, s.PrgBank
	if m.chrIsRAM && len(s.CHR) == len(m.chr) {
		copy(m.chr, s.CHR)
	}
}

// MMC3State is the value SaveState/LoadState exchange for an *MMC3.
type MMC3State struct {
	PRGRAM [0x2000]uint8
	CHR    []uint8

	BankSelect uint8
	Regs       [8]uint8
	Mirror     uint8
	RAMEnable  bool

	IRQLatch   uint8
	IRQCounter uint8
	IRQReload  bool
	IRQEnabled bool
	IRQActive  bool
}

func (m *MMC3) SaveState() any {
	s := MMC3State{
		PRGRAM:     m.prgRAM,
		BankSelect: m.bankSelect,
		Regs:       m.regs,
		Mirror:     uint8(m.mirror),
		RAMEnable:  m.ramEnable,
		IRQLatch:   m.irqLatch,
		IRQCounter: m.irqCounter,
		IRQReload:  m.irqReload,
		IRQEnabled: m.irqEnabled,
		IRQActive:  m.irqActive,
	}
	if m.chrIsRAM {
		s.CHR = append([]uint8(nil), m.chr...)
	}
	return s
}

func (m *MMC3) LoadState(v any) {
	s := v.(MMC3State)
	m.prgRAM = s.PRGRAM
	m.bankSelect, m.regs = s.BankSelect, s.Regs
	m.mirror = cartdesc.MirrorMode(s.Mirror)
	m.ramEnable = s.RAMEnable
	m.irqLatch, m.irqCounter, m.irqReload, m.irqEnabled, m.irqActive =
		s.IRQLatch, s.IRQCounter, s.IRQReload, s.IRQEnabled, s.IRQActive
	if m.chrIsRAM && len(s.CHR) == len(m.chr) {
		copy(m.chr, s.CHR)
	}
}
