package console

import (
	"gones/internal/cpu"
	"gones/internal/mapper"
	"gones/internal/ppu"
)

// State is a complete in-memory snapshot of a Console: CPU and PPU
// registers/pipelines, bus RAM, and mapper state (bank-select
// registers plus any RAM/CHR-RAM contents). SaveState/LoadState are
// pure struct copies with no file I/O or serialization format of their
// own, useful for testing mid-frame invariants without replaying from
// reset, or for a caller that wants its own persistence layer on top.
type State struct {
	CPU    cpu.State
	PPU    ppu.State
	RAM    [0x0800]uint8
	Mapper any
}

// SaveState captures the Console's entire mutable state.
func (c *Console) SaveState() State {
	s := State{
		CPU: c.CPU.SaveState(),
		PPU: c.PPU.SaveState(),
		RAM: c.Bus.RAM(),
	}
	if saver, ok := c.mapper.(mapper.StateSaver); ok {
		s.Mapper = saver.SaveState()
	}
	return s
}

// LoadState restores a snapshot taken by SaveState. The cartridge a
// Console was constructed with must match the one the snapshot came
// from; LoadState does not re-validate mapper identity.
func (c *Console) LoadState(s State) {
	c.CPU.LoadState(s.CPU)
	c.PPU.LoadState(s.PPU)
	c.Bus.LoadRAM(s.RAM)
	if saver, ok := c.mapper.(mapper.StateSaver); ok && s.Mapper != nil {
		saver.LoadState(s.Mapper)
	}
}
