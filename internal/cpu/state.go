package cpu

// State is a snapshot of everything Step mutates. It holds no
// reference to Memory; restoring it onto a CPU wired to a different
// bus works fine, since the bus is supplied at New time.
type State struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8

	Total uint64
	Stall uint32

	NMIPending bool
	IRQPending bool
}

// SaveState captures the CPU's register file and pending-interrupt
// latches.
func (c *CPU) SaveState() State {
	return State{
		A: c.A, X: c.X, Y: c.Y, SP: c.SP, PC: c.PC, P: c.P,
		Total:      c.total,
		Stall:      c.stall,
		NMIPending: c.nmiPending,
		IRQPending: c.irqPending,
	}
}

// LoadState restores a snapshot taken by SaveState.
func (c *CPU) LoadState(s State) {
	c.A, c.X, c.Y, c.SP, c.PC, c.P = s.A, s.X, s.Y, s.SP, s.PC, s.P
	c.total = s.Total
	c.stall = s.Stall
	c.nmiPending = s.NMIPending
	c.irqPending = s.IRQPending
}
