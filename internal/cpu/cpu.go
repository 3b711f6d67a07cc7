// Package cpu implements the 6502 CPU interpreter: dispatch, the
// thirteen addressing modes, cycle accounting, and NMI/IRQ delivery.
package cpu

// Status register flag bit masks.
const (
	FlagCarry            = 0x01
	FlagZero             = 0x02
	FlagInterruptDisable = 0x04
	FlagDecimal          = 0x08
	FlagBreak            = 0x10
	FlagUnused           = 0x20
	FlagOverflow         = 0x40
	FlagNegative         = 0x80
)

const (
	stackBase   = 0x0100
	nmiVector   = 0xFFFA
	irqVector   = 0xFFFE
	resetVector = 0xFFFC
)

// Memory is the CPU's view of the system bus.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU is a MOS 6502 interpreter. It holds no notion of wall-clock
// time; Step advances exactly one event (a stall tick, an interrupt
// service, or one instruction) and reports the cycles it consumed.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16
	P  uint8 // status register; bit 5 (Unused) always reads 1

	mem Memory

	total uint64
	stall uint32

	nmiPending bool
	irqPending bool

	table [256]opcode
}

// New creates a CPU wired to mem. Call Reset before Step.
func New(mem Memory) *CPU {
	c := &CPU{mem: mem}
	c.table = buildOpcodeTable()
	return c
}

// Reset re-initialises registers to the documented 6502 power-up/reset
// state and loads PC from the reset vector.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagInterruptDisable | FlagUnused
	lo := uint16(c.mem.Read(resetVector))
	hi := uint16(c.mem.Read(resetVector + 1))
	c.PC = hi<<8 | lo
	c.total = 7
	c.stall = 0
	c.nmiPending = false
	c.irqPending = false
}

// TotalCycles returns the cumulative CPU cycle count since Reset.
func (c *CPU) TotalCycles() uint64 { return c.total }

// TriggerNMI asserts the NMI line; it is serviced at the next Step.
func (c *CPU) TriggerNMI() { c.nmiPending = true }

// TriggerIRQ asserts the IRQ line. It stays asserted until the
// interrupt source (bus/mapper) calls ClearIRQ; this mirrors real
// hardware, where IRQ is level-triggered.
func (c *CPU) TriggerIRQ() { c.irqPending = true }

// ClearIRQ deasserts the IRQ line.
func (c *CPU) ClearIRQ() { c.irqPending = false }

// StallCycles adds n cycles of CPU stall, consumed one at a time by
// subsequent Step calls (used for OAM DMA).
func (c *CPU) StallCycles(n uint32) { c.stall += n }

// flag reports whether the given status bit is set.
func (c *CPU) flag(mask uint8) bool { return c.P&mask != 0 }

func (c *CPU) setFlag(mask uint8, set bool) {
	if set {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v&0x80 != 0)
}

func (c *CPU) push(v uint8) {
	c.mem.Write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.mem.Read(stackBase + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}

// Step advances one event: a stall tick, a pending NMI, a pending IRQ
// (when InterruptDisable is clear), or one instruction. It returns
// the CPU cycles consumed.
func (c *CPU) Step() uint32 {
	if c.stall > 0 {
		c.stall--
		c.total++
		return 1
	}

	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(nmiVector)
		c.total += 7
		return 7
	}

	if c.irqPending && !c.flag(FlagInterruptDisable) {
		c.serviceInterrupt(irqVector)
		c.total += 7
		return 7
	}

	op := c.mem.Read(c.PC)
	c.PC++
	entry := c.table[op]

	addr, pageCrossed := c.resolveAddress(entry.mode)
	extra := entry.exec(c, addr)

	cycles := uint32(entry.cycles) + extra
	if pageCrossed && entry.pageCrossExtra {
		cycles++
	}
	c.total += uint64(cycles)
	return cycles
}

// serviceInterrupt is the shared NMI/IRQ sequence: push PC, push
// status with Unused set and Break clear, set InterruptDisable, load
// PC from vector.
func (c *CPU) serviceInterrupt(vector uint16) {
	c.pushWord(c.PC)
	status := (c.P | FlagUnused) &^ FlagBreak
	c.push(status)
	c.setFlag(FlagInterruptDisable, true)
	lo := uint16(c.mem.Read(vector))
	hi := uint16(c.mem.Read(vector + 1))
	c.PC = hi<<8 | lo
}
