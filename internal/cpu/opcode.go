package cpu

// opcode is one entry of the flat 256-entry dispatch table: an
// addressing mode, a handler, and the cycle/length/page-cross
// metadata needed to account for it. Opcodes this core does not
// recognise collapse to a 2-cycle NOP (the illegalNOP handler with
// cycles=2), matching real silicon's "probably does something, we
// don't model it" behavior closely enough for official-opcode-only
// software.
type opcode struct {
	name           string
	mode           AddressingMode
	cycles         uint8
	bytes          uint8
	pageCrossExtra bool
	// exec performs the instruction and returns any extra cycles
	// beyond the table's base count and the automatic page-cross
	// bonus (used only by branches, whose bonus depends on whether
	// the branch was taken).
	exec func(c *CPU, addr uint16) uint32
}

func illegalNOP(c *CPU, addr uint16) uint32 { return 0 }

// buildOpcodeTable returns the 256-entry dispatch table for the
// official 56-mnemonic 6502 instruction set. Unassigned slots default
// to a 2-cycle implied NOP.
func buildOpcodeTable() [256]opcode {
	var t [256]opcode
	for i := range t {
		t[i] = opcode{name: "NOP", mode: Implied, cycles: 2, bytes: 1, exec: illegalNOP}
	}

	def := func(op uint8, name string, mode AddressingMode, cycles, bytes uint8, pageCross bool, fn func(c *CPU, addr uint16) uint32) {
		t[op] = opcode{name: name, mode: mode, cycles: cycles, bytes: bytes, pageCrossExtra: pageCross, exec: fn}
	}

	// Load/store.
	def(0xA9, "LDA", Immediate, 2, 2, false, opLDA)
	def(0xA5, "LDA", ZeroPage, 3, 2, false, opLDA)
	def(0xB5, "LDA", ZeroPageX, 4, 2, false, opLDA)
	def(0xAD, "LDA", Absolute, 4, 3, false, opLDA)
	def(0xBD, "LDA", AbsoluteX, 4, 3, true, opLDA)
	def(0xB9, "LDA", AbsoluteY, 4, 3, true, opLDA)
	def(0xA1, "LDA", IndexedIndirect, 6, 2, false, opLDA)
	def(0xB1, "LDA", IndirectIndexed, 5, 2, true, opLDA)

	def(0xA2, "LDX", Immediate, 2, 2, false, opLDX)
	def(0xA6, "LDX", ZeroPage, 3, 2, false, opLDX)
	def(0xB6, "LDX", ZeroPageY, 4, 2, false, opLDX)
	def(0xAE, "LDX", Absolute, 4, 3, false, opLDX)
	def(0xBE, "LDX", AbsoluteY, 4, 3, true, opLDX)

	def(0xA0, "LDY", Immediate, 2, 2, false, opLDY)
	def(0xA4, "LDY", ZeroPage, 3, 2, false, opLDY)
	def(0xB4, "LDY", ZeroPageX, 4, 2, false, opLDY)
	def(0xAC, "LDY", Absolute, 4, 3, false, opLDY)
	def(0xBC, "LDY", AbsoluteX, 4, 3, true, opLDY)

	def(0x85, "STA", ZeroPage, 3, 2, false, opSTA)
	def(0x95, "STA", ZeroPageX, 4, 2, false, opSTA)
	def(0x8D, "STA", Absolute, 4, 3, false, opSTA)
	def(0x9D, "STA", AbsoluteX, 5, 3, false, opSTA)
	def(0x99, "STA", AbsoluteY, 5, 3, false, opSTA)
	def(0x81, "STA", IndexedIndirect, 6, 2, false, opSTA)
	def(0x91, "STA", IndirectIndexed, 6, 2, false, opSTA)

	def(0x86, "STX", ZeroPage, 3, 2, false, opSTX)
	def(0x96, "STX", ZeroPageY, 4, 2, false, opSTX)
	def(0x8E, "STX", Absolute, 4, 3, false, opSTX)

	def(0x84, "STY", ZeroPage, 3, 2, false, opSTY)
	def(0x94, "STY", ZeroPageX, 4, 2, false, opSTY)
	def(0x8C, "STY", Absolute, 4, 3, false, opSTY)

	// Arithmetic.
	def(0x69, "ADC", Immediate, 2, 2, false, opADC)
	def(0x65, "ADC", ZeroPage, 3, 2, false, opADC)
	def(0x75, "ADC", ZeroPageX, 4, 2, false, opADC)
	def(0x6D, "ADC", Absolute, 4, 3, false, opADC)
	def(0x7D, "ADC", AbsoluteX, 4, 3, true, opADC)
	def(0x79, "ADC", AbsoluteY, 4, 3, true, opADC)
	def(0x61, "ADC", IndexedIndirect, 6, 2, false, opADC)
	def(0x71, "ADC", IndirectIndexed, 5, 2, true, opADC)

	def(0xE9, "SBC", Immediate, 2, 2, false, opSBC)
	def(0xE5, "SBC", ZeroPage, 3, 2, false, opSBC)
	def(0xF5, "SBC", ZeroPageX, 4, 2, false, opSBC)
	def(0xED, "SBC", Absolute, 4, 3, false, opSBC)
	def(0xFD, "SBC", AbsoluteX, 4, 3, true, opSBC)
	def(0xF9, "SBC", AbsoluteY, 4, 3, true, opSBC)
	def(0xE1, "SBC", IndexedIndirect, 6, 2, false, opSBC)
	def(0xF1, "SBC", IndirectIndexed, 5, 2, true, opSBC)

	// Logical.
	def(0x29, "AND", Immediate, 2, 2, false, opAND)
	def(0x25, "AND", ZeroPage, 3, 2, false, opAND)
	def(0x35, "AND", ZeroPageX, 4, 2, false, opAND)
	def(0x2D, "AND", Absolute, 4, 3, false, opAND)
	def(0x3D, "AND", AbsoluteX, 4, 3, true, opAND)
	def(0x39, "AND", AbsoluteY, 4, 3, true, opAND)
	def(0x21, "AND", IndexedIndirect, 6, 2, false, opAND)
	def(0x31, "AND", IndirectIndexed, 5, 2, true, opAND)

	def(0x09, "ORA", Immediate, 2, 2, false, opORA)
	def(0x05, "ORA", ZeroPage, 3, 2, false, opORA)
	def(0x15, "ORA", ZeroPageX, 4, 2, false, opORA)
	def(0x0D, "ORA", Absolute, 4, 3, false, opORA)
	def(0x1D, "ORA", AbsoluteX, 4, 3, true, opORA)
	def(0x19, "ORA", AbsoluteY, 4, 3, true, opORA)
	def(0x01, "ORA", IndexedIndirect, 6, 2, false, opORA)
	def(0x11, "ORA", IndirectIndexed, 5, 2, true, opORA)

	def(0x49, "EOR", Immediate, 2, 2, false, opEOR)
	def(0x45, "EOR", ZeroPage, 3, 2, false, opEOR)
	def(0x55, "EOR", ZeroPageX, 4, 2, false, opEOR)
	def(0x4D, "EOR", Absolute, 4, 3, false, opEOR)
	def(0x5D, "EOR", AbsoluteX, 4, 3, true, opEOR)
	def(0x59, "EOR", AbsoluteY, 4, 3, true, opEOR)
	def(0x41, "EOR", IndexedIndirect, 6, 2, false, opEOR)
	def(0x51, "EOR", IndirectIndexed, 5, 2, true, opEOR)

	// Shifts/rotates.
	def(0x0A, "ASL", Accumulator, 2, 1, false, opASLAcc)
	def(0x06, "ASL", ZeroPage, 5, 2, false, opASLMem)
	def(0x16, "ASL", ZeroPageX, 6, 2, false, opASLMem)
	def(0x0E, "ASL", Absolute, 6, 3, false, opASLMem)
	def(0x1E, "ASL", AbsoluteX, 7, 3, false, opASLMem)

	def(0x4A, "LSR", Accumulator, 2, 1, false, opLSRAcc)
	def(0x46, "LSR", ZeroPage, 5, 2, false, opLSRMem)
	def(0x56, "LSR", ZeroPageX, 6, 2, false, opLSRMem)
	def(0x4E, "LSR", Absolute, 6, 3, false, opLSRMem)
	def(0x5E, "LSR", AbsoluteX, 7, 3, false, opLSRMem)

	def(0x2A, "ROL", Accumulator, 2, 1, false, opROLAcc)
	def(0x26, "ROL", ZeroPage, 5, 2, false, opROLMem)
	def(0x36, "ROL", ZeroPageX, 6, 2, false, opROLMem)
	def(0x2E, "ROL", Absolute, 6, 3, false, opROLMem)
	def(0x3E, "ROL", AbsoluteX, 7, 3, false, opROLMem)

	def(0x6A, "ROR", Accumulator, 2, 1, false, opRORAcc)
	def(0x66, "ROR", ZeroPage, 5, 2, false, opRORMem)
	def(0x76, "ROR", ZeroPageX, 6, 2, false, opRORMem)
	def(0x6E, "ROR", Absolute, 6, 3, false, opRORMem)
	def(0x7E, "ROR", AbsoluteX, 7, 3, false, opRORMem)

	// Bit test.
	def(0x24, "BIT", ZeroPage, 3, 2, false, opBIT)
	def(0x2C, "BIT", Absolute, 4, 3, false, opBIT)

	// Compare.
	def(0xC9, "CMP", Immediate, 2, 2, false, opCMP)
	def(0xC5, "CMP", ZeroPage, 3, 2, false, opCMP)
	def(0xD5, "CMP", ZeroPageX, 4, 2, false, opCMP)
	def(0xCD, "CMP", Absolute, 4, 3, false, opCMP)
	def(0xDD, "CMP", AbsoluteX, 4, 3, true, opCMP)
	def(0xD9, "CMP", AbsoluteY, 4, 3, true, opCMP)
	def(0xC1, "CMP", IndexedIndirect, 6, 2, false, opCMP)
	def(0xD1, "CMP", IndirectIndexed, 5, 2, true, opCMP)

	def(0xE0, "CPX", Immediate, 2, 2, false, opCPX)
	def(0xE4, "CPX", ZeroPage, 3, 2, false, opCPX)
	def(0xEC, "CPX", Absolute, 4, 3, false, opCPX)

	def(0xC0, "CPY", Immediate, 2, 2, false, opCPY)
	def(0xC4, "CPY", ZeroPage, 3, 2, false, opCPY)
	def(0xCC, "CPY", Absolute, 4, 3, false, opCPY)

	// Increment/decrement.
	def(0xE6, "INC", ZeroPage, 5, 2, false, opINC)
	def(0xF6, "INC", ZeroPageX, 6, 2, false, opINC)
	def(0xEE, "INC", Absolute, 6, 3, false, opINC)
	def(0xFE, "INC", AbsoluteX, 7, 3, false, opINC)

	def(0xC6, "DEC", ZeroPage, 5, 2, false, opDEC)
	def(0xD6, "DEC", ZeroPageX, 6, 2, false, opDEC)
	def(0xCE, "DEC", Absolute, 6, 3, false, opDEC)
	def(0xDE, "DEC", AbsoluteX, 7, 3, false, opDEC)

	def(0xE8, "INX", Implied, 2, 1, false, opINX)
	def(0xC8, "INY", Implied, 2, 1, false, opINY)
	def(0xCA, "DEX", Implied, 2, 1, false, opDEX)
	def(0x88, "DEY", Implied, 2, 1, false, opDEY)

	// Control flow.
	def(0x4C, "JMP", Absolute, 3, 3, false, opJMP)
	def(0x6C, "JMP", Indirect, 5, 3, false, opJMP)
	def(0x20, "JSR", Absolute, 6, 3, false, opJSR)
	def(0x60, "RTS", Implied, 6, 1, false, opRTS)

	// Branches.
	def(0x90, "BCC", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.flag(FlagCarry) }))
	def(0xB0, "BCS", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.flag(FlagCarry) }))
	def(0xF0, "BEQ", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.flag(FlagZero) }))
	def(0xD0, "BNE", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.flag(FlagZero) }))
	def(0x30, "BMI", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.flag(FlagNegative) }))
	def(0x10, "BPL", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.flag(FlagNegative) }))
	def(0x50, "BVC", Relative, 2, 2, false, branch(func(c *CPU) bool { return !c.flag(FlagOverflow) }))
	def(0x70, "BVS", Relative, 2, 2, false, branch(func(c *CPU) bool { return c.flag(FlagOverflow) }))

	// Stack.
	def(0x48, "PHA", Implied, 3, 1, false, opPHA)
	def(0x68, "PLA", Implied, 4, 1, false, opPLA)
	def(0x08, "PHP", Implied, 3, 1, false, opPHP)
	def(0x28, "PLP", Implied, 4, 1, false, opPLP)

	// Transfers.
	def(0xAA, "TAX", Implied, 2, 1, false, opTAX)
	def(0xA8, "TAY", Implied, 2, 1, false, opTAY)
	def(0xBA, "TSX", Implied, 2, 1, false, opTSX)
	def(0x8A, "TXA", Implied, 2, 1, false, opTXA)
	def(0x9A, "TXS", Implied, 2, 1, false, opTXS)
	def(0x98, "TYA", Implied, 2, 1, false, opTYA)

	// Flag operations.
	def(0x18, "CLC", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagCarry, false); return 0 })
	def(0x38, "SEC", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagCarry, true); return 0 })
	def(0x58, "CLI", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagInterruptDisable, false); return 0 })
	def(0x78, "SEI", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagInterruptDisable, true); return 0 })
	def(0xD8, "CLD", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagDecimal, false); return 0 })
	def(0xF8, "SED", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagDecimal, true); return 0 })
	def(0xB8, "CLV", Implied, 2, 1, false, func(c *CPU, _ uint16) uint32 { c.setFlag(FlagOverflow, false); return 0 })

	// System.
	def(0x00, "BRK", Implied, 7, 1, false, opBRK)
	def(0x40, "RTI", Implied, 6, 1, false, opRTI)
	def(0xEA, "NOP", Implied, 2, 1, false, func(*CPU, uint16) uint32 { return 0 })

	return t
}
