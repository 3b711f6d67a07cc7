package cpu

// Load/store.

func opLDA(c *CPU, addr uint16) uint32 { c.A = c.mem.Read(addr); c.setZN(c.A); return 0 }
func opLDX(c *CPU, addr uint16) uint32 { c.X = c.mem.Read(addr); c.setZN(c.X); return 0 }
func opLDY(c *CPU, addr uint16) uint32 { c.Y = c.mem.Read(addr); c.setZN(c.Y); return 0 }

func opSTA(c *CPU, addr uint16) uint32 { c.mem.Write(addr, c.A); return 0 }
func opSTX(c *CPU, addr uint16) uint32 { c.mem.Write(addr, c.X); return 0 }
func opSTY(c *CPU, addr uint16) uint32 { c.mem.Write(addr, c.Y); return 0 }

// Arithmetic. ADC/SBC share the documented overflow formula:
// V = ((A ^ result) & (M ^ result) & 0x80) != 0, where M is the
// addend (the operand, inverted for SBC).

func opADC(c *CPU, addr uint16) uint32 {
	m := c.mem.Read(addr)
	c.addWithCarry(m)
	return 0
}

func opSBC(c *CPU, addr uint16) uint32 {
	m := c.mem.Read(addr) ^ 0xFF
	c.addWithCarry(m)
	return 0
}

func (c *CPU) addWithCarry(m uint8) {
	carry := uint16(0)
	if c.flag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	result := uint8(sum)
	c.setFlag(FlagOverflow, (c.A^result)&(m^result)&0x80 != 0)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.A = result
	c.setZN(c.A)
}

// Logical.

func opAND(c *CPU, addr uint16) uint32 { c.A &= c.mem.Read(addr); c.setZN(c.A); return 0 }
func opORA(c *CPU, addr uint16) uint32 { c.A |= c.mem.Read(addr); c.setZN(c.A); return 0 }
func opEOR(c *CPU, addr uint16) uint32 { c.A ^= c.mem.Read(addr); c.setZN(c.A); return 0 }

// Shifts/rotates: accumulator and memory variants are separate
// handlers since the operand source/sink differs.

func opASLAcc(c *CPU, _ uint16) uint32 {
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A <<= 1
	c.setZN(c.A)
	return 0
}

func opASLMem(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

func opLSRAcc(c *CPU, _ uint16) uint32 {
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	c.setZN(c.A)
	return 0
}

func opLSRMem(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

func opROLAcc(c *CPU, _ uint16) uint32 {
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
	c.A <<= 1
	if oldCarry {
		c.A |= 0x01
	}
	c.setZN(c.A)
	return 0
}

func opROLMem(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr)
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

func opRORAcc(c *CPU, _ uint16) uint32 {
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, c.A&0x01 != 0)
	c.A >>= 1
	if oldCarry {
		c.A |= 0x80
	}
	c.setZN(c.A)
	return 0
}

func opRORMem(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr)
	oldCarry := c.flag(FlagCarry)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

// Bit test: Z from A AND M, N copies M.7, V copies M.6.

func opBIT(c *CPU, addr uint16) uint32 {
	m := c.mem.Read(addr)
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
	return 0
}

// Compare: C set when reg >= M, Z on equality, N from bit 7 of the
// (wrapping) difference.

func compare(c *CPU, reg, m uint8) {
	diff := reg - m
	c.setFlag(FlagCarry, reg >= m)
	c.setFlag(FlagZero, reg == m)
	c.setFlag(FlagNegative, diff&0x80 != 0)
}

func opCMP(c *CPU, addr uint16) uint32 { compare(c, c.A, c.mem.Read(addr)); return 0 }
func opCPX(c *CPU, addr uint16) uint32 { compare(c, c.X, c.mem.Read(addr)); return 0 }
func opCPY(c *CPU, addr uint16) uint32 { compare(c, c.Y, c.mem.Read(addr)); return 0 }

// Increment/decrement.

func opINC(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr) + 1
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

func opDEC(c *CPU, addr uint16) uint32 {
	v := c.mem.Read(addr) - 1
	c.mem.Write(addr, v)
	c.setZN(v)
	return 0
}

func opINX(c *CPU, _ uint16) uint32 { c.X++; c.setZN(c.X); return 0 }
func opINY(c *CPU, _ uint16) uint32 { c.Y++; c.setZN(c.Y); return 0 }
func opDEX(c *CPU, _ uint16) uint32 { c.X--; c.setZN(c.X); return 0 }
func opDEY(c *CPU, _ uint16) uint32 { c.Y--; c.setZN(c.Y); return 0 }

// Control flow.

func opJMP(c *CPU, addr uint16) uint32 { c.PC = addr; return 0 }

func opJSR(c *CPU, addr uint16) uint32 {
	c.pushWord(c.PC - 1)
	c.PC = addr
	return 0
}

func opRTS(c *CPU, _ uint16) uint32 {
	c.PC = c.popWord() + 1
	return 0
}

// branch builds an exec handler for a conditional branch: if taken,
// add 1 cycle (plus 1 more on a page cross) and jump to addr;
// otherwise PC is left at the byte following the operand.
func branch(taken func(c *CPU) bool) func(c *CPU, addr uint16) uint32 {
	return func(c *CPU, addr uint16) uint32 {
		if !taken(c) {
			return 0
		}
		extra := uint32(1)
		if pageDiffers(c.PC, addr) {
			extra++
		}
		c.PC = addr
		return extra
	}
}

// Stack.

func opPHA(c *CPU, _ uint16) uint32 { c.push(c.A); return 0 }

func opPLA(c *CPU, _ uint16) uint32 {
	c.A = c.pop()
	c.setZN(c.A)
	return 0
}

func opPHP(c *CPU, _ uint16) uint32 {
	c.push(c.P | FlagBreak | FlagUnused)
	return 0
}

func opPLP(c *CPU, _ uint16) uint32 {
	c.P = (c.pop() &^ FlagBreak) | FlagUnused
	return 0
}

// Transfers.

func opTAX(c *CPU, _ uint16) uint32 { c.X = c.A; c.setZN(c.X); return 0 }
func opTAY(c *CPU, _ uint16) uint32 { c.Y = c.A; c.setZN(c.Y); return 0 }
func opTSX(c *CPU, _ uint16) uint32 { c.X = c.SP; c.setZN(c.X); return 0 }
func opTXA(c *CPU, _ uint16) uint32 { c.A = c.X; c.setZN(c.A); return 0 }
func opTXS(c *CPU, _ uint16) uint32 { c.SP = c.X; return 0 }
func opTYA(c *CPU, _ uint16) uint32 { c.A = c.Y; c.setZN(c.A); return 0 }

// System.

func opBRK(c *CPU, _ uint16) uint32 {
	c.PC++ // skip the padding byte
	c.pushWord(c.PC)
	c.push(c.P | FlagBreak | FlagUnused)
	c.setFlag(FlagInterruptDisable, true)
	lo := uint16(c.mem.Read(irqVector))
	hi := uint16(c.mem.Read(irqVector + 1))
	c.PC = hi<<8 | lo
	return 0
}

func opRTI(c *CPU, _ uint16) uint32 {
	c.P = (c.pop() &^ FlagBreak) | FlagUnused
	c.PC = c.popWord()
	return 0
}
