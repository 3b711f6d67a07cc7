package cpu

// AddressingMode names one of the 6502's thirteen operand-fetch forms.
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
	Relative
)

// resolveAddress advances PC past the operand bytes for mode and
// returns the effective address (meaningless for Implied/Accumulator)
// and whether an indexed/relative access crossed a page boundary.
func (c *CPU) resolveAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr := c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		addr := uint16(c.mem.Read(c.PC))
		c.PC++
		return addr, false

	case ZeroPageX:
		base := c.mem.Read(c.PC)
		c.PC++
		return uint16(base + c.X), false

	case ZeroPageY:
		base := c.mem.Read(c.PC)
		c.PC++
		return uint16(base + c.Y), false

	case Absolute:
		addr := c.readWordAt(c.PC)
		c.PC += 2
		return addr, false

	case AbsoluteX:
		base := c.readWordAt(c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		return addr, pageDiffers(base, addr)

	case AbsoluteY:
		base := c.readWordAt(c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		return addr, pageDiffers(base, addr)

	case Indirect: // JMP only
		ptr := c.readWordAt(c.PC)
		c.PC += 2
		return c.readWordBuggy(ptr), false

	case IndexedIndirect:
		base := c.mem.Read(c.PC)
		c.PC++
		ptr := base + c.X
		lo := uint16(c.mem.Read(uint16(ptr)))
		hi := uint16(c.mem.Read(uint16(ptr + 1)))
		return hi<<8 | lo, false

	case IndirectIndexed:
		zp := uint16(c.mem.Read(c.PC))
		c.PC++
		lo := uint16(c.mem.Read(zp))
		hi := uint16(c.mem.Read((zp + 1) & 0xFF))
		base := hi<<8 | lo
		addr := base + uint16(c.Y)
		return addr, pageDiffers(base, addr)

	case Relative:
		offset := int8(c.mem.Read(c.PC))
		c.PC++
		addr := uint16(int32(c.PC) + int32(offset))
		return addr, pageDiffers(c.PC, addr)

	default:
		return 0, false
	}
}

func pageDiffers(a, b uint16) bool { return a&0xFF00 != b&0xFF00 }

func (c *CPU) readWordAt(addr uint16) uint16 {
	lo := uint16(c.mem.Read(addr))
	hi := uint16(c.mem.Read(addr + 1))
	return hi<<8 | lo
}

// readWordBuggy reproduces the documented JMP ($xxFF) bug: the high
// byte of the pointer is fetched from the start of the same page
// instead of crossing into the next one.
func (c *CPU) readWordBuggy(ptr uint16) uint16 {
	lo := uint16(c.mem.Read(ptr))
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.mem.Read(hiAddr))
	return hi<<8 | lo
}
