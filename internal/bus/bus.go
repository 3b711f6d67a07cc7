// Package bus implements the NES CPU address space: internal RAM
// mirroring, PPU register mirroring, APU/controller dispatch, OAM DMA,
// and the mapper window at 0x4020-0xFFFF. It holds no reference to the
// CPU itself, only a stall callback, so cpu and bus never import one
// another.
package bus

// PPU is the slice of PPU behavior the bus drives.
type PPU interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, value uint8)
	OAMDMAWrite(data *[256]uint8)
}

// APU is the slice of APU behavior the bus drives.
type APU interface {
	WriteRegister(addr uint16, value uint8)
	ReadStatus() uint8
}

// Mapper is the slice of cartridge-mapper behavior the bus drives.
type Mapper interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, value uint8)
}

// Controller is the slice of controller behavior the bus drives.
type Controller interface {
	Write(v uint8)
	Read() uint8
}

// Bus decodes the CPU's 16-bit address space and dispatches to the
// owning subsystem.
type Bus struct {
	ram [0x0800]uint8

	ppu         PPU
	apu         APU
	mapper      Mapper
	controllers [2]Controller

	dmaStall func(cycles uint32)
}

// New creates a bus with no subsystems attached; wire them with the
// Set* methods before use. Internal RAM starts zeroed.
func New() *Bus { return &Bus{} }

// NewWithRAMFill creates a bus whose internal RAM is pre-filled with
// fillByte instead of the zero value, for cores that model a
// power-up RAM pattern other than all-zero.
func NewWithRAMFill(fillByte uint8) *Bus {
	b := &Bus{}
	if fillByte != 0 {
		for i := range b.ram {
			b.ram[i] = fillByte
		}
	}
	return b
}

func (b *Bus) SetPPU(p PPU)                      { b.ppu = p }
func (b *Bus) SetAPU(a APU)                      { b.apu = a }
func (b *Bus) SetMapper(m Mapper)                { b.mapper = m }
func (b *Bus) SetController(i int, c Controller) { b.controllers[i] = c }
func (b *Bus) SetDMAStallCallback(fn func(cycles uint32)) { b.dmaStall = fn }

// CPURead resolves a CPU read at addr.
func (b *Bus) CPURead(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 + addr&7)
	case addr == 0x4015:
		return b.apu.ReadStatus()
	case addr == 0x4016:
		return b.controllers[0].Read()
	case addr == 0x4017:
		return b.controllers[1].Read()
	case addr < 0x4020:
		return 0
	default:
		return b.mapper.CPURead(addr)
	}
}

// CPUWrite resolves a CPU write at addr.
func (b *Bus) CPUWrite(addr uint16, value uint8) {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+addr&7, value)
	case addr == 0x4014:
		b.oamDMA(value)
	case addr == 0x4016:
		b.controllers[0].Write(value)
		b.controllers[1].Write(value)
	case addr < 0x4018:
		b.apu.WriteRegister(addr, value)
	case addr < 0x4020:
		// unmapped APU/IO test-mode range
	default:
		b.mapper.CPUWrite(addr, value)
	}
}

// oamDMA reads 256 bytes starting at value<<8 through the CPU bus
// itself (so RAM-backed pages reflect any mirroring) and delivers
// them to the PPU, then requests a 513-cycle CPU stall.
func (b *Bus) oamDMA(page uint8) {
	var data [256]uint8
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		data[i] = b.CPURead(base + uint16(i))
	}
	b.ppu.OAMDMAWrite(&data)
	if b.dmaStall != nil {
		b.dmaStall(513)
	}
}

// PollMapperIRQ forwards the mapper's IRQ line to a sink (the CPU's
// TriggerIRQ/ClearIRQ), resolving this core's one open design
// question: the bus owns IRQ forwarding rather than the CPU polling
// the mapper directly.
func (b *Bus) PollMapperIRQ(trigger, clear func()) {
	type irqSource interface{ IRQPending() bool }
	src, ok := b.mapper.(irqSource)
	if !ok {
		return
	}
	if src.IRQPending() {
		trigger()
	} else {
		clear()
	}
}
