// Package console wires the CPU, PPU, bus, mapper, APU, and
// controllers together and drives the CPU-event/PPU-dot interleave
// spec.md §5 describes. It is the one driver-adjacent leaf this core
// provides; the real top-level event loop (input polling, frame
// presentation, timing) is out of scope and lives in internal/display
// or a cmd/ entry point instead.
package console

import (
	"fmt"

	"errors"

	"gones/internal/apu"
	"gones/internal/bus"
	"gones/internal/cartdesc"
	"gones/internal/config"
	"gones/internal/cpu"
	"gones/internal/input"
	"gones/internal/mapper"
	"gones/internal/ppu"
)

// ErrMapperNotAllowed is returned when a cartridge names a mapper the
// active configuration's allow-list excludes, even though the
// mapper package itself could implement it.
var ErrMapperNotAllowed = errors.New("mapper not allowed by configuration")

// Console owns one complete, wired emulation core for a single
// cartridge.
type Console struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	Bus  *bus.Bus
	APU  *apu.APU
	Pad1 *input.Controller
	Pad2 *input.Controller

	mapper mapper.Mapper
}

// New builds a Console for the given cartridge descriptor using cfg
// (pass config.Default() for the built-in mapper set and zeroed
// power-up RAM). Construction fails when the mapper package cannot
// build the named mapper, or when cfg's allow-list excludes it.
func New(desc *cartdesc.Cartridge, cfg *config.Config) (*Console, error) {
	if !cfg.AllowsMapper(desc.Mapper) {
		return nil, fmt.Errorf("console: mapper %d: %w", desc.Mapper, ErrMapperNotAllowed)
	}

	m, err := mapper.New(desc)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	var b *bus.Bus
	if cfg.RAMFill == config.RAMFillFF {
		b = bus.NewWithRAMFill(0xFF)
	} else {
		b = bus.New()
	}

	c := &Console{
		PPU:    ppu.New(),
		Bus:    b,
		APU:    apu.New(),
		Pad1:   input.New(),
		Pad2:   input.New(),
		mapper: m,
	}
	c.CPU = cpu.New(cpuBusAdapter{c.Bus})

	c.PPU.SetMapper(mapperPPUAdapter{m})
	c.Bus.SetPPU(c.PPU)
	c.Bus.SetAPU(c.APU)
	c.Bus.SetMapper(m)
	c.Bus.SetController(0, c.Pad1)
	c.Bus.SetController(1, c.Pad2)
	c.Bus.SetDMAStallCallback(c.CPU.StallCycles)

	c.CPU.Reset()
	return c, nil
}

// cpuBusAdapter satisfies cpu.Memory (Read/Write) by forwarding to
// *bus.Bus's CPURead/CPUWrite, avoiding an import cycle between cpu
// and bus per SPEC_FULL.md §4.
type cpuBusAdapter struct {
	b *bus.Bus
}

func (a cpuBusAdapter) Read(addr uint16) uint8         { return a.b.CPURead(addr) }
func (a cpuBusAdapter) Write(addr uint16, value uint8) { a.b.CPUWrite(addr, value) }

// mapperPPUAdapter narrows mapper.Mapper (CPU-and-PPU-shaped) down to
// ppu.Mapper and adds ScanlineTick, which forwards to the underlying
// mapper when it implements it and does nothing otherwise, so the PPU
// package never imports internal/mapper directly. IRQPending is not
// exposed here; the bus polls it (see bus.Bus.PollMapperIRQ).
type mapperPPUAdapter struct {
	m mapper.Mapper
}

func (a mapperPPUAdapter) PPURead(addr uint16) uint8         { return a.m.PPURead(addr) }
func (a mapperPPUAdapter) PPUWrite(addr uint16, value uint8) { a.m.PPUWrite(addr, value) }
func (a mapperPPUAdapter) MirrorMode() ppu.MirrorMode {
	return ppu.MirrorMode(a.m.MirrorMode())
}

func (a mapperPPUAdapter) ScanlineTick() {
	if t, ok := a.m.(interface{ ScanlineTick() }); ok {
		t.ScanlineTick()
	}
}

// StepInstruction runs exactly one CPU event (a stall tick, an
// interrupt service, or one instruction), advances the PPU by 3 dots
// per CPU cycle consumed, and forwards NMI/mapper-IRQ at the
// resulting event boundary, matching spec.md §5's ordering guarantee.
func (c *Console) StepInstruction() uint32 {
	cycles := c.CPU.Step()
	for i := uint32(0); i < cycles*3; i++ {
		c.PPU.Step()
	}
	if c.PPU.NMIPending() {
		c.CPU.TriggerNMI()
		c.PPU.AckNMI()
	}
	c.Bus.PollMapperIRQ(c.CPU.TriggerIRQ, c.CPU.ClearIRQ)
	return cycles
}

// StepFrame runs CPU/PPU events until a full frame has been latched.
// If frame_complete is still set from the previous frame, it first
// runs until the PPU clears the flag at the start of the next frame.
// It returns with frame_complete set; it does not clear the flag.
func (c *Console) StepFrame() {
	if c.PPU.FrameComplete() {
		c.runUntilFrameFlagClears()
	}
	for !c.PPU.FrameComplete() {
		c.StepInstruction()
	}
}

func (c *Console) runUntilFrameFlagClears() {
	for c.PPU.FrameComplete() {
		c.StepInstruction()
	}
}
