// Command gones-headless drives the emulator core for a fixed number
// of frames with no cartridge parser, no rendering, and no input
// binding attached — a thin harness proving the core runs on its own,
// with a synthetic in-memory cartridge for demonstration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gones/internal/buildinfo"
	"gones/internal/cartdesc"
	"gones/internal/config"
	"gones/internal/console"
)

func main() {
	frames := flag.Int("frames", 60, "number of frames to emulate")
	showVersion := flag.Bool("version", false, "print build information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Get())
		return
	}

	desc := &cartdesc.Cartridge{
		PRGROM: make([]uint8, 0x8000),
		Mirror: cartdesc.MirrorHorizontal,
	}
	// Reset vector points at $8000, which this synthetic ROM leaves as
	// an infinite JMP $8000 loop.
	desc.PRGROM[0x7FFC] = 0x00
	desc.PRGROM[0x7FFD] = 0x80
	desc.PRGROM[0x0000] = 0x4C // JMP absolute
	desc.PRGROM[0x0001] = 0x00
	desc.PRGROM[0x0002] = 0x80

	nes, err := console.New(desc, config.Default())
	if err != nil {
		log.Fatalf("gones-headless: %v", err)
	}

	for i := 0; i < *frames; i++ {
		nes.StepFrame()
	}

	fb := nes.PPU.FrameBuffer()
	nonZero := 0
	for _, v := range fb {
		if v != 0 {
			nonZero++
		}
	}
	fmt.Fprintf(os.Stdout, "ran %d frames, %d cpu cycles, %d non-zero framebuffer bytes\n",
		*frames, nes.CPU.TotalCycles(), nonZero)
}
