// Command gones-gui wires the core to an ebiten window using the
// keyboard-to-button mapping and ROM loading this repository leaves
// external to the core. It exists to demonstrate internal/display,
// not as a full front end.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gones/internal/cartdesc"
	"gones/internal/config"
	"gones/internal/console"
	"gones/internal/display"
)

func main() {
	romPath := flag.String("rom", "", "path to a raw PRG-ROM/CHR-ROM pair (see -prg-size/-chr-size)")
	prgSize := flag.Int("prg-size", 0x8000, "PRG-ROM size in bytes")
	chrSize := flag.Int("chr-size", 0x2000, "CHR-ROM size in bytes")
	mapperID := flag.Int("mapper", 0, "iNES mapper number (0, 1, or 4)")
	scale := flag.Int("scale", 3, "integer window scale")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("gones-gui: -rom is required (raw PRG+CHR payload; iNES parsing is outside this core)")
	}

	data, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("gones-gui: %v", err)
	}
	if len(data) < *prgSize+*chrSize {
		log.Fatalf("gones-gui: rom file too small for prg-size+chr-size")
	}

	desc := &cartdesc.Cartridge{
		PRGROM: data[:*prgSize],
		CHRROM: data[*prgSize : *prgSize+*chrSize],
		Mapper: uint8(*mapperID),
		Mirror: cartdesc.MirrorHorizontal,
	}

	nes, err := console.New(desc, config.Default())
	if err != nil {
		log.Fatalf("gones-gui: %v", err)
	}

	binding := func() (up, down, left, right, a, b, start, sel bool) {
		return ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			ebiten.IsKeyPressed(ebiten.KeyZ),
			ebiten.IsKeyPressed(ebiten.KeyX),
			ebiten.IsKeyPressed(ebiten.KeyEnter),
			ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	}

	windowScale := *scale
	game := display.NewGame(nes, binding, windowScale)
	ebiten.SetWindowSize(256*windowScale, 240*windowScale)
	ebiten.SetWindowTitle("gones")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("gones-gui: %v", err)
	}
}
