// Package display is the only internal package in this module that
// imports ebiten (cmd/gones-gui is the only other importer). It adapts a console.Console's frame buffer and controller
// state to an ebiten.Game, translating the core's palette-index frame
// buffer into an RGBA image each draw. It is not part of the emulator
// core: everything here is presentation, matching this project's
// choice to keep rendering, ROM loading, and keyboard mapping outside
// the core packages.
package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"gones/internal/console"
)

// nesPalette is the standard NES 64-entry RGB palette; index 6 bits
// from the core's frame buffer select into it.
var nesPalette = [64]color.RGBA{
	{124, 124, 124, 255}, {0, 0, 252, 255}, {0, 0, 188, 255}, {68, 40, 188, 255},
	{148, 0, 132, 255}, {168, 0, 32, 255}, {168, 16, 0, 255}, {136, 20, 0, 255},
	{80, 48, 0, 255}, {0, 120, 0, 255}, {0, 104, 0, 255}, {0, 88, 0, 255},
	{0, 64, 88, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{188, 188, 188, 255}, {0, 120, 248, 255}, {0, 88, 248, 255}, {104, 68, 252, 255},
	{216, 0, 204, 255}, {228, 0, 88, 255}, {248, 56, 0, 255}, {228, 92, 16, 255},
	{172, 124, 0, 255}, {0, 184, 0, 255}, {0, 168, 0, 255}, {0, 168, 68, 255},
	{0, 136, 136, 255}, {0, 0, 0, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{248, 248, 248, 255}, {60, 188, 252, 255}, {104, 136, 252, 255}, {152, 120, 248, 255},
	{248, 120, 248, 255}, {248, 88, 152, 255}, {248, 120, 88, 255}, {252, 160, 68, 255},
	{248, 184, 0, 255}, {184, 248, 24, 255}, {88, 216, 84, 255}, {88, 248, 152, 255},
	{0, 232, 216, 255}, {120, 120, 120, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
	{252, 252, 252, 255}, {164, 228, 252, 255}, {184, 184, 248, 255}, {216, 184, 248, 255},
	{248, 184, 248, 255}, {248, 164, 192, 255}, {240, 208, 176, 255}, {252, 224, 168, 255},
	{248, 216, 120, 255}, {216, 248, 120, 255}, {184, 248, 184, 255}, {184, 248, 216, 255},
	{0, 252, 252, 255}, {216, 216, 216, 255}, {0, 0, 0, 255}, {0, 0, 0, 255},
}

const (
	nesWidth  = 256
	nesHeight = 240
)

// Game adapts a console.Console to ebiten's update/draw/layout cycle.
// It reads controller state via the KeyBinding it was constructed
// with and never touches core semantics itself.
type Game struct {
	console *console.Console
	binding KeyBinding
	image   *ebiten.Image
	scale   int
}

// KeyBinding maps ebiten keys to controller buttons; supplying it here
// (rather than inside internal/input) keeps keyboard-to-button mapping
// out of the core, as an external, swappable concern.
type KeyBinding func() (up, down, left, right, a, b, start, select_ bool)

// NewGame creates an ebiten.Game rendering c's frame buffer at the
// given integer scale, polling buttons via binding once per Update.
func NewGame(c *console.Console, binding KeyBinding, scale int) *Game {
	return &Game{
		console: c,
		binding: binding,
		image:   ebiten.NewImage(nesWidth, nesHeight),
		scale:   scale,
	}
}

// Update advances the emulator by one displayed frame and applies the
// current key binding to controller 1.
func (g *Game) Update() error {
	up, down, left, right, a, b, start, sel := g.binding()
	pad := g.console.Pad1
	setButtons(pad, up, down, left, right, a, b, start, sel)

	g.console.StepFrame()
	return nil
}

// Draw blits the core's frame buffer, translated through the NES
// palette, onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	fb := g.console.PPU.FrameBuffer()
	pix := make([]byte, nesWidth*nesHeight*4)
	for i, idx := range fb {
		c := nesPalette[idx&0x3F]
		pix[i*4+0] = c.R
		pix[i*4+1] = c.G
		pix[i*4+2] = c.B
		pix[i*4+3] = c.A
	}
	g.image.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.image, op)
}

// Layout reports the window size for the configured scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nesWidth * g.scale, nesHeight * g.scale
}
