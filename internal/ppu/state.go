package ppu

// State is a snapshot of all PPU-internal state: scroll/address
// latches, OAM, nametable and palette RAM, the background/sprite
// pipelines, and the frame buffer. It holds no mapper reference;
// restoring it onto a PPU wired to a different mapper works fine.
type State struct {
	V, T uint16
	X    uint8
	W    bool

	Ctrl, Mask, Status, OAMAddr uint8

	OAM       [256]uint8
	Secondary [32]uint8

	Nametable  [4096]uint8
	Palette    [32]uint8
	ReadBuffer uint8
	IOLatch    uint8

	Scanline, Dot int
	OddFrame      bool

	FrameComplete bool
	NMIPending    bool

	Frame [frameWidth * frameHeight]uint8

	NextTileID, NextTileAttr, NextTileLo, NextTileHi uint8
	BgShiftLo, BgShiftHi                              uint16
	BgAttrShiftLo, BgAttrShiftHi                       uint16

	SpriteCount      int
	SpritePatternLo  [8]uint8
	SpritePatternHi  [8]uint8
	SpriteX          [8]uint8
	SpriteAttr       [8]uint8
	SpriteIsZero     [8]bool
	Sprite0OnLine    bool
	Sprite0Rendering bool

	LastA12 bool
}

// SaveState captures the PPU's full mutable state as a value.
func (p *PPU) SaveState() State {
	return State{
		V: p.v, T: p.t, X: p.x, W: p.w,
		Ctrl: p.ctrl, Mask: p.mask, Status: p.status, OAMAddr: p.oamAddr,
		OAM: p.oam, Secondary: p.secondary,
		Nametable: p.nametable, Palette: p.palette, ReadBuffer: p.readBuffer, IOLatch: p.ioLatch,
		Scanline: p.scanline, Dot: p.dot, OddFrame: p.oddFrame,
		FrameComplete: p.frameComplete, NMIPending: p.nmiPending,
		Frame: p.frame,
		NextTileID: p.nextTileID, NextTileAttr: p.nextTileAttr, NextTileLo: p.nextTileLo, NextTileHi: p.nextTileHi,
		BgShiftLo: p.bgShiftLo, BgShiftHi: p.bgShiftHi,
		BgAttrShiftLo: p.bgAttrShiftLo, BgAttrShiftHi: p.bgAttrShiftHi,
		SpriteCount: p.spriteCount,
		SpritePatternLo: p.spritePatternLo, SpritePatternHi: p.spritePatternHi,
		SpriteX: p.spriteX, SpriteAttr: p.spriteAttr, SpriteIsZero: p.spriteIsZero,
		Sprite0OnLine: p.sprite0OnLine, Sprite0Rendering: p.sprite0Rendering,
		LastA12: p.lastA12,
	}
}

// LoadState restores a snapshot taken by SaveState. The attached
// mapper is left untouched.
func (p *PPU) LoadState(s State) {
	p.v, p.t, p.x, p.w = s.V, s.T, s.X, s.W
	p.ctrl, p.mask, p.status, p.oamAddr = s.Ctrl, s.Mask, s.Status, s.OAMAddr
	p.oam, p.secondary = s.OAM, s.Secondary
	p.nametable, p.palette, p.readBuffer, p.ioLatch = s.Nametable, s.Palette, s.ReadBuffer, s.IOLatch
	p.scanline, p.dot, p.oddFrame = s.Scanline, s.Dot, s.OddFrame
	p.frameComplete, p.nmiPending = s.FrameComplete, s.NMIPending
	p.frame = s.Frame
	p.nextTileID, p.nextTileAttr, p.nextTileLo, p.nextTileHi = s.NextTileID, s.NextTileAttr, s.NextTileLo, s.NextTileHi
	p.bgShiftLo, p.bgShiftHi = s.BgShiftLo, s.BgShiftHi
	p.bgAttrShiftLo, p.bgAttrShiftHi = s.BgAttrShiftLo, s.BgAttrShiftHi
	p.spriteCount = s.SpriteCount
	p.spritePatternLo, p.spritePatternHi = s.SpritePatternLo, s.SpritePatternHi
	p.spriteX, p.spriteAttr, p.spriteIsZero = s.SpriteX, s.SpriteAttr, s.SpriteIsZero
	p.sprite0OnLine, p.sprite0Rendering = s.Sprite0OnLine, s.Sprite0Rendering
	p.lastA12 = s.LastA12
}
