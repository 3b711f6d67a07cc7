package ppu

func (p *PPU) loadBackgroundShifters() {
	p.bgShiftLo = (p.bgShiftLo & 0xFF00) | uint16(p.nextTileLo)
	p.bgShiftHi = (p.bgShiftHi & 0xFF00) | uint16(p.nextTileHi)

	var lo, hi uint16
	if p.nextTileAttr&0x01 != 0 {
		lo = 0xFF
	}
	if p.nextTileAttr&0x02 != 0 {
		hi = 0xFF
	}
	p.bgAttrShiftLo = (p.bgAttrShiftLo & 0xFF00) | lo
	p.bgAttrShiftHi = (p.bgAttrShiftHi & 0xFF00) | hi
}

func (p *PPU) shiftBackground() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.bgAttrShiftLo <<= 1
	p.bgAttrShiftHi <<= 1
}

// backgroundPixel returns the background color index (0-3) and
// palette number (0-3) for the current dot, selected by fine-X
// against the shift registers.
func (p *PPU) backgroundPixel() (colorIdx, paletteNum uint8) {
	if !p.showBackground() {
		return 0, 0
	}
	mux := uint16(0x8000) >> p.x
	lo := uint8(0)
	if p.bgShiftLo&mux != 0 {
		lo = 1
	}
	hi := uint8(0)
	if p.bgShiftHi&mux != 0 {
		hi = 1
	}
	colorIdx = lo | (hi << 1)

	aLo := uint8(0)
	if p.bgAttrShiftLo&mux != 0 {
		aLo = 1
	}
	aHi := uint8(0)
	if p.bgAttrShiftHi&mux != 0 {
		aHi = 1
	}
	paletteNum = aLo | (aHi << 1)
	return colorIdx, paletteNum
}

func (p *PPU) emitPixel() {
	x := p.dot - 1

	bgColor, bgPalette := p.backgroundPixel()
	if x < 8 && p.clipBackgroundLeft() {
		bgColor = 0
	}

	spriteColor, spritePalette, spriteBehind, isSpriteZero := p.spritePixel(x)
	if x < 8 && p.clipSpritesLeft() {
		spriteColor = 0
	}

	var palAddr uint16
	switch {
	case bgColor == 0 && spriteColor == 0:
		palAddr = 0x3F00
	case bgColor == 0:
		palAddr = 0x3F10 + uint16(spritePalette)*4 + uint16(spriteColor)
	case spriteColor == 0:
		palAddr = 0x3F00 + uint16(bgPalette)*4 + uint16(bgColor)
	default:
		if isSpriteZero && p.showBackground() && p.showSprites() && x != 255 {
			leftClipped := x < 8 && (p.clipBackgroundLeft() || p.clipSpritesLeft())
			if !leftClipped {
				p.status |= 0x40
			}
		}
		if !spriteBehind {
			palAddr = 0x3F10 + uint16(spritePalette)*4 + uint16(spriteColor)
		} else {
			palAddr = 0x3F00 + uint16(bgPalette)*4 + uint16(bgColor)
		}
	}

	if !p.renderingEnabled() {
		palAddr = 0x3F00
	}

	p.frame[p.scanline*frameWidth+x] = p.readPalette(palAddr)
}
