package ppu

// evaluateSprites runs the dot-257 sprite evaluation: scan the 64 OAM
// entries in order, keep up to 8 whose Y places the current scanline
// inside the sprite, and flag overflow (approximated, per spec) when
// a ninth would match.
func (p *PPU) evaluateSprites() {
	height := p.spriteHeight()
	p.spriteCount = 0
	p.sprite0OnLine = false

	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := p.scanline - y
		if row < 0 || row >= height {
			continue
		}
		if p.spriteCount == 8 {
			p.status |= 0x20
			break
		}
		idx := p.spriteCount
		p.spriteAttr[idx] = p.oam[i*4+2]
		p.spriteX[idx] = p.oam[i*4+3]
		p.secondary[idx*4+0] = p.oam[i*4+0]
		p.secondary[idx*4+1] = p.oam[i*4+1]
		p.secondary[idx*4+2] = p.oam[i*4+2]
		p.secondary[idx*4+3] = p.oam[i*4+3]
		p.spriteIsZero[idx] = i == 0
		if i == 0 {
			p.sprite0OnLine = true
		}
		p.spriteCount++
	}
}

// fetchSpritePatterns runs the dot-321 pattern fetch for every sprite
// selected by evaluateSprites.
func (p *PPU) fetchSpritePatterns() {
	height := p.spriteHeight()
	for i := 0; i < p.spriteCount; i++ {
		y := int(p.secondary[i*4+0])
		tile := p.secondary[i*4+1]
		attr := p.secondary[i*4+2]
		row := p.scanline - y
		flipV := attr&0x80 != 0
		flipH := attr&0x40 != 0

		if flipV {
			row = height - 1 - row
		}

		var base uint16
		var patternRow int
		if height == 16 {
			table := uint16(tile&0x01) * 0x1000
			tileIdx := tile &^ 0x01
			if row >= 8 {
				tileIdx++
				row -= 8
			}
			base = table
			tile = tileIdx
			patternRow = row
		} else {
			base = p.spritePatternBase()
			patternRow = row
		}

		lo := p.readVRAM(base + uint16(tile)*16 + uint16(patternRow))
		hi := p.readVRAM(base + uint16(tile)*16 + uint16(patternRow) + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}
		p.spritePatternLo[i] = lo
		p.spritePatternHi[i] = hi
	}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// spritePixel returns the first matching sprite's color index (0-3),
// palette number (0-3), priority (true if behind background), and
// whether it is sprite 0, for screen column x.
func (p *PPU) spritePixel(x int) (colorIdx, paletteNum uint8, behind, isZero bool) {
	if !p.showSprites() {
		return 0, 0, false, false
	}
	for i := 0; i < p.spriteCount; i++ {
		offset := x - int(p.spriteX[i])
		if offset < 0 || offset > 7 {
			continue
		}
		bit := uint(7 - offset)
		lo := (p.spritePatternLo[i] >> bit) & 1
		hi := (p.spritePatternHi[i] >> bit) & 1
		c := lo | (hi << 1)
		if c == 0 {
			continue
		}
		attr := p.spriteAttr[i]
		return c, attr & 0x03, attr&0x20 != 0, p.spriteIsZero[i]
	}
	return 0, 0, false, false
}
