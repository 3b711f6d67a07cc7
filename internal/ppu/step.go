package ppu

// Step advances the PPU by exactly one dot: background fetch pipeline,
// sprite evaluation, pixel emission, VBlank/NMI edges, and the
// dot/scanline counters themselves.
func (p *PPU) Step() {
	rendering := p.scanline <= 239 || p.scanline == 261
	if rendering && p.renderingEnabled() {
		p.renderStep()
	}

	if p.scanline <= 239 && p.dot >= 1 && p.dot <= 256 {
		p.emitPixel()
	}

	if p.scanline == 241 && p.dot == 1 {
		p.status |= 0x80
		if p.ctrl&0x80 != 0 {
			p.nmiPending = true
		}
		p.frameComplete = true
	}

	if p.scanline == 261 && p.dot == 1 {
		p.status &^= 0xE0
		p.nmiPending = false
	}

	p.advance()
}

func (p *PPU) renderStep() {
	if (p.dot >= 1 && p.dot <= 256) || (p.dot >= 321 && p.dot <= 336) {
		p.shiftBackground()

		switch (p.dot - 1) % 8 {
		case 0:
			p.loadBackgroundShifters()
			p.nextTileID = p.readVRAM(0x2000 | (p.v & 0x0FFF))
		case 2:
			attrAddr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
			attr := p.readVRAM(attrAddr)
			if p.v&0x40 != 0 {
				attr >>= 4
			}
			if p.v&0x02 != 0 {
				attr >>= 2
			}
			p.nextTileAttr = attr & 0x03
		case 4:
			base := p.backgroundPatternBase()
			fineY := uint16(p.v>>12) & 0x07
			p.nextTileLo = p.readVRAM(base + uint16(p.nextTileID)*16 + fineY)
		case 6:
			base := p.backgroundPatternBase()
			fineY := uint16(p.v>>12) & 0x07
			p.nextTileHi = p.readVRAM(base + uint16(p.nextTileID)*16 + fineY + 8)
		case 7:
			p.incrementCoarseX()
		}
	}

	if p.dot == 256 {
		p.incrementY()
	}

	if p.dot == 257 {
		p.loadBackgroundShifters()
		p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
		p.evaluateSprites()
	}

	if p.dot == 321 {
		p.fetchSpritePatterns()
	}

	if p.scanline == 261 && p.dot >= 280 && p.dot <= 304 {
		p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
	}
}

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	coarseY := (p.v & 0x03E0) >> 5
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = (p.v &^ 0x03E0) | (coarseY << 5)
}

func (p *PPU) advance() {
	if p.scanline == 261 && p.dot == 340 && p.oddFrame && p.renderingEnabled() {
		p.dot = 0
		p.scanline = 0
		p.oddFrame = !p.oddFrame
		p.frameComplete = false
		return
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.oddFrame = !p.oddFrame
			p.frameComplete = false
		}
	}
}
