package gb

// FrameWidth and FrameHeight are the console's native framebuffer
// dimensions; FrameBytes is the row-major, 3-bytes-per-pixel buffer
// size a caller must provide to Step.
const (
	FrameWidth  = 160
	FrameHeight = 144
	FrameBytes  = FrameWidth * FrameHeight * 3
)

// palette maps a tile's 2-bit color index to the fixed grayscale ramp,
// replicated across R, G, B.
var palette = [4]byte{0xFF, 0xA0, 0x60, 0x00}

const (
	dotsOAM     = 80
	dotsVRAM    = 168
	dotsHBlank  = 208
	dotsPerLine = dotsOAM + dotsVRAM + dotsHBlank
	firstBlankLine = 144
	lastLine       = 153
)

// PPUMode is one state of the OAM->VRAM->HBLANK->VBLANK cycle.
type PPUMode int

const (
	ModeOAM PPUMode = iota
	ModeVRAM
	ModeHBlank
	ModeVBlank
)

// lcdcBits is LCDC (0xFF40) decoded once per scanline into its eight
// named fields, rather than re-masked on every pixel.
type lcdcBits struct {
	bgEnable          bool
	spriteEnable      bool
	bigSprites        bool
	bgTileMapHigh     bool
	tileDataUnsigned  bool
	windowEnable      bool
	windowTileMapHigh bool
	lcdEnable         bool
}

func decodeLCDC(v byte) lcdcBits {
	return lcdcBits{
		bgEnable:          v&0x01 != 0,
		spriteEnable:      v&0x02 != 0,
		bigSprites:        v&0x04 != 0,
		bgTileMapHigh:     v&0x08 != 0,
		tileDataUnsigned:  v&0x10 != 0,
		windowEnable:      v&0x20 != 0,
		windowTileMapHigh: v&0x40 != 0,
		lcdEnable:         v&0x80 != 0,
	}
}

// PPU is the pixel-processing unit: current mode, dot counter within
// that mode, current scanline, the window origin latched at each
// OAM entry, and the decoded LCDC mirror. windowLine is a second,
// independent scanline counter that only advances on rows where the
// window was actually drawn -- the window can start partway down the
// screen, and its own tile rows must not skip ahead when it does.
type PPU struct {
	Mode PPUMode
	Dots int
	LY   byte

	WX, WY byte
	lcdc   lcdcBits

	windowLine int
}

// NewPPU creates a PPU at the start of a frame: OAM, LY 0.
func NewPPU() *PPU {
	return &PPU{Mode: ModeOAM}
}

// Step advances the PPU by the given CPU M-cycle count (converted to
// dots) against the supplied bus, compositing completed scanlines into
// frame (which must be FrameBytes long). It returns true exactly on
// the VBLANK-to-OAM wraparound from LY=153, once per frame.
func (p *PPU) Step(bus *Bus, cycles int, frame []byte) bool {
	p.Dots += cycles * 4
	frameReady := false
	for p.Dots >= p.modeBudget() {
		p.Dots -= p.modeBudget()
		if p.transition(bus, frame) {
			frameReady = true
		}
	}
	return frameReady
}

func (p *PPU) modeBudget() int {
	switch p.Mode {
	case ModeOAM:
		return dotsOAM
	case ModeVRAM:
		return dotsVRAM
	case ModeHBlank:
		return dotsHBlank
	default:
		return dotsPerLine
	}
}

func (p *PPU) latchWindowOrigin(bus *Bus) {
	p.WX = bus.Read8(IOWX)
	p.WY = bus.Read8(IOWY)
}

func (p *PPU) transition(bus *Bus, frame []byte) bool {
	switch p.Mode {
	case ModeOAM:
		p.lcdc = decodeLCDC(bus.Read8(IOLCDC))
		p.latchWindowOrigin(bus)
		p.Mode = ModeVRAM

	case ModeVRAM:
		p.renderScanline(bus, frame)
		p.Mode = ModeHBlank

	case ModeHBlank:
		p.LY++
		bus.Write8(IOLY, p.LY)
		if p.LY == firstBlankLine {
			p.Mode = ModeVBlank
		} else {
			p.Mode = ModeOAM
			p.latchWindowOrigin(bus)
		}

	case ModeVBlank:
		if p.LY == lastLine {
			p.LY = 0
			bus.Write8(IOLY, p.LY)
			p.windowLine = 0
			p.Mode = ModeOAM
			p.latchWindowOrigin(bus)
			return true
		}
		p.LY++
		bus.Write8(IOLY, p.LY)
	}
	return false
}

// renderScanline composites background, window, and sprite layers for
// the current LY into frame, reading SCY/SCX fresh (they are not
// latched like WX/WY).
func (p *PPU) renderScanline(bus *Bus, frame []byte) {
	if !p.lcdc.lcdEnable {
		return
	}

	scy := bus.Read8(IOSCY)
	scx := bus.Read8(IOSCX)
	ly := int(p.LY)

	windowDrawn := false
	for x := 0; x < FrameWidth; x++ {
		switch {
		case p.lcdc.windowEnable && ly >= int(p.WY) && x+7 >= int(p.WX):
			wx := x - (int(p.WX) - 7)
			idx := p.tileMapIndex(bus, p.lcdc.windowTileMapHigh, wx/8, p.windowLine/8)
			row := tileRow(bus, tileAddress(idx, p.lcdc.tileDataUnsigned), p.windowLine%8)
			p.writePixel(frame, x, palette[row[wx%8]])
			windowDrawn = true

		case p.lcdc.bgEnable:
			bgX := (x + int(scx)) & 0xFF
			bgY := (ly + int(scy)) & 0xFF
			idx := p.tileMapIndex(bus, p.lcdc.bgTileMapHigh, bgX/8, bgY/8)
			row := tileRow(bus, tileAddress(idx, p.lcdc.tileDataUnsigned), bgY%8)
			p.writePixel(frame, x, palette[row[bgX%8]])
		}
	}

	if p.lcdc.spriteEnable {
		p.renderSprites(bus, frame)
	}

	if windowDrawn {
		p.windowLine++
	}
}

// tileMapIndex reads one byte of a 32x32 tile map (0x9800 or 0x9C00),
// wrapping col/row at 32.
func (p *PPU) tileMapIndex(bus *Bus, high bool, col, row int) byte {
	base := uint16(0x9800)
	if high {
		base = 0x9C00
	}
	return bus.Read8(base + uint16((row%32)*32+(col%32)))
}

// renderSprites composites up to 40 OAM entries onto the current
// scanline. Sprites always use unsigned tile addressing regardless of
// LCDC bit 4. Color index 0 is transparent. Priority, flips, and
// per-sprite palette selection are not modeled -- the source this is
// grounded on leaves them incomplete too.
func (p *PPU) renderSprites(bus *Bus, frame []byte) {
	height := 8
	if p.lcdc.bigSprites {
		height = 16
	}
	ly := int(p.LY)

	for i := 0; i < oamEntryCount; i++ {
		s := readSprite(bus, i)
		if s.placeholder() {
			continue
		}
		sy := s.screenY()
		if ly < sy || ly >= sy+height {
			continue
		}
		sx := s.screenX()

		tileID := s.tile
		rowInTile := ly - sy
		if p.lcdc.bigSprites {
			tileID &^= 0x01
			if rowInTile >= 8 {
				tileID |= 0x01
				rowInTile -= 8
			}
		}

		row := tileRow(bus, tileAddress(tileID, true), rowInTile)
		for px := 0; px < 8; px++ {
			x := sx + px
			if x < 0 || x >= FrameWidth {
				continue
			}
			ci := row[px]
			if ci == 0 {
				continue
			}
			p.writePixel(frame, x, palette[ci])
		}
	}
}

func (p *PPU) writePixel(frame []byte, x int, color byte) {
	offset := (int(p.LY)*FrameWidth + x) * 3
	frame[offset] = color
	frame[offset+1] = color
	frame[offset+2] = color
}
