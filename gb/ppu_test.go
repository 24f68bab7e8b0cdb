package gb

import "testing"

func newTestBusWithLCDC(lcdc byte) *Bus {
	bus := newTestBus()
	bus.Write8(IOLCDC, lcdc)
	return bus
}

func TestPPUModeTransitionsWithinOneLine(t *testing.T) {
	bus := newTestBusWithLCDC(0x91) // LCD on, BG on, unsigned tile data
	ppu := NewPPU()
	frame := make([]byte, FrameBytes)

	if ready := ppu.Step(bus, 20, frame); ready { // 20 M-cycles = 80 dots
		t.Fatal("frame should not be ready yet")
	}
	if ppu.Mode != ModeVRAM {
		t.Fatalf("mode = %v, want VRAM after 80 dots", ppu.Mode)
	}

	if ready := ppu.Step(bus, 42, frame); ready { // 42*4 = 168 dots
		t.Fatal("frame should not be ready yet")
	}
	if ppu.Mode != ModeHBlank {
		t.Fatalf("mode = %v, want HBlank after a further 168 dots", ppu.Mode)
	}
}

// TestOneFrameRaisesExactlyOneSignal covers invariant 8: feeding a full
// frame's worth of dots (456*154) from OAM/LY=0 raises exactly one
// frame-ready signal and returns LY to 0.
func TestOneFrameRaisesExactlyOneSignal(t *testing.T) {
	bus := newTestBusWithLCDC(0x91)
	ppu := NewPPU()
	frame := make([]byte, FrameBytes)

	totalDots := dotsPerLine * 154
	cycles := totalDots / 4

	signals := 0
	// Feed the whole frame one M-cycle at a time so a bug that raises
	// the signal more than once, or at the wrong boundary, is caught.
	for i := 0; i < cycles; i++ {
		if ppu.Step(bus, 1, frame) {
			signals++
		}
	}

	if signals != 1 {
		t.Errorf("signals = %d, want exactly 1", signals)
	}
	if ppu.LY != 0 {
		t.Errorf("LY = %d, want 0", ppu.LY)
	}
	if ppu.Mode != ModeOAM {
		t.Errorf("mode = %v, want OAM", ppu.Mode)
	}
}

func TestFrameReadySignalAtVBlankWraparound(t *testing.T) {
	bus := newTestBusWithLCDC(0x91)
	ppu := NewPPU()
	frame := make([]byte, FrameBytes)

	// Drive to LY=153 in VBLANK without yet crossing the wraparound:
	// 153 full lines of dotsPerLine dots each.
	dotsToLine153 := 153 * dotsPerLine
	ppu.Step(bus, dotsToLine153/4, frame)
	if ppu.Mode != ModeVBlank || ppu.LY != 153 {
		t.Fatalf("mode=%v LY=%d, want VBlank/153", ppu.Mode, ppu.LY)
	}

	if ready := ppu.Step(bus, dotsPerLine/4, frame); !ready {
		t.Fatal("expected frame-ready at the LY=153 -> 0 wraparound")
	}
	if ppu.LY != 0 || ppu.Mode != ModeOAM {
		t.Fatalf("after wraparound mode=%v LY=%d, want OAM/0", ppu.Mode, ppu.LY)
	}
}

func TestScanlineCompositesBackgroundTile(t *testing.T) {
	bus := newTestBusWithLCDC(0x91) // bit0 BG on, bit4 unsigned addressing
	// Tile 0 at 0x8000: row 0 all color index 3 (both bitplanes 0xFF).
	bus.Write8(0x8000, 0xFF)
	bus.Write8(0x8001, 0xFF)
	// Background tile map at 0x9800, tile (0,0) = tile index 0.
	bus.Write8(0x9800, 0x00)

	ppu := NewPPU()
	frame := make([]byte, FrameBytes)

	ppu.Step(bus, dotsOAM/4, frame)   // -> VRAM, latches
	ppu.Step(bus, dotsVRAM/4, frame)  // -> HBlank, scanline 0 emitted

	if frame[0] != 0x00 || frame[1] != 0x00 || frame[2] != 0x00 {
		t.Errorf("pixel 0 = % x, want all-black (color index 3)", frame[0:3])
	}
}

func TestSpriteTransparencyIndexZero(t *testing.T) {
	bus := newTestBusWithLCDC(0x93) // BG + sprites on
	// Background tile 0: all color 0 (white).
	bus.Write8(0x8000, 0x00)
	bus.Write8(0x8001, 0x00)
	bus.Write8(0x9800, 0x00)

	// Sprite tile 1: row 0 all transparent (index 0).
	bus.Write8(0x8010, 0x00)
	bus.Write8(0x8011, 0x00)

	// OAM entry 0: y=16 (screen row 0), x=8 (screen col 0), tile 1.
	bus.Write8(0xFE00, 16)
	bus.Write8(0xFE01, 8)
	bus.Write8(0xFE02, 1)
	bus.Write8(0xFE03, 0)

	ppu := NewPPU()
	frame := make([]byte, FrameBytes)
	ppu.Step(bus, dotsOAM/4, frame)
	ppu.Step(bus, dotsVRAM/4, frame)

	if frame[0] != 0xFF {
		t.Errorf("pixel 0 = %#02x, want 0xFF (background shows through transparent sprite)", frame[0])
	}
}
