package gb

const (
	oamBase       = 0xFE00
	oamEntrySize  = 4
	oamEntryCount = 40
)

// spriteAttr is one 4-byte OAM entry: Y, X, tile index, and flags.
type spriteAttr struct {
	y, x, tile, flags byte
}

// readSprite reads OAM entry i (0..39) from the bus.
func readSprite(bus *Bus, i int) spriteAttr {
	base := uint16(oamBase + i*oamEntrySize)
	return spriteAttr{
		y:     bus.Read8(base),
		x:     bus.Read8(base + 1),
		tile:  bus.Read8(base + 2),
		flags: bus.Read8(base + 3),
	}
}

// placeholder reports whether this is an off-screen placeholder entry
// (y or x is zero), which the composer skips entirely.
func (s spriteAttr) placeholder() bool {
	return s.y == 0 || s.x == 0
}

// screenY is the sprite's top row on screen, after the -16 adjustment.
func (s spriteAttr) screenY() int { return int(s.y) - 16 }

// screenX is the sprite's left column on screen, after the -8
// adjustment.
func (s spriteAttr) screenX() int { return int(s.x) - 8 }
