package gb

const (
	tileDataUnsignedBase = 0x8000
	tileBytesPerTile     = 16
)

// tileRow returns the 8 2-bit-per-pixel color indices (0-3) for row y
// of the tile at VRAM address tileAddr (the address of the tile's
// first of 16 bytes). For row y the low bitplane is byte 2y and the
// high bitplane is byte 2y+1 -- not the same byte read twice, which is
// a bug some reference sources carry.
func tileRow(bus *Bus, tileAddr uint16, y int) [8]byte {
	lowPlane := bus.Read8(tileAddr + uint16(2*y))
	highPlane := bus.Read8(tileAddr + uint16(2*y) + 1)

	var row [8]byte
	for x := 0; x < 8; x++ {
		bit := uint(7 - x)
		lo := (lowPlane >> bit) & 1
		hi := (highPlane >> bit) & 1
		row[x] = lo | hi<<1
	}
	return row
}

// tileAddress resolves a tile index to its VRAM base address per the
// LCDC tile-data-select bit: unsigned indexing from 0x8000 when
// unsignedAddressing is true, signed indexing from 0x9000 otherwise.
func tileAddress(id byte, unsignedAddressing bool) uint16 {
	if unsignedAddressing {
		return tileDataUnsignedBase + uint16(id)*tileBytesPerTile
	}
	signedID := int16(int8(id))
	return uint16(int32(0x9000) + int32(signedID)*tileBytesPerTile)
}
