package gb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters16Composition(t *testing.T) {
	var r Registers
	r.B, r.C = 0x12, 0x34
	r.D, r.E = 0x56, 0x78
	r.H, r.L = 0x9A, 0xBC

	assert.Equal(t, uint16(0x1234), r.Read16(RegBC))
	assert.Equal(t, uint16(0x5678), r.Read16(RegDE))
	assert.Equal(t, uint16(0x9ABC), r.Read16(RegHL))
}

// TestWriteAFMasksLowNibble covers invariant 2: writes to F via AF mask
// the low nibble to zero.
func TestWriteAFMasksLowNibble(t *testing.T) {
	var r Registers
	r.Write16(RegAF, 0x12FF)

	assert.EqualValues(t, 0xF0, r.F)
	assert.EqualValues(t, 0x12, r.A)
}

func TestSetFlagsNilLeavesUnchanged(t *testing.T) {
	var r Registers
	r.F = 0xF0
	r.SetFlags(flagRef(false), nil, nil, nil)

	assert.True(t, r.GetFlag(FlagN), "SetFlags with nil mutated an untouched flag")
	assert.True(t, r.GetFlag(FlagH), "SetFlags with nil mutated an untouched flag")
	assert.True(t, r.GetFlag(FlagC), "SetFlags with nil mutated an untouched flag")
	assert.False(t, r.GetFlag(FlagZ))
}

// TestSetFlagsAlwaysMasksLowNibble covers invariant 1.
func TestSetFlagsAlwaysMasksLowNibble(t *testing.T) {
	var r Registers
	r.F = 0xFF // low nibble deliberately dirty
	r.SetFlags(nil, nil, nil, nil)

	assert.Zero(t, r.F&0x0F)
}

func TestPushPopRoundTrip(t *testing.T) {
	bus := NewBus(NewBootROM(nil), NewCartridge(make([]byte, 0x8000)))
	var r Registers
	r.SP = 0xFFFE

	r.Push16(0xBEEF, bus)
	got := r.Pop16(bus)

	assert.Equal(t, uint16(0xBEEF), got)
	assert.Equal(t, uint16(0xFFFE), r.SP)
}

// TestPushPopStackLayout checks push writes the high byte at SP+1 and
// the low byte at SP, per the spec's little-endian stack note.
func TestPushPopStackLayout(t *testing.T) {
	bus := NewBus(NewBootROM(nil), NewCartridge(make([]byte, 0x8000)))
	var r Registers
	r.SP = 0xC010

	r.Push16(0x1234, bus)

	assert.EqualValues(t, 0x34, bus.Read8(0xC00E), "low byte at SP")
	assert.EqualValues(t, 0x12, bus.Read8(0xC00F), "high byte at SP+1")
	assert.Equal(t, uint16(0xC00E), r.SP)
}
