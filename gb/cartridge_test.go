package gb

import "testing"

func TestNewCartridgeSplitsBanks(t *testing.T) {
	data := make([]byte, 0x8000)
	data[0] = 0x01
	data[0x4000] = 0x02

	c := NewCartridge(data)

	if c.Bank0[0] != 0x01 {
		t.Errorf("Bank0[0] = %#02x, want 0x01", c.Bank0[0])
	}
	if c.BankN[0] != 0x02 {
		t.Errorf("BankN[0] = %#02x, want 0x02", c.BankN[0])
	}
}

func TestNewCartridgeShortImageZeroFills(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	c := NewCartridge(data)

	if c.Bank0[0] != 0xAA || c.Bank0[1] != 0xBB {
		t.Fatalf("Bank0 head = %#02x %#02x, want AA BB", c.Bank0[0], c.Bank0[1])
	}
	if c.Bank0[2] != 0x00 {
		t.Errorf("Bank0[2] = %#02x, want 0x00", c.Bank0[2])
	}
	if c.BankN[0] != 0x00 {
		t.Errorf("BankN[0] = %#02x, want 0x00 for an image shorter than 16KiB", c.BankN[0])
	}
}

func TestNewBootROMCopiesUpTo256Bytes(t *testing.T) {
	img := make([]byte, 0x100)
	img[0xFF] = 0x7F
	b := NewBootROM(img)

	if b.data[0xFF] != 0x7F {
		t.Errorf("data[0xFF] = %#02x, want 0x7F", b.data[0xFF])
	}
}
