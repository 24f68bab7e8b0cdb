package gb

// Region bounds, inclusive, per the address-space map.
const (
	addrBootEnd     = 0x00FF
	addrBank0End    = 0x3FFF
	addrBankNStart  = 0x4000
	addrBankNEnd    = 0x7FFF
	addrVRAMStart   = 0x8000
	addrVRAMEnd     = 0x9FFF
	addrCRAMStart   = 0xA000
	addrCRAMEnd     = 0xBFFF
	addrIRAMStart   = 0xC000
	addrIRAMEnd     = 0xDFFF
	addrEchoStart   = 0xE000
	addrEchoEnd     = 0xFDFF
	addrHighStart   = 0xFE00
	addrHighEnd     = 0xFFFF
	addrBootDisable = 0xFF50
)

// I/O register addresses the PPU and its collaborators read/write.
const (
	IOLCDC = 0xFF40
	IOSCY  = 0xFF42
	IOSCX  = 0xFF43
	IOLY   = 0xFF44
	IOWY   = 0xFF4A
	IOWX   = 0xFF4B
)

// Bus is the address-decoded memory router. It owns every backing byte
// array; the CPU and PPU each borrow it mutably for the duration of
// one step and never hold a reference across steps.
type Bus struct {
	boot        *BootROM
	bootEnabled bool

	cart *Cartridge

	vram [addrVRAMEnd - addrVRAMStart + 1]byte
	cram [addrCRAMEnd - addrCRAMStart + 1]byte
	iram [addrIRAMEnd - addrIRAMStart + 1]byte
	high [addrHighEnd - addrHighStart + 1]byte // OAM, I/O regs, HRAM, IE

	// Cycles is seeded by the CPU step with the current instruction's
	// base M-cycle cost before the executor runs, and may be
	// overwritten by the executor (untaken branch/call/return). The
	// PPU is driven by the final value after the executor returns.
	Cycles int
}

// NewBus wires a boot image and a cartridge image into a fresh bus
// with the boot overlay enabled.
func NewBus(boot *BootROM, cart *Cartridge) *Bus {
	return &Bus{
		boot:        boot,
		bootEnabled: true,
		cart:        cart,
	}
}

// Read8 routes a single byte read by address.
func (b *Bus) Read8(addr uint16) byte {
	switch {
	case addr <= addrBootEnd && b.bootEnabled:
		return b.boot.data[addr]
	case addr <= addrBank0End:
		return b.cart.Bank0[addr]
	case addr >= addrBankNStart && addr <= addrBankNEnd:
		return b.cart.BankN[addr-addrBankNStart]
	case addr >= addrVRAMStart && addr <= addrVRAMEnd:
		return b.vram[addr-addrVRAMStart]
	case addr >= addrCRAMStart && addr <= addrCRAMEnd:
		return b.cram[addr-addrCRAMStart]
	case addr >= addrIRAMStart && addr <= addrIRAMEnd:
		return b.iram[addr-addrIRAMStart]
	case addr >= addrEchoStart && addr <= addrEchoEnd:
		return b.iram[addr-addrEchoStart]
	case addr >= addrHighStart:
		return b.high[addr-addrHighStart]
	default:
		return 0
	}
}

// Write8 routes a single byte write by address. A write to 0xFF50
// irreversibly disables the boot overlay for the remainder of the run.
func (b *Bus) Write8(addr uint16, v byte) {
	switch {
	case addr == addrBootDisable:
		b.high[addr-addrHighStart] = v
		b.bootEnabled = false
	case addr <= addrBootEnd && b.bootEnabled:
		b.boot.data[addr] = v
	case addr <= addrBank0End:
		b.cart.Bank0[addr] = v
	case addr >= addrBankNStart && addr <= addrBankNEnd:
		b.cart.BankN[addr-addrBankNStart] = v
	case addr >= addrVRAMStart && addr <= addrVRAMEnd:
		b.vram[addr-addrVRAMStart] = v
	case addr >= addrCRAMStart && addr <= addrCRAMEnd:
		b.cram[addr-addrCRAMStart] = v
	case addr >= addrIRAMStart && addr <= addrIRAMEnd:
		b.iram[addr-addrIRAMStart] = v
	case addr >= addrEchoStart && addr <= addrEchoEnd:
		b.iram[addr-addrEchoStart] = v
	case addr >= addrHighStart:
		b.high[addr-addrHighStart] = v
	}
}

// Read16 reads a little-endian word: low byte at addr, high byte at
// addr+1.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write16 writes v little-endian. The high byte is written first,
// which is observably identical to writing low-then-high for any of
// the RAM-backed regions this bus models.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr+1, byte(v>>8))
	b.Write8(addr, byte(v))
}

// BootEnabled reports whether the boot overlay is still active.
func (b *Bus) BootEnabled() bool { return b.bootEnabled }
