package gb

import "log"

// Instruction is one entry of the instruction table: how an opcode is
// disassembled, how many M-cycles it costs before the executor can
// possibly rewrite that cost, which executor implements it, and the
// operand descriptor that executor expects. Present is false for the
// documented table holes (the CB marker in the primary table, the gap
// opcodes, and HALT).
type Instruction struct {
	Mnemonic string
	Cycles   int
	Exec     func(c *CPU, op Operand)
	Operand  Operand
	Present  bool
}

// cbPrefixMarker is the primary-table opcode that switches decoding to
// the extended (bit-manipulation) table.
const cbPrefixMarker = 0xCB

// CPU is the fetch/decode/execute loop (component E) bound to one
// register file and one bus. It carries no state needed by the PPU;
// the PPU is driven separately by the caller using Bus.Cycles.
type CPU struct {
	Regs Registers
	Bus  *Bus

	// Logger, when non-nil, receives one line per executed
	// instruction. Disassembly strings are only formatted when this
	// is set, so the steady-state path pays nothing for it.
	Logger *log.Logger

	lastPC   uint16
	lastText string
}

// NewCPU creates a CPU with PC at 0x0000, the state before boot
// handoff. A boot ROM that jumps elsewhere will move PC itself.
func NewCPU(bus *Bus) *CPU {
	return &CPU{Bus: bus}
}

// Step performs exactly one instruction: fetch (with CB prefix
// handling), decode, seed the bus cycle budget, execute, and return
// any fatal error. The final cycle count the caller should hand to the
// PPU is left on c.Bus.Cycles.
func (c *CPU) Step() error {
	startPC := c.Regs.PC

	first := c.Bus.Read8(c.Regs.PC)

	var opcode byte
	var table *[256]Instruction
	prefixed := first == cbPrefixMarker
	if prefixed {
		c.Regs.PC++
		opcode = c.Bus.Read8(c.Regs.PC)
		table = &cbTable
	} else {
		opcode = first
		table = &primaryTable
	}

	inst := table[opcode]
	if !inst.Present {
		return NewUnknownOpcodeError(startPC, prefixed, opcode)
	}

	c.Bus.Cycles = inst.Cycles
	inst.Exec(c, inst.Operand)

	if c.Logger != nil {
		c.lastPC = startPC
		c.lastText = Disassemble(startPC, inst, prefixed, opcode)
		c.Logger.Println(c.lastText)
	}

	return nil
}

// DebugString reports the most recently logged disassembly line, or
// the empty string if logging is disabled.
func (c *CPU) DebugString() string {
	return c.lastText
}

// signExtend8 sign-extends an 8-bit immediate to int16, for relative
// jump / SP-offset arithmetic.
func signExtend8(b byte) int16 {
	return int16(int8(b))
}
