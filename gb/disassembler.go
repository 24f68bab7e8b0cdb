package gb

import "fmt"

// Disassemble renders one executed instruction as a single log line:
// its address, the CB prefix marker when present, the opcode byte, and
// its mnemonic. It is only ever called when a Logger is attached, so it
// never runs on the steady-state hot path.
func Disassemble(pc uint16, inst Instruction, prefixed bool, opcode byte) string {
	if prefixed {
		return fmt.Sprintf("$%04X: CB %02X  %s", pc, opcode, inst.Mnemonic)
	}
	return fmt.Sprintf("$%04X: %02X     %s", pc, opcode, inst.Mnemonic)
}
