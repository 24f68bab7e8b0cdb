package gb

// cbTable is the 256-entry extended (CB-prefixed) instruction table:
// eight rows of shift/rotate/swap, then the BIT/RES/SET blocks, each
// row cycling r8Order. Register operands cost 2; (HL) costs 4, except
// BIT (HL) which only reads and costs 3.
var cbTable = buildCBTable()

func buildCBTable() [256]Instruction {
	var t [256]Instruction

	set := func(op byte, mnemonic string, cycles int, exec func(c *CPU, op Operand), operand Operand) {
		t[op] = Instruction{Mnemonic: mnemonic, Cycles: cycles, Exec: exec, Operand: operand, Present: true}
	}

	shiftRows := [8]ShiftKind{ShiftRLC, ShiftRRC, ShiftRL, ShiftRR, ShiftSLA, ShiftSRA, ShiftSwap, ShiftSRL}
	for rowIdx, kind := range shiftRows {
		for colIdx, target := range r8Order {
			op := byte(rowIdx*8 + colIdx)
			set(op, "shift r", cyclesOf8(target, 2, 4), execShift, ShiftOp{Kind: kind, Target: target})
		}
	}

	for bit := 0; bit < 8; bit++ {
		for colIdx, target := range r8Order {
			op := byte(0x40 + bit*8 + colIdx)
			set(op, "BIT b,r", cyclesOf8(target, 2, 3), execBitOp, BitOp{Kind: BitTest, Bit: byte(bit), Target: target})
		}
	}
	for bit := 0; bit < 8; bit++ {
		for colIdx, target := range r8Order {
			op := byte(0x80 + bit*8 + colIdx)
			set(op, "RES b,r", cyclesOf8(target, 2, 4), execBitOp, BitOp{Kind: BitRes, Bit: byte(bit), Target: target})
		}
	}
	for bit := 0; bit < 8; bit++ {
		for colIdx, target := range r8Order {
			op := byte(0xC0 + bit*8 + colIdx)
			set(op, "SET b,r", cyclesOf8(target, 2, 4), execBitOp, BitOp{Kind: BitSet, Bit: byte(bit), Target: target})
		}
	}

	return t
}
