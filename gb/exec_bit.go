package gb

// execBitOp implements the extended BIT/RES/SET family.
func execBitOp(c *CPU, operand Operand) {
	op := operand.(BitOp)
	c.Regs.PC++

	v := readR8(c, op.Target)
	mask := byte(1) << op.Bit

	switch op.Kind {
	case BitTest:
		z := v&mask == 0
		c.Regs.SetFlags(flagRef(z), flagRef(false), flagRef(true), nil)
	case BitRes:
		writeR8(c, op.Target, v&^mask)
	case BitSet:
		writeR8(c, op.Target, v|mask)
	}
}
