package gb

// execStack implements PUSH/POP. POP AF masks F's low nibble to zero
// via Registers.Write16.
func execStack(c *CPU, operand Operand) {
	op := operand.(StackOp)
	c.Regs.PC++

	if op.Pop {
		v := c.Regs.Pop16(c.Bus)
		c.Regs.Write16(op.Reg, v)
		return
	}
	c.Regs.Push16(c.Regs.Read16(op.Reg), c.Bus)
}
