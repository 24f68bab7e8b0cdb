package gb

// execBranch implements JP/JR/CALL/RET, taken and not-taken, per the
// cycle table in spec §4.D.
func execBranch(c *CPU, operand Operand) {
	op := operand.(Branch)
	taken := op.Cond.Taken(c.Regs.F)

	switch op.Kind {
	case BranchJP:
		target := c.Bus.Read16(c.Regs.PC + 1)
		if taken {
			c.Regs.PC = target
			c.Bus.Cycles = 4
		} else {
			c.Regs.PC += 3
			c.Bus.Cycles = 3
		}

	case BranchJR:
		imm8 := c.Bus.Read8(c.Regs.PC + 1)
		afterOperand := c.Regs.PC + 2
		if taken {
			c.Regs.PC = uint16(int32(afterOperand) + int32(signExtend8(imm8)))
			c.Bus.Cycles = 3
		} else {
			c.Regs.PC = afterOperand
			c.Bus.Cycles = 2
		}

	case BranchCall:
		target := c.Bus.Read16(c.Regs.PC + 1)
		returnPC := c.Regs.PC + 3
		if taken {
			c.Regs.Push16(returnPC, c.Bus)
			c.Regs.PC = target
			c.Bus.Cycles = 6
		} else {
			c.Regs.PC = returnPC
			c.Bus.Cycles = 3
		}

	case BranchRet:
		if taken {
			c.Regs.PC = c.Regs.Pop16(c.Bus)
			if op.Cond == CondNone {
				c.Bus.Cycles = 4
			} else {
				c.Bus.Cycles = 5
			}
		} else {
			c.Regs.PC++
			c.Bus.Cycles = 2
		}
	}
}

// execReti pops PC and unconditionally re-enables IME.
func execReti(c *CPU, _ Operand) {
	c.Regs.PC = c.Regs.Pop16(c.Bus)
	c.Regs.IME = true
}

// execJpHL sets PC to HL directly, with no further PC advance.
func execJpHL(c *CPU, _ Operand) {
	c.Regs.PC = c.Regs.Read16(RegHL)
}

// execRst pushes the return address and jumps to the fixed vector.
func execRst(c *CPU, operand Operand) {
	op := operand.(Rst)
	returnPC := c.Regs.PC + 1
	c.Regs.Push16(returnPC, c.Bus)
	c.Regs.PC = uint16(op.Vector)
}
