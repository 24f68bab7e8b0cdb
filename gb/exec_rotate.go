package gb

// execRotateAcc implements RLCA/RLA/RRCA/RRA: the accumulator-only
// fast rotates. Unlike their extended-table counterparts these always
// clear Z.
func execRotateAcc(c *CPU, operand Operand) {
	op := operand.(RotateAcc)
	c.Regs.PC++

	a := c.Regs.A
	var res byte
	var carryOut bool

	switch op.Kind {
	case RotRLCA:
		carryOut = a&0x80 != 0
		res = a<<1 | a>>7
	case RotRLA:
		var oldCarry byte
		if c.Regs.GetFlag(FlagC) {
			oldCarry = 1
		}
		carryOut = a&0x80 != 0
		res = a<<1 | oldCarry
	case RotRRCA:
		carryOut = a&0x01 != 0
		res = a>>1 | a<<7
	case RotRRA:
		var oldCarry byte
		if c.Regs.GetFlag(FlagC) {
			oldCarry = 0x80
		}
		carryOut = a&0x01 != 0
		res = a>>1 | oldCarry
	}

	c.Regs.A = res
	c.Regs.SetFlags(flagRef(false), flagRef(false), flagRef(false), flagRef(carryOut))
}

// execShift implements the extended (CB-prefixed) rotate/shift/swap
// family: RLC/RRC/RL/RR/SLA/SRA/SRL/SWAP. Unlike the accumulator-only
// forms, these set Z from the result.
func execShift(c *CPU, operand Operand) {
	op := operand.(ShiftOp)
	c.Regs.PC++

	v := readR8(c, op.Target)
	var res byte
	var carryOut bool

	switch op.Kind {
	case ShiftRLC:
		carryOut = v&0x80 != 0
		res = v<<1 | v>>7
	case ShiftRRC:
		carryOut = v&0x01 != 0
		res = v>>1 | v<<7
	case ShiftRL:
		var oldCarry byte
		if c.Regs.GetFlag(FlagC) {
			oldCarry = 1
		}
		carryOut = v&0x80 != 0
		res = v<<1 | oldCarry
	case ShiftRR:
		var oldCarry byte
		if c.Regs.GetFlag(FlagC) {
			oldCarry = 0x80
		}
		carryOut = v&0x01 != 0
		res = v>>1 | oldCarry
	case ShiftSLA:
		carryOut = v&0x80 != 0
		res = v << 1
	case ShiftSRA:
		carryOut = v&0x01 != 0
		res = (v >> 1) | (v & 0x80)
	case ShiftSRL:
		carryOut = v&0x01 != 0
		res = v >> 1
	case ShiftSwap:
		res = v<<4 | v>>4
		carryOut = false
	}

	writeR8(c, op.Target, res)

	z := res == 0
	c.Regs.SetFlags(flagRef(z), flagRef(false), flagRef(false), flagRef(carryOut))
}
