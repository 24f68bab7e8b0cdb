package gb

// execControl implements NOP/STOP/DI/EI/SCF/CCF/CPL/DAA. HALT (0x76)
// is absent from the instruction table and never reaches here.
func execControl(c *CPU, operand Operand) {
	op := operand.(ControlOp)

	switch op.Kind {
	case CtrlNop:
		c.Regs.PC++
	case CtrlStop:
		c.Regs.PC += 2
	case CtrlDI:
		c.Regs.PC++
		c.Regs.IME = false
	case CtrlEI:
		c.Regs.PC++
		c.Regs.IME = true
	case CtrlSCF:
		c.Regs.PC++
		c.Regs.SetFlags(nil, flagRef(false), flagRef(false), flagRef(true))
	case CtrlCCF:
		c.Regs.PC++
		c.Regs.SetFlags(nil, flagRef(false), flagRef(false), flagRef(!c.Regs.GetFlag(FlagC)))
	case CtrlCPL:
		c.Regs.PC++
		c.Regs.A = ^c.Regs.A
		c.Regs.SetFlags(nil, flagRef(true), flagRef(true), nil)
	case CtrlDAA:
		c.Regs.PC++
		res, z, cy := daa(c.Regs.A, c.Regs.GetFlag(FlagN), c.Regs.GetFlag(FlagH), c.Regs.GetFlag(FlagC))
		c.Regs.A = res
		c.Regs.SetFlags(flagRef(z), nil, flagRef(false), flagRef(cy))
	default:
		panic("gb: execControl called with unknown ControlKind")
	}
}

// daa implements the decimal-adjust-after-addition/subtraction
// algorithm: it corrects A to valid packed BCD using the N/H/C flags
// left by the preceding ADD/ADC/SUB/SBC.
func daa(a byte, n, h, c bool) (res byte, z, cy bool) {
	var adjust byte
	cy = c
	if h || (!n && a&0xF > 9) {
		adjust |= 0x06
	}
	if c || (!n && a > 0x99) {
		adjust |= 0x60
		cy = true
	}
	if n {
		res = a - adjust
	} else {
		res = a + adjust
	}
	z = res == 0
	return
}
