package gb

// add8 computes a+b in a 16-bit-wide accumulator and derives the
// result byte, zero flag, half-carry, and carry-out from that wide
// result -- not the source's two-step "value + carry" then
// overflowing_add, which can itself overflow (per spec §9).
func add8(a, b byte) (res byte, z, h, cy bool) {
	r := uint16(a) + uint16(b)
	res = byte(r)
	z = res == 0
	h = (a&0xF)+(b&0xF) > 0xF
	cy = r > 0xFF
	return
}

func adc8(a, b byte, carryIn bool) (res byte, z, h, cy bool) {
	var ci uint16
	if carryIn {
		ci = 1
	}
	r := uint16(a) + uint16(b) + ci
	res = byte(r)
	z = res == 0
	h = (a&0xF)+(b&0xF)+byte(ci) > 0xF
	cy = r > 0xFF
	return
}

// sub8 computes a-b the same way: one wide subtraction, flags derived
// from it. Half-carry for SUB is the textbook (a&0xF) < (b&0xF), per
// spec §9 -- not the source's buggy reuse of the ADD formula.
func sub8(a, b byte) (res byte, z, h, cy bool) {
	r := int16(a) - int16(b)
	res = byte(r)
	z = res == 0
	h = (a & 0xF) < (b & 0xF)
	cy = r < 0
	return
}

func sbc8(a, b byte, carryIn bool) (res byte, z, h, cy bool) {
	var ci int16
	if carryIn {
		ci = 1
	}
	r := int16(a) - int16(b) - ci
	res = byte(r)
	z = res == 0
	h = int16(a&0xF)-int16(b&0xF)-ci < 0
	cy = r < 0
	return
}

// execArith8 implements ADD/ADC/SUB/SBC/AND/XOR/OR/CP against A.
func execArith8(c *CPU, operand Operand) {
	op := operand.(Arith8)
	c.Regs.PC++

	var v byte
	if op.Imm {
		v = c.Bus.Read8(c.Regs.PC)
		c.Regs.PC++
	} else {
		v = readR8(c, op.Src)
	}

	a := c.Regs.A
	switch op.Op {
	case AluAdd:
		res, z, h, cy := add8(a, v)
		c.Regs.A = res
		setZNHC(c, z, false, h, cy)
	case AluAdc:
		res, z, h, cy := adc8(a, v, c.Regs.GetFlag(FlagC))
		c.Regs.A = res
		setZNHC(c, z, false, h, cy)
	case AluSub:
		res, z, h, cy := sub8(a, v)
		c.Regs.A = res
		setZNHC(c, z, true, h, cy)
	case AluSbc:
		res, z, h, cy := sbc8(a, v, c.Regs.GetFlag(FlagC))
		c.Regs.A = res
		setZNHC(c, z, true, h, cy)
	case AluAnd:
		res := a & v
		c.Regs.A = res
		setZNHC(c, res == 0, false, true, false)
	case AluXor:
		res := a ^ v
		c.Regs.A = res
		setZNHC(c, res == 0, false, false, false)
	case AluOr:
		res := a | v
		c.Regs.A = res
		setZNHC(c, res == 0, false, false, false)
	case AluCp:
		_, z, h, cy := sub8(a, v)
		setZNHC(c, z, true, h, cy)
	}
}

// execIncDec8 implements INC/DEC on an 8-bit register or (HL). Carry
// is left untouched.
func execIncDec8(c *CPU, operand Operand) {
	op := operand.(IncDec8)
	c.Regs.PC++

	old := readR8(c, op.Target)
	var res byte
	var h bool
	if op.Inc {
		res = old + 1
		h = (old&0xF)+1 > 0xF
	} else {
		res = old - 1
		h = old&0xF == 0
	}
	writeR8(c, op.Target, res)

	z := res == 0
	n := !op.Inc
	c.Regs.SetFlags(flagRef(z), flagRef(n), flagRef(h), nil)
}

// execIncDec16 implements INC/DEC on a 16-bit register pair; it never
// touches flags.
func execIncDec16(c *CPU, operand Operand) {
	op := operand.(IncDec16)
	c.Regs.PC++

	v := c.Regs.Read16(op.Target)
	if op.Inc {
		v++
	} else {
		v--
	}
	c.Regs.Write16(op.Target, v)
}

// execAddHL16 implements ADD HL,r16: Z unchanged, N=0, H from bit 11,
// C from bit 15.
func execAddHL16(c *CPU, operand Operand) {
	op := operand.(AddHL16)
	c.Regs.PC++

	hl := c.Regs.Read16(RegHL)
	v := c.Regs.Read16(op.Src)
	res := uint32(hl) + uint32(v)

	h := (hl&0xFFF)+(v&0xFFF) > 0xFFF
	cy := res > 0xFFFF

	c.Regs.Write16(RegHL, uint16(res))
	c.Regs.SetFlags(nil, flagRef(false), flagRef(h), flagRef(cy))
}

// execAddSPImm8 implements ADD SP,r8: same flag semantics as LD
// HL,SP+r8, computed against SP's low byte.
func execAddSPImm8(c *CPU, _ Operand) {
	c.Regs.PC++
	imm := c.Bus.Read8(c.Regs.PC)
	c.Regs.PC++

	sp := c.Regs.SP
	lowSP := byte(sp)
	h := (lowSP&0xF)+(imm&0xF) > 0xF
	cy := uint16(lowSP)+uint16(imm) > 0xFF

	c.Regs.SP = uint16(int32(sp) + int32(signExtend8(imm)))
	c.Regs.SetFlags(flagRef(false), flagRef(false), flagRef(h), flagRef(cy))
}
