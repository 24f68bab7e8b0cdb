package gb

// execLdR8R8 handles register-to-register 8-bit loads, including the
// (HL) forms (RegHLInd on either side).
func execLdR8R8(c *CPU, operand Operand) {
	op := operand.(LdR8R8)
	c.Regs.PC++
	writeR8(c, op.Dst, readR8(c, op.Src))
}

// execLdR8Imm8 loads the immediate byte following the opcode.
func execLdR8Imm8(c *CPU, operand Operand) {
	op := operand.(LdR8Imm8)
	c.Regs.PC++
	imm := c.Bus.Read8(c.Regs.PC)
	c.Regs.PC++
	writeR8(c, op.Dst, imm)
}

// execLdR16Imm16 loads the immediate word following the opcode.
func execLdR16Imm16(c *CPU, operand Operand) {
	op := operand.(LdR16Imm16)
	c.Regs.PC++
	imm := c.Bus.Read16(c.Regs.PC)
	c.Regs.PC += 2
	c.Regs.Write16(op.Dst, imm)
}

// execLdIndirect handles LD through (BC)/(DE)/(HL), with the HL
// post-increment/post-decrement variants.
func execLdIndirect(c *CPU, operand Operand) {
	op := operand.(LdIndirect)
	c.Regs.PC++
	addr := c.Regs.Read16(op.Addr)
	if op.ToMem {
		c.Bus.Write8(addr, readR8(c, op.Target))
	} else {
		writeR8(c, op.Target, c.Bus.Read8(addr))
	}
	switch {
	case op.PostInc:
		c.Regs.Write16(op.Addr, addr+1)
	case op.PostDec:
		c.Regs.Write16(op.Addr, addr-1)
	}
}

// execLdHighPageImm handles LD (0xFF00+imm8),A / LD A,(0xFF00+imm8).
func execLdHighPageImm(c *CPU, operand Operand) {
	op := operand.(LdHighPageImm)
	c.Regs.PC++
	imm := c.Bus.Read8(c.Regs.PC)
	c.Regs.PC++
	addr := 0xFF00 + uint16(imm)
	if op.ToA {
		c.Regs.A = c.Bus.Read8(addr)
	} else {
		c.Bus.Write8(addr, c.Regs.A)
	}
}

// execLdHighPageC handles LD (0xFF00+C),A / LD A,(0xFF00+C).
func execLdHighPageC(c *CPU, operand Operand) {
	op := operand.(LdHighPageC)
	c.Regs.PC++
	addr := 0xFF00 + uint16(c.Regs.C)
	if op.ToA {
		c.Regs.A = c.Bus.Read8(addr)
	} else {
		c.Bus.Write8(addr, c.Regs.A)
	}
}

// execLdAIndImm16 handles LD (imm16),A / LD A,(imm16).
func execLdAIndImm16(c *CPU, operand Operand) {
	op := operand.(LdAIndImm16)
	c.Regs.PC++
	addr := c.Bus.Read16(c.Regs.PC)
	c.Regs.PC += 2
	if op.ToA {
		c.Regs.A = c.Bus.Read8(addr)
	} else {
		c.Bus.Write8(addr, c.Regs.A)
	}
}

// execLdSPIndImm16 handles LD (imm16),SP: store the stack-top word.
func execLdSPIndImm16(c *CPU, _ Operand) {
	c.Regs.PC++
	addr := c.Bus.Read16(c.Regs.PC)
	c.Regs.PC += 2
	c.Bus.Write16(addr, c.Regs.SP)
}

// execLdHLSPImm8 handles LD HL,SP+r8.
func execLdHLSPImm8(c *CPU, _ Operand) {
	c.Regs.PC++
	imm := c.Bus.Read8(c.Regs.PC)
	c.Regs.PC++

	sp := c.Regs.SP
	lowSP := byte(sp)
	h := (lowSP&0xF)+(imm&0xF) > 0xF
	cy := uint16(lowSP)+uint16(imm) > 0xFF
	result := uint16(int32(sp) + int32(signExtend8(imm)))

	c.Regs.Write16(RegHL, result)
	c.Regs.SetFlags(flagRef(false), flagRef(false), flagRef(h), flagRef(cy))
}

// execLdSPHL handles LD SP,HL.
func execLdSPHL(c *CPU, _ Operand) {
	c.Regs.PC++
	c.Regs.SP = c.Regs.Read16(RegHL)
}
