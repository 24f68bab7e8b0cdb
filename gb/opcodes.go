package gb

// r8Order is the operand cycling order r8 takes in the regular opcode
// blocks (LD r,r', the 8-bit ALU block, INC/DEC r): B,C,D,E,H,L,(HL),A.
// It matches Reg8's own iota order by construction.
var r8Order = [8]Reg8{RegB, RegC, RegD, RegE, RegH, RegL, RegHLInd, RegA}

// r16Order is the dd-encoded register-pair order used by LD r16,d16,
// INC/DEC r16, and ADD HL,r16.
var r16Order = [4]Reg16{RegBC, RegDE, RegHL, RegSP}

// stackOrder is the qq-encoded register-pair order used by PUSH/POP,
// which uses AF where the general table uses SP.
var stackOrder = [4]Reg16{RegBC, RegDE, RegHL, RegAF}

// condOrder is the cc-encoded condition order used by the conditional
// JR/JP/CALL/RET blocks.
var condOrder = [4]Condition{CondNZ, CondZ, CondNC, CondC}

// cyclesOf8 returns the cost reg for an operation touching an 8-bit
// register operand, or indirect when that operand is (HL).
func cyclesOf8(r Reg8, reg, indirect int) int {
	if r == RegHLInd {
		return indirect
	}
	return reg
}

// primaryTable is the 256-entry non-prefixed instruction table. It is
// built once at package init rather than typed out as a literal: the
// console's own opcode encoding groups operands into regular column/row
// blocks, and building those blocks with the same loops the silicon
// used to decode them keeps this file a description of the encoding
// instead of 256 independent entries to keep in sync by hand.
var primaryTable = buildPrimaryTable()

func buildPrimaryTable() [256]Instruction {
	var t [256]Instruction

	set := func(op byte, mnemonic string, cycles int, exec func(c *CPU, op Operand), operand Operand) {
		t[op] = Instruction{Mnemonic: mnemonic, Cycles: cycles, Exec: exec, Operand: operand, Present: true}
	}

	set(0x00, "NOP", 1, execControl, ControlOp{CtrlNop})
	set(0x08, "LD (a16),SP", 5, execLdSPIndImm16, LdSPIndImm16{})
	set(0x10, "STOP", 1, execControl, ControlOp{CtrlStop})
	set(0x18, "JR r8", 3, execBranch, Branch{BranchJR, CondNone})
	set(0x27, "DAA", 1, execControl, ControlOp{CtrlDAA})
	set(0x2F, "CPL", 1, execControl, ControlOp{CtrlCPL})
	set(0x37, "SCF", 1, execControl, ControlOp{CtrlSCF})
	set(0x3F, "CCF", 1, execControl, ControlOp{CtrlCCF})

	// Per-row-of-16 blocks 0x00-0x3F: LD r16,d16 / LD (r16),A|LD A,(r16)
	// / INC|DEC r16 / INC|DEC r8 / LD r8,d8 / accumulator rotate,
	// interleaved with the singletons set above.
	rotates := [4]RotateKind{RotRLCA, RotRRCA, RotRLA, RotRRA}

	for row := 0; row < 4; row++ {
		base := byte(row * 0x10)
		pair := r16Order[row]

		set(base+0x01, "LD r16,d16", 3, execLdR16Imm16, LdR16Imm16{pair})
		set(base+0x03, "INC r16", 2, execIncDec16, IncDec16{pair, true})
		set(base+0x0B, "DEC r16", 2, execIncDec16, IncDec16{pair, false})
		set(base+0x09, "ADD HL,r16", 2, execAddHL16, AddHL16{pair})

		incTarget := r8Order[2*row]
		decTarget := r8Order[2*row]
		set(base+0x04, "INC r8", cyclesOf8(incTarget, 1, 3), execIncDec8, IncDec8{incTarget, true})
		set(base+0x05, "DEC r8", cyclesOf8(decTarget, 1, 3), execIncDec8, IncDec8{decTarget, false})
		set(base+0x06, "LD r8,d8", cyclesOf8(incTarget, 2, 3), execLdR8Imm8, LdR8Imm8{incTarget})

		incTarget2 := r8Order[2*row+1]
		set(base+0x0C, "INC r8", cyclesOf8(incTarget2, 1, 3), execIncDec8, IncDec8{incTarget2, true})
		set(base+0x0D, "DEC r8", cyclesOf8(incTarget2, 1, 3), execIncDec8, IncDec8{incTarget2, false})
		set(base+0x0E, "LD r8,d8", cyclesOf8(incTarget2, 2, 3), execLdR8Imm8, LdR8Imm8{incTarget2})

		// Only rows 0 and 1 hold the accumulator rotates; 0x27 and 0x37
		// are the DAA and SCF singletons set above.
		if row < 2 {
			set(base+0x07, "rotate A", 1, execRotateAcc, RotateAcc{rotates[2*row]})
			set(base+0x0F, "rotate A", 1, execRotateAcc, RotateAcc{rotates[2*row+1]})
		}
	}

	set(0x02, "LD (BC),A", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegBC, ToMem: true})
	set(0x0A, "LD A,(BC)", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegBC, ToMem: false})
	set(0x12, "LD (DE),A", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegDE, ToMem: true})
	set(0x1A, "LD A,(DE)", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegDE, ToMem: false})
	set(0x22, "LD (HL+),A", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegHL, ToMem: true, PostInc: true})
	set(0x2A, "LD A,(HL+)", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegHL, ToMem: false, PostInc: true})
	set(0x32, "LD (HL-),A", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegHL, ToMem: true, PostDec: true})
	set(0x3A, "LD A,(HL-)", 2, execLdIndirect, LdIndirect{Target: RegA, Addr: RegHL, ToMem: false, PostDec: true})

	// Conditional relative jumps 0x20,0x28,0x30,0x38.
	for i, cond := range condOrder {
		set(byte(0x20+i*0x08), "JR cc,r8", 2, execBranch, Branch{BranchJR, cond})
	}

	// 0x40-0x7F: LD r,r', except 0x76, which real silicon repurposes as
	// HALT. HALT is not implemented (see the holes list below), so this
	// slot is left absent rather than decoded as a no-op LD.
	for dstIdx, dst := range r8Order {
		for srcIdx, src := range r8Order {
			op := byte(0x40 + dstIdx*8 + srcIdx)
			if dst == RegHLInd && src == RegHLInd {
				continue
			}
			cycles := 1
			if dst == RegHLInd || src == RegHLInd {
				cycles = 2
			}
			set(op, "LD r,r'", cycles, execLdR8R8, LdR8R8{Dst: dst, Src: src})
		}
	}

	// 0x80-0xBF: 8-bit ALU against A, one row of 8 per operation.
	aluRows := [8]AluOp{AluAdd, AluAdc, AluSub, AluSbc, AluAnd, AluXor, AluOr, AluCp}
	for rowIdx, aluOp := range aluRows {
		for srcIdx, src := range r8Order {
			op := byte(0x80 + rowIdx*8 + srcIdx)
			cycles := cyclesOf8(src, 1, 2)
			set(op, "ALU A,r", cycles, execArith8, Arith8{Op: aluOp, Src: src})
		}
	}

	// Conditional RET 0xC0,0xC8,0xD0,0xD8.
	for i, cond := range condOrder {
		set(byte(0xC0+i*0x08), "RET cc", 2, execBranch, Branch{BranchRet, cond})
	}
	set(0xC9, "RET", 4, execBranch, Branch{BranchRet, CondNone})
	set(0xD9, "RETI", 4, execReti, NoOperand{})

	// Conditional JP a16 0xC2,0xCA,0xD2,0xDA.
	for i, cond := range condOrder {
		set(byte(0xC2+i*0x08), "JP cc,a16", 3, execBranch, Branch{BranchJP, cond})
	}
	set(0xC3, "JP a16", 4, execBranch, Branch{BranchJP, CondNone})
	set(0xE9, "JP (HL)", 1, execJpHL, JpHL{})

	// Conditional CALL a16 0xC4,0xCC,0xD4,0xDC.
	for i, cond := range condOrder {
		set(byte(0xC4+i*0x08), "CALL cc,a16", 3, execBranch, Branch{BranchCall, cond})
	}
	set(0xCD, "CALL a16", 6, execBranch, Branch{BranchCall, CondNone})

	// PUSH/POP, stack order BC,DE,HL,AF.
	for i, pair := range stackOrder {
		set(byte(0xC1+i*0x10), "POP r16", 3, execStack, StackOp{Reg: pair, Pop: true})
		set(byte(0xC5+i*0x10), "PUSH r16", 4, execStack, StackOp{Reg: pair, Pop: false})
	}

	// RST vectors 0xC7,0xCF,...,0xFF.
	for i := 0; i < 8; i++ {
		set(byte(0xC7+i*0x08), "RST n", 4, execRst, Rst{Vector: byte(i * 8)})
	}

	// 8-bit ALU-immediate column: ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,d8.
	for i, aluOp := range aluRows {
		set(byte(0xC6+i*0x08), "ALU A,d8", 2, execArith8, Arith8{Op: aluOp, Imm: true})
	}

	set(0xE0, "LDH (a8),A", 3, execLdHighPageImm, LdHighPageImm{ToA: false})
	set(0xF0, "LDH A,(a8)", 3, execLdHighPageImm, LdHighPageImm{ToA: true})
	set(0xE2, "LD (C),A", 2, execLdHighPageC, LdHighPageC{ToA: false})
	set(0xF2, "LD A,(C)", 2, execLdHighPageC, LdHighPageC{ToA: true})
	set(0xEA, "LD (a16),A", 4, execLdAIndImm16, LdAIndImm16{ToA: false})
	set(0xFA, "LD A,(a16)", 4, execLdAIndImm16, LdAIndImm16{ToA: true})

	set(0xE8, "ADD SP,r8", 4, execAddSPImm8, AddSPImm8{})
	set(0xF8, "LD HL,SP+r8", 3, execLdHLSPImm8, LdHLSPImm8{})
	set(0xF9, "LD SP,HL", 2, execLdSPHL, LdSPHL{})

	set(0xF3, "DI", 1, execControl, ControlOp{CtrlDI})
	set(0xFB, "EI", 1, execControl, ControlOp{CtrlEI})

	// Documented holes: real-silicon gaps, plus 0x76 (HALT, not
	// implemented), never decoded.
	for _, op := range []byte{0x76, 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		t[op] = Instruction{Present: false}
	}

	return t
}
