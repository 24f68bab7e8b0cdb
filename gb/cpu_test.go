package gb

import "testing"

// newTestCPU returns a CPU over a bus with the boot overlay disabled,
// so writes to 0x0000-0x3FFF land in the cartridge's bank 0 and are fetched
// back as instruction bytes.
func newTestCPU() (*CPU, *Bus) {
	bus := NewBus(NewBootROM(nil), NewCartridge(make([]byte, 0x8000)))
	bus.Write8(0xFF50, 1)
	return NewCPU(bus), bus
}

func load(bus *Bus, addr uint16, program ...byte) {
	for i, b := range program {
		bus.Write8(addr+uint16(i), b)
	}
}

func TestLdR8Imm8AndR8R8(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x06, 0x42, 0x78) // LD B,0x42 ; LD A,B

	if err := cpu.Step(); err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if cpu.Regs.B != 0x42 {
		t.Fatalf("B = %#02x, want 0x42", cpu.Regs.B)
	}

	if err := cpu.Step(); err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if cpu.Regs.A != 0x42 {
		t.Errorf("A = %#02x, want 0x42", cpu.Regs.A)
	}
	if cpu.Regs.PC != 3 {
		t.Errorf("PC = %#04x, want 0x0003", cpu.Regs.PC)
	}
}

func TestLdHLIndirectPostIncDec(t *testing.T) {
	cpu, bus := newTestCPU()
	// LD HL,0xC000 ; LD (HL+),A ; LD (HL-),A
	load(bus, 0, 0x21, 0x00, 0xC0, 0x22, 0x32)
	cpu.Regs.A = 0x55

	for i := 0; i < 2; i++ {
		if err := cpu.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if bus.Read8(0xC000) != 0x55 {
		t.Fatalf("mem[0xC000] = %#02x, want 0x55", bus.Read8(0xC000))
	}
	if cpu.Regs.Read16(RegHL) != 0xC001 {
		t.Fatalf("HL = %#04x, want 0xC001 after post-increment", cpu.Regs.Read16(RegHL))
	}

	if err := cpu.Step(); err != nil {
		t.Fatalf("step 3: %v", err)
	}
	if bus.Read8(0xC001) != 0x55 {
		t.Fatalf("mem[0xC001] = %#02x, want 0x55", bus.Read8(0xC001))
	}
	if cpu.Regs.Read16(RegHL) != 0xC000 {
		t.Fatalf("HL = %#04x, want 0xC000 after post-decrement", cpu.Regs.Read16(RegHL))
	}
}

// TestIncDecR16LeavesFlagsUnchanged covers invariant 3.
func TestIncDecR16LeavesFlagsUnchanged(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x03, 0x0B) // INC BC ; DEC BC
	cpu.Regs.F = 0xF0

	for i := 0; i < 2; i++ {
		if err := cpu.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if cpu.Regs.F != 0xF0 {
			t.Errorf("after step %d, F = %#02x, want unchanged 0xF0", i, cpu.Regs.F)
		}
	}
}

// TestAndSetsExpectedFlags covers invariant 4.
func TestAndSetsExpectedFlags(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0xE6, 0x00) // AND 0x00 -- A starts 0, result 0
	cpu.Regs.A = 0x00

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if !cpu.Regs.GetFlag(FlagZ) {
		t.Error("Z should be set when result is 0")
	}
	if cpu.Regs.GetFlag(FlagN) {
		t.Error("N should be clear after AND")
	}
	if !cpu.Regs.GetFlag(FlagH) {
		t.Error("H should be set after AND")
	}
	if cpu.Regs.GetFlag(FlagC) {
		t.Error("C should be clear after AND")
	}
}

// TestXorASetsZero and TestSubASetsZero cover invariant 5.
func TestXorASetsZero(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0xAF) // XOR A
	cpu.Regs.A = 0x7F

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.A != 0 || !cpu.Regs.GetFlag(FlagZ) || cpu.Regs.GetFlag(FlagN) ||
		cpu.Regs.GetFlag(FlagH) || cpu.Regs.GetFlag(FlagC) {
		t.Errorf("A=%#02x F=%#02x, want A=0 Z=1 N=0 H=0 C=0", cpu.Regs.A, cpu.Regs.F)
	}
}

func TestSubASetsZero(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x97) // SUB A
	cpu.Regs.A = 0x7F

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.A != 0 || !cpu.Regs.GetFlag(FlagZ) || !cpu.Regs.GetFlag(FlagN) ||
		cpu.Regs.GetFlag(FlagH) || cpu.Regs.GetFlag(FlagC) {
		t.Errorf("A=%#02x F=%#02x, want A=0 Z=1 N=1 H=0 C=0", cpu.Regs.A, cpu.Regs.F)
	}
}

// TestPushPopOpcodesRoundTrip covers invariant 6 end to end through the
// instruction table.
func TestPushPopOpcodesRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0xF5, 0xD1) // PUSH AF ; POP DE
	cpu.Regs.SP = 0xFFFE
	cpu.Regs.A = 0x12
	cpu.Regs.F = 0xFF // dirty low nibble on purpose

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}

	if cpu.Regs.D != 0x12 {
		t.Errorf("D = %#02x, want 0x12", cpu.Regs.D)
	}
	if cpu.Regs.E != 0xF0 {
		t.Errorf("E = %#02x, want 0xF0 (low nibble masked)", cpu.Regs.E)
	}
}

// TestConditionalBranchCyclesTakenVsNotTaken covers invariant 7.
func TestConditionalBranchCyclesTakenVsNotTaken(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x20, 0x05) // JR NZ,+5
	cpu.Regs.F = 0            // Z clear -> taken

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	takenCycles := bus.Cycles
	if cpu.Regs.PC != 0x07 {
		t.Errorf("PC after taken JR = %#04x, want 0x0007", cpu.Regs.PC)
	}

	cpu2, bus2 := newTestCPU()
	load(bus2, 0, 0x20, 0x05)
	cpu2.Regs.F = FlagZ // Z set -> not taken

	if err := cpu2.Step(); err != nil {
		t.Fatal(err)
	}
	notTakenCycles := bus2.Cycles
	if cpu2.Regs.PC != 0x02 {
		t.Errorf("PC after not-taken JR = %#04x, want 0x0002", cpu2.Regs.PC)
	}

	if takenCycles < notTakenCycles {
		t.Errorf("taken cycles (%d) < not-taken cycles (%d)", takenCycles, notTakenCycles)
	}
}

func TestCallAndRet(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0xCD, 0x10, 0x00) // CALL 0x0010
	load(bus, 0x10, 0xC9)          // RET
	cpu.Regs.SP = 0xFFFE

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.PC != 0x10 {
		t.Fatalf("PC after CALL = %#04x, want 0x0010", cpu.Regs.PC)
	}

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.PC != 0x03 {
		t.Errorf("PC after RET = %#04x, want 0x0003", cpu.Regs.PC)
	}
}

func TestCBBitSetRes(t *testing.T) {
	cpu, bus := newTestCPU()
	// BIT 7,A ; SET 0,A ; RES 7,A
	load(bus, 0, 0xCB, 0x7F, 0xCB, 0xC7, 0xCB, 0xBF)
	cpu.Regs.A = 0x00

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if !cpu.Regs.GetFlag(FlagZ) {
		t.Error("BIT 7,A on 0x00 should set Z")
	}

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.A != 0x01 {
		t.Fatalf("A after SET 0,A = %#02x, want 0x01", cpu.Regs.A)
	}

	cpu.Regs.A = 0xFF
	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.A != 0x7F {
		t.Errorf("A after RES 7,A = %#02x, want 0x7F", cpu.Regs.A)
	}
	if cpu.Regs.PC != 6 {
		t.Errorf("PC = %#04x, want 0x0006", cpu.Regs.PC)
	}
}

func TestDAAAfterBCDAddition(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x27) // DAA
	cpu.Regs.A = 0x0A  // 0x05+0x05: low nibble is not a valid BCD digit
	cpu.Regs.SetFlags(nil, flagRef(false), flagRef(true), flagRef(false))

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.A != 0x10 {
		t.Errorf("A after DAA = %#02x, want 0x10", cpu.Regs.A)
	}
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0xD3) // documented hole

	err := cpu.Step()
	if err == nil {
		t.Fatal("expected a fatal error for opcode 0xD3")
	}
	fe, ok := err.(*FatalError)
	if !ok {
		t.Fatalf("error type = %T, want *FatalError", err)
	}
	if fe.PC != 0 {
		t.Errorf("FatalError.PC = %#04x, want 0x0000", fe.PC)
	}
}

// TestHaltOpcodeIsFatal covers the documented table hole at 0x76: real
// silicon repurposes this LD (HL),(HL) slot as HALT, which this core
// does not implement, so it must fault rather than decode as a no-op
// or hang re-fetching forever.
func TestHaltOpcodeIsFatal(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0, 0x76)

	err := cpu.Step()
	if err == nil {
		t.Fatal("expected a fatal error for opcode 0x76 (HALT)")
	}
	if _, ok := err.(*FatalError); !ok {
		t.Fatalf("error type = %T, want *FatalError", err)
	}
}

func TestRstPushesReturnAddress(t *testing.T) {
	cpu, bus := newTestCPU()
	load(bus, 0x10, 0xEF) // RST 28H at 0x0010
	cpu.Regs.PC = 0x10
	cpu.Regs.SP = 0xFFFE

	if err := cpu.Step(); err != nil {
		t.Fatal(err)
	}
	if cpu.Regs.PC != 0x28 {
		t.Fatalf("PC after RST = %#04x, want 0x0028", cpu.Regs.PC)
	}
	if ret := cpu.Regs.Peek16(bus); ret != 0x11 {
		t.Errorf("pushed return address = %#04x, want 0x0011", ret)
	}
}
