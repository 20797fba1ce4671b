package cpu

// opNop does nothing.
func opNop(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	return
}

// opUnimplemented reports an undocumented opcode.
func opUnimplemented(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	err = ErrOpcodeUnimplemented
	return
}

// opHlt stops the processor. PC is left past the HLT.
func opHlt(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Run = RUN_STOPPED
	return
}

func opEi(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Inte = true
	return
}

func opDi(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Inte = false
	return
}

// Data transfer

func opMov(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	inst.Dst().Write(&cpu.State, inst.Src().Read(&cpu.State))
	return
}

func opMvi(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	inst.Dst().Write(&cpu.State, inst.Immediate())
	return
}

func opLxi(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetPair(inst.Pair(), inst.Word())
	return
}

func opLda(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetA(cpu.Read(inst.Word()))
	return
}

func opSta(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Write(inst.Word(), cpu.A())
	return
}

// opLhld loads L from the address and H from the address plus one.
func opLhld(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetPair(PAIR_HL, cpu.ReadWord(inst.Word()))
	return
}

// opShld stores L at the address and H at the address plus one.
func opShld(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.WriteWord(inst.Word(), cpu.PairAddress(PAIR_HL))
	return
}

func opLdax(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetA(cpu.Read(cpu.PairAddress(inst.Pair())))
	return
}

func opStax(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Write(cpu.PairAddress(inst.Pair()), cpu.A())
	return
}

func opXchg(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	de, hl := cpu.PairAddress(PAIR_DE), cpu.PairAddress(PAIR_HL)
	cpu.SetPair(PAIR_DE, hl)
	cpu.SetPair(PAIR_HL, de)
	return
}

// Arithmetic and logic

// alu applies an accumulator operation with the value.
func (cpu *Cpu) alu(op AluOp, value byte) {
	a := cpu.A()
	flags := cpu.Flags

	switch op {
	case ALU_ADD:
		a, flags = Add(a, value, false, flags)
	case ALU_ADC:
		a, flags = Add(a, value, flags.Carry, flags)
	case ALU_SUB:
		a, flags = Sub(a, value, false, flags)
	case ALU_SBB:
		a, flags = Sub(a, value, flags.Carry, flags)
	case ALU_ANA:
		a, flags = And(a, value, flags)
	case ALU_XRA:
		a, flags = Xor(a, value, flags)
	case ALU_ORA:
		a, flags = Or(a, value, flags)
	case ALU_CMP:
		flags = Compare(a, value, flags)
	}

	cpu.SetA(a)
	cpu.Flags = flags
}

func opAlu(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.alu(AluOp((inst.Opcode>>3)&0x7), inst.Src().Read(&cpu.State))
	return
}

func opAluImmediate(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.alu(AluOp((inst.Opcode>>3)&0x7), inst.Immediate())
	return
}

func opInr(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	op := inst.Dst()
	value, flags := Increment(op.Read(&cpu.State), cpu.Flags)
	op.Write(&cpu.State, value)
	cpu.Flags = flags
	return
}

func opDcr(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	op := inst.Dst()
	value, flags := Decrement(op.Read(&cpu.State), cpu.Flags)
	op.Write(&cpu.State, value)
	cpu.Flags = flags
	return
}

func opInx(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	pair := inst.Pair()
	cpu.SetPair(pair, cpu.PairAddress(pair)+1)
	return
}

func opDcx(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	pair := inst.Pair()
	cpu.SetPair(pair, cpu.PairAddress(pair)-1)
	return
}

func opDad(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	hl, flags := DoubleAdd(cpu.PairAddress(PAIR_HL), cpu.PairAddress(inst.Pair()), cpu.Flags)
	cpu.SetPair(PAIR_HL, hl)
	cpu.Flags = flags
	return
}

// accumulator applies a single operand accumulator function.
func (cpu *Cpu) accumulator(fn func(a byte, flags Flags) (byte, Flags)) {
	cpu.Register[REG_A], cpu.Flags = fn(cpu.A(), cpu.Flags)
}

func opRlc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.accumulator(RotateLeft)
	return
}

func opRrc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.accumulator(RotateRight)
	return
}

func opRal(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.accumulator(RotateLeftCarry)
	return
}

func opRar(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.accumulator(RotateRightCarry)
	return
}

func opDaa(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.accumulator(DecimalAdjust)
	return
}

// opCma complements the accumulator. No flags are affected.
func opCma(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetA(Complement(cpu.A()))
	return
}

func opStc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Flags.Carry = true
	return
}

func opCmc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Flags.Carry = !cpu.Flags.Carry
	return
}

// Stack

func opPush(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.Push(cpu.PairAddress(inst.PushPair()))
	return
}

func opPop(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SetPair(inst.PushPair(), cpu.Pop())
	return
}

// opXthl exchanges H:L with the top of the stack.
func opXthl(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	top := cpu.Peek()
	cpu.WriteWord(cpu.SP, cpu.PairAddress(PAIR_HL))
	cpu.SetPair(PAIR_HL, top)
	return
}

func opSphl(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	cpu.SP = cpu.PairAddress(PAIR_HL)
	return
}

// Control flow

func opJmp(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = Branch{Target: inst.Word(), Taken: true}
	return
}

func opJcc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = Branch{Target: inst.Word(), Taken: inst.Cond().Holds(cpu.Flags)}
	return
}

// call pushes the return address (the already advanced PC) and branches.
func (cpu *Cpu) call(target uint16) Branch {
	cpu.Push(cpu.PC)
	return Branch{Target: target, Taken: true}
}

func opCall(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = cpu.call(inst.Word())
	return
}

func opCcc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	if inst.Cond().Holds(cpu.Flags) {
		branch = cpu.call(inst.Word())
	}
	return
}

func opRet(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = Branch{Target: cpu.Pop(), Taken: true}
	return
}

func opRcc(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	if inst.Cond().Holds(cpu.Flags) {
		branch = Branch{Target: cpu.Pop(), Taken: true}
	}
	return
}

func opRst(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = cpu.call(inst.Vector())
	return
}

func opPchl(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	branch = Branch{Target: cpu.PairAddress(PAIR_HL), Taken: true}
	return
}

// Input and output

func opIn(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	var value byte
	if cpu.Device != nil {
		value = cpu.Device.ReadPort(inst.Immediate())
	}
	cpu.SetA(value)
	return
}

func opOut(cpu *Cpu, inst Instruction) (branch Branch, err error) {
	if cpu.Device != nil {
		cpu.Device.WritePort(inst.Immediate(), cpu.A())
	}
	return
}
