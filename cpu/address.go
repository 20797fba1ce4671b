package cpu

// pairRegisters maps the register pairs to their (high, low) halves.
var pairRegisters = map[Pair][2]Register{
	PAIR_BC: {REG_B, REG_C},
	PAIR_DE: {REG_D, REG_E},
	PAIR_HL: {REG_H, REG_L},
}

// PairAddress returns the 16-bit value of a register pair. The high
// register forms bits 15-8, the low register bits 7-0.
// PAIR_SP returns the stack pointer, and PAIR_PSW the accumulator and
// flags byte.
func (state *State) PairAddress(pair Pair) uint16 {
	switch pair {
	case PAIR_SP:
		return state.SP
	case PAIR_PSW:
		return uint16(state.Register[REG_A])<<8 | uint16(state.Flags.Byte())
	}

	regs, ok := pairRegisters[pair]
	if !ok {
		panic(ErrPairInvalid)
	}

	return uint16(state.Register[regs[0]])<<8 | uint16(state.Register[regs[1]])
}

// SetPair sets the 16-bit value of a register pair.
func (state *State) SetPair(pair Pair, value uint16) {
	switch pair {
	case PAIR_SP:
		state.SP = value
		return
	case PAIR_PSW:
		state.Register[REG_A] = byte(value >> 8)
		state.Flags = FlagsFromByte(byte(value))
		return
	}

	regs, ok := pairRegisters[pair]
	if !ok {
		panic(ErrPairInvalid)
	}

	state.Register[regs[0]] = byte(value >> 8)
	state.Register[regs[1]] = byte(value)
}

// ReadOperand reads a register, or the memory at H:L for REG_M.
func (state *State) ReadOperand(index int) byte {
	if index < int(REG_B) || index > int(REG_A) {
		panic(ErrRegisterInvalid)
	}
	return DecodeOperand(byte(index)).Read(state)
}

// WriteOperand writes a register, or the memory at H:L for REG_M.
func (state *State) WriteOperand(index int, value byte) {
	if index < int(REG_B) || index > int(REG_A) {
		panic(ErrRegisterInvalid)
	}
	DecodeOperand(byte(index)).Write(state, value)
}
