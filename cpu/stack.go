package cpu

// Push a 16-bit value onto the memory stack. The stack pointer is
// decremented by two, the high byte stored at SP+1 and the low byte at SP.
func (state *State) Push(value uint16) {
	state.SP -= 2
	state.WriteWord(state.SP, value)
}

// Pop a 16-bit value from the memory stack. The low byte is read from SP,
// the high byte from SP+1, and the stack pointer incremented by two.
func (state *State) Pop() (value uint16) {
	value = state.Peek()
	state.SP += 2
	return
}

// Peek returns the 16-bit value on the top of the stack.
func (state *State) Peek() (value uint16) {
	return state.ReadWord(state.SP)
}
