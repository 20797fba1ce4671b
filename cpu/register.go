package cpu

// Register is an 8-bit register index, as encoded in the opcode bit fields.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_B = Register(0) // B
	REG_C = Register(1) // C
	REG_D = Register(2) // D
	REG_E = Register(3) // E
	REG_H = Register(4) // H
	REG_L = Register(5) // L
	REG_M = Register(6) // M
	REG_A = Register(7) // A
)

// Pair is a 16-bit register pair selector.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	PAIR_BC  = Pair(0) // B
	PAIR_DE  = Pair(1) // D
	PAIR_HL  = Pair(2) // H
	PAIR_SP  = Pair(3) // SP
	PAIR_PSW = Pair(4) // PSW
)

// Condition is a branch condition, as encoded in bits 5-3 of the
// conditional jump, call and return opcodes.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_NZ = Condition(0) // NZ
	COND_Z  = Condition(1) // Z
	COND_NC = Condition(2) // NC
	COND_C  = Condition(3) // C
	COND_PO = Condition(4) // PO
	COND_PE = Condition(5) // PE
	COND_P  = Condition(6) // P
	COND_M  = Condition(7) // M
)

// Holds reports whether the condition is satisfied by the flags.
func (cond Condition) Holds(flags Flags) bool {
	switch cond {
	case COND_NZ:
		return !flags.Zero
	case COND_Z:
		return flags.Zero
	case COND_NC:
		return !flags.Carry
	case COND_C:
		return flags.Carry
	case COND_PO:
		return !flags.Parity
	case COND_PE:
		return flags.Parity
	case COND_P:
		return !flags.Sign
	case COND_M:
		return flags.Sign
	}

	panic(ErrConditionInvalid)
}

// Operand is the source or destination of an 8-bit register-or-memory
// instruction. It is either a general Register or MemoryHL.
type Operand interface {
	Read(state *State) byte
	Write(state *State, value byte)
	String() string
}

// MemoryHL is the memory byte addressed by the H:L register pair.
type MemoryHL struct{}

var _ Operand = MemoryHL{}
var _ Operand = REG_A

// Read the byte at H:L.
func (MemoryHL) Read(state *State) byte {
	return state.Memory[state.PairAddress(PAIR_HL)]
}

// Write the byte at H:L.
func (MemoryHL) Write(state *State, value byte) {
	state.Memory[state.PairAddress(PAIR_HL)] = value
}

func (MemoryHL) String() string {
	return REG_M.String()
}

// Read the register value.
func (reg Register) Read(state *State) byte {
	return state.Register[reg.index()]
}

// Write the register value.
func (reg Register) Write(state *State, value byte) {
	state.Register[reg.index()] = value
}

// index validates the register as a real register slot.
func (reg Register) index() int {
	if reg < REG_B || reg > REG_A || reg == REG_M {
		panic(ErrRegisterInvalid)
	}
	return int(reg)
}

// DecodeOperand maps a 3-bit register field to its operand.
func DecodeOperand(code byte) Operand {
	reg := Register(code & 0x7)
	if reg == REG_M {
		return MemoryHL{}
	}
	return reg
}
