package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// AddrMode describes the operand bytes following an opcode.
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	ADDR_NONE      = AddrMode(0) // none
	ADDR_IMMEDIATE = AddrMode(1) // immediate
	ADDR_ADDRESS   = AddrMode(2) // address
)

// AluOp is the 8-bit accumulator operation encoded in bits 5-3 of the
// register and immediate ALU opcodes.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_ADD = AluOp(0) // ADD
	ALU_ADC = AluOp(1) // ADC
	ALU_SUB = AluOp(2) // SUB
	ALU_SBB = AluOp(3) // SBB
	ALU_ANA = AluOp(4) // ANA
	ALU_XRA = AluOp(5) // XRA
	ALU_ORA = AluOp(6) // ORA
	ALU_CMP = AluOp(7) // CMP
)

// aluImmediate are the immediate forms of the AluOp mnemonics.
var aluImmediate = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

// Branch overrides the program counter after an instruction.
type Branch struct {
	Target uint16 // Absolute target address.
	Taken  bool   // Set if the branch is taken.
}

// Handler executes one decoded instruction. PC has already been advanced
// past the instruction when the handler runs.
type Handler func(cpu *Cpu, inst Instruction) (branch Branch, err error)

// Descriptor is the static description of one opcode.
type Descriptor struct {
	Opcode      byte
	Length      int      // Instruction length in bytes, including the opcode.
	Mnemonic    string   // Mnemonic and register operands, ie "MOV A,M".
	Mode        AddrMode // Operand bytes addressing mode.
	Handler     Handler
	Implemented bool // Clear for the undocumented slots.
}

// Name returns the mnemonic without operands.
func (desc Descriptor) Name() string {
	name, _, _ := strings.Cut(desc.Mnemonic, " ")
	return name
}

var opcodeTable [256]Descriptor

// undocumented opcodes of the 8080.
var undocumented = []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd}

// define assigns an opcode slot. Each slot may be assigned only once.
func define(opcode byte, length int, mode AddrMode, mnemonic string, handler Handler) {
	desc := &opcodeTable[opcode]
	if desc.Handler != nil {
		panic(fmt.Errorf("%w: 0x%02x %v", ErrTableDuplicate, opcode, mnemonic))
	}

	*desc = Descriptor{
		Opcode:      opcode,
		Length:      length,
		Mnemonic:    mnemonic,
		Mode:        mode,
		Handler:     handler,
		Implemented: true,
	}
}

func init() {
	reg := func(n int) string { return Register(n).String() }
	pair := func(n int) string { return Pair(n).String() }

	define(0x00, 1, ADDR_NONE, "NOP", opNop)
	for _, opcode := range undocumented {
		define(opcode, 1, ADDR_NONE, "-", opUnimplemented)
		opcodeTable[opcode].Implemented = false
	}

	// Data transfer
	for dst := range 8 {
		for src := range 8 {
			opcode := byte(0x40 | dst<<3 | src)
			if opcode == 0x76 {
				define(opcode, 1, ADDR_NONE, "HLT", opHlt)
				continue
			}
			define(opcode, 1, ADDR_NONE, "MOV "+reg(dst)+","+reg(src), opMov)
		}
		define(byte(0x06|dst<<3), 2, ADDR_IMMEDIATE, "MVI "+reg(dst), opMvi)
		define(byte(0x04|dst<<3), 1, ADDR_NONE, "INR "+reg(dst), opInr)
		define(byte(0x05|dst<<3), 1, ADDR_NONE, "DCR "+reg(dst), opDcr)
	}

	// Register pairs
	for rp := range 4 {
		define(byte(0x01|rp<<4), 3, ADDR_IMMEDIATE, "LXI "+pair(rp), opLxi)
		define(byte(0x03|rp<<4), 1, ADDR_NONE, "INX "+pair(rp), opInx)
		define(byte(0x09|rp<<4), 1, ADDR_NONE, "DAD "+pair(rp), opDad)
		define(byte(0x0b|rp<<4), 1, ADDR_NONE, "DCX "+pair(rp), opDcx)

		name := pair(rp)
		if Pair(rp) == PAIR_SP {
			name = PAIR_PSW.String()
		}
		define(byte(0xc1|rp<<4), 1, ADDR_NONE, "POP "+name, opPop)
		define(byte(0xc5|rp<<4), 1, ADDR_NONE, "PUSH "+name, opPush)
	}

	define(0x02, 1, ADDR_NONE, "STAX B", opStax)
	define(0x12, 1, ADDR_NONE, "STAX D", opStax)
	define(0x0a, 1, ADDR_NONE, "LDAX B", opLdax)
	define(0x1a, 1, ADDR_NONE, "LDAX D", opLdax)
	define(0x22, 3, ADDR_ADDRESS, "SHLD", opShld)
	define(0x2a, 3, ADDR_ADDRESS, "LHLD", opLhld)
	define(0x32, 3, ADDR_ADDRESS, "STA", opSta)
	define(0x3a, 3, ADDR_ADDRESS, "LDA", opLda)
	define(0xeb, 1, ADDR_NONE, "XCHG", opXchg)

	// Accumulator and flags
	define(0x07, 1, ADDR_NONE, "RLC", opRlc)
	define(0x0f, 1, ADDR_NONE, "RRC", opRrc)
	define(0x17, 1, ADDR_NONE, "RAL", opRal)
	define(0x1f, 1, ADDR_NONE, "RAR", opRar)
	define(0x27, 1, ADDR_NONE, "DAA", opDaa)
	define(0x2f, 1, ADDR_NONE, "CMA", opCma)
	define(0x37, 1, ADDR_NONE, "STC", opStc)
	define(0x3f, 1, ADDR_NONE, "CMC", opCmc)

	for op := range 8 {
		for src := range 8 {
			define(byte(0x80|op<<3|src), 1, ADDR_NONE, AluOp(op).String()+" "+reg(src), opAlu)
		}
		define(byte(0xc6|op<<3), 2, ADDR_IMMEDIATE, aluImmediate[op], opAluImmediate)
	}

	// Control flow
	define(0xc3, 3, ADDR_ADDRESS, "JMP", opJmp)
	define(0xcd, 3, ADDR_ADDRESS, "CALL", opCall)
	define(0xc9, 1, ADDR_NONE, "RET", opRet)
	for cc := range 8 {
		cond := Condition(cc).String()
		define(byte(0xc2|cc<<3), 3, ADDR_ADDRESS, "J"+cond, opJcc)
		define(byte(0xc4|cc<<3), 3, ADDR_ADDRESS, "C"+cond, opCcc)
		define(byte(0xc0|cc<<3), 1, ADDR_NONE, "R"+cond, opRcc)
		define(byte(0xc7|cc<<3), 1, ADDR_NONE, fmt.Sprintf("RST %d", cc), opRst)
	}
	define(0xe9, 1, ADDR_NONE, "PCHL", opPchl)
	define(0xe3, 1, ADDR_NONE, "XTHL", opXthl)
	define(0xf9, 1, ADDR_NONE, "SPHL", opSphl)

	// Machine control and I/O
	define(0xdb, 2, ADDR_IMMEDIATE, "IN", opIn)
	define(0xd3, 2, ADDR_IMMEDIATE, "OUT", opOut)
	define(0xf3, 1, ADDR_NONE, "DI", opDi)
	define(0xfb, 1, ADDR_NONE, "EI", opEi)

	for opcode, desc := range opcodeTable {
		if desc.Handler == nil {
			panic(fmt.Sprintf("opcode 0x%02x undefined", opcode))
		}
	}
}

// LengthOf returns the instruction length for an opcode.
func LengthOf(opcode byte) int {
	return opcodeTable[opcode].Length
}

// HandlerFor returns the handler for an opcode.
func HandlerFor(opcode byte) Handler {
	return opcodeTable[opcode].Handler
}

// Describe returns the descriptor for an opcode.
func Describe(opcode byte) Descriptor {
	return opcodeTable[opcode]
}

// Descriptors iterates over the opcode table in opcode order.
func Descriptors() iter.Seq2[byte, Descriptor] {
	return func(yield func(byte, Descriptor) bool) {
		for opcode, desc := range opcodeTable {
			if !yield(byte(opcode), desc) {
				return
			}
		}
	}
}
