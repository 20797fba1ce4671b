// Package cpu implements an Intel 8080 interpreter core and its assembler.
//
// The processor state is a register file of seven 8-bit registers
// (B, C, D, E, H, L, A), five condition flags, a 16-bit program counter and
// stack pointer, a flat 64 KiB memory, the interrupt enable flip-flop and
// the run state. Register index 6 (M) is never a register: operands naming
// it refer to the memory byte addressed by the H:L pair.
//
// Each of the 256 opcode values has a Descriptor in a fixed table built at
// package init. Cpu.Step fetches the instruction at PC, advances PC past it,
// and runs the handler for the opcode. Handlers that transfer control return
// a Branch, which overrides the advanced PC.
//
// The flags byte pushed by PUSH PSW is not stored; it is derived from the
// Flags value on demand with Flags.Byte, and parsed back with FlagsFromByte.
//
// The assembler accepts standard 8080 mnemonics, and supports macros,
// labels, equates, and compile-time expression evaluation.
package cpu
