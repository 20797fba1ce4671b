package cpu

import (
	"fmt"
)

// Bit positions of the condition flags in the PSW flags byte.
const (
	FLAG_CARRY     = byte(1 << 0)
	FLAG_ONE       = byte(1 << 1) // Always set.
	FLAG_PARITY    = byte(1 << 2)
	FLAG_ZERO3     = byte(1 << 3) // Always clear.
	FLAG_AUX_CARRY = byte(1 << 4)
	FLAG_ZERO5     = byte(1 << 5) // Always clear.
	FLAG_ZERO      = byte(1 << 6)
	FLAG_SIGN      = byte(1 << 7)
)

// Flags are the five condition flags.
//
// The flags byte pushed by PUSH PSW is not stored; it is computed by Byte()
// and parsed by FlagsFromByte(), which force the fixed bits.
type Flags struct {
	Carry    bool
	Zero     bool
	Sign     bool
	Parity   bool
	AuxCarry bool
}

// Byte serializes the flags into the PSW flags byte.
func (flags Flags) Byte() (value byte) {
	value = FLAG_ONE
	if flags.Carry {
		value |= FLAG_CARRY
	}
	if flags.Parity {
		value |= FLAG_PARITY
	}
	if flags.AuxCarry {
		value |= FLAG_AUX_CARRY
	}
	if flags.Zero {
		value |= FLAG_ZERO
	}
	if flags.Sign {
		value |= FLAG_SIGN
	}
	return
}

// FlagsFromByte parses a PSW flags byte. The fixed bits are ignored.
func FlagsFromByte(value byte) Flags {
	return Flags{
		Carry:    value&FLAG_CARRY != 0,
		Zero:     value&FLAG_ZERO != 0,
		Sign:     value&FLAG_SIGN != 0,
		Parity:   value&FLAG_PARITY != 0,
		AuxCarry: value&FLAG_AUX_CARRY != 0,
	}
}

// String returns the flags as 'SZ-A-P-C', with '.' for a clear flag.
func (flags Flags) String() string {
	bit := func(set bool, name byte) byte {
		if set {
			return name
		}
		return '.'
	}
	return fmt.Sprintf("%c%c-%c-%c-%c",
		bit(flags.Sign, 'S'),
		bit(flags.Zero, 'Z'),
		bit(flags.AuxCarry, 'A'),
		bit(flags.Parity, 'P'),
		bit(flags.Carry, 'C'))
}
