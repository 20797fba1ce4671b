package cpu

import (
	"math/bits"
)

// The ALU functions are pure: they take raw operand values and the
// incoming flags, and return the result with the outgoing flags.

// Parity returns true if the value has an even number of set bits.
func Parity(value byte) bool {
	return bits.OnesCount8(value)%2 == 0
}

// withZSP sets the zero, sign and parity flags from a result byte.
func withZSP(flags Flags, result byte) Flags {
	flags.Zero = result == 0
	flags.Sign = result&0x80 != 0
	flags.Parity = Parity(result)
	return flags
}

func bit(set bool) uint {
	if set {
		return 1
	}
	return 0
}

// Add returns a + b + carry (ADD, ADC, ADI, ACI).
func Add(a, b byte, carry bool, flags Flags) (result byte, out Flags) {
	c := bit(carry)
	sum := uint(a) + uint(b) + c
	result = byte(sum)

	out = withZSP(flags, result)
	out.Carry = sum > 0xff
	out.AuxCarry = uint(a&0xf)+uint(b&0xf)+c > 0xf
	return
}

// Sub returns a - b - borrow (SUB, SBB, SUI, SBI).
// Carry is set when a borrow out of bit 7 occurred, and auxiliary carry
// when a borrow into the low nibble occurred.
func Sub(a, b byte, borrow bool, flags Flags) (result byte, out Flags) {
	c := int(bit(borrow))
	diff := int(a) - int(b) - c
	result = byte(diff)

	out = withZSP(flags, result)
	out.Carry = diff < 0
	out.AuxCarry = int(a&0xf)-int(b&0xf)-c < 0
	return
}

// Compare returns the flags of a - b, discarding the result (CMP, CPI).
func Compare(a, b byte, flags Flags) (out Flags) {
	_, out = Sub(a, b, false, flags)
	return
}

// And returns a & b (ANA, ANI). Carry and auxiliary carry are reset.
func And(a, b byte, flags Flags) (result byte, out Flags) {
	result = a & b
	out = withZSP(flags, result)
	out.Carry = false
	out.AuxCarry = false
	return
}

// Or returns a | b (ORA, ORI). Carry and auxiliary carry are reset.
func Or(a, b byte, flags Flags) (result byte, out Flags) {
	result = a | b
	out = withZSP(flags, result)
	out.Carry = false
	out.AuxCarry = false
	return
}

// Xor returns a ^ b (XRA, XRI). Carry and auxiliary carry are reset.
func Xor(a, b byte, flags Flags) (result byte, out Flags) {
	result = a ^ b
	out = withZSP(flags, result)
	out.Carry = false
	out.AuxCarry = false
	return
}

// Increment returns value + 1 (INR). Carry is not affected.
func Increment(value byte, flags Flags) (result byte, out Flags) {
	result = value + 1
	out = withZSP(flags, result)
	out.AuxCarry = value&0xf == 0xf
	return
}

// Decrement returns value - 1 (DCR). Carry is not affected; auxiliary
// carry is set on a borrow into the low nibble.
func Decrement(value byte, flags Flags) (result byte, out Flags) {
	result = value - 1
	out = withZSP(flags, result)
	out.AuxCarry = value&0xf == 0
	return
}

// DoubleAdd returns hl + value (DAD). Only carry is affected.
func DoubleAdd(hl, value uint16, flags Flags) (result uint16, out Flags) {
	sum := uint32(hl) + uint32(value)
	result = uint16(sum)
	out = flags
	out.Carry = sum > 0xffff
	return
}

// RotateLeft rotates left, bit 7 into bit 0 and carry (RLC).
func RotateLeft(a byte, flags Flags) (result byte, out Flags) {
	result = bits.RotateLeft8(a, 1)
	out = flags
	out.Carry = a&0x80 != 0
	return
}

// RotateRight rotates right, bit 0 into bit 7 and carry (RRC).
func RotateRight(a byte, flags Flags) (result byte, out Flags) {
	result = bits.RotateLeft8(a, -1)
	out = flags
	out.Carry = a&0x01 != 0
	return
}

// RotateLeftCarry rotates left through carry (RAL).
func RotateLeftCarry(a byte, flags Flags) (result byte, out Flags) {
	result = a<<1 | byte(bit(flags.Carry))
	out = flags
	out.Carry = a&0x80 != 0
	return
}

// RotateRightCarry rotates right through carry (RAR).
func RotateRightCarry(a byte, flags Flags) (result byte, out Flags) {
	result = a>>1 | byte(bit(flags.Carry))<<7
	out = flags
	out.Carry = a&0x01 != 0
	return
}

// Complement returns the one's complement of the accumulator (CMA).
// No flags are affected.
func Complement(a byte) byte {
	return ^a
}

// DecimalAdjust performs the two-step BCD correction (DAA).
//
//  1. If the low nibble is greater than 9, or auxiliary carry is set, add 6.
//     Auxiliary carry is set if this carries out of the low nibble.
//  2. If the high nibble is now greater than 9, or carry is set, add 6 to
//     the high nibble. Carry is set if this carries out of bit 7, and is
//     otherwise left as it was.
func DecimalAdjust(a byte, flags Flags) (result byte, out Flags) {
	out = flags
	value := uint(a)

	if value&0xf > 9 || flags.AuxCarry {
		out.AuxCarry = (value&0xf)+6 > 0xf
		value += 0x06
	} else {
		out.AuxCarry = false
	}

	if value > 0xff {
		out.Carry = true
		value &= 0xff
	}

	if (value>>4) > 9 || out.Carry {
		value += 0x60
		if value > 0xff {
			out.Carry = true
		}
	}

	result = byte(value)
	out = withZSP(out, result)
	return
}
