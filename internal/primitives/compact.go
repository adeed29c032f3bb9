// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package primitives implements the compact-target encoding and the basic
// proof-of-work checks that sit underneath the retarget algorithms in
// package blockchain.
package primitives

import "github.com/bitnet-project/bntd/math/uint256"

// DiffBitsToUint256 converts the compact representation of a 256-bit target
// to a Uint256, along with the negative and overflow flags the compact
// encoding carries.
//
// Like IEEE754 floating point, the compact form has three components: sign,
// exponent, and mantissa, broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
//	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate the target is:
//
//	target = mantissa * 256^(exponent-3)
//
// negative is set when the mantissa's sign bit is set and the mantissa is
// non-zero. overflow is set when the mantissa is non-zero and the exponent
// is large enough that the value would require more than 256 bits, i.e.
// exponent > 34, or exponent > 33 and mantissa > 0xff, or exponent > 32 and
// mantissa > 0xffff.
func DiffBitsToUint256(bits uint32) (target *uint256.Uint256, negative, overflow bool) {
	mantissa := bits & 0x007fffff
	exponent := bits >> 24

	negative = mantissa != 0 && bits&0x00800000 != 0
	overflow = mantissa != 0 && (exponent > 34 ||
		(exponent > 33 && mantissa > 0xff) ||
		(exponent > 32 && mantissa > 0xffff))

	n := uint256.NewFromUint64(uint64(mantissa))
	if exponent <= 3 {
		target = n.Rsh(n, uint(8*(3-exponent)))
	} else {
		target = n.Lsh(n, uint(8*(exponent-3)))
	}
	return target, negative, overflow
}

// Uint256ToDiffBits converts a Uint256 target to its compact representation.
// The compact representation only provides 23 bits of precision, so values
// larger than 2^23-1 only encode the most significant digits of the number.
func Uint256ToDiffBits(n *uint256.Uint256) uint32 {
	if n.IsZero() {
		return 0
	}

	// exponent is the number of bytes needed to represent n, i.e. ceil(bitlen/8).
	exponent := uint32((n.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(n.Uint64())
		mantissa <<= 8 * (3 - exponent)
	} else {
		shifted := new(uint256.Uint256).Rsh(n, uint(8*(exponent-3)))
		mantissa = uint32(shifted.Uint64())
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit in the available 23 bits, so divide by 256 and bump the
	// exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return exponent<<24 | mantissa
}
