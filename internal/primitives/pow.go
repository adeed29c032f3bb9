// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"github.com/bitnet-project/bntd/chaincfg/chainhash"
	"github.com/bitnet-project/bntd/math/uint256"
)

// HashToUint256 converts a chainhash.Hash into a Uint256 that can be used to
// perform math comparisons.
func HashToUint256(hash *chainhash.Hash) *uint256.Uint256 {
	// A Hash is little-endian; a target is most naturally compared as a
	// big-endian integer, so reverse the bytes before unpacking.
	var buf [chainhash.HashSize]byte
	for i, b := range hash {
		buf[chainhash.HashSize-1-i] = b
	}
	return new(uint256.Uint256).SetBytesBE(buf)
}

// CalcWork calculates a work value from difficulty bits. A lower target
// difficulty value equates to higher actual difficulty, so the work value
// accumulated toward chain selection is the inverse of the difficulty.
//
// The natural formula is (1<<256) / (target+1), but 1<<256 does not fit in
// a 256-bit register. Using D = target+1, the identity
// floor(2^256/D) == floor((2^256-D)/D) + 1 lets the computation stay inside
// 256 bits, since 2^256-D is exactly the bitwise complement of target.
func CalcWork(bits uint32) *uint256.Uint256 {
	target, negative, overflow := DiffBitsToUint256(bits)
	if negative || overflow || target.IsZero() {
		return uint256.New()
	}

	denom := new(uint256.Uint256).Add(target, uint256.NewFromUint64(1))
	complement := new(uint256.Uint256).Not(target)
	quotient := new(uint256.Uint256).Div(complement, denom)
	return quotient.Add(quotient, uint256.NewFromUint64(1))
}

// CheckProofOfWork reports whether blockHash satisfies the proof-of-work
// requirement implied by diffBits, given the network's pow limit. It
// rejects a negative or overflowing compact encoding, a zero target, a
// target above powLimit, and a hash strictly above the target.
func CheckProofOfWork(blockHash *chainhash.Hash, diffBits uint32, powLimit *uint256.Uint256) bool {
	target, negative, overflow := DiffBitsToUint256(diffBits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.Cmp(powLimit) > 0 {
		return false
	}

	hashNum := HashToUint256(blockHash)
	return hashNum.Cmp(target) <= 0
}
