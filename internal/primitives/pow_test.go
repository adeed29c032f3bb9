// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"testing"

	"github.com/bitnet-project/bntd/chaincfg/chainhash"
	"github.com/bitnet-project/bntd/math/uint256"
)

func TestCalcWorkZeroForInvalidBits(t *testing.T) {
	tests := []uint32{
		0x03800001, // negative
		0x23123456, // overflow
		0x04000000, // zero mantissa
	}
	for _, bits := range tests {
		got := CalcWork(bits)
		if !got.IsZero() {
			t.Errorf("CalcWork(%#08x) = %s, want 0", bits, got)
		}
	}
}

func TestCalcWorkDecreasesWithEasierTarget(t *testing.T) {
	harder := CalcWork(0x1c0ac141)
	easier := CalcWork(0x1d00ffff)
	if harder.Cmp(easier) <= 0 {
		t.Errorf("CalcWork of a harder target (%#08x) should exceed that of an easier one (%#08x)",
			0x1c0ac141, 0x1d00ffff)
	}
}

func TestCheckProofOfWork(t *testing.T) {
	// Data loosely modeled on block 100k on the mainnet-style network:
	// a hash below the target passes, above it fails.
	powLimit := uint256.MustFromHex("00000000ffff0000000000000000000000000000000000000000000000000000")

	const diffBits = 0x1d00ffff
	target, negative, overflow := DiffBitsToUint256(diffBits)
	if negative || overflow {
		t.Fatalf("unexpected negative/overflow for %#08x", diffBits)
	}

	below := new(uint256.Uint256).DivUint64(target.Clone(), 2)
	belowHash := reversedHash(below.BytesBE())
	if !CheckProofOfWork(belowHash, diffBits, powLimit) {
		t.Error("hash below target should pass")
	}

	above := new(uint256.Uint256).MulUint64(target, 2)
	aboveHash := reversedHash(above.BytesBE())
	if CheckProofOfWork(aboveHash, diffBits, powLimit) {
		t.Error("hash above target should fail")
	}

	if CheckProofOfWork(belowHash, 0x03800001, powLimit) {
		t.Error("negative compact bits should always fail")
	}
	if CheckProofOfWork(belowHash, 0x23123456, powLimit) {
		t.Error("overflowing compact bits should always fail")
	}

	aboveLimitBits := Uint256ToDiffBits(new(uint256.Uint256).MulUint64(powLimit, 2))
	if CheckProofOfWork(belowHash, aboveLimitBits, powLimit) {
		t.Error("a target above powLimit should always fail")
	}

	oneHash := reversedHash(uint256.NewFromUint64(1).BytesBE())
	if CheckProofOfWork(oneHash, 0x03800001, powLimit) {
		t.Error("any hash against a negative compact target should fail")
	}
}

// reversedHash packs a big-endian 32-byte value into a chainhash.Hash, which
// stores bytes little-endian, the same transform HashToUint256 undoes.
func reversedHash(be [32]byte) *chainhash.Hash {
	var h chainhash.Hash
	for i, b := range be {
		h[chainhash.HashSize-1-i] = b
	}
	return &h
}
