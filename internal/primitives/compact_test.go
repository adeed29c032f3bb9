// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"testing"

	"github.com/bitnet-project/bntd/math/uint256"
)

func TestDiffBitsToUint256(t *testing.T) {
	tests := []struct {
		name     string
		bits     uint32
		want     string
		negative bool
		overflow bool
	}{
		{name: "mantissa only, exponent 3", bits: 0x03123456, want: "123456"},
		{name: "exponent below 3 shifts right", bits: 0x01123456, want: "12"},
		{name: "exponent above 3 shifts left", bits: 0x04123456, want: "12345600"},
		{name: "zero mantissa", bits: 0x04000000, want: "0"},
		{name: "negative bit set", bits: 0x03923456, want: "123456", negative: true},
		{name: "overflow, exponent 35", bits: 0x23123456, want: "0", overflow: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, negative, overflow := DiffBitsToUint256(test.bits)
			want := uint256.MustFromHex(test.want)
			if got.Cmp(want) != 0 {
				t.Errorf("DiffBitsToUint256(%#08x) = %s, want %s", test.bits, got, want)
			}
			if negative != test.negative {
				t.Errorf("DiffBitsToUint256(%#08x) negative = %v, want %v", test.bits, negative, test.negative)
			}
			if overflow != test.overflow {
				t.Errorf("DiffBitsToUint256(%#08x) overflow = %v, want %v", test.bits, overflow, test.overflow)
			}
		})
	}
}

func TestUint256ToDiffBits(t *testing.T) {
	tests := []struct {
		name string
		n    string
		want uint32
	}{
		{name: "zero", n: "0", want: 0},
		{name: "small value needs left shift of mantissa", n: "12", want: 0x01120000},
		{name: "three-byte value", n: "123456", want: 0x03123456},
		{name: "mantissa sign bit bumps exponent", n: "80", want: 0x02008000},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n := uint256.MustFromHex(test.n)
			if got := Uint256ToDiffBits(n); got != test.want {
				t.Errorf("Uint256ToDiffBits(%s) = %#08x, want %#08x", test.n, got, test.want)
			}
		})
	}
}

func TestCompactRoundTrip(t *testing.T) {
	tests := []uint32{
		0x03123456,
		0x1d00ffff,
		0x1b0404cb,
		0x207fffff,
		0x04120000,
	}
	for _, bits := range tests {
		target, negative, overflow := DiffBitsToUint256(bits)
		if negative || overflow {
			t.Fatalf("unexpected negative/overflow decoding %#08x", bits)
		}
		got := Uint256ToDiffBits(target)
		if got != bits {
			t.Errorf("round trip for %#08x produced %#08x", bits, got)
		}
	}
}
