// Copyright (c) 2021 The bntd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256

import "testing"

func TestSetUint64RoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 2, 0xffffffff, 0xffffffffffffffff, 0x1330e}
	for _, v := range tests {
		n := NewFromUint64(v)
		if got := n.Uint64(); got != v {
			t.Errorf("Uint64() after SetUint64(%#x) = %#x, want %#x", v, got, v)
		}
		if n.BitLen() != bitLen64(v) {
			t.Errorf("BitLen() for %#x = %d, want %d", v, n.BitLen(), bitLen64(v))
		}
	}
}

func TestIsZero(t *testing.T) {
	if !New().IsZero() {
		t.Error("New() should be zero")
	}
	if NewFromUint64(1).IsZero() {
		t.Error("NewFromUint64(1) should not be zero")
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b uint64
		want int
	}{
		{0, 0, 0},
		{1, 2, -1},
		{2, 1, 1},
		{0xffffffffffffffff, 0xffffffffffffffff, 0},
	}
	for _, test := range tests {
		a := NewFromUint64(test.a)
		b := NewFromUint64(test.b)
		if got := a.Cmp(b); got != test.want {
			t.Errorf("Cmp(%#x, %#x) = %d, want %d", test.a, test.b, got, test.want)
		}
	}

	// Cross-limb comparisons: a value with a nonzero high limb must compare
	// greater than any value confined to the low limb.
	big := new(Uint256).Lsh(NewFromUint64(1), 128)
	small := NewFromUint64(0xffffffffffffffff)
	if big.Cmp(small) != 1 {
		t.Errorf("1<<128 should compare greater than 2^64-1")
	}
	if small.Cmp(big) != -1 {
		t.Errorf("2^64-1 should compare less than 1<<128")
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	for _, shift := range []uint{0, 1, 7, 63, 64, 65, 127, 128, 191, 192, 239} {
		n := NewFromUint64(0x1330e)
		shifted := new(Uint256).Lsh(n, shift)
		back := new(Uint256).Rsh(shifted, shift)
		if back.Cmp(n) != 0 {
			t.Errorf("Rsh(Lsh(n, %d), %d) = %s, want %s", shift, shift, back, n)
		}
	}
}

func TestLshDiscardsOverflow(t *testing.T) {
	n := NewFromUint64(1)
	shifted := new(Uint256).Lsh(n, 256)
	if !shifted.IsZero() {
		t.Errorf("Lsh by 256 should discard all bits, got %s", shifted)
	}
	shifted = new(Uint256).Lsh(n, 255)
	if shifted.BitLen() != 256 {
		t.Errorf("Lsh(1, 255).BitLen() = %d, want 256", shifted.BitLen())
	}
}

func TestMulUint64DivUint64Inverse(t *testing.T) {
	tests := []struct {
		v uint64
		m uint64
	}{
		{1, 1},
		{1, 0xffffffff},
		{0x1330e, 600},
		{0xffffffffffffffff, 2},
		{12345, 9999999},
	}
	for _, test := range tests {
		n := NewFromUint64(test.v)
		product := new(Uint256).MulUint64(n, test.m)
		back := new(Uint256).DivUint64(product, test.m)
		if back.Cmp(n) != 0 {
			t.Errorf("DivUint64(MulUint64(%#x, %#x), %#x) = %s, want %s",
				test.v, test.m, test.m, back, n)
		}
	}
}

func TestDivUint64AcrossLimbs(t *testing.T) {
	// (2^192) / 2 should equal 2^191, exercising the remainder carried
	// across limb boundaries in the per-limb long division.
	n := new(Uint256).Lsh(NewFromUint64(1), 192)
	got := new(Uint256).DivUint64(n, 2)
	want := new(Uint256).Lsh(NewFromUint64(1), 191)
	if got.Cmp(want) != 0 {
		t.Errorf("(1<<192)/2 = %s, want %s", got, want)
	}
}

func TestDivUint64PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DivUint64 by zero should panic")
		}
	}()
	new(Uint256).DivUint64(NewFromUint64(1), 0)
}

func TestBytesBERoundTrip(t *testing.T) {
	var b [32]byte
	b[31] = 0x01
	b[30] = 0x02
	n := new(Uint256).SetBytesBE(b)
	if n.Uint64() != 0x0201 {
		t.Errorf("SetBytesBE low bytes = %#x, want 0x201", n.Uint64())
	}
	if got := n.BytesBE(); got != b {
		t.Errorf("BytesBE() = %x, want %x", got, b)
	}
}

func TestNotAndAdd(t *testing.T) {
	n := NewFromUint64(0)
	all := new(Uint256).Not(n)
	if all.BitLen() != 256 {
		t.Errorf("Not(0).BitLen() = %d, want 256", all.BitLen())
	}

	sum := new(Uint256).Add(NewFromUint64(1), NewFromUint64(2))
	if sum.Uint64() != 3 {
		t.Errorf("Add(1,2) = %s, want 3", sum)
	}

	// A value plus its bitwise complement is all-ones.
	v := NewFromUint64(0x1330e)
	complement := new(Uint256).Not(v)
	combined := new(Uint256).Add(v, complement)
	if combined.Cmp(all) != 0 {
		t.Errorf("v + ^v = %s, want all-ones %s", combined, all)
	}
}

func TestSub(t *testing.T) {
	a := NewFromUint64(10)
	b := NewFromUint64(3)
	diff := new(Uint256).Sub(a, b)
	if diff.Uint64() != 7 {
		t.Errorf("Sub(10,3) = %s, want 7", diff)
	}
}

func TestDivFullWidth(t *testing.T) {
	tests := []struct{ a, b uint64 }{
		{100, 7},
		{1, 1},
		{0xffffffffffffffff, 3},
		{0, 5},
	}
	for _, test := range tests {
		a := NewFromUint64(test.a)
		b := NewFromUint64(test.b)
		got := new(Uint256).Div(a, b)
		want := test.a / test.b
		if got.Uint64() != want {
			t.Errorf("Div(%d, %d) = %s, want %d", test.a, test.b, got, want)
		}
	}

	// Cross-limb dividend: (1<<192) / 2 == 1<<191.
	a := new(Uint256).Lsh(NewFromUint64(1), 192)
	got := new(Uint256).Div(a, NewFromUint64(2))
	want := new(Uint256).Lsh(NewFromUint64(1), 191)
	if got.Cmp(want) != 0 {
		t.Errorf("Div(1<<192, 2) = %s, want %s", got, want)
	}
}

func TestDivPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Div by zero should panic")
		}
	}()
	new(Uint256).Div(NewFromUint64(1), New())
}

func TestBit(t *testing.T) {
	n := new(Uint256).Lsh(NewFromUint64(1), 130)
	for i := 0; i < 256; i++ {
		want := uint64(0)
		if i == 130 {
			want = 1
		}
		if got := n.Bit(i); got != want {
			t.Errorf("Bit(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestString(t *testing.T) {
	n := NewFromUint64(0x1330e)
	got := n.String()
	if len(got) != 64 {
		t.Fatalf("String() length = %d, want 64", len(got))
	}
	const suffix = "1330e"
	if got[64-len(suffix):] != suffix {
		t.Errorf("String() = %s, want suffix %s", got, suffix)
	}
	for _, c := range got[:64-len(suffix)] {
		if c != '0' {
			t.Fatalf("String() = %s, want leading zeros", got)
		}
	}
}
