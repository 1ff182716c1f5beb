package mpi

import "testing"

func TestSetInt64SignRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 12345, -12345, 1 << 40, -(1 << 40)}
	for _, v := range cases {
		r := FromInt64[uint32](v)
		if r.Sign() != signOf(v) {
			t.Errorf("Sign(%d) = %d, want %d", v, r.Sign(), signOf(v))
		}
		if r.CmpSi(v) != 0 {
			t.Errorf("FromInt64(%d) != CmpSi(%d)", v, v)
		}
	}
}

func signOf(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestBytesRoundTrip(t *testing.T) {
	r := FromInt64[uint64](0x1234567890abcdef)
	b := r.Bytes(BigEndian)
	var back Int[uint64]
	back.SetBytes(b, BigEndian)
	if back.CmpSi(0x1234567890abcdef) != 0 {
		t.Fatalf("round trip mismatch")
	}

	var zero Int[uint32]
	zb := zero.Bytes(BigEndian)
	if len(zb) != 1 || zb[0] != 0 {
		t.Fatalf("zero Bytes = %v, want [0]", zb)
	}
}

func TestBytesLittleEndian(t *testing.T) {
	r := FromInt64[uint32](0x0102)
	be := r.Bytes(BigEndian)
	le := r.Bytes(LittleEndian)
	if len(be) != len(le) {
		t.Fatalf("length mismatch")
	}
	for i := range be {
		if be[i] != le[len(le)-1-i] {
			t.Fatalf("little-endian is not the reverse of big-endian: %v vs %v", be, le)
		}
	}
}

func TestAddSubInverse(t *testing.T) {
	a := FromInt64[uint16](123456789)
	b := FromInt64[uint16](-987654321)
	var sum, back Int[uint16]
	sum.Add(a, b)
	back.Sub(&sum, b)
	if back.Cmp(a) != 0 {
		t.Fatalf("a+b-b != a")
	}
}

func TestMulSign(t *testing.T) {
	a := FromInt64[uint32](-7)
	b := FromInt64[uint32](6)
	var r Int[uint32]
	r.Mul(a, b)
	if r.CmpSi(-42) != 0 {
		t.Fatalf("-7*6 = %v, want -42", r)
	}
}

func TestBitLenMatchesShift(t *testing.T) {
	a := FromInt64[uint32](1)
	var shifted Int[uint32]
	shifted.Shl(a, 100)
	if shifted.BitLen() != 101 {
		t.Fatalf("BitLen(1<<100) = %d, want 101", shifted.BitLen())
	}
}

func TestTstbitSetbitUnsetbit(t *testing.T) {
	r := New[uint32]()
	r.Setbit(5)
	if r.Tstbit(5) != 1 {
		t.Fatalf("Setbit(5) did not set bit 5")
	}
	if r.CmpUi(32) != 0 {
		t.Fatalf("Setbit(5) = %v, want 32", r)
	}
	r.Unsetbit(5)
	if r.Tstbit(5) != 0 || !r.IsZero() {
		t.Fatalf("Unsetbit(5) did not clear back to zero")
	}
}

func TestTstbitNegativeTwoComplement(t *testing.T) {
	r := FromInt64[uint32](-1)
	for i := 0; i < 64; i++ {
		if r.Tstbit(i) != 1 {
			t.Fatalf("Tstbit(%d) of -1 = 0, want 1 (infinite two's-complement ones)", i)
		}
	}
}
