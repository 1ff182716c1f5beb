package limb

import "testing"

func TestAddNSubNRoundTrip(t *testing.T) {
	a := []uint32{0xffffffff, 0x1}
	b := []uint32{0x1, 0x0}
	sum := make([]uint32, 2)
	carry := AddN(sum, a, b, 2)
	if carry != 0 {
		t.Fatalf("unexpected carry out: %d", carry)
	}
	if sum[0] != 0 || sum[1] != 2 {
		t.Fatalf("sum = %v, want [0 2]", sum)
	}

	back := make([]uint32, 2)
	borrow := SubN(back, sum, b, 2)
	if borrow != 0 {
		t.Fatalf("unexpected borrow: %d", borrow)
	}
	if back[0] != a[0] || back[1] != a[1] {
		t.Fatalf("back = %v, want %v", back, a)
	}
}

func TestMulNAgainstSchoolbook(t *testing.T) {
	a := []uint8{200, 3}
	b := []uint8{5}
	r := make([]uint8, 3)
	MulN(r, a, 2, b, 1)
	// a = 200 + 3*256 = 968, b = 5, product = 4840 = 0x12e8
	want := uint64(968) * 5
	got := uint64(r[0]) | uint64(r[1])<<8 | uint64(r[2])<<16
	if got != want {
		t.Fatalf("MulN = %d, want %d", got, want)
	}
}

func TestBitLen(t *testing.T) {
	a := []uint16{0x0, 0x1}
	if bl := BitLen(a, 2); bl != 17 {
		t.Fatalf("BitLen = %d, want 17", bl)
	}
	if bl := BitLen([]uint16{0, 0}, 2); bl != 0 {
		t.Fatalf("BitLen(0) = %d, want 0", bl)
	}
}

func TestLShiftRShiftRoundTrip(t *testing.T) {
	a := []uint32{0x1, 0x2}
	shifted := make([]uint32, 2)
	carry := LShift(shifted, a, 2, 4)
	if carry != 0 {
		t.Fatalf("unexpected shift-out carry: %d", carry)
	}
	back := make([]uint32, 2)
	RShift(back, shifted, 2, 4)
	if back[0] != a[0] || back[1] != a[1] {
		t.Fatalf("round trip = %v, want %v", back, a)
	}
}

func TestDivQR1(t *testing.T) {
	a := []uint32{1000}
	q := make([]uint32, 1)
	r := DivQR1(q, a, 1, 7)
	if q[0] != 142 || r != 6 {
		t.Fatalf("1000/7 = %d rem %d, want 142 rem 6", q[0], r)
	}
}

func TestTDivQR(t *testing.T) {
	a := []uint32{12345}
	d := []uint32{17}
	q := make([]uint32, 1)
	r := make([]uint32, 1)
	TDivQR(q, r, a, 1, d, 1)
	if q[0] != 12345/17 || r[0] != 12345%17 {
		t.Fatalf("12345/17 = %d rem %d, want %d rem %d", q[0], r[0], 12345/17, 12345%17)
	}
}

func TestJacobiNKnownValues(t *testing.T) {
	cases := []struct {
		a, n uint32
		want int
	}{
		{1, 3, 1},
		{2, 3, -1},
		{0, 3, 0},
	}
	for _, c := range cases {
		if got := JacobiN(c.a, c.n); got != c.want {
			t.Errorf("JacobiN(%d,%d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}

func TestBinvertIsMultiplicativeInverseMod2ToW(t *testing.T) {
	var a uint32 = 12345
	inv := Binvert(a)
	prod := a * inv // wraps mod 2^32, which is exactly the check we want
	if prod != 1 {
		t.Fatalf("a*Binvert(a) = %d mod 2^32, want 1", prod)
	}
}

func TestPowm(t *testing.T) {
	base := []uint32{3}
	exp := []uint32{4}
	m := []uint32{7}
	r := make([]uint32, 1)
	Powm(r, base, 1, exp, 1, m, 1)
	// 3^4 mod 7 = 81 mod 7 = 4
	if r[0] != 4 {
		t.Fatalf("Powm(3,4,7) = %d, want 4", r[0])
	}
}

func TestAddNFullWidthLimbs(t *testing.T) {
	a := []uint64{^uint64(0), ^uint64(0)}
	b := []uint64{1, 0}
	sum := make([]uint64, 2)
	carry := AddN(sum, a, b, 2)
	if carry != 1 || sum[0] != 0 || sum[1] != 0 {
		t.Fatalf("AddN = %v carry %d, want [0 0] carry 1", sum, carry)
	}
	back := make([]uint64, 2)
	borrow := SubN(back, sum, b, 2)
	if borrow != 1 || back[0] != a[0] || back[1] != a[1] {
		t.Fatalf("SubN = %v borrow %d, want %v borrow 1", back, borrow, a)
	}
}

func TestAddMul1FullWidthLimbs(t *testing.T) {
	max := ^uint64(0)
	r := []uint64{max}
	a := []uint64{max}
	carry := AddMul1(r, a, 1, max)
	// (B-1) + (B-1)^2 = B^2 - B, i.e. limbs [0, B-1].
	if r[0] != 0 || carry != max {
		t.Fatalf("AddMul1 = [%d] carry %d, want [0] carry %d", r[0], carry, max)
	}
}

func TestDivQR1FullWidthLimbs(t *testing.T) {
	a := []uint64{5, 7}
	q := make([]uint64, 2)
	rem := DivQR1(q, a, 2, 3)
	// check q*3 + rem == a by re-multiplying
	prod := make([]uint64, 2)
	carry := Mul1(prod, q, 2, 3)
	prod[0] += uint64(rem)
	if carry != 0 || prod[0] != a[0] || prod[1] != a[1] {
		t.Fatalf("q*3+rem = %v carry %d, want %v", prod, carry, a)
	}
}

func TestModExact1Odd(t *testing.T) {
	x := []uint32{0x89abcdef, 0x1234}
	a := make([]uint32, 2)
	if carry := Mul1(a, x, 2, 7); carry != 0 {
		t.Fatalf("fixture overflowed: carry %d", carry)
	}
	r := make([]uint32, 2)
	ModExact1Odd(r, a, 2, 7)
	if r[0] != x[0] || r[1] != x[1] {
		t.Fatalf("ModExact1Odd = %v, want %v", r, x)
	}
}
