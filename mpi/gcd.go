package mpi

// MakeOdd right-shifts r in place until it is odd, returning the number
// of trailing zero bits removed (0 for r == 0). Building block of the
// binary-GCD asymmetric iteration.
func MakeOdd[W Word](r *Int[W]) int {
	if r.IsZero() {
		return 0
	}
	shift := 0
	for r.Tstbit(shift) == 0 {
		shift++
	}
	if shift > 0 {
		r.Shr(r, shift)
	}
	return shift
}

// Gcd sets g = gcd(|a|, |b|) (always non-negative), via the binary GCD
// algorithm: repeatedly strip common factors of two, then subtract the
// smaller odd magnitude from the larger (which is always even and gets
// stripped again next round).
func Gcd[W Word](g, a, b *Int[W]) {
	if a.IsZero() {
		g.Abs(b)
		return
	}
	if b.IsZero() {
		g.Abs(a)
		return
	}
	var u, v Int[W]
	u.Abs(a)
	v.Abs(b)

	shiftU := MakeOdd(&u)
	shiftV := MakeOdd(&v)
	common := shiftU
	if shiftV < common {
		common = shiftV
	}

	for {
		if u.CmpAbs(&v) > 0 {
			u, v = v, u
		}
		// now |u| <= |v|, both odd
		v.Sub(&v, &u)
		if v.IsZero() {
			break
		}
		MakeOdd(&v)
	}
	g.Shl(&u, common)
}

// GcdExt computes g = gcd(|u|,|v|) together with Bezout coefficients s, t
// satisfying s*u + t*v = g, via the standard iterative extended
// Euclidean algorithm run on magnitudes with signs folded back in at the
// end. Sign convention: GcdExt(0, v) = (|v|, 0, sgn v).
func GcdExt[W Word](g, s, t, u, v *Int[W]) {
	if u.IsZero() {
		g.Abs(v)
		s.SetInt64(0)
		switch v.Sign() {
		case 0:
			t.SetInt64(0)
		case 1:
			t.SetInt64(1)
		default:
			t.SetInt64(-1)
		}
		return
	}
	if v.IsZero() {
		g.Abs(u)
		t.SetInt64(0)
		switch u.Sign() {
		case 0:
			s.SetInt64(0)
		case 1:
			s.SetInt64(1)
		default:
			s.SetInt64(-1)
		}
		return
	}

	oldR, rr := New[W](), New[W]()
	oldR.Abs(u)
	rr.Abs(v)
	oldS, ss := FromInt64[W](1), FromInt64[W](0)
	oldT, tt := FromInt64[W](0), FromInt64[W](1)

	for !rr.IsZero() {
		var q Int[W]
		q.DivQ(oldR, rr, Floor) // both operands non-negative: floor == trunc

		var tmp Int[W]
		tmp.Mul(&q, rr)
		newR := New[W]()
		newR.Sub(oldR, &tmp)
		oldR, rr = rr, newR

		tmp.Mul(&q, ss)
		newS := New[W]()
		newS.Sub(oldS, &tmp)
		oldS, ss = ss, newS

		tmp.Mul(&q, tt)
		newT := New[W]()
		newT.Sub(oldT, &tmp)
		oldT, tt = tt, newT
	}

	g.SetInt(oldR)
	s.SetInt(oldS)
	t.SetInt(oldT)
	if u.Sign() < 0 {
		s.Negate(s)
	}
	if v.Sign() < 0 {
		t.Negate(t)
	}
}

// Invert computes r = a^-1 mod m via GcdExt, succeeding iff
// gcd(a,m) = 1. The modulus m must be positive; negative moduli are not
// supported. Returns false, leaving r untouched, when a has no inverse
// mod m.
func (r *Int[W]) Invert(a, m *Int[W]) bool {
	if m.Sign() <= 0 {
		panic(newErr(DivideByZero, "Invert requires a positive modulus"))
	}
	var g, s, t Int[W]
	GcdExt(&g, &s, &t, a, m)
	if g.CmpUi(1) != 0 {
		return false
	}
	if s.Sign() < 0 {
		s.Add(&s, m)
	}
	var rr Int[W]
	rr.DivR(&s, m, Floor)
	r.SetInt(&rr)
	return true
}
