package mpi

// mod8 and mod4 read the low 3/2 bits of |x| without materializing a
// separate reduced Int; used to drive the Jacobi symbol's sign-flip
// rules the way internal/limb's single-limb base case does.
func mod8[W Word](x *Int[W]) uint {
	return limbBitAt(x.limbs, 2)<<2 | limbBitAt(x.limbs, 1)<<1 | limbBitAt(x.limbs, 0)
}

func mod4[W Word](x *Int[W]) uint {
	return limbBitAt(x.limbs, 1)<<1 | limbBitAt(x.limbs, 0)
}

// Jacobi computes the Jacobi symbol (a/n) for odd n > 0, generalizing
// internal/limb's single-limb JacobiN to arbitrary-width operands: the
// same classical iteration, composed over repeated mod/shift rather
// than a single machine word.
func Jacobi[W Word](aIn, nIn *Int[W]) int {
	n := New[W]()
	n.Abs(nIn)
	if n.IsZero() || n.Tstbit(0) == 0 {
		panic(newErr(DivideByZero, "Jacobi requires an odd positive modulus"))
	}
	a := New[W]()
	a.DivR(aIn, n, Floor)

	result := 1
	for !a.IsZero() {
		for a.Tstbit(0) == 0 {
			a.Shr(a, 1)
			if BasecaseJacobiStepFromMod8(mod8(n)) {
				result = -result
			}
		}
		if ReciprocityFlipFromMod4(mod4(a), mod4(n)) {
			result = -result
		}
		a, n = n.Clone(), a.Clone()
		var rem Int[W]
		rem.DivR(a, n, Floor)
		a = &rem
	}
	if n.CmpUi(1) == 0 {
		return result
	}
	return 0
}

// BasecaseJacobiStepFromMod8 and ReciprocityFlipFromMod4 mirror
// internal/limb's single-word helpers of the same logic, exposed at the
// mpi level so Jacobi can drive them from a multi-limb residue's low
// bits. They take the same uint residues as internal/limb's
// BasecaseJacobiStep and ReciprocityFlip.
func BasecaseJacobiStepFromMod8(r uint) bool {
	r &= 7
	return r == 3 || r == 5
}

func ReciprocityFlipFromMod4(a, b uint) bool {
	return a&3 == 3 && b&3 == 3
}

// SqrtMod sets r to a square root of a modulo cfg's modulus (which must
// be an odd prime for the result to be meaningful) via Tonelli-Shanks,
// taking the p ≡ 3 (mod 4) shortcut when available. Returns an
// mpi.Error with code SqrtNotFound when a is a non-residue.
func SqrtMod[W Word](r *Int[W], a *Int[W], cfg *ModCfg[W]) error {
	m := &cfg.M
	ar := naiveReduce(a, m)
	if ar.IsZero() {
		r.SetInt64(0)
		return nil
	}
	if Jacobi(ar, m) != 1 {
		return newErr(SqrtNotFound, "value is not a quadratic residue")
	}

	// p ≡ 3 (mod 4): r = a^((p+1)/4) mod p, a guaranteed square root
	// when a is a residue. The guard above is what makes this exit
	// valid; the general loop below handles every other odd prime.
	if mod4(m) == 3 {
		var e Int[W]
		e.AddUi(m, 1)
		e.DivQ2Exp(&e, 2, Trunc)
		var cand Int[W]
		cfg.PowMod(&cand, ar, &e)
		r.SetInt(&cand)
		return nil
	}

	// General Tonelli-Shanks: factor p-1 = q * 2^s with q odd.
	q := New[W]()
	q.SubUi(m, 1)
	s := 0
	for q.Tstbit(0) == 0 {
		q.Shr(q, 1)
		s++
	}

	z := findNonResidue(m)
	mM := s
	var c Int[W]
	cfg.PowMod(&c, z, q)

	var t Int[W]
	cfg.PowMod(&t, ar, q)

	rq := New[W]()
	var qPlus1 Int[W]
	qPlus1.AddUi(q, 1)
	qPlus1.DivQ2Exp(&qPlus1, 1, Trunc)
	cfg.PowMod(rq, ar, &qPlus1)

	one := FromInt64[W](1)
	for {
		if t.Cmp(one) == 0 {
			r.SetInt(rq)
			return nil
		}
		// find least i, 0 < i < mM, with t^(2^i) == 1
		i := 0
		tt := New[W]()
		tt.SetInt(&t)
		for tt.Cmp(one) != 0 {
			cfg.SquareMod(tt, tt)
			i++
			if i >= mM {
				return newErr(SqrtNotFound, "tonelli-shanks failed to converge")
			}
		}
		b := New[W]()
		b.SetInt(&c)
		for j := 0; j < mM-i-1; j++ {
			cfg.SquareMod(b, b)
		}
		mM = i
		cfg.SquareMod(&c, b)
		cfg.MulMod(&t, &t, &c)
		cfg.MulMod(rq, rq, b)
	}
}

// findNonResidue returns the smallest small integer z >= 2 with Jacobi
// symbol (z/m) == -1, the deterministic search Tonelli-Shanks needs to
// seed its 2-power ladder (no CSPRNG required: any non-residue works and
// roughly half of all residues qualify, so this converges in a handful
// of steps for realistic moduli).
func findNonResidue[W Word](m *Int[W]) *Int[W] {
	for v := uint64(2); ; v++ {
		z := FromUint64[W](v)
		if Jacobi(z, m) == -1 {
			return z
		}
	}
}
