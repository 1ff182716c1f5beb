package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

// naiveReduce folds x into [0, m) via ordinary floored division.
func naiveReduce[W Word](x, m *Int[W]) *Int[W] {
	r := New[W]()
	r.DivR(x, m, Floor)
	if r.Sign() < 0 {
		r.Add(r, m)
	}
	return r
}

// barrettReduce implements the classical seven-step Barrett algorithm.
// It assumes 0 <= in < B^(2k) (true for any product of two operands
// already reduced mod m, which is how MulMod/SquareMod/PowMod feed it);
// callers presenting a wider or negative value are folded back into that
// range first.
func (cfg *ModCfg[W]) barrettReduce(in *Int[W]) *Int[W] {
	x := New[W]()
	x.SetInt(in)
	if x.Sign() < 0 {
		// fold to non-negative by adding enough multiples of m.
		for x.Sign() < 0 {
			x.Add(x, &cfg.M)
		}
	}
	bound := New[W]()
	bound.shl1Exp(2 * cfg.K * int(cfg.Blog2))
	if x.CmpAbs(bound) >= 0 {
		return naiveReduce(x, &cfg.M)
	}

	blog2 := int(cfg.Blog2)
	// q1 = in >> (blog2*(k-1))
	q1 := New[W]()
	q1.Shr(x, blog2*(cfg.K-1))
	// q2 = q1 * mu
	var q2 Int[W]
	q2.Mul(q1, &cfg.Mu)
	// q3 = q2 >> (blog2*(k+1))
	q3 := New[W]()
	q3.Shr(&q2, blog2*(cfg.K+1))

	modBk1 := New[W]()
	modBk1.shl1Exp(blog2 * (cfg.K + 1))

	// r1 = in mod B^(k+1)
	r1 := New[W]()
	r1.DivR2Exp(x, blog2*(cfg.K+1), Trunc)
	// r2 = (q3*m) mod B^(k+1)
	var q3m Int[W]
	q3m.Mul(q3, &cfg.M)
	r2 := New[W]()
	r2.DivR2Exp(&q3m, blog2*(cfg.K+1), Trunc)

	r := New[W]()
	r.Sub(r1, r2)
	if r.Sign() < 0 {
		r.Add(r, modBk1)
	}
	for i := 0; i < 2 && r.CmpAbs(&cfg.M) >= 0; i++ {
		r.Sub(r, &cfg.M)
	}
	return r
}

// mulMont computes a*b*R^-1 mod m via interleaved REDC:
// for each limb i of b, u = (t[0]*ninv) mod B; t += u*m; t >>= Blog2;
// finally subtract m once if t >= m. a and b must already be < m.
func (cfg *ModCfg[W]) mulMont(a, b *Int[W]) *Int[W] {
	k := cfg.K
	t := make([]W, k+2)
	aL := make([]W, k)
	copy(aL, a.limbs)
	bL := make([]W, k)
	copy(bL, b.limbs)
	mL := make([]W, k)
	copy(mL, cfg.M.limbs)

	for i := 0; i < k; i++ {
		// t += a * b[i], carry propagated across the remaining high limbs
		carry := limb.AddMul1(t[:k], aL, k, bL[i])
		limb.Add1(t[k:], t[k:], len(t)-k, carry)

		u := t[0] * cfg.Ninv
		carry2 := limb.AddMul1(t[:k], mL, k, u)
		limb.Add1(t[k:], t[k:], len(t)-k, carry2)

		// t >>= Blog2 (drop one limb, t[0] is guaranteed zero by u's choice)
		copy(t, t[1:])
		t[len(t)-1] = 0
	}

	// The pre-reduction result is < 2m, which needs k+1 limbs whenever
	// the loop's final carry-out lands in t[k]; keep that limb through
	// the comparison so the conditional subtraction sees the full value.
	r := New[W]()
	r.limbs = append([]W(nil), t[:k+1]...)
	r.normalize()
	if r.CmpAbs(&cfg.M) >= 0 {
		r.Sub(r, &cfg.M)
	}
	return r
}

// reduceMont computes x*R^-1 mod m, i.e. mulMont(x, 1).
func (cfg *ModCfg[W]) reduceMont(x *Int[W]) *Int[W] {
	one := FromInt64[W](1)
	return cfg.mulMont(x, one)
}

// ToMontgomery maps a (an ordinary reduced residue, 0 <= a < m) into the
// Montgomery domain: a*R mod m.
func (cfg *ModCfg[W]) ToMontgomery(a *Int[W]) *Int[W] { return cfg.mulMont(a, &cfg.R2) }

// FromMontgomery maps a Montgomery-domain value back to an ordinary
// residue.
func (cfg *ModCfg[W]) FromMontgomery(a *Int[W]) *Int[W] { return cfg.reduceMont(a) }

// Reduce folds x into [0, m) using cfg's selected strategy. All four
// kinds agree on the final residue.
func (cfg *ModCfg[W]) Reduce(x *Int[W]) *Int[W] {
	switch cfg.Kind {
	case Naive:
		return naiveReduce(x, &cfg.M)
	case Barrett:
		return cfg.barrettReduce(x)
	case Montgomery:
		xr := naiveReduce(x, &cfg.M)
		xm := cfg.ToMontgomery(xr)
		return cfg.FromMontgomery(xm)
	case Custom:
		return cfg.Custom.Reduce(x, cfg)
	default:
		return naiveReduce(x, &cfg.M)
	}
}

func (cfg *ModCfg[W]) reduceProduct(p *Int[W]) *Int[W] {
	switch cfg.Kind {
	case Barrett:
		return cfg.barrettReduce(p)
	case Custom:
		if cfg.Custom != nil {
			return cfg.Custom.Reduce(p, cfg)
		}
		return naiveReduce(p, &cfg.M)
	default:
		return naiveReduce(p, &cfg.M)
	}
}

// AddMod sets r = (a+b) mod m.
func (cfg *ModCfg[W]) AddMod(r, a, b *Int[W]) {
	var s Int[W]
	s.Add(a, b)
	res := cfg.Reduce(&s)
	r.SetInt(res)
}

// SubMod sets r = (a-b) mod m.
func (cfg *ModCfg[W]) SubMod(r, a, b *Int[W]) {
	var s Int[W]
	s.Sub(a, b)
	res := cfg.Reduce(&s)
	r.SetInt(res)
}

// MulMod sets r = (a*b) mod m, using Montgomery REDC directly when
// cfg.Kind == Montgomery (both operands entering and leaving ordinary,
// non-domain form) and Barrett/naive reduction of the plain product
// otherwise.
func (cfg *ModCfg[W]) MulMod(r, a, b *Int[W]) {
	ar := naiveReduce(a, &cfg.M)
	br := naiveReduce(b, &cfg.M)
	if cfg.Kind == Montgomery {
		am := cfg.ToMontgomery(ar)
		bm := cfg.ToMontgomery(br)
		pm := cfg.mulMont(am, bm)
		r.SetInt(cfg.FromMontgomery(pm))
		return
	}
	var p Int[W]
	p.Mul(ar, br)
	r.SetInt(cfg.reduceProduct(&p))
}

// SquareMod sets r = a^2 mod m.
func (cfg *ModCfg[W]) SquareMod(r, a *Int[W]) { cfg.MulMod(r, a, a) }

// PowMod sets r = a^e mod m, scanning e MSB to LSB. The Montgomery path
// keeps the base in Montgomery form throughout and converts out with a
// final mulMont(_, 1).
func (cfg *ModCfg[W]) PowMod(r, a, e *Int[W]) {
	if cfg.M.IsZero() {
		panic(newErr(ModulusHasLengthZero, "PowMod modulus has length zero"))
	}
	if e.Sign() == 0 {
		one := FromInt64[W](1)
		r.SetInt(cfg.Reduce(one))
		return
	}

	ar := naiveReduce(a, &cfg.M)
	bits := e.BitLen()

	if cfg.Kind == Montgomery {
		accM := cfg.ToMontgomery(FromInt64[W](1))
		baseM := cfg.ToMontgomery(ar)
		for i := bits - 1; i >= 0; i-- {
			accM = cfg.mulMont(accM, accM)
			if e.Tstbit(i) == 1 {
				accM = cfg.mulMont(accM, baseM)
			}
		}
		r.SetInt(cfg.FromMontgomery(accM))
		return
	}

	acc := FromInt64[W](1)
	base := ar
	for i := bits - 1; i >= 0; i-- {
		var sq Int[W]
		cfg.SquareMod(&sq, acc)
		acc = &sq
		if e.Tstbit(i) == 1 {
			var mul Int[W]
			cfg.MulMod(&mul, acc, base)
			acc = &mul
		}
	}
	r.SetInt(acc)
}
