package mpi

// Pow sets r = a^e (e a non-negative exponent) via square-and-multiply,
// scanning e from MSB to LSB.
func (r *Int[W]) Pow(a *Int[W], e uint64) {
	var exp Int[W]
	exp.SetUint64(e)
	acc := FromInt64[W](1)
	base := a.Clone()
	bits := exp.BitLen()
	for i := bits - 1; i >= 0; i-- {
		acc.Mul(acc, acc)
		if exp.Tstbit(i) == 1 {
			acc.Mul(acc, base)
		}
	}
	r.SetInt(acc)
}

// Sqrt sets r = floor(sqrt(a)) for a >= 0 via Newton's method, starting
// at 2^ceil(log2(n)/2)+1 and halting when successive iterates stop
// decreasing in absolute value. Negative input yields 0, documented as
// indeterminate rather than an error.
func (r *Int[W]) Sqrt(a *Int[W]) {
	if a.Sign() < 0 {
		r.SetInt64(0)
		return
	}
	if a.IsZero() {
		r.SetInt64(0)
		return
	}
	n := a.BitLen()
	x := New[W]()
	x.shl1Exp((n+1)/2 + 1)

	for {
		// x_next = (x + a/x) / 2
		var q Int[W]
		q.DivQ(a, x, Trunc)
		var sum Int[W]
		sum.Add(x, &q)
		var next Int[W]
		next.DivQ2Exp(&sum, 1, Trunc)
		if next.CmpAbs(x) >= 0 {
			break
		}
		x = &next
	}
	// Newton's iteration for integer sqrt can overshoot by one at the
	// fixed point; nudge down until x*x <= a.
	for {
		var sq Int[W]
		sq.Mul(x, x)
		if sq.CmpAbs(a) <= 0 {
			break
		}
		one := FromInt64[W](1)
		var dec Int[W]
		dec.Sub(x, one)
		x = &dec
	}
	r.SetInt(x)
}
