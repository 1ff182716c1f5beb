package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

// RoundMode selects how DivQ/DivR/DivQR round a non-exact division.
// Never defaulted: every division call names one explicitly.
type RoundMode int

const (
	// Floor rounds the quotient toward -infinity.
	Floor RoundMode = iota
	// Ceil rounds the quotient toward +infinity.
	Ceil
	// Trunc rounds the quotient toward zero.
	Trunc
)

// truncDivMag performs the magnitude-only truncating division a/b,
// returning the (unsigned) quotient and remainder magnitudes.
func truncDivMag[W Word](a, b *Int[W]) (q, rem *Int[W]) {
	if b.isZeroMagnitude() {
		panic(newErr(DivideByZero, "division by zero"))
	}
	an, bn := len(a.limbs), len(b.limbs)
	q = New[W]()
	rem = New[W]()
	if an < bn || (an == bn && limb.CmpN(a.limbs, b.limbs, an) < 0) {
		rem.limbs = append([]W(nil), a.limbs...)
		return q, rem
	}

	// Single-limb divisor fast path.
	if len(b.limbs) == 1 {
		qbuf := make([]W, an)
		r := limb.DivQR1(qbuf, a.limbs, an, b.limbs[0])
		q.limbs = qbuf[:limb.NormalizedSize(qbuf, an)]
		if r != 0 {
			rem.limbs = []W{r}
		}
		return q, rem
	}

	qbuf := make([]W, an-bn+2)
	rbuf := make([]W, bn)
	limb.TDivQR(qbuf, rbuf, a.limbs, an, b.limbs, bn)
	q.limbs = qbuf[:limb.NormalizedSize(qbuf, len(qbuf))]
	rem.limbs = rbuf[:limb.NormalizedSize(rbuf, bn)]
	return q, rem
}

// DivQR sets q = a div b and r = a mod b under the given rounding mode,
// satisfying (a/b)*b + (a mod b) = a exactly.
func DivQR[W Word](q, r, a, b *Int[W], mode RoundMode) {
	tq, trem := truncDivMag(a, b)
	tq.neg = (a.neg != b.neg) && !tq.isZeroMagnitude()
	trem.neg = a.neg && !trem.isZeroMagnitude()

	if trem.isZeroMagnitude() || mode == Trunc {
		q.SetInt(tq)
		r.SetInt(trem)
		return
	}

	signA, signB := a.neg, b.neg
	adjust := 0
	switch mode {
	case Floor:
		if signA != signB {
			adjust = -1
		}
	case Ceil:
		if signA == signB {
			adjust = 1
		}
	}
	if adjust == 0 {
		q.SetInt(tq)
		r.SetInt(trem)
		return
	}
	delta := FromInt64[W](int64(adjust))
	q.Add(tq, delta)
	// Recompute the remainder directly from the definition so rounding
	// adjustments can never drift out of sync with a = q*b + r.
	var qb Int[W]
	qb.Mul(q, b)
	r.Sub(a, &qb)
}

// DivQ sets q = a div b under mode.
func (r *Int[W]) DivQ(a, b *Int[W], mode RoundMode) {
	var rem Int[W]
	DivQR(r, &rem, a, b, mode)
}

// DivR sets r = a mod b under mode.
func (r *Int[W]) DivR(a, b *Int[W], mode RoundMode) {
	var q Int[W]
	DivQR(&q, r, a, b, mode)
}

// DivQUi sets q = a div v for small unsigned v under mode.
func (r *Int[W]) DivQUi(a *Int[W], v uint64, mode RoundMode) {
	var tmp Int[W]
	tmp.SetUint64(v)
	r.DivQ(a, &tmp, mode)
}

// DivRUi sets r = a mod v for small unsigned v under mode.
func (r *Int[W]) DivRUi(a *Int[W], v uint64, mode RoundMode) {
	var tmp Int[W]
	tmp.SetUint64(v)
	r.DivR(a, &tmp, mode)
}

// DivQ2Exp sets q = a div 2^k under mode: a shift rather than the
// general division path, with the rounding mode deciding whether a
// nonzero remainder contributes +-1 to the quotient.
func (r *Int[W]) DivQ2Exp(a *Int[W], k int, mode RoundMode) {
	var rem Int[W]
	DivQR2Exp(r, &rem, a, k, mode)
}

// DivR2Exp sets r = a mod 2^k under mode.
func (r *Int[W]) DivR2Exp(a *Int[W], k int, mode RoundMode) {
	var q Int[W]
	DivQR2Exp(&q, r, a, k, mode)
}

// DivQR2Exp implements the power-of-two divisor shortcut.
func DivQR2Exp[W Word](q, r, a *Int[W], k int, mode RoundMode) {
	var trunc Int[W]
	trunc.Shr(a, k)
	trunc.neg = a.neg && !trunc.isZeroMagnitude()

	var mask Int[W]
	mask.shl1Exp(k)
	mask.SubUi(&mask, 1)
	var remMag Int[W]
	remMag.limbs = andLimbs(a.limbs, mask.limbs)
	remMag.normalize()
	remMag.neg = a.neg && !remMag.isZeroMagnitude()

	if remMag.isZeroMagnitude() || mode == Trunc {
		q.SetInt(&trunc)
		r.SetInt(&remMag)
		return
	}
	signA := a.neg
	adjust := 0
	switch mode {
	case Floor:
		if signA {
			adjust = -1
		}
	case Ceil:
		if !signA {
			adjust = 1
		}
	}
	if adjust == 0 {
		q.SetInt(&trunc)
		r.SetInt(&remMag)
		return
	}
	delta := FromInt64[W](int64(adjust))
	q.Add(&trunc, delta)
	var qp Int[W]
	qp.Shl(q, k)
	r.Sub(a, &qp)
}

func andLimbs[W Word](a, b []W) []W {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]W, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] & b[i]
	}
	return out[:limb.NormalizedSize(out, n)]
}
