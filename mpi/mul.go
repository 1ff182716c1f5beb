package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

// Mul sets r = a * b.
func (r *Int[W]) Mul(a, b *Int[W]) {
	if a.isZeroMagnitude() || b.isZeroMagnitude() {
		r.limbs = r.limbs[:0]
		r.neg = false
		return
	}
	an, bn := len(a.limbs), len(b.limbs)
	out := r.ensureScratch(an + bn)
	limb.Zero(out)
	limb.MulN(out, a.limbs, an, b.limbs, bn)
	n := limb.NormalizedSize(out, an+bn)
	r.limbs = append(r.limbs[:0], out[:n]...)
	r.neg = a.neg != b.neg
}

// Square sets r = a * a. Exposed separately from Mul because a squaring
// schoolbook pass can skip roughly half the cross-multiplications; this
// implementation keeps the general MulN path (clarity over the squeeze)
// but callers benefit from the dedicated entry point should a faster
// kernel be substituted later.
func (r *Int[W]) Square(a *Int[W]) {
	r.Mul(a, a)
}

// MulUi sets r = a * v for a small unsigned v.
func (r *Int[W]) MulUi(a *Int[W], v uint64) {
	var tmp Int[W]
	tmp.SetUint64(v)
	r.Mul(a, &tmp)
}
