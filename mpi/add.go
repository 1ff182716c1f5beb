package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

// absAdd computes r = |a| + |b| (magnitudes only), returning the
// normalized limb slice.
func absAdd[W Word](a, b *Int[W]) []W {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	out := make([]W, n+1)
	ae := make([]W, n)
	be := make([]W, n)
	copy(ae, a.limbs)
	copy(be, b.limbs)
	carry := limb.AddN(out, ae, be, n)
	out[n] = carry
	return out[:limb.NormalizedSize(out, n+1)]
}

// absSub computes |a| - |b| (magnitudes only). The returned bool is true
// when |a| < |b|, in which case the limbs are |b| - |a|, so the flag
// encodes which operand dominated.
func absSub[W Word](a, b *Int[W]) ([]W, bool) {
	n := len(a.limbs)
	if len(b.limbs) > n {
		n = len(b.limbs)
	}
	ae := make([]W, n)
	be := make([]W, n)
	copy(ae, a.limbs)
	copy(be, b.limbs)
	if limb.CmpN(ae, be, n) >= 0 {
		out := make([]W, n)
		limb.SubN(out, ae, be, n)
		return out[:limb.NormalizedSize(out, n)], false
	}
	out := make([]W, n)
	limb.SubN(out, be, ae, n)
	return out[:limb.NormalizedSize(out, n)], true
}

// Add sets r = a + b.
func (r *Int[W]) Add(a, b *Int[W]) {
	switch {
	case a.neg == b.neg:
		r.limbs = absAdd(a, b)
		r.neg = a.neg && len(r.limbs) > 0
	default:
		// opposite signs: magnitude subtraction, sign follows the
		// larger-magnitude operand.
		mag, bDominates := absSub(a, b)
		r.limbs = mag
		if len(mag) == 0 {
			r.neg = false
		} else if bDominates {
			r.neg = b.neg
		} else {
			r.neg = a.neg
		}
	}
}

// Sub sets r = a - b.
func (r *Int[W]) Sub(a, b *Int[W]) {
	var negB Int[W]
	negB.SetInt(b)
	negB.Negate(&negB)
	r.Add(a, &negB)
}

// Negate sets r = -a.
func (r *Int[W]) Negate(a *Int[W]) {
	r.SetInt(a)
	if !r.isZeroMagnitude() {
		r.neg = !r.neg
	}
}

// Abs sets r = |a|.
func (r *Int[W]) Abs(a *Int[W]) {
	r.SetInt(a)
	r.neg = false
}

// AddUi sets r = a + v for a small unsigned v.
func (r *Int[W]) AddUi(a *Int[W], v uint64) {
	var tmp Int[W]
	tmp.SetUint64(v)
	r.Add(a, &tmp)
}

// SubUi sets r = a - v for a small unsigned v.
func (r *Int[W]) SubUi(a *Int[W], v uint64) {
	var tmp Int[W]
	tmp.SetUint64(v)
	r.Sub(a, &tmp)
}
