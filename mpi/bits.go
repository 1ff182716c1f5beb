package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

func limbBitAt[W Word](a []W, i int) uint {
	bw := int(limb.Bits[W]())
	idx := i / bw
	if idx >= len(a) {
		return 0
	}
	off := uint(i % bw)
	return uint((a[idx] >> off) & 1)
}

// Tstbit returns the i-th bit of the two's-complement infinite-precision
// interpretation of r: for r >= 0 this is simply the i-th
// magnitude bit; for r < 0 it is the i-th bit of NOT(|r|-1), i.e. the
// two's complement representation extended infinitely with 1s.
func (r *Int[W]) Tstbit(i int) uint {
	if i < 0 {
		return 0
	}
	if !r.neg {
		return limbBitAt(r.limbs, i)
	}
	var m1 Int[W]
	m1.SetInt(r)
	m1.neg = false
	one := FromUint64[W](1)
	m1.Sub(&m1, one)
	return 1 - limbBitAt(m1.limbs, i)
}

// Setbit forces the i-th two's-complement bit to 1, implemented as
// "add 2^i if it is not already set" so carry propagation (including
// across the sign boundary) falls out of ordinary Add.
func (r *Int[W]) Setbit(i int) {
	if r.Tstbit(i) == 1 {
		return
	}
	delta := New[W]()
	delta.shl1Exp(i)
	r.Add(r, delta)
}

// Unsetbit forces the i-th two's-complement bit to 0, implemented as
// "subtract 2^i if it is currently set."
func (r *Int[W]) Unsetbit(i int) {
	if r.Tstbit(i) == 0 {
		return
	}
	delta := New[W]()
	delta.shl1Exp(i)
	r.Sub(r, delta)
}

// shl1Exp sets r = 2^i.
func (r *Int[W]) shl1Exp(i int) {
	bw := int(limb.Bits[W]())
	idx := i / bw
	off := uint(i % bw)
	r.limbs = make([]W, idx+1)
	r.limbs[idx] = W(1) << off
	r.neg = false
}

// Shl sets r = a << k (k >= 0), growing storage as needed. The shift is
// arithmetic in effect: sign is preserved.
func (r *Int[W]) Shl(a *Int[W], k int) {
	if k < 0 {
		panic("mpi: Shl requires k >= 0")
	}
	if a.isZeroMagnitude() || k == 0 {
		r.SetInt(a)
		return
	}
	bw := int(limb.Bits[W]())
	limbShift := k / bw
	bitShift := uint(k % bw)

	n := len(a.limbs) + limbShift + 1
	out := make([]W, n)
	for i := len(a.limbs) - 1; i >= 0; i-- {
		out[i+limbShift] = a.limbs[i]
	}
	if bitShift != 0 {
		carry := limb.LShift(out[limbShift:], out[limbShift:], len(a.limbs)+1, bitShift)
		_ = carry
	}
	neg := a.neg
	r.limbs = out
	r.neg = neg
	r.normalize()
}

// Shr sets r = a >> k (k >= 0), an arithmetic right shift: the magnitude
// is shifted and sign preserved, dropping to zero rather than flooring
// toward -infinity.
func (r *Int[W]) Shr(a *Int[W], k int) {
	if k < 0 {
		panic("mpi: Shr requires k >= 0")
	}
	if a.isZeroMagnitude() || k == 0 {
		r.SetInt(a)
		return
	}
	bw := int(limb.Bits[W]())
	limbShift := k / bw
	bitShift := uint(k % bw)
	if limbShift >= len(a.limbs) {
		r.limbs = r.limbs[:0]
		r.neg = false
		return
	}
	src := a.limbs[limbShift:]
	out := make([]W, len(src))
	copy(out, src)
	if bitShift != 0 {
		limb.RShift(out, out, len(out), bitShift)
	}
	r.limbs = out
	r.neg = a.neg
	r.normalize()
}

// Mul2Exp is functionally equivalent to Shl, exposed for clarity at
// call sites that mean multiplication.
func (r *Int[W]) Mul2Exp(a *Int[W], k int) { r.Shl(a, k) }
