// Package mpi implements a signed multi-precision integer and its
// modular-arithmetic layer over a caller-selected limb width W.
package mpi

import (
	"math"

	"github.com/neil-smyth/phantom-sub003/internal/limb"
)

// Word re-exports limb.Word so callers do not need to import the
// internal package to name the constraint.
type Word = limb.Word

// Int is a signed multi-precision integer: a little-endian limb vector
// plus a sign bit. limbs is always normalized (empty, or its last entry
// non-zero); zero is canonically represented by a nil/empty slice with
// neg == false. There is no negative zero.
type Int[W Word] struct {
	limbs []W
	neg   bool

	// scratch is reused across this Int's multiplicative operations and
	// grows monotonically. Callers seeking peak-memory control construct
	// short-lived Ints.
	scratch []W
}

// Endian selects the byte order used by Bytes/SetBytes.
type Endian int

const (
	BigEndian Endian = iota
	LittleEndian
)

// New returns a zero-valued Int.
func New[W Word]() *Int[W] { return &Int[W]{} }

// FromInt64 constructs an Int from a signed machine integer.
func FromInt64[W Word](v int64) *Int[W] {
	r := New[W]()
	r.SetInt64(v)
	return r
}

// FromUint64 constructs an Int from an unsigned machine integer.
func FromUint64[W Word](v uint64) *Int[W] {
	r := New[W]()
	r.SetUint64(v)
	return r
}

// SetInt64 sets r to v.
func (r *Int[W]) SetInt64(v int64) {
	neg := v < 0
	uv := uint64(v)
	if neg {
		uv = uint64(-v)
	}
	r.SetUint64(uv)
	r.neg = neg && !r.isZeroMagnitude()
}

// SetUint64 sets r to v (always non-negative).
func (r *Int[W]) SetUint64(v uint64) {
	r.neg = false
	r.limbs = r.limbs[:0]
	bw := limb.Bits[W]()
	for v != 0 {
		r.limbs = append(r.limbs, W(v)&limb.Mask[W]())
		if bw >= 64 {
			v = 0
		} else {
			v >>= bw
		}
	}
}

// SetFloat64 sets r to the integer part of f, truncated toward zero.
// NaN, +-Inf and |f| < 1 all yield 0.
func (r *Int[W]) SetFloat64(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 && f > -1 {
		r.SetInt64(0)
		return
	}
	neg := f < 0
	if neg {
		f = -f
	}
	f = math.Trunc(f)

	r.limbs = r.limbs[:0]
	bw := limb.Bits[W]()
	scale := math.Ldexp(1, -int(bw))
	for f >= 1 {
		limbVal := math.Mod(f, math.Ldexp(1, int(bw)))
		r.limbs = append(r.limbs, W(uint64(limbVal))&limb.Mask[W]())
		f = math.Trunc(f * scale)
	}
	r.normalize()
	r.neg = neg && !r.isZeroMagnitude()
}

// SetInt sets r to a copy of a.
func (r *Int[W]) SetInt(a *Int[W]) {
	r.limbs = append(r.limbs[:0], a.limbs...)
	r.neg = a.neg
}

// Clone returns a deep copy of r.
func (r *Int[W]) Clone() *Int[W] {
	c := New[W]()
	c.SetInt(r)
	return c
}

// SetBytes sets r to the non-negative integer encoded by b under the
// given byte order. Zero always serializes to/from a single 0x00 byte.
func (r *Int[W]) SetBytes(b []byte, e Endian) {
	r.neg = false
	r.limbs = r.limbs[:0]
	if len(b) == 0 {
		return
	}
	be := make([]byte, len(b))
	if e == BigEndian {
		copy(be, b)
	} else {
		for i, v := range b {
			be[len(b)-1-i] = v
		}
	}

	bw := int(limb.Bits[W]())
	totalBits := len(be) * 8
	nLimbs := (totalBits + bw - 1) / bw
	r.limbs = make([]W, nLimbs)
	for i, v := range be {
		byteBitPos := (len(be) - 1 - i) * 8
		limbIdx := byteBitPos / bw
		bitOff := byteBitPos % bw
		val := uint64(v) << uint(bitOff)
		r.limbs[limbIdx] |= W(val) & limb.Mask[W]()
		if bitOff+8 > bw {
			spill := bitOff + 8 - bw
			if limbIdx+1 < len(r.limbs) {
				r.limbs[limbIdx+1] |= W(uint64(v) >> uint(8-spill))
			}
		}
	}
	r.normalize()
}

// Bytes returns r's magnitude (sign is dropped) as a minimal-length
// byte slice in the given byte order. Zero returns a single 0x00 byte.
func (r *Int[W]) Bytes(e Endian) []byte {
	bw := int(limb.Bits[W]())
	if len(r.limbs) == 0 {
		return []byte{0}
	}
	totalBits := limb.BitLen(r.limbs, len(r.limbs))
	nBytes := (totalBits + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}
	be := make([]byte, nBytes)
	for i := 0; i < nBytes; i++ {
		byteBitPos := (nBytes - 1 - i) * 8
		limbIdx := byteBitPos / bw
		bitOff := byteBitPos % bw
		var v uint64
		if limbIdx < len(r.limbs) {
			v = uint64(r.limbs[limbIdx]) >> uint(bitOff)
		}
		if bitOff+8 > bw && limbIdx+1 < len(r.limbs) {
			spill := bitOff + 8 - bw
			v |= uint64(r.limbs[limbIdx+1]) << uint(8-spill)
		}
		be[i] = byte(v)
	}
	if e == BigEndian {
		return be
	}
	le := make([]byte, nBytes)
	for i, v := range be {
		le[nBytes-1-i] = v
	}
	return le
}

// Sign returns -1, 0, +1.
func (r *Int[W]) Sign() int {
	if r.isZeroMagnitude() {
		return 0
	}
	if r.neg {
		return -1
	}
	return 1
}

// IsZero reports whether r == 0.
func (r *Int[W]) IsZero() bool { return r.isZeroMagnitude() }

func (r *Int[W]) isZeroMagnitude() bool { return len(r.limbs) == 0 }

// BitLen returns the number of bits in the magnitude of r (0 for zero).
func (r *Int[W]) BitLen() int { return limb.BitLen(r.limbs, len(r.limbs)) }

func (r *Int[W]) normalize() {
	n := limb.NormalizedSize(r.limbs, len(r.limbs))
	r.limbs = r.limbs[:n]
	if n == 0 {
		r.neg = false
	}
}

// ensure grows r.limbs to at least n limbs without disturbing existing content beyond what callers
// explicitly overwrite.
func (r *Int[W]) ensure(n int) {
	for len(r.limbs) < n {
		r.limbs = append(r.limbs, 0)
	}
}

func (r *Int[W]) ensureScratch(n int) []W {
	if cap(r.scratch) < n {
		r.scratch = make([]W, n)
	}
	return r.scratch[:n]
}
