package mpi

import (
	"math"

	"github.com/neil-smyth/phantom-sub003/internal/limb"
)

// CmpAbs compares |r| to |a|: -1, 0, +1.
func (r *Int[W]) CmpAbs(a *Int[W]) int {
	if len(r.limbs) != len(a.limbs) {
		if len(r.limbs) < len(a.limbs) {
			return -1
		}
		return 1
	}
	return limb.CmpN(r.limbs, a.limbs, len(r.limbs))
}

// Cmp compares r to a with sign priority: -1, 0, +1.
func (r *Int[W]) Cmp(a *Int[W]) int {
	rs, as := r.Sign(), a.Sign()
	if rs != as {
		if rs < as {
			return -1
		}
		return 1
	}
	if rs == 0 {
		return 0
	}
	c := r.CmpAbs(a)
	if rs < 0 {
		return -c
	}
	return c
}

// CmpUi compares r to the unsigned small value v.
func (r *Int[W]) CmpUi(v uint64) int {
	var tmp Int[W]
	tmp.SetUint64(v)
	return r.Cmp(&tmp)
}

// CmpSi compares r to the signed small value v.
func (r *Int[W]) CmpSi(v int64) int {
	var tmp Int[W]
	tmp.SetInt64(v)
	return r.Cmp(&tmp)
}

// CmpFloat64 compares r to f, truncating f toward zero before
// comparing.
func (r *Int[W]) CmpFloat64(f float64) int {
	var tmp Int[W]
	tmp.SetFloat64(math.Trunc(f))
	return r.Cmp(&tmp)
}

// Equal reports whether r == a.
func (r *Int[W]) Equal(a *Int[W]) bool { return r.Cmp(a) == 0 }
