package field

import (
	"math"
	"math/bits"

	"github.com/neil-smyth/phantom-sub003/internal/limb"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

// SmallReducer is the single-limb counterpart of Reducer: modular
// arithmetic over a prime q that fits in one machine word, the layer
// NTT-style code paths sit on. Implementations may keep values in an
// internal domain (the Montgomery variant does); ConvertTo/ConvertFrom
// cross that boundary, and every other method operates on internal
// representatives.
type SmallReducer[W mpi.Word] interface {
	Q() W
	ConvertTo(a W) W
	ConvertFrom(a W) W
	// Reduce folds the double-width value hi*B + lo into [0, q).
	Reduce(hi, lo W) W
	Mul(a, b W) W
	Sqr(a W) W
	Add(a, b W) W
	Sub(a, b W) W
}

// modAdd and modSub are shared by all three reducers: representatives
// are < q, so one conditional fold suffices, with the carry/borrow word
// covering q close to the limb radix.
func modAdd[W mpi.Word](a, b, q W) W {
	s, c := limb.AddWW(a, b, 0)
	if c != 0 || s >= q {
		s, _ = limb.SubWW(s, q, 0)
	}
	return s
}

func modSub[W mpi.Word](a, b, q W) W {
	d, borrow := limb.SubWW(a, b, 0)
	if borrow != 0 {
		d, _ = limb.AddWW(d, q, 0)
	}
	return d
}

// refReducer is the reference strategy: every product is folded by a
// plain double-width division.
type refReducer[W mpi.Word] struct{ q W }

// NewSmallReference builds the reference single-limb reducer for odd or
// even q > 1.
func NewSmallReference[W mpi.Word](q W) SmallReducer[W] {
	if q <= 1 {
		panic("field: single-limb modulus must be > 1")
	}
	return refReducer[W]{q}
}

func (r refReducer[W]) Q() W              { return r.q }
func (r refReducer[W]) ConvertTo(a W) W   { return r.Reduce(0, a) }
func (r refReducer[W]) ConvertFrom(a W) W { return a }

func (r refReducer[W]) Reduce(hi, lo W) W {
	return divWWRem(hi, lo, r.q)
}

func (r refReducer[W]) Mul(a, b W) W {
	hi, lo := limb.MulWW(a, b)
	return r.Reduce(hi, lo)
}

func (r refReducer[W]) Sqr(a W) W    { return r.Mul(a, a) }
func (r refReducer[W]) Add(a, b W) W { return modAdd(a, b, r.q) }
func (r refReducer[W]) Sub(a, b W) W { return modSub(a, b, r.q) }

// divWWRem returns (hi*B + lo) mod d for any hi, lo.
func divWWRem[W mpi.Word](hi, lo, d W) W {
	if limb.Bits[W]() == 64 {
		h := uint64(hi) % uint64(d)
		_, rem := bits.Div64(h, uint64(lo), uint64(d))
		return W(rem)
	}
	v := uint64(hi)<<limb.Bits[W]() | uint64(lo)
	return W(v % uint64(d))
}

// fpReducer is the float-reciprocal Barrett strategy: 1/q is stored as
// a float and each reduction replaces the division with a multiply and
// a truncation. Valid only while 2q^2 fits the next wider limb, so the
// constructor bounds q.
type fpReducer[W mpi.Word] struct {
	q    W
	invQ float64
}

// NewSmallBarrettFP builds the float-reciprocal reducer. Panics for
// 64-bit limbs (there is no wider type to hold the products) and for q
// too large for 2q^2 to fit in 64 bits.
func NewSmallBarrettFP[W mpi.Word](q W) SmallReducer[W] {
	if q <= 1 {
		panic("field: single-limb modulus must be > 1")
	}
	if limb.Bits[W]() == 64 {
		panic("field: Barrett-FP requires a limb narrower than 64 bits")
	}
	if uint64(q) > 0xB504F333 {
		// floor(sqrt(2^63)): beyond this 2q^2 no longer fits in uint64.
		panic("field: Barrett-FP modulus too large for the wide type")
	}
	return fpReducer[W]{q: q, invQ: 1 / float64(q)}
}

func (r fpReducer[W]) Q() W              { return r.q }
func (r fpReducer[W]) ConvertTo(a W) W   { return r.Reduce(0, a) }
func (r fpReducer[W]) ConvertFrom(a W) W { return a }

func (r fpReducer[W]) Reduce(hi, lo W) W {
	x := uint64(hi)<<limb.Bits[W]() | uint64(lo)
	return W(r.reduceWide(x))
}

// reduceWide computes x mod q as x - q*floor(x/q), with the quotient
// estimated through the stored reciprocal. The estimate is off by at
// most one in either direction, fixed by the trailing folds.
func (r fpReducer[W]) reduceWide(x uint64) uint64 {
	qhat := uint64(math.Trunc(float64(x) * r.invQ))
	q64 := uint64(r.q)
	est := int64(x) - int64(qhat*q64)
	for est < 0 {
		est += int64(q64)
	}
	for est >= int64(q64) {
		est -= int64(q64)
	}
	return uint64(est)
}

func (r fpReducer[W]) Mul(a, b W) W {
	return W(r.reduceWide(uint64(a) * uint64(b)))
}

func (r fpReducer[W]) Sqr(a W) W    { return r.Mul(a, a) }
func (r fpReducer[W]) Add(a, b W) W { return modAdd(a, b, r.q) }
func (r fpReducer[W]) Sub(a, b W) W { return modSub(a, b, r.q) }

// montReducer keeps representatives in the Montgomery domain a*R mod q
// with R = B = 2^Bits(W); Mul is a single-word REDC.
type montReducer[W mpi.Word] struct {
	q    W
	ninv W // -q^-1 mod B
	r2   W // B^2 mod q
}

// NewSmallMontgomery builds the single-limb Montgomery reducer; q must
// be odd.
func NewSmallMontgomery[W mpi.Word](q W) SmallReducer[W] {
	if q <= 1 {
		panic("field: single-limb modulus must be > 1")
	}
	if q&1 == 0 {
		panic("field: Montgomery requires an odd modulus")
	}
	inv := limb.Binvert(q)
	ninv := (^inv + 1) & limb.Mask[W]()
	bModQ := divWWRem(1, 0, q)
	hi, lo := limb.MulWW(bModQ, bModQ)
	r2 := divWWRem(hi, lo, q)
	return montReducer[W]{q: q, ninv: ninv, r2: r2}
}

func (r montReducer[W]) Q() W { return r.q }

func (r montReducer[W]) ConvertTo(a W) W {
	return r.Mul(divWWRem(0, a, r.q), r.r2)
}

func (r montReducer[W]) ConvertFrom(a W) W { return r.redc(0, a) }

// redc computes (hi*B + lo) * B^-1 mod q for hi*B + lo < q*B.
func (r montReducer[W]) redc(hi, lo W) W {
	m := lo * r.ninv
	mh, ml := limb.MulWW(m, r.q)
	_, c := limb.AddWW(lo, ml, 0)
	t, c2 := limb.AddWW(hi, mh, c)
	if c2 != 0 || t >= r.q {
		t, _ = limb.SubWW(t, r.q, 0)
	}
	return t
}

func (r montReducer[W]) Reduce(hi, lo W) W {
	// Fold the wide value to an ordinary residue, then re-enter the
	// domain; Reduce's contract is domain-preserving like Mul's.
	return r.ConvertTo(divWWRem(hi, lo, r.q))
}

func (r montReducer[W]) Mul(a, b W) W {
	hi, lo := limb.MulWW(a, b)
	return r.redc(hi, lo)
}

func (r montReducer[W]) Sqr(a W) W    { return r.Mul(a, a) }
func (r montReducer[W]) Add(a, b W) W { return modAdd(a, b, r.q) }
func (r montReducer[W]) Sub(a, b W) W { return modSub(a, b, r.q) }

// SmallElem is a residue of a single-limb prime field, bound to the
// SmallReducer that owns its representation.
type SmallElem[W mpi.Word] struct {
	v   W
	red SmallReducer[W]
}

// NewSmall builds an element from an ordinary (non-domain) value,
// reducing it into range.
func NewSmall[W mpi.Word](red SmallReducer[W], a W) *SmallElem[W] {
	return &SmallElem[W]{v: red.ConvertTo(a), red: red}
}

// GetQ returns the field's modulus.
func (e *SmallElem[W]) GetQ() W { return e.red.Q() }

// Value returns the element's ordinary (non-domain) value.
func (e *SmallElem[W]) Value() W { return e.red.ConvertFrom(e.v) }

// Set copies b into e.
func (e *SmallElem[W]) Set(b *SmallElem[W]) {
	e.v, e.red = b.v, b.red
}

// Add sets e = a + b.
func (e *SmallElem[W]) Add(a, b *SmallElem[W]) {
	e.red = a.red
	e.v = e.red.Add(a.v, b.v)
}

// Sub sets e = a - b.
func (e *SmallElem[W]) Sub(a, b *SmallElem[W]) {
	e.red = a.red
	e.v = e.red.Sub(a.v, b.v)
}

// Negate sets e = -a mod q.
func (e *SmallElem[W]) Negate(a *SmallElem[W]) {
	e.red = a.red
	e.v = e.red.Sub(0, a.v)
}

// Mul sets e = a * b.
func (e *SmallElem[W]) Mul(a, b *SmallElem[W]) {
	e.red = a.red
	e.v = e.red.Mul(a.v, b.v)
}

// Sqr sets e = a^2.
func (e *SmallElem[W]) Sqr(a *SmallElem[W]) {
	e.red = a.red
	e.v = e.red.Sqr(a.v)
}

// Pow sets e = a^k mod q by square-and-multiply over the reducer's
// internal representation.
func (e *SmallElem[W]) Pow(a *SmallElem[W], k uint64) {
	red := a.red
	acc := red.ConvertTo(1)
	base := a.v
	for i := 63; i >= 0; i-- {
		acc = red.Sqr(acc)
		if (k>>uint(i))&1 == 1 {
			acc = red.Mul(acc, base)
		}
	}
	e.red, e.v = red, acc
}

// Inverse sets e = a^-1 mod q, returning false when a is not invertible.
// The extended-Euclid step runs on the ordinary value through the
// multi-precision path; one limb never makes that the hot loop.
func (e *SmallElem[W]) Inverse(a *SmallElem[W]) bool {
	q := mpi.FromUint64[W](uint64(a.red.Q()))
	av := mpi.FromUint64[W](uint64(a.Value()))
	var inv mpi.Int[W]
	if !inv.Invert(av, q) {
		return false
	}
	e.red = a.red
	e.v = e.red.ConvertTo(intToLimb(&inv))
	return true
}

// Inverse2k sets e = a^-1 * 2^-k mod q via k in-field halvings of the
// inverse; q must be odd for the halving identity to hold.
func (e *SmallElem[W]) Inverse2k(a *SmallElem[W], k int) bool {
	if !e.Inverse(a) {
		return false
	}
	for i := 0; i < k; i++ {
		e.Rshift1(e)
	}
	return true
}

// Div sets e = a / b mod q, returning false when b is not invertible.
func (e *SmallElem[W]) Div(a, b *SmallElem[W]) bool {
	var bInv SmallElem[W]
	if !bInv.Inverse(b) {
		return false
	}
	e.Mul(a, &bInv)
	return true
}

// Rshift1 sets e = a/2 mod q (q odd): shift directly when the
// representative is even, else add q first so the shift stays integral.
// Halving a representative halves the represented value in every
// domain, because halving is multiplication by 2^-1 mod q, which
// commutes with the domain map's multiplication by R.
func (e *SmallElem[W]) Rshift1(a *SmallElem[W]) {
	e.red = a.red
	v := a.v
	if v&1 == 0 {
		e.v = v >> 1
		return
	}
	s, c := limb.AddWW(v, a.red.Q(), 0)
	e.v = (s >> 1) | (c << (limb.Bits[W]() - 1))
}

// Lshift1 sets e = 2*a mod q, folding by one subtraction of q when the
// doubled representative lands in [q, 2q).
func (e *SmallElem[W]) Lshift1(a *SmallElem[W]) {
	e.red = a.red
	e.v = a.red.Add(a.v, a.v)
}

// IsZero reports whether e == 0.
func (e *SmallElem[W]) IsZero() bool { return e.v == 0 }

// Equal reports whether e and b hold the same residue under the same
// reducer.
func (e *SmallElem[W]) Equal(b *SmallElem[W]) bool { return e.v == b.v }

func intToLimb[W mpi.Word](a *mpi.Int[W]) W {
	b := a.Bytes(mpi.LittleEndian)
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return W(v) & limb.Mask[W]()
}
