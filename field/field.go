// Package field implements prime-field elements whose reduction
// strategy is supplied by a pluggable reducer rather than hardcoded
// into the type: FieldElem over arbitrary-width moduli, and SmallElem
// specialized for primes that fit in a single limb.
package field

import "github.com/neil-smyth/phantom-sub003/mpi"

// Reducer supplies the modular-reduction strategy a FieldElem defers to.
// mpi.ModCfg supplies every method except Modulus (its Kind selects
// Naive/Barrett/Montgomery/Custom internally); FromModCfg wraps it in
// the small cfgReducer adapter. A caller wanting a field-specific fast-path reducer (e.g. a
// Solinas prime) can satisfy this interface without touching FieldElem.
type Reducer[W mpi.Word] interface {
	Reduce(x *mpi.Int[W]) *mpi.Int[W]
	AddMod(r, a, b *mpi.Int[W])
	SubMod(r, a, b *mpi.Int[W])
	MulMod(r, a, b *mpi.Int[W])
	SquareMod(r, a *mpi.Int[W])
	PowMod(r, a, e *mpi.Int[W])
	Modulus() *mpi.Int[W]
}

// cfgReducer adapts *mpi.ModCfg to the Reducer interface.
type cfgReducer[W mpi.Word] struct{ cfg *mpi.ModCfg[W] }

func (c cfgReducer[W]) Reduce(x *mpi.Int[W]) *mpi.Int[W]      { return c.cfg.Reduce(x) }
func (c cfgReducer[W]) AddMod(r, a, b *mpi.Int[W])            { c.cfg.AddMod(r, a, b) }
func (c cfgReducer[W]) SubMod(r, a, b *mpi.Int[W])            { c.cfg.SubMod(r, a, b) }
func (c cfgReducer[W]) MulMod(r, a, b *mpi.Int[W])            { c.cfg.MulMod(r, a, b) }
func (c cfgReducer[W]) SquareMod(r, a *mpi.Int[W])            { c.cfg.SquareMod(r, a) }
func (c cfgReducer[W]) PowMod(r, a, e *mpi.Int[W])            { c.cfg.PowMod(r, a, e) }
func (c cfgReducer[W]) Modulus() *mpi.Int[W]                  { return &c.cfg.M }

// FromModCfg wraps an *mpi.ModCfg as a Reducer.
func FromModCfg[W mpi.Word](cfg *mpi.ModCfg[W]) Reducer[W] { return cfgReducer[W]{cfg} }

// FieldElem is a single residue bound to a Reducer. Unlike a bare
// mpi.Int, every arithmetic method here keeps the result in
// [0, modulus) and routes through the Reducer's chosen strategy; there is
// no separate "reduce on demand" state to track.
type FieldElem[W mpi.Word] struct {
	v   mpi.Int[W]
	red Reducer[W]
}

// New returns the zero element of red's field.
func New[W mpi.Word](red Reducer[W]) *FieldElem[W] {
	return &FieldElem[W]{red: red}
}

// FromInt builds a FieldElem from an ordinary (non-Montgomery-domain)
// Int, reducing it into range.
func FromInt[W mpi.Word](red Reducer[W], a *mpi.Int[W]) *FieldElem[W] {
	e := New(red)
	e.v.SetInt(red.Reduce(a))
	return e
}

// GetQ returns the field's modulus.
func (e *FieldElem[W]) GetQ() *mpi.Int[W] { return e.red.Modulus() }

// Int returns the element's ordinary-domain value as a fresh Int.
func (e *FieldElem[W]) Int() *mpi.Int[W] { return e.v.Clone() }

// Set copies b's value (and reducer) into e.
func (e *FieldElem[W]) Set(b *FieldElem[W]) {
	e.v.SetInt(&b.v)
	e.red = b.red
}

// ConvertTo maps e's ordinary value into whatever internal domain the
// underlying ModCfg uses (the Montgomery domain, when cfg.Kind is
// Montgomery) and returns it as a plain Int for a caller that needs the
// raw representation, e.g. to chain repeated in-domain multiplications
// explicitly.
func (e *FieldElem[W]) ConvertTo(mcfg *mpi.ModCfg[W]) *mpi.Int[W] {
	if mcfg.Kind != mpi.Montgomery {
		return e.v.Clone()
	}
	return mcfg.ToMontgomery(&e.v)
}

// ConvertFrom is ConvertTo's inverse: given a value already in the
// ModCfg's internal domain, produce the ordinary residue.
func ConvertFrom[W mpi.Word](red Reducer[W], mcfg *mpi.ModCfg[W], domainVal *mpi.Int[W]) *FieldElem[W] {
	e := New(red)
	if mcfg.Kind != mpi.Montgomery {
		e.v.SetInt(domainVal)
		return e
	}
	e.v.SetInt(mcfg.FromMontgomery(domainVal))
	return e
}

// Reduce folds e's ordinary value back into [0, modulus); a no-op for
// any value FieldElem produced itself, since every method here already
// maintains that invariant.
func (e *FieldElem[W]) Reduce() { e.v.SetInt(e.red.Reduce(&e.v)) }

// Add sets e = a + b.
func (e *FieldElem[W]) Add(a, b *FieldElem[W]) {
	e.red = a.red
	e.red.AddMod(&e.v, &a.v, &b.v)
}

// Sub sets e = a - b.
func (e *FieldElem[W]) Sub(a, b *FieldElem[W]) {
	e.red = a.red
	e.red.SubMod(&e.v, &a.v, &b.v)
}

// Negate sets e = -a mod q.
func (e *FieldElem[W]) Negate(a *FieldElem[W]) {
	zero := mpi.New[W]()
	e.red = a.red
	e.red.SubMod(&e.v, zero, &a.v)
}

// Mul sets e = a * b.
func (e *FieldElem[W]) Mul(a, b *FieldElem[W]) {
	e.red = a.red
	e.red.MulMod(&e.v, &a.v, &b.v)
}

// Sqr sets e = a^2.
func (e *FieldElem[W]) Sqr(a *FieldElem[W]) {
	e.red = a.red
	e.red.SquareMod(&e.v, &a.v)
}

// Pow sets e = a^k mod q.
func (e *FieldElem[W]) Pow(a *FieldElem[W], k *mpi.Int[W]) {
	e.red = a.red
	e.red.PowMod(&e.v, &a.v, k)
}

// Inverse sets e = a^-1 mod q, returning false when a has no inverse
// (a is a zero divisor of q, or q is composite and shares a factor).
func (e *FieldElem[W]) Inverse(a *FieldElem[W]) bool {
	e.red = a.red
	var inv mpi.Int[W]
	if !inv.Invert(&a.v, a.red.Modulus()) {
		return false
	}
	e.v.SetInt(&inv)
	return true
}

// Inverse2k sets e = a^-1 * 2^-k mod q via repeated halving of the
// inverse, for ladder-style formulas that need a value scaled by a
// negative power of two. Requires q odd.
func (e *FieldElem[W]) Inverse2k(a *FieldElem[W], k int) bool {
	if !e.Inverse(a) {
		return false
	}
	q := a.red.Modulus()
	two := mpi.FromInt64[W](2)
	var twoInv mpi.Int[W]
	if !twoInv.Invert(two, q) {
		return false
	}
	for i := 0; i < k; i++ {
		e.red.MulMod(&e.v, &e.v, &twoInv)
	}
	return true
}

// Div sets e = a / b mod q (a * b^-1), returning false when b is not
// invertible.
func (e *FieldElem[W]) Div(a, b *FieldElem[W]) bool {
	var bInv FieldElem[W]
	if !bInv.Inverse(b) {
		return false
	}
	e.Mul(a, &bInv)
	return true
}

// Rshift1 sets e = a/2 mod q (q odd): a>>1 when a is even, else
// (a+q)>>1, the standard trick for halving inside an odd field without
// a general inversion.
func (e *FieldElem[W]) Rshift1(a *FieldElem[W]) {
	e.red = a.red
	var t mpi.Int[W]
	if a.v.Tstbit(0) == 0 {
		t.SetInt(&a.v)
	} else {
		t.Add(&a.v, a.red.Modulus())
	}
	t.DivQ2Exp(&t, 1, mpi.Trunc)
	e.v.SetInt(&t)
}

// Lshift1 sets e = 2*a mod q.
func (e *FieldElem[W]) Lshift1(a *FieldElem[W]) {
	e.red = a.red
	var doubled mpi.Int[W]
	doubled.Shl(&a.v, 1)
	e.v.SetInt(e.red.Reduce(&doubled))
}

// IsZero reports whether e == 0.
func (e *FieldElem[W]) IsZero() bool { return e.v.IsZero() }

// Equal reports whether e and b hold the same residue.
func (e *FieldElem[W]) Equal(b *FieldElem[W]) bool { return e.v.Equal(&b.v) }
