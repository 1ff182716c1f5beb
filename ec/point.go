// Package ec implements elliptic-curve point arithmetic across three
// curve families (short Weierstrass, Montgomery, twisted Edwards) and
// the coordinate systems each uses in practice: a family/coordinate-
// tagged Point parameterized over package field's FieldElem.
package ec

import (
	"github.com/neil-smyth/phantom-sub003/field"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

// Family selects a curve's defining equation shape.
type Family int

const (
	Weierstrass Family = iota
	MontgomeryFamily
	Edwards
)

// Coord selects a point's coordinate representation.
type Coord int

const (
	Affine Coord = iota
	Projective // Jacobian for Weierstrass, XZ for Montgomery
	Extended   // twisted-Edwards extended coordinates (X:Y:Z:T)
)

// Status reports the outcome of an EC operation as a value the caller
// inspects (substituting the identity on StatusInfinity) rather than an
// error the core would retry or log.
type Status int

const (
	OK Status = iota
	StatusInfinity
	StatusError
)

// CurveParams bundles a curve's base field and defining coefficients
// for all three families at once; a given Point only reads the fields
// its Family needs. Params are read-only after construction and may be
// shared across points and goroutines.
type CurveParams[W mpi.Word] struct {
	Field field.Reducer[W]

	// Short Weierstrass: y^2 = x^3 + A*x + B.
	A *field.FieldElem[W]
	B *field.FieldElem[W]

	// Montgomery: By^2 = x^3 + Ax^2 + x. The Montgomery routines read only
	// MontA/MontB, never A/B above; the separate fields let a caller build
	// both shapes against the same field.
	MontA *field.FieldElem[W]
	MontB *field.FieldElem[W]

	// Twisted Edwards: a*x^2 + y^2 = 1 + d*x^2*y^2.
	EdA *field.FieldElem[W]
	EdD *field.FieldElem[W]

	Family Family
}

// Point is a single elliptic-curve point tagged with its family and
// coordinate system. Zero value is not meaningful; use Infinity or one
// of the family constructors.
type Point[W mpi.Word] struct {
	Family Family
	Coord  Coord
	Params *CurveParams[W]

	X *field.FieldElem[W]
	Y *field.FieldElem[W]
	Z *field.FieldElem[W]
	T *field.FieldElem[W] // extended Edwards only

	Status Status
}

// Infinity returns the identity element for params's family/coord,
// represented the way each family's formulas expect, so the identity is
// a representable point rather than a sentinel the caller must
// special-case everywhere.
func Infinity[W mpi.Word](params *CurveParams[W], coord Coord) *Point[W] {
	zero := field.New(params.Field)
	one := field.FromInt(params.Field, mpi.FromInt64[W](1))
	p := &Point[W]{Family: params.Family, Coord: coord, Params: params, Status: StatusInfinity}
	switch {
	case params.Family == Weierstrass && coord == Affine:
		p.X, p.Y = zero, zero
	case params.Family == Weierstrass && coord == Projective:
		p.X, p.Y, p.Z = one, one, field.New(params.Field)
	case params.Family == Edwards && coord == Affine:
		p.X, p.Y = zero, one
	case params.Family == Edwards && coord == Extended:
		p.X, p.Y, p.Z, p.T = zero, one, one, zero
	case params.Family == MontgomeryFamily:
		// X:Z = 1:0 (not 0:0): xADD's cross terms degenerate to zero
		// whenever the running pair's X and Z are both zero, which would
		// silently corrupt every ladder step taken from this point.
		p.X, p.Y, p.Z = one, one, zero
	default:
		p.X, p.Y, p.Z = zero, one, zero
	}
	return p
}

// IsInfinity reports whether p represents the identity element.
func (p *Point[W]) IsInfinity() bool { return p.Status == StatusInfinity }

func oneInt[W mpi.Word]() *mpi.Int[W] { return mpi.FromInt64[W](1) }

// Negate sets p to the negation of a. Weierstrass
// and Montgomery curves are even in y, so negation flips y: (x, -y).
// Twisted-Edwards curves are even in x instead (a*x^2+y^2 has no odd
// term in either variable alone, but the group inverse of (x,y) is
// (-x,y) — flipping y instead gives (x,-y), a different curve point
// whose sum with (x,y) is (0,-1), not the identity).
func (p *Point[W]) Negate(a *Point[W]) {
	p.Family, p.Coord, p.Params, p.Status = a.Family, a.Coord, a.Params, a.Status
	if a.Family == Edwards {
		negX := field.New(a.Params.Field)
		negX.Negate(a.X)
		p.X, p.Y, p.Z = negX, a.Y, a.Z
		if a.T != nil {
			negT := field.New(a.Params.Field)
			negT.Negate(a.T)
			p.T = negT
		}
		return
	}
	negY := field.New(a.Params.Field)
	negY.Negate(a.Y)
	p.X, p.Y, p.Z, p.T = a.X, negY, a.Z, a.T
}

// Equal reports whether a and b, once brought to affine coordinates,
// name the same point.
func Equal[W mpi.Word](a, b *Point[W]) bool {
	if a.IsInfinity() || b.IsInfinity() {
		return a.IsInfinity() == b.IsInfinity()
	}
	ax, ay := a.AffineXY()
	bx, by := b.AffineXY()
	return ax.Equal(bx) && ay.Equal(by)
}

// AffineXY returns p's affine (x, y) regardless of its current
// coordinate system, converting first if needed.
func (p *Point[W]) AffineXY() (*field.FieldElem[W], *field.FieldElem[W]) {
	if p.Coord == Affine {
		return p.X, p.Y
	}
	a := p.ToAffine()
	return a.X, a.Y
}

// ToAffine converts p to affine coordinates, dispatching per family.
func (p *Point[W]) ToAffine() *Point[W] {
	switch p.Family {
	case Weierstrass:
		return p.weierstrassToAffine()
	case Edwards:
		return p.edwardsToAffine()
	default:
		return p.montgomeryToAffine()
	}
}
