package ec

import (
	"github.com/neil-smyth/phantom-sub003/field"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

// NewEdwardsAffine builds an affine twisted-Edwards point (x, y) on
// a*x^2 + y^2 = 1 + d*x^2*y^2.
func NewEdwardsAffine[W mpi.Word](params *CurveParams[W], x, y *field.FieldElem[W]) *Point[W] {
	return &Point[W]{Family: Edwards, Coord: Affine, Params: params, X: x, Y: y, Status: OK}
}

// ToExtended lifts an affine Edwards point to extended coordinates
// (X:Y:Z:T) with Z=1, T=X*Y.
func (p *Point[W]) ToExtended() *Point[W] {
	if p.Coord == Extended {
		return p
	}
	if p.IsInfinity() {
		return Infinity(p.Params, Extended)
	}
	one := field.FromInt(p.Params.Field, mpi.FromInt64[W](1))
	t := field.New(p.Params.Field)
	t.Mul(p.X, p.Y)
	return &Point[W]{Family: Edwards, Coord: Extended, Params: p.Params, X: p.X, Y: p.Y, Z: one, T: t, Status: OK}
}

func (p *Point[W]) edwardsToAffine() *Point[W] {
	if p.Coord == Affine {
		return p
	}
	if p.Z.IsZero() {
		return Infinity(p.Params, Affine)
	}
	x := field.New(p.Params.Field)
	if !x.Div(p.X, p.Z) {
		return &Point[W]{Family: Edwards, Coord: Affine, Params: p.Params, Status: StatusError}
	}
	y := field.New(p.Params.Field)
	if !y.Div(p.Y, p.Z) {
		return &Point[W]{Family: Edwards, Coord: Affine, Params: p.Params, Status: StatusError}
	}
	return &Point[W]{Family: Edwards, Coord: Affine, Params: p.Params, X: x, Y: y, Status: OK}
}

// EdwardsDouble sets p = 2*a in extended coordinates (EFD
// dbl-2008-hwcd, valid for any twisted-Edwards a).
func (p *Point[W]) EdwardsDouble(a *Point[W]) {
	f := a.Params.Field
	src := a.ToExtended()
	X1, Y1, Z1 := src.X, src.Y, src.Z

	A := field.New(f)
	A.Sqr(X1)
	B := field.New(f)
	B.Sqr(Y1)
	C := field.New(f)
	C.Sqr(Z1)
	C.Lshift1(C)
	D := field.New(f)
	D.Mul(a.Params.EdA, A)

	xPlusY := field.New(f)
	xPlusY.Add(X1, Y1)
	E := field.New(f)
	E.Sqr(xPlusY)
	E.Sub(E, A)
	E.Sub(E, B)

	G := field.New(f)
	G.Add(D, B)
	Fe := field.New(f)
	Fe.Sub(G, C)
	H := field.New(f)
	H.Sub(D, B)

	X3 := field.New(f)
	X3.Mul(E, Fe)
	Y3 := field.New(f)
	Y3.Mul(G, H)
	T3 := field.New(f)
	T3.Mul(E, H)
	Z3 := field.New(f)
	Z3.Mul(Fe, G)

	p.Family, p.Coord, p.Params, p.Status = Edwards, Extended, a.Params, OK
	p.X, p.Y, p.Z, p.T = X3, Y3, Z3, T3
}

// EdwardsAdd sets p = a + b in extended coordinates (EFD
// add-2008-hwcd-3, the unified addition law for arbitrary
// twisted-Edwards a).
func (p *Point[W]) EdwardsAdd(a, b *Point[W]) {
	f := a.Params.Field
	pa, pb := a.ToExtended(), b.ToExtended()
	X1, Y1, Z1, T1 := pa.X, pa.Y, pa.Z, pa.T
	X2, Y2, Z2, T2 := pb.X, pb.Y, pb.Z, pb.T

	A := field.New(f)
	A.Mul(X1, X2)
	B := field.New(f)
	B.Mul(Y1, Y2)
	C := field.New(f)
	C.Mul(a.Params.EdD, T1)
	C.Mul(C, T2)
	D := field.New(f)
	D.Mul(Z1, Z2)

	xPlusY1 := field.New(f)
	xPlusY1.Add(X1, Y1)
	xPlusY2 := field.New(f)
	xPlusY2.Add(X2, Y2)
	E := field.New(f)
	E.Mul(xPlusY1, xPlusY2)
	E.Sub(E, A)
	E.Sub(E, B)

	Fe := field.New(f)
	Fe.Sub(D, C)
	G := field.New(f)
	G.Add(D, C)
	aA := field.New(f)
	aA.Mul(a.Params.EdA, A)
	H := field.New(f)
	H.Sub(B, aA)

	X3 := field.New(f)
	X3.Mul(E, Fe)
	Y3 := field.New(f)
	Y3.Mul(G, H)
	T3 := field.New(f)
	T3.Mul(E, H)
	Z3 := field.New(f)
	Z3.Mul(Fe, G)

	p.Family, p.Coord, p.Params, p.Status = Edwards, Extended, a.Params, OK
	p.X, p.Y, p.Z, p.T = X3, Y3, Z3, T3
}
