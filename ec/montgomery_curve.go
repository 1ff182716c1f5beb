package ec

import (
	"github.com/neil-smyth/phantom-sub003/field"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

// NewMontgomeryAffine builds an affine Montgomery point (x, y) on
// B*y^2 = x^3 + A*x^2 + x.
func NewMontgomeryAffine[W mpi.Word](params *CurveParams[W], x, y *field.FieldElem[W]) *Point[W] {
	return &Point[W]{Family: MontgomeryFamily, Coord: Affine, Params: params, X: x, Y: y, Status: OK}
}

// MontgomeryXZ builds the x-only projective representation (X:Z) a
// Montgomery ladder operates on, from an affine x-coordinate (the y
// coordinate is not needed for the ladder itself).
func MontgomeryXZ[W mpi.Word](params *CurveParams[W], x *field.FieldElem[W]) *Point[W] {
	one := field.FromInt(params.Field, mpi.FromInt64[W](1))
	return &Point[W]{Family: MontgomeryFamily, Coord: Projective, Params: params, X: x, Z: one, Status: OK}
}

func (p *Point[W]) montgomeryToAffine() *Point[W] {
	if p.Coord == Affine {
		return p
	}
	if p.Z == nil || p.Z.IsZero() {
		return Infinity(p.Params, Affine)
	}
	x := field.New(p.Params.Field)
	if !x.Div(p.X, p.Z) {
		return &Point[W]{Family: MontgomeryFamily, Coord: Affine, Params: p.Params, Status: StatusError}
	}
	return &Point[W]{Family: MontgomeryFamily, Coord: Affine, Params: p.Params, X: x, Status: OK}
}

// a24 returns (A+2)/4, the constant the Montgomery ladder step folds
// into its E*(BB+a24*E) term (RFC 7748's naming).
func a24[W mpi.Word](params *CurveParams[W]) *field.FieldElem[W] {
	two := field.FromInt(params.Field, mpi.FromInt64[W](2))
	aPlus2 := field.New(params.Field)
	aPlus2.Add(params.MontA, two)
	out := field.New(params.Field)
	out.Rshift1(aPlus2)
	out.Rshift1(out)
	return out
}

// LadderStep advances the Montgomery ladder by one bit: given the
// running pair (p2, p3) = (nP, (n+1)P) in X:Z coordinates and the fixed
// difference xDiff = X(P), it returns the next pair: (2nP, (2n+1)P) when
// bit is 0, ((2n+1)P, (2n+2)P) when bit is 1. p2 and p3 are left
// unmodified. The work done is
// identical for either bit value; the conditional swap is driven by the
// bit argument, matching RFC 7748's cswap placement.
func LadderStep[W mpi.Word](p2, p3 *Point[W], xDiff *field.FieldElem[W], bit uint) (*Point[W], *Point[W]) {
	params := p2.Params
	X2, Z2 := p2.X, p2.Z
	X3, Z3 := p3.X, p3.Z

	if bit == 1 {
		X2, X3 = X3, X2
		Z2, Z3 = Z3, Z2
	}

	f := params.Field
	A := field.New(f)
	A.Add(X2, Z2)
	AA := field.New(f)
	AA.Sqr(A)
	B := field.New(f)
	B.Sub(X2, Z2)
	BB := field.New(f)
	BB.Sqr(B)
	E := field.New(f)
	E.Sub(AA, BB)
	C := field.New(f)
	C.Add(X3, Z3)
	D := field.New(f)
	D.Sub(X3, Z3)
	DA := field.New(f)
	DA.Mul(D, A)
	CB := field.New(f)
	CB.Mul(C, B)

	sum := field.New(f)
	sum.Add(DA, CB)
	newX3 := field.New(f)
	newX3.Sqr(sum)

	diff := field.New(f)
	diff.Sub(DA, CB)
	diffSq := field.New(f)
	diffSq.Sqr(diff)
	newZ3 := field.New(f)
	newZ3.Mul(xDiff, diffSq)

	newX2 := field.New(f)
	newX2.Mul(AA, BB)

	a24v := a24(params)
	t := field.New(f)
	t.Mul(a24v, E)
	t.Add(t, BB)
	newZ2 := field.New(f)
	newZ2.Mul(E, t)

	if bit == 1 {
		newX2, newX3 = newX3, newX2
		newZ2, newZ3 = newZ3, newZ2
	}

	outP2 := &Point[W]{Family: MontgomeryFamily, Coord: Projective, Params: params, X: newX2, Z: newZ2, Status: OK}
	outP3 := &Point[W]{Family: MontgomeryFamily, Coord: Projective, Params: params, X: newX3, Z: newZ3, Status: OK}
	return outP2, outP3
}

// RecoverY recovers the projective (X:Y:Z) Montgomery coordinates of nP
// given the ladder's running pair (nP, (n+1)P) in X:Z form and the known
// affine base point base = (x, y), via the Okeya-Sakurai formula.
// No division is performed and the returned status is always OK; the
// result's Z is zero when base.Y, nP.Z or nP1.Z is zero.
func RecoverY[W mpi.Word](params *CurveParams[W], nP, nP1 *Point[W], base *Point[W]) *Point[W] {
	f := params.Field
	x, y := base.X, base.Y
	X1, Z1 := nP.X, nP.Z
	X2, Z2 := nP1.X, nP1.Z

	v1 := field.New(f)
	v1.Mul(x, Z1)
	v2 := field.New(f)
	v2.Add(X1, v1)
	v3 := field.New(f)
	v3.Sub(X1, v1)
	v3.Sqr(v3)
	v3.Mul(v3, X2)

	twoA := field.New(f)
	twoA.Lshift1(params.MontA)
	v1b := field.New(f)
	v1b.Mul(twoA, Z1)
	v2.Add(v2, v1b)

	v4 := field.New(f)
	v4.Mul(X1, x)
	v4.Add(v4, Z1)
	v2.Mul(v2, v4)

	v1c := field.New(f)
	v1c.Mul(v1b, Z1)
	v2.Sub(v2, v1c)
	v2.Mul(v2, Z2)

	Yout := field.New(f)
	Yout.Sub(v2, v3)

	twoB := field.New(f)
	twoB.Lshift1(params.MontB)
	v1d := field.New(f)
	v1d.Mul(twoB, y)
	v1d.Mul(v1d, Z1)
	v1d.Mul(v1d, Z2)

	Xout := field.New(f)
	Xout.Mul(v1d, X1)
	Zout := field.New(f)
	Zout.Mul(v1d, Z1)

	return &Point[W]{Family: MontgomeryFamily, Coord: Projective, Params: params, X: Xout, Y: Yout, Z: Zout, Status: OK}
}
