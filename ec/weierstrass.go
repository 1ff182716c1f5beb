package ec

import (
	"github.com/neil-smyth/phantom-sub003/field"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

// NewWeierstrassAffine builds an affine short-Weierstrass point (x, y)
// on y^2 = x^3 + A*x + B.
func NewWeierstrassAffine[W mpi.Word](params *CurveParams[W], x, y *field.FieldElem[W]) *Point[W] {
	return &Point[W]{Family: Weierstrass, Coord: Affine, Params: params, X: x, Y: y, Status: OK}
}

// ToJacobian lifts an affine Weierstrass point to Jacobian projective
// coordinates (X, Y, 1).
func (p *Point[W]) ToJacobian() *Point[W] {
	if p.Coord == Projective {
		return p
	}
	if p.IsInfinity() {
		return Infinity(p.Params, Projective)
	}
	one := field.FromInt(p.Params.Field, mpi.FromInt64[W](1))
	return &Point[W]{Family: Weierstrass, Coord: Projective, Params: p.Params, X: p.X, Y: p.Y, Z: one, Status: OK}
}

func (p *Point[W]) weierstrassToAffine() *Point[W] {
	if p.Coord == Affine {
		return p
	}
	if p.IsInfinity() || p.Z.IsZero() {
		return Infinity(p.Params, Affine)
	}
	zInv := field.New(p.Params.Field)
	if !zInv.Inverse(p.Z) {
		return &Point[W]{Family: Weierstrass, Coord: Affine, Params: p.Params, Status: StatusError}
	}
	zInv2 := field.New(p.Params.Field)
	zInv2.Sqr(zInv)
	zInv3 := field.New(p.Params.Field)
	zInv3.Mul(zInv2, zInv)

	x := field.New(p.Params.Field)
	x.Mul(p.X, zInv2)
	y := field.New(p.Params.Field)
	y.Mul(p.Y, zInv3)
	return &Point[W]{Family: Weierstrass, Coord: Affine, Params: p.Params, X: x, Y: y, Status: OK}
}

// WeierstrassDouble sets p = 2*a in Jacobian coordinates, using the
// generic-a doubling formula (EFD dbl-2007-bl) so curves with A != 0
// (e.g. NIST P-curves) are handled, not just A == 0 curves like
// secp256k1.
func (p *Point[W]) WeierstrassDouble(a *Point[W]) {
	f := a.Params.Field
	src := a
	if src.Coord != Projective {
		src = src.ToJacobian()
	}
	if src.IsInfinity() || src.Z.IsZero() {
		*p = *Infinity(a.Params, Projective)
		return
	}
	X1, Y1, Z1 := src.X, src.Y, src.Z

	XX := field.New(f)
	XX.Sqr(X1)
	YY := field.New(f)
	YY.Sqr(Y1)
	YYYY := field.New(f)
	YYYY.Sqr(YY)
	ZZ := field.New(f)
	ZZ.Sqr(Z1)

	xPlusYY := field.New(f)
	xPlusYY.Add(X1, YY)
	xPlusYYSq := field.New(f)
	xPlusYYSq.Sqr(xPlusYY)
	sInner := field.New(f)
	sInner.Sub(xPlusYYSq, XX)
	sInner.Sub(sInner, YYYY)
	S := field.New(f)
	S.Lshift1(sInner)

	threeXX := field.New(f)
	threeXX.Add(XX, XX)
	threeXX.Add(threeXX, XX)
	zzSq := field.New(f)
	zzSq.Sqr(ZZ)
	aZZSq := field.New(f)
	aZZSq.Mul(a.Params.A, zzSq)
	M := field.New(f)
	M.Add(threeXX, aZZSq)

	T := field.New(f)
	T.Sqr(M)
	twoS := field.New(f)
	twoS.Lshift1(S)
	T.Sub(T, twoS)

	X3 := field.New(f)
	X3.Set(T)

	sMinusT := field.New(f)
	sMinusT.Sub(S, T)
	Y3 := field.New(f)
	Y3.Mul(M, sMinusT)
	eightYYYY := field.New(f)
	eightYYYY.Lshift1(YYYY)
	eightYYYY.Lshift1(eightYYYY)
	eightYYYY.Lshift1(eightYYYY)
	Y3.Sub(Y3, eightYYYY)

	yPlusZ := field.New(f)
	yPlusZ.Add(Y1, Z1)
	yPlusZSq := field.New(f)
	yPlusZSq.Sqr(yPlusZ)
	Z3 := field.New(f)
	Z3.Sub(yPlusZSq, YY)
	Z3.Sub(Z3, ZZ)

	p.Family, p.Coord, p.Params, p.Status = Weierstrass, Projective, a.Params, OK
	p.X, p.Y, p.Z = X3, Y3, Z3
}

// WeierstrassAdd sets p = a + b in Jacobian coordinates, using the
// generic-a mixed/full addition formula (EFD add-2007-bl), falling back
// to WeierstrassDouble when a == b and to the identity when a == -b.
func (p *Point[W]) WeierstrassAdd(a, b *Point[W]) {
	if a.IsInfinity() {
		*p = *b.ToJacobian()
		return
	}
	if b.IsInfinity() {
		*p = *a.ToJacobian()
		return
	}
	f := a.Params.Field
	pa, pb := a.ToJacobian(), b.ToJacobian()
	X1, Y1, Z1 := pa.X, pa.Y, pa.Z
	X2, Y2, Z2 := pb.X, pb.Y, pb.Z

	Z1Z1 := field.New(f)
	Z1Z1.Sqr(Z1)
	Z2Z2 := field.New(f)
	Z2Z2.Sqr(Z2)

	U1 := field.New(f)
	U1.Mul(X1, Z2Z2)
	U2 := field.New(f)
	U2.Mul(X2, Z1Z1)

	Z2Z2Z2 := field.New(f)
	Z2Z2Z2.Mul(Z2Z2, Z2)
	S1 := field.New(f)
	S1.Mul(Y1, Z2Z2Z2)
	Z1Z1Z1 := field.New(f)
	Z1Z1Z1.Mul(Z1Z1, Z1)
	S2 := field.New(f)
	S2.Mul(Y2, Z1Z1Z1)

	H := field.New(f)
	H.Sub(U2, U1)
	rDiff := field.New(f)
	rDiff.Sub(S2, S1)

	if H.IsZero() {
		if rDiff.IsZero() {
			p.WeierstrassDouble(a)
			return
		}
		*p = *Infinity(a.Params, Projective)
		return
	}

	I := field.New(f)
	I.Lshift1(H)
	I.Sqr(I)
	J := field.New(f)
	J.Mul(H, I)
	r := field.New(f)
	r.Lshift1(rDiff)
	V := field.New(f)
	V.Mul(U1, I)

	X3 := field.New(f)
	X3.Sqr(r)
	X3.Sub(X3, J)
	twoV := field.New(f)
	twoV.Lshift1(V)
	X3.Sub(X3, twoV)

	vMinusX3 := field.New(f)
	vMinusX3.Sub(V, X3)
	Y3 := field.New(f)
	Y3.Mul(r, vMinusX3)
	twoS1J := field.New(f)
	twoS1J.Mul(S1, J)
	twoS1J.Lshift1(twoS1J)
	Y3.Sub(Y3, twoS1J)

	zSum := field.New(f)
	zSum.Add(Z1, Z2)
	zSumSq := field.New(f)
	zSumSq.Sqr(zSum)
	zSumSq.Sub(zSumSq, Z1Z1)
	zSumSq.Sub(zSumSq, Z2Z2)
	Z3 := field.New(f)
	Z3.Mul(zSumSq, H)

	p.Family, p.Coord, p.Params, p.Status = Weierstrass, Projective, a.Params, OK
	p.X, p.Y, p.Z = X3, Y3, Z3
}

// Compress encodes an affine Weierstrass point in compact form: one
// tag byte (2 for even y, 3 for odd, 0 for infinity) followed by x's
// big-endian bytes.
func (p *Point[W]) Compress() []byte {
	a := p.weierstrassToAffine()
	if a.IsInfinity() {
		return []byte{0}
	}
	tag := byte(2)
	if a.Y.Int().Tstbit(0) == 1 {
		tag = 3
	}
	xb := a.X.Int().Bytes(mpi.BigEndian)
	out := make([]byte, 1+len(xb))
	out[0] = tag
	copy(out[1:], xb)
	return out
}

// Decompress recovers an affine Weierstrass point from Compress's
// encoding by solving y^2 = x^3 + A*x + B for y via SqrtMod and
// selecting the root matching the encoded sign tag.
func Decompress[W mpi.Word](params *CurveParams[W], mcfg *mpi.ModCfg[W], data []byte) *Point[W] {
	if len(data) == 0 {
		return &Point[W]{Family: Weierstrass, Coord: Affine, Params: params, Status: StatusError}
	}
	if data[0] == 0 {
		return Infinity(params, Affine)
	}
	wantOdd := data[0] == 3
	xInt := mpi.New[W]()
	xInt.SetBytes(data[1:], mpi.BigEndian)
	x := field.FromInt(params.Field, xInt)

	x3 := field.New(params.Field)
	x3.Sqr(x)
	x3.Mul(x3, x)
	ax := field.New(params.Field)
	ax.Mul(params.A, x)
	rhs := field.New(params.Field)
	rhs.Add(x3, ax)
	rhs.Add(rhs, params.B)

	var y mpi.Int[W]
	if err := mpi.SqrtMod(&y, rhs.Int(), mcfg); err != nil {
		return &Point[W]{Family: Weierstrass, Coord: Affine, Params: params, Status: StatusError}
	}
	yElem := field.FromInt(params.Field, &y)
	if (y.Tstbit(0) == 1) != wantOdd {
		yElem.Negate(yElem)
	}
	return NewWeierstrassAffine(params, x, yElem)
}
