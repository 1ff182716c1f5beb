package ec

import "github.com/neil-smyth/phantom-sub003/field"

// Affine-path arithmetic: chord-and-tangent formulas that stay in
// affine coordinates, paying one field inversion per operation instead
// of carrying a projective denominator. Each returns a Status because
// the slope's denominator can vanish: StatusInfinity when the
// mathematical result is the identity, StatusError when an inversion
// fails for a reason the formulas cannot interpret (an off-curve or
// otherwise invalid operand).

// WeierstrassAffineDouble sets p = 2*a with the tangent-slope formula
// lambda = (3x^2 + A) / (2y); doubling a point with y = 0 yields the
// identity.
func (p *Point[W]) WeierstrassAffineDouble(a *Point[W]) Status {
	if a.IsInfinity() {
		*p = *Infinity(a.Params, Affine)
		return StatusInfinity
	}
	f := a.Params.Field
	src := a.weierstrassToAffine()
	if src.Status != OK {
		return src.Status
	}
	if src.Y.IsZero() {
		*p = *Infinity(a.Params, Affine)
		return StatusInfinity
	}

	xx := field.New(f)
	xx.Sqr(src.X)
	num := field.New(f)
	num.Add(xx, xx)
	num.Add(num, xx)
	num.Add(num, a.Params.A)
	den := field.New(f)
	den.Lshift1(src.Y)
	lambda := field.New(f)
	if !lambda.Div(num, den) {
		return StatusError
	}

	x3 := field.New(f)
	x3.Sqr(lambda)
	x3.Sub(x3, src.X)
	x3.Sub(x3, src.X)
	y3 := field.New(f)
	y3.Sub(src.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, src.Y)

	p.Family, p.Coord, p.Params, p.Status = Weierstrass, Affine, a.Params, OK
	p.X, p.Y, p.Z, p.T = x3, y3, nil, nil
	return OK
}

// WeierstrassAffineAdd sets p = a + b with the chord-slope formula
// lambda = (y2 - y1) / (x2 - x1), falling back to the tangent form when
// a == b and to the identity when the operands are mutual negations.
func (p *Point[W]) WeierstrassAffineAdd(a, b *Point[W]) Status {
	if a.IsInfinity() {
		*p = *b.weierstrassToAffine()
		return p.Status
	}
	if b.IsInfinity() {
		*p = *a.weierstrassToAffine()
		return p.Status
	}
	f := a.Params.Field
	pa, pb := a.weierstrassToAffine(), b.weierstrassToAffine()
	if pa.Status != OK || pb.Status != OK {
		return StatusError
	}
	if pa.X.Equal(pb.X) {
		if pa.Y.Equal(pb.Y) {
			return p.WeierstrassAffineDouble(pa)
		}
		*p = *Infinity(a.Params, Affine)
		return StatusInfinity
	}

	num := field.New(f)
	num.Sub(pb.Y, pa.Y)
	den := field.New(f)
	den.Sub(pb.X, pa.X)
	lambda := field.New(f)
	if !lambda.Div(num, den) {
		return StatusError
	}

	x3 := field.New(f)
	x3.Sqr(lambda)
	x3.Sub(x3, pa.X)
	x3.Sub(x3, pb.X)
	y3 := field.New(f)
	y3.Sub(pa.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, pa.Y)

	p.Family, p.Coord, p.Params, p.Status = Weierstrass, Affine, a.Params, OK
	p.X, p.Y, p.Z, p.T = x3, y3, nil, nil
	return OK
}

// MontgomeryAffineDouble sets p = 2*a on B*y^2 = x^3 + A*x^2 + x with
// the tangent slope lambda = (3x^2 + 2Ax + 1) / (2By).
func (p *Point[W]) MontgomeryAffineDouble(a *Point[W]) Status {
	if a.IsInfinity() {
		*p = *Infinity(a.Params, Affine)
		return StatusInfinity
	}
	f := a.Params.Field
	if a.Y == nil || a.Y.IsZero() {
		*p = *Infinity(a.Params, Affine)
		return StatusInfinity
	}

	xx := field.New(f)
	xx.Sqr(a.X)
	num := field.New(f)
	num.Add(xx, xx)
	num.Add(num, xx)
	ax := field.New(f)
	ax.Mul(a.Params.MontA, a.X)
	ax.Lshift1(ax)
	num.Add(num, ax)
	one := field.FromInt(f, oneInt[W]())
	num.Add(num, one)

	den := field.New(f)
	den.Mul(a.Params.MontB, a.Y)
	den.Lshift1(den)
	lambda := field.New(f)
	if !lambda.Div(num, den) {
		return StatusError
	}

	x3 := field.New(f)
	x3.Sqr(lambda)
	x3.Mul(x3, a.Params.MontB)
	x3.Sub(x3, a.Params.MontA)
	x3.Sub(x3, a.X)
	x3.Sub(x3, a.X)
	y3 := field.New(f)
	y3.Sub(a.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.Y)

	p.Family, p.Coord, p.Params, p.Status = MontgomeryFamily, Affine, a.Params, OK
	p.X, p.Y, p.Z, p.T = x3, y3, nil, nil
	return OK
}

// MontgomeryAffineAdd sets p = a + b with the chord slope; mutual
// negations yield the identity and equal operands route to the tangent
// form.
func (p *Point[W]) MontgomeryAffineAdd(a, b *Point[W]) Status {
	if a.IsInfinity() {
		*p = *b
		return p.Status
	}
	if b.IsInfinity() {
		*p = *a
		return p.Status
	}
	f := a.Params.Field
	if a.X.Equal(b.X) {
		sumY := field.New(f)
		sumY.Add(a.Y, b.Y)
		if sumY.IsZero() {
			*p = *Infinity(a.Params, Affine)
			return StatusInfinity
		}
		return p.MontgomeryAffineDouble(a)
	}

	num := field.New(f)
	num.Sub(b.Y, a.Y)
	den := field.New(f)
	den.Sub(b.X, a.X)
	lambda := field.New(f)
	if !lambda.Div(num, den) {
		return StatusError
	}

	x3 := field.New(f)
	x3.Sqr(lambda)
	x3.Mul(x3, a.Params.MontB)
	x3.Sub(x3, a.Params.MontA)
	x3.Sub(x3, a.X)
	x3.Sub(x3, b.X)
	y3 := field.New(f)
	y3.Sub(a.X, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, a.Y)

	p.Family, p.Coord, p.Params, p.Status = MontgomeryFamily, Affine, a.Params, OK
	p.X, p.Y, p.Z, p.T = x3, y3, nil, nil
	return OK
}

// EdwardsAffineAdd sets p = a + b with the affine addition law sharing
// the d*x1*x2*y1*y2 term between both denominators. The law is unified
// (doubling needs no special case), and for complete curve parameters
// the denominators never vanish; a vanishing denominator on other
// parameters reports StatusError.
func (p *Point[W]) EdwardsAffineAdd(a, b *Point[W]) Status {
	if a.IsInfinity() {
		*p = *b.edwardsToAffine()
		return p.Status
	}
	if b.IsInfinity() {
		*p = *a.edwardsToAffine()
		return p.Status
	}
	f := a.Params.Field
	pa, pb := a.edwardsToAffine(), b.edwardsToAffine()
	if pa.Status != OK || pb.Status != OK {
		return StatusError
	}

	xx := field.New(f)
	xx.Mul(pa.X, pb.X)
	yy := field.New(f)
	yy.Mul(pa.Y, pb.Y)
	common := field.New(f)
	common.Mul(xx, yy)
	common.Mul(common, a.Params.EdD)

	one := field.FromInt(f, oneInt[W]())
	denX := field.New(f)
	denX.Add(one, common)
	denY := field.New(f)
	denY.Sub(one, common)

	numX := field.New(f)
	numX.Mul(pa.X, pb.Y)
	t := field.New(f)
	t.Mul(pa.Y, pb.X)
	numX.Add(numX, t)

	numY := field.New(f)
	numY.Mul(a.Params.EdA, xx)
	numY.Sub(yy, numY)

	x3 := field.New(f)
	if !x3.Div(numX, denX) {
		return StatusError
	}
	y3 := field.New(f)
	if !y3.Div(numY, denY) {
		return StatusError
	}

	p.Family, p.Coord, p.Params, p.Status = Edwards, Affine, a.Params, OK
	p.X, p.Y, p.Z, p.T = x3, y3, nil, nil
	return OK
}

// EdwardsAffineDouble is EdwardsAffineAdd applied to (a, a); the law is
// already unified.
func (p *Point[W]) EdwardsAffineDouble(a *Point[W]) Status {
	return p.EdwardsAffineAdd(a, a)
}
