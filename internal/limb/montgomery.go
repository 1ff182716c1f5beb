package limb

// Binvert computes the inverse of the odd single limb a modulo 2^Bits[W]()
// via Hensel lifting (Newton's iteration for 1/a in the 2-adics): each
// round doubles the number of correct bits, starting from a 3-bit-correct
// seed. Package mpi negates this value to obtain the Montgomery n'
// constant.
func Binvert[W Word](a W) W {
	if a&1 == 0 {
		panic("limb: Binvert requires an odd limb")
	}
	// 3-bit correct seed: for odd a, a*a === 1 (mod 8).
	x := a
	bitsTotal := Bits[W]()
	for correct := uint(3); correct < bitsTotal; correct *= 2 {
		x = x * (2 - a*x)
	}
	return x
}

// BinvertPowmScratchSize returns the number of W-limbs of contiguous
// scratch a caller must reserve before entering Powm's inner loop for an
// n-limb modulus: a 2n-limb product buffer plus an n+1-limb quotient
// buffer.
func BinvertPowmScratchSize(n int) int {
	return 2*n + (n + 1)
}

// MulLowN computes only the low n limbs of the product a*b, i.e.
// (a*b) mod B^n. PowLow uses it for its truncated products.
func MulLowN[W Word](r, a []W, b []W, n int) {
	Zero(r[:n])
	for j := 0; j < n; j++ {
		if b[j] == 0 {
			continue
		}
		limit := n - j
		AddMul1(r[j:j+limit], a[:limit], limit, b[j])
	}
}

// PowLow computes (a^e) mod B^n, the low-n-limb truncation of repeated
// squaring, without a full modular context. No reducer in this module
// calls it.
func PowLow[W Word](r []W, a []W, n int, e uint) {
	acc := make([]W, n)
	acc[0] = 1
	base := make([]W, n)
	Copy(base, a, n)
	tmp := make([]W, n)
	for e > 0 {
		if e&1 == 1 {
			MulLowN(tmp, acc, base, n)
			copy(acc, tmp)
		}
		MulLowN(tmp, base, base, n)
		copy(base, tmp)
		e >>= 1
	}
	Copy(r, acc, n)
}

// ModExact1Odd computes a / d mod B^n for a single odd limb divisor d
// that divides a exactly, via multiplication by d's 2-adic inverse: each
// output limb is (a[i] - carry) * dinv mod B, with the carry taken from
// the high half of that quotient limb times d. No general division runs.
func ModExact1Odd[W Word](r, a []W, n int, d W) {
	dinv := Binvert(d)
	var c W
	for i := 0; i < n; i++ {
		l, b := SubWW(a[i], c, 0)
		q := l * dinv
		r[i] = q
		hi, _ := MulWW(q, d)
		c = hi + b
	}
}

// Powm computes (base^exp) mod m entirely at the limb-array level via
// schoolbook square-and-multiply plus TDivQR reduction at each step: the
// escape hatch for a one-off exponentiation where building a full
// mpi.ModCfg (with its Barrett/Montgomery precomputation) is not worth
// it. base, exp and m are normalized magnitudes (no sign); the result is
// written to r (mn limbs, zero-extended).
func Powm[W Word](r []W, base []W, bn int, exp []W, en int, m []W, mn int) {
	mn = NormalizedSize(m, mn)
	if mn == 0 {
		panic("limb: Powm modulus has length zero")
	}

	acc := make([]W, mn)
	acc[0] = 1
	baseRed := make([]W, mn)
	reduceInto(baseRed, base, bn, m, mn)

	// One contiguous arena of BinvertPowmScratchSize limbs, claimed once
	// per entry and sliced into the product and quotient windows the
	// inner loop reuses.
	scratch := make([]W, BinvertPowmScratchSize(mn))
	prod := scratch[:2*mn]
	quot := scratch[2*mn:]
	rem := make([]W, mn)

	totalBits := NormalizedSize(exp, en) * int(Bits[W]())
	for bitIdx := totalBits - 1; bitIdx >= 0; bitIdx-- {
		MulN(prod, acc, mn, acc, mn)
		TDivQR(quot, rem, prod, 2*mn, m, mn)
		copy(acc, rem)

		if bitAt(exp, bitIdx) == 1 {
			MulN(prod, acc, mn, baseRed, mn)
			TDivQR(quot, rem, prod, 2*mn, m, mn)
			copy(acc, rem)
		}
	}
	Zero(r)
	copy(r, acc)
}

func reduceInto[W Word](dst []W, a []W, an int, m []W, mn int) {
	if NormalizedSize(a, an) < mn {
		Zero(dst)
		copy(dst, a[:an])
		return
	}
	quot := make([]W, an-mn+2)
	rem := make([]W, mn)
	TDivQR(quot, rem, a, an, m, mn)
	copy(dst, rem)
}
