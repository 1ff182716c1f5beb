package limb

// BasecaseJacobiStep folds the quadratic-reciprocity sign flip for one
// factor-of-two removed from the numerator during the Jacobi/Legendre
// iteration. residueMod8 is n mod 8 for the current denominator n; it
// returns true when the (2/n) term contributes a sign flip, i.e. when
// n ≡ 3 or 5 (mod 8).
func BasecaseJacobiStep(residueMod8 uint) bool {
	r := residueMod8 & 7
	return r == 3 || r == 5
}

// ReciprocityFlip reports whether swapping numerator and denominator in
// the Jacobi iteration (the (n/m) <-> (m/n) step) flips the running sign,
// which happens exactly when both operands are ≡ 3 (mod 4).
func ReciprocityFlip(aMod4, bMod4 uint) bool {
	return aMod4&3 == 3 && bMod4&3 == 3
}

// JacobiN computes the Jacobi symbol (a/b) for single-limb odd b > 0 and
// any a, using the classical iterative algorithm over machine words.
// Package mpi's multi-limb Jacobi runs the same iteration on Int
// operands and does not call this function.
func JacobiN[W Word](a, b W) int {
	av, bv := widen(a), widen(b)
	if bv == 0 || bv&1 == 0 {
		panic("limb: JacobiN requires odd b > 0")
	}
	result := 1
	av %= bv
	for av != 0 {
		for av&1 == 0 {
			av >>= 1
			if BasecaseJacobiStep(uint(bv % 8)) {
				result = -result
			}
		}
		av, bv = bv, av
		if ReciprocityFlip(uint(av%4), uint(bv%4)) {
			result = -result
		}
		av %= bv
	}
	if bv == 1 {
		return result
	}
	return 0
}
