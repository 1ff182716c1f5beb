package ec

import "github.com/neil-smyth/phantom-sub003/mpi"

// P192SolinasReducer reduces modulo the NIST P-192 prime
// 2^192 - 2^64 - 1 with Solinas' fold: split the operand into 64-bit
// words v0..v5 and use 2^192 = 2^64 + 1 (mod p) to add the high words
// back into the low three word positions,
//
//	t  = (v2, v1, v0)
//	s1 = ( 0, v3, v3)
//	s2 = (v4, v4,  0)
//	s3 = (v5, v5, v5)
//
// followed by a handful of conditional subtractions. Operands outside
// [0, 2^384) fall back to the general division path.
type P192SolinasReducer[W mpi.Word] struct{}

// P192Hex is the P-192 prime in base 16, exported so callers can build
// the matching ModCfg without restating it.
const P192Hex = "fffffffffffffffffffffffffffffffeffffffffffffffff"

func word64[W mpi.Word](a *mpi.Int[W], i int) *mpi.Int[W] {
	var w mpi.Int[W]
	w.Shr(a, 64*i)
	var lo mpi.Int[W]
	lo.DivR2Exp(&w, 64, mpi.Trunc)
	return lo.Clone()
}

// Reduce implements mpi.CustomReducer.
func (P192SolinasReducer[W]) Reduce(x *mpi.Int[W], cfg *mpi.ModCfg[W]) *mpi.Int[W] {
	if x.Sign() < 0 || x.BitLen() > 384 {
		naive := mpi.NewModCfg(&cfg.M, mpi.Naive)
		return naive.Reduce(x)
	}

	sum := mpi.New[W]()
	// t = x mod 2^192
	sum.DivR2Exp(x, 192, mpi.Trunc)

	d3 := word64(x, 3)
	d4 := word64(x, 4)
	d5 := word64(x, 5)

	// s1 = d3 + d3*2^64
	var s1 mpi.Int[W]
	s1.Shl(d3, 64)
	s1.Add(&s1, d3)
	sum.Add(sum, &s1)

	// s2 = d4*2^64 + d4*2^128
	var s2 mpi.Int[W]
	s2.Shl(d4, 64)
	var s2b mpi.Int[W]
	s2b.Shl(d4, 128)
	sum.Add(sum, &s2)
	sum.Add(sum, &s2b)

	// s3 = d5 + d5*2^64 + d5*2^128
	sum.Add(sum, d5)
	var s3 mpi.Int[W]
	s3.Shl(d5, 64)
	sum.Add(sum, &s3)
	s3.Shl(d5, 128)
	sum.Add(sum, &s3)

	for sum.Cmp(&cfg.M) >= 0 {
		sum.Sub(sum, &cfg.M)
	}
	return sum
}
