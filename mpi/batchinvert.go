package mpi

// BatchInvert inverts every element of in modulo cfg.M in a single pass
// using Montgomery's trick: one forward pass of running products, a
// single modular inversion of the total product, then an unwind pass
// recovering each individual inverse with one multiplication apiece.
// An arithmetic engine backing elliptic-curve code leans on this
// constantly for affine conversions. Panics if any element is not
// invertible mod cfg.M rather than returning a partial result.
func BatchInvert[W Word](out, in []*Int[W], cfg *ModCfg[W]) {
	if len(in) == 0 {
		return
	}
	if len(out) != len(in) {
		panic("mpi: BatchInvert requires out and in of equal length")
	}

	running := make([]*Int[W], len(in))
	acc := FromInt64[W](1)
	for i, v := range in {
		var prod Int[W]
		cfg.MulMod(&prod, acc, v)
		running[i] = acc
		acc = &prod
	}

	inv := New[W]()
	if !inv.Invert(acc, &cfg.M) {
		panic(newErr(NotInvertible, "BatchInvert: product of inputs is not invertible"))
	}

	for i := len(in) - 1; i >= 0; i-- {
		var vInv Int[W]
		cfg.MulMod(&vInv, inv, running[i])
		out[i] = vInv.Clone()

		var next Int[W]
		cfg.MulMod(&next, inv, in[i])
		inv = &next
	}
}
