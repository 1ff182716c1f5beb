package field

import "github.com/neil-smyth/phantom-sub003/mpi"

// NewMontgomeryReducer builds the Montgomery reduction strategy:
// every Reduce/_Mod call enters/exits the Montgomery domain (R = B^k mod
// m) around a REDC multiply, after a one-time per-modulus setup (r2,
// ninv). MulMod, SquareMod and PowMod reduce their products with REDC;
// Reduce, and so AddMod and SubMod, first folds its argument with an
// ordinary division. Requires an odd modulus
// (panics otherwise, matching mpi.NewModCfg's own Montgomery precondition
// — gcd(B, m) must be 1).
func NewMontgomeryReducer[W mpi.Word](modulus *mpi.Int[W]) Reducer[W] {
	return FromModCfg(mpi.NewModCfg(modulus, mpi.Montgomery))
}
