package field

import "github.com/neil-smyth/phantom-sub003/mpi"

// NewNaiveReducer builds the reference reduction strategy: every
// Reduce/_Mod call folds through ordinary floored division, no
// precomputed auxiliaries. Useful as the correctness oracle the other
// two reducers are tested against.
func NewNaiveReducer[W mpi.Word](modulus *mpi.Int[W]) Reducer[W] {
	return FromModCfg(mpi.NewModCfg(modulus, mpi.Naive))
}
