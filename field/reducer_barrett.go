package field

import "github.com/neil-smyth/phantom-sub003/mpi"

// NewBarrettReducer builds the Barrett reduction strategy:
// a precomputed reciprocal mu lets every Reduce/_Mod call replace
// division with two multiplies and a shift. Appropriate for moduli used
// across many field elements (e.g. an elliptic curve's base field) where
// the one-time mu computation amortizes well.
func NewBarrettReducer[W mpi.Word](modulus *mpi.Int[W]) Reducer[W] {
	return FromModCfg(mpi.NewModCfg(modulus, mpi.Barrett))
}
