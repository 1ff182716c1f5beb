package mpi

import "github.com/neil-smyth/phantom-sub003/internal/limb"

// Kind selects a ModCfg's reduction strategy.
type Kind int

const (
	Naive Kind = iota
	Barrett
	Montgomery
	Custom
)

// CustomReducer lets a caller plug in a modulus-specific fast reduction
// (e.g. Solinas reduction for a NIST prime) behind ModCfg's Custom
// kind.
type CustomReducer[W Word] interface {
	Reduce(x *Int[W], cfg *ModCfg[W]) *Int[W]
}

// ModCfg bundles a modulus with its bit length and the precomputed
// auxiliaries its selected reduction strategy needs.
// Precomputed fields are consistent with M and Kind only as of the last
// call to NewModCfg/Rebuild; changing M requires rebuilding.
type ModCfg[W Word] struct {
	M     Int[W]
	Mbits int
	K     int // limbs needed to hold M
	Blog2 uint
	Kind  Kind

	Mu   Int[W] // Barrett: floor(B^2k / M)
	R2   Int[W] // Montgomery: B^2k mod M
	Ninv W      // Montgomery: -M^-1 mod B

	Custom CustomReducer[W]
}

// NewModCfg builds a ModCfg for modulus m under the given kind,
// computing and storing the auxiliaries that kind needs: the caller
// supplies only m and kind.
func NewModCfg[W Word](m *Int[W], kind Kind) *ModCfg[W] {
	if m.Sign() <= 0 {
		panic(newErr(DivideByZero, "ModCfg requires a positive modulus"))
	}
	cfg := &ModCfg[W]{Kind: kind, Blog2: limb.Bits[W]()}
	cfg.M.SetInt(m)
	cfg.Mbits = m.BitLen()
	cfg.K = (cfg.Mbits + int(cfg.Blog2) - 1) / int(cfg.Blog2)
	if cfg.K == 0 {
		cfg.K = 1
	}

	switch kind {
	case Barrett:
		cfg.computeBarrett()
	case Montgomery:
		if m.Tstbit(0) == 0 {
			panic(newErr(DivideByZero, "Montgomery requires an odd modulus (gcd(B,m)=1)"))
		}
		cfg.computeMontgomery()
	}
	return cfg
}

func (cfg *ModCfg[W]) computeBarrett() {
	// mu = floor(B^2k / m)
	pow := New[W]()
	pow.shl1Exp(2 * cfg.K * int(cfg.Blog2))
	cfg.Mu.DivQ(pow, &cfg.M, Floor)
}

func (cfg *ModCfg[W]) computeMontgomery() {
	pow := New[W]()
	pow.shl1Exp(2 * cfg.K * int(cfg.Blog2))
	cfg.R2.DivR(pow, &cfg.M, Floor)

	// ninv = -m^-1 mod B, derived via Hensel lifting on the bottom limb
	// of m.
	m0 := W(0)
	if len(cfg.M.limbs) > 0 {
		m0 = cfg.M.limbs[0]
	}
	inv := limb.Binvert(m0)
	cfg.Ninv = (^inv + 1) & limb.Mask[W]() // -inv mod B
}

// Rebuild recomputes cfg's auxiliaries for a new modulus m, keeping the
// same Kind.
func (cfg *ModCfg[W]) Rebuild(m *Int[W]) {
	*cfg = *NewModCfg(m, cfg.Kind)
}
