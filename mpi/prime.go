package mpi

// RandSource is the caller-supplied entropy hook Miller-Rabin witness
// selection draws from; the core never seeds randomness of its own.
// GetMem must fill buf with n cryptographically random bytes.
type RandSource interface {
	GetMem(buf []byte, n int)
}

// PrimeStatus is CheckPrime's verdict.
type PrimeStatus int

const (
	// ProbablyPrime: survived trial division and every Miller-Rabin round.
	ProbablyPrime PrimeStatus = iota
	// CompositeWithFactor: trial division found an explicit small factor.
	CompositeWithFactor
	// CompositeNotPowerOfPrime: a Miller-Rabin witness proved the number
	// composite without exhibiting a factor.
	CompositeNotPowerOfPrime
	// PrimeCheckError: the input is out of domain (n <= 1) or no witness
	// source was supplied.
	PrimeCheckError
)

var smallPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251,
}

// DefaultMillerRabinRounds returns the round count used when the caller
// passes rounds <= 0: at least 64, scaled up to bits/16 for wide
// candidates so the 4^-rounds error bound keeps pace with the input
// size.
func DefaultMillerRabinRounds(bits int) int {
	r := (bits + 15) / 16
	if r < 64 {
		r = 64
	}
	return r
}

// CheckPrime runs trial division against the small-prime table, then
// rounds of Miller-Rabin with witnesses drawn from witness. rounds <= 0
// selects DefaultMillerRabinRounds. When trial division hits, the
// explicit factor is returned alongside CompositeWithFactor; a
// Miller-Rabin refutation returns CompositeNotPowerOfPrime with a nil
// factor.
func CheckPrime[W Word](n *Int[W], rounds int, witness RandSource) (PrimeStatus, *Int[W]) {
	if n.Sign() <= 0 || n.CmpUi(1) == 0 {
		return PrimeCheckError, nil
	}
	for _, p := range smallPrimes {
		pv := FromUint64[W](p)
		if n.Cmp(pv) == 0 {
			return ProbablyPrime, nil
		}
		var r Int[W]
		r.DivR(n, pv, Floor)
		if r.IsZero() {
			return CompositeWithFactor, pv
		}
	}
	if witness == nil {
		return PrimeCheckError, nil
	}
	if rounds <= 0 {
		rounds = DefaultMillerRabinRounds(n.BitLen())
	}

	nMinus1 := New[W]()
	nMinus1.SubUi(n, 1)
	d := nMinus1.Clone()
	s := 0
	for d.Tstbit(0) == 0 {
		d.Shr(d, 1)
		s++
	}

	cfg := NewModCfg(n, Barrett)
	two := FromInt64[W](2)
	nMinus2 := New[W]()
	nMinus2.SubUi(n, 2)

	for i := 0; i < rounds; i++ {
		a := randomInRange(two, nMinus2, witness)
		if !millerRabinWitness(a, d, s, n, cfg) {
			return CompositeNotPowerOfPrime, nil
		}
	}
	return ProbablyPrime, nil
}

// IsProbablePrime is the boolean convenience over CheckPrime.
func IsProbablePrime[W Word](n *Int[W], rounds int, witness RandSource) bool {
	st, _ := CheckPrime(n, rounds, witness)
	return st == ProbablyPrime
}

func millerRabinWitness[W Word](a, d *Int[W], s int, n *Int[W], cfg *ModCfg[W]) bool {
	var x Int[W]
	cfg.PowMod(&x, a, d)
	one := FromInt64[W](1)
	nMinus1 := New[W]()
	nMinus1.SubUi(n, 1)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < s-1; i++ {
		cfg.SquareMod(&x, &x)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}

// randomInRange draws a value in [lo, hi] from witness: candidates are
// masked down to the span's bit length and rejection-sampled, with a
// bounded retry count before folding modulo the span so a skewed
// witness source cannot stall the primality test. Witness selection
// needs coverage, not exact uniformity.
func randomInRange[W Word](lo, hi *Int[W], witness RandSource) *Int[W] {
	span := New[W]()
	span.Sub(hi, lo)
	if span.Sign() <= 0 {
		return lo.Clone()
	}
	spanBits := span.BitLen()
	nBytes := (spanBits + 7) / 8
	buf := make([]byte, nBytes)
	var cand Int[W]
	for attempt := 0; attempt < 64; attempt++ {
		witness.GetMem(buf, nBytes)
		cand.SetBytes(buf, BigEndian)
		if excess := 8*nBytes - spanBits; excess > 0 {
			cand.Shr(&cand, excess)
		}
		if cand.CmpAbs(span) <= 0 {
			var r Int[W]
			r.Add(&cand, lo)
			return &r
		}
	}
	spanPlus1 := New[W]()
	spanPlus1.AddUi(span, 1)
	var folded Int[W]
	folded.DivR(&cand, spanPlus1, Floor)
	var r Int[W]
	r.Add(&folded, lo)
	return &r
}
