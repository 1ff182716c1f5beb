package mpi

import "testing"

// fakeRand cycles through a fixed byte sequence so witness selection is
// reproducible across runs without touching a real CSPRNG.
type fakeRand struct {
	seed byte
}

func (f *fakeRand) GetMem(buf []byte, n int) {
	for i := 0; i < n && i < len(buf); i++ {
		f.seed = f.seed*31 + 17
		buf[i] = f.seed
	}
}

func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 97, 251, 257, 1000003, 9907}
	rnd := &fakeRand{seed: 1}
	for _, p := range primes {
		n := FromInt64[uint32](p)
		if !IsProbablePrime(n, 20, rnd) {
			t.Errorf("IsProbablePrime(%d) = false, want true", p)
		}
	}
}

func TestIsProbablePrimeKnownComposites(t *testing.T) {
	composites := []int64{0, 1, 4, 6, 8, 9, 15, 100, 1000002, 9908}
	rnd := &fakeRand{seed: 2}
	for _, c := range composites {
		n := FromInt64[uint32](c)
		if IsProbablePrime(n, 20, rnd) {
			t.Errorf("IsProbablePrime(%d) = true, want false", c)
		}
	}
}

func TestIsProbablePrimeSmallPrimeTable(t *testing.T) {
	rnd := &fakeRand{seed: 3}
	for _, p := range smallPrimes {
		n := FromInt64[uint32](int64(p))
		if !IsProbablePrime(n, 5, rnd) {
			t.Errorf("IsProbablePrime(%d) via small-prime table = false, want true", p)
		}
	}
}

func TestCheckPrimeStatuses(t *testing.T) {
	rnd := &fakeRand{seed: 5}

	st, factor := CheckPrime(FromInt64[uint32](1), 5, rnd)
	if st != PrimeCheckError || factor != nil {
		t.Errorf("CheckPrime(1) = %v, want PrimeCheckError", st)
	}

	st, factor = CheckPrime(FromInt64[uint32](1000002), 5, rnd)
	if st != CompositeWithFactor {
		t.Fatalf("CheckPrime(1000002) = %v, want CompositeWithFactor", st)
	}
	if factor == nil || factor.CmpUi(2) != 0 {
		t.Errorf("factor = %v, want 2", factor)
	}

	// 1018081 = 1009^2 has no factor below 1009, so only Miller-Rabin
	// can refute it.
	st, factor = CheckPrime(FromInt64[uint32](1018081), 20, rnd)
	if st != CompositeNotPowerOfPrime || factor != nil {
		t.Errorf("CheckPrime(1009^2) = %v factor %v, want CompositeNotPowerOfPrime", st, factor)
	}

	st, _ = CheckPrime(FromInt64[uint32](1000003), 0, rnd)
	if st != ProbablyPrime {
		t.Errorf("CheckPrime(1000003) = %v, want ProbablyPrime", st)
	}
}
