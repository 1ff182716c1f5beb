package mpi

import "testing"

func allKinds() []Kind { return []Kind{Naive, Barrett, Montgomery} }

func TestReductionEquivalenceAcrossKinds(t *testing.T) {
	m := FromInt64[uint32](1000003) // odd prime, fits Montgomery's gcd(B,m)=1 requirement
	values := []int64{0, 1, 42, 999999, 1000002, 2000005, -1, -999999}
	for _, kind := range allKinds() {
		cfg := NewModCfg(m, kind)
		for _, v := range values {
			x := FromInt64[uint32](v)
			got := cfg.Reduce(x)
			var want Int[uint32]
			want.DivR(x, m, Floor)
			if want.Sign() < 0 {
				want.Add(&want, m)
			}
			if got.Cmp(&want) != 0 {
				t.Errorf("kind %d: Reduce(%d) = %v, want %v", kind, v, got, &want)
			}
		}
	}
}

func TestMulModAgreesAcrossKinds(t *testing.T) {
	m := FromInt64[uint32](1000003)
	a := FromInt64[uint32](998877)
	b := FromInt64[uint32](123456)

	var reference Int[uint32]
	naive := NewModCfg(m, Naive)
	naive.MulMod(&reference, a, b)

	for _, kind := range []Kind{Barrett, Montgomery} {
		cfg := NewModCfg(m, kind)
		var got Int[uint32]
		cfg.MulMod(&got, a, b)
		if got.Cmp(&reference) != 0 {
			t.Errorf("kind %d: MulMod = %v, want %v (naive reference)", kind, &got, &reference)
		}
	}
}

func TestPowModAgreesAcrossKinds(t *testing.T) {
	m := FromInt64[uint32](1000003)
	base := FromInt64[uint32](5)
	exp := FromInt64[uint32](1000002) // Fermat: a^(p-1) == 1 mod p

	for _, kind := range allKinds() {
		cfg := NewModCfg(m, kind)
		var r Int[uint32]
		cfg.PowMod(&r, base, exp)
		if r.CmpUi(1) != 0 {
			t.Errorf("kind %d: 5^1000002 mod 1000003 = %v, want 1 (Fermat)", kind, &r)
		}
	}
}

func TestMontgomeryConvertRoundTrip(t *testing.T) {
	m := FromInt64[uint32](1000003)
	cfg := NewModCfg(m, Montgomery)
	a := FromInt64[uint32](424242)
	domain := cfg.ToMontgomery(a)
	back := cfg.FromMontgomery(domain)
	if back.Cmp(a) != 0 {
		t.Errorf("Montgomery round trip: got %v, want %v", back, a)
	}
}

func TestAddSubModAgreeWithNaive(t *testing.T) {
	m := FromInt64[uint32](97)
	a := FromInt64[uint32](80)
	b := FromInt64[uint32](50)
	for _, kind := range allKinds() {
		cfg := NewModCfg(m, kind)
		var sum, diff Int[uint32]
		cfg.AddMod(&sum, a, b)
		cfg.SubMod(&diff, a, b)
		if sum.CmpUi(33) != 0 { // 130 mod 97 = 33
			t.Errorf("kind %d: AddMod(80,50) mod 97 = %v, want 33", kind, &sum)
		}
		if diff.CmpUi(30) != 0 { // 80-50 = 30
			t.Errorf("kind %d: SubMod(80,50) mod 97 = %v, want 30", kind, &diff)
		}
	}
}

func TestBarrettReductionP192Fixture(t *testing.T) {
	// 2^192 - 2^64 reduced by the 192-bit NIST prime 2^192 - 2^64 - 1
	// leaves exactly 1.
	run := func(t *testing.T, reduce func(mHex, xHex string) (string, error)) {
		got, err := reduce(
			"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
			"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF0000000000000000")
		if err != nil {
			t.Fatal(err)
		}
		if got != "1" {
			t.Fatalf("Barrett residue = %s, want 1", got)
		}
	}
	t.Run("uint32", func(t *testing.T) {
		run(t, func(mHex, xHex string) (string, error) {
			var m, x Int[uint32]
			if err := m.SetString(mHex, 16); err != nil {
				return "", err
			}
			if err := x.SetString(xHex, 16); err != nil {
				return "", err
			}
			cfg := NewModCfg(&m, Barrett)
			return cfg.Reduce(&x).String(16)
		})
	})
	t.Run("uint64", func(t *testing.T) {
		run(t, func(mHex, xHex string) (string, error) {
			var m, x Int[uint64]
			if err := m.SetString(mHex, 16); err != nil {
				return "", err
			}
			if err := x.SetString(xHex, 16); err != nil {
				return "", err
			}
			cfg := NewModCfg(&m, Barrett)
			return cfg.Reduce(&x).String(16)
		})
	})
}

// A 1024-bit exponentiation whose result is exactly m-1; the top-bit
// alignment makes quotient-estimate off-by-one mistakes in the Barrett
// fold visible.
func TestPowModTopOfRange1024Bit(t *testing.T) {
	const (
		aDec = "12945691313522123041986096672773446001405320837818255327" +
			"67565776783098523490134484961030662423105172728753008119" +
			"51068692189889731211177164307804606528856274613159947644" +
			"81786589382974203722414310292011195619500696129156773636" +
			"70492754494073655869082134359382463630469798196976104445" +
			"30781953044196108094240471122"
		bDec = "75296123376883313372540145968109024467662600265514720742" +
			"78396146714854872377436224354171048204231655273683603484" +
			"19676866210009275443167008784568978199247011253337255471" +
			"91960317838387317974177299106690233961945661398807694262" +
			"85571469282299739452858948897914658245325179439576887341" +
			"8417854053555201377271475459"
		mDec = "15059224675376662674508029193621804893532520053102944148" +
			"55679229342970974475487244870834209640846331054736720696" +
			"83935373242001855088633401756913795639849402250667451094" +
			"38392063567677463594835459821338046792389132279761538852" +
			"57114293856459947890571789779582931649065035887915377468" +
			"36835708107110402754542950919"
	)
	var a, b, m Int[uint32]
	if err := a.SetString(aDec, 10); err != nil {
		t.Fatal(err)
	}
	if err := b.SetString(bDec, 10); err != nil {
		t.Fatal(err)
	}
	if err := m.SetString(mDec, 10); err != nil {
		t.Fatal(err)
	}

	cfg := NewModCfg(&m, Barrett)
	var r Int[uint32]
	cfg.PowMod(&r, &a, &b)

	if r.BitLen() != 1024 {
		t.Fatalf("result bit length = %d, want 1024", r.BitLen())
	}
	var want Int[uint32]
	want.SubUi(&m, 1)
	if r.Cmp(&want) != 0 {
		got, _ := r.String(10)
		t.Fatalf("a^b mod m = ...%s, want m-1", got[len(got)-8:])
	}
}

// A modulus that fills its top limb makes the REDC loop's pre-reduction
// value routinely spill into the carry limb; small single-limb moduli
// can never reach that path. The P-192 prime fills six uint32 limbs
// (and three uint64 limbs) exactly.
func TestMontgomeryFullWidthModulus(t *testing.T) {
	const pHex = "fffffffffffffffffffffffffffffffeffffffffffffffff"

	t.Run("uint32", func(t *testing.T) {
		montgomeryFullWidthCase[uint32](t, pHex)
	})
	t.Run("uint64", func(t *testing.T) {
		montgomeryFullWidthCase[uint64](t, pHex)
	})
}

func montgomeryFullWidthCase[W Word](t *testing.T, pHex string) {
	var m Int[W]
	if err := m.SetString(pHex, 16); err != nil {
		t.Fatal(err)
	}
	mont := NewModCfg(&m, Montgomery)
	naive := NewModCfg(&m, Naive)

	mMinus1 := New[W]()
	mMinus1.SubUi(&m, 1)
	mMinus2 := New[W]()
	mMinus2.SubUi(&m, 2)
	half := New[W]()
	half.DivQ2Exp(&m, 1, Trunc)

	operands := []*Int[W]{
		FromInt64[W](0),
		FromInt64[W](1),
		FromInt64[W](2),
		half,
		mMinus2,
		mMinus1, // the extreme pair (m-1)^2 drives the carry-out limb
	}
	for _, a := range operands {
		for _, b := range operands {
			var got, want Int[W]
			mont.MulMod(&got, a, b)
			naive.MulMod(&want, a, b)
			if got.Cmp(&want) != 0 {
				g, _ := got.String(16)
				w, _ := want.String(16)
				ah, _ := a.String(16)
				bh, _ := b.String(16)
				t.Fatalf("MulMod(%s, %s) = %s, naive says %s", ah, bh, g, w)
			}
		}
	}

	// (m-1)^2 mod m = 1: the identity a full-width squaring must hit.
	var sq Int[W]
	mont.SquareMod(&sq, mMinus1)
	if sq.CmpUi(1) != 0 {
		s, _ := sq.String(16)
		t.Fatalf("(m-1)^2 mod m = %s, want 1", s)
	}

	for _, v := range operands {
		domain := mont.ToMontgomery(v)
		back := mont.FromMontgomery(domain)
		if back.Cmp(v) != 0 {
			t.Fatalf("Montgomery round trip lost a full-width residue")
		}
	}

	// Fermat on the prime with the largest base keeps PowMod's Montgomery
	// path on the carry-heavy operands throughout.
	var f Int[W]
	mont.PowMod(&f, mMinus1, mMinus1)
	var fn Int[W]
	naive.PowMod(&fn, mMinus1, mMinus1)
	if f.Cmp(&fn) != 0 {
		t.Fatalf("PowMod disagrees with naive on full-width operands")
	}

	// Reduce equivalence on values up to m^2.
	var big Int[W]
	big.Mul(mMinus1, mMinus1)
	got := mont.Reduce(&big)
	want := naive.Reduce(&big)
	if got.Cmp(want) != 0 {
		t.Fatalf("Reduce((m-1)^2) disagrees between Montgomery and naive")
	}
}
