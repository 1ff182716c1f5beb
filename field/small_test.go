package field

import "testing"

// smallReducers builds all three strategies over the same prime so the
// suite can assert they agree operation by operation.
func smallReducers(q uint32) map[string]SmallReducer[uint32] {
	return map[string]SmallReducer[uint32]{
		"reference":  NewSmallReference(q),
		"barrett-fp": NewSmallBarrettFP(q),
		"montgomery": NewSmallMontgomery(q),
	}
}

func TestSmallArithmeticAgreesAcrossReducers(t *testing.T) {
	const q = uint32(65521)
	values := []uint32{0, 1, 2, 17, 65520, 40000, 123456789}
	for name, red := range smallReducers(q) {
		t.Run(name, func(t *testing.T) {
			for _, av := range values {
				for _, bv := range values {
					a := NewSmall(red, av)
					b := NewSmall(red, bv)

					q64 := uint64(q)

					var sum SmallElem[uint32]
					sum.Add(a, b)
					if got, want := uint64(sum.Value()), (uint64(av)+uint64(bv))%q64; got != want {
						t.Fatalf("add(%d,%d) = %d, want %d", av, bv, got, want)
					}

					var prod SmallElem[uint32]
					prod.Mul(a, b)
					want := (uint64(av) % q64) * (uint64(bv) % q64) % q64
					if uint64(prod.Value()) != want {
						t.Fatalf("mul(%d,%d) = %d, want %d", av, bv, prod.Value(), want)
					}

					var diff SmallElem[uint32]
					diff.Sub(a, b)
					wantDiff := (uint64(av)%q64 + q64 - uint64(bv)%q64) % q64
					if uint64(diff.Value()) != wantDiff {
						t.Fatalf("sub(%d,%d) = %d, want %d", av, bv, diff.Value(), wantDiff)
					}
				}
			}
		})
	}
}

func TestSmallConvertRoundTrip(t *testing.T) {
	const q = uint32(4294967291) // 2^32 - 5
	for _, name := range []string{"reference", "montgomery"} {
		red := map[string]SmallReducer[uint32]{
			"reference":  NewSmallReference(q),
			"montgomery": NewSmallMontgomery(q),
		}[name]
		t.Run(name, func(t *testing.T) {
			for _, v := range []uint32{0, 1, 2, q - 1, 123456789} {
				got := red.ConvertFrom(red.ConvertTo(v))
				if got != v%q {
					t.Fatalf("round trip of %d = %d", v, got)
				}
			}
		})
	}
}

func TestSmallInverseAndDiv(t *testing.T) {
	const q = uint32(65521)
	for name, red := range smallReducers(q) {
		t.Run(name, func(t *testing.T) {
			a := NewSmall(red, 1234)
			var inv SmallElem[uint32]
			if !inv.Inverse(a) {
				t.Fatalf("Inverse(1234) failed")
			}
			var prod SmallElem[uint32]
			prod.Mul(a, &inv)
			if prod.Value() != 1 {
				t.Fatalf("a * a^-1 = %d, want 1", prod.Value())
			}

			zero := NewSmall(red, 0)
			var bad SmallElem[uint32]
			if bad.Inverse(zero) {
				t.Fatalf("Inverse(0) succeeded")
			}

			b := NewSmall(red, 987)
			var quot SmallElem[uint32]
			if !quot.Div(a, b) {
				t.Fatalf("Div failed")
			}
			var back SmallElem[uint32]
			back.Mul(&quot, b)
			if back.Value() != a.Value() {
				t.Fatalf("(a/b)*b = %d, want %d", back.Value(), a.Value())
			}
		})
	}
}

func TestSmallShiftHalvingDoubling(t *testing.T) {
	const q = uint32(65521)
	for name, red := range smallReducers(q) {
		t.Run(name, func(t *testing.T) {
			for _, v := range []uint32{0, 1, 2, 3, 65520, 32761} {
				a := NewSmall(red, v)
				var half SmallElem[uint32]
				half.Rshift1(a)
				var doubled SmallElem[uint32]
				doubled.Lshift1(&half)
				if doubled.Value() != a.Value() {
					t.Fatalf("2*(%d/2) = %d, want %d", v, doubled.Value(), a.Value())
				}
			}
		})
	}
}

func TestSmallPow(t *testing.T) {
	const q = uint32(65521)
	for name, red := range smallReducers(q) {
		t.Run(name, func(t *testing.T) {
			a := NewSmall(red, 3)
			var p SmallElem[uint32]
			p.Pow(a, 20)
			// 3^20 = 3486784401; mod 65521 computed independently.
			if got := uint64(p.Value()); got != 3486784401%uint64(q) {
				t.Fatalf("3^20 mod q = %d, want %d", got, 3486784401%uint64(q))
			}

			// Fermat: a^(q-1) = 1 for a != 0.
			var f SmallElem[uint32]
			f.Pow(a, uint64(q-1))
			if f.Value() != 1 {
				t.Fatalf("3^(q-1) = %d, want 1", f.Value())
			}
		})
	}
}

func TestSmallInverse2k(t *testing.T) {
	const q = uint32(65521)
	for name, red := range smallReducers(q) {
		t.Run(name, func(t *testing.T) {
			a := NewSmall(red, 777)
			var inv2k SmallElem[uint32]
			if !inv2k.Inverse2k(a, 3) {
				t.Fatalf("Inverse2k failed")
			}
			// inv2k = a^-1 * 2^-3, so a * 8 * inv2k = 1.
			eight := NewSmall(red, 8)
			var check SmallElem[uint32]
			check.Mul(a, eight)
			check.Mul(&check, &inv2k)
			if check.Value() != 1 {
				t.Fatalf("a * 8 * (a^-1 * 8^-1) = %d, want 1", check.Value())
			}
		})
	}
}

func TestSmallFullWidthLimbModulus(t *testing.T) {
	// A prime just below 2^64 exercises the carry-word paths in every
	// shared helper.
	const q = uint64(18446744073709551557) // 2^64 - 59
	for _, tc := range []struct {
		name string
		red  SmallReducer[uint64]
	}{
		{"reference", NewSmallReference(q)},
		{"montgomery", NewSmallMontgomery(q)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := NewSmall(tc.red, q-1)
			var sq SmallElem[uint64]
			sq.Sqr(a)
			// (q-1)^2 = 1 mod q.
			if sq.Value() != 1 {
				t.Fatalf("(q-1)^2 = %d, want 1", sq.Value())
			}
			b := NewSmall(tc.red, q-2)
			var s SmallElem[uint64]
			s.Add(a, b)
			if s.Value() != q-3 {
				t.Fatalf("(q-1)+(q-2) = %d, want q-3", s.Value())
			}
		})
	}
}
