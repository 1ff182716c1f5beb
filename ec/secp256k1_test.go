package ec

import (
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/neil-smyth/phantom-sub003/field"
	"github.com/neil-smyth/phantom-sub003/mpi"
)

func secp256k1Params(t *testing.T) (*CurveParams[uint64], *mpi.ModCfg[uint64]) {
	t.Helper()
	p := hexInt64(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	mcfg := mpi.NewModCfg(p, mpi.Montgomery)
	red := field.NewMontgomeryReducer(p)
	return &CurveParams[uint64]{
		Field:  red,
		A:      field.New(red),
		B:      field.FromInt(red, mpi.FromInt64[uint64](7)),
		Family: Weierstrass,
	}, mcfg
}

func secp256k1Base(t *testing.T, params *CurveParams[uint64]) *Point[uint64] {
	gx := hexInt64(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy := hexInt64(t, "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	return NewWeierstrassAffine(params,
		field.FromInt(params.Field, gx),
		field.FromInt(params.Field, gy))
}

// Small scalar multiples of the secp256k1 base point must agree with an
// independently implemented secp256k1.
func TestSecp256k1AgainstReferenceImplementation(t *testing.T) {
	params, _ := secp256k1Params(t)
	G := secp256k1Base(t, params)
	curve := secp256k1.S256()

	acc := G.ToJacobian()
	for k := 1; k <= 8; k++ {
		aff := acc.ToAffine()
		if aff.Status != OK {
			t.Fatalf("%d*G conversion status = %d", k, aff.Status)
		}
		wantX, wantY := curve.ScalarBaseMult([]byte{byte(k)})
		gotX, _ := aff.X.Int().String(16)
		gotY, _ := aff.Y.Int().String(16)
		if gotX != wantX.Text(16) || gotY != wantY.Text(16) {
			t.Fatalf("%d*G = (%s, %s), reference says (%s, %s)",
				k, gotX, gotY, wantX.Text(16), wantY.Text(16))
		}

		var next Point[uint64]
		next.WeierstrassAdd(acc, G)
		acc = &next
	}
}

// Compressed round trip on the real curve exercises SqrtMod over a
// 256-bit prime with the p = 3 (mod 4) fast path.
func TestSecp256k1CompressDecompress(t *testing.T) {
	params, mcfg := secp256k1Params(t)
	G := secp256k1Base(t, params)

	var twoG Point[uint64]
	twoG.WeierstrassDouble(G)

	for _, pt := range []*Point[uint64]{G, &twoG} {
		enc := pt.Compress()
		dec := Decompress[uint64](params, mcfg, enc)
		if dec.Status != OK {
			t.Fatalf("Decompress status = %d, want OK", dec.Status)
		}
		if !Equal[uint64](pt, dec) {
			t.Fatalf("compress/decompress did not round trip")
		}
	}
}
