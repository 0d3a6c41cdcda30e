package gf25519

import (
	"testing"

	"pkc.mleku.dev/uint512"
)

func TestSqrtRoundTrip(t *testing.T) {
	for _, v := range []uint32{4, 9, 16, 25, 100} {
		a := uint512.FromU32(v)
		root, ok := Sqrt(Mul(a, a))
		if !ok {
			t.Fatalf("expected a square root for %d^2", v)
		}
		if !Mul(root, root).Equal(Mul(a, a)) {
			t.Fatalf("sqrt(%d^2)^2 != %d^2", v, v)
		}
	}
}

func TestInvRoundTrip(t *testing.T) {
	a := uint512.FromU32(12345)
	inv := Inv(a)
	if !Mul(a, inv).Equal(uint512.One()) {
		t.Fatal("a * inv(a) should equal 1 mod p")
	}
}

func TestSqrtMinus1(t *testing.T) {
	negOne := Sub(uint512.Zero(), uint512.One())
	if !Mul(sqrtM1, sqrtM1).Equal(negOne) {
		t.Fatal("sqrtM1^2 should equal -1 mod p")
	}
}
