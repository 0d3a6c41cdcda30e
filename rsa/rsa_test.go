package rsa

import (
	"testing"

	"pkc.mleku.dev/uint512"
)

func u64(v uint64) uint512.U512 { return uint512.FromU64(v) }

func TestRoundTrip(t *testing.T) {
	p, q, e := u64(1223), u64(1987), u64(948047)
	n, pubE := DerivePubkey(p, q, e)

	m := u64(1070777)
	c := Encrypt(m, n, pubE)
	got := Decrypt(c, p, q, e)
	if !got.Equal(m) {
		t.Fatalf("decrypt(encrypt(m)) = %s, want %s", got.DecimalString(), m.DecimalString())
	}
}

func TestDecryptWithWrongKeyDiffers(t *testing.T) {
	p, q, e := u64(1223), u64(1987), u64(948047)
	n, pubE := DerivePubkey(p, q, e)
	m := u64(1070777)
	c := Encrypt(m, n, pubE)

	// Flip one bit of q to simulate a wrong private key.
	wrongQ := u64(1987 ^ 1)
	got := Decrypt(c, p, wrongQ, e)
	if got.Equal(m) {
		t.Fatal("decrypting with a corrupted key should not recover m")
	}
}

func TestSignVerify(t *testing.T) {
	p, q, e := u64(1223), u64(1987), u64(948047)
	n, pubE := DerivePubkey(p, q, e)
	digest := u64(555555)

	sig := Sign(digest, p, q, e)
	if !Verify(sig, n, pubE, digest) {
		t.Fatal("expected signature to verify")
	}
	if Verify(sig, n, pubE, u64(555556)) {
		t.Fatal("signature should not verify against a different digest")
	}
}

func TestDerivePubkeyPanicsOnNonCoprimeExponent(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for non-coprime e")
		}
	}()
	// phi(1223*1987) is even, so an even e is never coprime to it.
	DerivePubkey(u64(1223), u64(1987), u64(2))
}

func TestDerivePubkeyPanicsOnCompositeFactor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for a composite factor")
		}
	}()
	DerivePubkey(u64(1221), u64(1987), u64(5))
}
