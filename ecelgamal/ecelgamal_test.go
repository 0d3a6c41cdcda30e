package ecelgamal

import (
	"testing"

	"pkc.mleku.dev/group/curve25519"
	"pkc.mleku.dev/group/secp256k1"
	"pkc.mleku.dev/uint512"
)

type counterRand struct{ n uint64 }

func (c *counterRand) Read(p []byte) (int, error) {
	for i := range p {
		c.n = c.n*6364136223846793005 + 1442695040888963407
		p[i] = byte(c.n >> 56)
	}
	return len(p), nil
}

func TestSecp256k1RoundTrip(t *testing.T) {
	rnd := &counterRand{n: 7}
	s := uint512.FromU32(424242)
	pub := Secp256k1DerivePublicKey(s)

	m := secp256k1.ScalarMul(secp256k1.Generator, uint512.FromU32(9999))

	c1, c2, err := Secp256k1Encrypt(rnd, pub, m)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	got := Secp256k1Decrypt(c1, c2, s)
	if !got.X.Equal(m.X) || !got.Y.Equal(m.Y) {
		t.Fatal("decrypt(encrypt(M, s)) should equal M")
	}
}

func TestSecp256k1WrongKeyDiffers(t *testing.T) {
	rnd := &counterRand{n: 8}
	s := uint512.FromU32(424242)
	pub := Secp256k1DerivePublicKey(s)
	m := secp256k1.ScalarMul(secp256k1.Generator, uint512.FromU32(9999))

	c1, c2, err := Secp256k1Encrypt(rnd, pub, m)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	got := Secp256k1Decrypt(c1, c2, s.Add(uint512.One()))
	if got.X.Equal(m.X) && got.Y.Equal(m.Y) {
		t.Fatal("decrypting with the wrong private key should not recover M")
	}
}

func TestCurve25519RoundTrip(t *testing.T) {
	rnd := &counterRand{n: 9}
	s := uint512.FromU32(13579)
	pub := Curve25519DerivePublicKey(s)

	m := curve25519.ScalarMul(curve25519.Generator, uint512.FromU32(24680))

	c1, c2, err := Curve25519Encrypt(rnd, pub, m)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	got := Curve25519Decrypt(c1, c2, s)
	if !got.X.Equal(m.X) || !got.Y.Equal(m.Y) {
		t.Fatal("decrypt(encrypt(M, s)) should equal M")
	}
}
