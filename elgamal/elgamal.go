// Package elgamal implements ElGamal encryption over the multiplicative
// group modulo the Ed25519 base-point order, plus (in dsa.go) the ElGamal
// DSA signature scheme over the same group. The modulus and generator
// values are specified byte-for-byte in §6, reused from the Edwards
// generator encoding in the original source rather than freshly chosen.
package elgamal

import (
	"errors"
	"io"

	"pkc.mleku.dev/field"
	"pkc.mleku.dev/uint512"
)

// Order is the Ed25519 base-point order, a 253-bit prime, used as the
// modulus of the multiplicative group per §6:
// l = 2^252 + 27742317777372353535851937790883648493.
var Order uint512.U512

// Generator is the group generator, the byte string 0x58 ‖ 0x66·31
// interpreted as a big-endian integer, reused verbatim from the original
// source's Edwards generator byte encoding per §6.
var Generator uint512.U512

func init() {
	Order = uint512.FromBytesBE([]byte{
		0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x14, 0xDE, 0xF9, 0xDE, 0xA2, 0xF7, 0x9C, 0xD6, 0x58, 0x12, 0x63, 0x1A, 0x5C, 0xF5, 0xD3, 0xED,
	})
	genBytes := make([]byte, 32)
	genBytes[0] = 0x58
	for i := 1; i < 32; i++ {
		genBytes[i] = 0x66
	}
	Generator = uint512.FromBytesBE(genBytes)
}

// DerivePublicKey returns y = g^s mod q for private key s.
func DerivePublicKey(s uint512.U512) uint512.U512 {
	return field.ModExp(Generator, s, Order)
}

// randomScalarBelow reads 32 random bytes from rnd and reduces them modulo
// modulus, retrying on a zero result so the caller never receives a
// degenerate scalar.
func randomScalarBelow(rnd io.Reader, modulus uint512.U512) (uint512.U512, error) {
	var buf [32]byte
	for i := 0; i < 256; i++ {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return uint512.U512{}, err
		}
		k := uint512.FromBytesBE(buf[:]).Rem(modulus)
		if !k.IsZero() {
			return k, nil
		}
	}
	return uint512.U512{}, errors.New("elgamal: failed to draw a nonzero scalar")
}

// Encrypt picks an ephemeral k from rnd and returns the ciphertext pair
// (g^k mod q, m·y^k mod q) for public key y.
func Encrypt(rnd io.Reader, m, y uint512.U512) (c1, c2 uint512.U512, err error) {
	k, err := randomScalarBelow(rnd, Order)
	if err != nil {
		return uint512.U512{}, uint512.U512{}, err
	}
	c1 = field.ModExp(Generator, k, Order)
	c2 = field.ModExp(y, k, Order).Mul(m).Rem(Order)
	return c1, c2, nil
}

// Decrypt recovers the plaintext from ciphertext (c1, c2) under private key
// s: c1^(q-1-s) · c2 mod q.
func Decrypt(c1, c2, s uint512.U512) uint512.U512 {
	exp := Order.Sub(uint512.One()).Sub(s)
	return field.ModExp(c1, exp, Order).Mul(c2).Rem(Order)
}
