package ecelgamal

import (
	"io"

	"pkc.mleku.dev/elgamal"
	"pkc.mleku.dev/group"
	"pkc.mleku.dev/group/curve25519"
	"pkc.mleku.dev/uint512"
)

func curve25519Mul(p group.Point, s uint512.U512) group.Point {
	return curve25519.ScalarMul(p.(curve25519.Point), s)
}

// Curve25519DerivePublicKey returns P = s·G over Curve25519. The scalar s is
// used as given; it is not reduced modulo Curve25519Order.
func Curve25519DerivePublicKey(s uint512.U512) curve25519.Point {
	return DerivePublicKey(curve25519Mul, curve25519.Generator, s).(curve25519.Point)
}

// Curve25519Order is the scalar modulus EC-ElGamal over Curve25519 draws
// ephemeral keys below: the Ed25519 base-point order, shared with package
// elgamal's own modulus.
var Curve25519Order = elgamal.Order

// Curve25519Encrypt encrypts message point m under public key pub over
// Curve25519.
func Curve25519Encrypt(rnd io.Reader, pub, m curve25519.Point) (c1, c2 curve25519.Point, err error) {
	c1p, c2p, err := Encrypt(rnd, curve25519Mul, curve25519.Generator, pub, m, Curve25519Order)
	if err != nil {
		return curve25519.Point{}, curve25519.Point{}, err
	}
	return c1p.(curve25519.Point), c2p.(curve25519.Point), nil
}

// Curve25519Decrypt recovers the message point from (c1, c2) under private
// key s over Curve25519.
func Curve25519Decrypt(c1, c2 curve25519.Point, s uint512.U512) curve25519.Point {
	return Decrypt(curve25519Mul, c1, c2, s).(curve25519.Point)
}
