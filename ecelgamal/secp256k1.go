package ecelgamal

import (
	"io"

	"pkc.mleku.dev/group"
	"pkc.mleku.dev/group/secp256k1"
	"pkc.mleku.dev/uint512"
)

func secp256k1Mul(p group.Point, s uint512.U512) group.Point {
	return secp256k1.ScalarMul(p.(secp256k1.Point), s)
}

// Secp256k1DerivePublicKey returns P = s·G over secp256k1.
func Secp256k1DerivePublicKey(s uint512.U512) secp256k1.Point {
	return DerivePublicKey(secp256k1Mul, secp256k1.Generator, s).(secp256k1.Point)
}

// Secp256k1Encrypt encrypts message point m under public key pub over
// secp256k1.
func Secp256k1Encrypt(rnd io.Reader, pub, m secp256k1.Point) (c1, c2 secp256k1.Point, err error) {
	c1p, c2p, err := Encrypt(rnd, secp256k1Mul, secp256k1.Generator, pub, m, secp256k1.Order)
	if err != nil {
		return secp256k1.Point{}, secp256k1.Point{}, err
	}
	return c1p.(secp256k1.Point), c2p.(secp256k1.Point), nil
}

// Secp256k1Decrypt recovers the message point from (c1, c2) under private
// key s over secp256k1.
func Secp256k1Decrypt(c1, c2 secp256k1.Point, s uint512.U512) secp256k1.Point {
	return Decrypt(secp256k1Mul, c1, c2, s).(secp256k1.Point)
}
