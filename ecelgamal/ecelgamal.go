// Package ecelgamal implements elliptic-curve ElGamal encryption over
// points rather than the multiplicative group: private key s, public
// P = s·G, encrypt point M as (k·G, M + k·P), decrypt by subtracting
// s·C1. The core is written once against the group.Point/group.Curve
// capability interfaces and instantiated for secp256k1 and Curve25519 in
// secp256k1.go and curve25519.go.
package ecelgamal

import (
	"errors"
	"io"

	"pkc.mleku.dev/group"
	"pkc.mleku.dev/uint512"
)

// ScalarMulFunc multiplies a point by a scalar within a single fixed
// curve's group.
type ScalarMulFunc func(p group.Point, s uint512.U512) group.Point

// DerivePublicKey returns P = s·G for private key s and generator g.
func DerivePublicKey(mul ScalarMulFunc, generator group.Point, s uint512.U512) group.Point {
	return mul(generator, s)
}

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
	return uint512.U512{}, errors.New("ecelgamal: failed to draw a nonzero scalar")
}

// Encrypt picks an ephemeral k from rnd and returns (C1, C2) =
// (k·G, M + k·P) for public key pub and message point m.
func Encrypt(rnd io.Reader, mul ScalarMulFunc, generator, pub, m group.Point, order uint512.U512) (c1, c2 group.Point, err error) {
	k, err := randomScalarBelow(rnd, order)
	if err != nil {
		return nil, nil, err
	}
	c1 = mul(generator, k)
	c2 = m.Add(mul(pub, k))
	return c1, c2, nil
}

// Decrypt recovers M = C2 + negate(s·C1) under private key s.
func Decrypt(mul ScalarMulFunc, c1, c2 group.Point, s uint512.U512) group.Point {
	return c2.Add(mul(c1, s).Negate())
}
