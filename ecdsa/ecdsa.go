// Package ecdsa implements ECDSA over secp256k1 per §4.10.
package ecdsa

import (
	"errors"
	"io"

	"pkc.mleku.dev/field"
	"pkc.mleku.dev/group/secp256k1"
	"pkc.mleku.dev/uint512"
)

// DeriveVerificationKey returns V = s·G for private key s.
func DeriveVerificationKey(s uint512.U512) secp256k1.Point {
	return secp256k1.ScalarMul(secp256k1.Generator, s)
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
	return uint512.U512{}, errors.New("ecdsa: failed to draw a nonzero nonce")
}

// Sign produces a signature (r, s2) over digest d under private key s,
// drawing the nonce e from rnd.
func Sign(rnd io.Reader, d, s uint512.U512) (r, s2 uint512.U512, err error) {
	n := secp256k1.Order
	for {
		e, err := randomScalarBelow(rnd, n)
		if err != nil {
			return uint512.U512{}, uint512.U512{}, err
		}
		rp := secp256k1.ScalarMul(secp256k1.Generator, e)
		r = rp.X.Rem(n)
		if r.IsZero() {
			continue
		}
		eInv := field.ModInv(e, n)
		s2 = d.Add(s.Mul(r).Rem(n)).Rem(n).Mul(eInv).Rem(n)
		if s2.IsZero() {
			continue
		}
		return r, s2, nil
	}
}

// Verify reports whether (r, s2) is a valid signature over digest d under
// verification key v.
func Verify(r, s2, d uint512.U512, v secp256k1.Point) bool {
	n := secp256k1.Order
	if r.IsZero() || r.Cmp(n) >= 0 || s2.IsZero() || s2.Cmp(n) >= 0 {
		return false
	}
	w := field.ModInv(s2, n)
	u1 := d.Mul(w).Rem(n)
	u2 := r.Mul(w).Rem(n)

	p1 := secp256k1.ScalarMul(secp256k1.Generator, u1)
	p2 := secp256k1.ScalarMul(v, u2)
	sum := p1.Add(p2).(secp256k1.Point)
	if sum.IsIdentity() {
		return false
	}
	return sum.X.Rem(n).Equal(r)
}
