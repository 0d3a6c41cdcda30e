package schnorr

import (
	"errors"
	"io"

	"pkc.mleku.dev/group/secp256k1"
	"pkc.mleku.dev/uint512"
)

// DeriveVerificationKey returns P = s·G for private key s.
func DeriveVerificationKey(s uint512.U512) secp256k1.Point {
	return secp256k1.ScalarMul(secp256k1.Generator, s)
}

// hashChallenge implements §6's hash framing exactly: the decimal ASCII of
// m followed by the decimal ASCII of r.x, finalized to 32 bytes,
// interpreted as a little-endian integer, reduced mod n.
func hashChallenge(newHasher func() Hasher, m uint512.U512, rx uint512.U512) uint512.U512 {
	h := newHasher()
	h.Update([]byte(m.DecimalString()))
	h.Update([]byte(rx.DecimalString()))
	digest := h.Finalize()
	return uint512.FromBytesLE(digest[:]).Rem(secp256k1.Order)
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
	return uint512.U512{}, errors.New("schnorr: failed to draw a nonzero nonce")
}

// Sign produces a Schnorr signature (R, s2) over scalar message m under
// private key s, drawing the nonce k from rnd.
func Sign(rnd io.Reader, newHasher func() Hasher, s, m uint512.U512) (r secp256k1.Point, s2 uint512.U512, err error) {
	k, err := randomScalarBelow(rnd, secp256k1.Order)
	if err != nil {
		return secp256k1.Point{}, uint512.U512{}, err
	}
	r = secp256k1.ScalarMul(secp256k1.Generator, k)
	h := hashChallenge(newHasher, m, r.X)
	s2 = k.Add(s.Mul(h).Rem(secp256k1.Order)).Rem(secp256k1.Order)
	return r, s2, nil
}

// Verify reports whether (r, s2) is a valid Schnorr signature over m under
// public key p: s2·G ?= R + h·P.
func Verify(newHasher func() Hasher, p secp256k1.Point, m uint512.U512, r secp256k1.Point, s2 uint512.U512) bool {
	h := hashChallenge(newHasher, m, r.X)
	lhs := secp256k1.ScalarMul(secp256k1.Generator, s2)
	rhs := r.Add(secp256k1.ScalarMul(p, h)).(secp256k1.Point)
	return lhs.X.Equal(rhs.X) && lhs.Y.Equal(rhs.Y)
}
