// ElGamal DSA: the signature half of package elgamal, sharing the same
// group modulus and generator as plain ElGamal encryption.
package elgamal

import (
	"io"

	"pkc.mleku.dev/field"
	"pkc.mleku.dev/uint512"
)

// qMinus1 is reused by Sign for the k-selection and s2 arithmetic, both of
// which work modulo q-1, the order of the multiplicative group mod q, rather
// than modulo q itself.
func qMinus1() uint512.U512 { return Order.Sub(uint512.One()) }

// randomCoprimeScalar draws k from rnd, below q-1, with gcd(k, q-1)=1 —
// the sign precondition spec.md §4.10 states directly, rather than
// treating it as an edge case to special-case away.
func randomCoprimeScalar(rnd io.Reader) (uint512.U512, error) {
	m := qMinus1()
	for i := 0; i < 256; i++ {
		k, err := randomScalarBelow(rnd, m)
		if err != nil {
			return uint512.U512{}, err
		}
		if field.GCD(k, m).Equal(uint512.One()) {
			return k, nil
		}
	}
	panic("elgamal: failed to draw a k coprime to q-1 in a reasonable number of attempts")
}

// Sign produces an ElGamal DSA signature (s1, s2) over digest d using
// private key s.
func Sign(rnd io.Reader, digest, s uint512.U512) (s1, s2 uint512.U512, err error) {
	k, err := randomCoprimeScalar(rnd)
	if err != nil {
		return uint512.U512{}, uint512.U512{}, err
	}
	m := qMinus1()

	s1 = field.ModExp(Generator, k, Order)

	d := digest.Rem(m)
	ss1 := s.Mul(s1).Rem(m)

	var diff uint512.U512
	if d.Cmp(ss1) >= 0 {
		diff = d.Sub(ss1)
	} else {
		diff = m.Sub(ss1.Sub(d))
	}
	kInv := field.ModInv(k, m)
	s2 = diff.Mul(kInv).Rem(m)
	return s1, s2, nil
}

// Verify reports whether (s1, s2) is a valid ElGamal DSA signature over
// digest d under public key y: y^s1 · s1^s2 ≡ g^d (mod q).
func Verify(y, digest, s1, s2 uint512.U512) bool {
	lhs := field.ModExp(y, s1, Order).Mul(field.ModExp(s1, s2, Order)).Rem(Order)
	rhs := field.ModExp(Generator, digest, Order)
	return lhs.Equal(rhs)
}
