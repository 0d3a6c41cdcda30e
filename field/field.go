// Package field implements the modular-arithmetic primitives shared by every
// scheme in this module: modular inverse, modular exponentiation, GCD, a
// Fermat-witness compositeness check, and NAF scalar recoding.
//
// These were duplicated near-verbatim across the original implementation's
// crates (elgamal, elgamal_dsa, ed25519, curve25519_ecc, rsa each carried
// their own copy); here they live once and are shared by every caller.
package field

import "pkc.mleku.dev/uint512"

// GCD returns the greatest common divisor of a and b via the classical
// Euclidean remainder loop.
func GCD(a, b uint512.U512) uint512.U512 {
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// signedAdd combines two sign-magnitude values into their signed sum,
// expressed again as a sign-magnitude pair. uint512.U512 carries no sign
// bit, so ModInv tracks signs alongside magnitudes by hand while running
// the extended Euclidean algorithm.
func signedAdd(aMag uint512.U512, aNeg bool, bMag uint512.U512, bNeg bool) (uint512.U512, bool) {
	if aNeg == bNeg {
		return aMag.Add(bMag), aNeg
	}
	if aMag.Cmp(bMag) >= 0 {
		return aMag.Sub(bMag), aNeg
	}
	return bMag.Sub(aMag), bNeg
}

// ModInv returns the multiplicative inverse of e modulo p via the iterative
// extended Euclidean algorithm. It panics if e and p are not coprime, since
// a modular inverse not existing is a contract violation rather than
// something a caller can recover from.
func ModInv(e, p uint512.U512) uint512.U512 {
	if p.IsZero() {
		panic("field: ModInv with zero modulus")
	}
	r, newR := p, e.Rem(p)
	tMag, tNeg := uint512.Zero(), false
	newTMag, newTNeg := uint512.One(), false

	for !newR.IsZero() {
		q := r.Div(newR)

		r, newR = newR, r.Rem(newR)

		qtMag, qtNeg := q.Mul(newTMag), newTNeg
		diffMag, diffNeg := signedAdd(tMag, tNeg, qtMag, !qtNeg)
		tMag, tNeg = newTMag, newTNeg
		newTMag, newTNeg = diffMag, diffNeg
	}

	if !r.Equal(uint512.One()) {
		panic("field: ModInv called with non-coprime arguments")
	}

	result := tMag.Rem(p)
	if tNeg && !result.IsZero() {
		return p.Sub(result)
	}
	return result
}

// ModExp computes g^a mod f using right-to-left square-and-multiply.
// ModExp(0, a, f) is 0 for every a (including a = 0), and otherwise
// ModExp(g, 0, f) is 1; a modulus f = 1 always yields 0.
func ModExp(g, a, f uint512.U512) uint512.U512 {
	if f.Equal(uint512.One()) {
		return uint512.Zero()
	}
	if g.IsZero() {
		return uint512.Zero()
	}
	result := uint512.One()
	base := g.Rem(f)
	exp := a
	for !exp.IsZero() {
		if exp.Bit(0) == 1 {
			result = result.Mul(base).Rem(f)
		}
		exp = exp.Shr(1)
		base = base.Mul(base).Rem(f)
	}
	return result
}

// smallPrimesForFLT are the Fermat witnesses the original implementation
// checks: bases 2 through 9.
var smallPrimesForFLT = []uint64{2, 3, 4, 5, 6, 7, 8, 9}

// FLT reports whether p passes the Fermat little-theorem compositeness
// check for witness bases 2..9: a^(p-1) mod p == 1 for every base a. A false
// result proves p composite; a true result is merely evidence of primality
// (this is a probabilistic witness test, not a primality proof).
func FLT(p uint512.U512) bool {
	one := uint512.One()
	pMinus1 := p.Sub(one)
	for _, a := range smallPrimesForFLT {
		base := uint512.FromU64(a)
		if base.Cmp(p) >= 0 {
			continue
		}
		if !ModExp(base, pMinus1, p).Equal(one) {
			return false
		}
	}
	return true
}

// NAF recodes the bits of s into mutual non-adjacent form, returning the
// positive-digit and negative-digit bitmasks np and nm such that np and nm
// never both hold a set bit at the same position and s == np - nm in signed
// value. This is the same recoding every naf_ecmult implementation in the
// original sources performed inline; it is pulled out here as a standalone
// step so the scalar-multiplication engine in package group can consume it
// uniformly across curve forms.
func NAF(s uint512.U512) (np, nm uint512.U512) {
	xh := s.Shr(1)
	x3 := s.Add(xh)
	c := xh.Xor(x3)
	np = x3.And(c)
	nm = xh.And(c)
	return np, nm
}
