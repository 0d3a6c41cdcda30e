// Package gf25519 holds the field arithmetic shared by curve25519 and
// ed25519: both curves live over the same prime p = 2^255-19, and both
// derive their generator coordinates with the same p≡5(mod 8) square-root
// routine. Consolidating it here mirrors §9's "shared private helpers"
// note: the original sources recomputed this per-crate, once for the
// Montgomery side and once for the Edwards side.
package gf25519

import "pkc.mleku.dev/uint512"

// Prime is 2^255 - 19.
var Prime uint512.U512

// sqrtM1 is a square root of -1 mod Prime, used to correct the candidate
// root produced by Sqrt when the prime is only 5 mod 8 rather than 3 mod 4.
var sqrtM1 uint512.U512

func init() {
	Prime = uint512.One().Shl(255).Sub(uint512.FromU32(19))
	// sqrtM1 = 2^((p-1)/4) mod p.
	exp := Prime.Sub(uint512.One()).Shr(2)
	sqrtM1 = powMod(uint512.FromU32(2), exp)
}

// powMod is a local copy of square-and-multiply modulo Prime, used both to
// compute sqrtM1 at init and by Sqrt. Unlike field.ModExp it has no g=0
// special case.
func powMod(g, e uint512.U512) uint512.U512 {
	result := uint512.One()
	base := g.Rem(Prime)
	for !e.IsZero() {
		if e.Bit(0) == 1 {
			result = result.Mul(base).Rem(Prime)
		}
		e = e.Shr(1)
		base = base.Mul(base).Rem(Prime)
	}
	return result
}

// Add returns a+b mod Prime.
func Add(a, b uint512.U512) uint512.U512 { return a.Add(b).Rem(Prime) }

// Sub returns a-b mod Prime, wrapping into [0, Prime).
func Sub(a, b uint512.U512) uint512.U512 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return Prime.Sub(b.Sub(a))
}

// Mul returns a*b mod Prime.
func Mul(a, b uint512.U512) uint512.U512 { return a.Mul(b).Rem(Prime) }

// Inv returns the multiplicative inverse of a mod Prime.
func Inv(a uint512.U512) uint512.U512 { return modInv(a, Prime) }

// modInv is field.ModInv inlined to avoid an import cycle risk while this
// package bootstraps curve constants at init time; field.ModInv is the
// canonical copy every scheme package calls through.
func modInv(e, p uint512.U512) uint512.U512 {
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
		panic("gf25519: modInv called with non-coprime arguments")
	}
	result := tMag.Rem(p)
	if tNeg && !result.IsZero() {
		return p.Sub(result)
	}
	return result
}

func signedAdd(aMag uint512.U512, aNeg bool, bMag uint512.U512, bNeg bool) (uint512.U512, bool) {
	if aNeg == bNeg {
		return aMag.Add(bMag), aNeg
	}
	if aMag.Cmp(bMag) >= 0 {
		return aMag.Sub(bMag), aNeg
	}
	return bMag.Sub(aMag), bNeg
}

// Sqrt returns a square root of a mod Prime and reports whether one exists.
// Prime is 5 mod 8, so the candidate a^((p+3)/8) is corrected by sqrtM1
// when it turns out to be a root of -a rather than a.
func Sqrt(a uint512.U512) (uint512.U512, bool) {
	a = a.Rem(Prime)
	if a.IsZero() {
		return uint512.Zero(), true
	}
	exp := Prime.Add(uint512.FromU32(3)).Shr(3)
	x := powMod(a, exp)
	if Mul(x, x).Equal(a) {
		return x, true
	}
	negA := Sub(uint512.Zero(), a)
	if Mul(x, x).Equal(negA) {
		return Mul(x, sqrtM1), true
	}
	return uint512.Zero(), false
}
