// Package group hosts the scalar-multiplication engine shared by every
// curve form in this module. Each curve lives in its own sub-package
// (secp256k1, curve25519, ed25519, ed25519/proj) and supplies a Point
// implementation; this package never constructs curve points itself.
package group

import (
	"pkc.mleku.dev/field"
	"pkc.mleku.dev/uint512"
)

// Point is the capability every curve-specific point type exposes so a
// single scalar multiplier can drive all three curve forms without knowing
// which one it is looking at.
type Point interface {
	Add(Point) Point
	Double() Point
	Negate() Point
	IsIdentity() bool
}

// Curve supplies the one thing a Point value cannot produce on its own: the
// additive identity for its group.
type Curve interface {
	Identity() Point
}

// Mul computes s*p using the mutual-NAF double-and-add-always loop: a fixed
// 257 iterations regardless of s, with a dummy addition on zero digits to
// even out the timing profile of the real branch. 257, not 256: the mutual
// NAF recoding (x3 = s + s>>1) can carry into bit 256 for scalars near a
// 256-bit group order such as secp256k1's, so the 256th iteration's digit
// must still be folded in or the reconstructed sum comes out short. Every
// curve form in this module drives its ScalarMul through this single
// engine.
func Mul(curve Curve, p Point, s uint512.U512) Point {
	np, nm := field.NAF(s)
	res := curve.Identity()
	mult := p
	dummy := p

	for i := 0; i < 257; i++ {
		switch {
		case np.Bit(0) == 1:
			res = res.Add(mult)
		case nm.Bit(0) == 1:
			res = res.Add(mult.Negate())
		default:
			dummy = dummy.Add(mult)
		}
		np = np.Shr(1)
		nm = nm.Shr(1)
		mult = mult.Double()
	}

	_ = dummy
	return res
}
