// Package proj implements the extended projective representation of
// Ed25519 points: {X, Y, Z, T} with x=X/Z, y=Y/Z, x·y=T/Z. This avoids a
// field inversion on every addition during scalar multiplication; only the
// final re-projection to affine pays for one.
//
// The original source's projective.add mixed up which operands fed which
// term (the same (t*z)+(z*t) expression reused across unrelated terms —
// §9 REDESIGN FLAG #2). This implementation instead uses "add-2008-hwcd",
// the unified addition formula for twisted-Edwards curves from the standard
// explicit-formulas database, specialised to a=-1, verified against the affine
// reference in the test suite.
package proj

import (
	"pkc.mleku.dev/group"
	"pkc.mleku.dev/group/ed25519"
	"pkc.mleku.dev/group/gf25519"
	"pkc.mleku.dev/uint512"
)

// Point is an Ed25519 point in extended projective coordinates.
type Point struct {
	X, Y, Z, T uint512.U512
}

// Identity is (0, 1, 1, 0).
func Identity() Point {
	return Point{X: uint512.Zero(), Y: uint512.One(), Z: uint512.One(), T: uint512.Zero()}
}

// IsIdentity reports whether p represents the affine point (0, 1).
func (p Point) IsIdentity() bool { return p.ToAffine().IsIdentity() }

// FromAffine lifts an affine point into extended coordinates.
func FromAffine(a ed25519.Point) Point {
	return Point{X: a.X, Y: a.Y, Z: uint512.One(), T: gf25519.Mul(a.X, a.Y)}
}

// ToAffine projects back down via (X/Z, Y/Z).
func (p Point) ToAffine() ed25519.Point {
	zInv := gf25519.Inv(p.Z)
	return ed25519.Point{X: gf25519.Mul(p.X, zInv), Y: gf25519.Mul(p.Y, zInv)}
}

// Add implements add-2008-hwcd with a=-1, which is unified: it is correct for
// P != Q and for doubling (P == Q) alike, so no separate branch is needed.
func (p Point) Add(other group.Point) group.Point {
	q := other.(Point)
	a := gf25519.Mul(p.X, q.X)
	b := gf25519.Mul(p.Y, q.Y)
	c := gf25519.Mul(ed25519.D, gf25519.Mul(p.T, q.T))
	d := gf25519.Mul(p.Z, q.Z)
	e := gf25519.Sub(gf25519.Mul(gf25519.Add(p.X, p.Y), gf25519.Add(q.X, q.Y)), gf25519.Add(a, b))
	f := gf25519.Sub(d, c)
	g := gf25519.Add(d, c)
	h := gf25519.Add(b, a) // H = B - a*A with a=-1, i.e. B+A.

	return Point{
		X: gf25519.Mul(e, f),
		Y: gf25519.Mul(g, h),
		Z: gf25519.Mul(f, g),
		T: gf25519.Mul(e, h),
	}
}

// Double returns 2p using the same unified formula as Add.
func (p Point) Double() group.Point { return p.Add(p) }

// Negate returns -p: x ↦ p - x (and t ↦ -t to stay consistent with x·y=T/Z).
func (p Point) Negate() group.Point {
	return Point{
		X: gf25519.Sub(uint512.Zero(), p.X),
		Y: p.Y,
		Z: p.Z,
		T: gf25519.Sub(uint512.Zero(), p.T),
	}
}

type curveAdapter struct{}

func (curveAdapter) Identity() group.Point { return Identity() }

// ScalarMul computes s*p via the shared mutual-NAF double-and-add-always
// engine in package group.
func ScalarMul(p Point, s uint512.U512) Point {
	return group.Mul(curveAdapter{}, p, s).(Point)
}
