// Package ed25519 implements affine twisted-Edwards point arithmetic for
// the curve -x² + y² = 1 + d·x²·y² over p = 2^255-19.
package ed25519

import (
	"pkc.mleku.dev/group"
	"pkc.mleku.dev/group/gf25519"
	"pkc.mleku.dev/uint512"
)

// Prime is the field modulus, 2^255-19.
var Prime = gf25519.Prime

// D is the Edwards curve coefficient, -121665/121666 mod Prime.
var D uint512.U512

// Generator is the canonical Ed25519 base point from RFC 8032.
var Generator Point

func init() {
	num := gf25519.Sub(uint512.Zero(), uint512.FromU32(121665))
	den := gf25519.Inv(uint512.FromU32(121666))
	D = gf25519.Mul(num, den)

	// By = 4/5 mod p per RFC 8032; Bx is the non-negative root of
	// x² = (y²-1)/(1+d·y²).
	y := gf25519.Mul(uint512.FromU32(4), gf25519.Inv(uint512.FromU32(5)))
	y2 := gf25519.Mul(y, y)
	xNum := gf25519.Sub(y2, uint512.One())
	xDen := gf25519.Add(uint512.One(), gf25519.Mul(D, y2))
	x2 := gf25519.Mul(xNum, gf25519.Inv(xDen))
	x, ok := gf25519.Sqrt(x2)
	if !ok {
		panic("ed25519: generator y-coordinate does not correspond to a point on the curve")
	}
	if x.Bit(0) == 1 {
		x = gf25519.Sub(uint512.Zero(), x)
	}
	Generator = Point{X: x, Y: y}
}

// Point is an Ed25519 point in affine (x, y) form. The identity is (0, 1).
type Point struct {
	X, Y uint512.U512
}

// Identity returns the curve's additive identity, (0, 1).
func Identity() Point { return Point{X: uint512.Zero(), Y: uint512.One()} }

// IsIdentity reports whether p is the point (0, 1).
func (p Point) IsIdentity() bool { return p.X.IsZero() && p.Y.Equal(uint512.One()) }

// Negate returns -p: x ↦ p - x.
func (p Point) Negate() group.Point {
	return Point{X: gf25519.Sub(uint512.Zero(), p.X), Y: p.Y}
}

// IsOnCurve reports whether p satisfies -x²+y² = 1+d·x²·y² mod Prime.
func (p Point) IsOnCurve() bool {
	x2 := gf25519.Mul(p.X, p.X)
	y2 := gf25519.Mul(p.Y, p.Y)
	lhs := gf25519.Sub(y2, x2)
	rhs := gf25519.Add(uint512.One(), gf25519.Mul(D, gf25519.Mul(x2, y2)))
	return lhs.Equal(rhs)
}

// Add implements the §4.6 twisted-Edwards addition law. The curve's
// complete formula needs no identity or doubling branch — the algebra
// already handles (0,1) and P=Q — but doubling is split out as its own
// method for parity with the other two curve forms' API shape.
func (p Point) Add(other group.Point) group.Point {
	q := other.(Point)
	x1y2 := gf25519.Mul(p.X, q.Y)
	y1x2 := gf25519.Mul(p.Y, q.X)
	y1y2 := gf25519.Mul(p.Y, q.Y)
	x1x2 := gf25519.Mul(p.X, q.X)
	dx1x2y1y2 := gf25519.Mul(D, gf25519.Mul(x1x2, y1y2))

	x3 := gf25519.Mul(gf25519.Add(x1y2, y1x2), gf25519.Inv(gf25519.Add(uint512.One(), dx1x2y1y2)))
	y3 := gf25519.Mul(gf25519.Add(y1y2, x1x2), gf25519.Inv(gf25519.Sub(uint512.One(), dx1x2y1y2)))
	return Point{X: x3, Y: y3}
}

// Double returns 2p, by substitution into the same addition law.
func (p Point) Double() group.Point { return p.Add(p) }

type curveAdapter struct{}

func (curveAdapter) Identity() group.Point { return Identity() }

// ScalarMul computes s*p via the shared mutual-NAF double-and-add-always
// engine in package group.
func ScalarMul(p Point, s uint512.U512) Point {
	return group.Mul(curveAdapter{}, p, s).(Point)
}
