// Package curve25519 implements the full-affine Montgomery form of
// Curve25519: y² = x³ + 486662x² + x over p = 2^255-19. Unlike the common
// x-only Montgomery ladder, every point here carries an explicit
// y-coordinate, matching the reference implementation this module is
// built from.
package curve25519

import (
	"pkc.mleku.dev/group"
	"pkc.mleku.dev/group/gf25519"
	"pkc.mleku.dev/uint512"
)

// A is the Montgomery curve coefficient.
var A = uint512.FromU32(486662)

// Prime is the field modulus, 2^255-19.
var Prime = gf25519.Prime

// Point is a Curve25519 point in full affine (x, y) form.
type Point struct {
	X, Y     uint512.U512
	Infinity bool
}

// Generator is the canonical base point (9, Y) where Y is the even-parity
// y-coordinate satisfying the curve equation at x=9, per RFC 7748.
var Generator Point

func init() {
	x := uint512.FromU32(9)
	rhs := gf25519.Add(gf25519.Add(cube(x), gf25519.Mul(A, gf25519.Mul(x, x))), x)
	y, ok := gf25519.Sqrt(rhs)
	if !ok {
		panic("curve25519: generator x=9 is not on the curve")
	}
	// Canonical even-parity root per RFC 7748.
	if y.Bit(0) == 1 {
		y = gf25519.Sub(uint512.Zero(), y)
	}
	Generator = Point{X: x, Y: y}
}

func cube(x uint512.U512) uint512.U512 { return gf25519.Mul(gf25519.Mul(x, x), x) }

// Identity is the point at infinity, the additive identity of the group.
func Identity() Point { return Point{Infinity: true} }

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.Infinity }

// Negate returns -p: y ↦ p - y.
func (p Point) Negate() group.Point {
	if p.Infinity {
		return p
	}
	return Point{X: p.X, Y: gf25519.Sub(uint512.Zero(), p.Y)}
}

// IsOnCurve reports whether p satisfies y² = x³ + A·x² + x mod Prime.
func (p Point) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := gf25519.Mul(p.Y, p.Y)
	rhs := gf25519.Add(gf25519.Add(cube(p.X), gf25519.Mul(A, gf25519.Mul(p.X, p.X))), p.X)
	return lhs.Equal(rhs)
}

// Add implements §4.5's Montgomery point addition, handling the identity
// and mutual-inverse edge cases before falling back to the slope formula.
func (p Point) Add(other group.Point) group.Point {
	q := other.(Point)
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return p.double()
		}
		// P + (-P) = identity: either the y's differ by negation, or one
		// of them is the curve's own y=0 2-torsion point.
		return Identity()
	}

	num := gf25519.Sub(q.Y, p.Y)
	den := gf25519.Sub(q.X, p.X)
	lambda := gf25519.Mul(num, gf25519.Inv(den))

	x3 := gf25519.Sub(gf25519.Sub(gf25519.Mul(lambda, lambda), A), gf25519.Add(p.X, q.X))
	y3 := gf25519.Sub(gf25519.Mul(lambda, gf25519.Add(gf25519.Add(p.X, p.X), gf25519.Add(q.X, A))), gf25519.Mul(lambda, gf25519.Mul(lambda, lambda)))
	y3 = gf25519.Sub(y3, p.Y)
	return Point{X: x3, Y: y3}
}

// Double implements the doubling branch of §4.5.
func (p Point) Double() group.Point { return p.double() }

func (p Point) double() Point {
	if p.Infinity {
		return p
	}
	if p.Y.IsZero() {
		return Identity()
	}
	three := uint512.FromU32(3)
	two := uint512.FromU32(2)
	num := gf25519.Add(gf25519.Mul(three, gf25519.Mul(p.X, p.X)), gf25519.Add(gf25519.Mul(two, gf25519.Mul(A, p.X)), uint512.One()))
	den := gf25519.Mul(two, p.Y)
	lambda := gf25519.Mul(num, gf25519.Inv(den))

	x3 := gf25519.Sub(gf25519.Sub(gf25519.Mul(lambda, lambda), A), gf25519.Add(p.X, p.X))
	y3 := gf25519.Sub(gf25519.Mul(lambda, gf25519.Add(gf25519.Add(p.X, p.X), gf25519.Add(p.X, A))), gf25519.Mul(lambda, gf25519.Mul(lambda, lambda)))
	y3 = gf25519.Sub(y3, p.Y)
	return Point{X: x3, Y: y3}
}

// curveAdapter satisfies group.Curve so group.Mul can drive ScalarMul below.
type curveAdapter struct{}

func (curveAdapter) Identity() group.Point { return Identity() }

// ScalarMul computes s*p via the shared mutual-NAF double-and-add-always
// engine in package group.
func ScalarMul(p Point, s uint512.U512) Point {
	return group.Mul(curveAdapter{}, p, s).(Point)
}
