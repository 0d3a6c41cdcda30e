// Package secp256k1 implements short-Weierstrass point arithmetic for the
// curve y² = x³ + 7 over the secp256k1 field, the curve underlying the
// teacher library's field.go/group.go pair — rebuilt here over the
// module-wide uint512.U512 substrate instead of a curve-specific 5x52-limb
// representation, so the same scalar-multiplication engine in package
// group can drive this curve alongside Curve25519 and Ed25519.
package secp256k1

import (
	"pkc.mleku.dev/field"
	"pkc.mleku.dev/group"
	"pkc.mleku.dev/uint512"
)

// Prime is the secp256k1 field modulus, 2^256 - 2^32 - 977.
var Prime uint512.U512

// Order is the order n of the generator subgroup.
var Order uint512.U512

// B is the curve coefficient (a=0, b=7).
var B = uint512.FromU32(7)

// Generator is the standard base point.
var Generator Point

func init() {
	Prime = uint512.FromBytesBE([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE, 0xFF, 0xFF, 0xFC, 0x2F,
	})
	Order = uint512.FromBytesBE([]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
		0xBA, 0xAE, 0xDC, 0xE6, 0xAF, 0x48, 0xA0, 0x3B, 0xBF, 0xD2, 0x5E, 0x8C, 0xD0, 0x36, 0x41, 0x41,
	})
	gx := uint512.FromBytesBE([]byte{
		0x79, 0xBE, 0x66, 0x7E, 0xF9, 0xDC, 0xBB, 0xAC, 0x55, 0xA0, 0x62, 0x95, 0xCE, 0x87, 0x0B, 0x07,
		0x02, 0x9B, 0xFC, 0xDB, 0x2D, 0xCE, 0x28, 0xD9, 0x59, 0xF2, 0x81, 0x5B, 0x16, 0xF8, 0x17, 0x98,
	})
	gy := uint512.FromBytesBE([]byte{
		0x48, 0x3A, 0xDA, 0x77, 0x26, 0xA3, 0xC4, 0x65, 0x5D, 0xA4, 0xFB, 0xFC, 0x0E, 0x11, 0x08, 0xA8,
		0xFD, 0x17, 0xB4, 0x48, 0xA6, 0x85, 0x54, 0x19, 0x9C, 0x47, 0xD0, 0x8F, 0xFB, 0x10, 0xD4, 0xB8,
	})
	Generator = Point{X: gx, Y: gy}
}

func fAdd(a, b uint512.U512) uint512.U512 { return a.Add(b).Rem(Prime) }

func fSub(a, b uint512.U512) uint512.U512 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return Prime.Sub(b.Sub(a))
}

func fMul(a, b uint512.U512) uint512.U512 { return a.Mul(b).Rem(Prime) }

func fInv(a uint512.U512) uint512.U512 { return field.ModInv(a, Prime) }

// Point is a secp256k1 point in short-Weierstrass affine form.
type Point struct {
	X, Y     uint512.U512
	Infinity bool
}

// Identity is the point at infinity.
func Identity() Point { return Point{Infinity: true} }

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool { return p.Infinity }

// Negate returns -p: y ↦ p - y.
func (p Point) Negate() group.Point {
	if p.Infinity {
		return p
	}
	return Point{X: p.X, Y: fSub(uint512.Zero(), p.Y)}
}

// IsOnCurve reports whether p satisfies y² = x³ + 7 mod Prime.
func (p Point) IsOnCurve() bool {
	if p.Infinity {
		return true
	}
	lhs := fMul(p.Y, p.Y)
	rhs := fAdd(fMul(fMul(p.X, p.X), p.X), B)
	return lhs.Equal(rhs)
}

// Add implements the canonical Weierstrass addition of §4.4: λ(x1-x3)-y1
// for y3, with no operator-precedence ambiguity (§9 REDESIGN FLAG #3).
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
		return Identity()
	}

	lambda := fMul(fSub(q.Y, p.Y), fInv(fSub(q.X, p.X)))
	x3 := fSub(fSub(fMul(lambda, lambda), p.X), q.X)
	y3 := fSub(fMul(lambda, fSub(p.X, x3)), p.Y)
	return Point{X: x3, Y: y3}
}

// Double implements the §4.4 doubling slope λ = 3x₁²/2y₁.
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
	lambda := fMul(fMul(three, fMul(p.X, p.X)), fInv(fMul(two, p.Y)))
	x3 := fSub(fSub(fMul(lambda, lambda), p.X), p.X)
	y3 := fSub(fMul(lambda, fSub(p.X, x3)), p.Y)
	return Point{X: x3, Y: y3}
}

type curveAdapter struct{}

func (curveAdapter) Identity() group.Point { return Identity() }

// ScalarMul computes s*p via the shared mutual-NAF double-and-add-always
// engine in package group.
func ScalarMul(p Point, s uint512.U512) Point {
	return group.Mul(curveAdapter{}, p, s).(Point)
}
