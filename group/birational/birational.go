// Package birational implements the rational change of coordinates between
// Curve25519 (Montgomery) and Ed25519 (twisted Edwards) points, per §4.8.
// It lives in its own package, separate from both curve25519 and ed25519,
// since the map needs both point types and either curve package importing
// the other directly would form a cycle.
package birational

import (
	"pkc.mleku.dev/group/curve25519"
	"pkc.mleku.dev/group/ed25519"
	"pkc.mleku.dev/group/gf25519"
	"pkc.mleku.dev/uint512"
)

// SF is the isomorphism factor sqrt(-486664) mod p_25519 relating the two
// curve models.
var SF uint512.U512

func init() {
	minusAPlus2 := gf25519.Sub(uint512.Zero(), uint512.FromU32(486664))
	sf, ok := gf25519.Sqrt(minusAPlus2)
	if !ok {
		panic("birational: -486664 is not a square mod p_25519")
	}
	SF = sf
}

// MontgomeryToEdwards maps a Curve25519 point (u, v) to the corresponding
// Ed25519 point (x, y): y = (u-1)/(u+1), x = sf·u/v.
func MontgomeryToEdwards(p curve25519.Point) ed25519.Point {
	if p.Infinity {
		return ed25519.Identity()
	}
	y := gf25519.Mul(gf25519.Sub(p.X, uint512.One()), gf25519.Inv(gf25519.Add(p.X, uint512.One())))
	x := gf25519.Mul(gf25519.Mul(SF, p.X), gf25519.Inv(p.Y))
	return ed25519.Point{X: x, Y: y}
}

// EdwardsToMontgomery maps an Ed25519 point (x, y) to the corresponding
// Curve25519 point (u, v): u = (1+y)/(1-y), v = sf·u/x.
func EdwardsToMontgomery(p ed25519.Point) curve25519.Point {
	if p.IsIdentity() {
		return curve25519.Identity()
	}
	u := gf25519.Mul(gf25519.Add(uint512.One(), p.Y), gf25519.Inv(gf25519.Sub(uint512.One(), p.Y)))
	v := gf25519.Mul(gf25519.Mul(SF, u), gf25519.Inv(p.X))
	return curve25519.Point{X: u, Y: v}
}
