// Package window implements the window-8 precomputed scalar-multiplication
// table of §4.9: table[row][byte] = (byte · 2^(8·row)) · G for 32 rows of
// 256 entries. Building it trades ~35 minutes of one-shot work (per the
// reference implementation) for 32 table lookups and 31 additions on every
// subsequent multiply by G, instead of ~256 doublings and ~128 additions.
//
// The original source also carried a window-4 variant (initialize_window4)
// that its own comments call out as "less efficient... I do not use it" —
// dead weight not reproduced here; window-8 is the only table this package
// builds.
package window

import "pkc.mleku.dev/group/curve25519"

const (
	rows         = 32
	entriesPerRow = 256
)

// Table is a one-shot-built, read-only lookup table for multiplying a fixed
// base point by an arbitrary 256-bit scalar. Once BuildTable returns, a
// Table is safe for concurrent use by any number of goroutines: nothing
// about it ever mutates again.
type Table struct {
	rows [rows][entriesPerRow]curve25519.Point
}

// BuildTable constructs the window-8 table for base point g. Row i holds
// j·(2^(8i))·g for j in [0,256); each row's base is obtained by doubling
// the previous row's base 8 times.
func BuildTable(g curve25519.Point) *Table {
	var t Table
	rowBase := g
	for i := 0; i < rows; i++ {
		acc := curve25519.Identity()
		t.rows[i][0] = acc
		for j := 1; j < entriesPerRow; j++ {
			acc = acc.Add(rowBase).(curve25519.Point)
			t.rows[i][j] = acc
		}
		for b := 0; b < 8; b++ {
			rowBase = rowBase.Double().(curve25519.Point)
		}
	}
	return &t
}

// Mul computes s·G for the table's base point G, given a 32-byte
// little-endian scalar: s·G = Σ_{i=0..31} table[i][b_i].
func (t *Table) Mul(scalarLE [32]byte) curve25519.Point {
	res := curve25519.Identity()
	for i := 0; i < rows; i++ {
		res = res.Add(t.rows[i][scalarLE[i]]).(curve25519.Point)
	}
	return res
}
