package window

import (
	"testing"

	"pkc.mleku.dev/group/curve25519"
	"pkc.mleku.dev/uint512"
)

// deterministicScalar derives a full 32-byte little-endian scalar from seed,
// a stand-in for "random 32-byte little-endian scalars" (§8): every byte is
// filled (not just the low end), so the comparison actually exercises every
// table row, including the high rows that a small-magnitude scalar never
// touches. The top bit is cleared to stay below 2^255, matching the
// convention curve25519/ed25519 scalars use.
func deterministicScalar(seed uint64) uint512.U512 {
	var b [32]byte
	x := seed
	for i := range b {
		x = x*6364136223846793005 + 1442695040888963407
		b[i] = byte(x >> 56)
	}
	b[31] &= 0x7f
	return uint512.FromBytesLE(b[:])
}

func TestWindowedMulMatchesScalarMul(t *testing.T) {
	table := BuildTable(curve25519.Generator)

	for k := uint64(1); k <= 100; k++ {
		s := deterministicScalar(k)
		want := curve25519.ScalarMul(curve25519.Generator, s)
		got := table.Mul(s.Bytes32LE())

		if want.Infinity != got.Infinity {
			t.Fatalf("scalar %d: infinity mismatch", k)
		}
		if !want.Infinity && (!want.X.Equal(got.X) || !want.Y.Equal(got.Y)) {
			t.Fatalf("scalar %d: windowed table disagrees with ScalarMul", k)
		}
	}
}

func TestTableBaseRowMatchesGenerator(t *testing.T) {
	table := BuildTable(curve25519.Generator)
	row0Entry1 := table.rows[0][1]
	if !row0Entry1.X.Equal(curve25519.Generator.X) || !row0Entry1.Y.Equal(curve25519.Generator.Y) {
		t.Fatal("table[0][1] should equal the base point itself")
	}
}
