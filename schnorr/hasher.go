// Package schnorr implements Schnorr signatures over secp256k1, per §4.10,
// consuming a Hasher as an opaque external collaborator exactly as §1
// scopes it: "a pre-existing hasher as an opaque byte-sink".
package schnorr

import sha256simd "github.com/minio/sha256-simd"

// Hasher is the external collaborator the Schnorr scheme hashes through:
// update with bytes, then finalize to a 32-byte digest. Modeled on the
// teacher's own hash.go wrapper around the same sha256-simd package.
type Hasher interface {
	Update(b []byte)
	Finalize() [32]byte
}

// sha256Hasher adapts sha256-simd to the Hasher interface.
type sha256Hasher struct {
	h interface {
		Write([]byte) (int, error)
		Sum([]byte) []byte
	}
}

// NewSHA256Hasher returns a fresh Hasher backed by sha256-simd, the
// teacher's own wired hashing dependency.
func NewSHA256Hasher() Hasher {
	return &sha256Hasher{h: sha256simd.New()}
}

func (s *sha256Hasher) Update(b []byte) { s.h.Write(b) }

func (s *sha256Hasher) Finalize() [32]byte {
	sum := s.h.Sum(nil)
	var out [32]byte
	copy(out[:], sum)
	return out
}
