package zkp

import (
	sha256simd "github.com/minio/sha256-simd"

	"pkc.mleku.dev/uint512"
)

// HashTranscript folds a completed Transcript together with the public N
// and y into a single 32-byte digest, a convenience for callers who want a
// compact fingerprint of a proof run (e.g. for logging or deduplication)
// rather than storing every round verbatim.
func HashTranscript(y, n uint512.U512, t Transcript) [32]byte {
	h := sha256simd.New()
	h.Write([]byte(y.DecimalString()))
	h.Write([]byte(n.DecimalString()))
	for _, rd := range t.rounds {
		h.Write([]byte(rd.c.S.DecimalString()))
		if rd.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
		h.Write([]byte(rd.resp.Z.DecimalString()))
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
