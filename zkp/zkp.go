// Package zkp implements the interactive quadratic-residue zero-knowledge
// proof of §4.10: a 100-round Σ-protocol (commitment/challenge/response)
// proving knowledge of x such that x² ≡ y (mod N) without revealing x.
package zkp

import (
	"errors"
	"io"

	"pkc.mleku.dev/field"
	"pkc.mleku.dev/uint512"
)

// Rounds is the fixed number of commitment/challenge/response rounds the
// protocol runs; rejection at any round fails the whole proof.
const Rounds = 100

// Commitment is the prover's first message of a round: s = r² mod N.
type Commitment struct {
	S uint512.U512
}

// Response is the prover's reply to a round's challenge bit.
type Response struct {
	Z uint512.U512
}

func randomBelow(rnd io.Reader, modulus uint512.U512) (uint512.U512, error) {
	var buf [32]byte
	for i := 0; i < 256; i++ {
		if _, err := io.ReadFull(rnd, buf[:]); err != nil {
			return uint512.U512{}, err
		}
		v := uint512.FromBytesBE(buf[:]).Rem(modulus)
		if !v.IsZero() {
			return v, nil
		}
	}
	return uint512.U512{}, errors.New("zkp: failed to draw a nonzero commitment randomizer")
}

// Commit draws a fresh randomizer r below n and returns it together with
// the commitment s = r² mod n the prover publishes.
func Commit(rnd io.Reader, n uint512.U512) (r uint512.U512, c Commitment, err error) {
	r, err = randomBelow(rnd, n)
	if err != nil {
		return uint512.U512{}, Commitment{}, err
	}
	c = Commitment{S: r.Mul(r).Rem(n)}
	return r, c, nil
}

// Challenge draws a single random bit, the verifier's half of the round.
func Challenge(rnd io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(rnd, b[:]); err != nil {
		return false, err
	}
	return b[0]&1 == 1, nil
}

// Respond answers a round's challenge: z = r if b is false, z = r·x mod n
// if b is true.
func Respond(r, x, n uint512.U512, b bool) Response {
	if !b {
		return Response{Z: r}
	}
	return Response{Z: r.Mul(x).Rem(n)}
}

// VerifyRound checks a single round: z² ≡ s (mod n) when b is false, else
// z² ≡ y·s (mod n).
func VerifyRound(y, n uint512.U512, c Commitment, b bool, resp Response) bool {
	z2 := resp.Z.Mul(resp.Z).Rem(n)
	if !b {
		return z2.Equal(c.S)
	}
	return z2.Equal(y.Mul(c.S).Rem(n))
}

// round is one completed round of the transcript, kept for Verify to replay
// without needing the prover's secret.
type round struct {
	c    Commitment
	b    bool
	resp Response
}

// Transcript is a completed run of the protocol, replayable by Verify.
type Transcript struct {
	rounds [Rounds]round
}

// Prove runs the full Rounds-round protocol in-process (the prover and
// verifier halves both execute here since the library has no network
// transport per §1's explicit non-goals), given public N, public y = x²
// mod N, and the prover's secret x. It panics if y does not actually equal
// x² mod N, since that is a contract violation by the caller, not a
// semantic proof failure.
func Prove(rnd io.Reader, x, y, n uint512.U512) (Transcript, error) {
	if !x.Mul(x).Rem(n).Equal(y) {
		panic("zkp: y must equal x^2 mod n")
	}
	var t Transcript
	for i := 0; i < Rounds; i++ {
		r, c, err := Commit(rnd, n)
		if err != nil {
			return Transcript{}, err
		}
		b, err := Challenge(rnd)
		if err != nil {
			return Transcript{}, err
		}
		resp := Respond(r, x, n, b)
		t.rounds[i] = round{c: c, b: b, resp: resp}
	}
	return t, nil
}

// Verify replays every round of t against public y and n, accepting only if
// every round's check passes.
func Verify(y, n uint512.U512, t Transcript) bool {
	for _, rd := range t.rounds {
		if !VerifyRound(y, n, rd.c, rd.b, rd.resp) {
			return false
		}
	}
	return true
}

// DeriveY is a convenience for computing the public y = x² mod n a prover
// publishes alongside N.
func DeriveY(x, n uint512.U512) uint512.U512 {
	return field.ModExp(x, uint512.FromU32(2), n)
}
