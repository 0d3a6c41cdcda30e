package zkp

import (
	"testing"

	"pkc.mleku.dev/uint512"
)

type counterRand struct{ n uint64 }

func (c *counterRand) Read(p []byte) (int, error) {
	for i := range p {
		c.n = c.n*6364136223846793005 + 1442695040888963407
		p[i] = byte(c.n >> 56)
	}
	return len(p), nil
}

func TestProveVerifyRoundTrip(t *testing.T) {
	rnd := &counterRand{n: 1}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	y := DeriveY(x, n)

	tr, err := Prove(rnd, x, y, n)
	if err != nil {
		t.Fatalf("prove failed: %v", err)
	}
	if !Verify(y, n, tr) {
		t.Fatal("expected proof to verify")
	}
}

func TestProvePanicsOnMismatchedY(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for y != x^2 mod n")
		}
	}()
	rnd := &counterRand{n: 1}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	wrongY := uint512.FromU32(99)
	_, _ = Prove(rnd, x, wrongY, n)
}

func TestVerifyRejectsTamperedTranscript(t *testing.T) {
	rnd := &counterRand{n: 3}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	y := DeriveY(x, n)

	tr, err := Prove(rnd, x, y, n)
	if err != nil {
		t.Fatalf("prove failed: %v", err)
	}
	tr.rounds[0].resp.Z = tr.rounds[0].resp.Z.Add(uint512.One())
	if Verify(y, n, tr) {
		t.Fatal("expected tampered transcript to fail verification")
	}
}

func TestVerifyRejectsWrongY(t *testing.T) {
	rnd := &counterRand{n: 4}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	y := DeriveY(x, n)

	tr, err := Prove(rnd, x, y, n)
	if err != nil {
		t.Fatalf("prove failed: %v", err)
	}
	otherY := DeriveY(uint512.FromU32(18), n)
	if Verify(otherY, n, tr) {
		t.Fatal("expected proof for a different y to fail verification")
	}
}

func TestCommitChallengeRespondDirectly(t *testing.T) {
	rnd := &counterRand{n: 5}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	y := DeriveY(x, n)

	for i := 0; i < Rounds; i++ {
		r, c, err := Commit(rnd, n)
		if err != nil {
			t.Fatalf("commit failed: %v", err)
		}
		b, err := Challenge(rnd)
		if err != nil {
			t.Fatalf("challenge failed: %v", err)
		}
		resp := Respond(r, x, n, b)
		if !VerifyRound(y, n, c, b, resp) {
			t.Fatalf("round %d failed to verify", i)
		}
	}
}

func TestHashTranscriptDeterministic(t *testing.T) {
	rnd := &counterRand{n: 6}
	n := uint512.FromU32(1223).Mul(uint512.FromU32(1987))
	x := uint512.FromU32(17)
	y := DeriveY(x, n)

	tr, err := Prove(rnd, x, y, n)
	if err != nil {
		t.Fatalf("prove failed: %v", err)
	}
	h1 := HashTranscript(y, n, tr)
	h2 := HashTranscript(y, n, tr)
	if h1 != h2 {
		t.Fatal("expected hashing the same transcript twice to be deterministic")
	}
}
