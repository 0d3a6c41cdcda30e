// Package rsa implements textbook RSA encryption and signing over the
// uint512 substrate: derive_pubkey/encrypt/decrypt/sign/verify per §4.10,
// folding in the original source's separate rsa_dsa crate as Sign/Verify
// on the same key material.
package rsa

import (
	"pkc.mleku.dev/field"
	"pkc.mleku.dev/uint512"
)

// DerivePubkey returns the public modulus N=p*q and echoes e back,
// confirming the RSA precondition: e must be coprime to φ(N)=(p-1)(q-1),
// and p, q must both pass the Fermat witness check. Either violation is a
// contract violation and panics rather than returning an error.
func DerivePubkey(p, q, e uint512.U512) (n, pubE uint512.U512) {
	if !field.FLT(p) || !field.FLT(q) {
		t := "rsa: p and q must both be (probable) primes"
		panic(t)
	}
	phi := p.Sub(uint512.One()).Mul(q.Sub(uint512.One()))
	if !field.GCD(e, phi).Equal(uint512.One()) {
		panic("rsa: e must be coprime to (p-1)(q-1)")
	}
	return p.Mul(q), e
}

// Encrypt computes m^e mod N.
func Encrypt(m, n, e uint512.U512) uint512.U512 {
	return field.ModExp(m, e, n)
}

// Decrypt computes c^(e⁻¹ mod φ(N)) mod N using the prime factors.
func Decrypt(c, p, q, e uint512.U512) uint512.U512 {
	phi := p.Sub(uint512.One()).Mul(q.Sub(uint512.One()))
	d := field.ModInv(e, phi)
	return field.ModExp(c, d, p.Mul(q))
}

// Sign produces a signature over digest d using the private factors,
// identical machinery to Decrypt (RSA signing and decryption are the same
// operation on the same keypair).
func Sign(digest, p, q, e uint512.U512) uint512.U512 {
	return Decrypt(digest, p, q, e)
}

// Verify reports whether signature s is a valid RSA signature over digest
// d under public key (n, e).
func Verify(s, n, e, digest uint512.U512) bool {
	return Encrypt(s, n, e).Equal(digest)
}
