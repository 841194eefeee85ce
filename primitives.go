package scdrbg

import (
	"hash"

	"golang.org/x/crypto/hkdf"
)

// extractPRK derives a PRK via HKDF-Extract(salt, ikm). HKDF-Extract's
// output is already exactly dlen bytes (the underlying hash's output
// size), so there is nothing to truncate; dlen is accepted anyway to
// make every call site's intent explicit and to catch a mismatched hash
// constructor early.
func extractPRK(hashNew func() hash.Hash, salt, ikm []byte, dlen int) []byte {
	prk := hkdf.Extract(hashNew, ikm, salt)
	if len(prk) != dlen {
		invariant("HKDF-Extract produced %d bytes, want %d", len(prk), dlen)
	}
	return prk
}

// concatArray concatenates every element of arr in order, the "concat(A)"
// operation referenced throughout §4.
func concatArray(arr [][]byte) []byte {
	total := 0
	for _, e := range arr {
		total += len(e)
	}
	out := make([]byte, 0, total)
	for _, e := range arr {
		out = append(out, e...)
	}
	return out
}
