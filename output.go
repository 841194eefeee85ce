package scdrbg

import (
	"crypto/aes"
	"crypto/cipher"
)

// applyKeystream implements the Output stage of §4.8: it zeroes dst and
// then applies an AES-CTR keystream, keyed by key and seeded by a
// 128-bit big-endian counter initialized to nonce. Go's cipher.NewCTR
// treats its IV as a big-endian counter natively, so nonce can be
// passed through unmodified.
func applyKeystream(key []byte, nonce [16]byte, dst []byte) {
	for i := range dst {
		dst[i] = 0
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		invariant("AES cipher construction failed: %v", err)
	}
	stream := cipher.NewCTR(block, nonce[:])
	stream.XORKeyStream(dst, dst)
}
