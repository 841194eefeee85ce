package scdrbg

import (
	"crypto/hmac"
	"hash"
)

// combine implements the Combiner of §4.6: an XOR accumulator over the
// HMAC tags of the selected subkeys, in selection order.
func combine(hashNew func() hash.Hash, subkeys [][]byte, indices []int, commit []byte, ctr uint64, codec widthCodec) []byte {
	acc := make([]byte, dlenOf(hashNew))
	for _, i := range indices {
		mac := hmac.New(hashNew, subkeys[i])
		mac.Write([]byte{domainCombine})
		mac.Write(commit)
		mac.Write(codec.Encode(ctr))
		y := mac.Sum(nil)
		for b := range acc {
			acc[b] ^= y[b]
		}
	}
	return acc
}
