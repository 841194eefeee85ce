package scdrbg

import (
	"crypto/hmac"
	"hash"
)

// bind computes the Binder of §4.1: a per-element keyed tag over the
// element's index, length, and content. The output array has one
// dlen-byte element per input element; it does not preserve input
// lengths (unlike the Mixer).
func bind(hashNew func() hash.Hash, arr [][]byte, key []byte, codec widthCodec) [][]byte {
	out := make([][]byte, len(arr))
	for i, elem := range arr {
		mac := hmac.New(hashNew, key)
		mac.Write([]byte{domainBind})
		mac.Write(codec.Encode(uint64(i)))
		mac.Write(codec.Encode(uint64(len(elem))))
		mac.Write(elem)
		out[i] = mac.Sum(nil)
	}
	return out
}
