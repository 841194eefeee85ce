package scdrbg

import (
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"
)

// mix applies the Mixer of §4.2: a SHAKE-256 sponge that rewrites every
// element over R rounds while preserving each element's length. R=0 is
// the identity transform.
func mix(hashNew func() hash.Hash, arr [][]byte, prk []byte, rounds int, codec widthCodec) [][]byte {
	if rounds == 0 {
		return arr
	}
	n := len(arr)
	cur := arr
	for r := 0; r < rounds; r++ {
		keyR := make([]byte, dlenOf(hashNew))
		if _, err := io.ReadFull(hkdf.Expand(hashNew, prk, roundLabel(r)), keyR); err != nil {
			invariant("mixer round key expansion failed: %v", err)
		}

		h := hashNew()
		h.Write(keyR)
		h.Write(codec.Encode(uint64(r)))
		tweakR := h.Sum(nil)

		sponge := sha3.NewShake256()
		sponge.Write(tweakR)
		for j := 0; j < n; j++ {
			sponge.Write(cur[j])
			sponge.Write(codec.Encode(uint64(j)))
		}

		next := make([][]byte, n)
		for j := 0; j < n; j++ {
			next[j] = make([]byte, len(cur[j]))
			if _, err := io.ReadFull(sponge, next[j]); err != nil {
				invariant("mixer sponge squeeze failed: %v", err)
			}
		}
		cur = next
	}
	return cur
}

// dlenOf reports the digest length a hash constructor produces, without
// requiring callers to thread dlen through every call site that only
// has the constructor at hand.
func dlenOf(hashNew func() hash.Hash) int {
	return hashNew().Size()
}
