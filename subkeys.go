package scdrbg

import (
	"crypto/hmac"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// deriveSubkeys computes the per-element Subkey deriver output of §4.4,
// tying each element's subkey to the current commitment so downstream
// combine steps cannot be replayed against a different array state.
func deriveSubkeys(hashNew func() hash.Hash, prk []byte, arr [][]byte, commit []byte, codec widthCodec) [][]byte {
	k1 := make([]byte, dlenOf(hashNew))
	if _, err := io.ReadFull(hkdf.Expand(hashNew, prk, []byte(infoSubkeys)), k1); err != nil {
		invariant("subkey derivation failed: %v", err)
	}

	out := make([][]byte, len(arr))
	for i, elem := range arr {
		mac := hmac.New(hashNew, k1)
		mac.Write([]byte{domainSubkey})
		mac.Write(codec.Encode(uint64(i)))
		mac.Write(codec.Encode(uint64(len(elem))))
		mac.Write(elem)
		mac.Write(commit)
		out[i] = mac.Sum(nil)
	}
	return out
}
