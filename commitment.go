package scdrbg

import "hash"

// commitment computes the transcript tag of §4.3: a single hash over
// the entire array's shape and content, binding every element's index,
// length, and bytes into one tag used throughout the rest of the
// pipeline as "commit".
func commitment(hashNew func() hash.Hash, arr [][]byte, codec widthCodec) []byte {
	h := hashNew()
	h.Write([]byte{domainCommitment})
	h.Write(codec.Encode(uint64(len(arr))))
	for i, elem := range arr {
		h.Write(codec.Encode(uint64(i)))
		h.Write(codec.Encode(uint64(len(elem))))
		h.Write(elem)
	}
	return h.Sum(nil)
}
