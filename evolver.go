package scdrbg

import "hash"

// evolve implements the post-output state update of §4.9 (steps 2-4;
// the counter increment of step 1 is the caller's responsibility since
// it must be checked for overflow before generation even starts). It
// re-derives a PRK from the emitted output, re-mixes the array for one
// round under that PRK, and derives the next call's PRK from the
// re-mixed array.
func evolve(hashNew func() hash.Hash, arr [][]byte, dst []byte, context []byte, codec widthCodec) (newArr [][]byte, newPRK []byte) {
	dlen := dlenOf(hashNew)

	updateSalt := contextLabel(context, labelUpdate)
	pk := extractPRK(hashNew, updateSalt, dst, dlen)

	mixed := mix(hashNew, arr, pk, 1, codec)
	for i := range pk {
		pk[i] = 0
	}

	nextSalt := contextLabel(context, labelNext)
	nextPRK := extractPRK(hashNew, nextSalt, concatArray(mixed), dlen)

	return mixed, nextPRK
}
