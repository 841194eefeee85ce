package scdrbg

import (
	"crypto/hmac"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// aesKeyLength picks the AES variant from dlen alone, per Design Note 9:
// 32-byte digests or larger get AES-256, 24 or larger get AES-192,
// anything smaller gets AES-128.
func aesKeyLength(dlen int) int {
	switch {
	case dlen >= 32:
		return 32
	case dlen >= 24:
		return 24
	default:
		return 16
	}
}

// deriveKeyNonce implements the Key/nonce deriver of §4.7: an AES key of
// the length aesKeyLength selects, stretched via HKDF when the raw HMAC
// output is shorter than that length, and a 16-byte CTR nonce.
func deriveKeyNonce(hashNew func() hash.Hash, prk []byte, commit []byte, ctr uint64, acc []byte, codec widthCodec) (key []byte, nonce [16]byte) {
	dlen := dlenOf(hashNew)
	k3 := make([]byte, dlen)
	if _, err := io.ReadFull(hkdf.Expand(hashNew, prk, []byte(infoPRF)), k3); err != nil {
		invariant("key/nonce deriver key expansion failed: %v", err)
	}

	L := aesKeyLength(dlen)

	keyMac := hmac.New(hashNew, k3)
	keyMac.Write([]byte{domainKey})
	keyMac.Write(commit)
	keyMac.Write(codec.Encode(ctr))
	keyMac.Write(acc)
	keyFull := keyMac.Sum(nil)

	key = make([]byte, L)
	if len(keyFull) >= L {
		copy(key, keyFull[:L])
	} else {
		copy(key, keyFull)
		stretchPRK := hkdf.Extract(hashNew, keyFull, nil)
		rest := make([]byte, L-len(keyFull))
		if _, err := io.ReadFull(hkdf.Expand(hashNew, stretchPRK, []byte(infoAESKeyEx)), rest); err != nil {
			invariant("AES key stretch failed: %v", err)
		}
		copy(key[len(keyFull):], rest)
	}

	nonceMac := hmac.New(hashNew, k3)
	nonceMac.Write([]byte{domainNonce})
	nonceMac.Write(commit)
	nonceMac.Write(codec.Encode(ctr))
	nonceFull := nonceMac.Sum(nil)
	copy(nonce[:], nonceFull[:16])

	for i := range k3 {
		k3[i] = 0
	}
	for i := range keyFull {
		keyFull[i] = 0
	}
	for i := range nonceFull {
		nonceFull[i] = 0
	}

	return key, nonce
}
