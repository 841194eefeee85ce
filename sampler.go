package scdrbg

import (
	"crypto/hmac"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// prfBlockSource is the PRF block producer of §4.5: it emits dlen-byte
// HMAC blocks on demand and exposes them to the sampler as a strict
// first-in-first-out byte queue. The internal counter advances exactly
// once per block, never per draw; the external (generator) counter is
// folded into every block so index selection is bound to it.
type prfBlockSource struct {
	hashNew  func() hash.Hash
	k2       []byte
	commit   []byte
	extCtr   uint64
	intCtr   uint64
	codec    widthCodec
	queue    []byte
}

func newPRFBlockSource(hashNew func() hash.Hash, k2, commit []byte, extCtr uint64, codec widthCodec) *prfBlockSource {
	return &prfBlockSource{
		hashNew: hashNew,
		k2:      k2,
		commit:  commit,
		extCtr:  extCtr,
		codec:   codec,
	}
}

// next produces one more HMAC block and appends it to the queue.
func (s *prfBlockSource) next() {
	mac := hmac.New(s.hashNew, s.k2)
	mac.Write([]byte{domainIndexPRF})
	mac.Write(s.commit)
	mac.Write(s.codec.Encode(s.extCtr))
	mac.Write(s.codec.Encode(s.intCtr))
	s.intCtr = s.codec.Wrap(s.intCtr + 1)
	s.queue = append(s.queue, mac.Sum(nil)...)
}

// draw consumes exactly codec.Size() bytes from the front of the queue,
// refilling from next() as needed, and decodes them under the
// configured endianness. Consumed bytes are wiped from the backing
// array immediately, including bytes discarded by a rejected draw.
func (s *prfBlockSource) draw() uint64 {
	size := s.codec.Size()
	for len(s.queue) < size {
		s.next()
	}
	chunk := s.queue[:size]
	v := s.codec.Decode(chunk)
	for i := range chunk {
		chunk[i] = 0
	}
	s.queue = s.queue[size:]
	return v
}

// indexSample implements the partial Fisher-Yates of §4.5: it selects
// s = min(subset, N) distinct indices from [0,N) using rejection
// sampling over the PRF block stream so the result is an unbiased
// partial shuffle.
func indexSample(hashNew func() hash.Hash, prk []byte, n int, commit []byte, extCtr uint64, subset int, codec widthCodec) []int {
	s := subset
	if s > n {
		s = n
	}

	k2 := make([]byte, dlenOf(hashNew))
	if _, err := io.ReadFull(hkdf.Expand(hashNew, prk, []byte(infoIndices)), k2); err != nil {
		invariant("index sampler key expansion failed: %v", err)
	}

	src := newPRFBlockSource(hashNew, k2, commit, extCtr, codec)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := 0; i < s; i++ {
		rangeV := uint64(n - i)
		rem := codec.Neg(rangeV) % rangeV

		var v uint64
		if rem == 0 {
			v = src.draw()
		} else {
			limit := codec.Neg(rem)
			for {
				v = src.draw()
				if v < limit {
					break
				}
			}
		}

		j := i + int(v%rangeV)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:s]
}
