package scdrbg

import (
	"hash"
	"io"
	"sort"

	"golang.org/x/crypto/hkdf"
)

// Generator is a single SC_DRBG instance. It owns its seed array, PRK,
// context, and counter exclusively (§3 "Ownership") and is not safe for
// concurrent use — callers needing that must serialize externally (§5).
type Generator struct {
	derived derivedConfig
	context []byte
	arr     [][]byte
	prk     []byte
	ctr     uint64
}

// New constructs a Generator per §4.10, validating the configuration and
// the seed array's constructor preconditions (§6) before deriving any
// key material. The returned Generator owns a private deep copy of arr;
// the caller's slices may be reused or discarded freely afterward.
func New(arr [][]byte, cfg Config) (*Generator, error) {
	if len(arr) == 0 {
		return nil, ErrEmptyArray
	}
	var emptyIdx []int
	for i, e := range arr {
		if len(e) == 0 {
			emptyIdx = append(emptyIdx, i)
		}
	}
	if len(emptyIdx) > 0 {
		sort.Ints(emptyIdx)
		return nil, &EmptyElementError{Indices: emptyIdx}
	}

	derived, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	owned := make([][]byte, len(arr))
	for i, e := range arr {
		owned[i] = append([]byte(nil), e...)
	}

	context := append([]byte(nil), cfg.Context...)
	codec := derived.codec
	hashNew := derived.hashNew
	dlen := derived.dlen

	if cfg.InitMode == ModeBoundAndMixed {
		concat := concatArray(owned)
		h := hashNew()
		h.Write(concat)
		nonce := h.Sum(nil)

		pk := extractPRK(hashNew, nonce, concat, dlen)

		kCommit := hkdfExpand(hashNew, pk, contextLabel(context, labelCommit), dlen)
		kMix := hkdfExpand(hashNew, pk, contextLabel(context, labelMix), dlen)

		owned = bind(hashNew, owned, kCommit, codec)
		owned = mix(hashNew, owned, kMix, cfg.RoundsInit, codec)

		for i := range pk {
			pk[i] = 0
		}
		for i := range kCommit {
			kCommit[i] = 0
		}
		for i := range kMix {
			kMix[i] = 0
		}
	}

	prk := extractPRK(hashNew, contextLabel(context, labelOutput), concatArray(owned), dlen)

	return &Generator{
		derived: derived,
		context: context,
		arr:     owned,
		prk:     prk,
		ctr:     0,
	}, nil
}

// hkdfExpand reads exactly L bytes from an HKDF-Expand stream. Every
// call site in this package expands to dlen bytes, so L is always
// derived.dlen in practice, but the length is still explicit here
// rather than implied.
func hkdfExpand(hashNew func() hash.Hash, prk, info []byte, length int) []byte {
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(hashNew, prk, info), out); err != nil {
		invariant("HKDF-Expand failed: %v", err)
	}
	return out
}

// Fill writes deterministic output into dst, derived from a subset of
// the generator's current array (clamped to N, §8 "Subset clamping")
// and the current counter, then evolves the internal state (§4.9). It
// panics with ErrCounterExhausted if the counter has reached its
// configured maximum — there is no recoverable path past that point.
func (g *Generator) Fill(subset int, dst []byte) {
	codec := g.derived.codec
	hashNew := g.derived.hashNew

	if g.ctr == codec.Max() {
		panic(ErrCounterExhausted)
	}

	commit := commitment(hashNew, g.arr, codec)
	subkeys := deriveSubkeys(hashNew, g.prk, g.arr, commit, codec)
	indices := indexSample(hashNew, g.prk, len(g.arr), commit, g.ctr, subset, codec)
	acc := combine(hashNew, subkeys, indices, commit, g.ctr, codec)
	key, nonce := deriveKeyNonce(hashNew, g.prk, commit, g.ctr, acc, codec)

	applyKeystream(key, nonce, dst)

	newArr, newPRK := evolve(hashNew, g.arr, dst, g.context, codec)

	for _, sk := range subkeys {
		for i := range sk {
			sk[i] = 0
		}
	}
	for i := range acc {
		acc[i] = 0
	}
	for i := range key {
		key[i] = 0
	}
	for i := range g.prk {
		g.prk[i] = 0
	}
	for _, e := range g.arr {
		for i := range e {
			e[i] = 0
		}
	}

	g.arr = newArr
	g.prk = newPRK
	g.ctr = codec.Wrap(g.ctr + 1)
}

// RevealCounter returns the generator's current counter value.
func (g *Generator) RevealCounter() uint64 {
	return g.ctr
}

// Destroy zeroizes every sensitive buffer the generator owns. Go has no
// destructors, so callers that need the §5 "wiped on destruction"
// guarantee must call this explicitly, typically via
// defer generator.Destroy().
func (g *Generator) Destroy() {
	for i := range g.prk {
		g.prk[i] = 0
	}
	for _, e := range g.arr {
		for i := range e {
			e[i] = 0
		}
	}
	g.prk = nil
	g.arr = nil
}
