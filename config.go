package scdrbg

import (
	"crypto"
	"encoding/binary"
	"hash"

	_ "crypto/sha256"
	_ "crypto/sha512"

	_ "golang.org/x/crypto/blake2b"
	_ "golang.org/x/crypto/blake2s"
	_ "golang.org/x/crypto/sha3"
)

// CounterWidth selects the bit width W of the generator's counter and of
// every integer encoded anywhere in the core (§4, Design Note 9).
type CounterWidth int

const (
	Width32 CounterWidth = 32
	Width64 CounterWidth = 64
)

// Endian selects the byte order E applied to every integer encoding in
// the core: the counter, indices, lengths, round numbers, and internal
// PRF counters alike (§4, Design Note 9).
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) byteOrder() binary.ByteOrder {
	switch e {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		invariant("unknown endian %v", e)
		return nil
	}
}

// InitMode selects one of the two construction shapes described in
// §4.10. BoundAndMixed is the canonical shape the §8 test vectors are
// expressed against; Raw skips the bind/mix step entirely.
type InitMode int

const (
	ModeBoundAndMixed InitMode = iota
	ModeRaw
)

// availableHash lists the crypto.Hash values this package accepts for
// Config.Hash, mirroring lentus-wotsp's canPrecompute availability map.
// Every entry here has dlen >= 16, but the map alone can't express that
// for hashes not actually linked in; Config.validate() checks the real
// digest size at runtime regardless.
var availableHash = map[crypto.Hash]bool{
	crypto.SHA256:      true,
	crypto.SHA384:      true,
	crypto.SHA512:      true,
	crypto.SHA512_256:  true,
	crypto.SHA3_256:    true,
	crypto.SHA3_384:    true,
	crypto.SHA3_512:    true,
	crypto.BLAKE2b_256: true,
	crypto.BLAKE2b_384: true,
	crypto.BLAKE2b_512: true,
	crypto.BLAKE2s_256: true,
}

// Config is the immutable configuration surface of §6: hash family,
// counter width, endianness, initial mixing rounds, context, and
// construction mode.
type Config struct {
	Hash         crypto.Hash
	CounterWidth CounterWidth
	Endian       Endian
	RoundsInit   int
	Context      []byte
	InitMode     InitMode
}

// derivedConfig is the validated, ready-to-use form of Config, produced
// by Config.validate() the way lentus-wotsp's Mode.params() turns a Mode
// into a params struct.
type derivedConfig struct {
	hashNew func() hash.Hash
	dlen    int
	codec   widthCodec
	cfg     Config
}

// validate checks the configuration surface itself (hash availability
// and digest size) and returns the derived values every core component
// needs. It does not check the seed array; New does that separately
// against §6's constructor preconditions.
func (c Config) validate() (derivedConfig, error) {
	if !availableHash[c.Hash] || !c.Hash.Available() {
		invariant("hash %v is not registered", c.Hash)
	}
	dlen := c.Hash.New().Size()
	if dlen < 16 {
		return derivedConfig{}, &DigestTooSmallError{Size: dlen}
	}
	width := c.CounterWidth
	if width != Width32 && width != Width64 {
		invariant("counter width must be 32 or 64, got %d", width)
	}
	codec := newWidthCodec(width, c.Endian)
	h := c.Hash
	return derivedConfig{
		hashNew: func() hash.Hash { return h.New() },
		dlen:    dlen,
		codec:   codec,
		cfg:     c,
	}, nil
}
