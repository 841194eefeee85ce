// Package testdata holds the known-answer vectors from spec §8,
// exported as plain Go values for use by the package's test files, the
// way lentus-wotsp/testdata holds Seed/PubSeed/PubKey/Signature.
package testdata

import "encoding/hex"

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Seed is the seven-element, 16-byte-per-element seed array shared by
// every end-to-end scenario in spec §8.
var Seed = [][]byte{
	mustDecode("ca33496c5c9e5f3ce6e932a0670d320f"),
	mustDecode("e17baaae2056f7cea2083482f9818b1c"),
	mustDecode("2c1aef2c624598ae937eed2b5ad9448b"),
	mustDecode("6932a3726327aa4a092771dabf198fc7"),
	mustDecode("fe9fe0c3b16f8ae27b09856bd0f487d1"),
	mustDecode("87c83f8f122b3bcccf42a97f487133f9"),
	mustDecode("5bc58505a5cc3406168facc39ba0f5dc"),
}

// Context is the context string shared by every end-to-end scenario.
const Context = "some-test-app"

// ScenarioA holds the W=32, little-endian vectors.
var ScenarioA = struct {
	NextUint32 []uint32
	NextUint64 []uint64
}{
	NextUint32: []uint32{2296859039, 3520090129, 755322988, 1089056308, 1233950592},
	NextUint64: []uint64{14627290128518171039, 14312161537058068219, 15005291635268623789, 3355993008263979106, 14800901245741747956},
}

// ScenarioB holds the W=32, big-endian vectors.
var ScenarioB = struct {
	NextUint32 []uint32
	NextUint64 []uint64
}{
	NextUint32: []uint32{1063137602, 2826121088, 3298000299, 2890410248, 3294535920},
	NextUint64: []uint64{4566141234723800237, 2655253991924942313, 11414807746746846060, 14120807454358857646, 15529248475412121348},
}

// ScenarioC holds the W=64, little-endian vectors.
var ScenarioC = struct {
	NextUint32 []uint32
	NextUint64 []uint64
}{
	NextUint32: []uint32{3513012354, 3115741082, 3418770424, 1178855421, 2303171038},
	NextUint64: []uint64{4347230222507331714, 16466604991238817181, 12219542919680157343, 13248978728273083570, 7071113371231795053},
}

// ScenarioD holds the W=64, big-endian vectors.
var ScenarioD = struct {
	NextUint32 []uint32
	NextUint64 []uint64
}{
	NextUint32: []uint32{502628020, 2880383839, 3798114914, 3862077194, 2667019303},
	NextUint64: []uint64{2158770911501693864, 57669768752051356, 14834690014904699227, 1061605113615837153, 17929217830921720000},
}

// CloneSeed returns a fresh deep copy of Seed, since a Generator takes
// ownership of (and evolves) whatever array it is constructed with.
func CloneSeed() [][]byte {
	out := make([][]byte, len(Seed))
	for i, e := range Seed {
		out[i] = append([]byte(nil), e...)
	}
	return out
}
