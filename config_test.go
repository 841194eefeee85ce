package scdrbg

import (
	"crypto"
	"hash"
	"testing"
)

// fixed8 is a toy hash.Hash producing an 8-byte digest, used only to
// exercise the DigestTooSmall rejection path (§8 Scenario E); SC_DRBG
// has no legitimate use for a hash this short.
type fixed8 struct{ buf []byte }

func (f *fixed8) Write(p []byte) (int, error) { f.buf = append(f.buf, p...); return len(p), nil }
func (f *fixed8) Sum(b []byte) []byte         { return append(b, make([]byte, 8)...) }
func (f *fixed8) Reset()                      { f.buf = nil }
func (f *fixed8) Size() int                   { return 8 }
func (f *fixed8) BlockSize() int              { return 64 }

// fakeShortHash reuses MD4's slot, which nothing in this module registers;
// crypto.RegisterHash rejects identifiers outside the crypto.Hash range.
const fakeShortHash = crypto.MD4

func init() {
	crypto.RegisterHash(fakeShortHash, func() hash.Hash { return &fixed8{} })
	availableHash[fakeShortHash] = true
}

func TestNewEmptyArray(t *testing.T) {
	_, err := New([][]byte{}, baseConfig(Width32, LittleEndian))
	if err != ErrEmptyArray {
		t.Fatalf("got %v, want ErrEmptyArray", err)
	}
}

func TestNewEmptyElements(t *testing.T) {
	arr := [][]byte{[]byte("a"), {}, []byte("b"), {}}
	_, err := New(arr, baseConfig(Width32, LittleEndian))

	ee, ok := err.(*EmptyElementError)
	if !ok {
		t.Fatalf("got %T (%v), want *EmptyElementError", err, err)
	}
	if len(ee.Indices) != 2 || ee.Indices[0] != 1 || ee.Indices[1] != 3 {
		t.Fatalf("got indices %v, want [1 3]", ee.Indices)
	}
}

func TestConfigValidateDigestTooSmall(t *testing.T) {
	cfg := baseConfig(Width32, LittleEndian)
	cfg.Hash = fakeShortHash

	_, err := cfg.validate()
	dts, ok := err.(*DigestTooSmallError)
	if !ok {
		t.Fatalf("got %T (%v), want *DigestTooSmallError", err, err)
	}
	if dts.Size != 8 {
		t.Fatalf("got size %d, want 8", dts.Size)
	}
}
