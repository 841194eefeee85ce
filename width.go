package scdrbg

import "encoding/binary"

// widthCodec implements the numeric abstraction Design Note 9 calls for:
// a single interface over the two supported counter widths (32 and 64
// bits) so every core component encodes, decodes, and wraps integers the
// same way regardless of which width a Config selects. Values travel as
// uint64, but rejection sampling and counter arithmetic yield true W-bit
// results: Neg wraps at W bits, and Wrap masks a uint64 sum back into W
// bits.
type widthCodec interface {
	// Size returns W/8, the number of bytes encode/decode operate on.
	Size() int
	// Encode writes v as exactly Size() bytes in the configured byte order.
	Encode(v uint64) []byte
	// Decode reads exactly Size() bytes of b in the configured byte order.
	Decode(b []byte) uint64
	// Max returns 2^W - 1, the largest representable value.
	Max() uint64
	// Wrap reduces v into [0, 2^W) by masking off any bits above W.
	Wrap(v uint64) uint64
	// Neg returns (0 - v) in W-bit wrapping arithmetic.
	Neg(v uint64) uint64
}

type width32 struct {
	order binary.ByteOrder
}

func (w width32) Size() int { return 4 }

func (w width32) Encode(v uint64) []byte {
	b := make([]byte, 4)
	w.order.PutUint32(b, uint32(v))
	return b
}

func (w width32) Decode(b []byte) uint64 {
	return uint64(w.order.Uint32(b))
}

func (w width32) Max() uint64 { return 0xFFFFFFFF }

func (w width32) Wrap(v uint64) uint64 { return v & 0xFFFFFFFF }

func (w width32) Neg(v uint64) uint64 {
	return uint64(uint32(0) - uint32(v))
}

type width64 struct {
	order binary.ByteOrder
}

func (w width64) Size() int { return 8 }

func (w width64) Encode(v uint64) []byte {
	b := make([]byte, 8)
	w.order.PutUint64(b, v)
	return b
}

func (w width64) Decode(b []byte) uint64 {
	return w.order.Uint64(b)
}

func (w width64) Max() uint64 { return 0xFFFFFFFFFFFFFFFF }

func (w width64) Wrap(v uint64) uint64 { return v }

func (w width64) Neg(v uint64) uint64 {
	return 0 - v
}

// newWidthCodec builds the codec a Config selects, pairing the counter
// width with the byte order both use for every integer encoding in the
// core (§4, "All byte-order-dependent encodings use encode(u)...").
func newWidthCodec(width CounterWidth, endian Endian) widthCodec {
	order := endian.byteOrder()
	switch width {
	case Width32:
		return width32{order: order}
	case Width64:
		return width64{order: order}
	default:
		invariant("unknown counter width %v", width)
		return nil
	}
}
