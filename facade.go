package scdrbg

// The functions below are the public facade §1 calls "out of scope for
// the core" — thin adapters over Fill that a conventional RNG interface
// expects. They always draw over the full array (subset = N), matching
// the conformance surface described in Design Note "RngCore-style
// facade": NextUint32 and NextUint64 decode the front of a fresh Fill
// call under the generator's configured endianness, independent of its
// configured counter width.

// NextUint32 fills 4 bytes via Fill and decodes them as a uint32 under
// the generator's configured endianness.
func (g *Generator) NextUint32() uint32 {
	var buf [4]byte
	g.Fill(len(g.arr), buf[:])
	return g.derived.cfg.Endian.byteOrder().Uint32(buf[:])
}

// NextUint64 fills 8 bytes via Fill and decodes them as a uint64 under
// the generator's configured endianness.
func (g *Generator) NextUint64() uint64 {
	var buf [8]byte
	g.Fill(len(g.arr), buf[:])
	return g.derived.cfg.Endian.byteOrder().Uint64(buf[:])
}

// FillBytes is a convenience wrapper that fills dst over the full array,
// without decoding it as any particular integer width.
func (g *Generator) FillBytes(dst []byte) {
	g.Fill(len(g.arr), dst)
}
