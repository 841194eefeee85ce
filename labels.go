package scdrbg

import "strconv"

// Domain tags, fixed single-byte values used at specified positions in
// every keyed-hash input across the pipeline. Never reuse one tag's
// position for another's purpose.
const (
	domainBind       byte = 0x01 // D1
	domainCommitment byte = 0x02 // D2
	domainSubkey     byte = 0x03 // D3
	domainIndexPRF   byte = 0x04 // D4
	domainCombine    byte = 0x05 // D5
	domainKey        byte = 0x06 // D6
	domainNonce      byte = 0x07 // D7
)

const (
	labelUpdate = "-UPDATE"
	labelNext   = "-NEXT"
	labelOutput = "-OUTPUT"
	labelCommit = "-COMMIT"
	labelMix    = "-MIX"

	infoSubkeys  = "SUBKEYS"
	infoIndices  = "INDICES"
	infoPRF      = "PRF"
	infoAESKeyEx = "AES_KEY_EXPANSION"
)

// contextLabel concatenates a context string with an ASCII suffix,
// producing a suffix-only label when context is empty.
func contextLabel(context []byte, suffix string) []byte {
	out := make([]byte, 0, len(context)+len(suffix))
	out = append(out, context...)
	out = append(out, suffix...)
	return out
}

// roundLabel builds the "ROUND<r>" info string for the Mixer's
// per-round HKDF-Expand, using the decimal round index.
func roundLabel(r int) []byte {
	return []byte("ROUND" + strconv.Itoa(r))
}
