/*

Package scdrbg implements SC_DRBG, a Subset Counter-Based Deterministic
Random Bit Generator.

Unlike a conventional DRBG seeded from a single byte string, SC_DRBG is
seeded from an ordered array of byte elements. Each output is derived from
a configurable subset of those elements plus a monotonic counter, and the
internal state evolves after every call, giving forward secrecy between
outputs. The construction composes HKDF, HMAC, a SHAKE-256 sponge, and
AES-CTR; see the package-level functions in binder.go, mixer.go, and
generator.go for the exact wire.

All outputs are fully deterministic given the same seed array, Config, and
call schedule, which makes SC_DRBG suitable for reproducible randomness
derived from structured input material such as credential sets, key
shares, or other fixed identifiers, rather than for general-purpose
entropy generation.

*/
package scdrbg
