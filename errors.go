package scdrbg

import (
	"errors"
	"fmt"
)

// ErrEmptyArray is returned by New when the seed array has no elements.
var ErrEmptyArray = errors.New("scdrbg: seed array cannot be empty")

// ErrCounterExhausted is the value recovered from the panic raised when a
// generator's counter has reached its configured maximum. There is no
// recoverable path past this point; callers must construct a new
// generator from fresh seed material.
var ErrCounterExhausted = errors.New("scdrbg: counter exhausted")

// EmptyElementError is returned by New when one or more elements of the
// seed array are empty. Indices lists every offending position, not just
// the first.
type EmptyElementError struct {
	Indices []int
}

func (e *EmptyElementError) Error() string {
	if len(e.Indices) == 1 {
		return fmt.Sprintf("scdrbg: array element at index %d is empty", e.Indices[0])
	}
	return fmt.Sprintf("scdrbg: array elements at indices %v are empty", e.Indices)
}

// DigestTooSmallError is returned by New when the configured hash
// function's digest is below the 16-byte minimum SC_DRBG requires.
type DigestTooSmallError struct {
	Size int
}

func (e *DigestTooSmallError) Error() string {
	return fmt.Sprintf("scdrbg: hash output size %d bytes is below the minimum of 16 bytes", e.Size)
}

// invariant panics to report conditions the constructor's preconditions
// should have made unreachable: a misconfigured hash registration, an AES
// key of the wrong length, and similar library-misuse cases (§7). These
// are bugs in the calling code, not data-dependent failures, so they are
// not returned as errors.
func invariant(format string, args ...any) {
	panic(fmt.Errorf("scdrbg: invariant violated: "+format, args...))
}
