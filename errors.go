package hirschberg

import "errors"

// The driver never panics and never retries: construction either succeeds
// or returns one of these sentinels, and a running Iterator signals
// exhaustion or failure by returning false from Pull rather than erroring
// mid-stream.

// ErrInvalidInput indicates New or Reset was given a nil s1, s2, or
// Scratch. A zero-length (but non-nil) side is not an error: it is
// resolved as an ordinary atomic subproblem on the first Pull.
var ErrInvalidInput = errors.New("hirschberg: invalid input")

// ErrInvalidCallback indicates the Callback passed to New has an unknown or
// unset shape tag.
var ErrInvalidCallback = errors.New("hirschberg: invalid callback")
