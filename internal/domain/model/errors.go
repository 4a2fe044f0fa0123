package model

import "errors"

// Error kinds surfaced by the gif pipeline. Concrete failures wrap one of
// these with fmt.Errorf("%w: ...") so callers can branch with errors.Is.
var (
	// ErrValidation marks missing or malformed caller input, raised before
	// any network call.
	ErrValidation = errors.New("validation error")

	// ErrUpstream marks a Giphy transport failure or non-success status.
	ErrUpstream = errors.New("upstream error")

	// ErrStore marks a HarperDB transport failure or non-success status.
	ErrStore = errors.New("store error")

	// ErrFetch wraps an upstream or store failure surfaced from a
	// cache-populating read.
	ErrFetch = errors.New("fetch error")

	// ErrCounter marks a counter read or upsert failure. Counter failures
	// on the read path are logged and swallowed, never blocking the gif.
	ErrCounter = errors.New("counter error")
)
