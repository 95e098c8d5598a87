package cashbook

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core. Callers test them with errors.Is; every
// failure is recoverable by retrying with corrected input.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrOutOfRange    = errors.New("out of range")
	ErrAuthFailure   = errors.New("authentication failure")
)

// DecodeError reports a malformed document in the store file. Malformed
// records are rejected at the store boundary instead of being silently
// defaulted.
type DecodeError struct {
	Key  string // document key, empty when the whole file is unreadable
	Path string // store file path
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("malformed store file %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed document %q in %q: %v", e.Key, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
