package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id the store
// does not hold.
var ErrNotFound = errors.New("transaction not found")

// ValidationError reports a single bad field value on add or load.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports a malformed persisted record set. The whole batch is
// rejected: silently dropping records would corrupt the id invariant.
type FormatError struct {
	Index int
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed record set: record %d: %v", e.Index, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
