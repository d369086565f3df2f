package query

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedOperation is returned when an operation is applied to a
	// node that lacks the slot it edits, such as changing the type of a
	// node with no declared type.
	ErrUnsupportedOperation = errors.New("operation not supported on node")

	// ErrPredicate wraps an error returned by a selection predicate.
	ErrPredicate = errors.New("predicate failed")
)

// ApplyError reports the node and operation that made Fix fail. When Fix
// returns an ApplyError no part of the edit was kept.
type ApplyError struct {
	// NodeID is the id of the matched node.
	NodeID uuid.UUID

	// Kind is the Go type of the matched node.
	Kind string

	// Op names the failing operation, or "select" for a predicate failure.
	Op string

	Err error
}

// Error implements the error interface.
func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s on %s %s: %v", e.Op, e.Kind, e.NodeID, e.Err)
}

// Unwrap returns the underlying error.
func (e *ApplyError) Unwrap() error {
	return e.Err
}
