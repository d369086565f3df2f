package printer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/yaklabco/golst/pkg/tree"
)

// ErrMalformedTree is the sentinel wrapped by every MalformedTreeError.
var ErrMalformedTree = errors.New("malformed tree")

// MalformedTreeError reports a node kind or marker combination the printers
// cannot render. It always indicates a bug in whatever built the tree.
type MalformedTreeError struct {
	// Kind is the Go type of the offending node.
	Kind string

	// NodeID is the id of the offending node.
	NodeID uuid.UUID

	// Reason describes what was wrong.
	Reason string

	// Path lists the node kinds from the root to the offending node.
	Path []string

	cause error
}

func malformed(c *tree.Cursor, n tree.Node, reason string, args ...any) *MalformedTreeError {
	e := &MalformedTreeError{
		Kind:   fmt.Sprintf("%T", n),
		Reason: fmt.Sprintf(reason, args...),
		cause:  errors.WithStack(ErrMalformedTree),
	}
	if !tree.IsNil(n) {
		e.NodeID = n.ID()
	}
	for _, p := range c.Path() {
		e.Path = append(e.Path, fmt.Sprintf("%T", p))
	}
	return e
}

// Error implements the error interface.
func (e *MalformedTreeError) Error() string {
	msg := fmt.Sprintf("malformed tree: %s: %s", e.Kind, e.Reason)
	if len(e.Path) > 0 {
		msg += " (at " + strings.Join(e.Path, " > ") + ")"
	}
	return msg
}

// Unwrap returns ErrMalformedTree with the stack captured where the problem
// was found.
func (e *MalformedTreeError) Unwrap() error {
	return e.cause
}

// StackTrace returns the stack captured where the problem was found.
func (e *MalformedTreeError) StackTrace() errors.StackTrace {
	var st interface{ StackTrace() errors.StackTrace }
	if errors.As(e.cause, &st) {
		return st.StackTrace()
	}
	return nil
}
