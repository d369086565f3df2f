// Package query selects nodes of a tree and applies queued edits to them.
//
// A Query is built in two steps: Select names the node type and a
// predicate, and builder methods such as ChangeType, Rename and Delete
// queue edits. Nothing is edited until Fix runs. Fix either applies every
// queued edit to every match and returns a new formatted tree, or fails and
// leaves no trace; the input tree is never modified.
package query

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/google/uuid"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/format"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
)

// Query is a selection over a tree plus the edits queued against it.
// Builder methods return a new Query and leave the receiver unchanged, so a
// Query may be shared and extended from several goroutines.
type Query[T tree.Node] struct {
	root  tree.Node
	pred  Predicate
	ops   []op
	style *style.Bundle
}

// op is one queued edit. apply receives the node as edited by the ops
// queued before it and returns its replacement, or nil to delete it.
type op struct {
	name  string
	apply func(e *editor, c *tree.Cursor, n tree.Node) (tree.Node, error)
}

// Select starts a query over root for nodes of type T that satisfy pred. A
// nil pred selects every node of type T.
func Select[T tree.Node](root tree.Node, pred Predicate) *Query[T] {
	if pred == nil {
		pred = Any()
	}
	return &Query[T]{root: root, pred: pred}
}

func (q *Query[T]) with(o op) *Query[T] {
	c := *q
	c.ops = append(slices.Clip(q.ops), o)
	return &c
}

// WithStyle sets the style used to format edited regions. A style marker on
// the source file still takes precedence.
func (q *Query[T]) WithStyle(b *style.Bundle) *Query[T] {
	c := *q
	c.style = b
	return &c
}

// ChangeType queues replacing the declared type of every match with the
// class fqn. Type arguments of a parameterized type are kept.
func (q *Query[T]) ChangeType(fqn string) *Query[T] {
	class := tree.NewClassType(fqn)
	return q.with(op{name: "change-type", apply: func(e *editor, _ *tree.Cursor, n tree.Node) (tree.Node, error) {
		return e.changeType(n, class)
	}})
}

// Rename queues renaming every match to name.
func (q *Query[T]) Rename(name string) *Query[T] {
	return q.RenameFunc(func(string) string { return name })
}

// RenameFunc queues renaming every match to fn of its current name.
func (q *Query[T]) RenameFunc(fn func(old string) string) *Query[T] {
	return q.with(op{name: "rename", apply: func(e *editor, _ *tree.Cursor, n tree.Node) (tree.Node, error) {
		return e.rename(n, fn)
	}})
}

// Delete queues removing every match. Edits queued after Delete never run.
func (q *Query[T]) Delete() *Query[T] {
	return q.with(op{name: "delete", apply: func(*editor, *tree.Cursor, tree.Node) (tree.Node, error) {
		return nil, nil
	}})
}

// Map queues an arbitrary edit. fn returns the replacement node, or nil to
// delete the match. The replacement must fit the slot the match occupies.
func (q *Query[T]) Map(fn func(c *tree.Cursor, n T) (tree.Node, error)) *Query[T] {
	return q.with(op{name: "map", apply: func(e *editor, c *tree.Cursor, n tree.Node) (tree.Node, error) {
		t, ok := n.(T)
		if !ok {
			return nil, fmt.Errorf("%w: an earlier edit turned the match into %T", ErrUnsupportedOperation, n)
		}
		out, err := fn(c, t)
		if err != nil {
			return nil, err
		}
		if !tree.IsNil(out) {
			e.touch(out.ID())
		}
		return out, nil
	}})
}

// Matches runs the selection without editing anything. Matches are returned
// in pre-order, which is declaration order.
func (q *Query[T]) Matches() ([]T, error) {
	matches, _, err := q.selection()
	return matches, err
}

// selection returns the matches and the set of their ids.
func (q *Query[T]) selection() ([]T, map[uuid.UUID]struct{}, error) {
	var matches []T
	ids := make(map[uuid.UUID]struct{})
	_, err := tree.Walk(q.root, &tree.Visitor{
		PreVisit: func(c *tree.Cursor, n tree.Node) (tree.Node, error) {
			t, ok := n.(T)
			if !ok {
				return n, nil
			}
			hit, err := q.pred(c, n)
			if err != nil {
				return nil, &ApplyError{
					NodeID: n.ID(),
					Kind:   kindOf(n),
					Op:     "select",
					Err:    fmt.Errorf("%w: %w", ErrPredicate, err),
				}
			}
			if hit {
				matches = append(matches, t)
				ids[n.ID()] = struct{}{}
			}
			return n, nil
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return matches, ids, nil
}

// Fix applies every queued edit to every match, in the order the edits were
// queued and the matches were declared, then formats the edited regions.
// Any error aborts the whole call and no tree is returned.
func (q *Query[T]) Fix(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	matches, selected, err := q.selection()
	if err != nil {
		return nil, err
	}
	logger.Debug("query selected nodes", logging.FieldMatches, len(matches), logging.FieldKind, typeName[T]())

	res := &Result{Before: q.root, Matches: make([]tree.Node, 0, len(matches))}
	for _, m := range matches {
		res.Matches = append(res.Matches, m)
	}
	if len(q.ops) == 0 || len(matches) == 0 {
		res.After = q.root
		return res, nil
	}

	e := &editor{selected: selected}
	after, err := tree.Walk(q.root, &tree.Visitor{
		PreVisit: func(c *tree.Cursor, n tree.Node) (tree.Node, error) {
			return e.apply(c, n, q.ops)
		},
	})
	if err != nil {
		var mismatch *tree.KindMismatchError
		if errors.As(err, &mismatch) {
			return nil, &ApplyError{NodeID: mismatch.Got.ID(), Kind: kindOf(mismatch.Got), Op: "map", Err: err}
		}
		return nil, err
	}

	if !tree.IsNil(after) && len(e.fresh) > 0 {
		after, err = format.AutoFormat(after, q.style, format.Within(e.fresh...), format.WithLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("formatting edited tree: %w", err)
		}
	}

	res.After = after
	res.Changed = e.changed
	res.Deleted = e.deleted
	res.ImportChanges = e.importChanges(after)
	logger.Debug("query applied",
		logging.FieldChanged, len(res.Changed),
		logging.FieldDeleted, len(res.Deleted),
	)
	return res, nil
}

// Result is the outcome of Fix.
type Result struct {
	// Before is the tree the query ran on. It is never modified.
	Before tree.Node

	// After is the edited and formatted tree. It is nil when the root itself
	// was deleted.
	After tree.Node

	// Matches are the selected nodes of Before.
	Matches []tree.Node

	// Changed holds the ids of matches that were replaced.
	Changed []uuid.UUID

	// Deleted holds the ids of matches that were removed.
	Deleted []uuid.UUID

	// ImportChanges lists the imports a caller should add or remove after
	// a type change. The tree's imports are not edited.
	ImportChanges []ImportChange
}

// Modified reports whether Fix changed the tree.
func (r *Result) Modified() bool {
	return len(r.Changed) > 0 || len(r.Deleted) > 0
}

// ImportChange is an import adjustment implied by a type change.
type ImportChange struct {
	// Add is the fully qualified name to import.
	Add string

	// Remove is the fully qualified name no longer referenced, or empty
	// when the old type is still in use.
	Remove string

	// NodeID is the first declaration whose type change implied the
	// adjustment.
	NodeID uuid.UUID
}

func kindOf(n tree.Node) string {
	return fmt.Sprintf("%T", n)
}

func typeName[T tree.Node]() string {
	return reflect.TypeFor[T]().String()
}
