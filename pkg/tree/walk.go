package tree

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Visitor holds the hooks a walk calls. Any hook may be nil.
//
// PreVisit runs before a node's children are visited, PostVisit after.
// Both may return a replacement node, the node itself, or nil to remove it.
// Space runs for every captured span, with the cursor positioned at the node
// that owns the span.
type Visitor struct {
	PreVisit  func(c *Cursor, n Node) (Node, error)
	PostVisit func(c *Cursor, n Node) (Node, error)
	Space     func(c *Cursor, s Space, loc Location) Space
}

// Walker drives a depth-first walk that rebuilds the tree from the values
// the visitor returns. Subtrees in which nothing changed are returned as the
// original pointers.
type Walker struct {
	visitor *Visitor
	cursor  *Cursor
	dirty   bool
}

// Walk visits root and every node below it, returning the rebuilt tree. The
// result is nil when the visitor removed root.
func Walk(root Node, v *Visitor) (Node, error) {
	return WalkFrom(RootCursor(), root, v)
}

// WalkFrom is like Walk but starts below an existing cursor, so that hooks
// can see the enclosing path of a subtree.
func WalkFrom(parent *Cursor, root Node, v *Visitor) (Node, error) {
	w := &Walker{visitor: v, cursor: parent}
	return w.Visit(root)
}

// Cursor returns the cursor of the node being visited.
func (w *Walker) Cursor() *Cursor {
	return w.cursor
}

// Visit walks n and returns its replacement. A nil result means n was
// removed.
func (w *Walker) Visit(n Node) (Node, error) {
	if IsNil(n) {
		return nil, nil
	}

	outerDirty := w.dirty
	w.dirty = false
	parent := w.cursor
	w.cursor = NewCursor(parent, n)
	defer func() { w.cursor = parent }()

	out, err := w.visit(n)
	if err != nil {
		w.dirty = outerDirty
		return nil, err
	}
	w.dirty = outerDirty || w.dirty
	return out, nil
}

func (w *Walker) visit(n Node) (Node, error) {
	cur := n

	if pre := w.visitor.PreVisit; pre != nil {
		next, err := pre(w.cursor, cur)
		if err != nil {
			return nil, err
		}
		if IsNil(next) {
			w.dirty = true
			return nil, nil
		}
		if next != cur {
			w.dirty = true
			cur = next
			w.cursor.value = cur
		}
	}

	built, err := cur.WalkChildren(w)
	if err != nil {
		return nil, err
	}
	if IsNil(built) {
		w.dirty = true
		return nil, nil
	}
	if w.dirty {
		cur = built
		w.cursor.value = cur
	}

	if post := w.visitor.PostVisit; post != nil {
		next, err := post(w.cursor, cur)
		if err != nil {
			return nil, err
		}
		if IsNil(next) {
			w.dirty = true
			return nil, nil
		}
		if next != cur {
			w.dirty = true
			cur = next
		}
	}

	return cur, nil
}

// Space passes a captured span through the visitor.
func (w *Walker) Space(s Space, loc Location) Space {
	if w.visitor.Space == nil {
		return s
	}
	out := w.visitor.Space(w.cursor, s, loc)
	if !out.Equal(s) {
		w.dirty = true
	}
	return out
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// KindMismatchError is returned when a visitor replaces a child with a node
// that cannot occupy the child's slot.
type KindMismatchError struct {
	Slot string
	Got  Node
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot place %T in a %s slot", e.Got, e.Slot)
}

// VisitChild walks a child slot. ok is false when the child was nil or was
// removed.
func VisitChild[T Node](w *Walker, n T) (T, bool, error) {
	var zero T
	if IsNil(n) {
		return zero, false, nil
	}
	out, err := w.Visit(n)
	if err != nil {
		return zero, false, err
	}
	if IsNil(out) {
		return zero, false, nil
	}
	t, ok := out.(T)
	if !ok {
		return zero, false, &KindMismatchError{Slot: reflect.TypeFor[T]().String(), Got: out}
	}
	return t, true, nil
}

// VisitList walks a list of bare nodes, dropping removed ones. When the first
// element is removed the next survivor takes over its prefix.
func VisitList[T Node](w *Walker, list []T) ([]T, error) {
	if list == nil {
		return nil, nil
	}
	out := make([]T, 0, len(list))
	var carry *Space
	for _, n := range list {
		prefix := n.Prefix()
		t, ok, err := VisitChild(w, n)
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(out) == 0 && carry == nil {
				carry = &prefix
			}
			continue
		}
		if carry != nil {
			t = WithPrefix(t, *carry)
			carry = nil
		}
		out = append(out, t)
	}
	return out, nil
}

// VisitRightPadded walks the element of p and its trailing space. ok is
// false when the element was removed.
func VisitRightPadded[T Node](w *Walker, p RightPadded[T], loc Location) (RightPadded[T], bool, error) {
	el, ok, err := VisitChild(w, p.Element)
	if err != nil || !ok {
		return p, false, err
	}
	p.Element = el
	p.After = w.Space(p.After, loc)
	return p, true, nil
}

// VisitRightPaddedPtr walks an optional right-padded slot. The result is nil
// when the slot was empty or its element was removed.
func VisitRightPaddedPtr[T Node](w *Walker, p *RightPadded[T], loc Location) (*RightPadded[T], error) {
	if p == nil {
		return nil, nil
	}
	out, ok, err := VisitRightPadded(w, *p, loc)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// VisitRightPaddedList walks a padded list, dropping removed elements.
//
// A removed first element hands its prefix to the next survivor; any other
// removed element's prefix and trailing space are discarded, together with
// the comments that ended its line. A trailing comma on a removed last
// element moves to the new last element.
func VisitRightPaddedList[T Node](w *Walker, list []RightPadded[T], loc Location) ([]RightPadded[T], error) {
	if list == nil {
		return nil, nil
	}
	out := make([]RightPadded[T], 0, len(list))
	var carry *Space
	var trailing *TrailingComma
	orphaned := false
	for i, p := range list {
		prefix := p.Element.Prefix()
		next, ok, err := VisitRightPadded(w, p, loc)
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(out) == 0 && carry == nil {
				carry = &prefix
			} else if carry == nil {
				orphaned = true
			}
			if i == len(list)-1 {
				if tc, found := FindFirst[TrailingComma](p.Markers); found {
					trailing = &tc
				}
			}
			continue
		}
		switch {
		case carry != nil:
			next.Element = WithPrefix(next.Element, *carry)
			carry = nil
		case orphaned:
			next.Element = WithPrefix(next.Element, next.Element.Prefix().WithoutSameLineComments())
		}
		orphaned = false
		out = append(out, next)
	}
	if trailing != nil && len(out) > 0 {
		last := &out[len(out)-1]
		last.Markers = AddIfAbsent(last.Markers, *trailing)
	}
	return out, nil
}

// VisitLeftPadded walks the space before p and its element. ok is false when
// the element was removed.
func VisitLeftPadded[T Node](w *Walker, p LeftPadded[T], loc Location) (LeftPadded[T], bool, error) {
	p.Before = w.Space(p.Before, loc)
	el, ok, err := VisitChild(w, p.Element)
	if err != nil || !ok {
		return p, false, err
	}
	p.Element = el
	return p, true, nil
}

// VisitLeftPaddedPtr walks an optional left-padded slot.
func VisitLeftPaddedPtr[T Node](w *Walker, p *LeftPadded[T], loc Location) (*LeftPadded[T], error) {
	if p == nil {
		return nil, nil
	}
	out, ok, err := VisitLeftPadded(w, *p, loc)
	if err != nil || !ok {
		return nil, err
	}
	return &out, nil
}

// VisitLeftPaddedValue walks the space before a non-node element such as an
// operator.
func VisitLeftPaddedValue[T any](w *Walker, p LeftPadded[T], loc Location) LeftPadded[T] {
	p.Before = w.Space(p.Before, loc)
	return p
}

// VisitContainer walks the space before the opening delimiter and every
// element of c.
func VisitContainer[T Node](w *Walker, c Container[T], before, suffix Location) (Container[T], error) {
	c.Before = w.Space(c.Before, before)
	elements, err := VisitRightPaddedList(w, c.Elements, suffix)
	if err != nil {
		return c, err
	}
	c.Elements = elements
	return c, nil
}

// VisitContainerPtr walks an optional container.
func VisitContainerPtr[T Node](w *Walker, c *Container[T], before, suffix Location) (*Container[T], error) {
	if c == nil {
		return nil, nil
	}
	out, err := VisitContainer(w, *c, before, suffix)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Inspect calls fn for every node in pre-order. The walk stops early when fn
// returns false.
func Inspect(root Node, fn func(c *Cursor, n Node) bool) {
	v := &Visitor{
		PreVisit: func(c *Cursor, n Node) (Node, error) {
			if !fn(c, n) {
				return nil, errStopWalk
			}
			return n, nil
		},
	}
	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	Walk(root, v)
}

// Collect returns every node of type T matching pred, in pre-order. A nil
// pred matches every node of type T.
func Collect[T Node](root Node, pred func(T) bool) []T {
	var out []T
	Inspect(root, func(_ *Cursor, n Node) bool {
		if t, ok := n.(T); ok && (pred == nil || pred(t)) {
			out = append(out, t)
		}
		return true
	})
	return out
}

// First returns the first node of type T matching pred, in pre-order.
func First[T Node](root Node, pred func(T) bool) (T, bool) {
	var found T
	var ok bool
	Inspect(root, func(_ *Cursor, n Node) bool {
		if t, match := n.(T); match && (pred == nil || pred(t)) {
			found, ok = t, true
			return false
		}
		return true
	})
	return found, ok
}

// FindByID returns the node with the given id, or nil.
func FindByID(root Node, id uuid.UUID) Node {
	n, _ := First(root, func(n Node) bool { return n.ID() == id })
	return n
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = errors.New("stop walk")
