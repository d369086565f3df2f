package tree

import (
	"github.com/google/uuid"
)

// Node is a syntax element of a lossless semantic tree.
//
// Nodes are pointers to structs that are never mutated once built. Every
// change produces a copy; unchanged subtrees are shared between the old and
// the new tree. Concrete nodes embed Base, which supplies the id, prefix and
// marker accessors.
type Node interface {
	// ID returns the stable tree-position id of the node.
	ID() uuid.UUID

	// Prefix returns the whitespace and comments before the node's first token.
	Prefix() Space

	// Markers returns the markers attached to the node.
	Markers() Markers

	// WithBase returns a copy of the node with its id, prefix and markers
	// replaced.
	WithBase(b Base) Node

	// WalkChildren visits every child through w and returns the node
	// rebuilt from the results. A nil result removes the node.
	WalkChildren(w *Walker) (Node, error)
}

// Base carries the fields every node has.
type Base struct {
	id      uuid.UUID
	prefix  Space
	markers Markers
}

// NewBase returns a Base with a fresh id.
func NewBase(prefix Space, markers Markers) Base {
	return Base{id: uuid.New(), prefix: prefix, markers: markers}
}

// BaseWithID returns a Base with the given id, for front ends that assign
// ids deterministically.
func BaseWithID(id uuid.UUID, prefix Space, markers Markers) Base {
	return Base{id: id, prefix: prefix, markers: markers}
}

// Prefixed returns a Base with a fresh id and the given prefix.
func Prefixed(prefix Space) Base {
	return NewBase(prefix, Markers{})
}

// ID returns the node id.
func (b Base) ID() uuid.UUID { return b.id }

// Prefix returns the node prefix.
func (b Base) Prefix() Space { return b.prefix }

// Markers returns the node markers.
func (b Base) Markers() Markers { return b.markers }

// Reprefixed returns a copy of the base with the prefix replaced.
func (b Base) Reprefixed(prefix Space) Base {
	b.prefix = prefix
	return b
}

// Remarked returns a copy of the base with the markers replaced.
func (b Base) Remarked(markers Markers) Base {
	b.markers = markers
	return b
}

// WithPrefix returns a copy of n with its prefix replaced.
func WithPrefix[T Node](n T, prefix Space) T {
	return n.WithBase(baseOf(n).Reprefixed(prefix)).(T)
}

// WithMarkers returns a copy of n with its markers replaced.
func WithMarkers[T Node](n T, markers Markers) T {
	return n.WithBase(baseOf(n).Remarked(markers)).(T)
}

// AddMarker returns a copy of n with mk appended to its markers.
func AddMarker[T Node](n T, mk Marker) T {
	return WithMarkers(n, n.Markers().Add(mk))
}

func baseOf(n Node) Base {
	return BaseWithID(n.ID(), n.Prefix(), n.Markers())
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	ExpressionNode()
}

// Statement is a node that may appear in a statement list.
type Statement interface {
	Node
	StatementNode()
}

// TypeTree is a node that names a type.
type TypeTree interface {
	Node
	TypeTreeNode()
}

// NameTree is a type reference built from names (identifiers, field access,
// parameterized types).
type NameTree interface {
	TypeTree
	NameTreeNode()
}

// Typed is a node carrying a type descriptor.
type Typed interface {
	Node
	NodeType() Type
}

// SourceFile is the root of a parsed file.
type SourceFile interface {
	Node
	SourcePath() string
}

// TypedDeclaration is a declaration with a declared type slot.
type TypedDeclaration interface {
	Node
	TypeExpression() TypeTree
	WithTypeExpression(t TypeTree) Node
}

// NamedDeclaration is a declaration that introduces exactly one name.
type NamedDeclaration interface {
	Node
	DeclaredName() *Identifier
	WithDeclaredName(name *Identifier) (Node, bool)
}

// TypeOf returns the type descriptor of n, or nil when it has none.
func TypeOf(n Node) Type {
	if t, ok := n.(Typed); ok {
		return t.NodeType()
	}
	return nil
}
