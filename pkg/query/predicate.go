package query

import (
	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
)

// Predicate decides whether a node is selected. The cursor is positioned at
// the node. A non-nil error aborts the selection.
type Predicate func(c *tree.Cursor, n tree.Node) (bool, error)

// Where adapts a predicate over a concrete node type. Nodes of other types
// do not match.
func Where[T tree.Node](fn func(c *tree.Cursor, n T) (bool, error)) Predicate {
	return func(c *tree.Cursor, n tree.Node) (bool, error) {
		t, ok := n.(T)
		if !ok {
			return false, nil
		}
		return fn(c, t)
	}
}

// Any matches every node.
func Any() Predicate {
	return func(*tree.Cursor, tree.Node) (bool, error) { return true, nil }
}

// HasType matches nodes whose type descriptor names the class fqn, and
// declarations whose declared type does.
func HasType(fqn string) Predicate {
	return func(_ *tree.Cursor, n tree.Node) (bool, error) {
		if tree.IsOfClassType(tree.TypeOf(n), fqn) {
			return true, nil
		}
		if d, ok := n.(tree.TypedDeclaration); ok {
			return tree.IsOfClassType(tree.TypeOf(d.TypeExpression()), fqn), nil
		}
		return false, nil
	}
}

// DeclaredTypeIs matches declarations whose declared type is the class fqn.
// When the type reference carries no descriptor the written name is
// compared instead, either fully qualified or as the simple name.
func DeclaredTypeIs(fqn string) Predicate {
	simple := tree.NewClassType(fqn).SimpleName()
	return func(_ *tree.Cursor, n tree.Node) (bool, error) {
		d, ok := n.(tree.TypedDeclaration)
		if !ok {
			return false, nil
		}
		typ := d.TypeExpression()
		if tree.IsNil(typ) {
			return false, nil
		}
		if t := tree.TypeOf(typ); t != nil {
			return tree.IsOfClassType(t, fqn), nil
		}
		written := tree.QualifiedName(typ)
		return written == fqn || written == simple, nil
	}
}

// IsField matches variable declarations and properties declared directly in
// a class body or at the top level of an extension source file.
func IsField() Predicate {
	return func(c *tree.Cursor, n tree.Node) (bool, error) {
		switch n.(type) {
		case *tree.VariableDeclarations, *ktree.Property:
		default:
			return false, nil
		}
		parent := c.Parent()
		switch p := parent.Node().(type) {
		case *ktree.CompilationUnit:
			return true, nil
		case *tree.Block:
			class, ok := parent.ParentNode().(*tree.ClassDeclaration)
			return ok && class.Body != nil && class.Body.ID() == p.ID(), nil
		default:
			return false, nil
		}
	}
}

// NameIs matches declarations that declare name and identifiers spelled
// name. A multi-variable declaration matches when any variable is named.
func NameIs(name string) Predicate {
	return func(_ *tree.Cursor, n tree.Node) (bool, error) {
		switch n := n.(type) {
		case *tree.Identifier:
			return n.SimpleName == name, nil
		case *tree.VariableDeclarations:
			for _, v := range n.Names() {
				if v == name {
					return true, nil
				}
			}
			return false, nil
		case tree.NamedDeclaration:
			id := n.DeclaredName()
			return id != nil && id.SimpleName == name, nil
		default:
			return false, nil
		}
	}
}

// And matches when every predicate matches. It stops at the first miss.
func And(preds ...Predicate) Predicate {
	return func(c *tree.Cursor, n tree.Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(c, n)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Or matches when any predicate matches. It stops at the first hit.
func Or(preds ...Predicate) Predicate {
	return func(c *tree.Cursor, n tree.Node) (bool, error) {
		for _, p := range preds {
			ok, err := p(c, n)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Not inverts a predicate.
func Not(pred Predicate) Predicate {
	return func(c *tree.Cursor, n tree.Node) (bool, error) {
		ok, err := pred(c, n)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}
