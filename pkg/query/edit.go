package query

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
)

// editor applies queued edits during a single walk and records what they
// did.
type editor struct {
	selected map[uuid.UUID]struct{}

	changed []uuid.UUID
	deleted []uuid.UUID

	// fresh holds the roots of subtrees created by edits; formatting is
	// limited to them.
	fresh []uuid.UUID

	retyped []typeChange
}

// typeChange records one declaration whose type was replaced.
type typeChange struct {
	node uuid.UUID
	from string
	to   string
}

func (e *editor) touch(id uuid.UUID) {
	e.fresh = append(e.fresh, id)
}

// apply runs ops on n when n was selected. Every match is edited once, even
// when an edit keeps its id.
func (e *editor) apply(c *tree.Cursor, n tree.Node, ops []op) (tree.Node, error) {
	id := n.ID()
	if _, ok := e.selected[id]; !ok {
		return n, nil
	}
	delete(e.selected, id)

	cur := n
	for _, o := range ops {
		next, err := o.apply(e, c, cur)
		if err != nil {
			return nil, &ApplyError{NodeID: id, Kind: kindOf(n), Op: o.name, Err: err}
		}
		if tree.IsNil(next) {
			e.deleted = append(e.deleted, id)
			return nil, nil
		}
		cur = next
	}
	if cur != n {
		e.changed = append(e.changed, id)
	}
	return cur, nil
}

// changeType replaces the declared type of n with class.
func (e *editor) changeType(n tree.Node, class *tree.Class) (tree.Node, error) {
	d, ok := n.(tree.TypedDeclaration)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no type slot", ErrUnsupportedOperation, n)
	}
	typ := d.TypeExpression()
	if tree.IsNil(typ) {
		return nil, fmt.Errorf("%w: %T declares no type", ErrUnsupportedOperation, n)
	}
	next, err := retype(typ, class)
	if err != nil {
		return nil, err
	}

	out := d.WithTypeExpression(next)
	switch o := out.(type) {
	case *tree.VariableDeclarations:
		out = retypeVariables(o, class)
	case *ktree.Property:
		p := *o
		p.Declarations = retypeVariables(o.Declarations, class)
		out = &p
	}

	from := tree.FullyQualifiedName(tree.TypeOf(typ))
	if from == "" {
		from = tree.QualifiedName(typ)
	}
	e.retyped = append(e.retyped, typeChange{node: n.ID(), from: from, to: class.FullyQualifiedName})
	e.touch(next.ID())
	return out, nil
}

// retype builds a type reference to class shaped like typ: a simple name
// stays simple, a qualified name stays qualified, and type arguments are
// kept.
func retype(typ tree.TypeTree, class *tree.Class) (tree.TypeTree, error) {
	switch t := typ.(type) {
	case *tree.Identifier:
		return renewed(t.WithSimpleName(class.SimpleName()).WithType(tree.WithClass(t.Type, class))), nil
	case *tree.FieldAccess:
		return qualifiedReference(t.Prefix(), t.Markers(), class, tree.WithClass(t.Type, class)), nil
	case *tree.ParameterizedType:
		clazz, err := retype(t.Clazz, class)
		if err != nil {
			return nil, err
		}
		name, ok := clazz.(tree.NameTree)
		if !ok {
			return nil, fmt.Errorf("%w: cannot parameterize %T", ErrUnsupportedOperation, clazz)
		}
		c := *t
		c.Clazz = name
		c.Type = tree.WithClass(t.Type, class)
		return renewed(&c), nil
	default:
		return nil, fmt.Errorf("%w: cannot retype %T", ErrUnsupportedOperation, typ)
	}
}

// qualifiedReference builds the dotted name of class as nested field
// accesses. The outermost access carries prefix, markers and typ.
func qualifiedReference(prefix tree.Space, markers tree.Markers, class *tree.Class, typ tree.Type) tree.TypeTree {
	segments := strings.Split(class.FullyQualifiedName, ".")
	if len(segments) == 1 {
		id := tree.NewIdentifier(prefix, segments[0], typ)
		return tree.WithMarkers(id, markers)
	}

	var target tree.Expression = tree.NewIdentifier(tree.Space{}, segments[0], nil)
	for i, seg := range segments[1:] {
		access := &tree.FieldAccess{
			Base:   tree.NewBase(tree.Space{}, tree.Markers{}),
			Target: target,
			Name:   tree.LeftPad(tree.Space{}, tree.NewIdentifier(tree.Space{}, seg, nil)),
		}
		if i == len(segments)-2 {
			access.Base = tree.NewBase(prefix, markers)
			access.Type = typ
		}
		target = access
	}
	out, _ := target.(*tree.FieldAccess)
	return out
}

// retypeVariables points the type descriptor of every declared variable at
// class.
func retypeVariables(decls *tree.VariableDeclarations, class *tree.Class) *tree.VariableDeclarations {
	if decls == nil {
		return nil
	}
	vars := make([]tree.RightPadded[*tree.NamedVariable], len(decls.Variables))
	for i, v := range decls.Variables {
		vars[i] = v.WithElement(v.Element.WithType(tree.WithClass(v.Element.Type, class)))
	}
	return decls.WithVariables(vars)
}

// rename gives n the name fn returns for its current one.
func (e *editor) rename(n tree.Node, fn func(string) string) (tree.Node, error) {
	switch d := n.(type) {
	case *tree.Identifier:
		id := renewed(d.WithSimpleName(fn(d.SimpleName)))
		e.touch(id.ID())
		return id, nil
	case tree.NamedDeclaration:
		old := d.DeclaredName()
		if old == nil {
			return nil, fmt.Errorf("%w: %T does not declare exactly one name", ErrUnsupportedOperation, n)
		}
		id := renewed(old.WithSimpleName(fn(old.SimpleName)))
		out, ok := d.WithDeclaredName(id)
		if !ok {
			return nil, fmt.Errorf("%w: %T cannot take a new name", ErrUnsupportedOperation, n)
		}
		e.touch(id.ID())
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T has no name", ErrUnsupportedOperation, n)
	}
}

// importChanges reports, per distinct pair of old and new type, the import
// to add and the import that after no longer needs.
func (e *editor) importChanges(after tree.Node) []ImportChange {
	var out []ImportChange
	seen := make(map[[2]string]bool)
	used := make(map[string]bool)
	for _, tc := range e.retyped {
		if tc.from == tc.to {
			continue
		}
		remove := ""
		if isQualified(tc.from) {
			inUse, checked := used[tc.from]
			if !checked {
				inUse = references(after, tc.from)
				used[tc.from] = inUse
			}
			if !inUse {
				remove = tc.from
			}
		}
		add := ""
		if isQualified(tc.to) {
			add = tc.to
		}
		if add == "" && remove == "" {
			continue
		}
		key := [2]string{add, remove}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ImportChange{Add: add, Remove: remove, NodeID: tc.node})
	}
	return out
}

// references reports whether any node of root outside the imports still
// refers to the class fqn, by type descriptor or, for type references
// without one, by name.
func references(root tree.Node, fqn string) bool {
	if tree.IsNil(root) {
		return false
	}
	simple := tree.NewClassType(fqn).SimpleName()
	found := false
	tree.Inspect(root, func(c *tree.Cursor, n tree.Node) bool {
		if _, inImport := tree.FirstEnclosing[*tree.Import](c); inImport {
			return true
		}
		if t := tree.TypeOf(n); t != nil {
			found = tree.IsOfClassType(t, fqn)
		} else if tt, ok := n.(tree.TypeTree); ok {
			name := tree.QualifiedName(tt)
			found = name == fqn || name == simple
		}
		return !found
	})
	return found
}

func isQualified(fqn string) bool {
	return strings.Contains(fqn, ".")
}

// renewed returns n under a fresh id, keeping its prefix and markers.
func renewed[T tree.Node](n T) T {
	out, _ := n.WithBase(tree.NewBase(n.Prefix(), n.Markers())).(T)
	return out
}
