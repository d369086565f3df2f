// Package treetest builds small host-language trees for tests.
//
// Every constructor takes the prefix of the node it builds as written
// source whitespace (comments allowed), so a fixture spells out exactly the
// text it prints.
package treetest

import (
	"strconv"
	"strings"

	"github.com/yaklabco/golst/pkg/tree"
)

// Space parses source whitespace and comments into a Space.
func Space(text string) tree.Space {
	return tree.ParseSpace(text)
}

// Ident returns an untyped identifier.
func Ident(prefix, name string) *tree.Identifier {
	return tree.NewIdentifier(Space(prefix), name, nil)
}

// TypeRef returns a simple-name reference to the class fqn, attributed with
// its type.
func TypeRef(prefix, fqn string) *tree.Identifier {
	class := tree.NewClassType(fqn)
	return tree.NewIdentifier(Space(prefix), class.SimpleName(), class)
}

// QualifiedRef returns the dotted name as nested field accesses. The
// outermost access carries the prefix and, when typ is non-nil, the type.
func QualifiedRef(prefix, name string, typ tree.Type) *tree.FieldAccess {
	segments := strings.Split(name, ".")
	var target tree.Expression = Ident("", segments[0])
	var out *tree.FieldAccess
	for _, seg := range segments[1:] {
		out = &tree.FieldAccess{
			Base:   tree.Prefixed(tree.EmptySpace),
			Target: target,
			Name:   tree.LeftPad(tree.EmptySpace, Ident("", seg)),
		}
		target = out
	}
	if out == nil {
		panic("treetest: QualifiedRef needs a dotted name")
	}
	out = tree.WithPrefix(out, Space(prefix))
	out.Type = typ
	return out
}

// Primitive returns a primitive type keyword.
func Primitive(prefix, keyword string) *tree.Primitive {
	return &tree.Primitive{Base: tree.Prefixed(Space(prefix)), Keyword: keyword}
}

// Generic returns clazz parameterized by args, written as "<A, B>".
func Generic(clazz tree.NameTree, args ...tree.Expression) *tree.ParameterizedType {
	elements := make([]tree.RightPadded[tree.Expression], len(args))
	params := make([]tree.Type, len(args))
	for i, a := range args {
		elements[i] = tree.RightPad(a, tree.EmptySpace)
		params[i] = tree.TypeOf(a)
	}
	container := tree.ContainerOf(tree.EmptySpace, elements...)

	var typ tree.Type
	if class, ok := tree.TypeOf(clazz).(*tree.Class); ok {
		typ = &tree.Parameterized{Class: class, TypeParameters: params}
	}
	return &tree.ParameterizedType{
		Base:           tree.Prefixed(clazz.Prefix()),
		Clazz:          tree.WithPrefix(clazz, tree.EmptySpace),
		TypeParameters: &container,
		Type:           typ,
	}
}

// Int returns an int literal.
func Int(prefix string, v int) *tree.Literal {
	return &tree.Literal{
		Base:        tree.Prefixed(Space(prefix)),
		Value:       v,
		ValueSource: strconv.Itoa(v),
		Type:        &tree.PrimitiveType{Keyword: "int"},
	}
}

// Str returns a string literal.
func Str(prefix, v string) *tree.Literal {
	return &tree.Literal{
		Base:        tree.Prefixed(Space(prefix)),
		Value:       v,
		ValueSource: strconv.Quote(v),
		Type:        tree.NewClassType("java.lang.String"),
	}
}

// Binary returns left op right with one blank before the operator. The
// right operand's prefix is the space after the operator.
func Binary(left tree.Expression, op tree.BinaryOperator, right tree.Expression) *tree.Binary {
	return &tree.Binary{
		Base:     tree.Prefixed(tree.EmptySpace),
		Left:     left,
		Operator: tree.LeftPad(tree.SingleSpace, op),
		Right:    right,
	}
}

// Call returns name(args) without a receiver. Arguments keep their own
// prefixes, so "f(a, b)" needs b written with a leading blank.
func Call(prefix, name string, args ...tree.Expression) *tree.MethodInvocation {
	elements := make([]tree.RightPadded[tree.Expression], len(args))
	for i, a := range args {
		elements[i] = tree.RightPad(a, tree.EmptySpace)
	}
	return &tree.MethodInvocation{
		Base:      tree.Prefixed(Space(prefix)),
		Name:      Ident("", name),
		Arguments: tree.ContainerOf(tree.EmptySpace, elements...),
	}
}

// Mods returns modifiers separated by single blanks; the first has no
// prefix.
func Mods(keywords ...string) []*tree.Modifier {
	out := make([]*tree.Modifier, len(keywords))
	for i, kw := range keywords {
		prefix := tree.SingleSpace
		if i == 0 {
			prefix = tree.EmptySpace
		}
		out[i] = &tree.Modifier{Base: tree.Prefixed(prefix), Keyword: kw}
	}
	return out
}

// Var declares one variable: prefix, then modifiers, then typ (whose own
// prefix separates it from the modifiers), then " name", then " = init"
// when init is non-nil.
func Var(prefix string, mods []*tree.Modifier, typ tree.TypeTree, name string, init tree.Expression) *tree.VariableDeclarations {
	return &tree.VariableDeclarations{
		Base:         tree.Prefixed(Space(prefix)),
		Modifiers:    mods,
		DeclaredType: typ,
		Variables:    []tree.RightPadded[*tree.NamedVariable]{tree.RightPad(Named(" ", name, typ, init), tree.EmptySpace)},
	}
}

// Vars declares several variables of one type, written "a, b".
func Vars(prefix string, mods []*tree.Modifier, typ tree.TypeTree, names ...string) *tree.VariableDeclarations {
	vars := make([]tree.RightPadded[*tree.NamedVariable], len(names))
	for i, name := range names {
		vars[i] = tree.RightPad(Named(" ", name, typ, nil), tree.EmptySpace)
	}
	return &tree.VariableDeclarations{
		Base:         tree.Prefixed(Space(prefix)),
		Modifiers:    mods,
		DeclaredType: typ,
		Variables:    vars,
	}
}

// Named returns a named variable typed like typ, with " = init" when init
// is non-nil.
func Named(prefix, name string, typ tree.TypeTree, init tree.Expression) *tree.NamedVariable {
	v := &tree.NamedVariable{
		Base: tree.Prefixed(Space(prefix)),
		Name: Ident("", name),
	}
	if !tree.IsNil(typ) {
		v.Type = tree.TypeOf(typ)
	}
	if !tree.IsNil(init) {
		pad := tree.LeftPad[tree.Expression](tree.SingleSpace, init)
		v.Initializer = &pad
	}
	return v
}

// Stmt wraps s for a statement list, terminated by a semicolon.
func Stmt(s tree.Statement) tree.RightPadded[tree.Statement] {
	return tree.RightPad(s, tree.EmptySpace).WithMarkers(tree.NewMarkers(tree.NewSemicolon()))
}

// Decl wraps s for a statement list without a terminator, as for classes
// and methods.
func Decl(s tree.Statement) tree.RightPadded[tree.Statement] {
	return tree.RightPad(s, tree.EmptySpace)
}

// Block returns a braced block; end is the space before the closing brace.
func Block(prefix, end string, stmts ...tree.RightPadded[tree.Statement]) *tree.Block {
	return &tree.Block{Base: tree.Prefixed(Space(prefix)), Statements: stmts, End: Space(end)}
}

// Class declares a class named name. The keyword follows the modifiers
// after one blank.
func Class(prefix string, mods []*tree.Modifier, name string, body *tree.Block) *tree.ClassDeclaration {
	kindBefore := tree.EmptySpace
	if len(mods) > 0 {
		kindBefore = tree.SingleSpace
	}
	return &tree.ClassDeclaration{
		Base:      tree.Prefixed(Space(prefix)),
		Modifiers: mods,
		Kind:      tree.LeftPad(kindBefore, tree.KindClass),
		Name:      Ident(" ", name),
		Body:      body,
		Type:      tree.NewClassType(name),
	}
}

// Method declares a method with the given parameters, written "(a, b)".
func Method(prefix string, mods []*tree.Modifier, ret tree.TypeTree, name string, params []*tree.VariableDeclarations, body *tree.Block) *tree.MethodDeclaration {
	elements := make([]tree.RightPadded[tree.Statement], len(params))
	for i, p := range params {
		if i > 0 {
			p = tree.WithPrefix(p, tree.SingleSpace)
		}
		elements[i] = tree.RightPad[tree.Statement](p, tree.EmptySpace)
	}
	if len(params) == 0 {
		elements = []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace)}
	}
	return &tree.MethodDeclaration{
		Base:       tree.Prefixed(Space(prefix)),
		Modifiers:  mods,
		ReturnType: ret,
		Name:       Ident(" ", name),
		Parameters: tree.ContainerOf(tree.EmptySpace, elements...),
		Body:       body,
	}
}

// ForEach loops over iterable, written "for (variable : iterable)" with one
// blank before the parenthesis and around the colon.
func ForEach(prefix string, variable *tree.VariableDeclarations, iterable tree.Expression, body tree.Statement) *tree.ForEachLoop {
	return &tree.ForEachLoop{
		Base: tree.Prefixed(Space(prefix)),
		Control: &tree.ForEachControl{
			Base:     tree.Prefixed(tree.SingleSpace),
			Variable: tree.RightPad(variable, tree.SingleSpace),
			Iterable: tree.RightPad(tree.WithPrefix(iterable, tree.SingleSpace), tree.EmptySpace),
		},
		Body: tree.RightPad(body, tree.EmptySpace),
	}
}

// Wildcard returns "?", or "? extends bounded" and its super form when
// bounded is set.
func Wildcard(prefix string, bound tree.WildcardBound, bounded tree.TypeTree) *tree.Wildcard {
	w := &tree.Wildcard{Base: tree.Prefixed(Space(prefix))}
	if bounded != nil {
		b := tree.LeftPad(tree.SingleSpace, bound)
		w.Bound = &b
		w.BoundedType = tree.WithPrefix(bounded, tree.SingleSpace)
	}
	return w
}

// Return returns "return" followed by expr.
func Return(prefix string, expr tree.Expression) *tree.Return {
	return &tree.Return{Base: tree.Prefixed(Space(prefix)), Expression: expr}
}

// Package returns a terminated package declaration.
func Package(name string) *tree.RightPadded[*tree.Package] {
	pkg := &tree.Package{Base: tree.Prefixed(tree.EmptySpace)}
	if strings.Contains(name, ".") {
		pkg.Expression = QualifiedRef(" ", name, nil)
	} else {
		pkg.Expression = Ident(" ", name)
	}
	rp := tree.RightPad(pkg, tree.EmptySpace).WithMarkers(tree.NewMarkers(tree.NewSemicolon()))
	return &rp
}

// Import returns a terminated import of the class fqn.
func Import(prefix, fqn string) tree.RightPadded[*tree.Import] {
	imp := &tree.Import{
		Base:   tree.Prefixed(Space(prefix)),
		Qualid: QualifiedRef(" ", fqn, nil),
	}
	return tree.RightPad(imp, tree.EmptySpace).WithMarkers(tree.NewMarkers(tree.NewSemicolon()))
}

// Unit returns a compilation unit ending in a single newline.
func Unit(path string, pkg *tree.RightPadded[*tree.Package], imports []tree.RightPadded[*tree.Import], types ...tree.RightPadded[tree.Statement]) *tree.CompilationUnit {
	return &tree.CompilationUnit{
		Base:        tree.Prefixed(tree.EmptySpace),
		Path:        path,
		PackageDecl: pkg,
		Imports:     imports,
		Types:       types,
		EOF:         Space("\n"),
	}
}
