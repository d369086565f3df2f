package treesitter

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/golst/pkg/tree"
)

// terminated lists the statement kinds whose trailing semicolon becomes the
// Semicolon marker of their list entry.
//
//nolint:gochecknoglobals // Lookup table.
var terminated = map[string]bool{
	"local_variable_declaration": true,
	"field_declaration":          true,
	"constant_declaration":       true,
	"expression_statement":       true,
	"return_statement":           true,
	"break_statement":            true,
	"continue_statement":         true,
	"method_declaration":         true,
}

// mapper converts a tree-sitter syntax tree into host nodes. pos is the
// offset just past the last consumed token; the source between pos and the
// next token becomes that token's Space.
type mapper struct {
	src   []byte
	pos   uint32
	types *typeTable
}

func newMapper(src []byte, root *sitter.Node) *mapper {
	types := newTypeTable()
	types.collect(root, src)
	return &mapper{src: src, types: types}
}

func unsupported(n *sitter.Node) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
}

// children returns the children of n without comments. Comments are read
// as part of the whitespace around tokens.
func children(n *sitter.Node) []*sitter.Node {
	count := int(n.ChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := range count {
		c := n.Child(i)
		if c == nil || isComment(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func lastChild(n *sitter.Node) *sitter.Node {
	kids := children(n)
	if len(kids) == 0 {
		return nil
	}
	return kids[len(kids)-1]
}

func isComment(n *sitter.Node) bool {
	switch n.Type() {
	case "line_comment", "block_comment", "comment":
		return true
	}
	return false
}

// gap consumes the source up to off as a Space.
func (m *mapper) gap(off uint32) tree.Space {
	if off <= m.pos {
		return tree.EmptySpace
	}
	s := tree.ParseSpace(string(m.src[m.pos:off]))
	m.pos = off
	return s
}

// prefix consumes the space in front of n.
func (m *mapper) prefix(n *sitter.Node) tree.Space {
	return m.gap(n.StartByte())
}

// token consumes the space in front of n and n itself.
func (m *mapper) token(n *sitter.Node) tree.Space {
	s := m.prefix(n)
	m.pos = n.EndByte()
	return s
}

func (m *mapper) text(n *sitter.Node) string {
	return n.Content(m.src)
}

// unknown keeps n verbatim.
func (m *mapper) unknown(n *sitter.Node) *tree.Unknown {
	prefix := m.token(n)
	return &tree.Unknown{Base: tree.Prefixed(prefix), Source: m.text(n), Kind: n.Type()}
}

func (m *mapper) ident(n *sitter.Node, typ tree.Type) *tree.Identifier {
	prefix := m.token(n)
	return tree.NewIdentifier(prefix, m.text(n), typ)
}

func (m *mapper) compilationUnit(root *sitter.Node, path string) (*tree.CompilationUnit, error) {
	cu := &tree.CompilationUnit{Base: tree.Prefixed(tree.EmptySpace), Path: path}
	for _, c := range children(root) {
		switch c.Type() {
		case "package_declaration":
			if cu.PackageDecl != nil || len(cu.Imports) > 0 || len(cu.Types) > 0 {
				return nil, unsupported(c)
			}
			pkg, err := m.packageDecl(c)
			if err != nil {
				return nil, err
			}
			cu.PackageDecl = pkg
		case "import_declaration":
			if len(cu.Types) > 0 {
				return nil, unsupported(c)
			}
			imp, err := m.importDecl(c)
			if err != nil {
				return nil, err
			}
			cu.Imports = append(cu.Imports, imp)
		default:
			cu.Types = append(cu.Types, m.statement(c))
		}
	}
	cu.EOF = m.gap(uint32(len(m.src)))
	return cu, nil
}

func (m *mapper) packageDecl(n *sitter.Node) (*tree.RightPadded[*tree.Package], error) {
	pkg := &tree.Package{Base: tree.Prefixed(m.prefix(n))}
	var after tree.Space
	for _, c := range children(n) {
		switch c.Type() {
		case "package":
			m.token(c)
		case "identifier", "scoped_identifier":
			expr, err := m.name(c)
			if err != nil {
				return nil, err
			}
			pkg.Expression = expr
		case ";":
			after = m.token(c)
		default:
			// Annotations would print after the keyword's space.
			return nil, unsupported(c)
		}
	}
	rp := tree.RightPad(pkg, after).WithMarkers(tree.NewMarkers(tree.NewSemicolon()))
	return &rp, nil
}

func (m *mapper) importDecl(n *sitter.Node) (tree.RightPadded[*tree.Import], error) {
	var zero tree.RightPadded[*tree.Import]
	imp := &tree.Import{Base: tree.Prefixed(m.prefix(n))}

	var qualid tree.Expression
	var dot, after tree.Space
	wildcard := false
	for _, c := range children(n) {
		var err error
		switch c.Type() {
		case "import":
			m.token(c)
		case "static":
			imp.Static = tree.LeftPad(m.token(c), true)
		case "identifier", "scoped_identifier":
			qualid, err = m.name(c)
		case ".":
			dot = m.token(c)
		case "asterisk":
			if qualid == nil {
				return zero, unsupported(c)
			}
			wildcard = true
			qualid = &tree.FieldAccess{
				Base:   tree.Prefixed(qualid.Prefix()),
				Target: tree.WithPrefix(qualid, tree.EmptySpace),
				Name:   tree.LeftPad(dot, m.ident(c, nil)),
			}
		case ";":
			after = m.token(c)
		default:
			err = unsupported(c)
		}
		if err != nil {
			return zero, err
		}
	}

	fa, ok := qualid.(*tree.FieldAccess)
	if !ok {
		return zero, unsupported(n)
	}
	imp.Qualid = fa
	if !imp.Static.Element && !wildcard {
		m.types.addImport(tree.QualifiedName(fa))
	}
	return tree.RightPad(imp, after).WithMarkers(tree.NewMarkers(tree.NewSemicolon())), nil
}

// statement maps a statement or member into a list entry. Constructs the
// host model cannot hold are kept verbatim, including their semicolon.
func (m *mapper) statement(n *sitter.Node) tree.RightPadded[tree.Statement] {
	if n.Type() == ";" {
		empty := tree.NewEmpty(m.token(n))
		return tree.RightPad[tree.Statement](empty, tree.EmptySpace).WithMarkers(tree.NewMarkers(tree.NewSemicolon()))
	}

	start := m.pos
	s, err := m.statementNode(n)
	if err != nil {
		m.pos = start
		return tree.RightPad[tree.Statement](m.unknown(n), tree.EmptySpace)
	}

	rp := tree.RightPad(s, tree.EmptySpace)
	if last := lastChild(n); terminated[n.Type()] && last != nil && last.Type() == ";" {
		rp.After = m.token(last)
		rp.Markers = tree.NewMarkers(tree.NewSemicolon())
	}
	return rp
}

func (m *mapper) statementNode(n *sitter.Node) (tree.Statement, error) {
	switch n.Type() {
	case "class_declaration", "interface_declaration", "enum_declaration":
		return m.classDeclaration(n)
	case "method_declaration", "constructor_declaration":
		return m.methodDeclaration(n)
	case "field_declaration", "local_variable_declaration", "constant_declaration":
		return m.variableDeclarations(n)
	case "block":
		return m.block(n)
	case "expression_statement":
		return m.expressionStatement(n)
	case "return_statement":
		return m.returnStatement(n)
	case "if_statement":
		return m.ifStatement(n)
	case "break_statement", "continue_statement":
		return m.jump(n)
	case "enhanced_for_statement":
		return m.forEachLoop(n)
	case "for_statement":
		return m.forLoop(n)
	case "labeled_statement":
		return m.label(n)
	}
	return nil, unsupported(n)
}

func (m *mapper) classDeclaration(n *sitter.Node) (*tree.ClassDeclaration, error) {
	cd := &tree.ClassDeclaration{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		var err error
		switch c.Type() {
		case "modifiers":
			cd.LeadingAnnotations, cd.Modifiers, err = m.modifiers(c)
		case "class":
			cd.Kind = tree.LeftPad(m.token(c), tree.KindClass)
		case "interface":
			cd.Kind = tree.LeftPad(m.token(c), tree.KindInterface)
		case "enum":
			cd.Kind = tree.LeftPad(m.token(c), tree.KindEnum)
		case "identifier":
			cd.Name = m.ident(c, nil)
			cd.Type = m.types.resolve(cd.Name.SimpleName)
		case "type_parameters":
			var params tree.Container[*tree.TypeParameter]
			params, err = delimited(m, children(c), "<", ",", ">", m.typeParameter)
			cd.TypeParameters = &params
		case "superclass":
			cd.Extends, err = m.superclass(c)
		case "super_interfaces":
			cd.Implements, err = m.superInterfaces(c)
		case "class_body", "interface_body":
			cd.Body, err = m.block(c)
		case "enum_body":
			cd.Body, err = m.enumBody(c)
		default:
			err = unsupported(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if cd.Name == nil || cd.Body == nil {
		return nil, unsupported(n)
	}
	return cd, nil
}

func (m *mapper) superclass(n *sitter.Node) (*tree.LeftPadded[tree.TypeTree], error) {
	kids := children(n)
	if len(kids) != 2 {
		return nil, unsupported(n)
	}
	before := m.token(kids[0])
	extends := tree.LeftPad(before, m.typeTree(kids[1]))
	return &extends, nil
}

func (m *mapper) superInterfaces(n *sitter.Node) (*tree.Container[tree.TypeTree], error) {
	kids := children(n)
	if len(kids) != 2 || kids[1].Type() != "type_list" {
		return nil, unsupported(n)
	}
	nodes := append([]*sitter.Node{kids[0]}, children(kids[1])...)
	list, err := delimited(m, nodes, "implements", ",", "", m.typeElement)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// modifiers splits a modifier list into annotations and keywords. An
// annotation after a keyword can not be placed and is unsupported.
func (m *mapper) modifiers(n *sitter.Node) ([]*tree.Annotation, []*tree.Modifier, error) {
	var annotations []*tree.Annotation
	var mods []*tree.Modifier
	for _, c := range children(n) {
		switch c.Type() {
		case "annotation", "marker_annotation":
			if len(mods) > 0 {
				return nil, nil, unsupported(c)
			}
			a, err := m.annotation(c)
			if err != nil {
				return nil, nil, err
			}
			annotations = append(annotations, a)
		default:
			prefix := m.token(c)
			mods = append(mods, &tree.Modifier{Base: tree.Prefixed(prefix), Keyword: m.text(c)})
		}
	}
	return annotations, mods, nil
}

func (m *mapper) annotation(n *sitter.Node) (*tree.Annotation, error) {
	a := &tree.Annotation{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		switch c.Type() {
		case "@":
			m.token(c)
		case "identifier", "scoped_identifier":
			a.AnnotationType = m.typeName(c)
		case "annotation_argument_list":
			args, err := delimited(m, children(c), "(", ",", ")", m.annotationArgument)
			if err != nil {
				return nil, err
			}
			a.Arguments = &args
		default:
			return nil, unsupported(c)
		}
	}
	return a, nil
}

// annotationArgument maps name = value pairs to assignments.
func (m *mapper) annotationArgument(n *sitter.Node) (tree.Expression, error) {
	if n.Type() != "element_value_pair" {
		return m.expression(n), nil
	}
	kids := children(n)
	if len(kids) != 3 {
		return nil, unsupported(n)
	}
	a := &tree.Assignment{Base: tree.Prefixed(m.prefix(n)), Operator: tree.OpAssign}
	a.Variable = m.ident(kids[0], nil)
	before := m.token(kids[1])
	a.Assignment = tree.LeftPad(before, m.expression(kids[2]))
	return a, nil
}

func (m *mapper) typeParameter(n *sitter.Node) (*tree.TypeParameter, error) {
	if n.Type() != "type_parameter" {
		return nil, unsupported(n)
	}
	tp := &tree.TypeParameter{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		switch c.Type() {
		case "type_identifier", "identifier":
			tp.Name = m.ident(c, nil)
		case "type_bound":
			bounds, err := delimited(m, children(c), "extends", "&", "", m.typeElement)
			if err != nil {
				return nil, err
			}
			tp.Bounds = &bounds
		default:
			return nil, unsupported(c)
		}
	}
	return tp, nil
}

// block maps a braced body: a block, class body or constructor body.
func (m *mapper) block(n *sitter.Node) (*tree.Block, error) {
	b := &tree.Block{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		switch c.Type() {
		case "{":
			m.token(c)
		case "}":
			b.End = m.token(c)
		default:
			b.Statements = append(b.Statements, m.statement(c))
		}
	}
	return b, nil
}

func (m *mapper) methodDeclaration(n *sitter.Node) (*tree.MethodDeclaration, error) {
	md := &tree.MethodDeclaration{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		var err error
		switch c.Type() {
		case "modifiers":
			md.LeadingAnnotations, md.Modifiers, err = m.modifiers(c)
		case "type_parameters":
			var params tree.Container[*tree.TypeParameter]
			params, err = delimited(m, children(c), "<", ",", ">", m.typeParameter)
			md.TypeParameters = &params
		case "identifier":
			md.Name = m.ident(c, nil)
		case "formal_parameters":
			md.Parameters, err = delimited(m, children(c), "(", ",", ")", m.parameter)
		case "throws":
			var thrown tree.Container[tree.NameTree]
			thrown, err = delimited(m, children(c), "throws", ",", "", m.thrown)
			md.Throws = &thrown
		case "block", "constructor_body":
			md.Body, err = m.block(c)
		case ";":
			// Left for the enclosing list entry.
		case "dimensions":
			err = unsupported(c)
		default:
			if md.Name != nil || md.ReturnType != nil {
				err = unsupported(c)
				break
			}
			md.ReturnType = m.typeTree(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if md.Name == nil {
		return nil, unsupported(n)
	}
	return md, nil
}

func (m *mapper) thrown(n *sitter.Node) (tree.NameTree, error) {
	return m.typeName(n), nil
}

// parameter maps a formal parameter to a one-variable declaration.
func (m *mapper) parameter(n *sitter.Node) (tree.Statement, error) {
	switch n.Type() {
	case "formal_parameter", "spread_parameter":
	default:
		return nil, unsupported(n)
	}

	vd := &tree.VariableDeclarations{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		var err error
		switch c.Type() {
		case "modifiers":
			vd.LeadingAnnotations, vd.Modifiers, err = m.modifiers(c)
		case "...":
			varargs := m.token(c)
			vd.Varargs = &varargs
		case "identifier":
			nv := &tree.NamedVariable{Base: tree.Prefixed(m.prefix(c)), Type: typeOf(vd.DeclaredType)}
			nv.Name = m.ident(c, nil)
			vd.Variables = append(vd.Variables, tree.RightPad(nv, tree.EmptySpace))
		case "variable_declarator":
			var nv *tree.NamedVariable
			nv, err = m.namedVariable(c, vd.DeclaredType)
			if err == nil {
				vd.Variables = append(vd.Variables, tree.RightPad(nv, tree.EmptySpace))
			}
		case "dimensions":
			err = unsupported(c)
		default:
			if vd.DeclaredType != nil {
				err = unsupported(c)
				break
			}
			vd.DeclaredType = m.typeTree(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(vd.Variables) != 1 {
		return nil, unsupported(n)
	}
	return vd, nil
}

func (m *mapper) variableDeclarations(n *sitter.Node) (*tree.VariableDeclarations, error) {
	vd := &tree.VariableDeclarations{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		var err error
		switch c.Type() {
		case "modifiers":
			vd.LeadingAnnotations, vd.Modifiers, err = m.modifiers(c)
		case "variable_declarator":
			var nv *tree.NamedVariable
			nv, err = m.namedVariable(c, vd.DeclaredType)
			if err == nil {
				vd.Variables = append(vd.Variables, tree.RightPad(nv, tree.EmptySpace))
			}
		case ",":
			if len(vd.Variables) == 0 {
				err = unsupported(c)
				break
			}
			vd.Variables[len(vd.Variables)-1].After = m.token(c)
		case ";":
			// Left for the enclosing list entry.
		default:
			if vd.DeclaredType != nil {
				err = unsupported(c)
				break
			}
			vd.DeclaredType = m.typeTree(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if len(vd.Variables) == 0 {
		return nil, unsupported(n)
	}
	return vd, nil
}

// namedVariable maps a declarator. The initializer may itself be a plain
// identifier, so the name is taken from the grammar's name field.
func (m *mapper) namedVariable(n *sitter.Node, typ tree.TypeTree) (*tree.NamedVariable, error) {
	nv := &tree.NamedVariable{Base: tree.Prefixed(m.prefix(n)), Type: typeOf(typ)}
	name := n.ChildByFieldName("name")
	if name == nil {
		return nil, unsupported(n)
	}
	var equals *tree.Space
	for _, c := range children(n) {
		switch {
		case sameNode(c, name):
			nv.Name = m.ident(c, nil)
		case c.Type() == "=" && equals == nil:
			before := m.token(c)
			equals = &before
		case c.Type() == "dimensions":
			return nil, unsupported(c)
		default:
			if equals == nil || nv.Initializer != nil {
				return nil, unsupported(c)
			}
			init := tree.LeftPad(*equals, m.expression(c))
			nv.Initializer = &init
		}
	}
	if nv.Name == nil {
		return nil, unsupported(n)
	}
	return nv, nil
}

func (m *mapper) expressionStatement(n *sitter.Node) (tree.Statement, error) {
	kids := children(n)
	if len(kids) == 0 {
		return nil, unsupported(n)
	}
	s, ok := m.expression(kids[0]).(tree.Statement)
	if !ok {
		return nil, unsupported(kids[0])
	}
	return s, nil
}

func (m *mapper) returnStatement(n *sitter.Node) (*tree.Return, error) {
	r := &tree.Return{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		switch c.Type() {
		case "return":
			m.token(c)
		case ";":
		default:
			r.Expression = m.expression(c)
		}
	}
	return r, nil
}

func (m *mapper) jump(n *sitter.Node) (tree.Statement, error) {
	prefix := m.prefix(n)
	var label *tree.Identifier
	for _, c := range children(n) {
		switch c.Type() {
		case "break", "continue":
			m.token(c)
		case "identifier":
			label = m.ident(c, nil)
		case ";":
		default:
			return nil, unsupported(c)
		}
	}
	if n.Type() == "break_statement" {
		return &tree.Break{Base: tree.Prefixed(prefix), Label: label}, nil
	}
	return &tree.Continue{Base: tree.Prefixed(prefix), Label: label}, nil
}

func (m *mapper) ifStatement(n *sitter.Node) (*tree.If, error) {
	ifs := &tree.If{Base: tree.Prefixed(m.prefix(n))}
	var els *tree.Else
	for _, c := range children(n) {
		switch {
		case c.Type() == "if":
			m.token(c)
		case c.Type() == "parenthesized_expression" && ifs.Condition == nil:
			cond, err := m.controlParentheses(c)
			if err != nil {
				return nil, err
			}
			ifs.Condition = cond
		case c.Type() == "else":
			els = &tree.Else{Base: tree.Prefixed(m.token(c))}
		case els != nil:
			els.Body = m.statement(c)
		default:
			ifs.Then = m.statement(c)
		}
	}
	if ifs.Condition == nil {
		return nil, unsupported(n)
	}
	ifs.Else = els
	return ifs, nil
}

func (m *mapper) controlParentheses(n *sitter.Node) (*tree.ControlParentheses, error) {
	kids := children(n)
	if len(kids) != 3 {
		return nil, unsupported(n)
	}
	cp := &tree.ControlParentheses{Base: tree.Prefixed(m.prefix(n))}
	m.token(kids[0])
	expr := m.expression(kids[1])
	cp.Tree = tree.RightPad(expr, m.token(kids[2]))
	return cp, nil
}

// delimited maps a token list: an optional open token, elements split by
// delim, and an optional closing token. An empty list keeps the space
// between its delimiters as a lone Empty element when T allows it.
func delimited[T tree.Node](
	m *mapper,
	nodes []*sitter.Node,
	open, delim, closing string,
	elem func(*sitter.Node) (T, error),
) (tree.Container[T], error) {
	var c tree.Container[T]
	pending := false
	for _, n := range nodes {
		switch n.Type() {
		case open:
			c.Before = m.token(n)
		case delim:
			after := m.token(n)
			if !pending {
				return c, unsupported(n)
			}
			c.Elements[len(c.Elements)-1].After = after
			pending = false
		case closing:
			sp := m.token(n)
			last := len(c.Elements) - 1
			switch {
			case pending:
				c.Elements[last].After = sp
			case last >= 0:
				c.Elements[last].Markers = c.Elements[last].Markers.Add(tree.NewTrailingComma(sp))
			default:
				empty, ok := any(tree.NewEmpty(sp)).(T)
				if !ok {
					return c, unsupported(n)
				}
				c.Elements = append(c.Elements, tree.RightPad(empty, tree.EmptySpace))
			}
			pending = false
		default:
			e, err := elem(n)
			if err != nil {
				return c, err
			}
			c.Elements = append(c.Elements, tree.RightPad(e, tree.EmptySpace))
			pending = true
		}
	}
	return c, nil
}

func typeOf(t tree.TypeTree) tree.Type {
	if tree.IsNil(t) {
		return nil
	}
	return tree.TypeOf(t)
}
