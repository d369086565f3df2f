package treesitter

import (
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/golst/pkg/tree"
)

//nolint:gochecknoglobals // Lookup table.
var unaryOperators = map[string]tree.UnaryOperator{
	"+": tree.OpPositive,
	"-": tree.OpNegative,
	"~": tree.OpComplement,
	"!": tree.OpNot,
}

// expression maps n, keeping it verbatim when the host model has no shape
// for it.
func (m *mapper) expression(n *sitter.Node) tree.Expression {
	start := m.pos
	e, err := m.expressionNode(n)
	if err != nil {
		m.pos = start
		return m.unknown(n)
	}
	return e
}

func (m *mapper) expressionElement(n *sitter.Node) (tree.Expression, error) {
	return m.expression(n), nil
}

func (m *mapper) expressionNode(n *sitter.Node) (tree.Expression, error) {
	switch n.Type() {
	case "identifier", "this", "super":
		return m.ident(n, nil), nil
	case "type_identifier", "scoped_type_identifier", "generic_type",
		"integral_type", "floating_point_type", "boolean_type", "void_type":
		return asExpression(n, m.typeTree(n))
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal",
		"binary_integer_literal", "decimal_floating_point_literal",
		"hex_floating_point_literal", "string_literal", "text_block",
		"character_literal", "true", "false", "null_literal":
		return m.literal(n), nil
	case "field_access":
		return m.fieldAccess(n)
	case "binary_expression":
		return m.binary(n)
	case "unary_expression":
		return m.unary(n)
	case "update_expression":
		return m.update(n)
	case "assignment_expression":
		return m.assignment(n)
	case "method_invocation":
		return m.methodInvocation(n)
	case "object_creation_expression":
		return m.newClass(n)
	case "parenthesized_expression":
		return m.parentheses(n)
	case "ternary_expression":
		return m.ternary(n)
	case "instanceof_expression":
		return m.instanceOf(n)
	case "cast_expression":
		return m.typeCast(n)
	case "lambda_expression":
		return m.lambda(n)
	}
	return nil, unsupported(n)
}

func asExpression(n *sitter.Node, t tree.TypeTree) (tree.Expression, error) {
	e, ok := t.(tree.Expression)
	if !ok {
		return nil, unsupported(n)
	}
	return e, nil
}

func (m *mapper) literal(n *sitter.Node) *tree.Literal {
	prefix := m.token(n)
	src := m.text(n)
	lit := &tree.Literal{Base: tree.Prefixed(prefix), ValueSource: src}

	switch n.Type() {
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		digits := strings.TrimRight(src, "lL")
		v, err := strconv.ParseInt(digits, 0, 64)
		if digits != src {
			lit.Type = &tree.PrimitiveType{Keyword: "long"}
			if err == nil {
				lit.Value = v
			}
			break
		}
		lit.Type = &tree.PrimitiveType{Keyword: "int"}
		if err == nil {
			lit.Value = int(v)
		}
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		keyword := "double"
		if strings.HasSuffix(strings.ToLower(src), "f") {
			keyword = "float"
		}
		lit.Type = &tree.PrimitiveType{Keyword: keyword}
		if v, err := strconv.ParseFloat(strings.TrimRight(src, "fFdD"), 64); err == nil {
			lit.Value = v
		}
	case "string_literal", "text_block":
		lit.Type = tree.NewClassType("java.lang.String")
		if v, err := strconv.Unquote(src); err == nil {
			lit.Value = v
		} else {
			lit.Value = src
		}
	case "character_literal":
		lit.Type = &tree.PrimitiveType{Keyword: "char"}
		if v, _, _, err := strconv.UnquoteChar(strings.Trim(src, "'"), '\''); err == nil {
			lit.Value = v
		}
	case "true", "false":
		lit.Type = &tree.PrimitiveType{Keyword: "boolean"}
		lit.Value = src == "true"
	case "null_literal":
		lit.Type = &tree.PrimitiveType{Keyword: "null"}
	}
	return lit
}

// name maps an identifier or a dotted name.
func (m *mapper) name(n *sitter.Node) (tree.Expression, error) {
	switch n.Type() {
	case "identifier", "type_identifier":
		return m.ident(n, nil), nil
	case "scoped_identifier", "scoped_type_identifier":
		kids := children(n)
		if len(kids) != 3 || kids[1].Type() != "." {
			return nil, unsupported(n)
		}
		fa := &tree.FieldAccess{Base: tree.Prefixed(m.prefix(n))}
		target, err := m.name(kids[0])
		if err != nil {
			return nil, err
		}
		fa.Target = target
		before := m.token(kids[1])
		fa.Name = tree.LeftPad(before, m.ident(kids[2], nil))
		return fa, nil
	}
	return nil, unsupported(n)
}

func (m *mapper) fieldAccess(n *sitter.Node) (*tree.FieldAccess, error) {
	kids := children(n)
	if len(kids) != 3 || kids[1].Type() != "." {
		return nil, unsupported(n)
	}
	fa := &tree.FieldAccess{Base: tree.Prefixed(m.prefix(n))}
	fa.Target = m.expression(kids[0])
	before := m.token(kids[1])
	fa.Name = tree.LeftPad(before, m.ident(kids[2], nil))
	return fa, nil
}

func (m *mapper) binary(n *sitter.Node) (*tree.Binary, error) {
	kids := children(n)
	if len(kids) != 3 {
		return nil, unsupported(n)
	}
	op, ok := tree.BinaryOperatorFor(kids[1].Type())
	if !ok {
		return nil, unsupported(kids[1])
	}
	b := &tree.Binary{Base: tree.Prefixed(m.prefix(n))}
	b.Left = m.expression(kids[0])
	b.Operator = tree.LeftPad(m.token(kids[1]), op)
	b.Right = m.expression(kids[2])
	return b, nil
}

func (m *mapper) unary(n *sitter.Node) (*tree.Unary, error) {
	kids := children(n)
	if len(kids) != 2 {
		return nil, unsupported(n)
	}
	op, ok := unaryOperators[kids[0].Type()]
	if !ok {
		return nil, unsupported(kids[0])
	}
	u := &tree.Unary{Base: tree.Prefixed(m.prefix(n))}
	u.Operator = tree.LeftPad(m.token(kids[0]), op)
	u.Expression = m.expression(kids[1])
	return u, nil
}

// update maps ++ and -- in either position.
func (m *mapper) update(n *sitter.Node) (*tree.Unary, error) {
	kids := children(n)
	if len(kids) != 2 {
		return nil, unsupported(n)
	}
	u := &tree.Unary{Base: tree.Prefixed(m.prefix(n))}
	switch {
	case kids[0].Type() == "++":
		u.Operator = tree.LeftPad(m.token(kids[0]), tree.OpPreIncrement)
		u.Expression = m.expression(kids[1])
	case kids[0].Type() == "--":
		u.Operator = tree.LeftPad(m.token(kids[0]), tree.OpPreDecrement)
		u.Expression = m.expression(kids[1])
	case kids[1].Type() == "++":
		u.Expression = m.expression(kids[0])
		u.Operator = tree.LeftPad(m.token(kids[1]), tree.OpPostIncrement)
	case kids[1].Type() == "--":
		u.Expression = m.expression(kids[0])
		u.Operator = tree.LeftPad(m.token(kids[1]), tree.OpPostDecrement)
	default:
		return nil, unsupported(n)
	}
	return u, nil
}

func (m *mapper) assignment(n *sitter.Node) (*tree.Assignment, error) {
	kids := children(n)
	if len(kids) != 3 {
		return nil, unsupported(n)
	}
	op, ok := tree.AssignmentOperatorFor(kids[1].Type())
	if !ok {
		return nil, unsupported(kids[1])
	}
	a := &tree.Assignment{Base: tree.Prefixed(m.prefix(n)), Operator: op}
	a.Variable = m.expression(kids[0])
	before := m.token(kids[1])
	a.Assignment = tree.LeftPad(before, m.expression(kids[2]))
	return a, nil
}

func (m *mapper) methodInvocation(n *sitter.Node) (*tree.MethodInvocation, error) {
	mi := &tree.MethodInvocation{Base: tree.Prefixed(m.prefix(n))}
	object := n.ChildByFieldName("object")
	for _, c := range children(n) {
		var err error
		switch {
		case object != nil && sameNode(c, object):
			receiver := m.expression(c)
			sel := tree.RightPad(receiver, tree.EmptySpace)
			mi.Select = &sel
		case c.Type() == "." && mi.Select != nil && mi.Name == nil:
			mi.Select.After = m.token(c)
		case c.Type() == "type_arguments":
			var args tree.Container[tree.Expression]
			args, err = delimited(m, children(c), "<", ",", ">", m.typeArgument)
			mi.TypeParameters = &args
		case c.Type() == "identifier" && mi.Name == nil:
			mi.Name = m.ident(c, nil)
		case c.Type() == "argument_list":
			mi.Arguments, err = delimited(m, children(c), "(", ",", ")", m.expressionElement)
		default:
			// Qualified super calls.
			err = unsupported(c)
		}
		if err != nil {
			return nil, err
		}
	}
	if mi.Name == nil {
		return nil, unsupported(n)
	}
	return mi, nil
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

func (m *mapper) newClass(n *sitter.Node) (*tree.NewClass, error) {
	nc := &tree.NewClass{Base: tree.Prefixed(m.prefix(n))}
	kids := children(n)
	i := 0
	if len(kids) > 2 && kids[0].Type() != "new" && kids[1].Type() == "." {
		enclosing := m.expression(kids[0])
		rp := tree.RightPad(enclosing, m.token(kids[1]))
		nc.Enclosing = &rp
		i = 2
	}
	for _, c := range kids[i:] {
		var err error
		switch c.Type() {
		case "new":
			nc.New = m.token(c)
		case "argument_list":
			nc.Arguments, err = delimited(m, children(c), "(", ",", ")", m.expressionElement)
		case "class_body":
			nc.Body, err = m.block(c)
		case "type_arguments":
			err = unsupported(c)
		default:
			if nc.Clazz != nil {
				err = unsupported(c)
				break
			}
			nc.Clazz = m.typeTree(c)
			nc.Type = typeOf(nc.Clazz)
		}
		if err != nil {
			return nil, err
		}
	}
	if nc.Clazz == nil {
		return nil, unsupported(n)
	}
	return nc, nil
}

func (m *mapper) parentheses(n *sitter.Node) (*tree.Parentheses, error) {
	kids := children(n)
	if len(kids) != 3 {
		return nil, unsupported(n)
	}
	p := &tree.Parentheses{Base: tree.Prefixed(m.prefix(n))}
	m.token(kids[0])
	expr := m.expression(kids[1])
	p.Tree = tree.RightPad(expr, m.token(kids[2]))
	return p, nil
}

func (m *mapper) ternary(n *sitter.Node) (*tree.Ternary, error) {
	kids := children(n)
	if len(kids) != 5 || kids[1].Type() != "?" || kids[3].Type() != ":" {
		return nil, unsupported(n)
	}
	t := &tree.Ternary{Base: tree.Prefixed(m.prefix(n))}
	t.Condition = m.expression(kids[0])
	question := m.token(kids[1])
	t.TruePart = tree.LeftPad(question, m.expression(kids[2]))
	colon := m.token(kids[3])
	t.FalsePart = tree.LeftPad(colon, m.expression(kids[4]))
	return t, nil
}

// instanceOf maps the plain type test. Patterns and final bindings are
// not modelled.
func (m *mapper) instanceOf(n *sitter.Node) (*tree.InstanceOf, error) {
	kids := children(n)
	if len(kids) != 3 || kids[1].Type() != "instanceof" {
		return nil, unsupported(n)
	}
	io := &tree.InstanceOf{Base: tree.Prefixed(m.prefix(n))}
	left := m.expression(kids[0])
	io.Expression = tree.RightPad(left, m.token(kids[1]))
	io.Clazz = m.typeTree(kids[2])
	io.Type = &tree.PrimitiveType{Keyword: "boolean"}
	return io, nil
}

func (m *mapper) typeCast(n *sitter.Node) (*tree.TypeCast, error) {
	kids := children(n)
	if len(kids) != 4 || kids[0].Type() != "(" || kids[2].Type() != ")" {
		return nil, unsupported(n)
	}
	tc := &tree.TypeCast{Base: tree.Prefixed(m.prefix(n))}
	cp := &tree.ControlParentheses{Base: tree.Prefixed(m.token(kids[0]))}
	clazz, err := asExpression(kids[1], m.typeTree(kids[1]))
	if err != nil {
		return nil, err
	}
	cp.Tree = tree.RightPad(clazz, m.token(kids[2]))
	tc.Clazz = cp
	tc.Expression = m.expression(kids[3])
	return tc, nil
}

func (m *mapper) lambda(n *sitter.Node) (*tree.Lambda, error) {
	kids := children(n)
	if len(kids) != 3 || kids[1].Type() != "->" {
		return nil, unsupported(n)
	}
	l := &tree.Lambda{Base: tree.Prefixed(m.prefix(n))}
	params, err := m.lambdaParameters(kids[0])
	if err != nil {
		return nil, err
	}
	l.Parameters = params
	l.Arrow = m.token(kids[1])
	if kids[2].Type() == "block" {
		body, err := m.block(kids[2])
		if err != nil {
			return nil, err
		}
		l.Body = body
	} else {
		l.Body = m.expression(kids[2])
	}
	return l, nil
}

func (m *mapper) lambdaParameters(n *sitter.Node) (*tree.LambdaParameters, error) {
	var list tree.Container[tree.Node]
	var err error
	switch n.Type() {
	case "identifier":
		return &tree.LambdaParameters{
			Base:       tree.Prefixed(m.prefix(n)),
			Parameters: []tree.RightPadded[tree.Node]{tree.RightPad[tree.Node](m.ident(n, nil), tree.EmptySpace)},
		}, nil
	case "inferred_parameters":
		list, err = delimited(m, children(n), "(", ",", ")", m.lambdaParameter)
	case "formal_parameters":
		list, err = delimited(m, children(n), "(", ",", ")", m.lambdaFormalParameter)
	default:
		return nil, unsupported(n)
	}
	if err != nil {
		return nil, err
	}
	return &tree.LambdaParameters{
		Base:          tree.Prefixed(list.Before),
		Parenthesized: true,
		Parameters:    list.Elements,
	}, nil
}

func (m *mapper) lambdaParameter(n *sitter.Node) (tree.Node, error) {
	if n.Type() != "identifier" {
		return nil, unsupported(n)
	}
	return m.ident(n, nil), nil
}

func (m *mapper) lambdaFormalParameter(n *sitter.Node) (tree.Node, error) {
	return m.parameter(n)
}

// typeTree maps a type reference, keeping it verbatim when the host model
// has no shape for it.
func (m *mapper) typeTree(n *sitter.Node) tree.TypeTree {
	start := m.pos
	t, err := m.typeTreeNode(n)
	if err != nil {
		m.pos = start
		return m.unknown(n)
	}
	return t
}

func (m *mapper) typeElement(n *sitter.Node) (tree.TypeTree, error) {
	return m.typeTree(n), nil
}

func (m *mapper) typeTreeNode(n *sitter.Node) (tree.TypeTree, error) {
	switch n.Type() {
	case "type_identifier", "identifier", "scoped_type_identifier", "scoped_identifier":
		return m.typeNameNode(n)
	case "integral_type", "floating_point_type", "boolean_type", "void_type":
		prefix := m.token(n)
		return &tree.Primitive{Base: tree.Prefixed(prefix), Keyword: m.text(n)}, nil
	case "generic_type":
		return m.genericType(n)
	case "wildcard":
		return m.wildcard(n)
	}
	return nil, unsupported(n)
}

// typeName maps a type name that can not be parameterized, such as an
// annotation or a thrown exception.
func (m *mapper) typeName(n *sitter.Node) tree.NameTree {
	start := m.pos
	t, err := m.typeNameNode(n)
	if err != nil {
		m.pos = start
		return m.unknown(n)
	}
	return t
}

func (m *mapper) typeNameNode(n *sitter.Node) (tree.NameTree, error) {
	e, err := m.name(n)
	if err != nil {
		return nil, err
	}
	switch e := e.(type) {
	case *tree.Identifier:
		e.Type = m.types.resolve(e.SimpleName)
		return e, nil
	case *tree.FieldAccess:
		e.Type = tree.NewClassType(m.types.qualify(tree.QualifiedName(e)))
		return e, nil
	}
	return nil, unsupported(n)
}

func (m *mapper) genericType(n *sitter.Node) (*tree.ParameterizedType, error) {
	kids := children(n)
	if len(kids) != 2 || kids[1].Type() != "type_arguments" {
		return nil, unsupported(n)
	}
	pt := &tree.ParameterizedType{Base: tree.Prefixed(m.prefix(n))}
	clazz, err := m.typeNameNode(kids[0])
	if err != nil {
		return nil, err
	}
	pt.Clazz = clazz
	args, err := delimited(m, children(kids[1]), "<", ",", ">", m.typeArgument)
	if err != nil {
		return nil, err
	}
	pt.TypeParameters = &args

	if class, ok := tree.TypeOf(clazz).(*tree.Class); ok {
		params := make([]tree.Type, 0, len(args.Elements))
		for _, a := range args.Elements {
			if _, diamond := a.Element.(*tree.Empty); diamond {
				continue
			}
			params = append(params, tree.TypeOf(a.Element))
		}
		pt.Type = &tree.Parameterized{Class: class, TypeParameters: params}
	}
	return pt, nil
}

func (m *mapper) typeArgument(n *sitter.Node) (tree.Expression, error) {
	return asExpression(n, m.typeTree(n))
}
