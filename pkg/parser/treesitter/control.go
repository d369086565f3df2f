package treesitter

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/golst/pkg/tree"
)

// forEachLoop maps an enhanced for statement. The loop variable becomes a
// one-variable declaration so queries see it like any other local.
func (m *mapper) forEachLoop(n *sitter.Node) (*tree.ForEachLoop, error) {
	typ := n.ChildByFieldName("type")
	name := n.ChildByFieldName("name")
	value := n.ChildByFieldName("value")
	body := n.ChildByFieldName("body")
	if typ == nil || name == nil || value == nil || body == nil {
		return nil, unsupported(n)
	}

	loop := &tree.ForEachLoop{Base: tree.Prefixed(m.prefix(n))}
	control := &tree.ForEachControl{}
	vd := &tree.VariableDeclarations{}
	started := false
	start := func(c *sitter.Node) {
		if !started {
			vd.Base = tree.Prefixed(m.prefix(c))
			started = true
		}
	}

	for _, c := range children(n) {
		switch {
		case c.Type() == "for":
			m.token(c)
		case c.Type() == "(":
			control.Base = tree.Prefixed(m.token(c))
		case c.Type() == "modifiers":
			start(c)
			var err error
			if vd.LeadingAnnotations, vd.Modifiers, err = m.modifiers(c); err != nil {
				return nil, err
			}
		case sameNode(c, typ):
			start(c)
			vd.DeclaredType = m.typeTree(c)
		case sameNode(c, name):
			nv := &tree.NamedVariable{Base: tree.Prefixed(m.prefix(c)), Type: typeOf(vd.DeclaredType)}
			nv.Name = m.ident(c, nil)
			vd.Variables = []tree.RightPadded[*tree.NamedVariable]{tree.RightPad(nv, tree.EmptySpace)}
		case c.Type() == ":":
			control.Variable = tree.RightPad(vd, m.token(c))
		case sameNode(c, value):
			control.Iterable = tree.RightPad(m.expression(c), tree.EmptySpace)
		case c.Type() == ")":
			control.Iterable.After = m.token(c)
		case sameNode(c, body):
			loop.Body = m.statement(c)
		default:
			return nil, unsupported(c)
		}
	}
	if control.Variable.Element == nil || len(vd.Variables) != 1 {
		return nil, unsupported(n)
	}
	loop.Control = control
	return loop, nil
}

// forLoop maps a counting for statement. The header is read in three
// phases split by its semicolons; a missing part keeps the space in front
// of its delimiter as an Empty.
func (m *mapper) forLoop(n *sitter.Node) (*tree.ForLoop, error) {
	const (
		inInit = iota
		inCondition
		inUpdate
		inBody
	)

	loop := &tree.ForLoop{Base: tree.Prefixed(m.prefix(n))}
	control := &tree.ForControl{}
	phase := inInit
	for _, c := range children(n) {
		switch {
		case c.Type() == "for":
			m.token(c)
		case c.Type() == "(" && phase == inInit:
			control.Base = tree.Prefixed(m.token(c))
		case c.Type() == "local_variable_declaration" && phase == inInit:
			vd, err := m.variableDeclarations(c)
			if err != nil {
				return nil, err
			}
			last := lastChild(c)
			if last == nil || last.Type() != ";" {
				return nil, unsupported(c)
			}
			control.Init = append(control.Init, tree.RightPad[tree.Statement](vd, m.token(last)))
			phase = inCondition
		case c.Type() == ",":
			after := m.token(c)
			list := control.Init
			if phase == inUpdate {
				list = control.Update
			}
			if len(list) == 0 {
				return nil, unsupported(c)
			}
			list[len(list)-1].After = after
		case c.Type() == ";" && phase == inInit:
			control.Init = closePart(control.Init, m.token(c))
			phase = inCondition
		case c.Type() == ";" && phase == inCondition:
			sp := m.token(c)
			if control.Condition.Element == nil {
				control.Condition = tree.RightPad[tree.Expression](tree.NewEmpty(sp), tree.EmptySpace)
			} else {
				control.Condition.After = sp
			}
			phase = inUpdate
		case c.Type() == ")" && phase == inUpdate:
			control.Update = closePart(control.Update, m.token(c))
			phase = inBody
		case phase == inCondition:
			if control.Condition.Element != nil {
				return nil, unsupported(c)
			}
			control.Condition = tree.RightPad(m.expression(c), tree.EmptySpace)
		case phase == inInit || phase == inUpdate:
			s, ok := m.expression(c).(tree.Statement)
			if !ok {
				return nil, unsupported(c)
			}
			entry := tree.RightPad(s, tree.EmptySpace)
			if phase == inInit {
				control.Init = append(control.Init, entry)
			} else {
				control.Update = append(control.Update, entry)
			}
		case phase == inBody:
			loop.Body = m.statement(c)
		default:
			return nil, unsupported(c)
		}
	}
	if phase != inBody || loop.Body.Element == nil {
		return nil, unsupported(n)
	}
	loop.Control = control
	return loop, nil
}

// closePart ends one comma-separated part of a for header at a delimiter
// whose leading space is sp.
func closePart(list []tree.RightPadded[tree.Statement], sp tree.Space) []tree.RightPadded[tree.Statement] {
	if len(list) == 0 {
		return []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(sp), tree.EmptySpace)}
	}
	list[len(list)-1].After = sp
	return list
}

// label maps a labeled statement. A labeled statement that ends in a
// semicolon is kept verbatim, since a label holds a bare statement.
func (m *mapper) label(n *sitter.Node) (*tree.Label, error) {
	kids := children(n)
	if len(kids) != 3 || kids[0].Type() != "identifier" || kids[1].Type() != ":" {
		return nil, unsupported(n)
	}
	l := &tree.Label{Base: tree.Prefixed(m.prefix(n))}
	name := m.ident(kids[0], nil)
	l.Label = tree.RightPad(name, m.token(kids[1]))

	inner := kids[2]
	if last := lastChild(inner); terminated[inner.Type()] && last != nil && last.Type() == ";" {
		l.Statement = m.unknown(inner)
		return l, nil
	}
	l.Statement = m.statement(inner).Element
	return l, nil
}

// enumBody maps an enum body. The constants up to the semicolon that ends
// them stay verbatim as one Unknown entry; the members after it are mapped
// like a class body.
func (m *mapper) enumBody(n *sitter.Node) (*tree.Block, error) {
	b := &tree.Block{Base: tree.Prefixed(m.prefix(n))}
	var first, last *sitter.Node
	flush := func() {
		if first == nil {
			return
		}
		prefix := m.prefix(first)
		src := string(m.src[first.StartByte():last.EndByte()])
		m.pos = last.EndByte()
		constants := &tree.Unknown{Base: tree.Prefixed(prefix), Source: src, Kind: "enum_constants"}
		b.Statements = append(b.Statements, tree.RightPad[tree.Statement](constants, tree.EmptySpace))
		first, last = nil, nil
	}

	for _, c := range children(n) {
		switch c.Type() {
		case "{":
			m.token(c)
		case "enum_constant", ",":
			if first == nil {
				first = c
			}
			last = c
		case "enum_body_declarations":
			for _, d := range children(c) {
				if d.Type() != ";" || (first == nil && len(b.Statements) > 0) {
					b.Statements = append(b.Statements, m.statement(d))
					continue
				}
				if first == nil {
					first = d
				}
				last = d
				flush()
			}
		case "}":
			flush()
			b.End = m.token(c)
		default:
			return nil, unsupported(c)
		}
	}
	return b, nil
}

// wildcard maps a wildcard type argument. Annotated wildcards are not
// modelled.
func (m *mapper) wildcard(n *sitter.Node) (*tree.Wildcard, error) {
	w := &tree.Wildcard{Base: tree.Prefixed(m.prefix(n))}
	for _, c := range children(n) {
		switch c.Type() {
		case "?":
			m.token(c)
		case "extends", "super":
			if w.Bound != nil {
				return nil, unsupported(c)
			}
			bound := tree.BoundExtends
			if c.Type() == "super" {
				bound = tree.BoundSuper
			}
			b := tree.LeftPad(m.token(c), bound)
			w.Bound = &b
		default:
			if w.Bound == nil || !tree.IsNil(w.BoundedType) {
				return nil, unsupported(c)
			}
			w.BoundedType = m.typeTree(c)
		}
	}
	if (w.Bound == nil) != tree.IsNil(w.BoundedType) {
		return nil, unsupported(n)
	}
	return w, nil
}
