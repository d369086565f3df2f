package format

import (
	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
)

// SpacesVisitor sets the blanks around operators, commas, parentheses and
// opening braces. Only spans on a single line without comments are touched.
func SpacesVisitor(st style.Spaces, sc scope) *tree.Visitor {
	return &tree.Visitor{
		PostVisit: func(c *tree.Cursor, n tree.Node) (tree.Node, error) {
			if !sc.contains(c) {
				return n, nil
			}
			sp := &spacer{st: st}
			out := sp.node(n)
			if !sp.changed {
				return n, nil
			}
			return out, nil
		},
	}
}

// spacer rewrites the spans owned by one node and records whether any
// changed.
type spacer struct {
	st      style.Spaces
	changed bool
}

func (sp *spacer) span(s tree.Space, on bool) tree.Space {
	out := only(s, blank(on))
	if !out.Equal(s) {
		sp.changed = true
	}
	return out
}

func prefixed[T tree.Node](sp *spacer, n T, on bool) T {
	if tree.IsNil(n) {
		return n
	}
	p := n.Prefix()
	out := only(p, blank(on))
	if out.Equal(p) {
		return n
	}
	sp.changed = true
	return tree.WithPrefix(n, out)
}

//nolint:gocyclo,cyclop // One case per node kind.
func (sp *spacer) node(n tree.Node) tree.Node {
	st := sp.st
	switch n := n.(type) {
	case *tree.Binary:
		if tree.Has[ktree.LogicalComma](n.Markers()) {
			return n
		}
		on := aroundOperator(st.AroundOperators, n.Operator.Element)
		c := *n
		c.Operator.Before = sp.span(n.Operator.Before, on)
		c.Right = prefixed(sp, n.Right, on)
		return &c
	case *ktree.Binary:
		op := n.Operator.Element
		if op != ktree.OpIdentityEquals && op != ktree.OpIdentityNotEquals {
			return n
		}
		on := st.AroundOperators.Equality
		c := *n
		c.Operator.Before = sp.span(n.Operator.Before, on)
		c.Right = prefixed(sp, n.Right, on)
		return &c
	case *tree.Assignment:
		on := st.AroundOperators.Assignment
		c := *n
		c.Assignment.Before = sp.span(n.Assignment.Before, on)
		c.Assignment.Element = prefixed(sp, n.Assignment.Element, on)
		return &c
	case *tree.NamedVariable:
		markers := n.Markers()
		if n.Initializer == nil || tree.Has[ktree.By](markers) || tree.Has[ktree.OmitEquals](markers) {
			return n
		}
		on := st.AroundOperators.Assignment
		init := *n.Initializer
		init.Before = sp.span(init.Before, on)
		init.Element = prefixed(sp, init.Element, on)
		return n.WithInitializer(&init)
	case *tree.VariableDeclarations:
		c := *n
		c.Variables = commaList(sp, n.Variables, nil)
		return &c
	case *tree.MethodInvocation:
		c := *n
		c.Arguments = sp.arguments(n.Arguments)
		return &c
	case *tree.NewClass:
		c := *n
		c.Arguments = sp.arguments(n.Arguments)
		return &c
	case *tree.MethodDeclaration:
		c := *n
		c.Parameters.Before = sp.span(n.Parameters.Before, st.BeforeParentheses.MethodDeclaration)
		within := st.Within.MethodDeclarationParentheses
		c.Parameters.Elements = commaList(sp, n.Parameters.Elements, &within)
		c.Body = sp.brace(n.Body, st.BeforeLeftBrace.MethodLeftBrace)
		return &c
	case *tree.ClassDeclaration:
		c := *n
		if n.Implements != nil {
			impl := *n.Implements
			impl.Elements = commaList(sp, impl.Elements, nil)
			c.Implements = &impl
		}
		if n.TypeParameters != nil {
			params := *n.TypeParameters
			params.Elements = commaList(sp, params.Elements, nil)
			c.TypeParameters = &params
		}
		c.Body = sp.brace(n.Body, st.BeforeLeftBrace.ClassLeftBrace)
		return &c
	case *tree.ParameterizedType:
		if n.TypeParameters == nil {
			return n
		}
		c := *n
		args := *n.TypeParameters
		args.Elements = commaList(sp, args.Elements, nil)
		c.TypeParameters = &args
		return &c
	case *tree.Annotation:
		if n.Arguments == nil {
			return n
		}
		c := *n
		args := *n.Arguments
		args.Elements = commaList(sp, args.Elements, nil)
		c.Arguments = &args
		return &c
	case *tree.If:
		c := *n
		if n.Condition != nil {
			cond := *n.Condition
			cond.Tree.Element = prefixed(sp, n.Condition.Tree.Element, st.Within.IfParentheses)
			cond.Tree.After = sp.span(n.Condition.Tree.After, st.Within.IfParentheses)
			c.Condition = prefixed(sp, &cond, st.BeforeParentheses.IfParentheses)
		}
		if block, ok := n.Then.Element.(*tree.Block); ok {
			c.Then.Element = sp.brace(block, st.BeforeLeftBrace.IfLeftBrace)
		}
		return &c
	case *tree.ForEachLoop:
		c := *n
		c.Control = prefixed(sp, n.Control, st.BeforeParentheses.ForParentheses)
		if block, ok := n.Body.Element.(*tree.Block); ok {
			c.Body.Element = sp.brace(block, st.BeforeLeftBrace.ForLeftBrace)
		}
		return &c
	case *tree.ForEachControl:
		if tree.Has[ktree.Extension](n.Markers()) {
			return n
		}
		c := *n
		c.Variable.After = sp.span(n.Variable.After, st.Other.BeforeColonInForEach)
		return &c
	case *tree.ForLoop:
		c := *n
		c.Control = prefixed(sp, n.Control, st.BeforeParentheses.ForParentheses)
		if block, ok := n.Body.Element.(*tree.Block); ok {
			c.Body.Element = sp.brace(block, st.BeforeLeftBrace.ForLeftBrace)
		}
		return &c
	case *tree.ForControl:
		return sp.forControl(n)
	case *tree.Else:
		block, ok := n.Body.Element.(*tree.Block)
		if !ok {
			return n
		}
		c := *n
		c.Body.Element = sp.brace(block, st.BeforeLeftBrace.ElseLeftBrace)
		return &c
	default:
		return n
	}
}

// arguments spaces a call argument list. Lists without parentheses are left
// alone, and a trailing lambda is outside the parentheses.
func (sp *spacer) arguments(args tree.Container[tree.Expression]) tree.Container[tree.Expression] {
	if tree.Has[tree.OmitParentheses](args.Markers) {
		return args
	}
	args.Before = sp.span(args.Before, sp.st.BeforeParentheses.MethodCall)

	list := args.Elements
	var trailing []tree.RightPadded[tree.Expression]
	if last := len(list) - 1; last >= 0 && tree.Has[ktree.TrailingLambdaArgument](list[last].Markers) {
		trailing = list[last:]
		list = list[:last]
	}
	within := sp.st.Within.MethodCallParentheses
	spaced := commaList(sp, list, &within)
	args.Elements = append(spaced, trailing...)
	return args
}

// forControl spaces the commas and semicolons of a for header. Absent parts
// keep the semicolons around them together.
func (sp *spacer) forControl(n *tree.ForControl) *tree.ForControl {
	other := sp.st.Other
	c := *n
	c.Init = commaList(sp, n.Init, nil)
	c.Update = commaList(sp, n.Update, nil)

	if last := len(c.Init) - 1; last >= 0 && !isEmpty(c.Init[last].Element) {
		c.Init[last].After = sp.span(c.Init[last].After, other.BeforeForSemicolon)
	}
	if !isEmpty(c.Condition.Element) {
		c.Condition.Element = prefixed(sp, c.Condition.Element, other.AfterForSemicolon)
		c.Condition.After = sp.span(c.Condition.After, other.BeforeForSemicolon)
	}
	if len(c.Update) > 0 && !isEmpty(c.Update[0].Element) {
		c.Update[0].Element = prefixed(sp, c.Update[0].Element, other.AfterForSemicolon)
	}
	return &c
}

func isEmpty(n tree.Node) bool {
	_, ok := n.(*tree.Empty)
	return ok
}

// brace sets the blank before a block's opening brace.
func (sp *spacer) brace(b *tree.Block, on bool) *tree.Block {
	if b == nil {
		return nil
	}
	markers := b.Markers()
	if tree.Has[ktree.OmitBraces](markers) || tree.Has[ktree.SingleExpressionBlock](markers) {
		return b
	}
	return prefixed(sp, b, on)
}

// commaList spaces both sides of every comma of a padded list. With within
// set, the spans just inside the enclosing delimiters are spaced too. A lone
// empty element keeps the delimiters together.
func commaList[T tree.Node](sp *spacer, list []tree.RightPadded[T], within *bool) []tree.RightPadded[T] {
	if len(list) == 0 {
		return list
	}
	out := make([]tree.RightPadded[T], len(list))
	copy(out, list)
	last := len(out) - 1
	for i := range out {
		if i < last {
			out[i].After = sp.span(out[i].After, sp.st.Other.BeforeComma)
		}
		if i > 0 {
			out[i].Element = prefixed(sp, out[i].Element, sp.st.Other.AfterComma)
		}
	}
	if within == nil {
		return out
	}
	on := *within
	if _, empty := any(out[0].Element).(*tree.Empty); empty && len(out) == 1 {
		on = false
	}
	out[0].Element = prefixed(sp, out[0].Element, on)
	out[last].After = sp.span(out[last].After, on)
	return out
}

func aroundOperator(st style.AroundOperators, op tree.BinaryOperator) bool {
	switch {
	case op.IsLogical():
		return st.Logical
	case op.IsEquality():
		return st.Equality
	case op.IsRelational():
		return st.Relational
	case op.IsAdditive():
		return st.Additive
	case op.IsMultiplicative():
		return st.Multiplicative
	case op.IsBitwise():
		return st.Bitwise
	default:
		return true
	}
}
