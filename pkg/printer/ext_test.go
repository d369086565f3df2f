package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/printer"
	"github.com/yaklabco/golst/pkg/tree"
	"github.com/yaklabco/golst/pkg/tree/treetest"
)

func mark[M tree.Marker](n tree.Node) tree.Node {
	return tree.AddMarker(n, tree.Marker(ktree.Mark[M]()))
}

func notIn(left, right tree.Expression) *ktree.Binary {
	return &ktree.Binary{
		Base:     tree.Prefixed(tree.EmptySpace),
		Left:     left,
		Operator: tree.LeftPad(tree.SingleSpace, ktree.OpNotContains),
		Right:    right,
	}
}

func TestHostMarkerVariants(t *testing.T) {
	t.Parallel()

	x := treetest.Ident("", "x")
	isTest := func() *tree.InstanceOf {
		return &tree.InstanceOf{
			Base:       tree.Prefixed(tree.EmptySpace),
			Expression: tree.RightPad[tree.Expression](x, tree.SingleSpace),
			Clazz:      treetest.TypeRef(" ", "java.lang.String"),
		}
	}
	access := &tree.FieldAccess{
		Base:   tree.Prefixed(tree.EmptySpace),
		Target: treetest.Ident("", "a"),
		Name:   tree.LeftPad(tree.EmptySpace, treetest.Ident("", "b")),
	}
	property := treetest.Var("", treetest.Mods("val"), treetest.TypeRef(" ", "java.lang.String"), "name", nil)
	implicitReturn := treetest.Return("", treetest.Ident(" ", "x"))
	singleExpr := treetest.Block(" ", "", treetest.Decl(tree.AddMarker(treetest.Return("", treetest.Ident(" ", "x")), tree.Marker(tree.NewImplicitReturn()))))

	spread := treetest.Call("", "f", treetest.Ident("", "a"), tree.AddMarker(treetest.Ident(" ", "xs"), tree.Marker(ktree.Mark[ktree.SpreadArgument]())))
	trailing := treetest.Call("", "run")
	trailing.Arguments = trailing.Arguments.WithElements([]tree.RightPadded[tree.Expression]{
		tree.RightPad[tree.Expression](treetest.Block(" ", ""), tree.EmptySpace).
			WithMarkers(tree.NewMarkers(ktree.Mark[ktree.TrailingLambdaArgument]())),
	})
	noParens := treetest.Call("", "println", treetest.Ident(" ", "x"))
	noParens.Arguments = noParens.Arguments.WithMarkers(tree.NewMarkers(tree.NewOmitParentheses()))

	or := treetest.Binary(treetest.Ident("", "a"), tree.OpOr, treetest.Ident(" ", "b"))
	or.Operator = or.Operator.WithBefore(tree.EmptySpace)

	withComma := treetest.Call("", "f", treetest.Ident("", "a"))
	withComma.Arguments.Elements[0] = withComma.Arguments.Elements[0].WithMarkers(tree.NewMarkers(tree.NewTrailingComma(tree.SpaceOf(" "))))

	tests := []struct {
		name string
		node tree.Node
		want string
	}{
		{name: "instanceof", node: isTest(), want: "x instanceof String"},
		{name: "is", node: mark[ktree.Extension](isTest()), want: "x is String"},
		{name: "not is", node: mark[ktree.NotIs](isTest()), want: "x !is String"},
		{name: "null safe access", node: mark[ktree.IsNullSafe](access), want: "a?.b"},
		{name: "not null assertion", node: mark[ktree.CheckNotNull](x), want: "x!!"},
		{name: "nullable type", node: mark[ktree.IsNullable](treetest.TypeRef("", "java.lang.String")), want: "String?"},
		{name: "logical comma", node: mark[ktree.LogicalComma](or), want: "a, b"},
		{name: "type after name", node: mark[ktree.TypeReferencePrefix](property), want: "val name: String"},
		{name: "implicit return", node: tree.AddMarker(implicitReturn, tree.Marker(tree.NewImplicitReturn())), want: " x"},
		{name: "single expression body", node: mark[ktree.SingleExpressionBlock](singleExpr), want: " = x"},
		{name: "omitted braces", node: mark[ktree.OmitBraces](treetest.Block(" ", "\n", treetest.Decl(treetest.Call("\n    ", "go")))), want: " \n    go()\n"},
		{name: "delegated initializer", node: mark[ktree.By](treetest.Named("", "x", nil, treetest.Ident(" ", "lazy"))), want: "x by lazy"},
		{name: "omitted equals", node: mark[ktree.OmitEquals](treetest.Named("", "x", nil, treetest.Ident("", "lazy"))), want: "x lazy"},
		{name: "object declaration", node: mark[ktree.KObject](treetest.Class("", nil, "Registry", treetest.Block(" ", ""))), want: "object Registry {}"},
		{name: "spread argument", node: spread, want: "f(a, *xs)"},
		{name: "trailing lambda", node: trailing, want: "run() {}"},
		{name: "omitted parentheses", node: noParens, want: "println x"},
		{name: "trailing comma", node: withComma, want: "f(a, )"},
		{name: "implicit node", node: tree.AddMarker(treetest.Ident(" ", "this"), tree.Marker(tree.NewImplicit())), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Print(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogicalCommaOnlyForOr(t *testing.T) {
	t.Parallel()

	and := mark[ktree.LogicalComma](treetest.Binary(treetest.Ident("", "a"), tree.OpAnd, treetest.Ident(" ", "b")))
	_, err := printer.Print(and)

	var mte *printer.MalformedTreeError
	require.ErrorAs(t, err, &mte)
	assert.Contains(t, mte.Reason, "&&")
}

func TestSingleExpressionBlockNeedsOneStatement(t *testing.T) {
	t.Parallel()

	block := mark[ktree.SingleExpressionBlock](treetest.Block(" ", ""))
	_, err := printer.Print(block)
	assert.ErrorIs(t, err, printer.ErrMalformedTree)
}

func TestFusedNotIn(t *testing.T) {
	t.Parallel()

	not := func(operand tree.Expression) *tree.Unary {
		return &tree.Unary{
			Base:       tree.Prefixed(tree.EmptySpace),
			Operator:   tree.LeftPad(tree.EmptySpace, tree.OpNot),
			Expression: operand,
		}
	}

	assert.Equal(t, "a !in xs", printer.MustPrint(not(notIn(treetest.Ident("", "a"), treetest.Ident(" ", "xs")))))
	assert.Equal(t, "!a", printer.MustPrint(not(treetest.Ident("", "a"))))

	in := notIn(treetest.Ident("", "a"), treetest.Ident(" ", "xs"))
	in.Operator = in.Operator.WithElement(ktree.OpContains)
	assert.Equal(t, "!a in xs", printer.MustPrint(not(in)), "only !in absorbs the negation")
}

func TestExtensionNodes(t *testing.T) {
	t.Parallel()

	template := &ktree.StringTemplate{
		Base:      tree.Prefixed(tree.EmptySpace),
		Delimiter: `"`,
		Strings: []tree.Node{
			&tree.Literal{Base: tree.Prefixed(tree.EmptySpace), ValueSource: "Hello, "},
			&ktree.StringTemplateValue{Base: tree.Prefixed(tree.EmptySpace), Tree: treetest.Ident("", "name")},
			&tree.Literal{Base: tree.Prefixed(tree.EmptySpace), ValueSource: " and "},
			&ktree.StringTemplateValue{
				Base:     tree.Prefixed(tree.EmptySpace),
				Tree:     treetest.Binary(treetest.Ident("", "a"), tree.OpAdd, treetest.Ident(" ", "b")),
				Enclosed: true,
			},
		},
	}
	list := &ktree.ListLiteral{
		Base: tree.Prefixed(tree.EmptySpace),
		Elements: tree.ContainerOf(tree.EmptySpace,
			tree.RightPad[tree.Expression](treetest.Int("", 1), tree.EmptySpace),
			tree.RightPad[tree.Expression](treetest.Int(" ", 2), tree.EmptySpace),
		),
	}
	get := &ktree.Binary{
		Base:     tree.Prefixed(tree.EmptySpace),
		Left:     treetest.Ident("", "xs"),
		Operator: tree.LeftPad(tree.EmptySpace, ktree.OpGet),
		Right:    treetest.Int("", 0),
	}
	rangeTo := &ktree.Binary{
		Base:     tree.Prefixed(tree.EmptySpace),
		Left:     treetest.Int("", 1),
		Operator: tree.LeftPad(tree.EmptySpace, ktree.OpRangeTo),
		Right:    treetest.Int("", 10),
	}
	this := &ktree.This{Base: tree.Prefixed(tree.EmptySpace), Label: treetest.Ident("", "Outer")}
	labeled := &ktree.Return{Base: tree.Prefixed(tree.EmptySpace), Label: treetest.Ident("", "forEach"), Expression: treetest.Ident(" ", "x")}
	fnType := &ktree.FunctionType{
		Base: tree.Prefixed(tree.EmptySpace),
		Parameters: tree.ContainerOf(tree.EmptySpace,
			tree.RightPad[tree.TypeTree](treetest.TypeRef("", "kotlin.Int"), tree.EmptySpace)),
		Arrow:      tree.SingleSpace,
		ReturnType: treetest.TypeRef(" ", "kotlin.String"),
	}
	when := &ktree.When{
		Base: tree.Prefixed(tree.EmptySpace),
		Selector: &tree.ControlParentheses{
			Base: tree.Prefixed(tree.SingleSpace),
			Tree: tree.RightPad[tree.Expression](treetest.Ident("", "x"), tree.EmptySpace),
		},
		Branches: treetest.Block(" ", "\n",
			treetest.Decl(&ktree.WhenBranch{
				Base: tree.Prefixed(tree.SpaceOf("\n    ")),
				Expressions: tree.ContainerOf(tree.EmptySpace,
					tree.RightPad[tree.Expression](treetest.Int("", 1), tree.EmptySpace),
					tree.RightPad[tree.Expression](treetest.Int(" ", 2), tree.SingleSpace),
				),
				Body: treetest.Str(" ", "small"),
			}),
		),
	}

	tests := []struct {
		name string
		node tree.Node
		want string
	}{
		{name: "string template", node: template, want: `"Hello, $name and ${a + b}"`},
		{name: "list literal", node: list, want: "[1, 2]"},
		{name: "index get", node: get, want: "xs[0]"},
		{name: "range", node: rangeTo, want: "1..10"},
		{name: "labeled this", node: this, want: "this@Outer"},
		{name: "labeled return", node: labeled, want: "return@forEach x"},
		{name: "function type", node: fnType, want: "(Int) -> String"},
		{name: "when", node: when, want: "when (x) {\n    1, 2 -> \"small\"\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, printer.MustPrint(tt.node))
		})
	}
}

func TestDualDispatch(t *testing.T) {
	t.Parallel()

	// f(a !in xs) { "$name" in names }: host call, extension argument
	// holding host identifiers, extension template inside a host block.
	template := &ktree.StringTemplate{
		Base:      tree.Prefixed(tree.EmptySpace),
		Delimiter: `"`,
		Strings: []tree.Node{
			&ktree.StringTemplateValue{Base: tree.Prefixed(tree.EmptySpace), Tree: treetest.Ident("", "name")},
		},
	}
	contains := &ktree.Binary{
		Base:     tree.Prefixed(tree.SingleSpace),
		Left:     template,
		Operator: tree.LeftPad(tree.SingleSpace, ktree.OpContains),
		Right:    treetest.Ident(" ", "names"),
	}
	call := treetest.Call("", "f", notIn(treetest.Ident("", "a"), treetest.Ident(" ", "xs")))
	call.Arguments = call.Arguments.WithElements(append(call.Arguments.Elements,
		tree.RightPad[tree.Expression](treetest.Block(" ", " ", treetest.Decl(contains)), tree.EmptySpace).
			WithMarkers(tree.NewMarkers(ktree.Mark[ktree.TrailingLambdaArgument]())),
	))

	type visit struct {
		layer printer.Layer
		kind  string
	}
	var visits []visit
	got, err := printer.Print(call, printer.WithTrace(func(layer printer.Layer, n tree.Node) {
		visits = append(visits, visit{layer, kindOf(n)})
	}))
	require.NoError(t, err)
	assert.Equal(t, `f(a !in xs) { "$name" in names }`, got)

	assert.Equal(t, []visit{
		{printer.LayerHost, "MethodInvocation"},
		{printer.LayerHost, "Identifier"},
		{printer.LayerExtension, "Binary"},
		{printer.LayerHost, "Identifier"},
		{printer.LayerHost, "Identifier"},
		{printer.LayerHost, "Block"},
		{printer.LayerExtension, "Binary"},
		{printer.LayerExtension, "StringTemplate"},
		{printer.LayerExtension, "StringTemplateValue"},
		{printer.LayerHost, "Identifier"},
		{printer.LayerHost, "Identifier"},
	}, visits)
}

func TestPrintersDelegate(t *testing.T) {
	t.Parallel()

	host, ext := printer.NewPrinters()
	assert.Same(t, ext, host.Ext())
	assert.Same(t, host, ext.Host())

	// Either printer may start the walk.
	out := printer.NewOutput(nil)
	ext.Visit(treetest.Ident("", "x"), out)
	host.Visit(notIn(treetest.Ident(" ", "a"), treetest.Ident(" ", "b")), out)
	assert.Equal(t, "x a !in b", out.String())
	assert.Equal(t, "extension", printer.LayerExtension.String())
	assert.Equal(t, "host", printer.LayerHost.String())
}

func kindOf(n tree.Node) string {
	switch n.(type) {
	case *tree.MethodInvocation:
		return "MethodInvocation"
	case *tree.Identifier:
		return "Identifier"
	case *tree.Block:
		return "Block"
	case *ktree.Binary:
		return "Binary"
	case *ktree.StringTemplate:
		return "StringTemplate"
	case *ktree.StringTemplateValue:
		return "StringTemplateValue"
	default:
		return "other"
	}
}

func TestLoopVariants(t *testing.T) {
	t.Parallel()

	loop := func() *tree.ForEachLoop {
		v := treetest.Var("", nil, treetest.TypeRef("", "java.lang.String"), "s", nil)
		return treetest.ForEach("", v, treetest.Ident("", "xs"), treetest.Block(" ", ""))
	}
	extLoop := func() *tree.ForEachLoop {
		v := treetest.Var("", nil, nil, "x", nil)
		v.Variables[0].Element = tree.WithPrefix(v.Variables[0].Element, tree.EmptySpace)
		l := treetest.ForEach("", v, treetest.Ident("", "xs"), treetest.Block(" ", ""))
		l.Control = mark[ktree.Extension](l.Control).(*tree.ForEachControl)
		return l
	}
	label := func(stmt tree.Statement) *tree.Label {
		return &tree.Label{
			Base:      tree.Prefixed(tree.EmptySpace),
			Label:     tree.RightPad(treetest.Ident("", "outer"), tree.EmptySpace),
			Statement: stmt,
		}
	}
	counting := &tree.ForLoop{
		Base: tree.Prefixed(tree.EmptySpace),
		Control: &tree.ForControl{
			Base:      tree.Prefixed(tree.SingleSpace),
			Init:      []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace)},
			Condition: tree.RightPad[tree.Expression](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace),
			Update:    []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace)},
		},
		Body: tree.RightPad[tree.Statement](treetest.Block(" ", ""), tree.EmptySpace),
	}
	list := func(arg tree.Expression) *tree.ParameterizedType {
		return treetest.Generic(treetest.TypeRef("", "java.util.List"), arg)
	}

	tests := []struct {
		name string
		node tree.Node
		want string
	}{
		{name: "for each", node: loop(), want: "for (String s : xs) {}"},
		{name: "for in", node: extLoop(), want: "for (x in xs) {}"},
		{name: "counting for", node: counting, want: "for (;;) {}"},
		{name: "label", node: label(loop()), want: "outer: for (String s : xs) {}"},
		{name: "extension label", node: mark[ktree.Extension](label(loop())), want: "outer@ for (String s : xs) {}"},
		{name: "wildcard", node: list(treetest.Wildcard("", tree.BoundExtends, nil)), want: "List<?>"},
		{name: "bounded wildcard", node: list(treetest.Wildcard("", tree.BoundExtends, treetest.TypeRef("", "java.lang.Number"))), want: "List<? extends Number>"},
		{name: "lower bounded wildcard", node: list(treetest.Wildcard("", tree.BoundSuper, treetest.TypeRef("", "java.lang.Number"))), want: "List<? super Number>"},
		{name: "star projection", node: list(mark[ktree.Extension](treetest.Wildcard("", tree.BoundExtends, nil)).(tree.Expression)), want: "List<*>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := printer.Print(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtensionVarianceProjection(t *testing.T) {
	t.Parallel()

	w := &tree.Wildcard{Base: tree.Prefixed(tree.EmptySpace)}
	bound := tree.LeftPad(tree.EmptySpace, tree.BoundExtends)
	w.Bound = &bound
	w.BoundedType = treetest.TypeRef(" ", "java.lang.Number")

	got, err := printer.Print(mark[ktree.Extension](w))
	require.NoError(t, err)
	assert.Equal(t, "out Number", got)
}
