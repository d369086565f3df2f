package format_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/format"
	"github.com/yaklabco/golst/pkg/printer"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
	"github.com/yaklabco/golst/pkg/tree/treetest"
)

// quietLogger discards style fallback warnings.
func quietLogger() format.Option {
	return format.WithLogger(log.New(&bytes.Buffer{}))
}

// tight declares "int name=v" with no blanks around the equals sign.
func tight(prefix, name string, v int) *tree.VariableDeclarations {
	decl := treetest.Var(prefix, nil, treetest.Primitive("", "int"), name, treetest.Int("", v))
	named := decl.Variables[0].Element
	init := *named.Initializer
	init.Before = tree.EmptySpace
	decl.Variables[0].Element = named.WithInitializer(&init)
	return decl
}

// tightSum returns "a+b" with a leading blank before a.
func tightSum() *tree.Binary {
	sum := treetest.Binary(treetest.Ident(" ", "a"), tree.OpAdd, treetest.Ident("", "b"))
	sum.Operator = sum.Operator.WithBefore(tree.EmptySpace)
	return sum
}

// messyUnit is a class whose whitespace every pass has something to fix.
func messyUnit() *tree.CompilationUnit {
	a := treetest.Var("", nil, treetest.Primitive("", "int"), "a", nil)
	b := treetest.Var("", nil, treetest.Primitive("", "int"), "b", nil)
	total := treetest.Method("\n", treetest.Mods("public"), treetest.Primitive(" ", "int"), "total",
		[]*tree.VariableDeclarations{a, b},
		treetest.Block("", "\n  ", treetest.Stmt(treetest.Return("\n", tightSum()))),
	)
	second := total.Parameters.Elements[1]
	second.Element = tree.WithPrefix(second.Element, tree.EmptySpace)
	total.Parameters.Elements[1] = second

	field := tight("\n  ", "count", 0)
	field.Modifiers = treetest.Mods("private")
	field.DeclaredType = tree.WithPrefix(field.DeclaredType, tree.SingleSpace)

	return treetest.Unit("Sample.java",
		treetest.Package("com.example"),
		[]tree.RightPadded[*tree.Import]{treetest.Import("\n", "java.util.List")},
		treetest.Decl(treetest.Class("\n", treetest.Mods("public"), "Sample",
			treetest.Block(" ", "  \n",
				treetest.Stmt(field),
				treetest.Decl(total),
			),
		)),
	)
}

func TestAutoFormat(t *testing.T) {
	t.Parallel()

	cu := messyUnit()
	before := printer.MustPrint(cu)

	out, err := format.AutoFormat(cu, nil, quietLogger())
	require.NoError(t, err)

	want := "package com.example;\n" +
		"\n" +
		"import java.util.List;\n" +
		"\n" +
		"public class Sample {\n" +
		"    private int count = 0;\n" +
		"\n" +
		"    public int total(int a, int b) {\n" +
		"        return a + b;\n" +
		"    }\n" +
		"}\n"
	got := printer.MustPrint(out)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AutoFormat mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, before, printer.MustPrint(cu), "the input tree must be unchanged")
	assert.Equal(t, cu.ID(), out.ID())
}

func TestAutoFormatIdempotent(t *testing.T) {
	t.Parallel()

	once, err := format.AutoFormat(messyUnit(), nil, quietLogger())
	require.NoError(t, err)
	twice, err := format.AutoFormat(once, nil, quietLogger())
	require.NoError(t, err)

	if diff := cmp.Diff(printer.MustPrint(once), printer.MustPrint(twice)); diff != "" {
		t.Errorf("second pass changed output (-once +twice):\n%s", diff)
	}
	assert.Same(t, once, twice, "an already formatted tree comes back as is")
}

func TestAutoFormatNil(t *testing.T) {
	t.Parallel()

	out, err := format.AutoFormat(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestAutoFormatOptions(t *testing.T) {
	t.Parallel()

	tabs := style.DefaultTabsAndIndents()
	tabs.UseTabCharacter = true

	blank := style.DefaultBlankLines()
	blank.MinimumBeforeClassEnd = 1
	blank.KeepMaximumInDeclarations = 0

	sp := style.DefaultSpaces()
	sp.AroundOperators.Assignment = false
	sp.Other.AfterComma = false

	tests := []struct {
		name   string
		bundle *style.Bundle
		class  *tree.ClassDeclaration
		want   string
	}{
		{
			name:   "one-line class is left alone",
			bundle: style.Defaults(),
			class: treetest.Class("", nil, "A", treetest.Block(" ", " ",
				treetest.Stmt(treetest.Var(" ", nil, treetest.Primitive("", "int"), "a", nil)),
				treetest.Stmt(treetest.Var(" ", nil, treetest.Primitive("", "int"), "b", nil)),
			)),
			want: "class A { int a; int b; }",
		},
		{
			name:   "tabs",
			bundle: &style.Bundle{TabsAndIndents: &tabs},
			class:  treetest.Class("", nil, "A", treetest.Block(" ", "\n", treetest.Stmt(tight("\n  ", "a", 1)))),
			want:   "class A {\n\tint a = 1;\n}",
		},
		{
			name:   "blank line bounds",
			bundle: &style.Bundle{BlankLines: &blank},
			class: treetest.Class("", nil, "A", treetest.Block(" ", "\n",
				treetest.Stmt(tight("\n\n\n    ", "a", 1)),
				treetest.Stmt(tight("\n\n    ", "b", 2)),
			)),
			want: "class A {\n    int a = 1;\n    int b = 2;\n\n}",
		},
		{
			name:   "blank lines before end of block are capped",
			bundle: style.Defaults(),
			class: treetest.Class("", nil, "A", treetest.Block(" ", "\n\n\n\n\n",
				treetest.Stmt(tight("\n    ", "a", 1)),
			)),
			want: "class A {\n    int a = 1;\n\n\n}",
		},
		{
			name:   "spaces off",
			bundle: &style.Bundle{Spaces: &sp},
			class: treetest.Class("", nil, "A", treetest.Block(" ", "\n",
				treetest.Stmt(treetest.Var("\n    ", nil, treetest.Primitive("", "int"), "a", treetest.Int(" ", 1))),
			)),
			want: "class A {\n    int a=1;\n}",
		},
		{
			name:   "comments before the closing brace follow the body",
			bundle: style.Defaults(),
			class: treetest.Class("", nil, "A", treetest.Block(" ", "\n  // note\n  ",
				treetest.Stmt(tight("\n  ", "a", 1)),
			)),
			want: "class A {\n    int a = 1;\n    // note\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := format.AutoFormat(tt.class, tt.bundle, quietLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.want, printer.MustPrint(out))
		})
	}
}

func TestSpacesInCalls(t *testing.T) {
	t.Parallel()

	call := treetest.Call("", "f", treetest.Ident(" ", "a"), treetest.Ident("", "b"))
	stmt := treetest.Block("", "\n", treetest.Stmt(tree.Statement(call)))

	out, err := format.AutoFormat(stmt, style.Defaults(), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "{f(a, b);\n}", printer.MustPrint(out))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	first := tight("\n  ", "a", 1)
	second := tight("\n  ", "b", 2)
	class := treetest.Class("", nil, "A", treetest.Block(" ", "\n",
		treetest.Stmt(first),
		treetest.Stmt(second),
	))

	out, err := format.AutoFormat(class, style.Defaults(), format.Within(first.ID()), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "class A {\n    int a = 1;\n  int b=2;\n}", printer.MustPrint(out))

	none, err := format.AutoFormat(class, style.Defaults(), format.Within(), quietLogger())
	require.NoError(t, err)
	assert.Same(t, tree.Node(class), none, "an empty scope formats nothing")
}

func TestWithCursor(t *testing.T) {
	t.Parallel()

	cu := messyUnit()
	var body *tree.Cursor
	tree.Inspect(cu, func(c *tree.Cursor, n tree.Node) bool {
		if m, ok := n.(*tree.MethodDeclaration); ok {
			body = tree.NewCursor(c, m.Body)
			return false
		}
		return true
	})
	require.NotNil(t, body)

	ret := treetest.Return("\n", tightSum())
	out, err := format.AutoFormat(ret, nil, format.WithCursor(body), quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "\n        return a + b", printer.MustPrint(out))
}

func TestStyleResolution(t *testing.T) {
	t.Parallel()

	tabs := style.DefaultTabsAndIndents()
	tabs.UseTabCharacter = true
	narrow := style.TabsAndIndents{IndentSize: 2, ContinuationIndent: 4}

	cu := treetest.Unit("A.java", nil, nil,
		treetest.Decl(treetest.Class("", nil, "A", treetest.Block(" ", "\n",
			treetest.Stmt(tight("\n", "a", 1)),
		))),
	)
	marked := style.Attach(cu, &style.Bundle{Name: "file", TabsAndIndents: &tabs})

	var buf bytes.Buffer
	out, err := format.AutoFormat(marked, &style.Bundle{TabsAndIndents: &narrow}, format.WithLogger(log.New(&buf)))
	require.NoError(t, err)
	assert.Equal(t, "class A {\n\tint a = 1;\n}\n", printer.MustPrint(out), "the file's style wins")

	logged := buf.String()
	assert.Contains(t, logged, "style section missing")
	assert.Contains(t, logged, style.SectionBlankLines)
	assert.Contains(t, logged, style.SectionSpaces)
	assert.NotContains(t, logged, style.SectionTabsAndIndents)

	buf.Reset()
	_, err = format.AutoFormat(cu, nil, format.WithLogger(log.New(&buf)))
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "no warning when no style is supplied at all")
}

func TestSpacesInLoops(t *testing.T) {
	t.Parallel()

	each := treetest.ForEach("", treetest.Var("", nil, treetest.TypeRef("", "java.lang.String"), "s", nil),
		treetest.Ident("", "xs"), treetest.Block("", ""))
	each.Control = tree.WithPrefix(each.Control, tree.EmptySpace)
	each.Control.Variable.After = tree.EmptySpace
	each.Control.Iterable.Element = tree.WithPrefix(each.Control.Iterable.Element, tree.EmptySpace)

	cond := treetest.Binary(treetest.Ident("", "i"), tree.OpLessThan, treetest.Ident("", "n"))
	cond.Operator = cond.Operator.WithBefore(tree.EmptySpace)
	counting := &tree.ForLoop{
		Base: tree.Prefixed(treetest.Space("\n")),
		Control: &tree.ForControl{
			Base:      tree.Prefixed(tree.EmptySpace),
			Init:      []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tight("", "i", 0), tree.EmptySpace)},
			Condition: tree.RightPad[tree.Expression](cond, tree.EmptySpace),
			Update:    []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](treetest.Call("", "step"), tree.EmptySpace)},
		},
		Body: tree.RightPad[tree.Statement](treetest.Block("", ""), tree.EmptySpace),
	}
	forever := &tree.ForLoop{
		Base: tree.Prefixed(treetest.Space("\n")),
		Control: &tree.ForControl{
			Base:      tree.Prefixed(tree.EmptySpace),
			Init:      []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace)},
			Condition: tree.RightPad[tree.Expression](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace),
			Update:    []tree.RightPadded[tree.Statement]{tree.RightPad[tree.Statement](tree.NewEmpty(tree.EmptySpace), tree.EmptySpace)},
		},
		Body: tree.RightPad[tree.Statement](treetest.Block("", ""), tree.EmptySpace),
	}
	body := treetest.Block("", "\n", treetest.Decl(each), treetest.Decl(counting), treetest.Decl(forever))

	out, err := format.AutoFormat(body, style.Defaults(), quietLogger())
	require.NoError(t, err)
	want := "{for (String s : xs) {}\n" +
		"    for (int i = 0; i < n; step()) {}\n" +
		"    for (;;) {}\n" +
		"}"
	if diff := cmp.Diff(want, printer.MustPrint(out)); diff != "" {
		t.Errorf("loop spacing mismatch (-want +got):\n%s", diff)
	}
}
