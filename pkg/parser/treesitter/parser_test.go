package treesitter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/parser/treesitter"
	"github.com/yaklabco/golst/pkg/printer"
	"github.com/yaklabco/golst/pkg/query"
	"github.com/yaklabco/golst/pkg/tree"
)

const sample = `package com.example;

import java.util.List;
import java.util.ArrayList;
import static java.util.Collections.emptyList;
import java.io.*;

/** A sample. */
@Deprecated
public class Sample<T extends Comparable<T>> extends Base implements Runnable, Cloneable {
    private static final int LIMIT = 10;  // upper bound
    private List<String> names = new ArrayList<>();
    int a, b = 2;

    public Sample() {
        super();
    }

    @Override
    public void run() {
        for (int i = 0; i < LIMIT; i++) { }
        if (names.isEmpty()) return;
        else {
            names.add("x" + LIMIT);
        }
        Runnable r = () -> System.out.println(this.names);
        int n = flag ? -a : (int) 3L;
        n += 1;
        ;
    }

    abstract String describe(String... parts) throws Exception;
}
`

func parse(t *testing.T, src string) *tree.CompilationUnit {
	t.Helper()

	sf, err := treesitter.New().Parse(context.Background(), "Sample.java", []byte(src))
	require.NoError(t, err)
	cu, ok := sf.(*tree.CompilationUnit)
	require.True(t, ok)
	return cu
}

func TestParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "empty", src: ""},
		{name: "whitespace only", src: "\n\n  \n"},
		{name: "sample", src: sample},
		{name: "comments everywhere", src: "/* a */ class /* b */ A /* c */ { /* d */ int /* e */ x /* f */ ; /* g */ } // h\n"},
		{name: "no trailing newline", src: "class A{void f(){g(1,2);}}"},
		{name: "enum", src: "enum Color { RED, GREEN }\n"},
		{name: "interface", src: "interface Shape<T> {\n  double area();\n}\n"},
		{name: "lambda forms", src: "class A { void f() { g(x -> x, (a, b) -> a, (int c) -> { return c; }, () -> 1); } }"},
		{name: "annotation arguments", src: "@SuppressWarnings(value = \"unchecked\")\nclass A {}\n"},
		{name: "nested class", src: "class Outer {\n  static class Inner extends Outer {}\n  Outer.Inner make() { return new Outer.Inner(); }\n}\n"},
		{name: "crlf", src: "class A {\r\n  int x;\r\n}\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cu := parse(t, tt.src)
			got, err := printer.Print(cu)
			require.NoError(t, err)
			assert.Equal(t, tt.src, got)
		})
	}
}

// method wraps statements in a class and method so each construct is
// parsed in statement position.
func method(body string) string {
	return "class A {\n  void f() {\n" + body + "\n  }\n}\n"
}

func TestParseRoundTripConstructs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "identifier initializer", src: method("    int a = b;")},
		{name: "mixed declarators", src: method("    int a = 1, b = c, d;")},
		{name: "field initialized from field", src: "class A { int x = y; static int y = 2; }\n"},
		{name: "unbounded wildcard", src: "class A { List<?> l = x; }\n"},
		{name: "extends wildcard", src: "class A { List<? extends T> l = x; }\n"},
		{name: "super wildcard", src: "class A { Map<String, ? super Number> m; }\n"},
		{name: "nested wildcard", src: "class A { List<Map<?, ? extends List<?>>> deep; }\n"},
		{name: "for each", src: method("    for (String s : xs) {\n      List<String> inner = xs;\n    }")},
		{name: "for each final", src: method("    for (final var e : map.entrySet()) use(e);")},
		{name: "for each spaced", src: method("    for ( String s  :  xs ) { }")},
		{name: "counting for", src: method("    for (int i = 0, j = 1; i < n; i++, j--) { }")},
		{name: "for with expression init", src: method("    for (i = 0, j = 0; ; i++) { }")},
		{name: "empty for", src: method("    for (;;) { break; }")},
		{name: "spaced empty for", src: method("    for ( ; ; ) { }")},
		{name: "for without braces", src: method("    for (int i = 0; i < 3; i++)\n      tick(i);")},
		{name: "nested loops with labels", src: method("    outer:\n    for (int i = 0; i < n; i++) {\n      inner: for (String s : xs) { continue outer; }\n    }")},
		{name: "label on expression statement", src: method("    here: count++;")},
		{name: "enum with members", src: "enum E {\n  X, Y;\n  List<String> f;\n  int size() { return f.size(); }\n}\n"},
		{name: "enum with trailing comma", src: "enum E { X, Y, }\n"},
		{name: "enum with bodies", src: "enum Op { PLUS { int apply() { return 1; } }, MINUS(2); Op() {} Op(int x) {} }\n"},
		{name: "enum without constants", src: "enum Empty { ; static int x; }\n"},
		{name: "enum implementing interface", src: "public enum E implements Runnable { A; public void run() {} }\n"},
		{name: "lambda with block", src: method("    Runnable r = () -> {\n      go();\n    };")},
		{name: "generic method call", src: method("    List<String> l = Collections.<String>emptyList();")},
		{name: "comments in loops", src: method("    for (/* a */ int i = 0 /* b */; /* c */ i < n /* d */; i++ /* e */) /* f */ { }")},
		{name: "comments in for each", src: method("    for (String s /* a */ : /* b */ xs) { } // done")},
		{name: "while fallback", src: method("    while (x) {\n      x = next();\n    }")},
		{name: "try fallback", src: method("    try { go(); } catch (Exception e) { }")},
		{name: "ternary and casts", src: method("    long v = ok ? (long) a : -b;")},
		{name: "instanceof", src: method("    if (o instanceof String) return;")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cu := parse(t, tt.src)
			got, err := printer.Print(cu)
			require.NoError(t, err)
			assert.Equal(t, tt.src, got)
		})
	}
}

func TestParseStructure(t *testing.T) {
	t.Parallel()

	cu := parse(t, sample)
	assert.Equal(t, "Sample.java", cu.SourcePath())
	require.NotNil(t, cu.PackageDecl)
	assert.Equal(t, "com.example", cu.PackageDecl.Element.PackageName())
	assert.True(t, tree.Has[tree.Semicolon](cu.PackageDecl.Markers))

	require.Len(t, cu.Imports, 4)
	assert.Equal(t, "java.util.List", cu.Imports[0].Element.TypeName())
	assert.True(t, cu.Imports[2].Element.Static.Element)
	assert.Equal(t, "java.io.*", cu.Imports[3].Element.TypeName())

	require.Len(t, cu.Types, 1)
	class, ok := cu.Types[0].Element.(*tree.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Sample", class.Name.SimpleName)
	assert.Equal(t, tree.KindClass, class.Kind.Element)
	assert.Equal(t, "com.example.Sample", tree.FullyQualifiedName(class.Type))
	require.Len(t, class.LeadingAnnotations, 1)
	require.Len(t, class.Modifiers, 1)
	require.NotNil(t, class.TypeParameters)
	require.NotNil(t, class.Extends)
	require.NotNil(t, class.Implements)
	assert.Equal(t, 2, class.Implements.Len())

	methods := tree.Collect[*tree.MethodDeclaration](cu, nil)
	require.Len(t, methods, 3)
	assert.True(t, methods[0].IsConstructor())
	assert.Equal(t, "run", methods[1].Name.SimpleName)
	assert.Equal(t, "describe", methods[2].Name.SimpleName)
	assert.Nil(t, methods[2].Body)
	require.NotNil(t, methods[2].Throws)

	for _, d := range tree.Collect[*tree.VariableDeclarations](cu, func(v *tree.VariableDeclarations) bool {
		return v.HasModifier("final")
	}) {
		assert.Equal(t, []string{"LIMIT"}, d.Names())
	}
}

func TestParseTypeAttribution(t *testing.T) {
	t.Parallel()

	cu := parse(t, sample)

	names, ok := tree.First(cu, func(v *tree.VariableDeclarations) bool {
		return len(v.Names()) == 1 && v.Names()[0] == "names"
	})
	require.True(t, ok)
	assert.True(t, tree.IsOfClassType(tree.TypeOf(names.DeclaredType), "java.util.List"))
	assert.Equal(t, "java.util.List<java.lang.String>", tree.TypeOf(names.DeclaredType).TypeString())

	base, ok := tree.First(cu, func(id *tree.Identifier) bool { return id.SimpleName == "Base" })
	require.True(t, ok)
	assert.Nil(t, base.Type, "a name that is neither imported nor declared stays unattributed")

	runnable, ok := tree.First(cu, func(id *tree.Identifier) bool { return id.SimpleName == "Runnable" })
	require.True(t, ok)
	assert.Equal(t, "java.lang.Runnable", tree.FullyQualifiedName(runnable.Type))

	lits := tree.Collect(cu, func(l *tree.Literal) bool { return l.ValueSource == "10" })
	require.Len(t, lits, 1)
	assert.Equal(t, 10, lits[0].Value)
	assert.Equal(t, "int", lits[0].Type.TypeString())
}

func TestParseNestedTypes(t *testing.T) {
	t.Parallel()

	cu := parse(t, "package p;\nclass Outer {\n  static class Inner {}\n  Inner make() { return null; }\n}\n")
	inner, ok := tree.First(cu, func(c *tree.ClassDeclaration) bool { return c.Name.SimpleName == "Inner" })
	require.True(t, ok)
	assert.Equal(t, "p.Outer.Inner", tree.FullyQualifiedName(inner.Type))

	factory, ok := tree.First(cu, func(m *tree.MethodDeclaration) bool { return m.Name.SimpleName == "make" })
	require.True(t, ok)
	assert.Equal(t, "p.Outer.Inner", tree.FullyQualifiedName(tree.TypeOf(factory.ReturnType)))
}

func TestParseUnknownFallback(t *testing.T) {
	t.Parallel()

	cu := parse(t, "class A {\n  void f() {\n    while (ready()) { step(); }\n  }\n}\n")
	kinds := make(map[string]bool)
	for _, u := range tree.Collect[*tree.Unknown](cu, nil) {
		kinds[u.Kind] = true
	}
	assert.True(t, kinds["while_statement"], "while loops are kept verbatim")

	enum := parse(t, "enum Color { RED, GREEN }\n")
	require.Len(t, enum.Types, 1)
	class, ok := enum.Types[0].Element.(*tree.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, tree.KindEnum, class.Kind.Element)
	require.Len(t, class.Body.Statements, 1)
	u, ok := class.Body.Statements[0].Element.(*tree.Unknown)
	require.True(t, ok)
	assert.Equal(t, "enum_constants", u.Kind)
	assert.Equal(t, "RED, GREEN", u.Source)
}

func TestParseSemicolons(t *testing.T) {
	t.Parallel()

	cu := parse(t, "class A { int x ; ; }")
	class := cu.Types[0].Element.(*tree.ClassDeclaration)
	require.Len(t, class.Body.Statements, 2)

	field := class.Body.Statements[0]
	assert.True(t, tree.Has[tree.Semicolon](field.Markers))
	assert.Equal(t, " ", field.After.String())

	empty := class.Body.Statements[1]
	assert.IsType(t, &tree.Empty{}, empty.Element)
	assert.True(t, tree.Has[tree.Semicolon](empty.Markers))
}

func TestParseSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := treesitter.New().Parse(context.Background(), "Bad.java", []byte("class A {\n  int x = ;\n}\n"))
	require.Error(t, err)

	var perr *treesitter.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "Bad.java", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, err.Error(), "Bad.java:2:")
}

func TestParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := treesitter.New().Parse(ctx, "A.java", []byte("class A {}"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	src := []byte("class A {}")
	sf, err := treesitter.New().Parse(context.Background(), "A.java", src)
	require.NoError(t, err)

	copy(src, "xxxxxxxxxx")
	assert.Equal(t, "class A {}", printer.MustPrint(sf))
	assert.Equal(t, "Java", treesitter.New().Language())
}

func TestParseNamedVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		names []string
		init  []string
	}{
		{name: "identifier initializer", src: method("    int a = b;"), names: []string{"a"}, init: []string{" b"}},
		{name: "mixed", src: method("    int a = 1, b = c;"), names: []string{"a", "b"}, init: []string{" 1", " c"}},
		{name: "no initializer", src: "class A { int x, y; }\n", names: []string{"x", "y"}, init: []string{"", ""}},
		{name: "wildcard type", src: "class A { List<? extends T> l = x; }\n", names: []string{"l"}, init: []string{" x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cu := parse(t, tt.src)
			decls := tree.Collect[*tree.VariableDeclarations](cu, nil)
			require.Len(t, decls, 1)
			assert.Equal(t, tt.names, decls[0].Names())

			var inits []string
			for _, v := range decls[0].Variables {
				if v.Element.Initializer == nil {
					inits = append(inits, "")
					continue
				}
				inits = append(inits, printer.MustPrint(v.Element.Initializer.Element))
			}
			assert.Equal(t, tt.init, inits)
		})
	}
}

func TestParseWildcards(t *testing.T) {
	t.Parallel()

	cu := parse(t, "class A { Map<?, ? super Number> m; List<? extends T> l; }\n")
	wildcards := tree.Collect[*tree.Wildcard](cu, nil)
	require.Len(t, wildcards, 3)

	assert.Nil(t, wildcards[0].Bound)
	require.NotNil(t, wildcards[1].Bound)
	assert.Equal(t, tree.BoundSuper, wildcards[1].Bound.Element)
	assert.Equal(t, "Number", tree.QualifiedName(wildcards[1].BoundedType))
	require.NotNil(t, wildcards[2].Bound)
	assert.Equal(t, tree.BoundExtends, wildcards[2].Bound.Element)
}

func TestParseLoopsAndLabels(t *testing.T) {
	t.Parallel()

	cu := parse(t, method("    outer: for (String s : xs) {\n      List<String> inner = xs;\n    }\n    for (int i = 0; ; i++) { }"))

	label, ok := tree.First(cu, func(*tree.Label) bool { return true })
	require.True(t, ok)
	assert.Equal(t, "outer", label.Label.Element.SimpleName)

	each, ok := label.Statement.(*tree.ForEachLoop)
	require.True(t, ok)
	assert.Equal(t, []string{"s"}, each.Control.Variable.Element.Names())
	assert.Equal(t, "xs", tree.QualifiedName(each.Control.Iterable.Element))

	inner, err := query.Select[*tree.VariableDeclarations](cu, query.NameIs("inner")).Matches()
	require.NoError(t, err)
	require.Len(t, inner, 1, "declarations inside loop bodies are reachable")

	loop, ok := tree.First(cu, func(*tree.ForLoop) bool { return true })
	require.True(t, ok)
	require.Len(t, loop.Control.Init, 1)
	assert.IsType(t, &tree.Empty{}, loop.Control.Condition.Element)
	require.Len(t, loop.Control.Update, 1)
}

func TestParseEnumMembers(t *testing.T) {
	t.Parallel()

	cu := parse(t, "enum E { X; List<String> f; }\n")
	fields, err := query.Select[*tree.VariableDeclarations](cu, query.And(query.IsField(), query.NameIs("f"))).Matches()
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"f"}, fields[0].Names())
}

func TestParseChangeTypeKeepsInitializer(t *testing.T) {
	t.Parallel()

	src := "import java.util.List;\n\nclass A {\n  void f(List<String> xs) {\n    List<String> outer = xs;\n  }\n}\n"
	cu := parse(t, src)

	res, err := query.Select[*tree.VariableDeclarations](cu, query.NameIs("outer")).
		ChangeType("java.util.Collection").
		Fix(context.Background())
	require.NoError(t, err)
	require.True(t, res.Modified())

	got := printer.MustPrint(res.After)
	assert.Contains(t, got, "    Collection<String> outer = xs;\n")
	assert.Contains(t, got, "void f(List<String> xs)")
}
