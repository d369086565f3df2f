// Package treesitter parses Java source into host trees using tree-sitter.
//
// Every byte of the input ends up either in a token or in the Space in
// front of one, so printing a parsed tree gives back the input exactly.
// Constructs the host model does not describe are kept as tree.Unknown.
package treesitter

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/yaklabco/golst/pkg/printer"
	"github.com/yaklabco/golst/pkg/tree"
)

// ErrUnsupported is returned for files whose structure the host model can
// not hold even with Unknown fallbacks.
var ErrUnsupported = errors.New("unsupported construct")

// ErrRoundTrip is returned when the mapped tree does not print back to the
// input. Such a tree would corrupt the file on the first commit.
var ErrRoundTrip = errors.New("tree does not reproduce source")

// ParseError reports the first syntax error the grammar found.
type ParseError struct {
	Path string

	// Line and Column are 1-based.
	Line   int
	Column int

	// Near is the source text of the erroneous node, or the token the
	// grammar expected when it is missing.
	Near    string
	Missing bool
}

func (e *ParseError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s:%d:%d: syntax error: missing %q", e.Path, e.Line, e.Column, e.Near)
	}
	return fmt.Sprintf("%s:%d:%d: syntax error near %q", e.Path, e.Line, e.Column, e.Near)
}

// Parser implements the runner's parser interface for Java.
type Parser struct {
	lang *sitter.Language
}

// New creates a Java parser.
func New() *Parser {
	return &Parser{lang: java.GetLanguage()}
}

// Language returns the name of the language this parser reads.
func (p *Parser) Language() string {
	return "Java"
}

// Parse converts Java source into a compilation unit.
//
// Returns a *ParseError when the source has syntax errors, and nil and an
// error when the context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (tree.SourceFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	src := copyContent(content)

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.lang)

	st, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer st.Close()

	root := st.RootNode()
	if root.HasError() {
		return nil, syntaxError(path, src, root)
	}

	m := newMapper(src, root)
	cu, err := m.compilationUnit(root, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := checkRoundTrip(cu, src); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cu, nil
}

// checkRoundTrip prints cu and compares it with src, reporting the first
// byte where they differ.
func checkRoundTrip(cu *tree.CompilationUnit, src []byte) error {
	out, err := printer.Print(cu)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRoundTrip, err)
	}
	if out == string(src) {
		return nil
	}
	at := 0
	for at < len(out) && at < len(src) && out[at] == src[at] {
		at++
	}
	return fmt.Errorf("%w: first difference at byte %d", ErrRoundTrip, at)
}

// syntaxError locates the first error or missing node below n.
func syntaxError(path string, src []byte, n *sitter.Node) *ParseError {
	bad := firstError(n)
	if bad == nil {
		bad = n
	}
	pt := bad.StartPoint()
	e := &ParseError{
		Path:   path,
		Line:   int(pt.Row) + 1,
		Column: int(pt.Column) + 1,
	}
	if bad.IsMissing() {
		e.Missing = true
		e.Near = bad.Type()
	} else {
		e.Near = bad.Content(src)
	}
	return e
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil {
			if found := firstError(c); found != nil {
				return found
			}
		}
	}
	return nil
}

// copyContent copies the input so the tree never aliases caller memory.
func copyContent(content []byte) []byte {
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
