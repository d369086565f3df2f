package format

import (
	"strings"

	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
)

// TabsAndIndentsVisitor recomputes the indentation that follows every line
// break. Statements and members indent one level per enclosing block; any
// other line break inside a statement gets one continuation indent on top.
func TabsAndIndentsVisitor(st style.TabsAndIndents, sc scope) *tree.Visitor {
	return &tree.Visitor{
		Space: func(c *tree.Cursor, s tree.Space, loc tree.Location) tree.Space {
			if !s.HasNewline() || !sc.contains(c) {
				return s
			}
			if loc == tree.LocCompilationUnitEOF {
				return reindent(s, "", "")
			}
			depth, continuation := indentLevel(c, loc)
			columns := depth * st.IndentSize
			if continuation {
				columns += st.ContinuationIndent
			}
			indent := st.Indent(columns)
			if loc == tree.LocBlockEnd {
				// Comments before a closing brace belong to the block's
				// statements.
				return reindent(s, st.Indent(columns+st.IndentSize), indent)
			}
			return reindent(s, indent, indent)
		},
	}
}

// reindent replaces the indentation after the last line break of every
// whitespace segment. The segment right before the next token gets last;
// earlier segments, which precede comments, get inner.
func reindent(s tree.Space, inner, last string) tree.Space {
	n := len(s.Comments)
	set := func(ws string, indent string) string {
		i := strings.LastIndexByte(ws, '\n')
		if i < 0 {
			return ws
		}
		return ws[:i+1] + indent
	}

	if n == 0 {
		return s.WithWhitespace(set(s.Whitespace, last))
	}
	comments := make([]tree.Comment, n)
	copy(comments, s.Comments)
	for i := range comments {
		indent := inner
		if i == n-1 {
			indent = last
		}
		comments[i] = comments[i].WithSuffix(set(comments[i].Suffix, indent))
	}
	out := tree.Space{Whitespace: set(s.Whitespace, inner), Comments: comments}
	if out.Equal(s) {
		return s
	}
	return out
}

// indentLevel returns the block depth of the span at c and whether it
// continues a statement begun on an earlier line.
func indentLevel(c *tree.Cursor, loc tree.Location) (depth int, continuation bool) {
	path := c.Path()
	if len(path) == 0 {
		return 0, false
	}
	ownerIdx := len(path) - 1
	owner := path[ownerIdx]

	for i, n := range path {
		if b, ok := n.(*tree.Block); ok && indentsBody(b) {
			if i == ownerIdx && (loc == tree.LocBlockEnd || loc.IsPrefix()) {
				continue
			}
			depth++
		}
		if i > 0 && isBraceLessBody(path[i-1], n) {
			depth++
		}
	}

	anchor := -1
	for i := ownerIdx; i >= 0; i-- {
		if i > 0 && isStatementSlot(path[i-1], path[i]) {
			anchor = i
			break
		}
	}
	switch {
	case anchor < 0:
		return depth, false
	case anchor == ownerIdx:
		return depth, !loc.IsPrefix() && loc != tree.LocClassKind
	}

	switch owner.(type) {
	case *tree.Block, *tree.Else:
		return depth, false
	}
	if anchor+1 == ownerIdx && loc.IsPrefix() && isHeaderPart(path[anchor], owner) {
		return depth, false
	}
	return depth, true
}

// indentsBody reports whether statements inside b sit one level deeper.
func indentsBody(b *tree.Block) bool {
	markers := b.Markers()
	return !tree.Has[ktree.SingleExpressionBlock](markers) && !tree.Has[ktree.OmitBraces](markers)
}

// isBraceLessBody reports whether child is the unbraced body of an if, an
// else or a loop. The if of an else-if chain is not a body.
func isBraceLessBody(parent, child tree.Node) bool {
	if _, isBlock := child.(*tree.Block); isBlock {
		return false
	}
	switch p := parent.(type) {
	case *tree.If:
		return sameNode(p.Then.Element, child)
	case *tree.Else:
		if _, elseIf := child.(*tree.If); elseIf {
			return false
		}
		return sameNode(p.Body.Element, child)
	case *tree.ForEachLoop:
		return sameNode(p.Body.Element, child)
	case *tree.ForLoop:
		return sameNode(p.Body.Element, child)
	}
	return false
}

// isStatementSlot reports whether child starts its own line-level construct
// inside parent: a statement, member, import or top-level declaration.
func isStatementSlot(parent, child tree.Node) bool {
	switch parent.(type) {
	case *tree.Block, *tree.CompilationUnit, *ktree.CompilationUnit:
		return true
	}
	return isBraceLessBody(parent, child)
}

// isHeaderPart reports whether child is part of decl's header that may sit
// on its own line at the declaration's indentation: an annotation, a
// modifier, or the type in front of the name.
func isHeaderPart(decl, child tree.Node) bool {
	var annotations []*tree.Annotation
	var modifiers []*tree.Modifier
	var typ tree.Node
	switch d := decl.(type) {
	case *tree.ClassDeclaration:
		annotations, modifiers = d.LeadingAnnotations, d.Modifiers
	case *tree.MethodDeclaration:
		annotations, modifiers, typ = d.LeadingAnnotations, d.Modifiers, d.ReturnType
	case *tree.VariableDeclarations:
		annotations, modifiers, typ = d.LeadingAnnotations, d.Modifiers, d.DeclaredType
	case *ktree.Property:
		return sameNode(d.Declarations, child)
	case *tree.Label:
		return sameNode(d.Statement, child)
	default:
		return false
	}
	for _, a := range annotations {
		if sameNode(a, child) {
			return true
		}
	}
	for _, m := range modifiers {
		if sameNode(m, child) {
			return true
		}
	}
	return sameNode(typ, child)
}

func sameNode(a, b tree.Node) bool {
	return !tree.IsNil(a) && !tree.IsNil(b) && a.ID() == b.ID()
}
