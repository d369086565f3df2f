package format

import (
	"strings"

	"github.com/google/uuid"

	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
)

// siblingsKey is the cursor message holding sibling positions for the
// children of a block or source file.
const siblingsKey = "format.siblings"

// sibling records what precedes a list element.
type sibling struct {
	prev tree.Node
}

// BlankLinesVisitor caps and pads the blank lines in front of declarations
// and statements, and before closing braces. Spans without a line break are
// never split.
func BlankLinesVisitor(st style.BlankLines, sc scope) *tree.Visitor {
	return &tree.Visitor{
		PreVisit: func(c *tree.Cursor, n tree.Node) (tree.Node, error) {
			recordSiblings(c, n)
			if !sc.contains(c) {
				return n, nil
			}
			prefix := n.Prefix()
			if prefix.Newlines() == 0 {
				return n, nil
			}
			lo, hi, ok := blankLineBounds(st, c, n)
			if !ok {
				return n, nil
			}
			next := withBlankLines(prefix, lo, hi)
			if next.Equal(prefix) {
				return n, nil
			}
			return tree.WithPrefix(n, next), nil
		},
		Space: func(c *tree.Cursor, s tree.Space, loc tree.Location) tree.Space {
			if loc != tree.LocBlockEnd || !sc.contains(c) || s.Newlines() == 0 {
				return s
			}
			lo := 0
			if isClassBody(c) {
				lo = st.MinimumBeforeClassEnd
			}
			return withBlankLines(s, lo, st.KeepMaximumBeforeEndOfBlock)
		},
	}
}

// recordSiblings stores, on the frame of a block or source file, what
// precedes each child in its list.
func recordSiblings(c *tree.Cursor, n tree.Node) {
	var list []tree.Node
	switch n := n.(type) {
	case *tree.CompilationUnit:
		if n.PackageDecl != nil {
			list = append(list, n.PackageDecl.Element)
		}
		for _, imp := range n.Imports {
			list = append(list, imp.Element)
		}
		for _, t := range n.Types {
			list = append(list, t.Element)
		}
	case *ktree.CompilationUnit:
		if n.PackageDecl != nil {
			list = append(list, n.PackageDecl.Element)
		}
		for _, imp := range n.Imports {
			list = append(list, imp.Element)
		}
		for _, s := range n.Statements {
			list = append(list, s.Element)
		}
	case *tree.Block:
		for _, s := range n.Statements {
			list = append(list, s.Element)
		}
	default:
		return
	}

	siblings := make(map[uuid.UUID]sibling, len(list))
	var prev tree.Node
	for _, el := range list {
		siblings[el.ID()] = sibling{prev: prev}
		prev = el
	}
	c.PutMessage(siblingsKey, siblings)
}

// blankLineBounds returns the minimum and maximum number of blank lines
// allowed in front of n. ok is false when n is not a list element of a
// block or source file.
func blankLineBounds(st style.BlankLines, c *tree.Cursor, n tree.Node) (lo, hi int, ok bool) {
	parent := c.Parent()
	raw, found := parent.Message(siblingsKey)
	if !found {
		return 0, 0, false
	}
	pos, found := raw.(map[uuid.UUID]sibling)[n.ID()]
	if !found {
		return 0, 0, false
	}

	switch parent.Node().(type) {
	case *tree.CompilationUnit, *ktree.CompilationUnit:
		hi = st.KeepMaximumInDeclarations
		if pos.prev == nil {
			return 0, hi, true
		}
		switch pos.prev.(type) {
		case *tree.Package:
			lo = st.MinimumAfterPackage
			if _, isImport := n.(*tree.Import); isImport {
				lo = max(lo, st.MinimumBeforeImports)
			}
		case *tree.Import:
			if _, isImport := n.(*tree.Import); !isImport {
				lo = st.MinimumAfterImports
			}
		}
		lo = max(lo, aroundMinimum(st, pos.prev), aroundMinimum(st, n))
	case *tree.Block:
		if isClassBody(parent) {
			hi = st.KeepMaximumInDeclarations
			if pos.prev == nil {
				lo = st.MinimumAfterClassHeader
			} else {
				lo = max(aroundMinimum(st, pos.prev), aroundMinimum(st, n))
			}
		} else {
			hi = st.KeepMaximumInCode
		}
	default:
		return 0, 0, false
	}
	return lo, max(hi, lo), true
}

// aroundMinimum returns the blank lines a member kind asks for on each side.
func aroundMinimum(st style.BlankLines, n tree.Node) int {
	switch n.(type) {
	case *tree.ClassDeclaration:
		return st.MinimumAroundClass
	case *tree.MethodDeclaration:
		return st.MinimumAroundMethod
	case *tree.VariableDeclarations, *ktree.Property:
		return st.MinimumAroundField
	default:
		return 0
	}
}

// isClassBody reports whether the node at c is the body of a class.
func isClassBody(c *tree.Cursor) bool {
	block, ok := c.Node().(*tree.Block)
	if !ok {
		return false
	}
	class, ok := c.ParentNode().(*tree.ClassDeclaration)
	return ok && class.Body != nil && class.Body.ID() == block.ID()
}

// withBlankLines clamps the blank lines of the leading whitespace of s into
// [lo, hi], keeping the indentation of the first token or comment.
func withBlankLines(s tree.Space, lo, hi int) tree.Space {
	ws := s.Whitespace
	newlines := strings.Count(ws, "\n")
	if newlines == 0 {
		return s
	}
	blanks := newlines - 1
	want := max(lo, min(blanks, hi))
	if want == blanks && !hasTrailingBlanks(ws) {
		return s
	}
	indent := ws[strings.LastIndexByte(ws, '\n')+1:]
	return s.WithWhitespace(strings.Repeat("\n", want+1) + indent)
}

// hasTrailingBlanks reports whether any line before the last one ends in
// spaces or tabs.
func hasTrailingBlanks(ws string) bool {
	lines := strings.Split(ws, "\n")
	for _, line := range lines[:len(lines)-1] {
		if line != "" {
			return true
		}
	}
	return false
}
