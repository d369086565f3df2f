// Package printer renders lossless trees back to source text.
//
// Two printers cooperate: HostPrinter handles the host node set and
// ExtPrinter handles the extension node set. Each checks every node it is
// asked to visit and hands foreign kinds to the other, so the two sets may
// nest in any order. Syntax variants of host nodes are driven by markers
// inside the host printer.
package printer

import (
	"github.com/yaklabco/golst/pkg/ktree"
	"github.com/yaklabco/golst/pkg/tree"
)

// Option configures Print.
type Option func(*Output)

// WithMarkerPrinter sets the marker printer. The default is
// DefaultMarkerPrinter.
func WithMarkerPrinter(mp MarkerPrinter) Option {
	return func(o *Output) {
		if mp != nil {
			o.markerPrinter = mp
		}
	}
}

// WithTrace registers a hook called once for every node printed, with the
// layer that printed it.
func WithTrace(fn func(layer Layer, n tree.Node)) Option {
	return func(o *Output) {
		o.trace = fn
	}
}

// Print renders n and everything below it. A tree the printers cannot
// render yields a *MalformedTreeError and no output.
func Print(n tree.Node, opts ...Option) (text string, err error) {
	out := NewOutput(DefaultMarkerPrinter{})
	for _, opt := range opts {
		opt(out)
	}

	defer func() {
		if r := recover(); r != nil {
			mte, ok := r.(*MalformedTreeError)
			if !ok {
				panic(r)
			}
			text, err = "", mte
		}
	}()

	host, _ := NewPrinters()
	host.Visit(n, out)
	return out.String(), nil
}

// MustPrint is like Print but panics on a malformed tree. It is meant for
// tests and for trees known to be well formed.
func MustPrint(n tree.Node, opts ...Option) string {
	text, err := Print(n, opts...)
	if err != nil {
		panic(err)
	}
	return text
}

type visitor interface {
	Visit(n tree.Node, out *Output)
}

// beforeSyntax prints everything in front of a node's first token: marker
// text before the prefix, the prefix, marker text before the syntax, and a
// spread operator.
func beforeSyntax(n tree.Node, loc tree.Location, out *Output) {
	mp := out.markerPrinter
	c := out.Cursor()
	markers := n.Markers().All()

	for _, mk := range markers {
		out.Append(mp.BeforePrefix(mk, c, CommentWrapper))
	}
	space(n, n.Prefix(), loc, out)
	for _, mk := range markers {
		out.Append(mp.BeforeSyntax(mk, c, CommentWrapper))
	}
	for _, mk := range markers {
		if spread, ok := mk.(ktree.SpreadArgument); ok {
			out.Append("*")
			space(n, spread.Prefix, tree.LocMarkerPrefix, out)
		}
	}
}

// afterSyntax prints postfix marker tokens followed by marker text after the
// syntax.
func afterSyntax(n tree.Node, out *Output) {
	markers := n.Markers().All()
	for _, mk := range markers {
		switch m := mk.(type) {
		case ktree.CheckNotNull:
			space(n, m.Prefix, tree.LocMarkerPrefix, out)
			out.Append("!!")
		case ktree.IsNullable:
			space(n, m.Prefix, tree.LocMarkerPrefix, out)
			out.Append("?")
		}
	}
	mp := out.markerPrinter
	c := out.Cursor()
	for _, mk := range markers {
		out.Append(mp.AfterSyntax(mk, c, CommentWrapper))
	}
}

// space prints a captured span. Empty spans of synthesized nodes get the
// default whitespace of their location.
func space(owner tree.Node, s tree.Space, loc tree.Location, out *Output) {
	if s.IsEmpty() {
		if tree.Has[tree.Synthesized](owner.Markers()) {
			out.Append(loc.DefaultWhitespace())
		}
		return
	}
	out.Append(s.String())
}

// rightPadded prints an element, its trailing space and, when marked, a
// statement terminator.
func rightPadded[T tree.Node](v visitor, owner tree.Node, rp tree.RightPadded[T], loc tree.Location, out *Output) {
	v.Visit(rp.Element, out)
	space(owner, rp.After, loc, out)
	if tree.Has[tree.Semicolon](rp.Markers) {
		out.Append(";")
	}
}

// elements prints padded elements separated by delim. A trailing comma
// marker on the last element prints the comma and the space after it.
func elements[T tree.Node](v visitor, owner tree.Node, list []tree.RightPadded[T], delim string, loc tree.Location, out *Output) {
	for i, e := range list {
		rightPadded(v, owner, e, loc, out)
		if i < len(list)-1 {
			out.Append(delim)
			continue
		}
		if tc, ok := tree.FindFirst[tree.TrailingComma](e.Markers); ok {
			out.Append(",")
			space(owner, tc.Suffix, loc, out)
		}
	}
}

// container prints a delimited list. OmitParentheses drops the open and
// close tokens but keeps every captured space.
func container[T tree.Node](
	v visitor,
	owner tree.Node,
	c tree.Container[T],
	open, delim, closing string,
	before, suffix tree.Location,
	out *Output,
) {
	omit := tree.Has[tree.OmitParentheses](c.Markers)
	space(owner, c.Before, before, out)
	if !omit {
		out.Append(open)
	}
	elements(v, owner, c.Elements, delim, suffix, out)
	if !omit {
		out.Append(closing)
	}
}

func visitAll[T tree.Node](v visitor, list []T, out *Output) {
	for _, n := range list {
		v.Visit(n, out)
	}
}

func memberSeparator(n tree.Node) string {
	if tree.Has[ktree.IsNullSafe](n.Markers()) {
		return "?."
	}
	return "."
}

// fusedUnary lists unary operators that print nothing of their own because
// their operand already spells them. The only entry is logical not applied
// to "!in", whose operator carries the negation.
//
//nolint:gochecknoglobals // Lookup table.
var fusedUnary = []struct {
	op      tree.UnaryOperator
	operand func(tree.Expression) bool
}{
	{
		op: tree.OpNot,
		operand: func(e tree.Expression) bool {
			b, ok := e.(*ktree.Binary)
			return ok && b.Operator.Element == ktree.OpNotContains
		},
	},
}

func fused(n *tree.Unary) bool {
	for _, f := range fusedUnary {
		if n.Operator.Element == f.op && f.operand(n.Expression) {
			return true
		}
	}
	return false
}
