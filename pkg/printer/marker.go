package printer

import (
	"github.com/yaklabco/golst/pkg/tree"
)

// MarkerPrinter contributes text for markers at three points of every node:
// before its prefix, between its prefix and its first token, and after its
// last token. Wrap turns a payload into a comment of the printed language.
//
// Implementations must ignore marker kinds they do not know.
type MarkerPrinter interface {
	BeforePrefix(mk tree.Marker, c *tree.Cursor, wrap func(string) string) string
	BeforeSyntax(mk tree.Marker, c *tree.Cursor, wrap func(string) string) string
	AfterSyntax(mk tree.Marker, c *tree.Cursor, wrap func(string) string) string
}

// CommentWrapper renders marker payloads as /*~~(payload)~~>*/.
func CommentWrapper(out string) string {
	if out == "" {
		return "/*~~>*/"
	}
	return "/*~~" + out + "~~>*/"
}

// DefaultMarkerPrinter renders search results before the syntax of the
// matched node and prints nothing for other markers.
type DefaultMarkerPrinter struct{}

// BeforePrefix implements MarkerPrinter.
func (DefaultMarkerPrinter) BeforePrefix(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// BeforeSyntax implements MarkerPrinter.
func (DefaultMarkerPrinter) BeforeSyntax(mk tree.Marker, _ *tree.Cursor, wrap func(string) string) string {
	if sr, ok := mk.(tree.SearchResult); ok {
		if sr.Description == "" {
			return wrap("")
		}
		return wrap("(" + sr.Description + ")")
	}
	return ""
}

// AfterSyntax implements MarkerPrinter.
func (DefaultMarkerPrinter) AfterSyntax(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// NoopMarkerPrinter prints nothing for any marker.
type NoopMarkerPrinter struct{}

// BeforePrefix implements MarkerPrinter.
func (NoopMarkerPrinter) BeforePrefix(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// BeforeSyntax implements MarkerPrinter.
func (NoopMarkerPrinter) BeforeSyntax(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// AfterSyntax implements MarkerPrinter.
func (NoopMarkerPrinter) AfterSyntax(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// DebugMarkerPrinter prints the kind of every marker before the node that
// carries it, which shows where markers sit in printed output.
type DebugMarkerPrinter struct{}

// BeforePrefix implements MarkerPrinter.
func (DebugMarkerPrinter) BeforePrefix(mk tree.Marker, _ *tree.Cursor, wrap func(string) string) string {
	return wrap("(" + mk.MarkerKind() + ")")
}

// BeforeSyntax implements MarkerPrinter.
func (DebugMarkerPrinter) BeforeSyntax(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}

// AfterSyntax implements MarkerPrinter.
func (DebugMarkerPrinter) AfterSyntax(tree.Marker, *tree.Cursor, func(string) string) string {
	return ""
}
