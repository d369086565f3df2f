// Package format normalizes the whitespace of a tree.
//
// AutoFormat runs three passes in order: blank lines, spaces, then tabs and
// indents. Each pass is a tree.Visitor that only rewrites Space values, so
// formatting never changes what a tree means. Running AutoFormat on its own
// output changes nothing.
package format

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/style"
	"github.com/yaklabco/golst/pkg/tree"
)

// Option configures AutoFormat.
type Option func(*options)

type options struct {
	scope  scope
	cursor *tree.Cursor
	logger *log.Logger
}

// Within restricts formatting to the subtrees rooted at the given node ids.
// Spans outside them are left as they are. With no ids nothing is
// formatted.
func Within(ids ...uuid.UUID) Option {
	return func(o *options) {
		s := make(scope, len(ids))
		for _, id := range ids {
			s[id] = struct{}{}
		}
		o.scope = s
	}
}

// WithCursor formats root as a subtree positioned under parent. Enclosing
// blocks on the cursor count toward indentation, and the style of the
// enclosing source file applies.
func WithCursor(parent *tree.Cursor) Option {
	return func(o *options) {
		o.cursor = parent
	}
}

// WithLogger sets the logger used for style fallback warnings.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// scope is the set of node ids formatting is limited to. A nil scope
// covers the whole tree.
type scope map[uuid.UUID]struct{}

// contains reports whether the span or node at c lies inside the scope.
func (s scope) contains(c *tree.Cursor) bool {
	if s == nil {
		return true
	}
	for p := c; p != nil; p = p.Parent() {
		if n := p.Node(); n != nil {
			if _, ok := s[n.ID()]; ok {
				return true
			}
		}
	}
	return false
}

// AutoFormat formats root with the style that applies to it. A style marker
// on the enclosing source file wins over bundle; sections neither supplies
// fall back to the defaults with a warning.
func AutoFormat(root tree.Node, bundle *style.Bundle, opts ...Option) (tree.Node, error) {
	o := &options{cursor: tree.RootCursor()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}
	if tree.IsNil(root) {
		return root, nil
	}

	st := resolveStyle(root, bundle, o)

	out, err := tree.WalkFrom(o.cursor, root, BlankLinesVisitor(st.BlankLines, o.scope))
	if err != nil {
		return nil, err
	}
	out, err = tree.WalkFrom(o.cursor, out, SpacesVisitor(st.Spaces, o.scope))
	if err != nil {
		return nil, err
	}
	out, err = tree.WalkFrom(o.cursor, out, TabsAndIndentsVisitor(st.TabsAndIndents, o.scope))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveStyle picks the style for root: the marker on the nearest source
// file, then the caller's bundle, then defaults.
func resolveStyle(root tree.Node, bundle *style.Bundle, o *options) style.Resolved {
	var file tree.Node
	if sf, ok := root.(tree.SourceFile); ok {
		file = sf
	} else if sf, ok := tree.FirstEnclosing[tree.SourceFile](o.cursor); ok {
		file = sf
	}

	layers := []*style.Bundle{style.Of(file), bundle}
	supplied := false
	for _, b := range layers {
		if b != nil {
			supplied = true
		}
	}
	if supplied {
		for _, section := range missingFromAll(layers) {
			o.logger.Warn("style section missing, using defaults", logging.FieldSection, section)
		}
	}
	return style.Resolve(layers...)
}

// missingFromAll returns the sections no non-nil bundle supplies.
func missingFromAll(bundles []*style.Bundle) []string {
	counts := make(map[string]int)
	total := 0
	for _, b := range bundles {
		if b == nil {
			continue
		}
		total++
		for _, section := range b.Missing() {
			counts[section]++
		}
	}
	var missing []string
	for _, section := range []string{style.SectionBlankLines, style.SectionSpaces, style.SectionTabsAndIndents} {
		if total > 0 && counts[section] == total {
			missing = append(missing, section)
		}
	}
	return missing
}

// only rewrites the whitespace of a span when it holds no comments and no
// line break.
func only(s tree.Space, want string) tree.Space {
	if s.HasComments() || s.HasNewline() || s.Whitespace == want {
		return s
	}
	return tree.SpaceOf(want)
}

func blank(on bool) string {
	if on {
		return " "
	}
	return ""
}
