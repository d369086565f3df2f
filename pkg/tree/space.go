package tree

import (
	"strings"
)

// Comment is a single comment captured between two tokens.
type Comment struct {
	// Multiline is true for /* */ comments and false for // comments.
	Multiline bool

	// Text is the comment body without its delimiters.
	Text string

	// Suffix is the whitespace that follows the comment, up to the next
	// comment or token.
	Suffix string

	// Unterminated marks a block comment that runs to the end of the input
	// without its closer.
	Unterminated bool
}

// String returns the comment exactly as it appeared in the source, including
// its suffix.
func (c Comment) String() string {
	if c.Multiline {
		if c.Unterminated {
			return "/*" + c.Text + c.Suffix
		}
		return "/*" + c.Text + "*/" + c.Suffix
	}
	return "//" + c.Text + c.Suffix
}

// WithSuffix returns a copy of the comment with its trailing whitespace replaced.
func (c Comment) WithSuffix(suffix string) Comment {
	c.Suffix = suffix
	return c
}

// Space is the whitespace and comments that sit between two tokens.
// Every byte of source that is not part of a token lives in a Space.
type Space struct {
	// Whitespace is the whitespace before the first comment.
	Whitespace string

	// Comments holds the comments in source order, each with the whitespace
	// that follows it.
	Comments []Comment
}

// EmptySpace is a Space that prints as nothing.
//
//nolint:gochecknoglobals // Zero-value constant.
var EmptySpace = Space{}

// SingleSpace is a Space holding exactly one blank.
//
//nolint:gochecknoglobals // Immutable constant.
var SingleSpace = Space{Whitespace: " "}

// SpaceOf returns a comment-free Space with the given whitespace.
func SpaceOf(whitespace string) Space {
	return Space{Whitespace: whitespace}
}

// String prints the space exactly as captured.
func (s Space) String() string {
	if len(s.Comments) == 0 {
		return s.Whitespace
	}
	var sb strings.Builder
	sb.WriteString(s.Whitespace)
	for _, c := range s.Comments {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// IsEmpty returns true if the space prints as nothing.
func (s Space) IsEmpty() bool {
	if s.Whitespace != "" {
		return false
	}
	return len(s.Comments) == 0
}

// HasComments returns true if the space holds at least one comment.
func (s Space) HasComments() bool {
	return len(s.Comments) > 0
}

// Equal reports whether two spaces print identically and have the same
// comment structure.
func (s Space) Equal(o Space) bool {
	if s.Whitespace != o.Whitespace || len(s.Comments) != len(o.Comments) {
		return false
	}
	for i := range s.Comments {
		if s.Comments[i] != o.Comments[i] {
			return false
		}
	}
	return true
}

// WithWhitespace returns a copy with the leading whitespace replaced.
func (s Space) WithWhitespace(ws string) Space {
	return Space{Whitespace: ws, Comments: s.Comments}
}

// WithComments returns a copy with the comments replaced.
func (s Space) WithComments(comments []Comment) Space {
	return Space{Whitespace: s.Whitespace, Comments: comments}
}

// LastWhitespace returns the whitespace that directly precedes the token
// following this space: the suffix of the last comment, or the leading
// whitespace when there are no comments.
func (s Space) LastWhitespace() string {
	if n := len(s.Comments); n > 0 {
		return s.Comments[n-1].Suffix
	}
	return s.Whitespace
}

// WithLastWhitespace replaces the whitespace that directly precedes the next
// token, leaving comments and earlier whitespace untouched.
func (s Space) WithLastWhitespace(ws string) Space {
	n := len(s.Comments)
	if n == 0 {
		return s.WithWhitespace(ws)
	}
	comments := make([]Comment, n)
	copy(comments, s.Comments)
	comments[n-1] = comments[n-1].WithSuffix(ws)
	return Space{Whitespace: s.Whitespace, Comments: comments}
}

// WithoutSameLineComments drops the comments that finish the line this
// space starts on. The whitespace after them becomes the leading
// whitespace. A space that starts with a newline, or whose first line
// never ends, is returned unchanged.
func (s Space) WithoutSameLineComments() Space {
	if strings.ContainsRune(s.Whitespace, '\n') {
		return s
	}
	for i, c := range s.Comments {
		if c.Multiline && strings.ContainsRune(c.Text, '\n') {
			return s
		}
		if strings.ContainsRune(c.Suffix, '\n') {
			return Space{Whitespace: c.Suffix, Comments: s.Comments[i+1:]}
		}
	}
	return s
}

// Indent returns the characters after the last newline of the last
// whitespace segment. It is empty when that segment has no newline.
func (s Space) Indent() string {
	ws := s.LastWhitespace()
	i := strings.LastIndexByte(ws, '\n')
	if i < 0 {
		return ""
	}
	return ws[i+1:]
}

// HasNewline returns true if any whitespace segment contains a newline.
func (s Space) HasNewline() bool {
	if strings.ContainsRune(s.Whitespace, '\n') {
		return true
	}
	for _, c := range s.Comments {
		if strings.ContainsRune(c.Suffix, '\n') {
			return true
		}
	}
	return false
}

// Newlines counts the newlines in the leading whitespace, i.e. before any
// comment.
func (s Space) Newlines() int {
	return strings.Count(s.Whitespace, "\n")
}

// ParseSpace splits captured inter-token text into whitespace and comments.
// The result prints back to exactly the input.
func ParseSpace(text string) Space {
	if text == "" {
		return EmptySpace
	}

	var space Space
	var comments []Comment
	var ws strings.Builder
	leading := true

	flush := func() {
		if leading {
			space.Whitespace = ws.String()
			leading = false
		} else {
			comments[len(comments)-1].Suffix = ws.String()
		}
		ws.Reset()
	}

	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "//"):
			flush()
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				end = len(text) - i
			}
			comments = append(comments, Comment{Text: text[i+2 : i+end]})
			i += end
		case strings.HasPrefix(text[i:], "/*"):
			flush()
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				comments = append(comments, Comment{Multiline: true, Text: text[i+2:], Unterminated: true})
				i = len(text)
				continue
			}
			comments = append(comments, Comment{Multiline: true, Text: text[i+2 : i+2+end]})
			i += end + 4
		default:
			ws.WriteByte(text[i])
			i++
		}
	}
	flush()

	space.Comments = comments
	return space
}

// Format renders whitespace for display in logs and test failures, making
// newlines, tabs and blanks visible.
func (s Space) Format() string {
	r := strings.NewReplacer("\n", "\\n", "\t", "\\t", " ", "·")
	return r.Replace(s.String())
}
