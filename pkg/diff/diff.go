// Package diff renders the difference between a file and its rewrite as a
// unified diff.
package diff

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// Hunk represents a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in
	// the original, or the line before it when OriginalCount is zero.
	OriginalStart int
	OriginalCount int

	ModifiedStart int
	ModifiedCount int

	Lines []Line
}

// Line represents a single line in a diff hunk.
type Line struct {
	Kind LineKind

	// Content is the line content without the diff prefix or line break.
	Content string

	// NoNewline is set on the last line of a file that lacks a final
	// line break.
	NoNewline bool
}

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line added in the modified version.
	LineAdd

	// LineRemove is a line removed from the original version.
	LineRemove
)

// ContextLines is the number of unchanged lines shown around changes.
const ContextLines = 3

// Generate creates a unified diff between original and modified content.
// Returns nil if the two are byte-for-byte equal.
func Generate(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	origLines := splitLines(string(original))
	modLines := splitLines(string(modified))

	matcher := difflib.NewMatcher(origLines, modLines)
	d := &Diff{Path: path}
	for _, group := range matcher.GetGroupedOpCodes(ContextLines) {
		d.Hunks = append(d.Hunks, d.hunk(group, origLines, modLines))
	}
	return d
}

func (d *Diff) hunk(group []difflib.OpCode, orig, mod []string) Hunk {
	first, last := group[0], group[len(group)-1]
	h := Hunk{
		OriginalStart: first.I1 + 1,
		OriginalCount: last.I2 - first.I1,
		ModifiedStart: first.J1 + 1,
		ModifiedCount: last.J2 - first.J1,
	}
	if h.OriginalCount == 0 {
		h.OriginalStart--
	}
	if h.ModifiedCount == 0 {
		h.ModifiedStart--
	}

	for _, op := range group {
		if op.Tag == 'e' {
			for _, l := range orig[op.I1:op.I2] {
				h.Lines = append(h.Lines, newLine(LineContext, l))
			}
			continue
		}
		if op.Tag == 'r' || op.Tag == 'd' {
			for _, l := range orig[op.I1:op.I2] {
				h.Lines = append(h.Lines, newLine(LineRemove, l))
				d.Deletions++
			}
		}
		if op.Tag == 'r' || op.Tag == 'i' {
			for _, l := range mod[op.J1:op.J2] {
				h.Lines = append(h.Lines, newLine(LineAdd, l))
				d.Additions++
			}
		}
	}
	return h
}

func newLine(kind LineKind, raw string) Line {
	content, terminated := strings.CutSuffix(raw, "\n")
	return Line{Kind: kind, Content: content, NoNewline: !terminated}
}

// splitLines splits s after every line break, keeping the breaks so a
// missing final newline is a change of its own.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// Header returns the "@@" line of h.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Prefix returns the unified diff marker for the line kind.
func (k LineKind) Prefix() string {
	switch k {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')
		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.Prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
			if line.NoNewline {
				builder.WriteString("\\ No newline at end of file\n")
			}
		}
	}

	return builder.String()
}

// FullString returns the complete diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// Unified returns the git-style unified diff of original and modified, or
// an empty string when they are equal.
func Unified(path string, original, modified []byte) string {
	return Generate(path, original, modified).FullString()
}
