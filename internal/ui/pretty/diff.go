package pretty

import (
	"strings"

	"github.com/yaklabco/golst/pkg/diff"
)

// FormatDiff renders a unified diff with added and removed lines colored.
func (s *Styles) FormatDiff(d *diff.Diff) string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	builder.WriteString(s.DiffHeader.Render(d.GitHeader()) + "\n")
	builder.WriteString(s.DiffHeader.Render("--- a/"+path) + "\n")
	builder.WriteString(s.DiffHeader.Render("+++ b/"+path) + "\n")

	for _, hunk := range d.Hunks {
		builder.WriteString(s.DiffHunk.Render(hunk.Header()) + "\n")
		for _, line := range hunk.Lines {
			text := line.Kind.Prefix() + line.Content
			switch line.Kind {
			case diff.LineAdd:
				text = s.DiffAdd.Render(text)
			case diff.LineRemove:
				text = s.DiffRemove.Render(text)
			default:
				text = s.DiffContext.Render(text)
			}
			builder.WriteString(text + "\n")
			if line.NoNewline {
				builder.WriteString(s.Dim.Render(`\ No newline at end of file`) + "\n")
			}
		}
	}

	return builder.String()
}
