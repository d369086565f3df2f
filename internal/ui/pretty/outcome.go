package pretty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/golst/pkg/parser/treesitter"
	"github.com/yaklabco/golst/pkg/runner"
)

// FormatOutcome formats one file outcome as a status line. Unchanged
// files produce no output unless verbose is set.
func (s *Styles) FormatOutcome(o runner.FileOutcome, verbose bool) string {
	switch {
	case o.Error != nil:
		return s.FormatError(o.Path, o.Error)
	case o.Skipped:
		if !verbose {
			return ""
		}
		return fmt.Sprintf("  %s  %s\n", s.FilePath.Render(o.Path), s.Dim.Render(o.Status()))
	case o.Written:
		return fmt.Sprintf("  %s  %s\n", s.FilePath.Render(o.Path), s.Success.Render(o.Status()))
	case o.Modified:
		return fmt.Sprintf("  %s  %s\n", s.FilePath.Render(o.Path), s.Warning.Render(o.Status()))
	case verbose:
		return fmt.Sprintf("  %s  %s\n", s.FilePath.Render(o.Path), s.Dim.Render(o.Status()))
	default:
		return ""
	}
}

// FormatError formats a per-file error. Syntax errors are shown with
// their line and column.
func (s *Styles) FormatError(path string, err error) string {
	location := s.FilePath.Render(path)
	message := err.Error()

	var perr *treesitter.ParseError
	if errors.As(err, &perr) {
		location += s.Location.Render(fmt.Sprintf(":%d:%d", perr.Line, perr.Column))
		message = strings.ReplaceAll(message, fmt.Sprintf("%s:%d:%d: ", perr.Path, perr.Line, perr.Column), "")
	}

	return fmt.Sprintf("  %s  %s  %s\n", location, s.Error.Render("error"), s.Message.Render(message))
}
