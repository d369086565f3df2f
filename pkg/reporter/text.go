package reporter

import (
	"context"

	"github.com/yaklabco/golst/pkg/runner"
)

// TextReporter writes one status line per file of interest and a summary
// line.
type TextReporter struct {
	base
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{base: newBase(opts)}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil || len(result.Files) == 0 {
		r.bw.WriteString(r.styles.Dim.Render("No files to process.") + "\n")
		return 0, nil
	}

	for _, f := range result.Files {
		r.bw.WriteString(r.styles.FormatOutcome(f, r.opts.Verbose))
	}
	if r.opts.ShowDiff {
		r.diffs(result)
	}
	r.bw.WriteString(r.styles.FormatSummaryOneLine(result.Stats, r.opts.DryRun))

	return modified(result), nil
}
