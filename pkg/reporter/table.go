package reporter

import (
	"context"

	"github.com/yaklabco/golst/internal/ui/pretty"
	"github.com/yaklabco/golst/pkg/runner"
)

// TableReporter writes a table with one row per file.
type TableReporter struct {
	base
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	return &TableReporter{base: newBase(opts)}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil || len(result.Files) == 0 {
		r.bw.WriteString(r.styles.Dim.Render("No files to process.") + "\n")
		return 0, nil
	}

	r.bw.WriteString(pretty.NewTableFormatter(r.styles, r.opts.TermWidth).FormatTable(result))
	if r.opts.ShowDiff {
		r.diffs(result)
	}
	r.bw.WriteString(r.styles.FormatSummary(result.Stats, r.opts.DryRun))

	return modified(result), nil
}
