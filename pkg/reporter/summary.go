package reporter

import (
	"context"

	"github.com/yaklabco/golst/pkg/runner"
)

// SummaryReporter writes only the aggregate statistics.
type SummaryReporter struct {
	base
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{base: newBase(opts)}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil {
		result = &runner.Result{}
	}
	r.bw.WriteString(r.styles.FormatSummary(result.Stats, r.opts.DryRun))

	return modified(result), nil
}
