package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/golst/pkg/runner"
)

// DiffReporter writes the unified diff of every modified file and nothing
// else, so the output can be fed to patch.
type DiffReporter struct {
	base
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	return &DiffReporter{base: newBase(opts)}
}

// Report implements Reporter. Files that failed are listed as comments
// ahead of the diffs.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer r.flush(&err)

	if result == nil {
		return 0, nil
	}

	for _, f := range result.Files {
		if f.Error != nil {
			fmt.Fprintf(r.bw, "# %s: %s\n",
				r.styles.FilePath.Render(f.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", f.Error)),
			)
		}
	}
	r.diffs(result)

	return modified(result), nil
}
