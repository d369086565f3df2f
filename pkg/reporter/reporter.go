// Package reporter writes the outcome of a run in one of several formats.
package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/golst/internal/ui/pretty"
	"github.com/yaklabco/golst/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of modified files and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatSummary:
		return NewSummaryReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}

// base holds what the styled reporters share.
type base struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

func newBase(opts Options) base {
	return base{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// flush flushes the buffer into err unless err is already set.
func (b *base) flush(err *error) {
	if flushErr := b.bw.Flush(); *err == nil && flushErr != nil {
		*err = fmt.Errorf("flush report: %w", flushErr)
	}
}

// diffs writes the diff of every modified file.
func (b *base) diffs(result *runner.Result) {
	for _, f := range result.Files {
		if f.Diff != nil && f.Diff.HasChanges() {
			b.bw.WriteString(b.styles.FormatDiff(f.Diff))
		}
	}
}

func modified(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.FilesModified
}
