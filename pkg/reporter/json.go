package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/golst/pkg/runner"
)

// jsonVersion is the version of the JSON document layout.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	DryRun  bool             `json:"dryRun"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's outcome.
type JSONFileResult struct {
	Path       string `json:"path"`
	Language   string `json:"language,omitempty"`
	Status     string `json:"status"`
	Modified   bool   `json:"modified"`
	Written    bool   `json:"written"`
	Additions  int    `json:"additions,omitempty"`
	Deletions  int    `json:"deletions,omitempty"`
	Diff       string `json:"diff,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesModified   int `json:"filesModified"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	Additions       int `json:"additions"`
	Deletions       int `json:"deletions"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush report: %w", flushErr)
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(r.buildOutput(result)); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return modified(result), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		DryRun:  r.opts.DryRun,
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, f := range result.Files {
		file := JSONFileResult{
			Path:       f.Path,
			Language:   f.Language,
			Status:     f.Status(),
			Modified:   f.Modified,
			Written:    f.Written,
			SkipReason: f.SkipReason,
		}
		if f.Error != nil {
			file.Status = "error"
			file.Error = f.Error.Error()
		}
		if f.Diff != nil {
			file.Additions = f.Diff.Additions
			file.Deletions = f.Diff.Deletions
			file.Diff = f.Diff.FullString()
		}
		output.Files = append(output.Files, file)
	}

	s := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: s.FilesDiscovered,
		FilesProcessed:  s.FilesProcessed,
		FilesModified:   s.FilesModified,
		FilesWritten:    s.FilesWritten,
		FilesSkipped:    s.FilesSkipped,
		FilesErrored:    s.FilesErrored,
		Additions:       s.Additions,
		Deletions:       s.Deletions,
	}
	return output
}
