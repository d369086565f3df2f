package runner

import (
	"github.com/yaklabco/golst/pkg/diff"
)

// FileOutcome is the result of running the pipeline on one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the language the file was detected as.
	Language string

	// Modified is true if the printed tree differs from the file content.
	Modified bool

	// Written is true if the rewrite was committed to disk.
	Written bool

	// Output is the printed tree. It is nil when the file was skipped or
	// failed.
	Output []byte

	// Diff is set for modified files when diffs were requested.
	Diff *diff.Diff

	// Skipped is true if the file was left alone, e.g. because it changed
	// on disk during the run or no front end reads its language.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// Error is set if the file could not be processed.
	Error error
}

// Status returns a short human-readable state of the outcome.
func (o *FileOutcome) Status() string {
	switch {
	case o.Error != nil:
		return "error"
	case o.Skipped:
		return "skipped: " + o.SkipReason
	case o.Written:
		return "rewritten"
	case o.Modified:
		return "changes pending"
	default:
		return "unchanged"
	}
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files parsed and printed.
	FilesProcessed int

	// FilesModified is the number of files whose output differs from the input.
	FilesModified int

	// FilesWritten is the number of files rewritten on disk.
	FilesWritten int

	// FilesSkipped is the number of files left alone.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// Additions and Deletions total the diff lines of modified files.
	Additions int
	Deletions int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file would be or was rewritten.
func (r *Result) HasChanges() bool {
	return r != nil && r.Stats.FilesModified > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Skipped:
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Modified {
		r.Stats.FilesModified++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Diff != nil {
		r.Stats.Additions += outcome.Diff.Additions
		r.Stats.Deletions += outcome.Diff.Deletions
	}
}
