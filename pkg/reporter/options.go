package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/golst/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output: auto, always or never.
	Color string

	// ShowDiff appends the diff of every modified file to text and table
	// output.
	ShowDiff bool

	// DryRun words the summary as changes that would be made.
	DryRun bool

	// Verbose also lists unchanged and skipped files.
	Verbose bool

	// Compact uses minified JSON.
	Compact bool

	// TermWidth is the terminal width for table output. Zero picks a
	// default.
	TermWidth int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatText,
		Color:  config.ColorAuto,
	}
}
