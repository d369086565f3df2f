package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/diff"
	"github.com/yaklabco/golst/pkg/fsutil"
	"github.com/yaklabco/golst/pkg/langdetect"
	"github.com/yaklabco/golst/pkg/printer"
	"github.com/yaklabco/golst/pkg/tree"
)

// Pipeline error types for categorization.
var (
	// ErrParseFailure indicates the front end rejected the file.
	ErrParseFailure = errors.New("parse failure")

	// ErrTransformFailure indicates the transformation failed.
	ErrTransformFailure = errors.New("transform failure")

	// ErrPrintFailure indicates the edited tree could not be printed.
	ErrPrintFailure = errors.New("print failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Parser turns file content into a tree. Front ends implement it.
type Parser interface {
	// Language returns the go-enry name of the language the parser reads.
	Language() string

	// Parse converts content into a source file.
	Parse(ctx context.Context, path string, content []byte) (tree.SourceFile, error)
}

// Transform rewrites a parsed file. Returning the file unchanged is valid.
type Transform func(ctx context.Context, file tree.SourceFile) (tree.Node, error)

// Runner parses, transforms, prints and commits files.
type Runner struct {
	parsers   map[string]Parser
	transform Transform
}

// New creates a Runner applying transform with the given front ends. A nil
// transform prints each file as parsed.
func New(transform Transform, parsers ...Parser) *Runner {
	r := &Runner{parsers: make(map[string]Parser, len(parsers)), transform: transform}
	for _, p := range parsers {
		r.parsers[p.Language()] = p
	}
	return r
}

// Run discovers files under opts.Paths and processes them concurrently.
// Per-file failures are reported in the outcomes; the returned error is
// only set when discovery fails or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	logger.Debug("processing files", logging.FieldJobs, jobs, logging.FieldDryRun, opts.DryRun)

	// Each worker owns one slot, so the result order follows discovery.
	outcomes := make([]FileOutcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.Process(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesModified, result.Stats.FilesModified,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
	)
	return result, nil
}

// Process runs the pipeline for a single file:
//  1. Read the file and snapshot its state.
//  2. Pick the front end for its language and parse it.
//  3. Apply the transform and print the result.
//  4. Diff the output against the input if requested.
//  5. Unless this is a dry run, commit the output when the file is unchanged
//     on disk since step 1.
func (r *Runner) Process(ctx context.Context, path string, opts Options) FileOutcome {
	ctx, logger := logging.WithFields(ctx, logging.FieldPath, path)
	outcome := FileOutcome{Path: path}

	content, snap, err := fsutil.Read(ctx, path)
	if err != nil {
		outcome.Error = err
		logger.Warn("cannot read file", logging.FieldError, err)
		return outcome
	}

	outcome.Language = langdetect.Detect(path, content)
	parser, ok := r.parsers[outcome.Language]
	if !ok {
		return skip(outcome, logger, "no front end for language "+quoteLanguage(outcome.Language))
	}
	if langdetect.Generated(filepath.Base(path), content) {
		return skip(outcome, logger, "generated file")
	}

	out, err := r.rewrite(ctx, parser, path, content)
	if err != nil {
		outcome.Error = err
		logger.Warn("cannot process file", logging.FieldError, err)
		return outcome
	}
	outcome.Output = out
	outcome.Modified = !snap.Matches(out)
	if !outcome.Modified {
		return outcome
	}

	if opts.Diff || opts.DryRun {
		outcome.Diff = diff.Generate(path, content, out)
	}
	if opts.DryRun {
		logger.Info("would rewrite")
		return outcome
	}

	written, err := fsutil.Commit(ctx, snap, out, fsutil.CommitOptions{Backup: opts.Backup})
	switch {
	case errors.Is(err, fsutil.ErrConflict):
		return skip(outcome, logger, "file modified during processing")
	case err != nil:
		outcome.Error = fmt.Errorf("%w: %w", ErrWriteFailure, err)
		logger.Error("cannot write file", logging.FieldError, err)
		return outcome
	}
	outcome.Written = written
	logger.Info("rewrote")
	return outcome
}

func (r *Runner) rewrite(ctx context.Context, parser Parser, path string, content []byte) ([]byte, error) {
	file, err := parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	var edited tree.Node = file
	if r.transform != nil {
		edited, err = r.transform(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransformFailure, err)
		}
	}
	if tree.IsNil(edited) {
		return []byte{}, nil
	}

	text, err := printer.Print(edited)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrintFailure, err)
	}
	return []byte(text), nil
}

func skip(outcome FileOutcome, logger *log.Logger, reason string) FileOutcome {
	outcome.Skipped = true
	outcome.SkipReason = reason
	logger.Debug("skipped", logging.FieldReason, reason)
	return outcome
}

func quoteLanguage(lang string) string {
	if lang == langdetect.Unknown {
		return "(unknown)"
	}
	return lang
}
