package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/golst/internal/configloader"
	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/internal/ui/pretty"
	"github.com/yaklabco/golst/pkg/config"
	"github.com/yaklabco/golst/pkg/parser/treesitter"
	"github.com/yaklabco/golst/pkg/reporter"
	"github.com/yaklabco/golst/pkg/runner"
	"github.com/yaklabco/golst/pkg/style"
)

// session is the resolved state a command runs with.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	style   *style.Bundle
	logger  *log.Logger
	styles  *pretty.Styles
	out     io.Writer
	workDir string
	verbose bool
}

// newSession loads configuration and sets up logging for cmd. Flags given
// on the command line override every other configuration source.
func newSession(cmd *cobra.Command, flags *globalFlags) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	workDir, err := workingDir(flags.chdir)
	if err != nil {
		return nil, err
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: flags.configPath,
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg := loaded.Config

	level := cfg.LogLevel
	if flags.debug {
		level = "debug"
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)
	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loaded.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldStyle, cfg.Style,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	out := cmd.OutOrStdout()
	return &session{
		ctx:     logging.WithLogger(ctx, logger),
		cfg:     cfg,
		style:   loaded.Style,
		logger:  logger,
		styles:  pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out)),
		out:     out,
		workDir: workDir,
		verbose: flags.debug,
	}, nil
}

// workingDir resolves the directory a command runs in.
func workingDir(chdir string) (string, error) {
	if chdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(chdir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrUsage, chdir)
	}
	return abs, nil
}

// cliConfig returns the configuration layer made of the flags the user set.
func cliConfig(cmd *cobra.Command, flags *globalFlags) *config.Config {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed
	if changed("color") {
		cfg.Color = flags.color
	}
	if changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if changed("diff") {
		cfg.Diff = flags.diff
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	return cfg
}

// run processes paths with transform and reports the outcome.
func (s *session) run(paths []string, transform runner.Transform, report string) (*runner.Result, error) {
	opts := runner.OptionsFromConfig(s.cfg, paths)
	opts.WorkingDir = s.workDir

	s.logger.Debug("starting run", logging.FieldPaths, opts.Paths, logging.FieldWorkingDir, opts.WorkingDir)
	result, err := runner.New(transform, treesitter.New()).Run(s.ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("run failed: %w", err)
	}

	s.relativize(result)
	if err := s.report(result, report); err != nil {
		return nil, err
	}
	return result, exitError(result, s.cfg.DryRun)
}

// relativize shows outcome paths relative to the working directory.
func (s *session) relativize(result *runner.Result) {
	for i := range result.Files {
		f := &result.Files[i]
		f.Path = s.displayPath(f.Path)
		if f.Diff != nil {
			f.Diff.Path = f.Path
		}
	}
}

// abs resolves path against the working directory.
func (s *session) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.workDir, path)
}

// displayPath returns path relative to the working directory when it lies
// below it.
func (s *session) displayPath(path string) string {
	rel, err := filepath.Rel(s.workDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func (s *session) report(result *runner.Result, layout string) error {
	format, err := reporter.ParseFormat(layout)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	r, err := reporter.New(reporter.Options{
		Writer:    s.out,
		Format:    format,
		Color:     s.cfg.Color,
		ShowDiff:  s.cfg.Diff || s.cfg.DryRun,
		DryRun:    s.cfg.DryRun,
		Verbose:   s.verbose,
		TermWidth: terminalWidth(s.out),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if _, err := r.Report(s.ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// exitError maps a run result to the error that sets the exit code.
func exitError(result *runner.Result, dryRun bool) error {
	switch {
	case result.HasErrors():
		return ErrFilesFailed
	case dryRun && result.HasChanges():
		return ErrChangesPending
	default:
		return nil
	}
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// addReportFlag registers --report on a command that processes files.
func addReportFlag(cmd *cobra.Command, report *string) {
	cmd.Flags().StringVar(report, "report", reporter.FormatText.String(), "report format: text, table, json, diff or summary")
}

// isExitSignal reports whether err only carries an exit status.
func isExitSignal(err error) bool {
	return errors.Is(err, ErrChangesPending) || errors.Is(err, ErrFilesFailed)
}
