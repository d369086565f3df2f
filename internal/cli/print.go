package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/parser/treesitter"
	"github.com/yaklabco/golst/pkg/runner"
)

// ErrRoundTrip is returned by print --check when printing a parsed file
// does not reproduce it.
var ErrRoundTrip = errors.New("printed output differs from source")

type printFlags struct {
	check bool
}

func newPrintCommand(global *globalFlags) *cobra.Command {
	flags := &printFlags{}

	cmd := &cobra.Command{
		Use:   "print FILE...",
		Short: "Parse files and print them back",
		Long: `Parse each file into a tree and print the tree to standard output.

For any file golst can parse the output is byte-for-byte identical to the
input. Use --check to verify that without printing.`,
		Example: `  golst print src/main/java/App.java
  golst print --check $(git ls-files '*.java')`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			return runPrint(s, flags, args)
		},
	}

	cmd.Flags().BoolVar(&flags.check, "check", false, "only verify that each file round-trips")

	return cmd
}

func runPrint(s *session, flags *printFlags, paths []string) error {
	r := runner.New(nil, treesitter.New())
	opts := runner.Options{DryRun: true, Diff: true}

	var failed, differ bool
	for _, path := range paths {
		outcome := r.Process(s.ctx, s.abs(path), opts)
		outcome.Path = path

		switch {
		case outcome.Error != nil:
			failed = true
			if _, err := fmt.Fprint(s.out, s.styles.FormatError(path, outcome.Error)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		case outcome.Skipped:
			return fmt.Errorf("%w: %s: %s", ErrUsage, path, outcome.SkipReason)
		}

		if outcome.Modified {
			differ = true
			s.logger.Error("round trip changed the file", logging.FieldPath, path)
			if outcome.Diff != nil {
				outcome.Diff.Path = path
				if _, err := fmt.Fprint(s.out, s.styles.FormatDiff(outcome.Diff)); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
		}
		if flags.check {
			continue
		}
		if _, err := s.out.Write(outcome.Output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	switch {
	case failed:
		return ErrFilesFailed
	case differ:
		return ErrRoundTrip
	default:
		return nil
	}
}
