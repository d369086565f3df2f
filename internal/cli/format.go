package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/format"
	"github.com/yaklabco/golst/pkg/runner"
	"github.com/yaklabco/golst/pkg/tree"
)

func newFormatCommand(global *globalFlags) *cobra.Command {
	var report string

	cmd := &cobra.Command{
		Use:   "format [PATH...]",
		Short: "Apply the configured style to whole files",
		Long: `Run blank-line, spacing and indentation normalization over every file.

Paths may be files or directories; directories are searched for files
matching the include patterns. With no paths the current directory is used.
The style comes from the style marker of each file, then the configured
style file, then the built-in defaults.`,
		Example: `  golst format
  golst format --dry-run src/
  golst format --diff App.java`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			_, err = s.run(args, s.formatTransform(), report)
			return err
		},
	}

	addReportFlag(cmd, &report)

	return cmd
}

func (s *session) formatTransform() runner.Transform {
	return func(ctx context.Context, file tree.SourceFile) (tree.Node, error) {
		return format.AutoFormat(file, s.style, format.WithLogger(logging.FromContext(ctx)))
	}
}
