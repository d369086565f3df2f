package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/golst/pkg/style"
)

type stylesFlags struct {
	format string
}

func newStylesCommand(global *globalFlags) *cobra.Command {
	flags := &stylesFlags{}

	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Print the effective style",
		Long: `Print the style formatting uses: the configured style file with its
missing sections filled from the built-in defaults, or the defaults alone.

The output is a complete style file and can be saved and edited.`,
		Example: `  golst styles > style.yml
  golst styles --format toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd, global)
			if err != nil {
				return err
			}
			return runStyles(s, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(style.FormatYAML), "output format: yaml or toml")

	return cmd
}

func runStyles(s *session, flags *stylesFlags) error {
	format := style.FileFormat(flags.format)
	if format != style.FormatYAML && format != style.FormatTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}

	data, err := style.Encode(s.style, format)
	if err != nil {
		return fmt.Errorf("encode style: %w", err)
	}
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
