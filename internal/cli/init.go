package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/golst/internal/logging"
	"github.com/yaklabco/golst/pkg/config"
	"github.com/yaklabco/golst/pkg/style"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force     bool
	withStyle bool
	format    string
	output    string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new golst configuration file",
		Long: `Create a new .golst.yml configuration file in the current directory
with the default settings.

With --style a style file holding the default style is written next to it
and the configuration points at it.`,
		Example: `  golst init                      Create .golst.yml
  golst init --style              Also write golst-style.yml
  golst init --format toml        Create .golst.toml instead
  golst init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&flags.withStyle, "style", false, "Also write a style file with the default style")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .golst.yml or .golst.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWriter(cmd.ErrOrStderr(), "info")

	format := style.FileFormat(flags.format)
	if format != style.FormatYAML && format != style.FormatTOML {
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrUsage, flags.format)
	}
	ext := ".yml"
	if format == style.FormatTOML {
		ext = ".toml"
	}

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".golst" + ext
	}

	cfg := config.NewConfig()
	if flags.withStyle {
		stylePath := filepath.Join(filepath.Dir(outputPath), "golst-style"+ext)
		content, err := style.Encode(style.Defaults(), format)
		if err != nil {
			return fmt.Errorf("encode style: %w", err)
		}
		if err := writeNew(logger, stylePath, content, flags.force); err != nil {
			return err
		}
		cfg.Style = filepath.Base(stylePath)
	}

	content, err := cfg.Encode(format)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := writeNew(logger, outputPath, content, flags.force); err != nil {
		return err
	}

	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'golst styles' to see the effective style")

	return nil
}

// writeNew writes content to path, refusing to replace an existing file
// unless force is set.
func writeNew(logger *log.Logger, path string, content []byte, force bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, path)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, path)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	logger.Info("created file", logging.FieldPath, path)
	return nil
}
