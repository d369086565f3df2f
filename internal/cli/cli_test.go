package cli_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/internal/cli"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "golst", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	for _, name := range []string{"print", "format", "change-type", "rename", "delete", "styles", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	for _, name := range []string{"chdir", "config", "debug", "color", "dry-run", "diff", "jobs"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "global flag %q", name)
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		flags   []string
	}{
		{command: "print", flags: []string{"check"}},
		{command: "format", flags: []string{"report"}},
		{command: "change-type", flags: []string{"from", "to", "name", "fields", "report"}},
		{command: "rename", flags: []string{"type", "to", "name", "fields", "report"}},
		{command: "delete", flags: []string{"type", "name", "fields", "report"}},
		{command: "styles", flags: []string{"format"}},
		{command: "init", flags: []string{"force", "style", "format", "output"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			t.Parallel()

			sub, _, err := cli.NewRootCommand(testInfo).Find([]string{tt.command})
			require.NoError(t, err)
			for _, name := range tt.flags {
				assert.NotNil(t, sub.Flags().Lookup(name), "flag %q", name)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: cli.ExitSuccess},
		{name: "changes pending", err: cli.ErrChangesPending, want: cli.ExitChangesPending},
		{name: "files failed", err: cli.ErrFilesFailed, want: cli.ExitFilesFailed},
		{name: "wrapped usage", err: fmt.Errorf("%w: bad flag", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "wrapped config", err: fmt.Errorf("%w: bad file", cli.ErrConfig), want: cli.ExitConfigError},
		{name: "round trip", err: cli.ErrRoundTrip, want: cli.ExitInternalError},
		{name: "anything else", err: assert.AnError, want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestShouldLog(t *testing.T) {
	t.Parallel()

	assert.False(t, cli.ShouldLog(nil))
	assert.False(t, cli.ShouldLog(cli.ErrChangesPending))
	assert.False(t, cli.ShouldLog(cli.ErrFilesFailed))
	assert.True(t, cli.ShouldLog(cli.ErrRoundTrip))
	assert.True(t, cli.ShouldLog(fmt.Errorf("%w: x", cli.ErrUsage)))
}

func TestHelpFormatting(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "Commands:")
	assert.Contains(t, help, "change-type")
	assert.Contains(t, help, "--dry-run")
	assert.Contains(t, help, "Configuration:")
	assert.Contains(t, help, ".golst.yml, .golst.yaml, .golst.toml")
	assert.Contains(t, help, "GOLST_DRY_RUN")
	assert.Contains(t, help, `(default "auto")`, "non-zero defaults are shown")
}

func TestSubcommandHelpOmitsConfiguration(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	cmd.SetArgs([]string{"format", "--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	help := out.String()
	assert.Contains(t, help, "Global Flags:")
	assert.Contains(t, help, "--jobs int")
	assert.NotContains(t, help, "Configuration:")
}
