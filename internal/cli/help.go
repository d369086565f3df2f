package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/golst/internal/configloader"
	"github.com/yaklabco/golst/internal/ui/pretty"
)

// HelpStyles are the styles of command help. They are drawn from the
// report styles so help and output read alike.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles creates help styles for the color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	out := pretty.NewStyles(colorEnabled)
	return &HelpStyles{
		Command:     out.DiffHunk.Bold(colorEnabled),
		Heading:     out.Warning,
		Subcommand:  out.DiffAdd,
		Flag:        out.DiffHunk,
		Description: out.Message,
		Example:     out.Dim,
		Dim:         out.Dim,
	}
}

// HelpFormatter renders styled help for the golst command tree. The root
// command's help also lists where configuration is read from.
type HelpFormatter struct {
	styles *HelpStyles
	usage  *template.Template
	help   *template.Template
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if gt (len .Aliases) 0 }}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}
{{ commands . }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}
{{- if not .HasParent }}

{{ heading "Configuration:" }}
{{ configuration }}

{{ heading "Environment:" }}
{{ environment }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trim . }}

{{ end }}{{ usage . }}`

// NewHelpFormatter creates a help formatter for the color mode, deciding
// color against writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}

	funcs := template.FuncMap{
		"heading":       h.styles.Heading.Render,
		"command":       h.styles.Command.Render,
		"dim":           h.styles.Dim.Render,
		"example":       h.styles.Example.Render,
		"join":          strings.Join,
		"trim":          trimTrailingWhitespace,
		"commands":      h.commands,
		"flags":         h.flags,
		"configuration": h.configuration,
		"environment":   h.environment,
	}
	h.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	funcs["usage"] = h.renderUsage
	h.help = template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))
	return h
}

// ApplyToCommand installs the help and usage renderers on cmd. Subcommands
// inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.usage.Execute(c.OutOrStderr(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *HelpFormatter) renderUsage(cmd *cobra.Command) (string, error) {
	var b strings.Builder
	if err := h.usage.Execute(&b, cmd); err != nil {
		return "", fmt.Errorf("render usage: %w", err)
	}
	return b.String(), nil
}

// commands lists the available subcommands of cmd with their summaries.
func (h *HelpFormatter) commands(cmd *cobra.Command) string {
	var rows [][2]string
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		rows = append(rows, [2]string{h.styles.Subcommand.Render(sub.Name()), h.styles.Description.Render(sub.Short)})
	}
	return columns(rows)
}

// flags lists the visible flags of fs as "-s, --name type" and usage. A
// non-zero default is appended to the usage.
func (h *HelpFormatter) flags(fs *pflag.FlagSet) string {
	var rows [][2]string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "    --" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", --" + f.Name
		}
		varName, usage := pflag.UnquoteUsage(f)
		left := h.styles.Flag.Render(name)
		if varName != "" {
			left += " " + h.styles.Dim.Render(varName)
		}
		if def := f.DefValue; def != "" && def != "false" && def != "0" && def != "[]" {
			usage += h.styles.Dim.Render(fmt.Sprintf(" (default %q)", def))
		}
		rows = append(rows, [2]string{left, h.styles.Description.Render(usage)})
	})
	return columns(rows)
}

// configuration lists the files configuration is read from, lowest
// precedence first.
func (h *HelpFormatter) configuration() string {
	rows := [][2]string{
		{h.styles.Flag.Render("$XDG_CONFIG_HOME/golst/config.yaml"), "user defaults"},
		{h.styles.Flag.Render(strings.Join(configloader.ProjectConfigFiles(), ", ")), "project config, searched upward to the repository root"},
		{h.styles.Flag.Render("--config"), "explicit config file, read after the project config"},
	}
	return columns(rows)
}

// environment lists the GOLST_* variables. They override config files and
// are read from .env in the working directory when unset.
func (h *HelpFormatter) environment() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][2]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, [2]string{h.styles.Flag.Render(name), h.styles.Description.Render(vars[name])})
	}
	return columns(rows)
}

// columns aligns the second cell of each row. Widths are measured without
// ANSI sequences.
func columns(rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		pad := strings.Repeat(" ", width-lipgloss.Width(r[0]))
		lines[i] = "  " + r[0] + pad + "   " + r[1]
	}
	return strings.Join(lines, "\n")
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
