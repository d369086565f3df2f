package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/golst/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	minLanguageWidth = 8
	minStatusWidth   = 10
	changesWidth     = 12
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the outcome table.
type TableRow struct {
	File     string
	Language string
	Status   string
	Changes  string
	Style    func(*Styles) lipgloss.Style
}

// TableFormatter formats run outcomes as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	file, language, status, changes int
}

// FormatTable formats runner results as a styled table, one row per file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(result.Files))
	for _, f := range result.Files {
		rows = append(rows, OutcomeToTableRow(f))
	}
	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatRow(TableRow{File: "FILE", Language: "LANG", Status: "STATUS", Changes: "CHANGES"}, widths, t.styles.TableHeader))
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	for i, row := range rows {
		if i > 0 && rows[i-1].File[:dirLen(rows[i-1].File)] != row.File[:dirLen(row.File)] {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
		}
		style := t.styles.Message
		if row.Style != nil {
			style = row.Style(t.styles)
		}
		builder.WriteString(t.formatRow(row, widths, style))
	}
	builder.WriteString(t.formatSeparator(widths, heavySeparator))

	return builder.String()
}

// dirLen returns the length of the directory part of path, so rows can be
// grouped by directory.
func dirLen(path string) int {
	return strings.LastIndexByte(path, '/') + 1
}

func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	w := columnWidths{
		file:     minFileWidth,
		language: minLanguageWidth,
		status:   minStatusWidth,
		changes:  changesWidth,
	}
	for _, row := range rows {
		w.file = max(w.file, len(row.File))
		w.language = max(w.language, len(row.Language))
		w.status = max(w.status, len(row.Status))
	}

	// Give the file column whatever the terminal has left.
	fixed := w.language + w.status + w.changes + 3*tablePadding
	if w.file+fixed > t.termWidth {
		w.file = max(minFileWidth, t.termWidth-fixed)
	}
	return w
}

func (t *TableFormatter) totalWidth(w columnWidths) int {
	return w.file + w.language + w.status + w.changes + 3*tablePadding
}

func (t *TableFormatter) formatSeparator(w columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.totalWidth(w))) + "\n"
}

func (t *TableFormatter) formatRow(row TableRow, w columnWidths, style lipgloss.Style) string {
	gap := strings.Repeat(" ", tablePadding)
	file := truncateFilePath(row.File, w.file)
	line := fmt.Sprintf("%-*s%s%-*s%s%-*s%s%*s",
		w.file, file, gap,
		w.language, truncateString(row.Language, w.language), gap,
		w.status, row.Status, gap,
		w.changes, row.Changes,
	)
	return style.Render(strings.TrimRight(line, " ")) + "\n"
}

// OutcomeToTableRow converts a file outcome into a table row.
func OutcomeToTableRow(o runner.FileOutcome) TableRow {
	row := TableRow{File: o.Path, Language: o.Language}
	switch {
	case o.Error != nil:
		row.Status = "error"
		row.Style = func(s *Styles) lipgloss.Style { return s.Error }
	case o.Skipped:
		row.Status = "skipped"
		row.Style = func(s *Styles) lipgloss.Style { return s.Dim }
	case o.Written:
		row.Status = "rewritten"
		row.Style = func(s *Styles) lipgloss.Style { return s.Success }
	case o.Modified:
		row.Status = o.Status()
		row.Style = func(s *Styles) lipgloss.Style { return s.Warning }
	default:
		row.Status = "unchanged"
	}
	if o.Diff != nil {
		row.Changes = fmt.Sprintf("+%d -%d", o.Diff.Additions, o.Diff.Deletions)
	}
	return row
}

func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath keeps the end of a path, which names the file.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
