package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/golst/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files rewritten (+12 -9), 1 skipped, 1 failed, 10 files checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	var parts []string

	switch {
	case stats.FilesModified == 0:
		parts = append(parts, s.Success.Render("No changes"))
	case dryRun:
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s would be rewritten", stats.FilesModified, plural(stats.FilesModified))))
	default:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s rewritten", stats.FilesWritten, plural(stats.FilesWritten))))
	}
	if stats.Additions > 0 || stats.Deletions > 0 {
		parts[0] += s.Dim.Render(fmt.Sprintf(" (+%d -%d)", stats.Additions, stats.Deletions))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	parts = append(parts, s.Dim.Render(fmt.Sprintf("%d %s checked", stats.FilesProcessed, plural(stats.FilesProcessed))))

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value string) {
		builder.WriteString(fmt.Sprintf("  %-19s%s\n", label+":", value))
	}

	row("Files discovered", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesModified > 0 {
		row("Files modified", s.Warning.Render(strconv.Itoa(stats.FilesModified)))
	}
	if stats.FilesWritten > 0 {
		row("Files rewritten", s.Success.Render(strconv.Itoa(stats.FilesWritten)))
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Dim.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	if stats.Additions > 0 || stats.Deletions > 0 {
		row("Lines", s.DiffAdd.Render("+"+strconv.Itoa(stats.Additions))+" "+s.DiffRemove.Render("-"+strconv.Itoa(stats.Deletions)))
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	case dryRun && stats.FilesModified > 0:
		builder.WriteString(s.Warning.Render("Dry run: nothing written"))
	default:
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}
