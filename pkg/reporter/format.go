package reporter

import (
	"errors"
	"fmt"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// ErrUnknownFormat is returned for format names the reporter does not know.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	f := Format(formatStr)
	if formatStr == "" {
		f = FormatText
	}
	if !f.IsValid() {
		return "", fmt.Errorf("%w %q; valid formats: text, table, json, diff, summary", ErrUnknownFormat, formatStr)
	}
	return f, nil
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatDiff, FormatSummary:
		return true
	default:
		return false
	}
}
