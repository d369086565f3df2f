package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/config"
	"github.com/yaklabco/golst/pkg/diff"
	"github.com/yaklabco/golst/pkg/reporter"
	"github.com/yaklabco/golst/pkg/runner"
)

func sampleResult() *runner.Result {
	d := diff.Generate("src/A.java", []byte("class A {\nint x;\n}\n"), []byte("class A {\n    int x;\n}\n"))
	return &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "src/A.java", Language: "Java", Modified: true, Written: true, Diff: d},
			{Path: "src/B.java", Language: "Java"},
			{Path: "src/C.java", Language: "Java", Error: errors.New("boom")},
			{Path: "src/D.kt", Language: "Kotlin", Skipped: true, SkipReason: "no front end for language Kotlin"},
		},
		Stats: runner.Stats{
			FilesDiscovered: 4,
			FilesProcessed:  2,
			FilesModified:   1,
			FilesWritten:    1,
			FilesSkipped:    1,
			FilesErrored:    1,
			Additions:       1,
			Deletions:       1,
		},
	}
}

func report(t *testing.T, opts reporter.Options, result *runner.Result) (string, int) {
	t.Helper()

	var buf bytes.Buffer
	opts.Writer = &buf
	opts.Color = config.ColorNever
	r, err := reporter.New(opts)
	require.NoError(t, err)

	n, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	return buf.String(), n
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    reporter.Format
		wantErr bool
	}{
		{in: "", want: reporter.FormatText},
		{in: "text", want: reporter.FormatText},
		{in: "table", want: reporter.FormatTable},
		{in: "json", want: reporter.FormatJSON},
		{in: "diff", want: reporter.FormatDiff},
		{in: "summary", want: reporter.FormatSummary},
		{in: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, reporter.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.ErrorIs(t, err, reporter.ErrUnknownFormat)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatText}, sampleResult())
	assert.Equal(t, 1, n)
	assert.Contains(t, out, "  src/A.java  rewritten\n")
	assert.Contains(t, out, "src/C.java  error  boom")
	assert.NotContains(t, out, "src/B.java", "unchanged files are quiet")
	assert.NotContains(t, out, "@@", "diffs are opt-in")
	assert.Contains(t, out, "1 file rewritten (+1 -1), 1 skipped, 1 failed, 2 files checked\n")
}

func TestTextReporterVerboseWithDiff(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatText, Verbose: true, ShowDiff: true}, sampleResult())
	assert.Contains(t, out, "src/B.java  unchanged")
	assert.Contains(t, out, "src/D.kt  skipped: no front end for language Kotlin")
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, "+    int x;")
}

func TestTextReporterNoFiles(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{}, &runner.Result{})
	assert.Zero(t, n)
	assert.Equal(t, "No files to process.\n", out)
}

func TestTableReporter(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatTable, DryRun: true}, sampleResult())
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "src/B.java")
	assert.Contains(t, out, "Summary")
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatSummary}, sampleResult())
	assert.Equal(t, 1, n)
	assert.Contains(t, out, "Summary")
	assert.NotContains(t, out, "src/A.java")
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	out, _ := report(t, reporter.Options{Format: reporter.FormatDiff}, sampleResult())
	assert.Contains(t, out, "# src/C.java: error: boom\n")
	assert.Contains(t, out, "diff --git a/src/A.java b/src/A.java")
	assert.Contains(t, out, "-int x;\n")
	assert.NotContains(t, out, "src/B.java")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatJSON, DryRun: true}, sampleResult())
	assert.Equal(t, 1, n)

	var doc reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.True(t, doc.DryRun)
	require.Len(t, doc.Files, 4)

	a := doc.Files[0]
	assert.Equal(t, "rewritten", a.Status)
	assert.True(t, a.Written)
	assert.Equal(t, 1, a.Additions)
	assert.Contains(t, a.Diff, "+    int x;")

	assert.Equal(t, "error", doc.Files[2].Status)
	assert.Equal(t, "boom", doc.Files[2].Error)
	assert.Equal(t, "no front end for language Kotlin", doc.Files[3].SkipReason)

	assert.Equal(t, 4, doc.Summary.FilesDiscovered)
	assert.Equal(t, 1, doc.Summary.FilesErrored)
}

func TestJSONReporterNilResult(t *testing.T) {
	t.Parallel()

	out, n := report(t, reporter.Options{Format: reporter.FormatJSON, Compact: true}, nil)
	assert.Zero(t, n)
	assert.JSONEq(t, `{"version":"1.0.0","dryRun":false,"files":[],"summary":{"filesDiscovered":0,"filesProcessed":0,"filesModified":0,"filesWritten":0,"filesSkipped":0,"filesErrored":0,"additions":0,"deletions":0}}`, out)
}
