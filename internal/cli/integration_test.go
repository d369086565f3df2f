package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/internal/cli"
)

const sampleSource = `package com.example;

import java.util.List;

public class Sample {
    private List names;
    private int count = 0;
}
`

const messySource = `package com.example;

public class Sample {
private int count=0;
}
`

// project creates a directory holding files, stopping config discovery at
// its root.
func project(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// execute runs golst with args in dir and returns its output streams.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"-C", dir, "--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestIntegration_PrintRoundTrips(t *testing.T) {
	t.Parallel()

	src := "// header\npackage p;\n\nclass A {\n\tint x ; /* odd */\n}"
	dir := project(t, map[string]string{"A.java": src})

	stdout, _, err := execute(t, dir, "print", "A.java")
	require.NoError(t, err)
	assert.Equal(t, src, stdout)
}

func TestIntegration_PrintCheck(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"A.java": sampleSource, "B.java": messySource})

	stdout, _, err := execute(t, dir, "print", "--check", "A.java", "B.java")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestIntegration_PrintSyntaxError(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Bad.java": "class A {\n  int x = ;\n}\n"})

	stdout, _, err := execute(t, dir, "print", "Bad.java")
	require.ErrorIs(t, err, cli.ErrFilesFailed)
	assert.Equal(t, cli.ExitFilesFailed, cli.ExitCode(err))
	assert.Contains(t, stdout, "Bad.java:2:")
	assert.Contains(t, stdout, "syntax error")
}

func TestIntegration_PrintUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"a.py": "print('hi')\n"})

	_, _, err := execute(t, dir, "print", "a.py")
	require.ErrorIs(t, err, cli.ErrUsage)
	assert.Contains(t, err.Error(), "no front end")
}

func TestIntegration_FormatDryRun(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"src/Sample.java": messySource})

	stdout, _, err := execute(t, dir, "--dry-run", "format")
	require.ErrorIs(t, err, cli.ErrChangesPending)
	assert.Equal(t, cli.ExitChangesPending, cli.ExitCode(err))

	assert.Contains(t, stdout, "src/Sample.java")
	assert.Contains(t, stdout, "-private int count=0;")
	assert.Contains(t, stdout, "+    private int count = 0;")
	assert.Contains(t, stdout, "1 file would be rewritten")
	assert.Equal(t, messySource, readFile(t, filepath.Join(dir, "src", "Sample.java")), "dry run must not write")
}

func TestIntegration_FormatWrites(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": messySource, "Clean.java": sampleSource})

	stdout, _, err := execute(t, dir, "format")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 file rewritten")
	assert.Contains(t, stdout, "2 files checked")

	assert.Contains(t, readFile(t, filepath.Join(dir, "Sample.java")), "\n    private int count = 0;\n")
	assert.Equal(t, sampleSource, readFile(t, filepath.Join(dir, "Clean.java")))

	// A second run finds nothing left to do.
	stdout, _, err = execute(t, dir, "format")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No changes")
}

func TestIntegration_FormatTableReport(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": messySource})

	stdout, _, err := execute(t, dir, "--dry-run", "format", "--report", "table")
	require.ErrorIs(t, err, cli.ErrChangesPending)
	assert.Contains(t, stdout, "FILE")
	assert.Contains(t, stdout, "STATUS")
	assert.Contains(t, stdout, "changes pending")
}

func TestIntegration_UnknownReport(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": sampleSource})

	_, _, err := execute(t, dir, "format", "--report", "xml")
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestIntegration_Edits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "change type",
			args: []string{"change-type", "--from", "java.util.List", "--to", "java.util.Collection"},
			want: "public class Sample {\n    private Collection names;\n    private int count = 0;\n}\n",
		},
		{
			name: "rename",
			args: []string{"rename", "--type", "java.util.List", "--to", "items"},
			want: "public class Sample {\n    private List items;\n    private int count = 0;\n}\n",
		},
		{
			name: "delete",
			args: []string{"delete", "--type", "java.util.List", "--fields"},
			want: "public class Sample {\n    private int count = 0;\n}\n",
		},
		{
			name: "no match",
			args: []string{"delete", "--type", "java.util.Map"},
			want: sampleSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := project(t, map[string]string{"Sample.java": sampleSource})

			_, _, err := execute(t, dir, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, readFile(t, filepath.Join(dir, "Sample.java")), tt.want)
		})
	}
}

func TestIntegration_ChangeTypeLogsImports(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": sampleSource})

	_, stderr, err := execute(t, dir, "change-type", "--from", "java.util.List", "--to", "java.util.Collection")
	require.NoError(t, err)
	assert.Contains(t, stderr, "java.util.Collection")
	assert.Contains(t, stderr, "import unused")
}

func TestIntegration_EditsNeedFlags(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": sampleSource})

	tests := [][]string{
		{"change-type", "--from", "java.util.List"},
		{"change-type", "--to", "java.util.List"},
		{"rename", "--type", "java.util.List"},
		{"delete"},
	}
	for _, args := range tests {
		_, _, err := execute(t, dir, args...)
		require.ErrorIs(t, err, cli.ErrMissingFlag, "args %v", args)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
	}
	assert.Equal(t, sampleSource, readFile(t, filepath.Join(dir, "Sample.java")))
}

func TestIntegration_RenameMultipleVariablesFails(t *testing.T) {
	t.Parallel()

	src := "import java.util.List;\nclass A {\n    List a, b;\n}\n"
	dir := project(t, map[string]string{"A.java": src})

	stdout, _, err := execute(t, dir, "rename", "--type", "java.util.List", "--to", "c")
	require.ErrorIs(t, err, cli.ErrFilesFailed)
	assert.Contains(t, stdout, "A.java")
	assert.Contains(t, stdout, "1 failed")
	assert.Equal(t, src, readFile(t, filepath.Join(dir, "A.java")), "a failed edit leaves the file alone")
}

func TestIntegration_Styles(t *testing.T) {
	t.Parallel()

	dir := project(t, nil)

	stdout, _, err := execute(t, dir, "styles")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: intellij")
	assert.Contains(t, stdout, "blank_lines:")
	assert.Contains(t, stdout, "indent_size: 4")

	stdout, _, err = execute(t, dir, "styles", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[tabs_and_indents]")

	_, _, err = execute(t, dir, "styles", "--format", "json")
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestIntegration_StyleFromConfig(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{
		".golst.yml":   "style: two.yml\n",
		"two.yml":      "name: two\ntabs_and_indents:\n  indent_size: 2\n  tab_size: 2\n",
		"Sample.java":  messySource,
		"nested/x.txt": "not java\n",
	})

	stdout, _, err := execute(t, dir, "styles")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: two")
	assert.Contains(t, stdout, "indent_size: 2")

	_, _, err = execute(t, dir, "format")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(dir, "Sample.java")), "\n  private int count = 0;\n")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"bad.yml": "jobs: -1\n", "Sample.java": sampleSource})

	_, _, err := execute(t, dir, "--config", filepath.Join(dir, "bad.yml"), "format")
	require.ErrorIs(t, err, cli.ErrConfig)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	dir := project(t, nil)
	out := filepath.Join(dir, ".golst.yml")

	_, _, err := execute(t, dir, "init", "--output", out, "--style")
	require.NoError(t, err)

	content := readFile(t, out)
	assert.Contains(t, content, "include:")
	assert.Contains(t, content, "**/*.java")
	assert.Contains(t, content, "style: golst-style.yml")
	assert.Contains(t, readFile(t, filepath.Join(dir, "golst-style.yml")), "tabs_and_indents:")

	_, _, err = execute(t, dir, "init", "--output", out)
	require.ErrorIs(t, err, cli.ErrUsage, "existing files are kept without --force")

	_, _, err = execute(t, dir, "init", "--output", out, "--force")
	require.NoError(t, err)

	// The generated configuration is accepted by every command.
	_, _, err = execute(t, dir, "styles")
	require.NoError(t, err)
}

func TestIntegration_JSONReport(t *testing.T) {
	t.Parallel()

	dir := project(t, map[string]string{"Sample.java": messySource})

	stdout, _, err := execute(t, dir, "--dry-run", "format", "--report", "json")
	require.ErrorIs(t, err, cli.ErrChangesPending)

	var doc struct {
		DryRun bool `json:"dryRun"`
		Files  []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.True(t, doc.DryRun)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "Sample.java", doc.Files[0].Path)
	assert.Equal(t, "changes pending", doc.Files[0].Status)
}
