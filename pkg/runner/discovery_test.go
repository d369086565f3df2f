package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/runner"
)

// writeTree writes files under a fresh temp dir and returns the dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("class A {}\n"), 0o644))
	}
	return dir
}

func abs(dir string, files ...string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.Join(dir, f)
	}
	return out
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	files := []string{
		"A.java",
		"src/main/java/p/B.java",
		"src/main/java/p/C.kt",
		"src/main/java/p/gen/D.java",
		"notes.txt",
		".idea/E.java",
		"src/.F.java",
		"vendor/G.java",
		"node_modules/x/H.java",
	}

	tests := []struct {
		name    string
		opts    runner.Options
		want    []string
		wantErr bool
	}{
		{
			name: "defaults to the working directory",
			want: []string{"A.java", "src/main/java/p/B.java", "src/main/java/p/gen/D.java"},
		},
		{
			name: "single file",
			opts: runner.Options{Paths: []string{"A.java"}},
			want: []string{"A.java"},
		},
		{
			name: "explicit dot file is kept",
			opts: runner.Options{Paths: []string{"src/.F.java"}},
			want: []string{"src/.F.java"},
		},
		{
			name: "exclude prunes directories",
			opts: runner.Options{Exclude: []string{"**/gen"}},
			want: []string{"A.java", "src/main/java/p/B.java"},
		},
		{
			name: "exclude files",
			opts: runner.Options{Exclude: []string{"**/D.java", "A.java"}},
			want: []string{"src/main/java/p/B.java"},
		},
		{
			name: "include",
			opts: runner.Options{Include: []string{"src/**/*.java"}},
			want: []string{"src/main/java/p/B.java", "src/main/java/p/gen/D.java"},
		},
		{
			name: "include other languages",
			opts: runner.Options{Include: []string{"**/*.java", "**/*.kt"}, Paths: []string{"src"}},
			want: []string{"src/main/java/p/B.java", "src/main/java/p/C.kt", "src/main/java/p/gen/D.java"},
		},
		{
			name: "multiple overlapping paths are deduplicated",
			opts: runner.Options{Paths: []string{"src", "src/main/java/p/B.java", "."}},
			want: []string{"A.java", "src/main/java/p/B.java", "src/main/java/p/gen/D.java"},
		},
		{
			name:    "missing path",
			opts:    runner.Options{Paths: []string{"nope"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := writeTree(t, files...)
			opts := tt.opts
			opts.WorkingDir = dir

			got, err := runner.Discover(context.Background(), opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, abs(dir, tt.want...), got)
		})
	}
}

func TestDiscoverContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: writeTree(t, "A.java")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscoverSymlinks(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, "real/A.java")
	external := writeTree(t, "B.java")

	if err := os.Symlink(filepath.Join(dir, "real", "A.java"), filepath.Join(dir, "Link.java")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(external, filepath.Join(dir, "linked")))

	got, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, abs(dir, "Link.java", "real/A.java"), got, "file links are kept, directory links are not followed")

	got, err = runner.Discover(context.Background(), runner.Options{WorkingDir: dir, FollowSymlinks: true})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Contains(t, got, filepath.Join(external, "B.java"))
}
