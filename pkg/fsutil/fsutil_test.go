package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/golst/pkg/fsutil"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "A.java")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "class A {}")
	content, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "class A {}", string(content))
	assert.Equal(t, path, snap.Path)
	assert.Equal(t, int64(10), snap.Size)
	assert.True(t, snap.Matches(content))
	assert.False(t, snap.Matches([]byte("class B {}")))
}

func TestReadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, _, err := fsutil.Read(context.Background(), filepath.Join(dir, "missing.java"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.Read(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = fsutil.Read(ctx, dir)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSnapshotChanged(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "class A {}")
	_, snap, err := fsutil.Read(context.Background(), path)
	require.NoError(t, err)

	changed, err := snap.Changed()
	require.NoError(t, err)
	assert.False(t, changed)

	// Same size and a restored mod time still differ by content.
	require.NoError(t, os.WriteFile(path, []byte("class B {}"), 0o600))
	require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))
	changed, err = snap.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, os.Remove(path))
	changed, err = snap.Changed()
	require.NoError(t, err)
	assert.True(t, changed, "a deleted file counts as changed")
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "A.java")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("class A {}\n"), 0))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "class A {}\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestCommit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		rewrite   string
		backup    bool
		tamper    bool
		wantWrite bool
		wantErr   error
		wantFile  string
	}{
		{name: "unchanged content is not written", rewrite: "class A {}", wantFile: "class A {}"},
		{name: "rewrite", rewrite: "class A {\n}\n", wantWrite: true, wantFile: "class A {\n}\n"},
		{name: "rewrite with backup", rewrite: "class A {\n}\n", backup: true, wantWrite: true, wantFile: "class A {\n}\n"},
		{name: "conflict", rewrite: "class A {\n}\n", tamper: true, wantErr: fsutil.ErrConflict, wantFile: "class Z {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeSource(t, "class A {}")
			ctx := context.Background()
			_, snap, err := fsutil.Read(ctx, path)
			require.NoError(t, err)

			if tt.tamper {
				require.NoError(t, os.WriteFile(path, []byte("class Z {}"), 0o600))
				later := snap.ModTime.Add(time.Second)
				require.NoError(t, os.Chtimes(path, later, later))
			}

			wrote, err := fsutil.Commit(ctx, snap, []byte(tt.rewrite), fsutil.CommitOptions{Backup: tt.backup})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantWrite, wrote)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFile, string(got))

			backup, err := os.ReadFile(fsutil.BackupPath(path))
			if tt.backup {
				require.NoError(t, err)
				assert.Equal(t, "class A {}", string(backup))
			} else {
				assert.ErrorIs(t, err, os.ErrNotExist)
			}
		})
	}
}

func TestBackupRestore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := writeSource(t, "original")

	restored, err := fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, restored, "nothing to restore yet")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	require.NoError(t, os.WriteFile(path, []byte("second"), 0o600))
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created, "an existing backup is kept")

	restored, err = fsutil.RestoreBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, restored)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
	assert.Equal(t, filepath.Base(path)+".golst.bak", filepath.Base(fsutil.BackupPath(path)))
}
