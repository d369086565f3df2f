package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a source path to name its backup.
const BackupSuffix = ".golst.bak"

// BackupPath returns where the backup of path is kept.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies path to its backup unless one already exists, so
// repeated runs keep the content from before the first rewrite. It reports
// whether a backup was written.
func CreateBackup(ctx context.Context, path string) (bool, error) {
	backup := BackupPath(path)
	if _, err := os.Stat(backup); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	content, snap, err := Read(ctx, path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("backup: %w", err)
	}

	if err := WriteAtomic(ctx, backup, content, snap.Mode.Perm()); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}

// RestoreBackup puts the backed up content back in place. It reports false
// when there is no backup.
func RestoreBackup(ctx context.Context, path string) (bool, error) {
	content, snap, err := Read(ctx, BackupPath(path))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("restore: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, snap.Mode.Perm()); err != nil {
		return false, fmt.Errorf("restore: %w", err)
	}
	return true, nil
}
