// Package fsutil holds small filesystem helpers shared by the project
// scanner and the clean executor: measuring on-disk size and removing
// a tree, both bottom-up.
package fsutil

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// DirSize walks path bottom-up and sums on-disk usage (512-byte
// blocks, matching disktree's accounting) across every regular file
// under it. Unreadable entries are skipped rather than aborting the
// walk, mirroring the scanner's per-entry error tolerance.
func DirSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		var st unix.Stat_t
		if statErr := unix.Lstat(p, &st); statErr != nil {
			return nil
		}
		total += st.Blocks * 512
		return nil
	})
	return total, err
}

// RemoveAll removes path and everything under it.
func RemoveAll(path string) error {
	return os.RemoveAll(path)
}
