package scanner

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

type statInfo struct {
	dev       uint64
	ino       uint64
	size      int64
	blocks    int64
	mtime     time.Time
	isDir     bool
	isSymlink bool
}

func lstat(path string) (statInfo, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return statInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return toStatInfo(st), nil
}

func statFollow(path string) (statInfo, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return statInfo{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return toStatInfo(st), nil
}

func toStatInfo(st unix.Stat_t) statInfo {
	return statInfo{
		dev:       uint64(st.Dev),
		ino:       st.Ino,
		size:      st.Size,
		blocks:    st.Blocks,
		mtime:     time.Unix(int64(st.Mtim.Sec), int64(st.Mtim.Nsec)), //nolint:unconvert
		isDir:     st.Mode&unix.S_IFMT == unix.S_IFDIR,
		isSymlink: st.Mode&unix.S_IFMT == unix.S_IFLNK,
	}
}

// diskUsage converts a 512-byte block count (POSIX st_blocks) to bytes.
func (s statInfo) diskUsage() int64 {
	return s.blocks * 512
}

// identity is the device+inode pair used for one-file-system checks and
// symlink-cycle detection.
func (s statInfo) identity() string {
	return fmt.Sprintf("%d:%d", s.dev, s.ino)
}
