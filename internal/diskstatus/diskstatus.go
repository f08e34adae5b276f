// Package diskstatus reports filesystem capacity for a mount point and
// enumerates the real (non-virtual) mounts on the system.
package diskstatus

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Status is a point-in-time capacity reading for one mount point.
type Status struct {
	MountPoint string
	Device     string
	Total      uint64
	Used       uint64
	Available  uint64
	Percent    float64
}

// Check invokes statfs(2) on path and computes total/used/available
// bytes and the used-percent of usable capacity.
func Check(path string) (Status, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Status{}, fmt.Errorf("statfs %s: %w", path, err)
	}

	fragSize := uint64(st.Bsize)
	total := st.Blocks * fragSize
	available := st.Bavail * fragSize
	used := total - st.Bfree*fragSize

	denom := used + available
	if denom == 0 {
		denom = 1
	}
	percent := 100 * float64(used) / float64(denom)

	return Status{
		MountPoint: path,
		Total:      total,
		Used:       used,
		Available:  available,
		Percent:    percent,
	}, nil
}
