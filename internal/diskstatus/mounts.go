package diskstatus

import (
	"bufio"
	"io"
	"os"
	"strings"
)

var virtualFSTypes = map[string]bool{
	"proc": true, "sysfs": true, "devtmpfs": true, "devpts": true,
	"tmpfs": true, "securityfs": true, "cgroup": true, "cgroup2": true,
	"pstore": true, "debugfs": true, "hugetlbfs": true, "mqueue": true,
	"fusectl": true, "configfs": true, "binfmt_misc": true, "autofs": true,
	"efivarfs": true, "tracefs": true, "bpf": true, "overlay": true,
	"squashfs": true, "nsfs": true, "ramfs": true,
}

var excludedMountPrefixes = []string{"/snap/", "/var/lib/docker/"}

// Mount is one entry from /proc/mounts surviving the virtual-filesystem
// and container-churn exclusion rules.
type Mount struct {
	Device     string
	MountPoint string
	FSType     string
}

// Enumerate reads /proc/mounts and returns the mounts considered real,
// user-relevant storage: virtual filesystem types, /snap and Docker
// overlay mount points, and local device strings that aren't actual
// device paths (retaining network mounts like NFS, which use "host:/path")
// are all excluded.
func Enumerate() ([]Mount, error) {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMounts(f)
}

func parseMounts(r io.Reader) ([]Mount, error) {
	var mounts []Mount
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		device, mountPoint, fsType := fields[0], fields[1], fields[2]

		if virtualFSTypes[fsType] {
			continue
		}
		if hasAnyPrefix(mountPoint, excludedMountPrefixes) {
			continue
		}
		if !strings.HasPrefix(device, "/") && !strings.Contains(device, ":") {
			continue
		}

		mounts = append(mounts, Mount{Device: device, MountPoint: mountPoint, FSType: fsType})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mounts, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
