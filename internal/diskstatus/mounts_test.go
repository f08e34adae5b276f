package diskstatus

import (
	"strings"
	"testing"
)

const sampleProcMounts = `/dev/sda1 / ext4 rw,relatime 0 0
proc /proc proc rw,nosuid,nodev,noexec,relatime 0 0
sysfs /sys sysfs rw,nosuid,nodev,noexec,relatime 0 0
tmpfs /run tmpfs rw,nosuid,nodev 0 0
/dev/sdb1 /home ext4 rw,relatime 0 0
overlay /var/lib/docker/overlay2/abc/merged overlay rw,relatime 0 0
/dev/loop0 /snap/core/1234 squashfs ro,nodev,relatime 0 0
fileserver:/export /mnt/nfs nfs4 rw,relatime 0 0
`

func TestParseMountsExcludesVirtualAndNoise(t *testing.T) {
	mounts, err := parseMounts(strings.NewReader(sampleProcMounts))
	if err != nil {
		t.Fatalf("parseMounts: %v", err)
	}

	want := map[string]bool{"/": true, "/home": true, "/mnt/nfs": true}
	if len(mounts) != len(want) {
		t.Fatalf("got %d mounts, want %d: %+v", len(mounts), len(want), mounts)
	}
	for _, m := range mounts {
		if !want[m.MountPoint] {
			t.Errorf("unexpected mount point survived filtering: %s (fstype %s)", m.MountPoint, m.FSType)
		}
	}
}

func TestParseMountsRetainsNetworkDevice(t *testing.T) {
	mounts, err := parseMounts(strings.NewReader(sampleProcMounts))
	if err != nil {
		t.Fatalf("parseMounts: %v", err)
	}
	for _, m := range mounts {
		if m.MountPoint == "/mnt/nfs" {
			if m.Device != "fileserver:/export" {
				t.Errorf("Device = %q, want fileserver:/export", m.Device)
			}
			return
		}
	}
	t.Fatal("expected /mnt/nfs to survive filtering")
}

func TestCheckRootFilesystem(t *testing.T) {
	status, err := Check("/")
	if err != nil {
		t.Fatalf("Check(/): %v", err)
	}
	if status.Total == 0 {
		t.Error("expected nonzero total capacity for /")
	}
	if status.Percent < 0 || status.Percent > 100 {
		t.Errorf("Percent = %f, want within [0, 100]", status.Percent)
	}
}
