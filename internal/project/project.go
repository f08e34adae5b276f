// Package project walks a directory tree looking for recognized build
// projects (per internal/detect) and reports their reclaimable
// artifacts.
package project

import (
	"os"
	"path/filepath"
	"time"

	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/fsutil"
)

// DetectedProject is one recognized project root and its reclaimable
// artifacts.
type DetectedProject struct {
	Path          string
	DetectorID    string
	DisplayName   string
	ArtifactSize  int64
	ArtifactPaths []string
	CleanCommand  string
}

// ScanOptions bounds a project scan.
type ScanOptions struct {
	MaxDepth     int
	Exclude      []string // exact directory-name matches, anywhere in the path
	MinAgeDays   int       // 0 disables the age filter
	DetectorIDs  []string  // empty means "all registered detectors"
	ExceptIDs    []string  // applied after DetectorIDs
}

var knownArtifactNames = map[string]bool{
	"target":       true,
	"build":        true,
	"node_modules": true,
	".gradle":      true,
	"bin":          true,
	"obj":          true,
}

// Scan walks root looking for projects recognized by reg, bounded by
// opts. On a match it records a DetectedProject and prunes further
// descent into that project's subtree.
func Scan(root string, reg *detect.Registry, opts ScanOptions) ([]DetectedProject, error) {
	detectors := selectDetectors(reg, opts)
	fsys := detect.OSFileChecker{}
	excludeSet := toSet(opts.Exclude)

	var projects []DetectedProject
	rootDepth := depthOf(root)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && excludeSet[d.Name()] {
			return filepath.SkipDir
		}
		if opts.MaxDepth > 0 && depthOf(path)-rootDepth > opts.MaxDepth {
			return filepath.SkipDir
		}

		for _, det := range detectors {
			if !det.Detects(path, fsys) {
				continue
			}

			artifactPaths := det.Artifacts(path, fsys)
			if len(artifactPaths) == 0 && det.CleanCommand == "" {
				return filepath.SkipDir
			}

			size, sizeErr := aggregateSize(artifactPaths)
			if sizeErr != nil {
				return sizeErr
			}

			if opts.MinAgeDays > 0 && isTooRecent(path, opts.MinAgeDays) {
				return filepath.SkipDir
			}

			projects = append(projects, DetectedProject{
				Path:          path,
				DetectorID:    det.ID,
				DisplayName:   det.DisplayName,
				ArtifactSize:  size,
				ArtifactPaths: artifactPaths,
				CleanCommand:  det.CleanCommand,
			})
			return filepath.SkipDir
		}

		return nil
	})

	return projects, err
}

func selectDetectors(reg *detect.Registry, opts ScanOptions) []detect.Detector {
	var dets []detect.Detector
	if len(opts.DetectorIDs) > 0 {
		dets = reg.Only(opts.DetectorIDs)
	} else {
		dets = reg.All()
	}
	if len(opts.ExceptIDs) > 0 {
		except := toSet(opts.ExceptIDs)
		filtered := dets[:0:0]
		for _, d := range dets {
			if !except[d.ID] {
				filtered = append(filtered, d)
			}
		}
		dets = filtered
	}
	return dets
}

func aggregateSize(paths []string) (int64, error) {
	var total int64
	for _, p := range paths {
		size, err := fsutil.DirSize(p)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// isTooRecent reports whether the project's last-modified time (the
// max mtime over files outside known artifact directories) is newer
// than now - minAgeDays.
func isTooRecent(projectPath string, minAgeDays int) bool {
	lastModified := lastModifiedExcludingArtifacts(projectPath)
	cutoff := time.Now().AddDate(0, 0, -minAgeDays)
	return lastModified.After(cutoff)
}

func lastModifiedExcludingArtifacts(root string) time.Time {
	var latest time.Time
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && knownArtifactNames[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return nil
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	return latest
}

func depthOf(path string) int {
	clean := filepath.Clean(path)
	if clean == string(filepath.Separator) {
		return 0
	}
	count := 0
	for _, r := range clean {
		if r == filepath.Separator {
			count++
		}
	}
	return count
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
