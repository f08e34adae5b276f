// Package detect provides the project-type detector registry: the
// capability set that identifies a build ecosystem at a directory and
// describes how to reclaim its artifacts.
package detect

import "path/filepath"

// Match reports that a detector recognized a candidate directory.
type Match struct {
	DetectorID    string
	ArtifactPaths []string
}

// Detector is the capability set for one project ecosystem: a unique
// id, a display name, the files that signal its presence, the
// directories it considers build artifacts, an optional native clean
// command, and the predicates/enumerators governing both. Detects and
// Artifacts apply the "any detection file exists" / "existing artifact
// dirs" rules when DetectOverride / ArtifactsOverride are nil; a
// detector sets an override to express an irregular rule (cmake needs
// both CMakeLists.txt and a build/ directory, for instance).
type Detector struct {
	ID              string
	DisplayName     string
	DetectionFiles  []string
	ArtifactDirs    []string
	CleanCommand    string
	DetectOverride  func(dir string, fsys FileChecker) bool
	ArtifactsOverride func(dir string, fsys FileChecker) []string
}

// FileChecker abstracts filesystem existence checks so detectors are
// testable without touching disk.
type FileChecker interface {
	Exists(path string) bool
	IsDir(path string) bool
}

// Detects reports whether d recognizes dir as one of its projects.
func (d Detector) Detects(dir string, fsys FileChecker) bool {
	if d.DetectOverride != nil {
		return d.DetectOverride(dir, fsys)
	}
	for _, f := range d.DetectionFiles {
		if fsys.Exists(filepath.Join(dir, f)) {
			return true
		}
	}
	return false
}

// Artifacts lists the artifact paths that actually exist under dir.
func (d Detector) Artifacts(dir string, fsys FileChecker) []string {
	if d.ArtifactsOverride != nil {
		return d.ArtifactsOverride(dir, fsys)
	}
	var out []string
	for _, a := range d.ArtifactDirs {
		p := filepath.Join(dir, a)
		if fsys.IsDir(p) {
			out = append(out, p)
		}
	}
	return out
}
