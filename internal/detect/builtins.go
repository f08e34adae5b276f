package detect

import "path/filepath"

// builtinDetectors returns the nine built-in project-type detectors in
// the order listed by the spec's detector table.
func builtinDetectors() []Detector {
	return []Detector{
		{
			ID:             "cargo",
			DisplayName:    "Cargo (Rust)",
			DetectionFiles: []string{"Cargo.toml"},
			ArtifactDirs:   []string{"target"},
			CleanCommand:   "cargo clean",
		},
		{
			ID:             "gradle",
			DisplayName:    "Gradle",
			DetectionFiles: []string{"build.gradle", "build.gradle.kts", "gradlew"},
			ArtifactDirs:   []string{"build", ".gradle", "app/build"},
			CleanCommand:   "./gradlew clean",
		},
		{
			ID:             "maven",
			DisplayName:    "Maven",
			DetectionFiles: []string{"pom.xml"},
			ArtifactDirs:   []string{"target"},
			CleanCommand:   "mvn clean",
		},
		{
			ID:             "npm",
			DisplayName:    "npm/Node.js",
			DetectionFiles: []string{"package.json"},
			ArtifactDirs:   []string{"node_modules"},
		},
		{
			ID:             "go",
			DisplayName:    "Go",
			DetectionFiles: []string{"go.mod"},
			ArtifactDirs:   nil,
			CleanCommand:   "go clean -cache",
		},
		{
			ID:           "cmake",
			DisplayName:  "CMake",
			ArtifactDirs: []string{"build"},
			DetectOverride: func(dir string, fsys FileChecker) bool {
				return fsys.Exists(filepath.Join(dir, "CMakeLists.txt")) &&
					fsys.IsDir(filepath.Join(dir, "build"))
			},
		},
		{
			ID:             "python",
			DisplayName:    "Python",
			DetectionFiles: []string{"venv", ".venv"},
			ArtifactDirs:   []string{"venv", ".venv", "__pycache__"},
		},
		{
			ID:             "bazel",
			DisplayName:    "Bazel",
			DetectionFiles: []string{"WORKSPACE", "WORKSPACE.bazel"},
			ArtifactDirs:   nil,
			CleanCommand:   "bazel clean --expunge",
		},
		{
			ID:           "dotnet",
			DisplayName:  ".NET",
			ArtifactDirs: []string{"bin", "obj"},
			CleanCommand: "dotnet clean",
			DetectOverride: func(dir string, fsys FileChecker) bool {
				matches, _ := filepath.Glob(filepath.Join(dir, "*.csproj"))
				if len(matches) > 0 {
					return true
				}
				matches, _ = filepath.Glob(filepath.Join(dir, "*.sln"))
				return len(matches) > 0
			},
		},
	}
}
