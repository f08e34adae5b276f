package detect

import "os"

// OSFileChecker implements FileChecker against the real filesystem.
type OSFileChecker struct{}

func (OSFileChecker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFileChecker) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
