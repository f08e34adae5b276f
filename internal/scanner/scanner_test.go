package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rusty-sweeper/internal/disktree"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func childByName(e *disktree.Entry, name string) *disktree.Entry {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Scenario 1: tree totals.
func TestScanTreeTotals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 100)
	writeFile(t, filepath.Join(root, "b.txt"), 200)
	writeFile(t, filepath.Join(root, "s", "c.txt"), 50)

	s := NewParallelScanner()
	entry, err := s.Scan(context.Background(), root, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if entry.Size != 350 {
		t.Errorf("root.Size = %d, want 350", entry.Size)
	}
	if entry.FileCount != 3 {
		t.Errorf("root.FileCount = %d, want 3", entry.FileCount)
	}
	if entry.DirCount != 1 {
		t.Errorf("root.DirCount = %d, want 1", entry.DirCount)
	}

	sub := childByName(entry, "s")
	if sub == nil {
		t.Fatal("expected child \"s\" not found")
	}
	if sub.Size != 50 {
		t.Errorf("s.Size = %d, want 50", sub.Size)
	}
}

// Scenario 2: hidden filter.
func TestScanHiddenFilter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "visible.txt"), 10)
	writeFile(t, filepath.Join(root, ".hidden.txt"), 10)
	writeFile(t, filepath.Join(root, ".h", "nested.txt"), 10)

	s := NewParallelScanner()

	opts := DefaultOptions()
	opts.IncludeHidden = false
	entry, err := s.Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entry.Children) != 1 || entry.Children[0].Name != "visible.txt" {
		t.Errorf("hidden excluded: got %d children, want 1 (visible.txt)", len(entry.Children))
	}

	opts.IncludeHidden = true
	entry, err = s.Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entry.Children) != 3 {
		t.Errorf("hidden included: got %d children, want 3", len(entry.Children))
	}
}

func TestScanExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "keep.txt"), 10)
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "index.js"), 10)

	opts := DefaultOptions()
	opts.ExcludePatterns = []string{"node_modules"}

	s := NewParallelScanner()
	entry, err := s.Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entry.Children) != 1 || entry.Children[0].Name != "keep.txt" {
		t.Errorf("expected only keep.txt, got %d children", len(entry.Children))
	}
}

func TestScanMaxDepthStub(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "c.txt"), 10)

	opts := DefaultOptions()
	opts.MaxDepth = 1

	s := NewParallelScanner()
	entry, err := s.Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	a := entry.Children[0]
	if a.Name != "a" || !a.IsDir {
		t.Fatalf("expected dir 'a' as first child, got %+v", a)
	}
	if len(a.Children) != 0 {
		t.Errorf("directory at max depth should have no children, got %d", len(a.Children))
	}
}

func TestParallelAndSequentialAgree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 123)
	writeFile(t, filepath.Join(root, "dir1", "b.txt"), 456)
	writeFile(t, filepath.Join(root, "dir1", "dir2", "c.txt"), 789)
	writeFile(t, filepath.Join(root, "dir3", "d.txt"), 1)

	opts := DefaultOptions()

	p, err := NewParallelScanner().Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("parallel scan: %v", err)
	}
	s, err := NewSequentialScanner().Scan(context.Background(), root, opts, nil)
	if err != nil {
		t.Fatalf("sequential scan: %v", err)
	}

	if p.Size != s.Size || p.FileCount != s.FileCount || p.DirCount != s.DirCount {
		t.Fatalf("parallel and sequential trees disagree: size %d/%d files %d/%d dirs %d/%d",
			p.Size, s.Size, p.FileCount, s.FileCount, p.DirCount, s.DirCount)
	}
}

func TestScanPermissionErrorBecomesLeaf(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root: permission denial is not enforced")
	}

	root := t.TempDir()
	denied := filepath.Join(root, "denied")
	writeFile(t, filepath.Join(denied, "secret.txt"), 10)
	if err := os.Chmod(denied, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(denied, 0o755) })

	s := NewParallelScanner()
	entry, err := s.Scan(context.Background(), root, DefaultOptions(), nil)
	if err != nil {
		t.Fatalf("Scan should not abort on a per-entry error: %v", err)
	}

	found := childByName(entry, "denied")
	if found == nil {
		t.Fatal("expected \"denied\" entry to still appear in the tree")
	}
	if found.Error == "" {
		t.Error("expected denied directory to be an error leaf")
	}
}
