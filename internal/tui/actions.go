package tui

import (
	"context"
	"fmt"

	"rusty-sweeper/internal/clean"
	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/disktree"
	"rusty-sweeper/internal/fsutil"
	"rusty-sweeper/internal/project"
)

func (m *Model) performConfirmedAction() {
	e := m.selected()
	if e == nil {
		return
	}
	switch m.confirmAction {
	case ConfirmDelete:
		m.performDelete(e)
	case ConfirmClean:
		m.performClean(e)
	}
}

// performDelete recursively removes the selected path and triggers a
// rescan, per §4.6.
func (m *Model) performDelete(e *disktree.Entry) {
	if err := fsutil.RemoveAll(e.Path); err != nil {
		m.statusMessage = fmt.Sprintf("Delete failed: %v", err)
		return
	}
	m.statusMessage = "Deleted " + e.Path
	if err := m.rescan(context.Background()); err != nil {
		m.statusMessage = "Rescan failed: " + err.Error()
	}
}

// performClean looks up a detector match at the selected path; if
// found, runs the executor with its clean command, otherwise reports
// the selection is not a recognized project.
func (m *Model) performClean(e *disktree.Entry) {
	if m.registry == nil || m.executor == nil {
		m.statusMessage = "Not a recognized project"
		return
	}

	fsys := detect.OSFileChecker{}
	for _, d := range m.registry.All() {
		if !d.Detects(e.Path, fsys) {
			continue
		}
		proj := project.DetectedProject{
			Path:          e.Path,
			DetectorID:    d.ID,
			DisplayName:   d.DisplayName,
			ArtifactPaths: d.Artifacts(e.Path, fsys),
			CleanCommand:  d.CleanCommand,
		}
		result := m.executor.Clean(context.Background(), proj, clean.Options{NativeCommandsEnabled: true})
		m.statusMessage = fmt.Sprintf("%s: %s", d.DisplayName, result.Outcome)
		if err := m.rescan(context.Background()); err != nil {
			m.statusMessage = "Rescan failed: " + err.Error()
		}
		return
	}
	m.statusMessage = "Not a recognized project"
}
