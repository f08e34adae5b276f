// Package tui implements the interactive disk-tree browser: a
// bubbletea program that flattens a scanned disktree.Entry into a
// navigable list, supports search/confirm/help overlays, and drives
// delete/clean actions directly from the selection.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rusty-sweeper/internal/clean"
	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/disktree"
	"rusty-sweeper/internal/diskstatus"
	"rusty-sweeper/internal/scanner"
)

// Mode is the TUI's small state machine per §4.6.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeConfirm
	ModeHelp
)

// ConfirmAction names the pending action a Confirm overlay will run.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmDelete
	ConfirmClean
)

// flatItem is one row of the flattened, currently-visible list.
type flatItem struct {
	entry  *disktree.Entry
	depth  int
	isLast bool
}

// Model is the bubbletea model for the tree browser.
type Model struct {
	rootPath string
	tree     *disktree.Entry
	flat     []flatItem
	cursor   int

	expanded    map[string]bool
	showHidden  bool
	searchQuery string
	sortKey     disktree.SortKey

	mode          Mode
	confirmAction ConfirmAction
	statusMessage string
	quit          bool

	width  int
	height int

	mountStatus diskstatus.Status

	registry *detect.Registry
	executor *clean.Executor
	scanOpts scanner.Options
}

// New builds a Model rooted at rootPath with an already-scanned tree.
func New(rootPath string, tree *disktree.Entry, registry *detect.Registry, executor *clean.Executor, opts scanner.Options) Model {
	m := Model{
		rootPath: rootPath,
		tree:     tree,
		expanded: map[string]bool{rootPath: true},
		sortKey:  disktree.SortBySize,
		registry: registry,
		executor: executor,
		scanOpts: opts,
	}
	if tree != nil {
		tree.Sort(m.sortKey)
	}
	m.rebuildFlat()
	if status, err := diskstatus.Check(rootPath); err == nil {
		m.mountStatus = status
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) selected() *disktree.Entry {
	if m.cursor < 0 || m.cursor >= len(m.flat) {
		return nil
	}
	return m.flat[m.cursor].entry
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) rescan(ctx context.Context) error {
	still := make(map[string]bool, len(m.expanded))
	for p := range m.expanded {
		still[p] = true
	}

	sc := scanner.NewParallelScanner()
	tree, err := sc.Scan(ctx, m.rootPath, m.scanOpts, nil)
	if err != nil {
		return err
	}
	tree.Sort(m.sortKey)
	m.tree = tree

	m.expanded = make(map[string]bool)
	var prune func(e *disktree.Entry)
	prune = func(e *disktree.Entry) {
		if still[e.Path] {
			m.expanded[e.Path] = true
		}
		for _, c := range e.Children {
			prune(c)
		}
	}
	prune(tree)
	m.expanded[m.rootPath] = true

	if status, err := diskstatus.Check(m.rootPath); err == nil {
		m.mountStatus = status
	}

	m.rebuildFlat()
	return nil
}
