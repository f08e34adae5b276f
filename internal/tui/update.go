package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model's message dispatch, routing key events
// through the mode-specific handler per §4.6's transition table.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case ModeSearch:
			m.updateSearch(msg)
		case ModeConfirm:
			m.updateConfirm(msg)
		case ModeHelp:
			m.updateHelp(msg)
		default:
			m.updateNormal(msg)
		}
	}
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup":
		m.moveCursor(-20)
	case "pgdown":
		m.moveCursor(20)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.flat) - 1
		m.clampCursor()
	case "right", "l", "enter":
		m.expandOrDescend()
	case "left", "h", "backspace":
		m.collapseOrAscend()
	case " ":
		m.toggleExpand()
	case "s":
		m.sortKey = m.sortKey.Next()
		if m.tree != nil {
			m.tree.Sort(m.sortKey)
		}
		m.rebuildFlat()
	case ".":
		m.showHidden = !m.showHidden
		m.rebuildFlat()
	case "r":
		m.statusMessage = "Scanning…"
		if err := m.rescan(context.Background()); err != nil {
			m.statusMessage = "Rescan failed: " + err.Error()
		} else {
			m.statusMessage = ""
		}
	case "/":
		m.mode = ModeSearch
		m.searchQuery = ""
		m.rebuildFlat()
	case "d":
		if m.selected() != nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmDelete
		}
	case "c":
		if m.selected() != nil {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClean
		}
	case "?":
		m.mode = ModeHelp
	case "q", "esc":
		m.quit = true
	}
}

func (m *Model) updateSearch(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = ModeNormal
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.searchQuery = ""
		m.rebuildFlat()
	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
		m.rebuildFlat()
	case tea.KeyRunes, tea.KeySpace:
		m.searchQuery += string(msg.Runes)
		m.rebuildFlat()
	}
}

func (m *Model) updateConfirm(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y":
		m.performConfirmedAction()
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
	case "n", "N", "esc":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
	}
}

func (m *Model) updateHelp(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?":
		m.mode = ModeNormal
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) expandOrDescend() {
	e := m.selected()
	if e == nil || !e.IsDir {
		return
	}
	if !m.expanded[e.Path] {
		m.expanded[e.Path] = true
		m.rebuildFlat()
		return
	}
	if len(e.Children) > 0 {
		if idx := m.indexOf(e.Children[0].Path); idx >= 0 {
			m.cursor = idx
		}
	}
}

func (m *Model) collapseOrAscend() {
	e := m.selected()
	if e == nil {
		return
	}
	if e.IsDir && m.expanded[e.Path] {
		m.expanded[e.Path] = false
		m.rebuildFlat()
		return
	}
	if e.Parent != nil {
		if idx := m.indexOf(e.Parent.Path); idx >= 0 {
			m.cursor = idx
		}
	}
}

func (m *Model) toggleExpand() {
	e := m.selected()
	if e == nil || !e.IsDir {
		return
	}
	m.expanded[e.Path] = !m.expanded[e.Path]
	m.rebuildFlat()
}

func (m *Model) indexOf(path string) int {
	for i, item := range m.flat {
		if item.entry.Path == path {
			return i
		}
	}
	return -1
}
