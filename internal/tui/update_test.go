package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNormalModeMovement(t *testing.T) {
	m := newTestModel()
	start := m.cursor
	m.updateNormal(key("down"))
	if m.cursor != start+1 {
		t.Fatalf("cursor = %d, want %d", m.cursor, start+1)
	}
	m.updateNormal(key("up"))
	if m.cursor != start {
		t.Fatalf("cursor = %d, want %d", m.cursor, start)
	}
}

func TestSlashEntersSearchMode(t *testing.T) {
	m := newTestModel()
	m.updateNormal(key("/"))
	if m.mode != ModeSearch {
		t.Fatalf("mode = %v, want ModeSearch", m.mode)
	}
}

func TestSearchModeAppendsAndBackspaces(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSearch
	m.updateSearch(key("m"))
	m.updateSearch(key("a"))
	if m.searchQuery != "ma" {
		t.Fatalf("searchQuery = %q, want %q", m.searchQuery, "ma")
	}
	m.updateSearch(key("backspace"))
	if m.searchQuery != "m" {
		t.Fatalf("searchQuery = %q, want %q", m.searchQuery, "m")
	}
}

func TestSearchEscClearsQueryAndReturnsToNormal(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSearch
	m.searchQuery = "main"
	m.updateSearch(key("esc"))
	if m.mode != ModeNormal || m.searchQuery != "" {
		t.Fatalf("mode=%v query=%q, want Normal/empty", m.mode, m.searchQuery)
	}
}

func TestSearchEnterKeepsQueryReturnsToNormal(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSearch
	m.searchQuery = "main"
	m.updateSearch(key("enter"))
	if m.mode != ModeNormal || m.searchQuery != "main" {
		t.Fatalf("mode=%v query=%q, want Normal/main", m.mode, m.searchQuery)
	}
}

func TestDKeyEntersConfirmDeleteWhenSelectionExists(t *testing.T) {
	m := newTestModel()
	m.updateNormal(key("d"))
	if m.mode != ModeConfirm || m.confirmAction != ConfirmDelete {
		t.Fatalf("mode=%v action=%v, want Confirm/Delete", m.mode, m.confirmAction)
	}
}

func TestConfirmNoReturnsToNormalWithoutAction(t *testing.T) {
	m := newTestModel()
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDelete
	m.updateConfirm(key("n"))
	if m.mode != ModeNormal || m.confirmAction != ConfirmNone {
		t.Fatalf("mode=%v action=%v, want Normal/None", m.mode, m.confirmAction)
	}
}

func TestHelpModeAnyCloseKeyReturnsToNormal(t *testing.T) {
	m := newTestModel()
	m.mode = ModeHelp
	m.updateHelp(key("?"))
	if m.mode != ModeNormal {
		t.Fatalf("mode = %v, want ModeNormal", m.mode)
	}
}

func TestSortCyclesThroughAllThreeKeys(t *testing.T) {
	m := newTestModel()
	first := m.sortKey
	m.updateNormal(key("s"))
	second := m.sortKey
	m.updateNormal(key("s"))
	third := m.sortKey
	m.updateNormal(key("s"))
	fourth := m.sortKey

	if first == second || second == third {
		t.Fatal("sort key should change on each 's' press")
	}
	if fourth != first {
		t.Fatal("sort key should cycle back to the original after three presses")
	}
}

func TestDotTogglesShowHidden(t *testing.T) {
	m := newTestModel()
	if m.showHidden {
		t.Fatal("showHidden should start false")
	}
	m.updateNormal(key("."))
	if !m.showHidden {
		t.Fatal("showHidden should be true after one '.' press")
	}
}

func TestQuitSetsFlag(t *testing.T) {
	m := newTestModel()
	m.updateNormal(key("q"))
	if !m.quit {
		t.Fatal("quit flag should be set after 'q'")
	}
}
