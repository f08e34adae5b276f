package tui

import (
	"fmt"
	"strings"

	"rusty-sweeper/internal/detect"
	"rusty-sweeper/internal/disktree"
	"rusty-sweeper/internal/sizefmt"
	"rusty-sweeper/internal/tui/styles"
)

// View implements tea.Model. Rendering is three vertical regions
// (header/main/footer) plus mode overlays, per §4.6.
func (m Model) View() string {
	header := m.renderHeader()
	footer := m.renderFooter()

	mainHeight := m.height - 5
	if mainHeight < 1 {
		mainHeight = 1
	}
	main := m.renderList(mainHeight)

	view := header + "\n" + main + "\n" + footer

	switch m.mode {
	case ModeSearch:
		view = overlaySearch(view, m.searchQuery)
	case ModeConfirm:
		view = overlayConfirm(view, m.confirmAction, m.selected())
	case ModeHelp:
		view = overlayHelp(view)
	}
	return view
}

func (m Model) renderHeader() string {
	total := ""
	if m.tree != nil {
		total = sizefmt.FormatSize(m.tree.Size)
	}
	usage := fmt.Sprintf("%s: %.0f%% used", m.mountStatus.MountPoint, m.mountStatus.Percent)
	return styles.RenderHeader(m.rootPath, total, usage)
}

func (m Model) renderFooter() string {
	if m.statusMessage != "" {
		return m.statusMessage + "\n"
	}
	switch m.mode {
	case ModeSearch:
		return styles.RenderFooter([]string{"Enter: keep", "Esc: clear"})
	default:
		return styles.RenderFooter([]string{
			"↑↓/jk move", "←→/hl expand", "space toggle",
			"/ search", "d delete", "c clean", "s sort", ". hidden", "r rescan", "? help", "q quit",
		})
	}
}

func (m Model) renderList(height int) string {
	maxSize := int64(1)
	if m.tree != nil && m.tree.Size > 0 {
		maxSize = m.tree.Size
	}

	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.flat) {
		end = len(m.flat)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := m.flat[i]
		line := m.renderItem(item, maxSize)
		if i == m.cursor {
			line = styles.SelectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderItem(item flatItem, maxSize int64) string {
	e := item.entry
	indent := strings.Repeat("  ", item.depth)

	icon := "📄"
	if e.IsDir {
		icon = "📁"
		if m.expanded[e.Path] {
			icon = "📂"
		}
	}

	badge := "    "
	if e.IsDir && m.registry != nil {
		for _, d := range m.registry.All() {
			if d.Detects(e.Path, detect.OSFileChecker{}) {
				badge = "[P] "
				break
			}
		}
	}

	name := e.Name
	const maxNameLen = 40
	if len(name) > maxNameLen {
		name = name[:maxNameLen-1] + "…"
	}
	if e.IsDir {
		name = styles.DirStyle.Render(name)
	} else {
		name = styles.FileStyle.Render(name)
	}

	ratio := float64(e.Size) / float64(maxSize)
	bar := styles.RenderSizeBar(ratio)
	sizeText := styles.SizeRatioStyle(ratio).Render(sizefmt.FormatSize(e.Size))

	return fmt.Sprintf("%s%s %s%s  %s %s", indent, icon, badge, name, bar, sizeText)
}

func overlaySearch(base, query string) string {
	box := styles.RenderModal("/"+query, 30, 3)
	return base + "\n" + box
}

func overlayConfirm(base string, action ConfirmAction, e *disktree.Entry) string {
	if e == nil {
		return base
	}
	verb := "Delete"
	if action == ConfirmClean {
		verb = "Clean"
	}
	content := fmt.Sprintf("%s?\n\n%s\n%s\n\n[y]es  [n]o", verb, e.Path, sizefmt.FormatSize(e.Size))
	box := styles.RenderModal(content, 50, 7)
	return base + "\n" + box
}

func overlayHelp(base string) string {
	content := strings.Join([]string{
		"Keybindings",
		"",
		"↑/k ↓/j    move",
		"PgUp/PgDn  page",
		"Home/g End/G  jump",
		"→/l/Enter  expand / descend",
		"←/h/Bksp   collapse / ascend",
		"Space      toggle expand",
		"/          search",
		"d          delete",
		"c          clean",
		"s          cycle sort",
		".          toggle hidden",
		"r          rescan",
		"q/Esc      quit",
		"",
		"Press Esc, q or ? to close",
	}, "\n")
	box := styles.RenderModal(content, 50, 18)
	return base + "\n" + box
}
