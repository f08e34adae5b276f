// Package styles provides the Nord-themed visual styling for the
// interactive tree browser.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Nord Color Palette
// https://www.nordtheme.com/docs/colors-and-palettes
var (
	Nord0  = lipgloss.Color("#2E3440")
	Nord1  = lipgloss.Color("#3B4252")
	Nord2  = lipgloss.Color("#434C5E")
	Nord3  = lipgloss.Color("#4C566A")
	Nord4  = lipgloss.Color("#D8DEE9")
	Nord6  = lipgloss.Color("#ECEFF4")
	Nord8  = lipgloss.Color("#88C0D0")
	Nord9  = lipgloss.Color("#81A1C1")
	Nord10 = lipgloss.Color("#5E81AC")
	Nord11 = lipgloss.Color("#BF616A")
	Nord13 = lipgloss.Color("#EBCB8B")
	Nord14 = lipgloss.Color("#A3BE8C")

	Orange = lipgloss.Color("#FFA500") // RGB(255,165,0) per size-bar grading rule

	PrimaryColor = Nord8
	MutedColor   = Nord3
	BorderColor  = Nord2
	TextColor    = Nord4
	ErrorColor   = Nord11
	WarningColor = Nord13
	SuccessColor = Nord14

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)

	SelectedStyle = lipgloss.NewStyle().Background(Nord10).Foreground(Nord6).Bold(true)

	DirStyle  = lipgloss.NewStyle().Foreground(Nord9)
	FileStyle = lipgloss.NewStyle().Foreground(TextColor)

	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	HelpStyle    = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1)

	GreenText  = lipgloss.NewStyle().Foreground(SuccessColor)
	YellowText = lipgloss.NewStyle().Foreground(WarningColor)
	OrangeText = lipgloss.NewStyle().Foreground(Orange)
	RedText    = lipgloss.NewStyle().Foreground(ErrorColor)
)

// SizeRatioStyle grades a style by entry.size/max_size per §4.6:
// <0.25 green, <0.5 yellow, <0.75 orange, else red.
func SizeRatioStyle(ratio float64) lipgloss.Style {
	switch {
	case ratio < 0.25:
		return GreenText
	case ratio < 0.5:
		return YellowText
	case ratio < 0.75:
		return OrangeText
	default:
		return RedText
	}
}

// RenderSizeBar draws a 10-char bar of full and light-shade blocks,
// colored by the same ratio grading as the size text.
func RenderSizeBar(ratio float64) string {
	const barWidth = 10
	filled := int(barWidth * ratio)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	style := SizeRatioStyle(ratio)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return style.Render(bar)
}

func RenderHeader(rootPath, totalSize, mountUsage string) string {
	return TitleStyle.Render(rootPath) + "\n" +
		lipgloss.NewStyle().Foreground(TextColor).Render("Total: "+totalSize) + "\n" +
		lipgloss.NewStyle().Foreground(TextColor).Render("Disk: "+mountUsage)
}

func RenderFooter(shortcuts []string) string {
	parts := make([]string, 0, len(shortcuts))
	for i, s := range shortcuts {
		if i%2 == 0 {
			parts = append(parts, lipgloss.NewStyle().Foreground(Nord9).Render(s))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(Nord8).Render(s))
		}
	}
	return strings.Join(parts, " │ ")
}

func RenderModal(content string, width, height int) string {
	return BorderStyle.Width(width).Height(height).Render(content)
}

func RenderError(message string) string {
	return ErrorStyle.Render("✖ " + message)
}

func RenderSuccess(message string) string {
	return SuccessStyle.Render("✔ " + message)
}
