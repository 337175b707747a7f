package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres a popup over a greyed-out copy of the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styledPopup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	popupLines := strings.Split(styledPopup, "\n")
	top := (height - len(popupLines)) / 2
	if top < 0 {
		top = 0
	}

	// Whole rows are replaced; the popup row is centred with lipgloss.Place
	for i, line := range popupLines {
		row := top + i
		if row >= len(base) {
			break
		}
		base[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(line)
	}
	return strings.Join(lines, "\n")
}

// stripANSI returns s without colour codes
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
