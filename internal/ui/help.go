package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Walking the stages", []helpEntry{
		{"n, enter", "Next stage"},
		{"b", "Previous stage"},
		{"x", "Back to dimensions, keeping choices"},
		{"y / n", "Answer a skip confirmation"},
	}},
	{"Dimensions", []helpEntry{
		{"0-9 . ,", "Type width or height"},
		{"tab", "Switch between width and height"},
		{"u", "Toggle mm / m for the focused field"},
		{"[ / ]", "Narrower / wider modules"},
	}},
	{"Accessories", []helpEntry{
		{"t / f / s", "TV, fireplace, soundbar"},
		{"+ / -", "More / fewer shelves"},
	}},
	{"Gaming and devices", []helpEntry{
		{"0 / 1 / 2", "No screens, single, dual"},
		{"↑/↓, j/k", "Move the cursor"},
		{"space", "Toggle the item under the cursor"},
	}},
	{"Styles", []helpEntry{
		{"tab, h/l", "Switch between categories and panels"},
		{"enter", "Pick category or panel"},
		{"i", "Show in-stock panels only"},
	}},
	{"Summary", []helpEntry{
		{"enter", "Submit configuration"},
		{"p", "Inspect the payload in a pager"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q", "Quit"},
		{"ctrl+c", "Quit immediately"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors, for the popup and the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Modwall Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(e.keys), descStyle.Render(e.desc)))
		}
		if i < len(helpSections)-1 {
			help.WriteString("\n")
		}
	}

	return strings.TrimRight(help.String(), "\n")
}

// PagerOps runs the ov pager on top of the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using ov pager
func (h *PagerOps) ShowInPager(content string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
