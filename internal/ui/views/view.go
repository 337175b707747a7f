package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modwall/internal/catalog"
	"modwall/internal/domain"
	"modwall/internal/gating"
	"modwall/internal/store"
	inputtypes "modwall/internal/ui/input/types"
)

// LowStockThreshold is the stock level at or below which a panel is flagged
const LowStockThreshold = 5

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Brand  string

	Open        bool
	Stage       domain.Stage
	ConfirmOpen bool
	Selection   store.State
	Verdict     gating.Verdict
	Warnings    []gating.Warning

	// Dimensions
	WidthInput   string // rendered text input
	HeightInput  string
	FocusedField inputtypes.Field

	// Lists
	GamingOptions  []domain.GamingOption
	GamingCursor   int
	Devices        []domain.Device
	DeviceCursor   int
	Categories     []catalog.Entry
	CategoryCursor int
	Panels         []domain.Panel
	PanelCursor    int
	Pane           inputtypes.Pane
	InStockOnly    bool
	ShowStock      bool

	// Summary
	SummaryTitle string
	FinishName   string
	Submitting   bool
	Spinner      string
	LastFailure  error

	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string
	Footer        string // rendered key help for the current mode
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	brand := state.Brand
	if brand == "" {
		brand = "modwall"
	}
	logo := r.styles.Title.Render(brand)

	// Right side of the title line
	right := ""
	if state.Submitting {
		right = r.styles.StatusLoading.Render(fmt.Sprintf("%s Submitting", state.Spinner))
	}
	content.WriteString(r.joinEdges(logo, right, state.Width))
	content.WriteString("\n")

	if !state.Open {
		content.WriteString(r.renderClosed(state))
	} else {
		content.WriteString(r.renderProgress(state))
		content.WriteString("\n\n")
		content.WriteString(r.renderStage(state))
		if warnings := r.renderWarnings(state); warnings != "" {
			content.WriteString("\n\n")
			content.WriteString(warnings)
		}
	}

	// Status and footer are pushed to the bottom
	var bottom []string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		bottom = append(bottom, style.Render(state.StatusMessage))
	}
	if !state.ShowHelp && state.Footer != "" {
		bottom = append(bottom, r.styles.Help.Render(state.Footer))
	}

	if len(bottom) > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}
		paddingNeeded := availableLines - currentLines - len(bottom)
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(strings.Join(bottom, "\n"))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ConfirmOpen {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderConfirm(state), state.Height, state.Width, r.styles.ConfirmBox)
	}

	if state.ShowHelp {
		return r.popupRender.RenderPopupOverlay(finalContent, state.HelpContent, state.Height, state.Width, r.styles.PopupBox)
	}

	return finalContent
}

// joinEdges puts left and right on one line, right-aligned to width
func (r *Renderer) joinEdges(left, right string, width int) string {
	if right == "" {
		return left
	}
	termWidth := width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padding := termWidth - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return left + strings.Repeat(" ", padding) + right
}

// renderProgress renders the stage breadcrumb, e.g. "✓ Dimensions › ● Accessories › Gaming"
func (r *Renderer) renderProgress(state ViewState) string {
	parts := make([]string, 0, len(domain.Stages))
	for _, stage := range domain.Stages {
		switch {
		case stage < state.Stage:
			parts = append(parts, r.styles.StageDone.Render("✓ "+stage.String()))
		case stage == state.Stage:
			parts = append(parts, r.styles.StageCurrent.Render("● "+stage.String()))
		default:
			parts = append(parts, r.styles.Stage.Render(stage.String()))
		}
	}
	step := r.styles.Dim.Render(fmt.Sprintf("Step %d of %d", int(state.Stage)+1, len(domain.Stages)))
	return strings.Join(parts, r.styles.Dim.Render(" › ")) + "  " + step
}

func (r *Renderer) renderWarnings(state ViewState) string {
	var lines []string
	for _, w := range state.Warnings {
		lines = append(lines, r.styles.StatusWarning.Render("⚠ "+w.Message))
	}
	if state.Verdict.Kind == gating.BlockedExplained && len(lines) == 0 {
		lines = append(lines, r.styles.StatusWarning.Render("⚠ "+state.Verdict.Message))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderClosed(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Value.Render("Design a modular wall for your room."))
	b.WriteString("\n\n")
	if state.LastFailure == nil && state.StatusMessage == "" {
		b.WriteString(r.styles.Dim.Render("Press enter to open the configurator."))
	} else {
		b.WriteString(r.styles.Dim.Render("Press enter to start a new configuration."))
	}
	return b.String()
}

func (r *Renderer) renderConfirm(state ViewState) string {
	msg := state.Verdict.Message
	if msg == "" {
		msg = "Nothing selected. Continue anyway?"
	}
	return r.styles.Confirm.Render(msg) + "\n\n" +
		r.styles.Highlight.Render("y") + r.styles.Dim.Render(" continue   ") +
		r.styles.Highlight.Render("n") + r.styles.Dim.Render(" go back")
}
