package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"modwall/internal/domain"
	inputtypes "modwall/internal/ui/input/types"
)

// renderStage renders the body of the current stage
func (r *Renderer) renderStage(state ViewState) string {
	switch state.Stage {
	case domain.StageDimensions:
		return r.renderDimensions(state)
	case domain.StageAccessories:
		return r.renderAccessories(state)
	case domain.StageGaming:
		return r.renderGaming(state)
	case domain.StageDevices:
		return r.renderDevices(state)
	case domain.StageStyles:
		return r.renderStyles(state)
	case domain.StageSummary:
		return r.renderSummary(state)
	default:
		return ""
	}
}

func (r *Renderer) row(label, value string) string {
	return r.styles.Label.Render(label) + value
}

func (r *Renderer) renderDimensions(state ViewState) string {
	s := state.Selection

	input := func(field inputtypes.Field, text string, unit domain.Unit) string {
		style := r.styles.Input
		if state.FocusedField == field {
			style = r.styles.InputFocused
		}
		box := style.Render(text)
		return lipgloss.JoinHorizontal(lipgloss.Center, box, " "+r.styles.Value.Render(string(unit)))
	}

	label := func(text string) string {
		// align the label with the middle row of the bordered input
		return r.styles.Label.Render("\n" + text)
	}

	width := lipgloss.JoinHorizontal(lipgloss.Top, label("Wall width"), input(inputtypes.FieldWidth, state.WidthInput, s.Width.Unit))
	height := lipgloss.JoinHorizontal(lipgloss.Top, label("Wall height"), input(inputtypes.FieldHeight, state.HeightInput, s.Height.Unit))

	var modules []string
	for _, mm := range domain.ModuleWidthsMM {
		text := fmt.Sprintf("%d", mm)
		if mm == s.ModuleWidthMM {
			modules = append(modules, r.styles.Highlight.Render("["+text+"]"))
		} else {
			modules = append(modules, r.styles.Dim.Render(" "+text+" "))
		}
	}

	lines := []string{
		width,
		height,
		r.row("Module width", strings.Join(modules, " ")+r.styles.Dim.Render(" mm")),
		"",
	}

	m := s.Metrics
	if m.WidthMM > 0 {
		lines = append(lines, r.row("Usable width", r.styles.Value.Render(fmt.Sprintf("%d mm", m.UsableWidthMM))))
	}
	lines = append(lines, r.row("Height", r.styles.Value.Render(fmt.Sprintf("%d mm", m.HeightMM))))
	if m.SlotCount > 0 {
		lines = append(lines, r.row("Modules", r.styles.Value.Render(fmt.Sprintf("%d", m.SlotCount))))
	} else if s.ModuleWidthMM == 0 {
		lines = append(lines, r.styles.Dim.Render("Pick a module width to see how many modules fit."))
	} else {
		lines = append(lines, r.styles.Dim.Render("Enter a wall width to continue."))
	}
	return strings.Join(lines, "\n")
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (r *Renderer) renderAccessories(state ViewState) string {
	a := state.Selection.Accessories
	shelves := fmt.Sprintf("%d / %d", a.ShelvingQty, domain.ShelvingMaxQty)
	return strings.Join([]string{
		r.row("TV", check(a.TV)+r.styles.Dim.Render("  t")),
		r.row("Fireplace", check(a.Fireplace)+r.styles.Dim.Render("  f")),
		r.row("Soundbar", check(a.Soundbar)+r.styles.Dim.Render("  s")),
		r.row("Shelving", r.styles.Value.Render(shelves)+r.styles.Dim.Render("  +/-")),
	}, "\n")
}

func (r *Renderer) renderGaming(state ViewState) string {
	g := state.Selection.Gaming

	var modes []string
	for i, mode := range []domain.GamingMode{domain.GamingNone, domain.GamingSingle, domain.GamingDual} {
		text := fmt.Sprintf("%d %s", i, mode)
		if g.Mode == mode {
			modes = append(modes, r.styles.Highlight.Render("("+text+")"))
		} else {
			modes = append(modes, r.styles.Dim.Render(" "+text+" "))
		}
	}

	lines := []string{r.row("Screens", strings.Join(modes, "  ")), ""}
	if g.Mode == domain.GamingNone {
		lines = append(lines, r.styles.Dim.Render("Choose a screen layout to add gaming options."))
	}
	for i, opt := range state.GamingOptions {
		line := fmt.Sprintf("%s %s", check(g.Options.Has(opt.ID)), opt.Name)
		lines = append(lines, r.cursorLine(line, i == state.GamingCursor))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderDevices(state ViewState) string {
	if len(state.Devices) == 0 {
		return r.styles.Dim.Render("No smart devices available.")
	}
	lines := make([]string, 0, len(state.Devices))
	for i, d := range state.Devices {
		line := fmt.Sprintf("%s %s", check(state.Selection.Devices.Has(d.ID)), d.Name)
		if d.Description != "" {
			line += r.styles.Dim.Render("  " + d.Description)
		}
		lines = append(lines, r.cursorLine(line, i == state.DeviceCursor))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderStyles(state ViewState) string {
	s := state.Selection

	var cats []string
	for i, c := range state.Categories {
		mark := "  "
		if c.ID == s.StyleCategory {
			mark = "● "
		}
		cats = append(cats, r.cursorLine(mark+c.Label, state.Pane == inputtypes.PaneCategories && i == state.CategoryCursor))
	}
	if len(cats) == 0 {
		cats = append(cats, r.styles.Dim.Render("No styles available"))
	}

	var panels []string
	switch {
	case s.StyleCategory == "":
		panels = append(panels, r.styles.Dim.Render("Pick a style first"))
	case len(state.Panels) == 0:
		panels = append(panels, r.styles.Dim.Render("No panels to show"))
	}
	for i, p := range state.Panels {
		mark := "  "
		if p.ID == s.Finish {
			mark = "● "
		}
		line := mark + p.Name
		if state.ShowStock {
			line += " " + r.stockBadge(p.StockLevel)
		}
		panels = append(panels, r.cursorLine(line, state.Pane == inputtypes.PanePanels && i == state.PanelCursor))
	}

	left, right := r.styles.PaneInactive, r.styles.PaneInactive
	if state.Pane == inputtypes.PaneCategories {
		left = r.styles.PaneActive
	} else {
		right = r.styles.PaneActive
	}

	title := "Panels"
	if state.InStockOnly {
		title += " (in stock)"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(r.styles.Confirm.Render("Styles")+"\n"+strings.Join(cats, "\n")),
		" ",
		right.Render(r.styles.Confirm.Render(title)+"\n"+strings.Join(panels, "\n")),
	)
}

func (r *Renderer) stockBadge(level int) string {
	style := r.styles.StockStyle(level)
	switch {
	case level <= 0:
		return style.Render("out of stock")
	case level <= LowStockThreshold:
		return style.Render(fmt.Sprintf("only %d left", level))
	default:
		return style.Render("in stock")
	}
}

func (r *Renderer) renderSummary(state ViewState) string {
	s := state.Selection
	m := s.Metrics

	var lines []string
	if state.SummaryTitle != "" {
		lines = append(lines, r.styles.Confirm.Render(state.SummaryTitle), "")
	}
	lines = append(lines,
		r.row("Wall", r.styles.Value.Render(fmt.Sprintf("%d × %d mm", m.WidthMM, m.HeightMM))),
		r.row("Modules", r.styles.Value.Render(fmt.Sprintf("%d × %d mm", m.SlotCount, s.ModuleWidthMM))),
		r.row("Accessories", r.styles.Value.Render(accessoryList(s.Accessories))),
		r.row("Gaming", r.styles.Value.Render(string(s.Gaming.Mode))),
		r.row("Devices", r.styles.Value.Render(fmt.Sprintf("%d", len(s.Devices)))),
		r.row("Finish", r.styles.Value.Render(state.FinishName)),
	)

	lines = append(lines, "")
	switch {
	case state.Submitting:
		lines = append(lines, r.styles.StatusLoading.Render(state.Spinner+" Sending your configuration..."))
	case state.LastFailure != nil:
		lines = append(lines, r.styles.StatusError.Render(fmt.Sprintf("Submission failed: %v", state.LastFailure)))
		lines = append(lines, r.styles.Dim.Render("Press enter to try again."))
	default:
		lines = append(lines, r.styles.Dim.Render("Press enter to submit."))
	}
	return strings.Join(lines, "\n")
}

func accessoryList(a domain.Accessories) string {
	var parts []string
	if a.TV {
		parts = append(parts, "TV")
	}
	if a.Fireplace {
		parts = append(parts, "fireplace")
	}
	if a.Soundbar {
		parts = append(parts, "soundbar")
	}
	if a.ShelvingQty > 0 {
		parts = append(parts, fmt.Sprintf("%d shelves", a.ShelvingQty))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) cursorLine(line string, selected bool) string {
	if selected {
		return r.styles.SelectionBg.Render("› " + line)
	}
	return "  " + line
}
