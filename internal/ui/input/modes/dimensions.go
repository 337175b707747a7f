package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

// DimensionsMode edits width, height and module width. Digits and decimal
// separators are left unconsumed so the handler feeds them to the focused input.
type DimensionsMode struct {
	stageMode
}

func NewDimensionsMode() *DimensionsMode {
	return &DimensionsMode{stageMode{name: "dimensions"}}
}

func (m *DimensionsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		next := types.FieldHeight
		if ctx.FocusedField() == types.FieldHeight {
			next = types.FieldWidth
		}
		return []types.Action{types.FocusFieldAction{Field: next}}, true
	case tea.KeyEnter:
		return []types.Action{types.AdvanceAction{}}, true
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight:
		return nil, false
	}

	switch msg.String() {
	case "u":
		return []types.Action{types.ToggleUnitAction{Field: ctx.FocusedField()}}, true
	case "[":
		return []types.Action{types.CycleModuleWidthAction{Delta: -1}}, true
	case "]":
		return []types.Action{types.CycleModuleWidthAction{Delta: 1}}, true
	}

	if isNumeric(msg) {
		return nil, false
	}
	if actions, ok := m.handleCommon(msg, ctx); ok {
		return actions, true
	}
	// swallow everything else so letters never reach the inputs
	return nil, true
}

func isNumeric(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return false
		}
	}
	return true
}
