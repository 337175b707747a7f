package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

// StylesMode browses categories on the left and their panels on the right
type StylesMode struct {
	stageMode
}

func NewStylesMode() *StylesMode {
	return &StylesMode{stageMode{name: "styles"}}
}

func (m *StylesMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		return []types.Action{types.SwitchPaneAction{}}, true
	case " ", "enter":
		return []types.Action{types.ToggleItemAction{}}, true
	case "i":
		return []types.Action{types.ToggleStockFilterAction{}}, true
	}
	return m.handleCommon(msg, ctx)
}
