package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

type AccessoriesMode struct {
	stageMode
}

func NewAccessoriesMode() *AccessoriesMode {
	return &AccessoriesMode{stageMode{name: "accessories"}}
}

func (m *AccessoriesMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "t":
		return []types.Action{types.ToggleAccessoryAction{Name: "tv"}}, true
	case "f":
		return []types.Action{types.ToggleAccessoryAction{Name: "fireplace"}}, true
	case "s":
		return []types.Action{types.ToggleAccessoryAction{Name: "soundbar"}}, true
	case "+", "=":
		return []types.Action{types.ShelvingAction{Delta: 1}}, true
	case "-":
		return []types.Action{types.ShelvingAction{Delta: -1}}, true
	case "enter":
		return []types.Action{types.AdvanceAction{}}, true
	}
	return m.handleCommon(msg, ctx)
}
