package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

type DevicesMode struct {
	stageMode
}

func NewDevicesMode() *DevicesMode {
	return &DevicesMode{stageMode{name: "devices"}}
}

func (m *DevicesMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case " ":
		return []types.Action{types.ToggleItemAction{}}, true
	case "enter":
		return []types.Action{types.AdvanceAction{}}, true
	}
	return m.handleCommon(msg, ctx)
}
