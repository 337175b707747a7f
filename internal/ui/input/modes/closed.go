package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

// ClosedMode is active while the configurator is not showing
type ClosedMode struct{}

func NewClosedMode() *ClosedMode {
	return &ClosedMode{}
}

func (m *ClosedMode) Name() string {
	return "closed"
}

func (m *ClosedMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ClosedMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "enter", "o":
		return []types.Action{types.OpenConfiguratorAction{}}, true
	}
	return nil, false
}
