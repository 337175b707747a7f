package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

// ConfirmMode answers the skip interstitial of an optional stage
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "skip-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{types.ContinueAnywayAction{}}, true
	case "n", "N", "esc", "b":
		return []types.Action{types.StayAction{}}, true
	}

	return nil, true
}
