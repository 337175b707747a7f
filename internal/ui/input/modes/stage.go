package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

// stageMode carries the keys every stage understands
type stageMode struct {
	name string
}

func (m stageMode) Name() string {
	return m.name
}

func (m stageMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m stageMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// handleCommon maps the keys shared by all stages
func (m stageMode) handleCommon(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "n":
		return []types.Action{types.AdvanceAction{}}, true
	case "b":
		return []types.Action{types.BackAction{}}, true
	case "x":
		return []types.Action{types.CancelWalkAction{}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	}
	return nil, false
}
