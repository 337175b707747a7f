package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/domain"
	"modwall/internal/ui/input/types"
)

type GamingMode struct {
	stageMode
}

func NewGamingMode() *GamingMode {
	return &GamingMode{stageMode{name: "gaming"}}
}

func (m *GamingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "0":
		return []types.Action{types.SetGamingModeAction{Mode: domain.GamingNone}}, true
	case "1":
		return []types.Action{types.SetGamingModeAction{Mode: domain.GamingSingle}}, true
	case "2":
		return []types.Action{types.SetGamingModeAction{Mode: domain.GamingDual}}, true
	case " ":
		return []types.Action{types.ToggleItemAction{}}, true
	case "enter":
		return []types.Action{types.AdvanceAction{}}, true
	}
	return m.handleCommon(msg, ctx)
}
