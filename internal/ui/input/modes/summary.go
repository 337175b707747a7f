package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/types"
)

type SummaryMode struct {
	stageMode
}

func NewSummaryMode() *SummaryMode {
	return &SummaryMode{stageMode{name: "summary"}}
}

func (m *SummaryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if ctx.Submitting() {
		// only quitting is allowed while a delivery is in flight
		switch msg.String() {
		case "ctrl+c":
			return []types.Action{types.QuitAction{Force: true}}, true
		case "q":
			return []types.Action{types.QuitAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "enter":
		return []types.Action{types.SubmitAction{}}, true
	case "p":
		return []types.Action{types.OpenPayloadAction{}}, true
	case "n":
		return nil, true
	}
	return m.handleCommon(msg, ctx)
}
