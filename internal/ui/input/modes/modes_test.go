package modes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"modwall/internal/domain"
	"modwall/internal/ui/input/types"
)

type fakeContext struct {
	stage      domain.Stage
	submitting bool
	field      types.Field
}

func (c fakeContext) Stage() domain.Stage       { return c.stage }
func (c fakeContext) ConfirmOpen() bool         { return false }
func (c fakeContext) IsOpen() bool              { return true }
func (c fakeContext) Submitting() bool          { return c.submitting }
func (c fakeContext) FocusedField() types.Field { return c.field }
func (c fakeContext) StylePane() types.Pane     { return types.PaneCategories }

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDimensionsLeavesDigitsToInput(t *testing.T) {
	mode := NewDimensionsMode()

	for _, k := range []string{"3", ".", ",", "12"} {
		actions, consumed := mode.HandleKey(keyRunes(k), fakeContext{})
		assert.False(t, consumed, k)
		assert.Empty(t, actions, k)
	}

	_, consumed := mode.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, fakeContext{})
	assert.False(t, consumed)

	actions, consumed := mode.HandleKey(keyRunes("a"), fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestDimensionsKeys(t *testing.T) {
	mode := NewDimensionsMode()
	ctx := fakeContext{field: types.FieldHeight}

	actions, _ := mode.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx)
	assert.Equal(t, []types.Action{types.FocusFieldAction{Field: types.FieldWidth}}, actions)

	actions, _ = mode.HandleKey(keyRunes("u"), ctx)
	assert.Equal(t, []types.Action{types.ToggleUnitAction{Field: types.FieldHeight}}, actions)

	actions, _ = mode.HandleKey(keyRunes("]"), ctx)
	assert.Equal(t, []types.Action{types.CycleModuleWidthAction{Delta: 1}}, actions)

	actions, _ = mode.HandleKey(keyRunes("n"), ctx)
	assert.Equal(t, []types.Action{types.AdvanceAction{}}, actions)
}

func TestAccessoriesKeys(t *testing.T) {
	mode := NewAccessoriesMode()

	cases := map[string]types.Action{
		"t": types.ToggleAccessoryAction{Name: "tv"},
		"f": types.ToggleAccessoryAction{Name: "fireplace"},
		"s": types.ToggleAccessoryAction{Name: "soundbar"},
		"+": types.ShelvingAction{Delta: 1},
		"-": types.ShelvingAction{Delta: -1},
		"b": types.BackAction{},
		"x": types.CancelWalkAction{},
	}
	for k, want := range cases {
		actions, consumed := mode.HandleKey(keyRunes(k), fakeContext{stage: domain.StageAccessories})
		assert.True(t, consumed, k)
		assert.Equal(t, []types.Action{want}, actions, k)
	}
}

func TestGamingKeys(t *testing.T) {
	mode := NewGamingMode()

	actions, _ := mode.HandleKey(keyRunes("2"), fakeContext{})
	assert.Equal(t, []types.Action{types.SetGamingModeAction{Mode: domain.GamingDual}}, actions)

	actions, _ = mode.HandleKey(tea.KeyMsg{Type: tea.KeySpace}, fakeContext{})
	assert.Equal(t, []types.Action{types.ToggleItemAction{}}, actions)

	actions, _ = mode.HandleKey(keyRunes("j"), fakeContext{})
	assert.Equal(t, []types.Action{types.NavigateAction{Direction: "down"}}, actions)
}

func TestSummaryWhileSubmitting(t *testing.T) {
	mode := NewSummaryMode()
	ctx := fakeContext{stage: domain.StageSummary, submitting: true}

	actions, consumed := mode.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.True(t, consumed)
	assert.Empty(t, actions)

	actions, _ = mode.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, ctx)
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = mode.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{stage: domain.StageSummary})
	assert.Equal(t, []types.Action{types.SubmitAction{}}, actions)
}

func TestConfirmKeys(t *testing.T) {
	mode := NewConfirmMode()

	actions, _ := mode.HandleKey(keyRunes("y"), fakeContext{})
	assert.Equal(t, []types.Action{types.ContinueAnywayAction{}}, actions)

	for _, k := range []tea.KeyMsg{keyRunes("n"), {Type: tea.KeyEsc}} {
		actions, _ = mode.HandleKey(k, fakeContext{})
		assert.Equal(t, []types.Action{types.StayAction{}}, actions)
	}

	// anything else is swallowed while the question is open
	actions, consumed := mode.HandleKey(keyRunes("t"), fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)
}
