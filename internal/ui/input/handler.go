package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/ui/input/modes"
	"modwall/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	focused     types.Field
	inputs      map[types.Field]*textinput.Model // width and height entry fields
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeClosed,
		focused:     types.FieldWidth,
		modes:       make(map[types.Mode]types.ModeHandler),
		inputs:      make(map[types.Field]*textinput.Model),
	}

	for _, field := range []types.Field{types.FieldWidth, types.FieldHeight} {
		ti := textinput.New()
		ti.CharLimit = 10
		ti.Width = 10
		ti.Prompt = ""
		h.inputs[field] = &ti
	}

	// Register all mode handlers
	h.modes[types.ModeDimensions] = modes.NewDimensionsMode()
	h.modes[types.ModeAccessories] = modes.NewAccessoriesMode()
	h.modes[types.ModeGaming] = modes.NewGamingMode()
	h.modes[types.ModeDevices] = modes.NewDevicesMode()
	h.modes[types.ModeStyles] = modes.NewStylesMode()
	h.modes[types.ModeSummary] = modes.NewSummaryMode()
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()
	h.modes[types.ModeClosed] = modes.NewClosedMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}
	if h.currentMode != types.ModeDimensions {
		return nil, nil
	}

	// Unconsumed keys in dimensions mode edit the focused field
	ti := h.inputs[h.focused]
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	return []types.Action{types.UpdateTextAction{Field: h.focused, Text: ti.Value()}}, cmd
}

// Sync switches to mode, running the exit and enter hooks when it changes
func (h *Handler) Sync(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	if mode == types.ModeDimensions {
		return actions, h.FocusField(h.focused)
	}
	for _, ti := range h.inputs {
		ti.Blur()
	}
	return actions, nil
}

// FocusField moves the cursor to field
func (h *Handler) FocusField(field types.Field) tea.Cmd {
	h.focused = field
	for f, ti := range h.inputs {
		if f == field {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
	return textinput.Blink
}

// FocusedField returns the dimension field being edited
func (h *Handler) FocusedField() types.Field {
	return h.focused
}

// SetValues loads the typed width and height, e.g. after the session resets
func (h *Handler) SetValues(width, height string) {
	h.inputs[types.FieldWidth].SetValue(width)
	h.inputs[types.FieldHeight].SetValue(height)
}

// Input returns the text input for field
func (h *Handler) Input(field types.Field) *textinput.Model {
	return h.inputs[field]
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeClosed
	}
	return h.currentMode
}

func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Update handles non-keyboard messages for the focused input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeDimensions {
		return nil
	}
	var cmd tea.Cmd
	ti := h.inputs[h.focused]
	*ti, cmd = ti.Update(msg)
	return cmd
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeClosed
	h.focused = types.FieldWidth
	for _, ti := range h.inputs {
		ti.Reset()
		ti.Blur()
	}
}
