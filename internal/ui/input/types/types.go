package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeDimensions Mode = iota
	ModeAccessories
	ModeGaming
	ModeDevices
	ModeStyles
	ModeSummary
	ModeConfirm
	ModeClosed
)

// ModeForStage returns the input mode that edits stage
func ModeForStage(stage domain.Stage) Mode {
	switch stage {
	case domain.StageAccessories:
		return ModeAccessories
	case domain.StageGaming:
		return ModeGaming
	case domain.StageDevices:
		return ModeDevices
	case domain.StageStyles:
		return ModeStyles
	case domain.StageSummary:
		return ModeSummary
	default:
		return ModeDimensions
	}
}

// Field is one of the two free-text dimension inputs
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
)

// Pane is one of the two lists on the Styles stage
type Pane int

const (
	PaneCategories Pane = iota
	PanePanels
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Stage() domain.Stage
	ConfirmOpen() bool
	IsOpen() bool
	Submitting() bool
	FocusedField() Field
	StylePane() Pane
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
