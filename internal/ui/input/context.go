package input

import (
	"modwall/internal/configurator"
	"modwall/internal/domain"
	"modwall/internal/ui/input/types"
	"modwall/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Session *configurator.Session
	State   *state.AppState
	Handler *Handler
}

func (c *ModelContext) Stage() domain.Stage {
	return c.Session.Stage()
}

func (c *ModelContext) ConfirmOpen() bool {
	return c.Session.ConfirmOpen()
}

func (c *ModelContext) IsOpen() bool {
	return c.Session.IsOpen()
}

// Submitting reports a delivery in flight
func (c *ModelContext) Submitting() bool {
	return c.Session.Submitting()
}

func (c *ModelContext) FocusedField() types.Field {
	if c.Handler == nil {
		return types.FieldWidth
	}
	return c.Handler.FocusedField()
}

func (c *ModelContext) StylePane() types.Pane {
	return c.State.Pane
}
