package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/configurator"
	"modwall/internal/eventbus"
	"modwall/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(session *configurator.Session, state *state.AppState, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Session: session,
			State:   state,
			Bus:     bus,
		},
	}
}

// ExecuteSubmit creates and executes a submit command
func (e *Executor) ExecuteSubmit() tea.Cmd {
	cmd := NewSubmitCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteCancelWalk creates and executes a cancel command
func (e *Executor) ExecuteCancelWalk() tea.Cmd {
	cmd := NewCancelWalkCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteOpen creates and executes an open command
func (e *Executor) ExecuteOpen() tea.Cmd {
	cmd := NewOpenCommand(e.ctx)
	return cmd.Execute()
}
