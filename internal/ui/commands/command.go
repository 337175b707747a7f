package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/configurator"
	"modwall/internal/eventbus"
	"modwall/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Session *configurator.Session
	State   *state.AppState
	Bus     eventbus.EventBus
}

// SubmitCommand hands the current selection to the delivery service
type SubmitCommand struct {
	ctx *CommandContext
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext) *SubmitCommand {
	return &SubmitCommand{ctx: ctx}
}

// Execute builds the envelope and publishes it
func (c *SubmitCommand) Execute() tea.Cmd {
	env, err := c.ctx.Session.Submit()
	if err != nil {
		c.ctx.State.SetError(fmt.Sprintf("Cannot submit: %v", err))
		return nil
	}

	c.ctx.State.SetStatus("Sending your configuration...")
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SubmissionRequestedEvent{Envelope: env})
	}
	return nil
}

// CancelWalkCommand returns to the first stage keeping the selection
type CancelWalkCommand struct {
	ctx *CommandContext
}

// NewCancelWalkCommand creates a new cancel command
func NewCancelWalkCommand(ctx *CommandContext) *CancelWalkCommand {
	return &CancelWalkCommand{ctx: ctx}
}

// Execute cancels the walk unless a submission is pending
func (c *CancelWalkCommand) Execute() tea.Cmd {
	if c.ctx.Session.Submitting() {
		c.ctx.State.SetError("A submission is in progress")
		return nil
	}
	if c.ctx.Session.Cancel() {
		c.ctx.State.SetStatus("Back to dimensions, your choices are kept")
	}
	return nil
}

// OpenCommand opens a fresh configurator session
type OpenCommand struct {
	ctx *CommandContext
}

// NewOpenCommand creates a new open command
func NewOpenCommand(ctx *CommandContext) *OpenCommand {
	return &OpenCommand{ctx: ctx}
}

// Execute opens the session and resets the list cursors
func (c *OpenCommand) Execute() tea.Cmd {
	c.ctx.Session.Open()
	c.ctx.State.ResetCursors()
	c.ctx.State.ClearStatus()
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SelectionResetEvent{})
	}
	return nil
}
