package handlers

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"modwall/internal/configurator"
	"modwall/internal/eventbus"
	"modwall/internal/ui/state"
)

// ClearStatusMsg asks the model to clear the status bar
type ClearStatusMsg struct{}

// ErrorTTL is how long bus errors stay in the status bar
const ErrorTTL = 4 * time.Second

// EventHandler handles domain events and updates state
type EventHandler struct {
	session   *configurator.Session
	state     *state.AppState
	onSuccess func() tea.Cmd
}

// NewEventHandler creates a new event handler. onSuccess runs after a
// submission was delivered and the session has closed.
func NewEventHandler(session *configurator.Session, appState *state.AppState, onSuccess func() tea.Cmd) *EventHandler {
	return &EventHandler{
		session:   session,
		state:     appState,
		onSuccess: onSuccess,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SubmissionCompletedEvent:
		if err := h.session.CompleteSubmission(e.ID, e.Err); err != nil {
			log.Printf("ignoring completion for %s: %v", e.ID, err)
			return nil
		}
		if !e.Succeeded() {
			h.state.SetError(fmt.Sprintf("Submission failed: %v", e.Err))
			return nil
		}
		h.state.ResetCursors()
		h.state.SetStatus("Thank you! Your configuration has been sent.")
		if h.onSuccess != nil {
			return h.onSuccess()
		}

	case eventbus.ErrorEvent:
		h.state.SetError(e.Message)
		return tea.Tick(ErrorTTL, func(t time.Time) tea.Msg { return ClearStatusMsg{} })
	}
	return nil
}
