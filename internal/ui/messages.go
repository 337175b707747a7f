package ui

import (
	"time"

	"modwall/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagerMsg reports the end of an external pager session
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// quitMsg signals that the application should quit
type quitMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
