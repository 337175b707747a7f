package state

import (
	"modwall/internal/ui/input/types"
)

// AppState contains the UI state that is not part of the selection
type AppState struct {
	// List cursors, one per stage list
	GamingCursor   int
	DeviceCursor   int
	CategoryCursor int
	PanelCursor    int

	// Styles stage
	Pane        types.Pane
	InStockOnly bool // hide panels with no stock

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	InPagerMode   bool
	StatusMessage string // status bar message
	StatusIsError bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Pane: types.PaneCategories,
	}
}

// SetStatus replaces the status bar message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows msg as an error in the status bar
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// ResetCursors puts every list back at its top, e.g. when the session reopens
func (s *AppState) ResetCursors() {
	s.GamingCursor = 0
	s.DeviceCursor = 0
	s.CategoryCursor = 0
	s.PanelCursor = 0
	s.Pane = types.PaneCategories
}

// Move shifts cursor by delta within [0, n)
func Move(cursor, delta, n int) int {
	if n <= 0 {
		return 0
	}
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
