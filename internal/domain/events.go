package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSubmissionRequested EventType = "SubmissionRequested"
	EventSubmissionCompleted EventType = "SubmissionCompleted"
	EventStageChanged        EventType = "StageChanged"
	EventSelectionReset      EventType = "SelectionReset"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SubmissionRequestedEvent is emitted once the customer confirms the summary
type SubmissionRequestedEvent struct {
	Envelope Envelope
}

func (e SubmissionRequestedEvent) Type() EventType { return EventSubmissionRequested }

// SubmissionCompletedEvent reports the delivery outcome; Err is nil on success
type SubmissionCompletedEvent struct {
	ID  string
	Err error
}

func (e SubmissionCompletedEvent) Type() EventType { return EventSubmissionCompleted }

// Succeeded reports whether delivery worked
func (e SubmissionCompletedEvent) Succeeded() bool { return e.Err == nil }

// StageChangedEvent is emitted after every completed stage transition
type StageChangedEvent struct {
	From Stage
	To   Stage
}

func (e StageChangedEvent) Type() EventType { return EventStageChanged }

// SelectionResetEvent is emitted when the configurator closes or a submission lands
type SelectionResetEvent struct{}

func (e SelectionResetEvent) Type() EventType { return EventSelectionReset }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
