// Package configurator is the facade a host drives: it owns the selection
// store, the step machine and the catalog for one configurator session.
package configurator

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"modwall/internal/catalog"
	"modwall/internal/domain"
	"modwall/internal/flow"
	"modwall/internal/gating"
	"modwall/internal/store"
	"modwall/internal/submission"
)

var (
	ErrNotOnSummary       = errors.New("submission is only possible from the summary")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrUnknownSubmission  = errors.New("no submission with that id is in flight")
)

// Progress describes where the walk currently is
type Progress struct {
	Index int // zero-based stage index
	Total int
	Stage domain.Stage
}

// Option configures a Session
type Option func(*Session)

// WithBrand sets the brand used in generated metadata
func WithBrand(brand string) Option {
	return func(s *Session) { s.brand = brand }
}

// WithIDGenerator replaces the submission id source
func WithIDGenerator(fn func() string) Option {
	return func(s *Session) { s.newID = fn }
}

// WithStageListener registers a hook called after every stage transition
func WithStageListener(fn func(from, to domain.Stage)) Option {
	return func(s *Session) { s.onStage = fn }
}

// WithChangeListener registers a hook called after every selection change
func WithChangeListener(fn func(store.State)) Option {
	return func(s *Session) { s.store.OnChange(fn) }
}

// Session is one configurator visit
type Session struct {
	catalog *catalog.Projection
	store   *store.Store
	machine *flow.Machine

	brand   string
	newID   func() string
	onStage func(from, to domain.Stage)

	open        bool
	inFlight    string
	lastFailure error
}

// New creates a closed session over the given catalog
func New(cat *catalog.Projection, opts ...Option) *Session {
	st := store.New(cat)
	s := &Session{
		catalog: cat,
		store:   st,
		machine: flow.New(st),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.machine.OnTransition(func(from, to flow.State) {
		if s.onStage != nil && from.Stage() != to.Stage() {
			s.onStage(from.Stage(), to.Stage())
		}
	})
	return s
}

// Open shows the configurator
func (s *Session) Open() {
	s.open = true
}

// Close hides the configurator and discards the selection
func (s *Session) Close() {
	s.open = false
	s.reset()
}

// IsOpen reports whether the configurator is showing
func (s *Session) IsOpen() bool {
	return s.open
}

func (s *Session) reset() {
	s.store.Reset()
	s.machine.Reset()
	s.inFlight = ""
	s.lastFailure = nil
}

// Catalog is the projection the session reads choices from
func (s *Session) Catalog() *catalog.Projection { return s.catalog }

// Brand is the name used in generated metadata, possibly empty
func (s *Session) Brand() string { return s.brand }

// Stage is the current stage; an open interstitial reports its parent stage
func (s *Session) Stage() domain.Stage { return s.machine.Stage() }

// ConfirmOpen reports whether a skip confirmation is showing
func (s *Session) ConfirmOpen() bool { return s.machine.ConfirmOpen() }

// State returns a copy of the current selection
func (s *Session) State() store.State { return s.store.Snapshot() }

// Verdict evaluates the forward control of the current stage
func (s *Session) Verdict() gating.Verdict {
	return gating.Evaluate(s.Stage(), s.store.Snapshot())
}

// Warnings returns the standing warnings for the current selection
func (s *Session) Warnings() []gating.Warning {
	return gating.Warnings(s.store.Snapshot())
}

// Progress returns the position of the current stage in the walk
func (s *Session) Progress() Progress {
	stage := s.Stage()
	return Progress{Index: int(stage), Total: len(domain.Stages), Stage: stage}
}

// Graph renders the step machine in graphviz dot format
func (s *Session) Graph() string {
	return s.machine.Visualize()
}

// Selection changes. While a submission is in flight the selection is frozen
// and every setter returns the unchanged snapshot.

// SetWidth records the typed wall width
func (s *Session) SetWidth(raw string, unit domain.Unit) store.State {
	return s.mutate(func() store.State { return s.store.SetWidth(raw, unit) })
}

// SetHeight records the typed wall height
func (s *Session) SetHeight(raw string, unit domain.Unit) store.State {
	return s.mutate(func() store.State { return s.store.SetHeight(raw, unit) })
}

// SetModuleWidth picks one of the enumerated module widths
func (s *Session) SetModuleWidth(mm int) store.State {
	return s.mutate(func() store.State { return s.store.SetModuleWidth(mm) })
}

// ToggleTV flips the TV accessory
func (s *Session) ToggleTV() store.State {
	return s.mutate(s.store.ToggleTV)
}

// ToggleFireplace flips the fireplace accessory
func (s *Session) ToggleFireplace() store.State {
	return s.mutate(s.store.ToggleFireplace)
}

// ToggleSoundbar flips the soundbar accessory
func (s *Session) ToggleSoundbar() store.State {
	return s.mutate(s.store.ToggleSoundbar)
}

// IncrementShelving adds a shelf, saturating at the maximum
func (s *Session) IncrementShelving() store.State {
	return s.mutate(s.store.IncrementShelving)
}

// DecrementShelving removes a shelf, saturating at zero
func (s *Session) DecrementShelving() store.State {
	return s.mutate(s.store.DecrementShelving)
}

// SetGamingMode picks the screen layout; none clears the options
func (s *Session) SetGamingMode(mode domain.GamingMode) store.State {
	return s.mutate(func() store.State { return s.store.SetGamingMode(mode) })
}

// ToggleGamingOption flips a catalog gaming option
func (s *Session) ToggleGamingOption(id string) store.State {
	return s.mutate(func() store.State { return s.store.ToggleGamingOption(id) })
}

// ToggleDevice flips a catalog smart device
func (s *Session) ToggleDevice(id string) store.State {
	return s.mutate(func() store.State { return s.store.ToggleDevice(id) })
}

// SelectCategory picks a style category; a different category clears the finish
func (s *Session) SelectCategory(id string) store.State {
	return s.mutate(func() store.State { return s.store.SelectCategory(id) })
}

// SelectFinish picks a panel of the current category
func (s *Session) SelectFinish(id string) store.State {
	return s.mutate(func() store.State { return s.store.SelectFinish(id) })
}

func (s *Session) mutate(fn func() store.State) store.State {
	if s.inFlight != "" {
		return s.store.Snapshot()
	}
	return fn()
}

// Navigation. Nothing moves while a submission is in flight, so a failed
// delivery always lands back on Summary.

// Advance tries the forward control of the current stage
func (s *Session) Advance() flow.Outcome {
	if s.inFlight != "" {
		return flow.NoOp
	}
	return s.machine.Advance()
}

// Back moves to the previous stage without validating
func (s *Session) Back() bool {
	if s.inFlight != "" {
		return false
	}
	return s.machine.Back()
}

// ContinueAnyway acknowledges an empty optional stage and moves on
func (s *Session) ContinueAnyway() bool {
	if s.inFlight != "" {
		return false
	}
	return s.machine.ContinueAnyway()
}

// GoBackFromConfirm closes the skip confirmation and stays
func (s *Session) GoBackFromConfirm() bool {
	if s.inFlight != "" {
		return false
	}
	return s.machine.GoBackFromConfirm()
}

// Cancel abandons the walk, keeping the selection, and returns to Dimensions
func (s *Session) Cancel() bool {
	if s.inFlight != "" {
		return false
	}
	return s.machine.Cancel()
}

// Submitting reports whether a submission is waiting for its outcome
func (s *Session) Submitting() bool {
	return s.inFlight != ""
}

// LastFailure is the error of the most recent failed submission, if any
func (s *Session) LastFailure() error {
	return s.lastFailure
}

// Submit projects the selection into an envelope ready for delivery.
// Only one submission can be in flight at a time.
func (s *Session) Submit() (domain.Envelope, error) {
	if s.machine.Current() != flow.StateSummary {
		return domain.Envelope{}, ErrNotOnSummary
	}
	if s.inFlight != "" {
		return domain.Envelope{}, ErrSubmissionInFlight
	}

	state := s.store.Snapshot()
	env := domain.Envelope{
		ID:       s.newID(),
		Payload:  submission.Project(state, s.catalog),
		Metadata: submission.Describe(state, s.catalog, s.brand),
	}
	s.inFlight = env.ID
	s.lastFailure = nil
	log.Printf("configurator: submission %s requested", env.ID)
	return env, nil
}

// CompleteSubmission records the delivery outcome. Success resets and closes
// the session; failure keeps the selection on Summary for a retry.
func (s *Session) CompleteSubmission(id string, err error) error {
	if id == "" || id != s.inFlight {
		return ErrUnknownSubmission
	}
	s.inFlight = ""

	if err != nil {
		s.lastFailure = err
		log.Printf("configurator: submission %s failed: %v", id, err)
		return nil
	}

	log.Printf("configurator: submission %s delivered", id)
	s.machine.Complete()
	s.Close()
	return nil
}
