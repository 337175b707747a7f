// Package flow is the configurator's step machine. The transition table in
// transitions.go is the single source of truth for which stage may follow
// which, and under what guard.
package flow

import (
	"context"
	"errors"
	"log"

	loopfsm "github.com/looplab/fsm"

	"modwall/internal/domain"
	"modwall/internal/store"
)

// Outcome is the result of a forward attempt
type Outcome int

const (
	// NoOp means nothing can happen from the current state
	NoOp Outcome = iota
	// Advanced means the machine moved to the next stage
	Advanced
	// Blocked means a hard guard held the machine in place
	Blocked
	// ConfirmOpened means the skip interstitial is now shown
	ConfirmOpened
)

func (o Outcome) String() string {
	switch o {
	case Advanced:
		return "advanced"
	case Blocked:
		return "blocked"
	case ConfirmOpened:
		return "confirm-opened"
	default:
		return "no-op"
	}
}

// Machine drives stage navigation over a selection store
type Machine struct {
	fsm          *loopfsm.FSM
	store        *store.Store
	guards       map[edge]Guard
	onTransition func(from, to State)
}

// New builds a machine positioned on Dimensions
func New(st *store.Store) *Machine {
	m := &Machine{
		store:  st,
		guards: buildGuards(Transitions),
	}
	m.fsm = loopfsm.NewFSM(
		string(StateDimensions),
		buildEvents(Transitions),
		loopfsm.Callbacks{
			"before_event": m.checkGuard,
			"leave_state":  m.leaveState,
			"enter_state":  m.enterState,
		},
	)
	return m
}

// OnTransition registers a hook called after every completed transition
func (m *Machine) OnTransition(fn func(from, to State)) {
	m.onTransition = fn
}

// Current returns the current state
func (m *Machine) Current() State {
	return State(m.fsm.Current())
}

// Stage returns the stage shown to the user
func (m *Machine) Stage() domain.Stage {
	return m.Current().Stage()
}

// ConfirmOpen reports whether the skip interstitial is showing
func (m *Machine) ConfirmOpen() bool {
	return m.Current().IsConfirm()
}

// Can reports whether event would fire from the current state, guard included
func (m *Machine) Can(event Event) bool {
	if !m.fsm.Can(string(event)) {
		return false
	}
	guard, ok := m.guards[edge{from: m.Current(), event: event}]
	return !ok || guard(m.store.Snapshot())
}

// Advance attempts the forward transition of the current stage
func (m *Machine) Advance() Outcome {
	cur := m.Current()
	if cur.IsConfirm() || cur == StateSummary {
		return NoOp
	}
	if m.fire(EventNext) {
		return Advanced
	}
	if m.fire(EventRequestSkip) {
		return ConfirmOpened
	}
	return Blocked
}

// ContinueAnyway acknowledges an empty optional stage and moves past it
func (m *Machine) ContinueAnyway() bool {
	return m.fire(EventContinue)
}

// GoBackFromConfirm closes the interstitial and stays on the stage
func (m *Machine) GoBackFromConfirm() bool {
	return m.fire(EventStay)
}

// Back moves to the previous stage. From an interstitial it only closes it.
func (m *Machine) Back() bool {
	if m.ConfirmOpen() {
		return m.GoBackFromConfirm()
	}
	return m.fire(EventBack)
}

// Complete leaves Summary after a successful submission
func (m *Machine) Complete() bool {
	return m.fire(EventFinish)
}

// Cancel abandons the walk and returns to Dimensions
func (m *Machine) Cancel() bool {
	return m.fire(EventCancel)
}

// Reset puts the machine back on Dimensions without running callbacks
func (m *Machine) Reset() {
	m.fsm.SetState(string(StateDimensions))
}

// Visualize renders the step table in graphviz dot format
func (m *Machine) Visualize() string {
	return loopfsm.Visualize(m.fsm)
}

func (m *Machine) fire(event Event) bool {
	from := m.Current()
	err := m.fsm.Event(context.Background(), string(event))
	if err != nil {
		var canceled loopfsm.CanceledError
		var invalid loopfsm.InvalidEventError
		var noTransition loopfsm.NoTransitionError
		if !errors.As(err, &canceled) && !errors.As(err, &invalid) && !errors.As(err, &noTransition) {
			log.Printf("flow: failed to fire %s from %s: %v", event, from, err)
		}
		return false
	}

	to := m.Current()
	log.Printf("flow: %s --%s--> %s", from, event, to)
	if m.onTransition != nil {
		m.onTransition(from, to)
	}
	return true
}

func (m *Machine) checkGuard(_ context.Context, e *loopfsm.Event) {
	guard, ok := m.guards[edge{from: State(e.Src), event: Event(e.Event)}]
	if ok && !guard(m.store.Snapshot()) {
		e.Cancel()
	}
}

func (m *Machine) leaveState(_ context.Context, e *loopfsm.Event) {
	src := State(e.Src)
	if src.IsConfirm() {
		m.store.SetConfirm(src.Stage(), false, Event(e.Event) == EventContinue)
	}
}

func (m *Machine) enterState(_ context.Context, e *loopfsm.Event) {
	dst := State(e.Dst)
	if dst.IsConfirm() {
		m.store.SetConfirm(dst.Stage(), true, false)
		return
	}
	stage := dst.Stage()
	if confirm, ok := confirmOf[stage]; ok && State(e.Src) != confirm {
		// a fresh visit needs a fresh acknowledgement
		m.store.SetConfirm(stage, false, false)
	}
}
