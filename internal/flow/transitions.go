package flow

import (
	loopfsm "github.com/looplab/fsm"

	"modwall/internal/domain"
	"modwall/internal/gating"
	"modwall/internal/store"
)

// State is a node of the step machine. Every stage has one state; the two
// optional stages also have a confirm state for the skip interstitial.
type State string

const (
	StateDimensions         State = "dimensions"
	StateAccessories        State = "accessories"
	StateAccessoriesConfirm State = "accessories_confirm"
	StateGaming             State = "gaming"
	StateDevices            State = "devices"
	StateDevicesConfirm     State = "devices_confirm"
	StateStyles             State = "styles"
	StateSummary            State = "summary"
)

// Event is an input of the step machine
type Event string

const (
	EventNext        Event = "next"
	EventRequestSkip Event = "request_skip"
	EventContinue    Event = "continue"
	EventStay        Event = "stay"
	EventBack        Event = "back"
	EventFinish      Event = "finish"
	EventCancel      Event = "cancel"
)

// Guard decides whether a transition may fire for the given selection
type Guard func(store.State) bool

// Transition is one edge of the step machine
type Transition struct {
	From  State
	Event Event
	To    State
	Guard Guard // nil means unguarded
}

// Transitions is the complete step table. Forward edges are guarded,
// backward edges never are.
var Transitions = []Transition{
	{From: StateDimensions, Event: EventNext, To: StateAccessories, Guard: gating.DimensionsReady},

	{From: StateAccessories, Event: EventNext, To: StateGaming, Guard: optionalSatisfied(domain.StageAccessories)},
	{From: StateAccessories, Event: EventRequestSkip, To: StateAccessoriesConfirm, Guard: optionalPending(domain.StageAccessories)},
	{From: StateAccessoriesConfirm, Event: EventContinue, To: StateGaming},
	{From: StateAccessoriesConfirm, Event: EventStay, To: StateAccessories},

	{From: StateGaming, Event: EventNext, To: StateDevices, Guard: gating.GamingReady},

	{From: StateDevices, Event: EventNext, To: StateStyles, Guard: optionalSatisfied(domain.StageDevices)},
	{From: StateDevices, Event: EventRequestSkip, To: StateDevicesConfirm, Guard: optionalPending(domain.StageDevices)},
	{From: StateDevicesConfirm, Event: EventContinue, To: StateStyles},
	{From: StateDevicesConfirm, Event: EventStay, To: StateDevices},

	{From: StateStyles, Event: EventNext, To: StateSummary, Guard: gating.StylesReady},

	{From: StateAccessories, Event: EventBack, To: StateDimensions},
	{From: StateGaming, Event: EventBack, To: StateAccessories},
	{From: StateDevices, Event: EventBack, To: StateGaming},
	{From: StateStyles, Event: EventBack, To: StateDevices},
	{From: StateSummary, Event: EventBack, To: StateStyles},

	{From: StateSummary, Event: EventFinish, To: StateDimensions},

	{From: StateAccessories, Event: EventCancel, To: StateDimensions},
	{From: StateAccessoriesConfirm, Event: EventCancel, To: StateDimensions},
	{From: StateGaming, Event: EventCancel, To: StateDimensions},
	{From: StateDevices, Event: EventCancel, To: StateDimensions},
	{From: StateDevicesConfirm, Event: EventCancel, To: StateDimensions},
	{From: StateStyles, Event: EventCancel, To: StateDimensions},
	{From: StateSummary, Event: EventCancel, To: StateDimensions},
}

func optionalSatisfied(stage domain.Stage) Guard {
	return func(s store.State) bool {
		return !gating.OptionalStageEmpty(stage, s) || gating.Acknowledged(stage, s)
	}
}

func optionalPending(stage domain.Stage) Guard {
	return func(s store.State) bool {
		return gating.OptionalStageEmpty(stage, s) && !gating.Acknowledged(stage, s)
	}
}

type edge struct {
	from  State
	event Event
}

// buildEvents groups edges sharing event and destination into one EventDesc
func buildEvents(table []Transition) loopfsm.Events {
	type key struct {
		event string
		dst   string
	}
	grouped := make(map[key][]string)
	order := make([]key, 0)

	for _, t := range table {
		k := key{event: string(t.Event), dst: string(t.To)}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], string(t.From))
	}

	out := make(loopfsm.Events, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{
			Name: k.event,
			Src:  grouped[k],
			Dst:  k.dst,
		})
	}
	return out
}

func buildGuards(table []Transition) map[edge]Guard {
	guards := make(map[edge]Guard)
	for _, t := range table {
		if t.Guard != nil {
			guards[edge{from: t.From, event: t.Event}] = t.Guard
		}
	}
	return guards
}

var stageOf = map[State]domain.Stage{
	StateDimensions:         domain.StageDimensions,
	StateAccessories:        domain.StageAccessories,
	StateAccessoriesConfirm: domain.StageAccessories,
	StateGaming:             domain.StageGaming,
	StateDevices:            domain.StageDevices,
	StateDevicesConfirm:     domain.StageDevices,
	StateStyles:             domain.StageStyles,
	StateSummary:            domain.StageSummary,
}

var confirmOf = map[domain.Stage]State{
	domain.StageAccessories: StateAccessoriesConfirm,
	domain.StageDevices:     StateDevicesConfirm,
}

// Stage maps a state to the stage it belongs to
func (s State) Stage() domain.Stage {
	return stageOf[s]
}

// IsConfirm reports whether s is a skip interstitial
func (s State) IsConfirm() bool {
	return s == StateAccessoriesConfirm || s == StateDevicesConfirm
}
