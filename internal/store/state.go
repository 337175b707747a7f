// Package store holds the single mutable selection of a configurator
// session. Every mutation goes through a pure reducer that normalizes
// instead of rejecting, so the state never breaks its invariants.
package store

import (
	"strconv"

	"modwall/internal/domain"
	"modwall/internal/geometry"
)

// ConfirmState tracks the skip-confirmation interstitials of the optional stages
type ConfirmState struct {
	Pending      map[domain.Stage]bool
	Acknowledged map[domain.Stage]bool
}

// State contains every choice of the session plus the derived dimensions
type State struct {
	Width         domain.Length
	Height        domain.Length
	ModuleWidthMM int // 0 means unset
	Metrics       domain.Metrics

	Accessories domain.Accessories
	Gaming      domain.Gaming
	Devices     domain.Set

	StyleCategory string // "" means none chosen
	Finish        string // panel id inside StyleCategory, "" means none

	Confirm ConfirmState
}

// NewState returns the defaults a freshly opened configurator starts with
func NewState() State {
	s := State{
		Width:  domain.Length{Unit: domain.UnitMetre},
		Height: domain.Length{Raw: strconv.Itoa(domain.HeightDefaultMM), Unit: domain.UnitMillimetre},
		Gaming: domain.Gaming{
			Mode:    domain.GamingNone,
			Options: domain.Set{},
		},
		Devices: domain.Set{},
		Confirm: ConfirmState{
			Pending:      map[domain.Stage]bool{},
			Acknowledged: map[domain.Stage]bool{},
		},
	}
	s.Metrics = geometry.Derive(s.Width, s.Height, s.ModuleWidthMM)
	return s
}

// Clone returns a deep copy
func (s State) Clone() State {
	out := s
	out.Gaming.Options = s.Gaming.Options.Clone()
	out.Devices = s.Devices.Clone()
	out.Confirm = ConfirmState{
		Pending:      cloneStageFlags(s.Confirm.Pending),
		Acknowledged: cloneStageFlags(s.Confirm.Acknowledged),
	}
	return out
}

// HasFinish reports whether a finish has been chosen
func (s State) HasFinish() bool {
	return s.Finish != ""
}

func cloneStageFlags(in map[domain.Stage]bool) map[domain.Stage]bool {
	out := make(map[domain.Stage]bool, len(in))
	for k, v := range in {
		if v {
			out[k] = true
		}
	}
	return out
}
