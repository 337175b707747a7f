package store

import (
	"modwall/internal/catalog"
	"modwall/internal/domain"
)

// Store owns the session's State. It has exactly one writer (the serialized
// stream of user interactions), so it does no locking.
type Store struct {
	state    State
	catalog  *catalog.Projection
	onChange func(State)
}

// New creates a store with default selections
func New(cat *catalog.Projection) *Store {
	return &Store{
		state:   NewState(),
		catalog: cat,
	}
}

// OnChange registers a hook called after every mutation with the new state
func (s *Store) OnChange(fn func(State)) {
	s.onChange = fn
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() State {
	return s.state.Clone()
}

// Catalog returns the read-only catalog the store validates against
func (s *Store) Catalog() *catalog.Projection {
	return s.catalog
}

func (s *Store) commit(next State) State {
	s.state = next
	if s.onChange != nil {
		s.onChange(next.Clone())
	}
	return next.Clone()
}

// UpdateDimensions applies a dimension change and recomputes derived fields
func (s *Store) UpdateDimensions(d DimensionsDelta) State {
	return s.commit(ApplyDimensions(s.state, d))
}

// UpdateAccessories applies an accessory change
func (s *Store) UpdateAccessories(d AccessoriesDelta) State {
	return s.commit(ApplyAccessories(s.state, d))
}

// UpdateGaming applies a gaming change
func (s *Store) UpdateGaming(d GamingDelta) State {
	return s.commit(ApplyGaming(s.state, d, s.catalog))
}

// UpdateDevices applies a device change
func (s *Store) UpdateDevices(d DevicesDelta) State {
	return s.commit(ApplyDevices(s.state, d, s.catalog))
}

// UpdateStyle applies a style/finish change
func (s *Store) UpdateStyle(d StyleDelta) State {
	return s.commit(ApplyStyle(s.state, d, s.catalog))
}

// SetConfirm records the confirm-skip flags for an optional stage
func (s *Store) SetConfirm(stage domain.Stage, pending, acknowledged bool) State {
	return s.commit(ApplyConfirm(s.state, stage, pending, acknowledged))
}

// Reset restores the defaults
func (s *Store) Reset() State {
	return s.commit(NewState())
}

// SetWidth records the typed width in its entry unit
func (s *Store) SetWidth(raw string, unit domain.Unit) State {
	return s.UpdateDimensions(DimensionsDelta{Width: &domain.Length{Raw: raw, Unit: unit}})
}

// SetHeight records the typed height; the canonical value is clamped
func (s *Store) SetHeight(raw string, unit domain.Unit) State {
	return s.UpdateDimensions(DimensionsDelta{Height: &domain.Length{Raw: raw, Unit: unit}})
}

// SetModuleWidth sets the module width; unknown widths leave it unset
func (s *Store) SetModuleWidth(mm int) State {
	return s.UpdateDimensions(DimensionsDelta{ModuleWidth: &mm})
}

// ToggleTV flips the TV accessory
func (s *Store) ToggleTV() State {
	v := !s.state.Accessories.TV
	return s.UpdateAccessories(AccessoriesDelta{TV: &v})
}

// ToggleFireplace flips the fireplace accessory
func (s *Store) ToggleFireplace() State {
	v := !s.state.Accessories.Fireplace
	return s.UpdateAccessories(AccessoriesDelta{Fireplace: &v})
}

// ToggleSoundbar flips the soundbar accessory
func (s *Store) ToggleSoundbar() State {
	v := !s.state.Accessories.Soundbar
	return s.UpdateAccessories(AccessoriesDelta{Soundbar: &v})
}

// IncrementShelving adds one shelf up to ShelvingMaxQty
func (s *Store) IncrementShelving() State {
	return s.UpdateAccessories(AccessoriesDelta{ShelvingStep: 1})
}

// DecrementShelving removes one shelf down to zero
func (s *Store) DecrementShelving() State {
	return s.UpdateAccessories(AccessoriesDelta{ShelvingStep: -1})
}

// SetGamingMode sets the screen layout
func (s *Store) SetGamingMode(mode domain.GamingMode) State {
	return s.UpdateGaming(GamingDelta{Mode: &mode})
}

// ToggleGamingOption flips a gaming option, ignored while the mode is none
func (s *Store) ToggleGamingOption(id string) State {
	return s.UpdateGaming(GamingDelta{ToggleOption: id})
}

// ToggleDevice flips a catalog device; unknown ids are ignored
func (s *Store) ToggleDevice(id string) State {
	return s.UpdateDevices(DevicesDelta{Toggle: id})
}

// SelectCategory picks a style category; a different category clears the finish
func (s *Store) SelectCategory(id string) State {
	return s.UpdateStyle(StyleDelta{Category: &id})
}

// SelectFinish picks a finish of the current category
func (s *Store) SelectFinish(id string) State {
	return s.UpdateStyle(StyleDelta{Finish: &id})
}
