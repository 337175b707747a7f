package store

import (
	"modwall/internal/catalog"
	"modwall/internal/domain"
	"modwall/internal/geometry"
)

// DimensionsDelta changes any subset of the dimension inputs; nil fields are kept
type DimensionsDelta struct {
	Width       *domain.Length
	Height      *domain.Length
	ModuleWidth *int
}

// AccessoriesDelta toggles accessories and steps the shelving count
type AccessoriesDelta struct {
	TV           *bool
	Fireplace    *bool
	Soundbar     *bool
	ShelvingStep int // +1 / -1, saturating
}

// GamingDelta sets the mode and/or toggles one option
type GamingDelta struct {
	Mode         *domain.GamingMode
	ToggleOption string
}

// DevicesDelta toggles one device or clears all of them
type DevicesDelta struct {
	Toggle string
	Clear  bool
}

// StyleDelta chooses a category and/or a finish inside it
type StyleDelta struct {
	Category *string
	Finish   *string
}

// ApplyDimensions updates the raw inputs and recomputes every derived field
func ApplyDimensions(prev State, d DimensionsDelta) State {
	next := prev.Clone()
	if d.Width != nil {
		next.Width = normalizeLength(*d.Width)
	}
	if d.Height != nil {
		next.Height = normalizeLength(*d.Height)
	}
	if d.ModuleWidth != nil {
		next.ModuleWidthMM = 0
		if domain.IsModuleWidth(*d.ModuleWidth) {
			next.ModuleWidthMM = *d.ModuleWidth
		}
	}
	next.Metrics = geometry.Derive(next.Width, next.Height, next.ModuleWidthMM)
	return next
}

func normalizeLength(l domain.Length) domain.Length {
	if l.Unit != domain.UnitMetre {
		l.Unit = domain.UnitMillimetre
	}
	return l
}

// ApplyAccessories toggles accessories; shelving saturates in [0, ShelvingMaxQty]
func ApplyAccessories(prev State, d AccessoriesDelta) State {
	next := prev.Clone()
	if d.TV != nil {
		next.Accessories.TV = *d.TV
	}
	if d.Fireplace != nil {
		next.Accessories.Fireplace = *d.Fireplace
	}
	if d.Soundbar != nil {
		next.Accessories.Soundbar = *d.Soundbar
	}
	next.Accessories.ShelvingQty = clampShelving(next.Accessories.ShelvingQty + d.ShelvingStep)
	return next
}

func clampShelving(n int) int {
	if n < 0 {
		return 0
	}
	if n > domain.ShelvingMaxQty {
		return domain.ShelvingMaxQty
	}
	return n
}

// ApplyGaming sets the mode and toggles options. Options only exist while a
// screen mode is chosen. A dual mode is kept even if the width no longer
// supports it; the gating engine surfaces that conflict instead.
func ApplyGaming(prev State, d GamingDelta, cat *catalog.Projection) State {
	next := prev.Clone()
	if d.Mode != nil && d.Mode.Valid() {
		next.Gaming.Mode = *d.Mode
	}
	if next.Gaming.Mode == domain.GamingNone {
		next.Gaming.Options = domain.Set{}
		return next
	}
	if d.ToggleOption != "" && cat.HasGamingOption(d.ToggleOption) {
		toggle(next.Gaming.Options, d.ToggleOption)
	}
	return next
}

// ApplyDevices toggles a known device; unknown ids are ignored
func ApplyDevices(prev State, d DevicesDelta, cat *catalog.Projection) State {
	next := prev.Clone()
	if d.Clear {
		next.Devices = domain.Set{}
	}
	if d.Toggle != "" && cat.HasDevice(d.Toggle) {
		toggle(next.Devices, d.Toggle)
	}
	return next
}

// ApplyStyle picks a category and finish. Changing category clears the
// finish in the same update; a finish outside the category is dropped.
func ApplyStyle(prev State, d StyleDelta, cat *catalog.Projection) State {
	next := prev.Clone()
	if d.Category != nil {
		category := *d.Category
		if !cat.HasCategory(category) {
			category = ""
		}
		if category != next.StyleCategory {
			next.StyleCategory = category
			next.Finish = ""
		}
	}
	if d.Finish != nil {
		next.Finish = *d.Finish
	}
	if next.Finish != "" {
		if _, ok := cat.Panel(next.StyleCategory, next.Finish); !ok {
			next.Finish = ""
		}
	}
	return next
}

// ApplyConfirm records the interstitial flags of an optional stage
func ApplyConfirm(prev State, stage domain.Stage, pending, acknowledged bool) State {
	next := prev.Clone()
	if !stage.Optional() {
		return next
	}
	setFlag(next.Confirm.Pending, stage, pending)
	setFlag(next.Confirm.Acknowledged, stage, acknowledged)
	return next
}

func setFlag(m map[domain.Stage]bool, stage domain.Stage, on bool) {
	if on {
		m[stage] = true
	} else {
		delete(m, stage)
	}
}

func toggle(s domain.Set, id string) {
	if s[id] {
		delete(s, id)
	} else {
		s[id] = true
	}
}
