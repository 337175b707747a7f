// Package gating holds the stage predicates that decide whether the
// configurator may move forward. It reads store.State and keeps nothing.
package gating

import (
	"fmt"

	"modwall/internal/domain"
	"modwall/internal/store"
)

// Kind classifies the forward control of a stage
type Kind int

const (
	// Open means the forward transition is allowed
	Open Kind = iota
	// BlockedSilent disables forward progress without explanation
	BlockedSilent
	// BlockedExplained disables forward progress and carries a standing warning
	BlockedExplained
	// SoftConfirm allows forward progress through the skip-confirmation interstitial
	SoftConfirm
)

func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case BlockedSilent:
		return "blocked"
	case BlockedExplained:
		return "blocked-explained"
	case SoftConfirm:
		return "soft-confirm"
	default:
		return "unknown"
	}
}

// Verdict is the evaluation of a stage's forward control
type Verdict struct {
	Kind    Kind
	Message string
}

// CanAdvance reports whether the forward control is enabled at all
func (v Verdict) CanAdvance() bool {
	return v.Kind == Open || v.Kind == SoftConfirm
}

// Warning is a standing condition the host keeps visible while it holds
type Warning struct {
	Stage   domain.Stage
	Message string
}

// DimensionsReady guards Dimensions -> Accessories
func DimensionsReady(s store.State) bool {
	m := s.Metrics
	return m.WidthMM > 0 &&
		m.HeightMM >= domain.HeightMinMM && m.HeightMM <= domain.HeightMaxMM &&
		m.SlotCount > 0
}

// AccessoriesEmpty reports whether no accessory has been chosen
func AccessoriesEmpty(s store.State) bool {
	return s.Accessories.IsEmpty()
}

// DevicesEmpty reports whether no device has been chosen
func DevicesEmpty(s store.State) bool {
	return len(s.Devices) == 0
}

// OptionalStageEmpty reports whether an optional stage has no selection.
// Non-optional stages are never empty in this sense.
func OptionalStageEmpty(stage domain.Stage, s store.State) bool {
	switch stage {
	case domain.StageAccessories:
		return AccessoriesEmpty(s)
	case domain.StageDevices:
		return DevicesEmpty(s)
	default:
		return false
	}
}

// DualWidthConflict reports a dual-screen layout on a wall that is too narrow for it
func DualWidthConflict(s store.State) bool {
	return s.Gaming.Mode == domain.GamingDual && s.Metrics.WidthMM < domain.DualScreenMinWidthMM
}

// GamingReady guards Gaming -> Devices
func GamingReady(s store.State) bool {
	return !DualWidthConflict(s)
}

// StylesReady guards Styles -> Summary
func StylesReady(s store.State) bool {
	return s.HasFinish()
}

// Acknowledged reports whether the skip of an optional stage was confirmed this visit
func Acknowledged(stage domain.Stage, s store.State) bool {
	return s.Confirm.Acknowledged[stage]
}

// Evaluate classifies the forward control of stage for the given state
func Evaluate(stage domain.Stage, s store.State) Verdict {
	switch stage {
	case domain.StageDimensions:
		if !DimensionsReady(s) {
			return Verdict{Kind: BlockedSilent}
		}
	case domain.StageAccessories, domain.StageDevices:
		if OptionalStageEmpty(stage, s) && !Acknowledged(stage, s) {
			return Verdict{
				Kind:    SoftConfirm,
				Message: fmt.Sprintf("No %s selected. Continue anyway?", nounFor(stage)),
			}
		}
	case domain.StageGaming:
		if DualWidthConflict(s) {
			return Verdict{Kind: BlockedExplained, Message: dualWidthMessage(s)}
		}
	case domain.StageStyles:
		if !StylesReady(s) {
			return Verdict{Kind: BlockedSilent}
		}
	case domain.StageSummary:
		return Verdict{Kind: BlockedSilent}
	}
	return Verdict{Kind: Open}
}

// Warnings returns every standing warning that holds for the state,
// independent of the stage currently shown.
func Warnings(s store.State) []Warning {
	var out []Warning
	if DualWidthConflict(s) {
		out = append(out, Warning{Stage: domain.StageGaming, Message: dualWidthMessage(s)})
	}
	return out
}

func dualWidthMessage(s store.State) string {
	return fmt.Sprintf("Dual screen layout needs a wall at least %d mm wide (current %d mm)",
		domain.DualScreenMinWidthMM, s.Metrics.WidthMM)
}

func nounFor(stage domain.Stage) string {
	if stage == domain.StageDevices {
		return "smart devices"
	}
	return "accessories"
}
