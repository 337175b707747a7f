// Package submission turns a finished selection into the transport payload
// and the descriptive metadata that goes with it. Both are pure projections.
package submission

import (
	"modwall/internal/catalog"
	"modwall/internal/domain"
	"modwall/internal/store"
)

// Project builds the transport payload for s. Id lists are sorted and never nil.
func Project(s store.State, cat *catalog.Projection) domain.Payload {
	p := domain.Payload{
		Dimensions: domain.PayloadDimensions{
			WidthMM:     s.Metrics.WidthMM,
			HeightMM:    s.Metrics.HeightMM,
			ModuleWidth: s.ModuleWidthMM,
			UsableWidth: s.Metrics.UsableWidthMM,
			SlotCount:   s.Metrics.SlotCount,
		},
		Accessories: domain.PayloadAccessories{
			TV:          s.Accessories.TV,
			Fireplace:   s.Accessories.Fireplace,
			Soundbar:    s.Accessories.Soundbar,
			ShelvingQty: s.Accessories.ShelvingQty,
		},
		Gaming: domain.PayloadGaming{
			Mode:    s.Gaming.Mode,
			Options: s.Gaming.Options.Sorted(),
		},
		Devices: s.Devices.Sorted(),
		Style: domain.PayloadStyle{
			Category: s.StyleCategory,
		},
	}

	if panel, ok := cat.Panel(s.StyleCategory, s.Finish); ok {
		p.Style.Finish = &domain.PayloadFinish{ID: panel.ID, Name: panel.Name}
	}
	return p
}
