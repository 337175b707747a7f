// Package catalog exposes read-only views over the finish, device and
// gaming-option catalogs supplied at start-up.
package catalog

import "modwall/internal/domain"

// Provider supplies catalog data. Implementations must not change what they
// return once the configurator has started.
type Provider interface {
	Categories() []domain.Category
	Devices() []domain.Device
	GamingOptions() []domain.GamingOption
}

// Entry is the id/label projection of a category
type Entry struct {
	ID    string
	Label string
}

// Projection answers lookups against a provider without ever mutating it
type Projection struct {
	categories []domain.Category
	byCategory map[string]int
	devices    []domain.Device
	options    []domain.GamingOption
}

// NewProjection snapshots the provider once
func NewProjection(p Provider) *Projection {
	proj := &Projection{
		categories: cloneCategories(p.Categories()),
		byCategory: make(map[string]int),
		devices:    append([]domain.Device(nil), p.Devices()...),
		options:    append([]domain.GamingOption(nil), p.GamingOptions()...),
	}
	for i, c := range proj.categories {
		if _, dup := proj.byCategory[c.ID]; !dup {
			proj.byCategory[c.ID] = i
		}
	}
	return proj
}

// CategoriesList returns the categories in supplied order
func (p *Projection) CategoriesList() []Entry {
	out := make([]Entry, 0, len(p.categories))
	for _, c := range p.categories {
		out = append(out, Entry{ID: c.ID, Label: c.Name})
	}
	return out
}

// Category returns the full category record
func (p *Projection) Category(id string) (domain.Category, bool) {
	i, ok := p.byCategory[id]
	if !ok {
		return domain.Category{}, false
	}
	c := p.categories[i]
	c.Panels = append([]domain.Panel(nil), c.Panels...)
	return c, true
}

// HasCategory reports whether id names a known category
func (p *Projection) HasCategory(id string) bool {
	_, ok := p.byCategory[id]
	return ok
}

// PanelsFor returns the ordered finishes of a category, empty if unknown
func (p *Projection) PanelsFor(categoryID string) []domain.Panel {
	i, ok := p.byCategory[categoryID]
	if !ok {
		return []domain.Panel{}
	}
	return append([]domain.Panel{}, p.categories[i].Panels...)
}

// InStockPanelsFor filters PanelsFor down to finishes with stock left
func (p *Projection) InStockPanelsFor(categoryID string) []domain.Panel {
	var out []domain.Panel
	for _, panel := range p.PanelsFor(categoryID) {
		if panel.StockLevel > 0 {
			out = append(out, panel)
		}
	}
	return out
}

// Panel looks up one finish inside a category
func (p *Projection) Panel(categoryID, panelID string) (domain.Panel, bool) {
	i, ok := p.byCategory[categoryID]
	if !ok {
		return domain.Panel{}, false
	}
	for _, panel := range p.categories[i].Panels {
		if panel.ID == panelID {
			return panel, true
		}
	}
	return domain.Panel{}, false
}

// Devices returns the device catalog in supplied order
func (p *Projection) Devices() []domain.Device {
	return append([]domain.Device(nil), p.devices...)
}

// Device looks up a device by id
func (p *Projection) Device(id string) (domain.Device, bool) {
	for _, d := range p.devices {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Device{}, false
}

// HasDevice reports whether id names a known device
func (p *Projection) HasDevice(id string) bool {
	_, ok := p.Device(id)
	return ok
}

// GamingOptions returns the gaming options in supplied order
func (p *Projection) GamingOptions() []domain.GamingOption {
	return append([]domain.GamingOption(nil), p.options...)
}

// GamingOption looks up an option by id
func (p *Projection) GamingOption(id string) (domain.GamingOption, bool) {
	for _, o := range p.options {
		if o.ID == id {
			return o, true
		}
	}
	return domain.GamingOption{}, false
}

// HasGamingOption reports whether id names a known gaming option
func (p *Projection) HasGamingOption(id string) bool {
	_, ok := p.GamingOption(id)
	return ok
}

func cloneCategories(in []domain.Category) []domain.Category {
	out := make([]domain.Category, len(in))
	for i, c := range in {
		out[i] = c
		out[i].Panels = append([]domain.Panel(nil), c.Panels...)
	}
	return out
}
