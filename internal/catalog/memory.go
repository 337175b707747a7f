package catalog

import "modwall/internal/domain"

// MemoryCatalog is an in-memory implementation of Provider
type MemoryCatalog struct {
	categories []domain.Category
	devices    []domain.Device
	options    []domain.GamingOption
}

// NewMemoryCatalog creates a catalog from already loaded data
func NewMemoryCatalog(categories []domain.Category, devices []domain.Device, options []domain.GamingOption) *MemoryCatalog {
	return &MemoryCatalog{
		categories: cloneCategories(categories),
		devices:    append([]domain.Device(nil), devices...),
		options:    append([]domain.GamingOption(nil), options...),
	}
}

// Categories returns a copy to prevent external modification
func (c *MemoryCatalog) Categories() []domain.Category {
	return cloneCategories(c.categories)
}

func (c *MemoryCatalog) Devices() []domain.Device {
	return append([]domain.Device(nil), c.devices...)
}

func (c *MemoryCatalog) GamingOptions() []domain.GamingOption {
	return append([]domain.GamingOption(nil), c.options...)
}
