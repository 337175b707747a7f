package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"modwall/internal/domain"
)

// ErrEmptyCatalog is returned when a catalog file has no categories
var ErrEmptyCatalog = errors.New("catalog has no style categories")

// fileFormat is the on-disk YAML layout
type fileFormat struct {
	Categories    []domain.Category     `yaml:"categories"`
	Devices       []domain.Device       `yaml:"devices"`
	GamingOptions []domain.GamingOption `yaml:"gaming_options"`
}

// LoadFile reads a YAML catalog from path
func LoadFile(path string) (*MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*MemoryCatalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validate(f); err != nil {
		return nil, err
	}
	return NewMemoryCatalog(f.Categories, f.Devices, f.GamingOptions), nil
}

func validate(f fileFormat) error {
	if len(f.Categories) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool)
	for _, c := range f.Categories {
		if c.ID == "" {
			return fmt.Errorf("category %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true

		panels := make(map[string]bool)
		for _, p := range c.Panels {
			if p.ID == "" {
				return fmt.Errorf("category %q has a panel without id", c.ID)
			}
			if panels[p.ID] {
				return fmt.Errorf("duplicate panel id %q in category %q", p.ID, c.ID)
			}
			panels[p.ID] = true
		}
	}

	devices := make(map[string]bool)
	for _, d := range f.Devices {
		if d.ID == "" || devices[d.ID] {
			return fmt.Errorf("invalid or duplicate device id %q", d.ID)
		}
		devices[d.ID] = true
	}

	options := make(map[string]bool)
	for _, o := range f.GamingOptions {
		if o.ID == "" || options[o.ID] {
			return fmt.Errorf("invalid or duplicate gaming option id %q", o.ID)
		}
		options[o.ID] = true
	}
	return nil
}

// Default returns the catalog compiled into the binary
func Default() *MemoryCatalog {
	return NewMemoryCatalog(defaultCategories, defaultDevices, defaultGamingOptions)
}

var defaultCategories = []domain.Category{
	{
		ID:          "wood",
		Name:        "Wood",
		Description: "Warm veneers and painted wood fronts",
		Panels: []domain.Panel{
			{ID: "T9016", Name: "Traffic White Lacquer", ImageRef: "wood/t9016.jpg", Description: "Smooth satin white on MDF core", StockLevel: 40},
			{ID: "OAK-NAT", Name: "Natural Oak", ImageRef: "wood/oak-natural.jpg", Description: "Rift-cut oak veneer, matt oil", StockLevel: 12},
			{ID: "WAL-SMK", Name: "Smoked Walnut", ImageRef: "wood/walnut-smoked.jpg", Description: "Book-matched walnut veneer", StockLevel: 0},
		},
	},
	{
		ID:          "stone",
		Name:        "Stone",
		Description: "Sintered stone and natural slab looks",
		Panels: []domain.Panel{
			{ID: "CAL-GLD", Name: "Calacatta Gold", ImageRef: "stone/calacatta.jpg", Description: "White marble look with gold veining", StockLevel: 8},
			{ID: "NER-MAR", Name: "Nero Marquina", ImageRef: "stone/nero.jpg", Description: "Black marble look, honed", StockLevel: 5},
		},
	},
	{
		ID:          "concrete",
		Name:        "Concrete",
		Description: "Mineral plaster and microcement finishes",
		Panels: []domain.Panel{
			{ID: "MIC-GRY", Name: "Microcement Grey", ImageRef: "concrete/micro-grey.jpg", Description: "Hand-troweled mid grey", StockLevel: 20},
			{ID: "MIC-SND", Name: "Microcement Sand", ImageRef: "concrete/micro-sand.jpg", Description: "Hand-troweled warm sand", StockLevel: 3},
		},
	},
	{
		ID:          "solid",
		Name:        "Solid Colour",
		Description: "Lacquered fronts in RAL colours",
		Panels: []domain.Panel{
			{ID: "RAL7016", Name: "Anthracite Grey", ImageRef: "solid/ral7016.jpg", Description: "Deep matt anthracite", StockLevel: 25},
			{ID: "RAL6003", Name: "Olive Green", ImageRef: "solid/ral6003.jpg", Description: "Matt olive", StockLevel: 9},
		},
	},
}

var defaultDevices = []domain.Device{
	{ID: "smart-speaker", Name: "Smart speaker", Description: "Voice assistant speaker recessed into a module", Icon: "speaker"},
	{ID: "smart-lighting", Name: "Smart lighting", Description: "Dimmable LED strips behind the panels", Icon: "bulb"},
	{ID: "motion-sensor", Name: "Motion sensor", Description: "Presence detection for lighting scenes", Icon: "motion"},
	{ID: "climate-sensor", Name: "Climate sensor", Description: "Temperature and humidity monitoring", Icon: "thermometer"},
	{ID: "smart-plug", Name: "Smart sockets", Description: "Switchable sockets inside the TV module", Icon: "plug"},
	{ID: "hub", Name: "Home hub", Description: "Zigbee/Thread hub hidden in a service slot", Icon: "hub"},
}

var defaultGamingOptions = []domain.GamingOption{
	{ID: "console-shelf", Name: "Vented console shelf"},
	{ID: "cable-management", Name: "Cable management channel"},
	{ID: "rgb-lighting", Name: "RGB accent lighting"},
	{ID: "controller-dock", Name: "Controller charging dock"},
	{ID: "headset-hook", Name: "Headset hook"},
}
