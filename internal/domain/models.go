package domain

import "sort"

// Unit is the unit a length was entered in
type Unit string

const (
	UnitMillimetre Unit = "mm"
	UnitMetre      Unit = "m"
)

// Toggle returns the other supported unit
func (u Unit) Toggle() Unit {
	if u == UnitMetre {
		return UnitMillimetre
	}
	return UnitMetre
}

// Length is a length as typed by the user, before normalization
type Length struct {
	Raw  string
	Unit Unit
}

// Metrics holds the derived canonical dimensions
type Metrics struct {
	WidthMM       int
	HeightMM      int
	UsableWidthMM int
	SlotCount     int
}

// Accessories represents the accessory choices
type Accessories struct {
	TV          bool
	Fireplace   bool
	Soundbar    bool
	ShelvingQty int // always within [0, ShelvingMaxQty]
}

// IsEmpty reports whether nothing has been chosen
func (a Accessories) IsEmpty() bool {
	return !a.TV && !a.Fireplace && !a.Soundbar && a.ShelvingQty == 0
}

// GamingMode is the gaming screen layout
type GamingMode string

const (
	GamingNone   GamingMode = "none"
	GamingSingle GamingMode = "single"
	GamingDual   GamingMode = "dual"
)

// Valid reports whether the mode is one of the known layouts
func (m GamingMode) Valid() bool {
	switch m {
	case GamingNone, GamingSingle, GamingDual:
		return true
	}
	return false
}

// Gaming represents the gaming stage choices
type Gaming struct {
	Mode    GamingMode
	Options Set
}

// Set is a set of catalog identifiers
type Set map[string]bool

// Has reports membership
func (s Set) Has(id string) bool {
	return s[id]
}

// Sorted returns the members in ascending order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id, ok := range s {
		if ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id, ok := range s {
		if ok {
			out[id] = true
		}
	}
	return out
}

// Panel is a concrete finish belonging to one style category
type Panel struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	ImageRef    string `yaml:"image_ref" json:"imageRef"`
	Description string `yaml:"description" json:"description"`
	StockLevel  int    `yaml:"stock_level" json:"stockLevel"`
}

// Category is a finish family
type Category struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Panels      []Panel `yaml:"panels" json:"panels"`
}

// Device is a smart device that can be built into the wall
type Device struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

// GamingOption is an optional gaming feature
type GamingOption struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}
