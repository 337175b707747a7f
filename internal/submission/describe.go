package submission

import (
	"encoding/json"
	"fmt"
	"strings"

	"modwall/internal/catalog"
	"modwall/internal/domain"
	"modwall/internal/store"
)

const (
	schemaContext  = "https://schema.org"
	unitMillimetre = "MMT"
)

// Describe builds the title, description, keywords and schema.org summary
// for s. brand may be empty.
func Describe(s store.State, cat *catalog.Projection, brand string) domain.Metadata {
	category, hasCategory := cat.Category(s.StyleCategory)
	panel, hasPanel := cat.Panel(s.StyleCategory, s.Finish)

	title := fmt.Sprintf("Custom modular wall %s × %s m",
		metres(s.Metrics.WidthMM), metres(s.Metrics.HeightMM))
	if hasPanel {
		title += " in " + panel.Name
	}
	if brand != "" {
		title += " | " + brand
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d modules of %d mm across %d mm of usable width",
		s.Metrics.SlotCount, s.ModuleWidthMM, s.Metrics.UsableWidthMM))
	if acc := accessoryNames(s.Accessories); len(acc) > 0 {
		parts = append(parts, "with "+strings.Join(acc, ", "))
	}
	if s.Gaming.Mode != domain.GamingNone {
		parts = append(parts, fmt.Sprintf("%s-screen gaming setup", s.Gaming.Mode))
	}
	if n := len(s.Devices); n > 0 {
		parts = append(parts, fmt.Sprintf("%d smart %s", n, plural(n, "device", "devices")))
	}
	if hasPanel && hasCategory {
		parts = append(parts, fmt.Sprintf("finished in %s (%s)", panel.Name, category.Name))
	}
	description := strings.Join(parts, "; ") + "."

	keywords := []string{"modular wall", "media wall", "custom wall unit"}
	if hasCategory {
		keywords = append(keywords, strings.ToLower(category.Name)+" wall panels")
	}
	if hasPanel {
		keywords = append(keywords, panel.Name)
	}
	keywords = append(keywords, accessoryNames(s.Accessories)...)
	if s.Gaming.Mode != domain.GamingNone {
		keywords = append(keywords, "gaming wall")
	}
	if len(s.Devices) > 0 {
		keywords = append(keywords, "smart home")
	}

	ld := domain.LinkedData{
		Context:     schemaContext,
		Type:        "Product",
		Name:        title,
		Description: description,
		AdditionalProperty: []domain.PropertyValue{
			property("width", s.Metrics.WidthMM, unitMillimetre),
			property("height", s.Metrics.HeightMM, unitMillimetre),
			property("moduleWidth", s.ModuleWidthMM, unitMillimetre),
			property("usableWidth", s.Metrics.UsableWidthMM, unitMillimetre),
			property("slotCount", s.Metrics.SlotCount, ""),
			property("shelvingQty", s.Accessories.ShelvingQty, ""),
			property("gamingMode", string(s.Gaming.Mode), ""),
			property("devices", s.Devices.Sorted(), ""),
		},
	}
	if brand != "" {
		ld.Brand = &domain.LinkedBrand{Type: "Brand", Name: brand}
	}
	if hasCategory {
		ld.Category = category.Name
	}
	if hasPanel {
		ld.AdditionalProperty = append(ld.AdditionalProperty, property("finish", panel.ID, ""))
	}

	return domain.Metadata{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		LinkedData:  ld,
	}
}

// LinkedDataJSON renders the schema.org document for embedding in a page
func LinkedDataJSON(m domain.Metadata) (string, error) {
	data, err := json.MarshalIndent(m.LinkedData, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal linked data: %w", err)
	}
	return string(data), nil
}

func property(name string, value any, unit string) domain.PropertyValue {
	return domain.PropertyValue{Type: "PropertyValue", Name: name, Value: value, UnitCode: unit}
}

func accessoryNames(a domain.Accessories) []string {
	var out []string
	if a.TV {
		out = append(out, "TV")
	}
	if a.Fireplace {
		out = append(out, "fireplace")
	}
	if a.Soundbar {
		out = append(out, "soundbar")
	}
	if a.ShelvingQty > 0 {
		out = append(out, fmt.Sprintf("%d %s", a.ShelvingQty, plural(a.ShelvingQty, "shelf", "shelves")))
	}
	return out
}

// metres formats millimetres as metres rounded to one decimal
func metres(mm int) string {
	tenths := (mm + 50) / 100
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
