// Package geometry converts entered lengths to canonical millimetres and
// works out how many modules fit a wall.
package geometry

import (
	"math"
	"strconv"
	"strings"

	"modwall/internal/domain"
)

// ToCanonicalMM parses free text into whole millimetres.
// Everything except digits and the first decimal separator is dropped, so
// partial input such as "2,4 m" or "30cm" still parses. Unparsable input is 0.
func ToCanonicalMM(text string, unit domain.Unit) int {
	cleaned := sanitizeDecimal(text)
	if cleaned == "" || cleaned == "." {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	if unit == domain.UnitMetre {
		value *= 1000
	}
	if value >= domain.MaxEntryMM {
		return domain.MaxEntryMM
	}
	return int(math.Round(value))
}

func sanitizeDecimal(text string) string {
	var b strings.Builder
	seenSeparator := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenSeparator:
			seenSeparator = true
			b.WriteByte('.')
		}
	}
	return b.String()
}

// UsableWidth is the span left for modules after the structural clearance
func UsableWidth(widthMM int) int {
	if widthMM <= domain.ClearanceMM {
		return 0
	}
	return widthMM - domain.ClearanceMM
}

// SlotCount is how many whole modules fit the usable width
func SlotCount(usableMM, moduleWidthMM int) int {
	if moduleWidthMM <= 0 || usableMM <= 0 {
		return 0
	}
	return usableMM / moduleWidthMM
}

// ClampHeight pulls mm into the allowed height range
func ClampHeight(mm int) int {
	if mm < domain.HeightMinMM {
		return domain.HeightMinMM
	}
	if mm > domain.HeightMaxMM {
		return domain.HeightMaxMM
	}
	return mm
}

// Derive computes every derived dimension in one pass
func Derive(width, height domain.Length, moduleWidthMM int) domain.Metrics {
	widthMM := ToCanonicalMM(width.Raw, width.Unit)
	usable := UsableWidth(widthMM)
	return domain.Metrics{
		WidthMM:       widthMM,
		HeightMM:      ClampHeight(ToCanonicalMM(height.Raw, height.Unit)),
		UsableWidthMM: usable,
		SlotCount:     SlotCount(usable, moduleWidthMM),
	}
}

// FormatLength renders mm the way a user would type it in unit.
// Non-positive lengths render as empty text.
func FormatLength(mm int, unit domain.Unit) string {
	if mm <= 0 {
		return ""
	}
	if unit == domain.UnitMetre {
		return strconv.FormatFloat(float64(mm)/1000, 'f', -1, 64)
	}
	return strconv.Itoa(mm)
}
