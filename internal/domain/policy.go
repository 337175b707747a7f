package domain

// Engineering policy. These are not user-configurable.
const (
	ClearanceMM          = 100
	HeightMinMM          = 1800
	HeightMaxMM          = 3000
	HeightDefaultMM      = 2400
	DualScreenMinWidthMM = 3000
	ShelvingMaxQty       = 6

	// MaxEntryMM caps parsed lengths so absurd input cannot overflow an int
	MaxEntryMM = 1_000_000
)

// ModuleWidthsMM is the enumerated set of module widths, ascending
var ModuleWidthsMM = []int{400, 600, 800, 1000, 1100, 1200}

// IsModuleWidth reports whether mm is one of the enumerated module widths
func IsModuleWidth(mm int) bool {
	for _, w := range ModuleWidthsMM {
		if w == mm {
			return true
		}
	}
	return false
}
