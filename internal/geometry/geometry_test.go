package geometry

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modwall/internal/domain"
)

func TestToCanonicalMM(t *testing.T) {
	tests := []struct {
		name string
		text string
		unit domain.Unit
		want int
	}{
		{"plain millimetres", "2400", domain.UnitMillimetre, 2400},
		{"metres", "3", domain.UnitMetre, 3000},
		{"decimal metres", "2.45", domain.UnitMetre, 2450},
		{"comma separator", "2,5", domain.UnitMetre, 2500},
		{"rounds millimetres", "1999.5", domain.UnitMillimetre, 2000},
		{"strips junk", " 3 200 mm", domain.UnitMillimetre, 3200},
		{"second separator dropped", "1.2.3", domain.UnitMetre, 1230},
		{"empty", "", domain.UnitMillimetre, 0},
		{"only separator", ".", domain.UnitMetre, 0},
		{"letters only", "abc", domain.UnitMillimetre, 0},
		{"minus sign ignored", "-500", domain.UnitMillimetre, 500},
		{"partial metre typing", "3.", domain.UnitMetre, 3000},
		{"capped", "99999999999999999999", domain.UnitMillimetre, domain.MaxEntryMM},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCanonicalMM(tt.text, tt.unit))
		})
	}
}

func TestToCanonicalMMIdempotentOnOwnOutput(t *testing.T) {
	inputs := []struct {
		text string
		unit domain.Unit
	}{
		{"3", domain.UnitMetre}, {"2.4567", domain.UnitMetre}, {"1234.6", domain.UnitMillimetre},
		{"x", domain.UnitMillimetre}, {"0.0004", domain.UnitMetre}, {"1e9", domain.UnitMetre},
	}
	for _, in := range inputs {
		first := ToCanonicalMM(in.text, in.unit)
		again := ToCanonicalMM(strconv.Itoa(first), domain.UnitMillimetre)
		assert.Equal(t, first, again, "input %q %s", in.text, in.unit)
		assert.Equal(t, first, ToCanonicalMM(in.text, in.unit), "deterministic")
	}
}

func TestUsableWidth(t *testing.T) {
	assert.Equal(t, 0, UsableWidth(0))
	assert.Equal(t, 0, UsableWidth(domain.ClearanceMM))
	assert.Equal(t, 1, UsableWidth(domain.ClearanceMM+1))
	assert.Equal(t, 2900, UsableWidth(3000))
}

func TestSlotCountNeverNegative(t *testing.T) {
	for width := 0; width <= 5000; width += 37 {
		for _, module := range domain.ModuleWidthsMM {
			got := SlotCount(UsableWidth(width), module)
			require.GreaterOrEqual(t, got, 0)
			if width <= domain.ClearanceMM {
				require.Zero(t, got, "width %d", width)
			}
		}
	}
}

func TestSlotCountUnsetModule(t *testing.T) {
	assert.Zero(t, SlotCount(2900, 0))
	assert.Zero(t, SlotCount(-5, 600))
	assert.Equal(t, 4, SlotCount(2900, 600))
}

func TestClampHeight(t *testing.T) {
	assert.Equal(t, domain.HeightMinMM, ClampHeight(0))
	assert.Equal(t, domain.HeightMaxMM, ClampHeight(10_000))
	assert.Equal(t, 2400, ClampHeight(2400))
}

func TestDeriveScenarioA(t *testing.T) {
	m := Derive(
		domain.Length{Raw: "3", Unit: domain.UnitMetre},
		domain.Length{Raw: "2400", Unit: domain.UnitMillimetre},
		1000,
	)

	assert.Equal(t, domain.Metrics{WidthMM: 3000, HeightMM: 2400, UsableWidthMM: 2900, SlotCount: 2}, m)
}

func TestFormatLengthRoundTrips(t *testing.T) {
	assert.Equal(t, "3.2", FormatLength(3200, domain.UnitMetre))
	assert.Equal(t, "3200", FormatLength(3200, domain.UnitMillimetre))
	assert.Empty(t, FormatLength(0, domain.UnitMetre))

	for _, mm := range []int{1, 450, 2400, 3050} {
		for _, unit := range []domain.Unit{domain.UnitMetre, domain.UnitMillimetre} {
			assert.Equal(t, mm, ToCanonicalMM(FormatLength(mm, unit), unit))
		}
	}
}
