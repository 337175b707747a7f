package store

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modwall/internal/catalog"
	"modwall/internal/domain"
)

func newTestStore() *Store {
	return New(catalog.NewProjection(catalog.Default()))
}

func TestDefaults(t *testing.T) {
	s := newTestStore().Snapshot()

	assert.Equal(t, domain.HeightDefaultMM, s.Metrics.HeightMM)
	assert.Zero(t, s.Metrics.WidthMM)
	assert.Zero(t, s.ModuleWidthMM)
	assert.Equal(t, domain.GamingNone, s.Gaming.Mode)
	assert.True(t, s.Accessories.IsEmpty())
	assert.False(t, s.HasFinish())
}

func TestScenarioADerivedFieldsAreImmediate(t *testing.T) {
	st := newTestStore()

	st.SetWidth("3", domain.UnitMetre)
	st.SetHeight("2400", domain.UnitMillimetre)
	s := st.SetModuleWidth(1000)

	assert.Equal(t, 3000, s.Metrics.WidthMM)
	assert.Equal(t, 2900, s.Metrics.UsableWidthMM)
	assert.Equal(t, 2, s.Metrics.SlotCount)
	assert.Equal(t, s, st.Snapshot())
}

func TestModuleWidthOutsideSetIsUnset(t *testing.T) {
	st := newTestStore()
	st.SetWidth("3000", domain.UnitMillimetre)

	s := st.SetModuleWidth(750)
	assert.Zero(t, s.ModuleWidthMM)
	assert.Zero(t, s.Metrics.SlotCount)
}

func TestHeightStaysInRangeUnderAnySequence(t *testing.T) {
	st := newTestStore()
	rng := rand.New(rand.NewSource(7))
	inputs := []string{"", "0", "5", "abc", "1799", "1800", "2400", "3000", "3001", "99999", "2.5", "1,9"}
	units := []domain.Unit{domain.UnitMillimetre, domain.UnitMetre}

	for i := 0; i < 500; i++ {
		var s State
		switch rng.Intn(4) {
		case 0:
			s = st.SetHeight(inputs[rng.Intn(len(inputs))], units[rng.Intn(2)])
		case 1:
			s = st.SetWidth(inputs[rng.Intn(len(inputs))], units[rng.Intn(2)])
		case 2:
			s = st.SetModuleWidth(domain.ModuleWidthsMM[rng.Intn(len(domain.ModuleWidthsMM))])
		default:
			s = st.ToggleTV()
		}
		require.GreaterOrEqual(t, s.Metrics.HeightMM, domain.HeightMinMM)
		require.LessOrEqual(t, s.Metrics.HeightMM, domain.HeightMaxMM)
	}
}

func TestShelvingSaturates(t *testing.T) {
	st := newTestStore()

	for i := 0; i < domain.ShelvingMaxQty; i++ {
		st.IncrementShelving()
	}
	assert.Equal(t, 6, st.IncrementShelving().Accessories.ShelvingQty, "stays at max")

	for i := 0; i < domain.ShelvingMaxQty; i++ {
		st.DecrementShelving()
	}
	assert.Equal(t, 0, st.DecrementShelving().Accessories.ShelvingQty, "stays at zero")
}

func TestScenarioDCategorySwitchClearsFinish(t *testing.T) {
	st := newTestStore()

	var seen []State
	st.OnChange(func(s State) { seen = append(seen, s) })

	st.SelectCategory("wood")
	s := st.SelectFinish("T9016")
	require.Equal(t, "T9016", s.Finish)

	s = st.SelectCategory("stone")
	assert.Equal(t, "stone", s.StyleCategory)
	assert.Empty(t, s.Finish)

	for _, observed := range seen {
		if observed.Finish != "" {
			_, ok := st.Catalog().Panel(observed.StyleCategory, observed.Finish)
			assert.True(t, ok, "no mismatched state is ever observed")
		}
	}
}

func TestFinishOutsideCategoryIsCleared(t *testing.T) {
	st := newTestStore()

	assert.Empty(t, st.SelectFinish("T9016").Finish, "no category chosen yet")

	st.SelectCategory("stone")
	assert.Empty(t, st.SelectFinish("T9016").Finish)
	assert.Equal(t, "CAL-GLD", st.SelectFinish("CAL-GLD").Finish)
}

func TestReselectingSameCategoryKeepsFinish(t *testing.T) {
	st := newTestStore()
	st.SelectCategory("wood")
	st.SelectFinish("OAK-NAT")

	assert.Equal(t, "OAK-NAT", st.SelectCategory("wood").Finish)
}

func TestUnknownCategoryClearsSelection(t *testing.T) {
	st := newTestStore()
	st.SelectCategory("wood")
	st.SelectFinish("OAK-NAT")

	s := st.SelectCategory("glass")
	assert.Empty(t, s.StyleCategory)
	assert.Empty(t, s.Finish)
}

func TestGamingOptionsNeedAMode(t *testing.T) {
	st := newTestStore()

	assert.Empty(t, st.ToggleGamingOption("rgb-lighting").Gaming.Options)

	st.SetGamingMode(domain.GamingSingle)
	s := st.ToggleGamingOption("rgb-lighting")
	assert.True(t, s.Gaming.Options.Has("rgb-lighting"))

	s = st.ToggleGamingOption("laser-show")
	assert.Equal(t, []string{"rgb-lighting"}, s.Gaming.Options.Sorted())

	s = st.SetGamingMode(domain.GamingNone)
	assert.Empty(t, s.Gaming.Options)
}

func TestInvalidGamingModeIgnored(t *testing.T) {
	st := newTestStore()
	st.SetGamingMode(domain.GamingDual)

	assert.Equal(t, domain.GamingDual, st.SetGamingMode("quad").Gaming.Mode)
}

func TestDualModeSurvivesWidthReduction(t *testing.T) {
	st := newTestStore()
	st.SetWidth("3200", domain.UnitMillimetre)
	st.SetGamingMode(domain.GamingDual)

	s := st.SetWidth("2400", domain.UnitMillimetre)
	assert.Equal(t, domain.GamingDual, s.Gaming.Mode)
}

func TestDevicesToggleKnownOnly(t *testing.T) {
	st := newTestStore()

	st.ToggleDevice("hub")
	st.ToggleDevice("toaster")
	assert.Equal(t, []string{"hub"}, st.Snapshot().Devices.Sorted())

	assert.Empty(t, st.ToggleDevice("hub").Devices)
	st.ToggleDevice("hub")
	assert.Empty(t, st.UpdateDevices(DevicesDelta{Clear: true}).Devices)
}

func TestSnapshotIsIsolated(t *testing.T) {
	st := newTestStore()
	st.ToggleDevice("hub")

	snap := st.Snapshot()
	snap.Devices["smart-plug"] = true

	assert.False(t, st.Snapshot().Devices.Has("smart-plug"))
}

func TestConfirmFlagsOnlyForOptionalStages(t *testing.T) {
	st := newTestStore()

	s := st.SetConfirm(domain.StageAccessories, true, false)
	assert.True(t, s.Confirm.Pending[domain.StageAccessories])

	s = st.SetConfirm(domain.StageGaming, true, true)
	assert.False(t, s.Confirm.Pending[domain.StageGaming])

	s = st.SetConfirm(domain.StageAccessories, false, true)
	assert.False(t, s.Confirm.Pending[domain.StageAccessories])
	assert.True(t, s.Confirm.Acknowledged[domain.StageAccessories])
}

func TestResetRestoresDefaults(t *testing.T) {
	st := newTestStore()
	st.SetWidth("4", domain.UnitMetre)
	st.ToggleTV()
	st.SelectCategory("wood")

	assert.Equal(t, NewState(), st.Reset())
}
