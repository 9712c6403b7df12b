package filter

import (
	"testing"

	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureEntries() []catalog.Entry {
	return []catalog.Entry{
		{
			SKU:      "DAH-JOW-001",
			Name:     "Jowey Linda",
			Price:    decimal.NewFromFloat(7.5),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryBall,
			Colors:   []string{"orange"},
		},
		{
			SKU:      "DAH-BRA-002",
			Name:     "Bracken Rose",
			Price:    decimal.NewFromFloat(8),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"pink", "rose"},
		},
		{
			SKU:      "DAH-CAL-003",
			Name:     "Café au Lait Mini",
			Price:    decimal.NewFromFloat(9.5),
			Stock:    enums.StockStatusSoldOut,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"cream", "pink", "rose"},
		},
		{
			SKU:      "DAH-FIX-004",
			Name:     "Fixture",
			Price:    decimal.NewFromFloat(6),
			Stock:    enums.StockStatusAvailable,
			Category: enums.DahliaCategoryDecorative,
			Colors:   []string{"pink", "white"},
		},
	}
}

func TestEmptyStateMatchesEverything(t *testing.T) {
	result := NewState().Apply(fixtureEntries())
	assert.Equal(t, 4, result.Count)
	assert.False(t, result.NoResults)
}

func TestCategorySelection(t *testing.T) {
	state := NewState().ToggleCategory("ball")
	result := state.Apply(fixtureEntries())
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "DAH-JOW-001", result.Entries[0].SKU)
}

func TestColorSelectionUnionsWithinDimension(t *testing.T) {
	state := NewState().ToggleColor("pink")
	result := state.Apply(fixtureEntries())
	assert.Equal(t, 3, result.Count)

	// Adding a second color can only grow the match within the dimension.
	state = state.ToggleColor("orange")
	result = state.Apply(fixtureEntries())
	assert.Equal(t, 4, result.Count)
}

func TestDimensionsIntersect(t *testing.T) {
	state := NewState().ToggleCategory("ball").ToggleColor("pink")
	result := state.Apply(fixtureEntries())
	assert.Equal(t, 0, result.Count)
	assert.True(t, result.NoResults)
}

func TestInStockOnly(t *testing.T) {
	state := NewState().ToggleInStock()
	result := state.Apply(fixtureEntries())
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "DAH-FIX-004", result.Entries[0].SKU)
}

func TestUnknownSelectionsMatchNothing(t *testing.T) {
	state := NewState().ToggleCategory("rose-garden")
	result := state.Apply(fixtureEntries())
	assert.True(t, result.NoResults)

	state = NewState().ToggleColor("chartreuse")
	assert.Equal(t, 0, state.Apply(fixtureEntries()).Count)
}

func TestToggleRoundTripRestoresUnconstrained(t *testing.T) {
	base := NewState().Apply(fixtureEntries())
	state := NewState().ToggleCategory("ball")
	require.Equal(t, 1, state.Apply(fixtureEntries()).Count)

	state = state.ToggleCategory("ball")
	assert.Equal(t, base.Count, state.Apply(fixtureEntries()).Count)
}

func TestSelectionsNeverGrowTheVisibleSetAcrossDimensions(t *testing.T) {
	entries := fixtureEntries()
	state := NewState()
	prev := state.Apply(entries).Count
	for _, step := range []func(State) State{
		func(s State) State { return s.ToggleCategory("decorative") },
		func(s State) State { return s.ToggleColor("pink") },
		func(s State) State { return s.ToggleInStock() },
	} {
		state = step(state)
		count := state.Apply(entries).Count
		assert.LessOrEqual(t, count, prev)
		prev = count
	}
}

func TestApplyPreservesCatalogOrder(t *testing.T) {
	state := NewState().ToggleColor("pink")
	result := state.Apply(fixtureEntries())
	require.Equal(t, 3, result.Count)
	assert.Equal(t, "DAH-BRA-002", result.Entries[0].SKU)
	assert.Equal(t, "DAH-CAL-003", result.Entries[1].SKU)
	assert.Equal(t, "DAH-FIX-004", result.Entries[2].SKU)
}

func TestAtMostOneGroupOpen(t *testing.T) {
	state := NewState()
	assert.Equal(t, enums.FilterGroupNone, state.OpenGroup())

	state = state.Open(enums.FilterGroupCategory)
	assert.Equal(t, enums.FilterGroupCategory, state.OpenGroup())

	// Opening the other group closes the first.
	state = state.Open(enums.FilterGroupColor)
	assert.Equal(t, enums.FilterGroupColor, state.OpenGroup())

	state = state.CloseAll()
	assert.Equal(t, enums.FilterGroupNone, state.OpenGroup())
}

func TestOpenRejectsUnknownGroup(t *testing.T) {
	state := NewState().Open(enums.FilterGroup("price"))
	assert.Equal(t, enums.FilterGroupNone, state.OpenGroup())
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	base := NewState().ToggleCategory("ball")
	_ = base.ToggleCategory("decorative")
	_ = base.ToggleColor("pink")
	assert.Equal(t, []string{"ball"}, base.SelectedCategories())
	assert.Nil(t, base.SelectedColors())
}

func TestSummaryLabels(t *testing.T) {
	state := NewState()
	assert.Equal(t, "All Categories", state.SummaryLabel(enums.FilterGroupCategory))
	assert.Equal(t, "All Colors", state.SummaryLabel(enums.FilterGroupColor))

	state = state.ToggleCategory("waterlily")
	assert.Equal(t, "Waterlily", state.SummaryLabel(enums.FilterGroupCategory))

	state = state.ToggleCategory("ball")
	assert.Equal(t, "2 selected", state.SummaryLabel(enums.FilterGroupCategory))

	state = state.ToggleColor("pink")
	assert.Equal(t, "Pink", state.SummaryLabel(enums.FilterGroupColor))

	state = state.ToggleColor("rose").ToggleColor("cream")
	assert.Equal(t, "3 selected", state.SummaryLabel(enums.FilterGroupColor))
}

func TestNewStateFromSelectionsDeduplicates(t *testing.T) {
	state := NewStateFromSelections(
		[]string{"ball", "ball", "decorative"},
		[]string{"pink", "pink"},
		true,
	)
	assert.Equal(t, []string{"ball", "decorative"}, state.SelectedCategories())
	assert.Equal(t, []string{"pink"}, state.SelectedColors())
	assert.True(t, state.InStockOnly())
}
