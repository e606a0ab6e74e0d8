package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grptank/internal/storage"
)

func TestCalculateFittingsPartNumberForm(t *testing.T) {
	res, err := CalculateFittings([]storage.FittingItem{
		{FittingType: "WSD-050A", Quantity: 2},
		{FittingType: "WOF-080A", Quantity: 1},
		{FittingType: "WOT-100A", Quantity: 1},
	})
	assert.NoError(t, err)

	assert.Equal(t, 2, findQty(res.Items, "WSD-050A"))
	assert.Equal(t, 1, findQty(res.Items, "WOF-080A"))
	assert.Equal(t, 1, findQty(res.Items, "WOT-100A"))
}

func TestCalculateFittingsFamilyCode(t *testing.T) {
	res, err := CalculateFittings([]storage.FittingItem{
		{FittingType: "SF", Quantity: 1},
		{FittingType: "OUT", Quantity: 2},
	})
	assert.NoError(t, err)

	// Bare family codes take the default 50 mm size.
	assert.Equal(t, 1, findQty(res.Items, "WSF-050A"))
	assert.Equal(t, 2, findQty(res.Items, "WOT-050A"))
}

func TestCalculateFittingsMergesDuplicates(t *testing.T) {
	res, err := CalculateFittings([]storage.FittingItem{
		{FittingType: "WSD-050A", Quantity: 2, Position: "front"},
		{FittingType: "WSD-050A", Quantity: 3, Position: "rear"},
	})
	assert.NoError(t, err)

	assert.Len(t, res.Items, 1)
	assert.Equal(t, 5, findQty(res.Items, "WSD-050A"))
}

func TestCalculateFittingsUnknownFallsBack(t *testing.T) {
	res, err := CalculateFittings([]storage.FittingItem{
		{FittingType: "mystery", Quantity: 1},
	})
	assert.NoError(t, err)

	assert.Equal(t, 1, findQty(res.Items, "WSD-050A"))
}

func TestCalculateFittingsSkipsNonPositive(t *testing.T) {
	res, err := CalculateFittings([]storage.FittingItem{
		{FittingType: "WSD-050A", Quantity: 0},
		{FittingType: "WFL-100A", Quantity: -2},
	})
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestAvailableFittings(t *testing.T) {
	opts := AvailableFittings()
	assert.NotEmpty(t, opts)

	// Family order is stable and part numbers are zero padded.
	assert.Equal(t, "SF", opts[0].Type)
	assert.Equal(t, "WSF-065A", opts[0].PartNo)

	for _, o := range opts {
		assert.Len(t, o.PartNo, 8, o.PartNo)
	}
}
