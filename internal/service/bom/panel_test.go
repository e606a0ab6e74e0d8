package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePanelsSimpleTank(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculatePanels(PanelInput{Geo: g}, DefaultTables())
	assert.NoError(t, err)

	assert.Equal(t, 1, findQty(res.Items, "MF00M"))
	assert.Equal(t, 24, findQty(res.Items, "RF00M"))
	assert.Equal(t, 24, findQty(res.Items, "BF20M"))
	assert.Equal(t, 1, findQty(res.Items, "DN20M"))
	assert.Equal(t, 20, findQty(res.Items, "SL20S"))

	// 2 m walls are single tier: no mid or low rows.
	assert.False(t, hasPart(res.Items, "SF30M"))
	assert.Equal(t, 80, res.TapeSubtotal)
}

func TestCalculatePanelsThreeTierWalls(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 3)

	res, err := CalculatePanels(PanelInput{Geo: g}, DefaultTables())
	assert.NoError(t, err)

	assert.Equal(t, 20, findQty(res.Items, "SL20T"))
	assert.Equal(t, 20, findQty(res.Items, "SF30L"))
	assert.Equal(t, 24, findQty(res.Items, "BF30M"))
	assert.False(t, hasPart(res.Items, "SF30M"))
}

func TestCalculatePanelsFourTierWalls(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 4)

	res, err := CalculatePanels(PanelInput{Geo: g}, DefaultTables())
	assert.NoError(t, err)

	// From 4 m up a mid row appears between top and low.
	assert.Equal(t, 20, findQty(res.Items, "SL20T"))
	assert.Equal(t, 20, findQty(res.Items, "SF30M"))
	assert.Equal(t, 20, findQty(res.Items, "SF40L"))
}

func TestCalculatePanelsPartitionedTank(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{4, 2, 2, 0}, 3)

	res, err := CalculatePanels(PanelInput{Geo: g}, DefaultTables())
	assert.NoError(t, err)

	// One manhole and one drain per compartment.
	assert.Equal(t, 3, findQty(res.Items, "MF00M"))
	assert.Equal(t, 3, findQty(res.Items, "DN30M"))

	// Partition walls: W_C panels per wall per tier.
	assert.Equal(t, 20, findQty(res.Items, "PL20TCB"))
	assert.Equal(t, 20, findQty(res.Items, "PF30M"))
	assert.Equal(t, 20, findQty(res.Items, "BF30P"))

	// Partition corners replace a side panel on each wall end.
	assert.Equal(t, 2, findQty(res.Items, "SL20TL"))
	assert.Equal(t, 2, findQty(res.Items, "SL20TR"))
	assert.Equal(t, 32, findQty(res.Items, "SL20T"))

	assert.Equal(t, 480, res.TapeSubtotal)
}

func TestCalculatePanelsHalfUnits(t *testing.T) {
	g := mustGeometry(t, 2.5, [4]float64{3.5, 0, 0, 0}, 2)

	res, err := CalculatePanels(PanelInput{Geo: g}, DefaultTables())
	assert.NoError(t, err)

	// Quarter panels only exist when width and a length both carry halves.
	assert.Equal(t, 1, findQty(res.Items, "RQ10M"))
	assert.Equal(t, 1, findQty(res.Items, "BQ20M"))
	// W_C*half lengths + half width*L_O_C.
	assert.Equal(t, 5, findQty(res.Items, "RH10M"))
	assert.Equal(t, 4, findQty(res.Items, "SH20M"))
}

func TestCalculatePanelsSideFamilyOption(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculatePanels(PanelInput{Geo: g, UseSide1x1: true}, DefaultTables())
	assert.NoError(t, err)

	assert.Equal(t, 20, findQty(res.Items, "SF20S"))
	assert.False(t, hasPart(res.Items, "SL20S"))
}
