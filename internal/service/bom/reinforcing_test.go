package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateReinforcingTwoMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	assert.Equal(t, 16, findQty(res.Internal, "WCP-1760SA4"))
	// 2-tierod and corner brackets start at 3 m.
	assert.False(t, hasPart(res.Internal, "WCP-17160SA4"))
	assert.False(t, hasPart(res.Internal, "WBR-9090SA4"))

	assert.Equal(t, 20, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 16, findQty(res.External, "WFB-1200Z"))
	assert.Equal(t, 4, findQty(res.External, "WCF-2000Z"))
	assert.Equal(t, 16, findQty(res.External, "WCP-1780Z"))
	assert.Equal(t, 204, res.TapeSubtotal)
}

func TestCalculateReinforcingThreeMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 3)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	assert.Equal(t, 16, findQty(res.Internal, "WCP-1760SA4"))
	assert.Equal(t, 16, findQty(res.Internal, "WCP-17160SA4"))
	assert.Equal(t, 4, findQty(res.Internal, "WBR-9090SA4"))

	assert.Equal(t, 44, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 36, findQty(res.External, "WFB-0950Z"))
	// 3 m corners stack a 1 m frame on a 2 m frame.
	assert.Equal(t, 4, findQty(res.External, "WCF-1000Z"))
	assert.Equal(t, 4, findQty(res.External, "WCF-2000Z"))
	assert.Equal(t, 24, findQty(res.External, "WCP-1780Z"))
	assert.Equal(t, 16, findQty(res.External, "WCP-1616Z"))
	assert.Equal(t, 306, res.TapeSubtotal)
}

func TestCalculateReinforcingThreeAndHalfMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 3.5)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	// Half heights above 3 m stack the same 1 m + 2 m corner frames,
	// never a height-matched single frame.
	assert.Equal(t, 4, findQty(res.External, "WCF-1000Z"))
	assert.Equal(t, 4, findQty(res.External, "WCF-2000Z"))
	assert.False(t, hasPart(res.External, "WCF-3500Z"))

	assert.Equal(t, 16, findQty(res.Internal, "WCP-17160SA4"))
	assert.Equal(t, 44, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 24, findQty(res.External, "WCP-1780Z"))
}

func TestCalculateReinforcingBelowTwoMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 1.5)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	// Shells under 2 m carry no internal bracing and no external cross
	// plates, only the base band, joint angles and a corner frame.
	assert.Empty(t, res.Internal)
	assert.False(t, hasPart(res.External, "WCP-1780Z"))
	assert.False(t, hasPart(res.External, "WCP-1616Z"))

	assert.Equal(t, 20, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 16, findQty(res.External, "WFB-1200Z"))
	assert.Equal(t, 4, findQty(res.External, "WCF-1500Z"))
}

func TestCalculateReinforcingFourMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 4)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	assert.Equal(t, 32, findQty(res.Internal, "WCP-17160SA4"))
	assert.Equal(t, 24, findQty(res.Internal, "WBR-9090SA4"))

	assert.Equal(t, 72, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 72, findQty(res.External, "WFB-0950Z"))
	assert.Equal(t, 16, findQty(res.External, "WFB-0950ZL"))
	assert.Equal(t, 8, findQty(res.External, "WCF-2000Z"))
	assert.Equal(t, 48, findQty(res.External, "WCP-1780Z"))
	assert.Equal(t, 32, findQty(res.External, "WCP-1616Z"))
	assert.Equal(t, 415, res.TapeSubtotal)
}

func TestCalculateReinforcingPartitioned(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{4, 2, 2, 0}, 3)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	assert.Equal(t, 68, findQty(res.Internal, "WCP-1760SA4"))
	assert.Equal(t, 64, findQty(res.Internal, "WCP-17160SA4"))

	// Partition cross plates feed the internal rubber bolt sets.
	assert.Equal(t, 18, res.CrossPlate2Hole)
	assert.Equal(t, 18, res.CrossPlate4Hole)
	assert.Equal(t, 18, findQty(res.Internal, "WCP-1616SA4"))
	assert.Equal(t, 18, findQty(res.Internal, "WCP-1780SA4"))
	assert.Equal(t, 40, findQty(res.Internal, "WFB-0950SA4"))
	assert.False(t, hasPart(res.Internal, "WFB-0950PSA4"))

	assert.Equal(t, 104, findQty(res.External, "WFB-0950ZP"))
	assert.Equal(t, 4, findQty(res.External, "WFB-0880ZP"))
	assert.Equal(t, 540, res.TapeSubtotal)
}

func TestCalculateReinforcingPartitionedTall(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{5, 5, 5, 0}, 4)

	res, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)

	// Tall partitioned tanks double the 4-hole plate factor.
	assert.Equal(t, 36, res.CrossPlate4Hole)
	assert.Equal(t, 18, res.CrossPlate2Hole)
	assert.Equal(t, 156, findQty(res.Internal, "WCP-17160SA4"))
	assert.Equal(t, 50, findQty(res.Internal, "WBR-9090SA4"))
	assert.Equal(t, 42, findQty(res.Internal, "WFB-0950PSA4"))
	assert.Equal(t, 1029, res.TapeSubtotal)
}

func TestCalculateReinforcingInsulatedSteps(t *testing.T) {
	// A 2.5 m insulated shell steps on the rounded-up 3 m height.
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2.5)

	plain, err := CalculateReinforcing(ReinforcingInput{Geo: g})
	assert.NoError(t, err)
	insulated, err := CalculateReinforcing(ReinforcingInput{Geo: g, Insulated: true})
	assert.NoError(t, err)

	assert.Equal(t, 0, tierSteps(g, false))
	assert.Equal(t, 1, tierSteps(g, true))
	assert.Equal(t, findQty(plain.Internal, "WCP-1760SA4"), findQty(insulated.Internal, "WCP-1760SA4"))
}
