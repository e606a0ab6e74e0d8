package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSteelSkidAngle75(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Default"})
	assert.NoError(t, err)
	assert.False(t, res.Except)

	assert.Equal(t, 12, findQty(res.Items, "WBR-7575Z"))
	assert.Equal(t, 4, findQty(res.Items, "WBR-0240Z"))
	assert.Equal(t, 12, findQty(res.Items, "WFF-1990ALZ"))
	assert.Equal(t, 6, findQty(res.Items, "WFF-0990ALZ"))
	assert.Equal(t, 2, findQty(res.Items, "WFF-2000ASZ"))
	assert.Equal(t, 2, findQty(res.Items, "WFF-1570ASZR"))
	assert.Equal(t, 2, findQty(res.Items, "WFF-1570ASZL"))
	assert.Equal(t, 8, findQty(res.Items, "WFF-0957AMZ"))
	assert.Equal(t, 4, findQty(res.Items, "WFF-1063AMZ"))
	assert.Equal(t, 8, findQty(res.Items, "WFF-0994AMZ"))
	assert.Equal(t, 166, findQty(res.Items, "LNR-3.0T"))
	assert.Equal(t, 10, findQty(res.Items, "WBR-5010Z"))
}

func TestCalculateSteelSkidChannel125(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 3)

	res, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Default"})
	assert.NoError(t, err)

	// Heights over 2.5 m step up to the channel 125 profile.
	assert.Equal(t, 12, findQty(res.Items, "WBR-0120Z"))
	assert.Equal(t, 4, findQty(res.Items, "WBR-21590Z"))
	assert.Equal(t, 12, findQty(res.Items, "WFF-1990CLZ"))
	assert.Equal(t, 2, findQty(res.Items, "WFF-1560CSZR"))
	assert.False(t, hasPart(res.Items, "WBR-7575Z"))
}

func TestCalculateSteelSkidWideTank(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{4, 2, 2, 0}, 3)

	res, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Default"})
	assert.NoError(t, err)

	assert.Equal(t, 22, findQty(res.Items, "WBR-0120Z"))
	assert.Equal(t, 8, findQty(res.Items, "WBR-21590Z"))
	assert.Equal(t, 44, findQty(res.Items, "WFF-1990CLZ"))
	// Widths over 5 m use the 2060 mm side members.
	assert.Equal(t, 2, findQty(res.Items, "WFF-2060CSZR"))
	assert.Equal(t, 6, findQty(res.Items, "WFF-2000CSZ"))
	assert.Equal(t, 14, findQty(res.Items, "WFF-0962AMZ"))
	assert.Equal(t, 49, findQty(res.Items, "WFF-0994AMZ"))
	assert.Equal(t, 456, findQty(res.Items, "LNR-3.0T"))
	assert.Equal(t, 18, findQty(res.Items, "WBR-5010Z"))
}

func TestCalculateSteelSkidAnchorDoublesAtFourMeters(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 4)

	res, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Default"})
	assert.NoError(t, err)

	assert.Equal(t, 20, findQty(res.Items, "WBR-5010Z"))
}

func TestCalculateSteelSkidExceptKeepsZeroLines(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Except SKB"})
	assert.NoError(t, err)
	assert.True(t, res.Except)

	// Every line survives at quantity zero so the category stays visible.
	assert.NotEmpty(t, res.Items)
	for _, it := range res.Items {
		assert.Equal(t, 0, it.Quantity, it.PartNo)
	}
	assert.True(t, hasPart(res.Items, "WBR-7575Z"))
	assert.True(t, hasPart(res.Items, "LNR-3.0T"))
}

func TestCalculateSteelSkidUnknownOption(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	_, err := CalculateSteelSkid(SteelSkidInput{Geo: g, Option: "Channel 999"})
	assert.ErrorIs(t, err, ErrUnresolvedOption)
}
