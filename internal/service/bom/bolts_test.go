package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultBoltMaterials(t *testing.T) BoltMaterials {
	t.Helper()
	m, err := ParseBoltOption("")
	assert.NoError(t, err)
	return m
}

func TestCalculateBoltsSimpleTank(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: defaultBoltMaterials(t)})
	assert.NoError(t, err)

	assert.Equal(t, 90, findQty(res.Items, "WBT-1440Z"))
	assert.Equal(t, 128, findQty(res.Items, "WBT-1035Z"))
	assert.Equal(t, 736, findQty(res.Items, "WBT-1050Z"))
	assert.Equal(t, 40, findQty(res.Items, "WBT-1240Z"))
	assert.Equal(t, 32, findQty(res.Items, "WBT-14120RD"))

	assert.Equal(t, 160, findQty(res.Items, "WBT-1035SA4"))
	assert.Equal(t, 80, findQty(res.Items, "WBT-1050SA4"))
}

func TestCalculateBoltsTallSimpleTank(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 3)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: defaultBoltMaterials(t)})
	assert.NoError(t, err)

	assert.Equal(t, 196, findQty(res.Items, "WBT-1035Z"))
	assert.Equal(t, 1024, findQty(res.Items, "WBT-1050Z"))
	assert.Equal(t, 112, findQty(res.Items, "WBT-14120RD"))
}

func TestCalculateBoltsPartitionedTank(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{4, 2, 2, 0}, 3)

	res, err := CalculateBolts(BoltsInput{
		Geo:             g,
		Materials:       defaultBoltMaterials(t),
		CrossPlate2Hole: 18,
		CrossPlate4Hole: 18,
	})
	assert.NoError(t, err)

	assert.Equal(t, 196, findQty(res.Items, "WBT-1035Z"))
	assert.Equal(t, 488, findQty(res.Items, "WBT-1035SA4"))
	assert.Equal(t, 1136, findQty(res.Items, "WBT-1050SA4"))

	// Rubber sets: one per 4-hole plate factor, twelve per 2-hole plate.
	assert.Equal(t, 256, findQty(res.Items, "WBT-1058RSA4"))
	assert.Equal(t, 216, findQty(res.Items, "WBT-14120RSA4"))
}

func TestCalculateBoltsRubberSetsNeedPlates(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{4, 2, 2, 0}, 3)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: defaultBoltMaterials(t)})
	assert.NoError(t, err)

	// Without cross plates from the reinforcing pass the rubber sets vanish.
	assert.False(t, hasPart(res.Items, "WBT-1058RSA4"))
	assert.False(t, hasPart(res.Items, "WBT-14120RSA4"))
}

func TestCalculateBoltsTallPartitioned(t *testing.T) {
	g := mustGeometry(t, 10, [4]float64{5, 5, 5, 0}, 4)

	res, err := CalculateBolts(BoltsInput{
		Geo:             g,
		Materials:       defaultBoltMaterials(t),
		CrossPlate2Hole: 18,
		CrossPlate4Hole: 36,
	})
	assert.NoError(t, err)

	// Tall tanks bump the per-plate rubber multiple from 12 to 20.
	assert.Equal(t, 360, findQty(res.Items, "WBT-14120RSA4"))
	assert.Equal(t, 288, findQty(res.Items, "WBT-1058RSA4"))
}

func TestCalculateBoltsSkipAll(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)
	m, err := ParseBoltOption("Except All Bolts")
	assert.NoError(t, err)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: m})
	assert.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestCalculateBoltsSkipExternal(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)
	m, err := ParseBoltOption("Except Panel Assemble Bolts")
	assert.NoError(t, err)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: m})
	assert.NoError(t, err)

	assert.False(t, hasPart(res.Items, "WBT-1050Z"))
	assert.False(t, hasPart(res.Items, "WBT-14120RD"))
	assert.Equal(t, 160, findQty(res.Items, "WBT-1035SA4"))
	assert.Equal(t, 80, findQty(res.Items, "WBT-1050SA4"))
}

func TestCalculateBoltsStainlessExternal(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)
	m, err := ParseBoltOption("EXT:SS304/INT:SS304")
	assert.NoError(t, err)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: m})
	assert.NoError(t, err)

	// External 736 plus internal 80 land on the same stainless part number.
	assert.Equal(t, 816, sumQty(res.Items, "WBT-1050SA4"))
	assert.False(t, hasPart(res.Items, "WBT-1050Z"))
	// The rubber-mounted external set stays HDG in every material family.
	assert.Equal(t, 32, findQty(res.Items, "WBT-14120RD"))
}

func TestCalculateBoltsSpareFactor(t *testing.T) {
	g := mustGeometry(t, 5, [4]float64{5, 0, 0, 0}, 2)

	res, err := CalculateBolts(BoltsInput{Geo: g, Materials: defaultBoltMaterials(t), SpareFactor: 1.05})
	assert.NoError(t, err)

	// 736 * 1.05 rounded up.
	assert.Equal(t, 773, findQty(res.Items, "WBT-1050Z"))
	assert.Equal(t, 95, findQty(res.Items, "WBT-1440Z"))
}
