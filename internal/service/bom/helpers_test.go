package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustGeometry(t *testing.T, width float64, lengths [4]float64, height float64) Geometry {
	t.Helper()
	g, err := NewGeometry(width, lengths, height)
	assert.NoError(t, err)
	return g
}

func findQty(items []Item, partNo string) int {
	for _, it := range items {
		if it.PartNo == partNo {
			return it.Quantity
		}
	}
	return 0
}

func sumQty(items []Item, partNo string) int {
	total := 0
	for _, it := range items {
		if it.PartNo == partNo {
			total += it.Quantity
		}
	}
	return total
}

func hasPart(items []Item, partNo string) bool {
	for _, it := range items {
		if it.PartNo == partNo {
			return true
		}
	}
	return false
}
