package bom

import (
	"fmt"
	"math"
)

// BoltsInput carries the geometry, resolved bolt materials, the spare
// factor and the cross-plate counts from the reinforcing calculator. The
// rubber internal bolt sets fasten those plates, so their quantities derive
// from the plate counts instead of standalone area factors.
type BoltsInput struct {
	Geo             Geometry
	Materials       BoltMaterials
	SpareFactor     float64
	CrossPlate2Hole int
	CrossPlate4Hole int
}

type BoltsResult struct {
	Items []Item
}

// boltSKUs maps a material family to its bolt part numbers.
var boltSKUs = map[string]map[string]string{
	"HDG": {
		"10x35": "WBT-1035Z", "10x50": "WBT-1050Z",
		"12x40": "WBT-1240Z", "14x40": "WBT-1440Z",
	},
	"SS304": {
		"10x35": "WBT-1035SA4", "10x50": "WBT-1050SA4",
		"12x40": "WBT-1240SA4", "14x40": "WBT-1440SA4",
	},
}

// CalculateBolts derives the external panel-assembly bolt sets and the
// internal stainless sets for reinforcing brackets.
func CalculateBolts(in BoltsInput) (BoltsResult, error) {
	const op = "bom.bolts.CalculateBolts"

	if in.Materials.SkipAll {
		return BoltsResult{}, nil
	}

	spare := in.SpareFactor
	if spare < 1 {
		spare = 1
	}

	var items []Item
	if !in.Materials.SkipExternal {
		items = append(items, externalBolts(in.Geo, in.Materials.External)...)
	}
	items = append(items, internalBolts(in)...)

	kept := items[:0]
	for _, it := range items {
		if it.Quantity < 0 {
			return BoltsResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
		}
		if it.Quantity == 0 {
			continue
		}
		it.Quantity = int(math.Ceil(float64(it.Quantity) * spare))
		kept = append(kept, it)
	}

	return BoltsResult{Items: kept}, nil
}

func externalBolts(g Geometry, material string) []Item {
	skus := boltSKUs[material]
	if skus == nil {
		skus = boltSKUs["HDG"]
	}

	wC := g.Width.Count
	lOC := g.LengthCount()
	hC := g.Height.Count
	nPA := g.Partitions()
	lO := g.TotalLength()
	perimeter := 2 * (wC + lOC)
	joints := g.internalJoints()

	var items []Item

	// M14x40: corners and special joints, doubled on partitioned tanks.
	b1440 := wC + lOC + 2*joints
	if hC >= 4 {
		b1440 += 32*3 + 10*(hC-3)
	} else {
		b1440 += 32 * hC
	}
	if nPA > 0 {
		b1440 *= 2
		if g.HeightRaw >= 4 && lO > 10 {
			b1440 += int(float64(nPA) * (lO - 10) * 12.4)
		}
	}
	items = append(items, Item{PartNo: skus["14x40"], Quantity: b1440, Category: CategoryBoltsNuts, Desc: "Bolt and Nuts Set M14x40"})

	// M10x35: roof/bottom panel joints.
	var b1035 int
	if nPA > 0 {
		add := 16
		if lO > 10 {
			add = 14
		}
		b1035 = 10*(wC+lOC) + add
	} else {
		b1035 = 8 * joints * 2
		if hC > 2 {
			b1035 += (8*(wC+lOC-2) + 4) * (hC - 2)
		}
	}
	items = append(items, Item{PartNo: skus["10x35"], Quantity: b1035, Category: CategoryBoltsNuts, Desc: "M10x35mm Bolt"})

	// M10x50: main panel assembly.
	b1050 := 8*perimeter + 8*(perimeter+2*joints)*hC
	if nPA > 0 {
		b1050 += 28 * nPA * wC
		if g.HeightRaw >= 4 {
			b1050 += nPA * wC * 21 * (hC - 2)
		}
	}
	items = append(items, Item{PartNo: skus["10x50"], Quantity: b1050, Category: CategoryBoltsNuts, Desc: "M10x50mm Bolt"})

	// M12x40: skid connections.
	items = append(items, Item{PartNo: skus["12x40"], Quantity: 4 * (wC + lOC), Category: CategoryBoltsNuts, Desc: "M12x40mm Bolt"})

	// M14x120 rubber-mounted set is HDG-only regardless of material family.
	b14120 := 32
	if hC > 2 {
		b14120 += 8 * (wC + lOC) * (hC - 2)
		if hC > 3 {
			b14120 += 8 * (wC + lOC - 2) * (hC - 3)
		}
	}
	if nPA > 0 {
		b14120 += nPA * 8
		if g.HeightRaw >= 4 && lO > 10 {
			b14120 += nPA * 2
		}
	}
	items = append(items, Item{PartNo: "WBT-14120RD", Quantity: b14120, Category: CategoryBoltsNuts, Desc: "M14x120mm Rubber HDG Bolt"})

	return items
}

func internalBolts(in BoltsInput) []Item {
	if in.Materials.Internal == "" {
		return nil
	}
	skus := boltSKUs[in.Materials.Internal]
	if skus == nil {
		skus = boltSKUs["SS304"]
	}

	g := in.Geo
	wC := g.Width.Count
	lOC := g.LengthCount()
	hC := g.Height.Count
	nPA := g.Partitions()
	lO := g.TotalLength()
	perimeter := 2 * (wC + lOC)
	tall := g.HeightRaw >= 4

	var items []Item

	if nPA > 0 {
		b1035 := 8*perimeter + nPA*wC*10
		if tall {
			b1035 += int(float64(nPA) * float64(wC+lOC) * float64(hC-2) * 4.2)
		}
		items = append(items, Item{PartNo: skus["10x35"], Quantity: b1035, Category: CategoryBoltsNuts, Desc: "M10x35mm Internal Bolt"})

		b1050 := 8*(wC+lOC) + nPA*wC*hC*16 + nPA*16
		if tall && lO > 10 {
			b1050 += int(float64(nPA) * float64(wC) * 3.6 * float64(hC-2))
		}
		items = append(items, Item{PartNo: skus["10x50"], Quantity: b1050, Category: CategoryBoltsNuts, Desc: "M10x50mm Internal Bolt"})

		// Rubber sets fasten the partition cross plates. The M14x120 count
		// is 12 per 2-hole plate (20 from 4 m up): 216 on the 18-plate 3 m
		// tank, 360 on the 18-plate 4 m tank.
		if in.CrossPlate4Hole > 0 {
			factor := 12.8
			if tall {
				factor = 14.4
			}
			items = append(items, Item{
				PartNo:   "WBT-1058RSA4",
				Quantity: int(float64(nPA) * float64(wC) * factor),
				Category: CategoryBoltsNuts,
				Desc:     "M10x58mm Rubber Internal Bolt",
			})
		}
		if in.CrossPlate2Hole > 0 {
			perPlate := 12
			if tall {
				perPlate = 20
			}
			items = append(items, Item{
				PartNo:   "WBT-14120RSA4",
				Quantity: in.CrossPlate2Hole * perPlate,
				Category: CategoryBoltsNuts,
				Desc:     "M14x120mm Rubber Internal Bolt",
			})
		}
	} else {
		items = append(items,
			Item{PartNo: skus["10x35"], Quantity: 8 * perimeter, Category: CategoryBoltsNuts, Desc: "M10x35mm Internal Bolt"},
			Item{PartNo: skus["10x50"], Quantity: 8 * (wC + lOC), Category: CategoryBoltsNuts, Desc: "M10x50mm Internal Bolt"},
		)
	}

	return items
}
