package bom

import (
	"fmt"
	"math"
)

// ReinforcingInput carries the geometry plus the insulation flag, which
// stretches the tier-step count to the insulated shell height.
type ReinforcingInput struct {
	Geo       Geometry
	Insulated bool
}

// ReinforcingResult separates internal and external bracing and exposes the
// cross-plate counts the bolt calculator keys its stainless sets on.
type ReinforcingResult struct {
	Internal []Item
	External []Item

	CrossPlate2Hole int
	CrossPlate4Hole int
	TapeSubtotal    int
}

// CalculateReinforcing derives the internal stainless bracing and the
// external galvanized band/corner set. Internal bracing only exists from
// 2 m up.
func CalculateReinforcing(in ReinforcingInput) (ReinforcingResult, error) {
	const op = "bom.reinforcing.CalculateReinforcing"

	g := in.Geo
	steps := tierSteps(g, in.Insulated)

	var res ReinforcingResult
	if g.HeightRaw >= 2 {
		res.Internal = internalReinforcing(g, steps, &res)
	}
	res.External = externalReinforcing(g, steps)
	res.TapeSubtotal = reinforcingTape(g)

	for _, set := range [][]Item{res.Internal, res.External} {
		for _, it := range set {
			if it.Quantity < 0 {
				return ReinforcingResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
			}
		}
	}
	res.Internal = dropZero(res.Internal)
	res.External = dropZero(res.External)

	return res, nil
}

// tierSteps is the count of reinforcing tiers above the base row. Insulated
// shells step on the rounded-up height.
func tierSteps(g Geometry, insulated bool) int {
	h := g.HeightRaw
	if insulated {
		h = math.Ceil(h)
	}
	steps := int(h) - 2
	if g.Height.Count > int(h) {
		steps = g.Height.Count - 2
	}
	if steps < 0 {
		steps = 0
	}
	return steps
}

func internalReinforcing(g Geometry, steps int, res *ReinforcingResult) []Item {
	var items []Item

	lO := g.TotalLength()
	nPA := g.Partitions()
	wC := g.Width.Count

	base := (g.LengthCount() - 1) * 4
	oneTier := base
	if nPA > 0 {
		factor := 2.0
		if lO > 10 {
			factor = 1.5
		}
		oneTier += int(float64(nPA) * float64(wC) * factor)
	}
	items = append(items, Item{PartNo: "WCP-1760SA4", Quantity: oneTier, Category: CategoryInternalReinf, Desc: "IN-BRKT (1 tierod)"})

	if g.HeightRaw >= 3 {
		qty := base * steps
		if nPA > 0 {
			factor := 1.8
			if lO > 10 {
				factor = 1.1
			}
			qty = (base + int(float64(nPA)*float64(wC)*factor)) * steps
		}
		items = append(items, Item{PartNo: "WCP-17160SA4", Quantity: qty, Category: CategoryInternalReinf, Desc: "IN-BRKT (2 tierod)"})

		bracket := 4
		if g.HeightRaw >= 4 {
			bracket = 4*(g.Height.Count+2) + nPA*13
		}
		items = append(items, Item{PartNo: "WBR-9090SA4", Quantity: bracket, Category: CategoryInternalReinf, Desc: "Corner BRKT"})
	}

	if nPA > 0 && g.HeightRaw >= 2.5 {
		tall := g.HeightRaw >= 4
		nw := float64(nPA) * float64(wC)

		f4 := 0.9
		if tall {
			f4 = 1.8
		}
		plate4 := int(nw * f4)

		f95 := 2.0
		if tall {
			f95 = 4.9
		}

		plate2 := int(nw * 0.9)
		items = append(items,
			Item{PartNo: "WCP-1616SA4", Quantity: plate4, Category: CategoryInternalReinf, Desc: "Cross Plate 4-hole"},
			Item{PartNo: "WCP-1780SA4", Quantity: plate2, Category: CategoryInternalReinf, Desc: "Cross Plate 2-hole"},
			Item{PartNo: "WFB-0880SA4", Quantity: int(nw * 0.9), Category: CategoryInternalReinf, Desc: "Flat Bar"},
			Item{PartNo: "WFB-0880PSA4", Quantity: int(nw * 1.1), Category: CategoryInternalReinf, Desc: "Flat Bar (Partition)"},
			Item{PartNo: "WFB-0950SA4", Quantity: int(nw * f95), Category: CategoryInternalReinf, Desc: "Flat Bar"},
		)
		if tall {
			items = append(items, Item{PartNo: "WFB-0950PSA4", Quantity: int(nw * 2.1), Category: CategoryInternalReinf, Desc: "Flat Bar (Partition)"})
		}
		items = append(items, Item{PartNo: "WFB-1200SA4", Quantity: int(nw * 0.9), Category: CategoryInternalReinf, Desc: "Flat Bar"})

		res.CrossPlate2Hole = plate2
		res.CrossPlate4Hole = plate4
	}

	return items
}

func externalReinforcing(g Geometry, steps int) []Item {
	var items []Item

	lO := g.TotalLength()
	nPA := g.Partitions()
	wC := g.Width.Count
	hC := g.Height.Count
	p := g.halfPerimeter()
	j := g.internalJoints()
	lp := g.LengthCount() - 1

	fb950 := 2 * p
	if g.HeightRaw >= 3 {
		fb950 += (2*p + 4) * steps
	}
	if g.HeightRaw >= 4 {
		fb950 += 4 * (hC - 3)
	}
	if nPA > 0 {
		factor := 1.4
		if lO > 10 {
			factor = 1.6
		}
		fb950 += int(float64(nPA) * float64(wC) * factor)
	}
	items = append(items, Item{PartNo: "WFB-0950ZP", Quantity: fb950, Category: CategoryExternalReinf, Desc: "Flat Bar"})

	if nPA > 0 && g.HeightRaw >= 2.5 {
		items = append(items, Item{PartNo: "WFB-0880ZP", Quantity: nPA * 2, Category: CategoryExternalReinf, Desc: "Flat Bar (Partition)"})
	}

	if g.HeightRaw >= 3 {
		items = append(items, Item{PartNo: "WFB-0950Z", Quantity: 4 * (p - 1) * steps, Category: CategoryExternalReinf, Desc: "Flat Bar"})
	}
	if g.HeightRaw >= 4 {
		items = append(items, Item{PartNo: "WFB-0950ZL", Quantity: 2 * j, Category: CategoryExternalReinf, Desc: "Flat Bar (Long)"})
	}
	items = append(items, Item{PartNo: "WFB-1200Z", Quantity: 2 * j, Category: CategoryExternalReinf, Desc: "Flat Bar"})

	switch {
	case g.HeightRaw >= 4:
		items = append(items, Item{PartNo: "WCF-2000Z", Quantity: 4 * (hC - 2), Category: CategoryExternalReinf, Desc: "Corner Frame"})
	case g.HeightRaw >= 3:
		items = append(items,
			Item{PartNo: "WCF-1000Z", Quantity: 4, Category: CategoryExternalReinf, Desc: "Corner Frame"},
			Item{PartNo: "WCF-2000Z", Quantity: 4, Category: CategoryExternalReinf, Desc: "Corner Frame"},
		)
	default:
		items = append(items, Item{
			PartNo:   fmt.Sprintf("WCF-%dZ", int(g.HeightRaw*1000)),
			Quantity: 4,
			Category: CategoryExternalReinf,
			Desc:     "Corner Frame",
		})
	}

	if g.HeightRaw >= 2 {
		cp1780 := lp*4 + nPA*2
		if g.HeightRaw >= 3 {
			cp1780 += 8 * (hC - 2) * (hC - 2)
		}
		if lO > 10 && g.HeightRaw >= 4 {
			cp1780 += int((lO - 10) * 3.2)
		}
		items = append(items, Item{PartNo: "WCP-1780Z", Quantity: cp1780, Category: CategoryExternalReinf, Desc: "Cross Plate 2-hole"})
	}

	if g.HeightRaw >= 3 {
		factor := 4
		if lO > 10 {
			factor = 3
		}
		items = append(items, Item{PartNo: "WCP-1616Z", Quantity: lp * factor * (hC - 2), Category: CategoryExternalReinf, Desc: "Cross Plate 4-hole"})
	}

	return items
}

// reinforcingTape is the reinforcing-seam share of the 50 mm sealing tape.
func reinforcingTape(g Geometry) int {
	p := g.halfPerimeter()
	hC := g.Height.Count
	lO := g.TotalLength()

	if g.Partitions() > 0 {
		tape := p * hC * 10
		if lO > 10 && g.HeightRaw >= 4 {
			tape += int((lO - 10) * 5.8)
		}
		return tape
	}

	tape := (g.Width.Count*g.LengthCount()*4 + 2) * hC
	if g.HeightRaw >= 4 {
		tape += (p - 3) * (hC - 3)
	}
	return tape
}

func dropZero(items []Item) []Item {
	kept := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}
