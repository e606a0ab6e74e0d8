package bom

import (
	"fmt"
	"math"
)

// ETCInput carries the geometry, the tank capacity, accessory options and
// the tape subtotals from the panel and reinforcing calculators.
type ETCInput struct {
	Geo             Geometry
	NominalCapacity float64

	LevelIndicator string

	InternalLadderMaterial string
	InternalLadderQty      int // -1 means one per compartment
	ExternalLadderMaterial string
	ExternalLadderQty      int // -1 means one

	PanelTape       int
	ReinforcingTape int
}

type ETCResult struct {
	Items []Item
}

// CalculateETC derives the accessory set: air vents, roof supporters,
// ladders, silicon, level indicator and sealing tape.
func CalculateETC(in ETCInput) (ETCResult, error) {
	const op = "bom.etc.CalculateETC"

	g := in.Geo
	heightMM := int(g.HeightRaw * 1000)
	var items []Item

	// One vent per compartment, or one per 30 m2 of roof, whichever is more.
	ventPart, ventDesc := "WAV-0100A", "Air Vent 100mm"
	if in.NominalCapacity < 100 {
		ventPart, ventDesc = "WAV-0050A", "Air Vent 50mm"
	}
	ventQty := 1 + g.Partitions()
	if areaQty := int(math.Ceil(g.Width.Value() * g.TotalLength() / 30)); areaQty > ventQty {
		ventQty = areaQty
	}
	items = append(items, Item{PartNo: ventPart, Quantity: ventQty, Category: CategoryETC, Desc: ventDesc})

	if rs := roofSupporters(g); rs > 0 {
		items = append(items, Item{
			PartNo:   fmt.Sprintf("WRS-%dF", heightMM),
			Quantity: rs,
			Category: CategoryETC,
			Desc:     fmt.Sprintf("Roof Supporter %dmm", heightMM),
		})
	}

	intSuffix := "SI"
	if in.InternalLadderMaterial == "" || in.InternalLadderMaterial == "GRP" {
		intSuffix = "FI"
	}
	intQty := in.InternalLadderQty
	if intQty < 0 {
		intQty = g.Partitions() + 1
	}
	items = append(items, Item{
		PartNo:   fmt.Sprintf("WLD-%d%s", heightMM, intSuffix),
		Quantity: intQty,
		Category: CategoryETC,
		Desc:     fmt.Sprintf("Internal Ladder %dmm", heightMM),
	})

	extSuffix := "ZO"
	if in.ExternalLadderMaterial == "SS304" || in.ExternalLadderMaterial == "SS316" {
		extSuffix = "SO"
	}
	extQty := in.ExternalLadderQty
	if extQty < 0 {
		extQty = 1
	}
	items = append(items, Item{
		PartNo:   fmt.Sprintf("WLD-%d%s", heightMM, extSuffix),
		Quantity: extQty,
		Category: CategoryETC,
		Desc:     fmt.Sprintf("External Ladder %dmm", heightMM),
	})

	silicon := int(math.Ceil(0.1 * g.Width.Value() * g.TotalLength()))
	if silicon < 1 {
		silicon = 1
	}
	items = append(items, Item{PartNo: "Silicon", Quantity: silicon, Category: CategoryETC, Desc: "Silicon Sealant (Tubes)"})

	switch in.LevelIndicator {
	case "General", "":
		items = append(items, Item{
			PartNo:   fmt.Sprintf("WLV-%dSET(G)", heightMM),
			Quantity: g.Partitions() + 1,
			Category: CategoryETC,
			Desc:     fmt.Sprintf("Level Indicator Glass Type %dmm", heightMM),
		})
	case "Sensor":
		items = append(items, Item{
			PartNo:   "WLV-0000SET(S)",
			Quantity: g.Partitions() + 1,
			Category: CategoryETC,
			Desc:     "Level Indicator Sensor Type",
		})
	}

	tape50 := in.PanelTape + in.ReinforcingTape
	if tape50 < 1 {
		tape50 = 1
	}
	items = append(items,
		Item{PartNo: "WST-0050RO", Quantity: tape50, Category: CategoryETC, Desc: "Sealing Tape 50mm (Meters)"},
		Item{PartNo: "WST-0120RO", Quantity: int(4*g.HeightRaw + 1), Category: CategoryETC, Desc: "Sealing Tape 120mm (Roll)"},
	)

	kept := items[:0]
	for _, it := range items {
		if it.Quantity < 0 {
			return ETCResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	return ETCResult{Items: kept}, nil
}

// roofSupporters counts supporting posts under the roof. Partitioned tanks
// use an area ratio; simple tanks count per compartment section.
func roofSupporters(g Geometry) int {
	if g.Partitions() > 0 {
		qty := g.Width.Count * g.LengthCount() / 5
		if g.TotalLength() > 10 {
			qty += 2
		}
		return qty
	}

	wO := g.Width.Value()
	qty := 0

	if l1 := g.LengthsRaw[0]; l1 > 1 {
		qty += int(math.Ceil((wO - 1) * (l1 - 1) / 4))
	}
	if l2 := g.LengthsRaw[1]; l2 > 0 {
		qty += int(math.Ceil((wO - 1) * (l2 - 1) / 4))
	}
	if l3 := g.LengthsRaw[2]; l3 > 0 {
		qty += int(math.Floor((wO - 2) * (l3 - 2) / 4))
	}
	if l4 := g.LengthsRaw[3]; l4 > 0 {
		qty += int(math.Floor((wO - 2) * (l4 - 2) / 4))
	}

	if qty < 0 {
		return 0
	}
	return qty
}
