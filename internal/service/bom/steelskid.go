package bom

import (
	"fmt"
	"math"
)

// linerDensity is a physical density constant of the liner sheet, never a
// tunable parameter.
const linerDensity = 4.6

// SteelSkidInput carries the geometry and the raw skid option string.
type SteelSkidInput struct {
	Geo    Geometry
	Option string
}

// SteelSkidResult keeps every line even in "Except SKB" mode, where all
// quantities are forced to zero atomically so the category stays present.
type SteelSkidResult struct {
	Items  []Item
	Except bool
}

type skidProfile struct {
	longSuffix     string
	shortSuffix    string
	mainConnector  string
	crossConnector string
	sideSubPart    string
	cornerSubPart  string
	sideWidthMM    int
}

var skidProfiles = map[SkidType]skidProfile{
	SkidAngle75: {
		longSuffix: "AL", shortSuffix: "AS",
		mainConnector: "WBR-7575Z", crossConnector: "WBR-0240Z",
		sideSubPart: "WFF-0957AMZ", cornerSubPart: "WFF-1063AMZ",
		sideWidthMM: 1570,
	},
	SkidChannel125: {
		longSuffix: "CL", shortSuffix: "CS",
		mainConnector: "WBR-0120Z", crossConnector: "WBR-21590Z",
		sideSubPart: "WFF-0962AMZ", cornerSubPart: "WFF-1053AMZ",
		sideWidthMM: 1560,
	},
	SkidChannel150: {
		longSuffix: "HCL", shortSuffix: "HCS",
		mainConnector: "WBR-0150Z", crossConnector: "WBR-22310Z",
		sideSubPart: "WFF-0962AMZ", cornerSubPart: "WFF-1053AMZ",
		sideWidthMM: 1560,
	},
}

// CalculateSteelSkid derives the structural base frame: connectors, long and
// short frame members, sub frames, liner and anchor brackets.
func CalculateSteelSkid(in SteelSkidInput) (SteelSkidResult, error) {
	const op = "bom.steelskid.CalculateSteelSkid"

	g := in.Geo
	skidType, except, err := ResolveSkid(in.Option, g.HeightRaw)
	if err != nil {
		return SteelSkidResult{}, fmt.Errorf("%s: %w", op, err)
	}
	p := skidProfiles[skidType]

	wO := g.Width.Value()
	lO := g.TotalLength()
	var items []Item

	items = append(items, Item{
		PartNo:   p.mainConnector,
		Quantity: int((wO + 1) * 2),
		Category: CategorySteelSkid,
		Desc:     "Steel Skid Connector",
	})

	crossQty := 4
	if wO > 5 || lO > 5 {
		crossQty = 8
	}
	items = append(items, Item{PartNo: p.crossConnector, Quantity: crossQty, Category: CategorySteelSkid, Desc: "Steel Skid Connector"})

	// Long frames along the length: quotient/remainder split of the total
	// length over 2 m members.
	longQty := int(math.Floor(lO/2) * float64(g.Width.Count+1))
	if longQty > 0 {
		items = append(items, Item{PartNo: "WFF-1990" + p.longSuffix + "Z", Quantity: longQty, Category: CategorySteelSkid, Desc: "Steel Skid(Main-L)"})
	}
	shortQty := int(math.Mod(lO, 2) * float64(g.Width.Count+1))
	if shortQty > 0 {
		items = append(items, Item{PartNo: "WFF-0990" + p.longSuffix + "Z", Quantity: shortQty, Category: CategorySteelSkid, Desc: "Steel Skid(Main-L)"})
	}

	items = append(items, widthFrames(g, p)...)
	items = append(items, subFrames(g, p)...)

	liner := int(math.Ceil((wO + 1) * (lO + 1) * linerDensity))
	items = append(items, Item{PartNo: "LNR-3.0T", Quantity: liner, Category: CategorySteelSkid, Desc: "Liner"})

	anchor := int(wO + lO)
	if g.HeightRaw >= 4 {
		anchor *= 2
	}
	items = append(items, Item{PartNo: "WBR-5010Z", Quantity: anchor, Category: CategorySteelSkid, Desc: "Anchor Bracket with bolt and nut set"})

	kept := items[:0]
	for _, it := range items {
		if it.Quantity < 0 {
			return SteelSkidResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
		}
		if except {
			it.Quantity = 0
			kept = append(kept, it)
			continue
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	return SteelSkidResult{Items: kept, Except: except}, nil
}

func widthFrames(g Geometry, p skidProfile) []Item {
	wO := g.Width.Value()

	sideWidth := p.sideWidthMM
	if wO > 5 {
		sideWidth = 2060
	}

	centerQty := 2
	if wO > 5 {
		centerQty = int(2 + (wO-5)*0.8)
	}

	var items []Item
	switch {
	case wO >= 3:
		items = append(items,
			Item{PartNo: "WFF-2000" + p.shortSuffix + "Z", Quantity: centerQty, Category: CategorySteelSkid, Desc: "Steel Skid(Main-W)"},
			Item{PartNo: fmt.Sprintf("WFF-%d%sZR", sideWidth, p.shortSuffix), Quantity: 2, Category: CategorySteelSkid, Desc: "Steel Skid(Main-W)"},
			Item{PartNo: fmt.Sprintf("WFF-%d%sZL", sideWidth, p.shortSuffix), Quantity: 2, Category: CategorySteelSkid, Desc: "Steel Skid(Main-W)"},
		)
	case wO >= 2:
		items = append(items, Item{PartNo: "WFF-2000" + p.shortSuffix + "Z", Quantity: centerQty, Category: CategorySteelSkid, Desc: "Steel Skid(Main-W)"})
	}

	return items
}

func subFrames(g Geometry, p skidProfile) []Item {
	wO := g.Width.Value()
	lO := g.TotalLength()

	var sideQty int
	if wO > 5 {
		sideQty = (g.Width.Count - 3) * 2
		if lO > 10 {
			sideQty *= 2
		}
	} else {
		sideQty = (g.Width.Count - 1) * 2
	}

	var cornerQty int
	switch {
	case lO > 10:
		cornerQty = 4 + int(math.Ceil(lO/1.5))
	case lO > 5:
		cornerQty = 4 + int(math.Ceil(lO/3))
	default:
		cornerQty = 4
	}

	var centerQty int
	if wO > 5 || lO > 5 {
		factor := 0.68
		if lO > 10 {
			factor = 0.726
		}
		centerQty = int(math.Round(float64(g.Width.Count-1) * lO * factor))
	} else {
		centerQty = (g.Width.Count - 1) * 2
	}

	var items []Item
	if sideQty > 0 {
		items = append(items, Item{PartNo: p.sideSubPart, Quantity: sideQty, Category: CategorySteelSkid, Desc: "Steel Skid(Sub)"})
	}
	items = append(items, Item{PartNo: p.cornerSubPart, Quantity: cornerQty, Category: CategorySteelSkid, Desc: "Steel Skid(Sub)"})
	if centerQty > 0 {
		items = append(items, Item{PartNo: "WFF-0994AMZ", Quantity: centerQty, Category: CategorySteelSkid, Desc: "Steel Skid(Sub)"})
	}

	return items
}
