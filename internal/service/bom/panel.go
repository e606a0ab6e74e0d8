package bom

import "fmt"

// PanelInput carries the geometry plus the panel option flags.
type PanelInput struct {
	Geo             Geometry
	UseSide1x1      bool
	UsePartition1x1 bool
	Insulated       bool
}

// PanelResult is the panel line items plus the sealing-tape subtotal the
// ETC calculator folds into the 50 mm tape total.
type PanelResult struct {
	Items        []Item
	TapeSubtotal int
}

// CalculatePanels derives manhole, roof, bottom, drain, side and partition
// panel quantities from the decomposed geometry.
func CalculatePanels(in PanelInput, tables *Tables) (PanelResult, error) {
	const op = "bom.panel.CalculatePanels"

	g := in.Geo
	var items []Item

	manhole := 1 + g.Partitions()
	items = append(items, Item{PartNo: "MF00M", Quantity: manhole, Category: CategoryPanels, Desc: "Manhole Panel"})

	items = append(items, roofPanels(g, manhole)...)
	items = append(items, bottomPanels(g, tables)...)

	drainSuffix := tables.PanelCode(g.HeightRaw, SlotDrain)
	items = append(items, Item{
		PartNo:   "DN" + drainSuffix,
		Quantity: 1 + g.Partitions(),
		Category: CategoryPanels,
		Desc:     "Drain Panel",
	})

	items = append(items, sidePanels(g, tables, in.UseSide1x1)...)

	if g.Partitions() > 0 {
		items = append(items, partitionPanels(g, tables, in.UsePartition1x1)...)
	}

	kept := items[:0]
	for _, it := range items {
		if it.Quantity < 0 {
			return PanelResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	return PanelResult{Items: kept, TapeSubtotal: panelTape(g)}, nil
}

func roofPanels(g Geometry, manhole int) []Item {
	var items []Item

	// Quarter panels exist only when both the width and at least one length
	// slot carry a half unit.
	rq := 0
	if g.Width.Half && g.LengthHalves() > 0 {
		rq = g.LengthHalves()
	}

	rh := g.Width.Count*g.LengthHalves() + g.Width.HalfCount()*g.LengthCount()

	// The subtracted quarter-roof term is a pinned legacy adjustment.
	rf := g.Width.Count*g.LengthCount() - manhole - rq
	if rf < 0 {
		rf = 0
	}

	if rf > 0 {
		items = append(items, Item{PartNo: "RF00M", Quantity: rf, Category: CategoryPanels, Desc: "Roof Panel 1x1m"})
	}
	if rh > 0 {
		items = append(items, Item{PartNo: "RH10M", Quantity: rh, Category: CategoryPanels, Desc: "Half Roof Panel 0.5x1m"})
	}
	if rq > 0 {
		items = append(items, Item{PartNo: "RQ10M", Quantity: rq, Category: CategoryPanels, Desc: "Quarter Roof Panel 0.5x0.5m"})
	}

	return items
}

func bottomPanels(g Geometry, tables *Tables) []Item {
	var items []Item

	partitionBottom := g.Width.Count * g.Partitions()
	drain := 1 + g.Partitions()

	// Partition rows eat into half-bottom panels only on half-width tanks.
	x15 := 0
	if g.Width.Half {
		x15 = g.Partitions()
	}

	bq := 0
	if g.Width.Half && g.LengthHalves() > 0 {
		bq = g.LengthHalves()
	}

	bh := g.Width.Count*g.LengthHalves() + g.Width.HalfCount()*g.LengthCount() - x15

	bf := g.Width.Count*g.LengthCount() - partitionBottom - drain
	if bf < 0 {
		bf = 0
	}

	suffix := tables.PanelCode(g.HeightRaw, SlotBottom)

	if bf > 0 {
		items = append(items, Item{PartNo: "BF" + suffix, Quantity: bf, Category: CategoryPanels, Desc: "Bottom Panel 1x1m"})
	}
	if bh > 0 {
		items = append(items, Item{PartNo: "BH" + suffix, Quantity: bh, Category: CategoryPanels, Desc: "Half Bottom Panel 0.5x1m"})
	}
	if bq > 0 {
		items = append(items, Item{PartNo: "BQ" + suffix, Quantity: bq, Category: CategoryPanels, Desc: "Quarter Bottom Panel 0.5x0.5m"})
	}
	if partitionBottom > 0 {
		items = append(items, Item{
			PartNo:   "BF" + suffix[:len(suffix)-1] + "P",
			Quantity: partitionBottom,
			Category: CategoryPanels,
			Desc:     "Partition Bottom Panel",
		})
	}

	return items
}

func sidePanels(g Geometry, tables *Tables, useSide1x1 bool) []Item {
	var items []Item

	cornerLeft := g.Partitions()
	cornerRight := g.Partitions()
	sideFull := (g.Width.Count+g.LengthCount())*2 - cornerLeft - cornerRight
	sideHalf := (g.Width.HalfCount() + g.LengthHalves()) * 2

	prefix := "SL"
	if useSide1x1 {
		prefix = "SF"
	}

	suffix := tables.PanelCode(g.HeightRaw, SlotSide)
	heightNum := suffix[:2]

	if g.HeightRaw >= 2.5 {
		// Multi-tier walls: a top row in the height-coded panel, a mid row
		// from 4 m up, and a full-height low row.
		if sideFull > 0 {
			items = append(items, Item{PartNo: prefix + suffix, Quantity: sideFull, Category: CategoryPanels, Desc: "Side Panel (Top)"})
		}
		if cornerLeft > 0 {
			items = append(items, Item{PartNo: prefix + suffix + "L", Quantity: cornerLeft, Category: CategoryPanels, Desc: "Corner Side Panel (Top Left)"})
			items = append(items, Item{PartNo: prefix + suffix + "R", Quantity: cornerRight, Category: CategoryPanels, Desc: "Corner Side Panel (Top Right)"})
		}

		if g.HeightRaw >= 4 {
			items = append(items, Item{PartNo: "SF30M", Quantity: sideFull, Category: CategoryPanels, Desc: "Side Panel (Mid)"})
			if cornerLeft > 0 {
				items = append(items, Item{PartNo: "SF30ML", Quantity: cornerLeft, Category: CategoryPanels, Desc: "Corner Side Panel (Mid Left)"})
				items = append(items, Item{PartNo: "SF30MR", Quantity: cornerRight, Category: CategoryPanels, Desc: "Corner Side Panel (Mid Right)"})
			}
		}

		heightCode := int(g.HeightRaw * 10)
		if sideFull > 0 {
			items = append(items, Item{PartNo: fmt.Sprintf("SF%dL", heightCode), Quantity: sideFull, Category: CategoryPanels, Desc: "Side Panel (Low)"})
		}
		if cornerLeft > 0 {
			items = append(items, Item{PartNo: fmt.Sprintf("SF%dLL", heightCode), Quantity: cornerLeft, Category: CategoryPanels, Desc: "Corner Side Panel (Low Left)"})
			items = append(items, Item{PartNo: fmt.Sprintf("SF%dLR", heightCode), Quantity: cornerRight, Category: CategoryPanels, Desc: "Corner Side Panel (Low Right)"})
		}
	} else {
		if sideFull > 0 {
			items = append(items, Item{PartNo: prefix + suffix, Quantity: sideFull, Category: CategoryPanels, Desc: "Side Panel"})
		}
		if cornerLeft > 0 {
			items = append(items, Item{PartNo: prefix + suffix + "L", Quantity: cornerLeft, Category: CategoryPanels, Desc: "Corner Side Panel (Left)"})
			items = append(items, Item{PartNo: prefix + suffix + "R", Quantity: cornerRight, Category: CategoryPanels, Desc: "Corner Side Panel (Right)"})
		}
	}

	if sideHalf > 0 {
		items = append(items, Item{PartNo: "SH" + heightNum + "M", Quantity: sideHalf, Category: CategoryPanels, Desc: "Half Side Panel 0.5x1m"})
	}

	return items
}

func partitionPanels(g Geometry, tables *Tables, usePartition1x1 bool) []Item {
	var items []Item
	wallPanels := g.Width.Count * g.Partitions()

	if g.HeightRaw >= 2.5 {
		items = append(items, Item{PartNo: "PL20TCB", Quantity: wallPanels, Category: CategoryPanels, Desc: "Partition Panel (Top)"})
		if g.HeightRaw >= 4 {
			items = append(items, Item{PartNo: "SN30M", Quantity: wallPanels, Category: CategoryPanels, Desc: "Partition Panel (Mid)"})
		}
		heightCode := int(g.HeightRaw * 10)
		items = append(items, Item{PartNo: fmt.Sprintf("PF%dM", heightCode), Quantity: wallPanels, Category: CategoryPanels, Desc: "Partition Panel (Low)"})
		return items
	}

	// Single-tier partitions reuse the side panel family.
	suffix := tables.PanelCode(g.HeightRaw, SlotSide)
	heightNum := suffix[:2]

	full := g.Width.Count * g.Height.Count * g.Partitions()
	half := 0
	if g.Width.Half {
		half = g.Height.Count * g.Partitions() / 2
	}
	if g.Height.Half {
		full += g.Width.Count * g.Partitions()
		if g.Width.Half {
			half += g.Partitions() / 2
		}
	}

	prefix := "SL"
	if usePartition1x1 {
		prefix = "SF"
	}

	if full > 0 {
		items = append(items, Item{PartNo: prefix + suffix, Quantity: full, Category: CategoryPanels, Desc: "Partition Panel"})
	}
	if half > 0 {
		items = append(items, Item{PartNo: "SH" + heightNum + "M", Quantity: half, Category: CategoryPanels, Desc: "Half Partition Panel"})
	}

	return items
}

// panelTape is the panel-seam share of the 50 mm sealing tape.
func panelTape(g Geometry) int {
	if g.Partitions() > 0 {
		return g.Width.Count * g.LengthCount() * 6
	}
	return g.halfPerimeter() * 8
}
