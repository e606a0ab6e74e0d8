package bom

import "fmt"

// endFittingAllowance is subtracted from a spanned dimension before matching
// a standard rod: rod_mm = dimension*1000 - 120.
const endFittingAllowance = 120

// TieRodInput carries the geometry plus the rod material/spec options.
type TieRodInput struct {
	Geo      Geometry
	Material string
	Spec     string
}

type TieRodResult struct {
	Items []Item
}

// CalculateTieRods derives rod segments, connectors for spans over 5 m, and
// the nut/washer accessory counts. Tanks under 2 m carry no tie rods.
func CalculateTieRods(in TieRodInput, tables *Tables) (TieRodResult, error) {
	const op = "bom.tierod.CalculateTieRods"

	g := in.Geo
	if g.HeightRaw < 2 {
		return TieRodResult{}, nil
	}

	// The legacy sheet resolves every stainless family to SA4 part numbers.
	const materialSuffix = "SA4"
	specPrefix := TieRodSpecPrefix(in.Spec)
	tiers := tables.HeightMultiplier(g.HeightRaw)

	rods := newRodSet(specPrefix, materialSuffix)

	wide := g.Width.Value() > 5
	if wide {
		wideTankRods(g, tables, tiers, rods)
	} else {
		span := int(g.Width.Value()*1000) - endFittingAllowance
		rods.add(tables.RodLength(span), simpleRodQty(g, tiers))
	}

	var items []Item
	items = append(items, rods.items()...)

	if wide {
		if connectorQty := wideMainSegmentQty(g, tiers); connectorQty > 0 {
			items = append(items, Item{
				PartNo:   fmt.Sprintf("TC-%s60%s", specPrefix, materialSuffix),
				Quantity: connectorQty,
				Category: CategoryTieRods,
				Desc:     "Tie Rod Connector",
			})
		}
	}

	if assemblies := rodAssemblies(g, tiers); assemblies > 0 {
		items = append(items,
			Item{PartNo: "NUT(" + materialSuffix + ")", Quantity: assemblies * 4, Category: CategoryTieRodAcc, Desc: "T/Rod Nut M" + specPrefix[:2]},
			Item{PartNo: "BW(" + materialSuffix + ")", Quantity: assemblies * 4, Category: CategoryTieRodAcc, Desc: "T/Rod Washer M" + specPrefix[:2]},
		)
	}

	kept := items[:0]
	for _, it := range items {
		if it.Quantity < 0 {
			return TieRodResult{}, fmt.Errorf("%s: %w: %s = %d", op, ErrInvariant, it.PartNo, it.Quantity)
		}
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}

	return TieRodResult{Items: kept}, nil
}

// rodSet aggregates rod quantities by standard length, keeping first-seen
// order stable.
type rodSet struct {
	prefix string
	suffix string
	order  []int
	qty    map[int]int
}

func newRodSet(prefix, suffix string) *rodSet {
	return &rodSet{prefix: prefix, suffix: suffix, qty: make(map[int]int)}
}

func (r *rodSet) add(length, qty int) {
	if qty == 0 {
		return
	}
	if _, ok := r.qty[length]; !ok {
		r.order = append(r.order, length)
	}
	r.qty[length] += qty
}

func (r *rodSet) items() []Item {
	out := make([]Item, 0, len(r.order))
	for _, l := range r.order {
		out = append(out, Item{
			PartNo:   fmt.Sprintf("TR-%s%d%s", r.prefix, l, r.suffix),
			Quantity: r.qty[l],
			Category: CategoryTieRods,
			Desc:     fmt.Sprintf("Tie Rod %dmm", l),
		})
	}
	return out
}

// simpleRodQty is the narrow-tank rod count: two rods per interior length
// position per tier, plus a partition correction above 2 m.
func simpleRodQty(g Geometry, tiers int) int {
	positions := g.LengthCount() - 1
	if positions < 0 {
		positions = 0
	}
	qty := positions * 2 * tiers
	if g.Partitions() > 0 && g.HeightRaw > 2 {
		qty += g.Partitions() * 2 * tiers
	}
	return qty
}

// wideMainSegmentQty counts the 4000 mm main segments spanning a width over
// 5 m; the connector count always matches it.
func wideMainSegmentQty(g Geometry, tiers int) int {
	base := (g.LengthCount() - 1) * tiers * 2
	partitionFactor := 4.565*float64(tiers) - 8.525
	return base + int(float64(g.Partitions())*float64(tiers)*partitionFactor)
}

func wideTankRods(g Geometry, tables *Tables, tiers int, rods *rodSet) {
	rods.add(4000, wideMainSegmentQty(g, tiers))

	if allCompartmentsLarge(g) && g.Partitions() > 0 {
		// Uniform 5 m compartments use a 2880+remainder pattern; the
		// remainder falls out of the width-span segmenting.
		span := int(g.Width.Value()*1000) - endFittingAllowance
		segments := tables.SplitSpan(span)
		remainder := segments[len(segments)-1]

		rods.add(2880, (g.Partitions()+1)*3*tiers)
		rods.add(remainder, (g.LengthCount()-1)*tiers+g.Partitions()*2)
		return
	}

	// Mixed compartment sizes: rods sized per compartment length.
	l1 := g.LengthsRaw[0]
	if positions := g.Lengths[0].Count - 1; positions > 0 {
		rodLen := tables.RodLength(int(l1*1000) - endFittingAllowance)
		if rodLen != 4880 {
			rods.add(rodLen, positions*tiers*3)
		}
	}

	grouped := make(map[int]int)
	var order []int
	for i := 1; i < 4; i++ {
		if g.LengthsRaw[i] <= 0 {
			continue
		}
		rodLen := tables.RodLength(int(g.LengthsRaw[i]*1000) - endFittingAllowance)
		if _, ok := grouped[rodLen]; !ok {
			order = append(order, rodLen)
		}
		positions := g.Lengths[i].Count - 1
		if positions > 0 {
			grouped[rodLen] += positions
		}
	}

	for _, rodLen := range order {
		qty := grouped[rodLen] * tiers * 3
		if g.Partitions() > 0 {
			qty += g.Partitions()*tiers - 1
		}
		rods.add(rodLen, qty)
	}
}

func allCompartmentsLarge(g Geometry) bool {
	if g.LengthsRaw[0] < 5 {
		return false
	}
	for _, l := range g.LengthsRaw[1:] {
		if l > 0 && l < 5 {
			return false
		}
	}
	return true
}

// rodAssemblies is the count of completed rod assemblies, each taking four
// nuts and four washers.
func rodAssemblies(g Geometry, tiers int) int {
	if g.Partitions() > 0 && g.Width.Value() > 5 {
		if allCompartmentsLarge(g) {
			return int(float64(g.LengthCount()-1)*float64(tiers) + float64(g.Partitions())*float64(tiers)*4.9)
		}
		return (g.LengthCount()-1)*tiers*2 + g.Partitions()*4
	}
	return simpleRodQty(g, tiers)
}
