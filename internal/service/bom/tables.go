package bom

// PanelSlot indexes the panel-code table.
type PanelSlot int

const (
	SlotSide PanelSlot = iota
	SlotRoof
	SlotBottom
	SlotDrain
)

type panelCodes struct {
	Side   string
	Roof   string
	Bottom string
	Drain  string
}

// Tables is the immutable constants layer: built once at startup, shared
// read-only by every calculation.
type Tables struct {
	heightMultiplier map[float64]int
	rodLengths       []int
	panelCodes       map[float64]panelCodes
	heights          []float64
}

// DefaultTables builds the standard lookup tables of the legacy sheet.
func DefaultTables() *Tables {
	return &Tables{
		heightMultiplier: map[float64]int{
			1.0: 0, 1.5: 0,
			2.0: 1,
			2.5: 2,
			3.0: 3, 3.5: 3,
			4.0: 5, 4.5: 5,
			5.0: 7,
		},
		rodLengths: []int{
			280, 380, 780, 880,
			1280, 1380, 1780, 1880,
			2280, 2380, 2780, 2880,
			3280, 3380, 3780, 3880,
			4000, 4280, 4380, 4780, 4880,
			5000,
		},
		panelCodes: map[float64]panelCodes{
			1.0: {Side: "10S", Roof: "00M", Bottom: "10M", Drain: "10M"},
			1.5: {Side: "15S", Roof: "00M", Bottom: "15M", Drain: "15M"},
			2.0: {Side: "20S", Roof: "00M", Bottom: "20M", Drain: "20M"},
			2.5: {Side: "15T", Roof: "00M", Bottom: "25M", Drain: "25M"},
			3.0: {Side: "20T", Roof: "00M", Bottom: "30M", Drain: "30M"},
			3.5: {Side: "15T", Roof: "00M", Bottom: "35M", Drain: "35M"},
			4.0: {Side: "20T", Roof: "00M", Bottom: "40M", Drain: "40M"},
			4.5: {Side: "15T", Roof: "00M", Bottom: "45M", Drain: "45M"},
			5.0: {Side: "20T", Roof: "00M", Bottom: "50M", Drain: "50M"},
		},
		heights: []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0},
	}
}

// HeightKey snaps a height to the nearest enumerated standard height.
func (t *Tables) HeightKey(h float64) float64 {
	best := t.heights[0]
	for _, s := range t.heights[1:] {
		if abs(s-h) < abs(best-h) {
			best = s
		}
	}
	return best
}

// HeightMultiplier returns the tie-rod tier count for a height.
// Heights below 2 carry no tie rods and map to zero.
func (t *Tables) HeightMultiplier(h float64) int {
	return t.heightMultiplier[t.HeightKey(h)]
}

// RodLength matches a span in millimeters to the closest standard rod.
func (t *Tables) RodLength(mm int) int {
	best := t.rodLengths[0]
	for _, s := range t.rodLengths[1:] {
		if absInt(s-mm) < absInt(best-mm) {
			best = s
		}
	}
	return best
}

// SplitSpan decomposes a span exceeding the largest standard length into
// repeated 4000 mm segments plus one matched remainder.
func (t *Tables) SplitSpan(mm int) []int {
	if mm <= 5000 {
		return []int{t.RodLength(mm)}
	}

	segments := make([]int, 0, mm/4000+1)
	for i := 0; i < mm/4000; i++ {
		segments = append(segments, 4000)
	}
	if rem := mm % 4000; rem > 0 {
		segments = append(segments, t.RodLength(rem))
	}
	return segments
}

// PanelCode resolves a part-code suffix for a height and structural slot.
func (t *Tables) PanelCode(h float64, slot PanelSlot) string {
	codes := t.panelCodes[t.HeightKey(h)]
	switch slot {
	case SlotRoof:
		return codes.Roof
	case SlotBottom:
		return codes.Bottom
	case SlotDrain:
		return codes.Drain
	default:
		return codes.Side
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
