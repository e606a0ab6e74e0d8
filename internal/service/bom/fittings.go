package bom

import (
	"fmt"
	"strconv"

	"grptank/internal/storage"
)

// fittingFamily is one nozzle family with its catalog prefix and the sizes
// the factory stocks.
type fittingFamily struct {
	Prefix string
	Desc   string
	Sizes  []int
}

var fittingFamilies = map[string]fittingFamily{
	"SF":  {Prefix: "WSF", Desc: "Slant Flange", Sizes: []int{65, 80, 100, 125, 150}},
	"FL":  {Prefix: "WFL", Desc: "Flat Flange", Sizes: []int{65, 80, 100, 125, 150, 200}},
	"SD":  {Prefix: "WSD", Desc: "Suction/Drain", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"OF":  {Prefix: "WOF", Desc: "Overflow", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"SB":  {Prefix: "WSB", Desc: "Socket Brass", Sizes: []int{20, 25, 40, 50}},
	"IN":  {Prefix: "WIN", Desc: "Inlet", Sizes: []int{50, 65, 80, 100, 125, 150}},
	"OUT": {Prefix: "WOT", Desc: "Outlet", Sizes: []int{50, 65, 80, 100, 125, 150}},
}

// FittingOption is one selectable nozzle for the options endpoint.
type FittingOption struct {
	Type        string `json:"type"`
	Size        int    `json:"size"`
	PartNo      string `json:"part_no"`
	Description string `json:"description"`
}

// AvailableFittings lists every stocked nozzle in family order.
func AvailableFittings() []FittingOption {
	families := []string{"SF", "FL", "SD", "OF", "SB", "IN", "OUT"}
	var out []FittingOption
	for _, key := range families {
		f := fittingFamilies[key]
		for _, size := range f.Sizes {
			out = append(out, FittingOption{
				Type:        key,
				Size:        size,
				PartNo:      fmt.Sprintf("%s-%03dA", f.Prefix, size),
				Description: fmt.Sprintf("%s %dmm", f.Desc, size),
			})
		}
	}
	return out
}

// CalculateFittings resolves the requested nozzles to catalog part numbers,
// merging duplicates by summation. The fitting type is accepted either as a
// part-number-shaped string ("WSD-050A") or a bare family code; unknown
// families fall back to suction/drain at 50 mm.
func CalculateFittings(fittings []storage.FittingItem) (ETCResult, error) {
	order := make([]string, 0, len(fittings))
	counts := make(map[string]Item, len(fittings))

	for _, f := range fittings {
		if f.Quantity <= 0 {
			continue
		}

		family, size := parseFittingType(f.FittingType)
		fam := fittingFamilies[family]
		partNo := fmt.Sprintf("%s-%03dA", fam.Prefix, size)

		if it, ok := counts[partNo]; ok {
			it.Quantity += f.Quantity
			counts[partNo] = it
			continue
		}
		order = append(order, partNo)
		counts[partNo] = Item{
			PartNo:   partNo,
			Quantity: f.Quantity,
			Category: CategoryFittings,
			Desc:     fmt.Sprintf("%s %dmm", fam.Desc, size),
		}
	}

	items := make([]Item, 0, len(order))
	for _, partNo := range order {
		items = append(items, counts[partNo])
	}
	return ETCResult{Items: items}, nil
}

func parseFittingType(s string) (family string, size int) {
	family, size = "SD", 50

	if len(s) >= 3 && s[0] == 'W' {
		prefix := s[:3]
		for key, fam := range fittingFamilies {
			if fam.Prefix == prefix {
				family = key
				break
			}
		}
		if len(s) >= 7 {
			if n, err := strconv.Atoi(s[4:7]); err == nil {
				size = n
			}
		}
	} else if _, ok := fittingFamilies[s]; ok {
		family = s
	}

	// Off-list sizes keep the requested value; the catalog lookup rejects
	// parts the factory does not stock.
	return family, size
}
