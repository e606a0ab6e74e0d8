package storage

import "errors"

// ErrPartNotExists marks a catalog row that does not exist in the store.
var ErrPartNotExists = errors.New("part does not exist")

// PartInfo is one row of the price/weight catalog.
type PartInfo struct {
	PartNo   string  `json:"part_no"`
	Name     string  `json:"name"`
	NameKr   string  `json:"name_kr,omitempty"`
	Spec     string  `json:"spec,omitempty"`
	PriceUSD float64 `json:"price_usd"`
	WeightKg float64 `json:"weight_kg"`
}
