package storage

type BOMItem struct {
	PartNo        string  `json:"part_no"`
	PartName      string  `json:"part_name"`
	Quantity      int     `json:"quantity"`
	UnitPriceUSD  float64 `json:"unit_price_usd"`
	TotalPriceUSD float64 `json:"total_price_usd"`
	WeightKg      float64 `json:"weight_kg"`
	TotalWeightKg float64 `json:"total_weight_kg"`
	Category      string  `json:"category"`
}

type CapacityInfo struct {
	NominalCapacityM3 float64 `json:"nominal_capacity_m3"`
	ActualCapacityM3  float64 `json:"actual_capacity_m3"`
	SurfaceAreaM2     float64 `json:"surface_area_m2"`
	TotalLength       float64 `json:"total_length"`
	NumPartitions     int     `json:"num_partitions"`
}

type CostSummary struct {
	Panels              float64 `json:"panels"`
	SteelSkid           float64 `json:"steel_skid"`
	BoltsNuts           float64 `json:"bolts_nuts"`
	ExternalReinforcing float64 `json:"external_reinforcing"`
	InternalReinforcing float64 `json:"internal_reinforcing"`
	InternalTieRod      float64 `json:"internal_tie_rod"`
	Etc                 float64 `json:"etc"`
	Fittings            float64 `json:"fittings"`
	TotalUSD            float64 `json:"total_usd"`
	TotalSAR            float64 `json:"total_sar"`
}

type WeightSummary struct {
	PanelsKg      float64 `json:"panels_kg"`
	SteelKg       float64 `json:"steel_kg"`
	AccessoriesKg float64 `json:"accessories_kg"`
	TotalKg       float64 `json:"total_kg"`
}

type BOMResult struct {
	Capacity      CapacityInfo  `json:"capacity"`
	BOM           []BOMItem     `json:"bom"`
	CostSummary   CostSummary   `json:"cost_summary"`
	WeightSummary WeightSummary `json:"weight_summary"`
}
