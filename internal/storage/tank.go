package storage

type TankDimensions struct {
	Width    float64 `json:"width"`
	Length1  float64 `json:"length1"`
	Length2  float64 `json:"length2"`
	Length3  float64 `json:"length3"`
	Length4  float64 `json:"length4"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
}

type PanelOptions struct {
	ProductType        string `json:"product_type"`
	Insulation         string `json:"insulation"`
	UseSidePanel1x1    bool   `json:"use_side_panel_1x1"`
	UsePartitionPanel1 bool   `json:"use_partition_panel_1x1"`
}

type SteelOptions struct {
	ReinforcingType  string `json:"reinforcing_type"`
	SteelSkid        string `json:"steel_skid"`
	InternalMaterial string `json:"internal_material"`
	BoltsNuts        string `json:"bolts_nuts"`
	TieRodMaterial   string `json:"tie_rod_material"`
	TieRodSpec       string `json:"tie_rod_spec"`
}

type AccessoryOptions struct {
	LevelIndicator         string `json:"level_indicator"`
	InternalLadderMaterial string `json:"internal_ladder_material"`
	// -1 means "use the computed default" (one per compartment).
	InternalLadderQty      int    `json:"internal_ladder_qty"`
	ExternalLadderMaterial string `json:"external_ladder_material"`
	ExternalLadderQty      int    `json:"external_ladder_qty"`
}

type FittingItem struct {
	FittingType string `json:"fitting_type"`
	Quantity    int    `json:"quantity"`
	Position    string `json:"position,omitempty"`
}

type OrderInfo struct {
	OrderNo         string `json:"order_no,omitempty"`
	ProjectName     string `json:"project_name,omitempty"`
	Location        string `json:"location,omitempty"`
	SalesRep        string `json:"sales_rep,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty"`
	PaymentTerms    string `json:"payment_terms,omitempty"`
	PortOfDischarge string `json:"port_of_discharge,omitempty"`
}

type TankConfigRequest struct {
	OrderInfo        *OrderInfo       `json:"order_info,omitempty"`
	Dimensions       TankDimensions   `json:"dimensions"`
	PanelOptions     PanelOptions     `json:"panel_options"`
	SteelOptions     SteelOptions     `json:"steel_options"`
	AccessoryOptions AccessoryOptions `json:"accessory_options"`
	Fittings         []FittingItem    `json:"fittings"`
	ExchangeRate     float64          `json:"exchange_rate"`
}
