package bom

// BOM categories. The legacy sheet splits tie rods across two categories;
// cost summaries fold them back together.
const (
	CategoryPanels        = "Panels"
	CategorySteelSkid     = "Steel Skid"
	CategoryBoltsNuts     = "Bolts & Nuts"
	CategoryExternalReinf = "External Reinforcing"
	CategoryInternalReinf = "Internal Reinforcing"
	CategoryTieRods       = "Tie Rods"
	CategoryTieRodAcc     = "Internal Tie-rod"
	CategoryETC           = "ETC"
	CategoryFittings      = "Fittings"
)

// Item is one derived part line before catalog resolution.
type Item struct {
	PartNo   string
	Quantity int
	Category string
	Desc     string
}
