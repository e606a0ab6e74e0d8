package options

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"grptank/internal/constants"
	"grptank/internal/service/bom"
)

type Resp struct {
	ProductTypes            []string            `json:"product_types"`
	InsulationTypes         []string            `json:"insulation_types"`
	SteelSkidTypes          []string            `json:"steel_skid_types"`
	InternalMaterials       []string            `json:"internal_materials"`
	BoltsNutsOptions        []string            `json:"bolts_nuts_options"`
	TieRodMaterials         []string            `json:"tie_rod_materials"`
	TieRodSpecs             []string            `json:"tie_rod_specs"`
	LevelIndicators         []string            `json:"level_indicators"`
	InternalLadderMaterials []string            `json:"internal_ladder_materials"`
	ExternalLadderMaterials []string            `json:"external_ladder_materials"`
	AvailableHeights        []float64           `json:"available_heights"`
	Fittings                []bom.FittingOption `json:"fittings"`
}

// GetOptions handles GET /api/tank/options: every closed option set the
// configurator offers.
func GetOptions(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Resp{
			ProductTypes:            constants.ProductTypes,
			InsulationTypes:         constants.InsulationTypes,
			SteelSkidTypes:          constants.SteelSkidTypes,
			InternalMaterials:       constants.InternalMaterials,
			BoltsNutsOptions:        constants.BoltsNutsOptions,
			TieRodMaterials:         constants.TieRodMaterials,
			TieRodSpecs:             constants.TieRodSpecs,
			LevelIndicators:         constants.LevelIndicators,
			InternalLadderMaterials: constants.InternalLadderMaterials,
			ExternalLadderMaterials: constants.ExternalLadderMaterials,
			AvailableHeights:        constants.AvailableHeights,
			Fittings:                bom.AvailableFittings(),
		})
	}
}
