package bom

import (
	"fmt"
	"slices"

	"grptank/internal/constants"
	"grptank/internal/storage"
)

// ValidateRequest rejects bad geometry and out-of-set options before any
// calculator runs. The engine assumes validated input past this point.
func ValidateRequest(req storage.TankConfigRequest) error {
	d := req.Dimensions

	if err := checkDimension("width", d.Width, 0.5, 20); err != nil {
		return err
	}
	if err := checkDimension("length1", d.Length1, 0.5, 20); err != nil {
		return err
	}
	for i, l := range []float64{d.Length2, d.Length3, d.Length4} {
		if l == 0 {
			continue
		}
		if err := checkDimension(fmt.Sprintf("length%d", i+2), l, 0.5, 20); err != nil {
			return err
		}
	}

	if !slices.Contains(constants.AvailableHeights, d.Height) {
		return fmt.Errorf("%w: height %v not in the enumerated set", ErrInvalidGeometry, d.Height)
	}

	if d.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d", ErrInvalidGeometry, d.Quantity)
	}

	if err := checkOption("insulation", req.PanelOptions.Insulation, constants.InsulationTypes); err != nil {
		return err
	}
	if err := checkOption("steel_skid", req.SteelOptions.SteelSkid, constants.SteelSkidTypes); err != nil {
		return err
	}
	if err := checkOption("internal_material", req.SteelOptions.InternalMaterial, constants.InternalMaterials); err != nil {
		return err
	}
	if err := checkOption("bolts_nuts", req.SteelOptions.BoltsNuts, constants.BoltsNutsOptions); err != nil {
		return err
	}
	if err := checkOption("tie_rod_material", req.SteelOptions.TieRodMaterial, constants.TieRodMaterials); err != nil {
		return err
	}
	if err := checkOption("tie_rod_spec", req.SteelOptions.TieRodSpec, constants.TieRodSpecs); err != nil {
		return err
	}
	if err := checkOption("level_indicator", req.AccessoryOptions.LevelIndicator, constants.LevelIndicators); err != nil {
		return err
	}
	if err := checkOption("internal_ladder_material", req.AccessoryOptions.InternalLadderMaterial, constants.InternalLadderMaterials); err != nil {
		return err
	}
	if err := checkOption("external_ladder_material", req.AccessoryOptions.ExternalLadderMaterial, constants.ExternalLadderMaterials); err != nil {
		return err
	}

	for _, f := range req.Fittings {
		if f.Quantity <= 0 {
			return fmt.Errorf("%w: fitting %q quantity %d", ErrInvalidGeometry, f.FittingType, f.Quantity)
		}
	}

	return nil
}

func checkDimension(name string, v, min, max float64) error {
	if v < min || v > max {
		return fmt.Errorf("%w: %s %v out of range [%v, %v]", ErrInvalidGeometry, name, v, min, max)
	}
	if _, err := Decompose(v); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func checkOption(name, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%w: %s %q", ErrUnresolvedOption, name, value)
	}
	return nil
}
