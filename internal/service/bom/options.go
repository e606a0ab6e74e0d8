package bom

import "fmt"

// SkidType is the resolved steel-skid profile family.
type SkidType int

const (
	SkidAngle75 SkidType = iota
	SkidChannel125
	SkidChannel150
)

// ResolveSkid maps the steel-skid option to a concrete profile. "Default"
// auto-selects by height. "Except SKB" resolves the profile the same way but
// reports except=true so every line is forced to quantity zero.
func ResolveSkid(option string, height float64) (SkidType, bool, error) {
	switch option {
	case "Angle 75":
		return SkidAngle75, false, nil
	case "Channel 125":
		return SkidChannel125, false, nil
	case "Channel 150":
		return SkidChannel150, false, nil
	case "Default", "", "Except SKB":
		var st SkidType
		switch {
		case height > 4.3:
			st = SkidChannel150
		case height > 2.5:
			st = SkidChannel125
		default:
			st = SkidAngle75
		}
		return st, option == "Except SKB", nil
	default:
		return 0, false, fmt.Errorf("%w: steel_skid %q", ErrUnresolvedOption, option)
	}
}

// BoltMaterials is the combined bolt option parsed into independent
// external/internal selections. The legacy sheet resolves SS316 internal
// bolts to SA4 (SS304) part numbers; the mapping here keeps that behavior.
type BoltMaterials struct {
	External     string // "HDG", "SS304" or "" when external bolts are excluded
	Internal     string // "SS304" or "" when all bolts are excluded
	Reinforcing  string
	SkipAll      bool
	SkipExternal bool
}

var boltOptionTable = map[string]BoltMaterials{
	"EXT:HDG/INT:SS304+R/F:HDG":   {External: "HDG", Internal: "SS304", Reinforcing: "HDG"},
	"EXT:HDG/INT:SS304+R/F:SS304": {External: "HDG", Internal: "SS304", Reinforcing: "SS304"},
	"EXT:SS304/INT:SS316":         {External: "SS304", Internal: "SS304", Reinforcing: "SS304"},
	"EXT:HDG/INT:SS316":           {External: "HDG", Internal: "SS304", Reinforcing: "HDG"},
	"EXT:SS304/INT:SS304":         {External: "SS304", Internal: "SS304", Reinforcing: "SS304"},
	"EXT:SS316/INT:SS316":         {External: "SS304", Internal: "SS304", Reinforcing: "SS304"},
	"Except All Bolts":            {SkipAll: true},
	"Except Panel Assemble Bolts": {Internal: "SS304", Reinforcing: "HDG", SkipExternal: true},
}

// ParseBoltOption resolves the combined bolt-material option string.
func ParseBoltOption(option string) (BoltMaterials, error) {
	if option == "" {
		return boltOptionTable["EXT:HDG/INT:SS304+R/F:HDG"], nil
	}
	m, ok := boltOptionTable[option]
	if !ok {
		return BoltMaterials{}, fmt.Errorf("%w: bolts_nuts %q", ErrUnresolvedOption, option)
	}
	return m, nil
}

// Insulated reports whether the insulation option means an insulated shell.
func Insulated(insulation string) bool {
	switch insulation {
	case "Insulated", "Insulated Roof Only", "Insulated(Roof,Side)":
		return true
	}
	return false
}

// TieRodSpecPrefix maps the tie-rod spec option to the part-number prefix.
func TieRodSpecPrefix(spec string) string {
	if spec == "M16" {
		return "16M"
	}
	return "12M"
}
