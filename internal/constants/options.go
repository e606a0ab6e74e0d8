package constants

// Closed option sets served by GET /api/tank/options. The engine validates
// requests against the same lists.

var ProductTypes = []string{"MNT", "Not Included"}

var InsulationTypes = []string{
	"Non-Insulated",
	"Insulated",
	"Insulated Roof Only",
	"Insulated(Roof,Side)",
	"Non-insulated(Roof Only)",
}

var SteelSkidTypes = []string{
	"Default",
	"Angle 75",
	"Channel 125",
	"Channel 150",
	"Except SKB",
}

var InternalMaterials = []string{"SS316", "SS304"}

var BoltsNutsOptions = []string{
	"EXT:HDG/INT:SS304+R/F:HDG",
	"EXT:HDG/INT:SS304+R/F:SS304",
	"EXT:SS304/INT:SS316",
	"EXT:HDG/INT:SS316",
	"EXT:SS304/INT:SS304",
	"EXT:SS316/INT:SS316",
	"Except All Bolts",
	"Except Panel Assemble Bolts",
}

var TieRodMaterials = []string{"SS316", "SS304", "SS304+PET coated", "SS316+PE Coated"}

var TieRodSpecs = []string{"M12", "M16", "3mH_Tie_Rod(1+1)", "3mH_Tie_Rod(2+1)"}

var LevelIndicators = []string{"General", "Sensor", "No needed"}

var InternalLadderMaterials = []string{"GRP", "SS304", "SS316L"}

var ExternalLadderMaterials = []string{"HDG", "SS304", "SS316"}

var AvailableHeights = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5, 5.0}
