package bom

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"grptank/internal/storage"
)

// Catalog resolves a derived part number to its price and weight. Absent
// entries must be reported, never zeroed.
type Catalog interface {
	Resolve(partNo string) (storage.PartInfo, bool)
}

// Engine runs the calculator pipeline and assembles the final BOM.
type Engine struct {
	log         *slog.Logger
	catalog     Catalog
	tables      *Tables
	defaultRate float64
	spareFactor float64
}

func NewEngine(log *slog.Logger, catalog Catalog, defaultRate, spareFactor float64) *Engine {
	if defaultRate <= 0 {
		defaultRate = 3.75
	}
	if spareFactor < 1 {
		spareFactor = 1
	}
	return &Engine{
		log:         log,
		catalog:     catalog,
		tables:      DefaultTables(),
		defaultRate: defaultRate,
		spareFactor: spareFactor,
	}
}

// Capacity derives the volume and surface figures without running the full
// pipeline.
func Capacity(d storage.TankDimensions) (storage.CapacityInfo, error) {
	g, err := NewGeometry(d.Width, [4]float64{d.Length1, d.Length2, d.Length3, d.Length4}, d.Height)
	if err != nil {
		return storage.CapacityInfo{}, err
	}
	return capacityInfo(g), nil
}

func capacityInfo(g Geometry) storage.CapacityInfo {
	w := g.Width.Value()
	l := g.TotalLength()
	h := g.HeightRaw

	actual := w * l * (h - 0.2)
	if actual < 0 {
		actual = 0
	}
	surface := 2*(w*l+w*h+l*h) + w*h*float64(g.Partitions())

	return storage.CapacityInfo{
		NominalCapacityM3: round2(w * l * h),
		ActualCapacityM3:  round2(actual),
		SurfaceAreaM2:     round2(surface),
		TotalLength:       l,
		NumPartitions:     g.Partitions(),
	}
}

// Calculate validates the request, runs every calculator and resolves the
// merged part list against the catalog.
func (e *Engine) Calculate(ctx context.Context, req storage.TankConfigRequest) (*storage.BOMResult, error) {
	const op = "bom.engine.Calculate"

	if err := ValidateRequest(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d := req.Dimensions
	g, err := NewGeometry(d.Width, [4]float64{d.Length1, d.Length2, d.Length3, d.Length4}, d.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	capacity := capacityInfo(g)

	boltMaterials, err := ParseBoltOption(req.SteelOptions.BoltsNuts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Panels, skid and tie rods have no inputs besides the geometry, so they
	// run concurrently. Reinforcing feeds bolts and ETC, so those stay
	// sequential.
	var (
		panels  PanelResult
		skid    SteelSkidResult
		tieRods TieRodResult
	)

	grp, _ := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		panels, err = CalculatePanels(PanelInput{
			Geo:             g,
			UseSide1x1:      req.PanelOptions.UseSidePanel1x1,
			UsePartition1x1: req.PanelOptions.UsePartitionPanel1,
			Insulated:       Insulated(req.PanelOptions.Insulation),
		}, e.tables)
		return err
	})
	grp.Go(func() error {
		var err error
		skid, err = CalculateSteelSkid(SteelSkidInput{Geo: g, Option: req.SteelOptions.SteelSkid})
		return err
	})
	grp.Go(func() error {
		var err error
		tieRods, err = CalculateTieRods(TieRodInput{
			Geo:      g,
			Material: req.SteelOptions.TieRodMaterial,
			Spec:     req.SteelOptions.TieRodSpec,
		}, e.tables)
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reinf, err := CalculateReinforcing(ReinforcingInput{
		Geo:       g,
		Insulated: Insulated(req.PanelOptions.Insulation),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bolts, err := CalculateBolts(BoltsInput{
		Geo:             g,
		Materials:       boltMaterials,
		SpareFactor:     e.spareFactor,
		CrossPlate2Hole: reinf.CrossPlate2Hole,
		CrossPlate4Hole: reinf.CrossPlate4Hole,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	etc, err := CalculateETC(ETCInput{
		Geo:                    g,
		NominalCapacity:        capacity.NominalCapacityM3,
		LevelIndicator:         req.AccessoryOptions.LevelIndicator,
		InternalLadderMaterial: req.AccessoryOptions.InternalLadderMaterial,
		InternalLadderQty:      ladderQty(req.AccessoryOptions.InternalLadderQty),
		ExternalLadderMaterial: req.AccessoryOptions.ExternalLadderMaterial,
		ExternalLadderQty:      ladderQty(req.AccessoryOptions.ExternalLadderQty),
		PanelTape:              panels.TapeSubtotal,
		ReinforcingTape:        reinf.TapeSubtotal,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fittings, err := CalculateFittings(req.Fittings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var all []Item
	all = append(all, panels.Items...)
	all = append(all, skid.Items...)
	all = append(all, bolts.Items...)
	all = append(all, reinf.Internal...)
	all = append(all, reinf.External...)
	all = append(all, tieRods.Items...)
	all = append(all, etc.Items...)
	all = append(all, fittings.Items...)

	batch := d.Quantity
	if batch < 1 {
		batch = 1
	}

	bom, err := e.resolve(all, batch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rate := req.ExchangeRate
	if rate <= 0 {
		rate = e.defaultRate
	}

	result := &storage.BOMResult{
		Capacity:      capacity,
		BOM:           bom,
		CostSummary:   costSummary(bom, rate),
		WeightSummary: weightSummary(bom),
	}

	e.log.Info("bom calculated",
		slog.Float64("width", d.Width),
		slog.Float64("height", d.Height),
		slog.Int("partitions", g.Partitions()),
		slog.Int("line_items", len(bom)),
	)

	return result, nil
}

// resolve merges duplicate part numbers by summation in first-seen order,
// applies the batch multiplier and prices every line from the catalog.
func (e *Engine) resolve(items []Item, batch int) ([]storage.BOMItem, error) {
	order := make([]string, 0, len(items))
	merged := make(map[string]Item, len(items))

	for _, it := range items {
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%w: %s = %d", ErrInvariant, it.PartNo, it.Quantity)
		}
		if prev, ok := merged[it.PartNo]; ok {
			prev.Quantity += it.Quantity
			merged[it.PartNo] = prev
			continue
		}
		order = append(order, it.PartNo)
		merged[it.PartNo] = it
	}

	bom := make([]storage.BOMItem, 0, len(order))
	for _, partNo := range order {
		it := merged[partNo]

		info, ok := e.catalog.Resolve(partNo)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPart, partNo)
		}

		name := info.Name
		if name == "" {
			name = it.Desc
		}

		qty := it.Quantity * batch
		bom = append(bom, storage.BOMItem{
			PartNo:        partNo,
			PartName:      name,
			Quantity:      qty,
			UnitPriceUSD:  info.PriceUSD,
			TotalPriceUSD: round2(info.PriceUSD * float64(qty)),
			WeightKg:      info.WeightKg,
			TotalWeightKg: round2(info.WeightKg * float64(qty)),
			Category:      it.Category,
		})
	}

	return bom, nil
}

func costSummary(bom []storage.BOMItem, rate float64) storage.CostSummary {
	var s storage.CostSummary
	for _, it := range bom {
		switch it.Category {
		case CategoryPanels:
			s.Panels += it.TotalPriceUSD
		case CategorySteelSkid:
			s.SteelSkid += it.TotalPriceUSD
		case CategoryBoltsNuts:
			s.BoltsNuts += it.TotalPriceUSD
		case CategoryExternalReinf:
			s.ExternalReinforcing += it.TotalPriceUSD
		case CategoryInternalReinf:
			s.InternalReinforcing += it.TotalPriceUSD
		case CategoryTieRods, CategoryTieRodAcc:
			s.InternalTieRod += it.TotalPriceUSD
		case CategoryETC:
			s.Etc += it.TotalPriceUSD
		case CategoryFittings:
			s.Fittings += it.TotalPriceUSD
		}
		s.TotalUSD += it.TotalPriceUSD
	}

	s.Panels = round2(s.Panels)
	s.SteelSkid = round2(s.SteelSkid)
	s.BoltsNuts = round2(s.BoltsNuts)
	s.ExternalReinforcing = round2(s.ExternalReinforcing)
	s.InternalReinforcing = round2(s.InternalReinforcing)
	s.InternalTieRod = round2(s.InternalTieRod)
	s.Etc = round2(s.Etc)
	s.Fittings = round2(s.Fittings)
	s.TotalUSD = round2(s.TotalUSD)
	s.TotalSAR = round2(s.TotalUSD * rate)
	return s
}

func weightSummary(bom []storage.BOMItem) storage.WeightSummary {
	var s storage.WeightSummary
	for _, it := range bom {
		switch it.Category {
		case CategoryPanels:
			s.PanelsKg += it.TotalWeightKg
		case CategorySteelSkid, CategoryBoltsNuts, CategoryExternalReinf,
			CategoryInternalReinf, CategoryTieRods, CategoryTieRodAcc:
			s.SteelKg += it.TotalWeightKg
		case CategoryETC, CategoryFittings:
			s.AccessoriesKg += it.TotalWeightKg
		}
	}

	s.PanelsKg = round2(s.PanelsKg)
	s.SteelKg = round2(s.SteelKg)
	s.AccessoriesKg = round2(s.AccessoriesKg)
	s.TotalKg = round2(s.PanelsKg + s.SteelKg + s.AccessoriesKg)
	return s
}

// ladderQty normalizes the request value: zero (field omitted) means "use
// the computed default", matching the -1 sentinel.
func ladderQty(v int) int {
	if v <= 0 {
		return -1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
