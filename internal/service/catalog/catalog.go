package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"

	"grptank/internal/storage"
)

// ErrPartNotFound marks a lookup for a part the catalog does not carry.
var ErrPartNotFound = errors.New("part not found")

// Loader fetches the full catalog from the backing store.
type Loader interface {
	LoadCatalog(ctx context.Context) ([]storage.PartInfo, error)
}

// snapshot is one immutable catalog generation. Lookups never see a
// half-reloaded state.
type snapshot struct {
	byPartNo map[string]storage.PartInfo
	ordered  []storage.PartInfo
}

// Catalog serves part prices and weights from an in-memory snapshot and
// supports atomic reload from the store.
type Catalog struct {
	log    *slog.Logger
	loader Loader
	cur    atomic.Pointer[snapshot]
}

func New(log *slog.Logger, loader Loader) *Catalog {
	c := &Catalog{log: log, loader: loader}
	c.cur.Store(&snapshot{byPartNo: map[string]storage.PartInfo{}})
	return c
}

// Reload fetches the catalog and swaps the snapshot in one step. On error
// the previous snapshot stays live.
func (c *Catalog) Reload(ctx context.Context) error {
	const op = "catalog.Reload"

	parts, err := c.loader.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	next := &snapshot{
		byPartNo: make(map[string]storage.PartInfo, len(parts)),
		ordered:  make([]storage.PartInfo, len(parts)),
	}
	copy(next.ordered, parts)
	sort.Slice(next.ordered, func(i, j int) bool {
		return next.ordered[i].PartNo < next.ordered[j].PartNo
	})
	for _, p := range next.ordered {
		next.byPartNo[p.PartNo] = p
	}

	c.cur.Store(next)
	c.log.Info("catalog reloaded", slog.Int("parts", len(parts)))
	return nil
}

// Resolve returns the catalog entry for a derived part number.
func (c *Catalog) Resolve(partNo string) (storage.PartInfo, bool) {
	p, ok := c.cur.Load().byPartNo[partNo]
	return p, ok
}

// Get is Resolve with a typed error for the HTTP layer.
func (c *Catalog) Get(partNo string) (storage.PartInfo, error) {
	p, ok := c.Resolve(partNo)
	if !ok {
		return storage.PartInfo{}, fmt.Errorf("%w: %s", ErrPartNotFound, partNo)
	}
	return p, nil
}

// List returns a stable page of the catalog ordered by part number.
func (c *Catalog) List(skip, limit int) []storage.PartInfo {
	ordered := c.cur.Load().ordered

	if skip < 0 {
		skip = 0
	}
	if skip >= len(ordered) {
		return nil
	}
	end := len(ordered)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}

	out := make([]storage.PartInfo, end-skip)
	copy(out, ordered[skip:end])
	return out
}

// Len reports the size of the live snapshot.
func (c *Catalog) Len() int {
	return len(c.cur.Load().ordered)
}
