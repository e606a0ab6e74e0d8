package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"grptank/internal/storage"
)

// LoadCatalog reads the full parts catalog for the in-memory snapshot.
func (s *Storage) LoadCatalog(ctx context.Context) ([]storage.PartInfo, error) {
	const op = "storage.mysql.LoadCatalog"

	query := `
        SELECT part_no, part_name, part_name_kr, spec, unit_price_usd, unit_weight_kg
        FROM catalog_parts
        ORDER BY part_no ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var parts []storage.PartInfo
	for rows.Next() {
		var p storage.PartInfo
		var nameKr, spec sql.NullString

		if err := rows.Scan(&p.PartNo, &p.Name, &nameKr, &spec, &p.PriceUSD, &p.WeightKg); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		p.NameKr = nameKr.String
		p.Spec = spec.String

		parts = append(parts, p)
	}

	return parts, rows.Err()
}

// GetPart reads a single catalog row, bypassing the snapshot.
func (s *Storage) GetPart(ctx context.Context, partNo string) (storage.PartInfo, error) {
	const op = "storage.mysql.GetPart"

	query := `
        SELECT part_no, part_name, part_name_kr, spec, unit_price_usd, unit_weight_kg
        FROM catalog_parts
        WHERE part_no = ?`

	var p storage.PartInfo
	var nameKr, spec sql.NullString

	err := s.db.QueryRowContext(ctx, query, partNo).
		Scan(&p.PartNo, &p.Name, &nameKr, &spec, &p.PriceUSD, &p.WeightKg)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.PartInfo{}, fmt.Errorf("%s: %w", op, storage.ErrPartNotExists)
	}
	if err != nil {
		return storage.PartInfo{}, fmt.Errorf("%s: %w", op, err)
	}

	p.NameKr = nameKr.String
	p.Spec = spec.String
	return p, nil
}

// UpsertPart writes one catalog row. Admin-only; the live snapshot picks it
// up on the next reload.
func (s *Storage) UpsertPart(ctx context.Context, p storage.PartInfo) error {
	const op = "storage.mysql.UpsertPart"

	query := `
        INSERT INTO catalog_parts (part_no, part_name, part_name_kr, spec, unit_price_usd, unit_weight_kg)
        VALUES (?, ?, ?, ?, ?, ?)
        ON DUPLICATE KEY UPDATE
            part_name = VALUES(part_name),
            part_name_kr = VALUES(part_name_kr),
            spec = VALUES(spec),
            unit_price_usd = VALUES(unit_price_usd),
            unit_weight_kg = VALUES(unit_weight_kg)`

	_, err := s.db.ExecContext(ctx, query,
		p.PartNo, p.Name, p.NameKr, p.Spec, p.PriceUSD, p.WeightKg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
