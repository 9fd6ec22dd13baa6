package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// SnapshotInfo describes the stored snapshot.
type SnapshotInfo struct {
	Source        string
	RecordCount   int
	SchemaVersion int
}

// SaveCatalog replaces the stored snapshot with records, in one transaction.
// source is recorded as the snapshot origin (typically the catalog path).
func (s *Store) SaveCatalog(ctx context.Context, records []catalog.Record, source string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("save catalog: clear records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records
		(position, sku, name, category, subcategory, gender, manufacturer,
		 total, available, hold, sold, requested,
		 wholesale, retail, msrp, sizes, colors)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		sizes, err := marshalList(r.Sizes)
		if err != nil {
			return fmt.Errorf("save catalog: record %s: %w", r.SKU, err)
		}
		colors, err := marshalList(r.Colors)
		if err != nil {
			return fmt.Errorf("save catalog: record %s: %w", r.SKU, err)
		}
		_, err = stmt.ExecContext(ctx,
			i,
			r.SKU,
			r.Name,
			r.Category,
			r.Subcategory,
			string(r.Gender),
			r.Manufacturer,
			r.Total,
			r.Available,
			r.Hold,
			r.Sold,
			r.Requested,
			r.Wholesale.String(),
			r.Retail.String(),
			r.MSRP.String(),
			sizes,
			colors,
		)
		if err != nil {
			return fmt.Errorf("save catalog: record %s: %w", r.SKU, err)
		}
	}

	meta := map[string]string{
		"source":       source,
		"record_count": strconv.Itoa(len(records)),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, k, v); err != nil {
			return fmt.Errorf("save catalog: meta %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save catalog: commit: %w", err)
	}
	return nil
}

// LoadCatalog returns the stored records in their original order.
// Returns an empty slice (not nil) for an empty snapshot.
func (s *Store) LoadCatalog(ctx context.Context) ([]catalog.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sku, name, category, subcategory, gender, manufacturer,
		       total, available, hold, sold, requested,
		       wholesale, retail, msrp, sizes, colors
		FROM records
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []catalog.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Snapshot returns metadata about the stored snapshot. A database that has
// never been written reports zero records and no source.
func (s *Store) Snapshot(ctx context.Context) (SnapshotInfo, error) {
	var info SnapshotInfo

	version, err := s.schemaVersion()
	if err != nil {
		return info, err
	}
	info.SchemaVersion = version

	source, err := s.meta(ctx, "source")
	if err != nil {
		return info, err
	}
	info.Source = source

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&info.RecordCount); err != nil {
		return info, fmt.Errorf("count records: %w", err)
	}
	return info, nil
}

func (s *Store) meta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read meta %s: %w", key, err)
	}
	return value, nil
}

// scanRecord scans one records row.
func scanRecord(rows *sql.Rows) (catalog.Record, error) {
	var (
		r                       catalog.Record
		gender                  string
		wholesale, retail, msrp string
		sizes, colors           string
	)
	err := rows.Scan(
		&r.SKU,
		&r.Name,
		&r.Category,
		&r.Subcategory,
		&gender,
		&r.Manufacturer,
		&r.Total,
		&r.Available,
		&r.Hold,
		&r.Sold,
		&r.Requested,
		&wholesale,
		&retail,
		&msrp,
		&sizes,
		&colors,
	)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("scan record: %w", err)
	}
	r.Gender = catalog.Gender(gender)

	if r.Wholesale, err = unmarshalMoney("wholesale", wholesale); err != nil {
		return catalog.Record{}, fmt.Errorf("record %s: %w", r.SKU, err)
	}
	if r.Retail, err = unmarshalMoney("retail", retail); err != nil {
		return catalog.Record{}, fmt.Errorf("record %s: %w", r.SKU, err)
	}
	if r.MSRP, err = unmarshalMoney("msrp", msrp); err != nil {
		return catalog.Record{}, fmt.Errorf("record %s: %w", r.SKU, err)
	}
	if r.Sizes, err = unmarshalList(sizes); err != nil {
		return catalog.Record{}, fmt.Errorf("record %s: %w", r.SKU, err)
	}
	if r.Colors, err = unmarshalList(colors); err != nil {
		return catalog.Record{}, fmt.Errorf("record %s: %w", r.SKU, err)
	}
	return r, nil
}
