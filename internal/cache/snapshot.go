package cache

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/ukaji3/smartsheet-go/pkg/smartsheet/models"
)

// Summary describes a stored snapshot without decoding it.
type Summary struct {
	ID        uint64
	Name      string
	Version   uint64
	RowCount  int
	FetchedAt time.Time
}

// Save stores sheet, replacing any earlier snapshot of the same sheet.
func (db *DB) Save(ctx context.Context, sheet *models.Sheet) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sheet); err != nil {
		return fmt.Errorf("failed to encode sheet %d: %w", sheet.ID, err)
	}

	query := `
		INSERT INTO sheets (id, name, version, row_count, data, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			version = excluded.version,
			row_count = excluded.row_count,
			data = excluded.data,
			fetched_at = excluded.fetched_at
	`
	_, err := db.ExecContext(ctx, query,
		int64(sheet.ID),
		sheet.Name,
		int64(sheet.Version),
		len(sheet.Rows),
		buf.Bytes(),
		time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to save sheet %d: %w", sheet.ID, err)
	}
	return nil
}

// Load returns the stored snapshot of a sheet, or ErrNotFound.
func (db *DB) Load(ctx context.Context, id uint64) (*models.Sheet, time.Time, error) {
	var (
		data    []byte
		fetched int64
	)
	err := db.QueryRowContext(ctx, `SELECT data, fetched_at FROM sheets WHERE id = ?`, int64(id)).Scan(&data, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, fmt.Errorf("sheet %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to load sheet %d: %w", id, err)
	}

	var sheet models.Sheet
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sheet); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode sheet %d: %w", id, err)
	}
	return &sheet, time.Unix(0, fetched), nil
}

// Version returns the version of the stored snapshot, or ErrNotFound.
func (db *DB) Version(ctx context.Context, id uint64) (uint64, error) {
	var version int64
	err := db.QueryRowContext(ctx, `SELECT version FROM sheets WHERE id = ?`, int64(id)).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("sheet %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %d version: %w", id, err)
	}
	return uint64(version), nil
}

// List returns the stored snapshots, most recently fetched first.
func (db *DB) List(ctx context.Context) ([]Summary, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, version, row_count, fetched_at
		FROM sheets
		ORDER BY fetched_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			id, version, fetched int64
			s                    Summary
		)
		if err := rows.Scan(&id, &s.Name, &version, &s.RowCount, &fetched); err != nil {
			return nil, fmt.Errorf("failed to scan sheet: %w", err)
		}
		s.ID = uint64(id)
		s.Version = uint64(version)
		s.FetchedAt = time.Unix(0, fetched)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a snapshot. Deleting a missing sheet returns ErrNotFound.
func (db *DB) Delete(ctx context.Context, id uint64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM sheets WHERE id = ?`, int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete sheet %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("sheet %d: %w", id, ErrNotFound)
	}
	return nil
}
