package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/flag-quiz-bot/internal/infra/postgres"
)

const schema = `
	CREATE TABLE IF NOT EXISTS flags (
		country_name TEXT PRIMARY KEY,
		flag_png     TEXT NOT NULL
	)
`

// FlagRepository is a flag provider backed by the flags table.
type FlagRepository struct {
	db postgres.DBTX
}

// NewFlagRepository creates a new FlagRepository with the provided database handle.
func NewFlagRepository(db postgres.DBTX) *FlagRepository {
	return &FlagRepository{db: db}
}

// EnsureSchema creates the flags table if it does not exist.
func (r *FlagRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure flags schema: %w", err)
	}
	return nil
}

// LoadFlags returns every stored flag.
func (r *FlagRepository) LoadFlags(ctx context.Context) ([]entities.FlagRecord, error) {
	query := `
		SELECT country_name, flag_png
		FROM flags
		ORDER BY country_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("query flags: %w", err)}
	}

	records, err := pgx.CollectRows(rows, scanFlag)
	if err != nil {
		return nil, &entities.FetchError{Err: fmt.Errorf("scan flags: %w", err)}
	}

	return records, nil
}

// ReplaceAllWithTx replaces the stored catalog with records within a transaction
// and returns the number of rows stored.
// Records with an empty name or image are skipped; duplicate names keep the last image.
func (r *FlagRepository) ReplaceAllWithTx(ctx context.Context, tx pgx.Tx, records []entities.FlagRecord) (int, error) {
	if _, err := tx.Exec(ctx, `DELETE FROM flags`); err != nil {
		return 0, fmt.Errorf("clear flags: %w", err)
	}

	unique := uniqueByName(records)
	if len(unique) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO flags (country_name, flag_png)
		VALUES ($1, $2)
		ON CONFLICT (country_name) DO UPDATE SET flag_png = EXCLUDED.flag_png
	`

	batch := &pgx.Batch{}
	for _, rec := range unique {
		batch.Queue(query, rec.CountryName, rec.FlagImageRef)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("insert flags: %w", err)
	}

	return len(unique), nil
}

// uniqueByName drops unusable records and collapses repeated names onto the
// position of their first occurrence, keeping the image of the last one.
func uniqueByName(records []entities.FlagRecord) []entities.FlagRecord {
	out := make([]entities.FlagRecord, 0, len(records))
	pos := make(map[string]int, len(records))
	for _, rec := range records {
		if !rec.Usable() {
			continue
		}
		if i, ok := pos[rec.CountryName]; ok {
			out[i] = rec
			continue
		}
		pos[rec.CountryName] = len(out)
		out = append(out, rec)
	}
	return out
}

func scanFlag(row pgx.CollectableRow) (entities.FlagRecord, error) {
	var f entities.FlagRecord
	err := row.Scan(&f.CountryName, &f.FlagImageRef)
	return f, err
}
