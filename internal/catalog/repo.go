package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads reference data from Postgres. Queries are plain SQL over the
// shared pool; the tables are small and read-mostly.
type Repo struct {
	pool *pgxpool.Pool
}

// NewRepo constructs a Repo over the shared pool.
func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, category_code, name, unit_of_measure, base_price, price_black, price_color, active`

// ListEntries returns active price-list entries ordered for display.
func (r *Repo) ListEntries(ctx context.Context, params ListParams) ([]Entry, error) {
	offset := (params.Page - 1) * params.Limit
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + entryColumns + `
FROM price_list_items
WHERE active AND ($1 = '' OR category_code = $1)
ORDER BY category_code, sort_order, name
LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, params.Category, params.Limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query price list: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, params.Limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CategoryCode, &e.Name, &e.UnitOfMeasure, &e.BasePrice, &e.PriceBlack, &e.PriceColor, &e.Active); err != nil {
			return nil, fmt.Errorf("scan price list row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountEntries returns the number of active entries matching the filter.
func (r *Repo) CountEntries(ctx context.Context, category string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM price_list_items WHERE active AND ($1 = '' OR category_code = $1)`,
		category,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count price list: %w", err)
	}
	return total, nil
}

// GetEntry returns one entry by id, active or not. Callers decide whether an
// inactive entry is usable; pricing against a retired position is allowed for
// orders opened before retirement.
func (r *Repo) GetEntry(ctx context.Context, id uuid.UUID) (Entry, error) {
	var e Entry
	err := r.pool.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM price_list_items WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.CategoryCode, &e.Name, &e.UnitOfMeasure, &e.BasePrice, &e.PriceBlack, &e.PriceColor, &e.Active)
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// ListModifiers returns the full modifier catalog, inactive rows included,
// ordered for display.
func (r *Repo) ListModifiers(ctx context.Context) ([]Modifier, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code, name, description, type, value, active, sort_order, category_restrictions
FROM price_modifiers
ORDER BY sort_order, code`)
	if err != nil {
		return nil, fmt.Errorf("query modifiers: %w", err)
	}
	defer rows.Close()

	var modifiers []Modifier
	for rows.Next() {
		var m Modifier
		if err := rows.Scan(&m.Code, &m.Name, &m.Description, &m.Type, &m.Value, &m.Active, &m.SortOrder, &m.CategoryRestrictions); err != nil {
			return nil, fmt.Errorf("scan modifier row: %w", err)
		}
		modifiers = append(modifiers, m)
	}
	return modifiers, rows.Err()
}
