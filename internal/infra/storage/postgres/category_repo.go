package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// CategoryRepo implements storage.WasteCategoryRepository using
// PostgreSQL. The table is seeded by the migrations.
type CategoryRepo struct {
	db *DB
}

// NewCategoryRepo creates a new PostgreSQL waste category repository.
func NewCategoryRepo(db *DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

type categoryRow struct {
	ID            string `db:"id"`
	NameDE        string `db:"name_de"`
	NameEN        string `db:"name_en"`
	DescriptionDE string `db:"description_de"`
	DescriptionEN string `db:"description_en"`
	Icon          string `db:"icon"`
	ColorHex      string `db:"color_hex"`
	SortOrder     int    `db:"sort_order"`
}

// Get retrieves a category by identifier.
func (r *CategoryRepo) Get(ctx context.Context, id domain.WasteCategoryID) (domain.WasteCategory, bool, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM waste_categories WHERE id = $1`, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WasteCategory{}, false, nil
	}
	if err != nil {
		return domain.WasteCategory{}, false, fmt.Errorf("failed to get waste category: %w", err)
	}
	return fromCategoryRow(row), true, nil
}

// List returns all categories in sort order.
func (r *CategoryRepo) List(ctx context.Context) ([]domain.WasteCategory, error) {
	var rows []categoryRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM waste_categories ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to list waste categories: %w", err)
	}

	categories := make([]domain.WasteCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, fromCategoryRow(row))
	}
	return categories, nil
}

func fromCategoryRow(row categoryRow) domain.WasteCategory {
	return domain.WasteCategory{
		ID:            domain.WasteCategoryID(row.ID),
		NameDE:        row.NameDE,
		NameEN:        row.NameEN,
		DescriptionDE: row.DescriptionDE,
		DescriptionEN: row.DescriptionEN,
		Icon:          row.Icon,
		ColorHex:      row.ColorHex,
		SortOrder:     row.SortOrder,
	}
}
