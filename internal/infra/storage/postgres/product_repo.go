package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// ProductRepo implements storage.ProductRepository using PostgreSQL.
type ProductRepo struct {
	db *DB
}

// NewProductRepo creates a new PostgreSQL product repository.
func NewProductRepo(db *DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// productRow mirrors the products table. List-valued fields are stored as
// separator-joined text; the catalog serves them the same way.
type productRow struct {
	ID                 string          `db:"id"`
	Barcode            string          `db:"barcode"`
	Name               string          `db:"name"`
	Brand              string          `db:"brand"`
	GenericName        string          `db:"generic_name"`
	Categories         string          `db:"categories"`
	Packaging          string          `db:"packaging"`
	Labels             string          `db:"labels"`
	Ingredients        string          `db:"ingredients"`
	Quantity           string          `db:"quantity"`
	ImageURL           string          `db:"image_url"`
	EcoScoreGrade      sql.NullString  `db:"ecoscore_grade"`
	EcoScoreValue      sql.NullInt64   `db:"ecoscore_value"`
	PackagingMaterials string          `db:"packaging_materials"`
	ContainsPalmOil    sql.NullBool    `db:"contains_palm_oil"`
	CO2Per100g         sql.NullFloat64 `db:"co2_per_100g"`
	CreatedAt          time.Time       `db:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

const listSeparator = "\x1f"

// Put inserts or replaces a product.
func (r *ProductRepo) Put(ctx context.Context, p domain.Product) error {
	row := toRow(p)
	query := `
		INSERT INTO products (
			id, barcode, name, brand, generic_name, categories, packaging,
			labels, ingredients, quantity, image_url, ecoscore_grade,
			ecoscore_value, packaging_materials, contains_palm_oil,
			co2_per_100g, created_at, updated_at
		) VALUES (
			:id, :barcode, :name, :brand, :generic_name, :categories, :packaging,
			:labels, :ingredients, :quantity, :image_url, :ecoscore_grade,
			:ecoscore_value, :packaging_materials, :contains_palm_oil,
			:co2_per_100g, :created_at, :updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			barcode = EXCLUDED.barcode,
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			generic_name = EXCLUDED.generic_name,
			categories = EXCLUDED.categories,
			packaging = EXCLUDED.packaging,
			labels = EXCLUDED.labels,
			ingredients = EXCLUDED.ingredients,
			quantity = EXCLUDED.quantity,
			image_url = EXCLUDED.image_url,
			ecoscore_grade = EXCLUDED.ecoscore_grade,
			ecoscore_value = EXCLUDED.ecoscore_value,
			packaging_materials = EXCLUDED.packaging_materials,
			contains_palm_oil = EXCLUDED.contains_palm_oil,
			co2_per_100g = EXCLUDED.co2_per_100g,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// Get retrieves a product by identifier.
func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	var row productRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("failed to get product: %w", err)
	}
	return fromRow(row), true, nil
}

// SearchText finds stored products whose name, brand or categories contain
// the query.
func (r *ProductRepo) SearchText(ctx context.Context, query string) ([]domain.Product, error) {
	pattern := "%" + query + "%"
	var rows []productRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM products
		WHERE name ILIKE $1 OR brand ILIKE $1 OR categories ILIKE $1
		ORDER BY updated_at DESC
		LIMIT 50
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromRow(row))
	}
	return products, nil
}

func toRow(p domain.Product) productRow {
	row := productRow{
		ID:          p.ID,
		Barcode:     p.Barcode,
		Name:        p.Name,
		Brand:       p.Brand,
		GenericName: p.GenericName,
		Categories:  strings.Join(p.Categories, listSeparator),
		Packaging:   p.Packaging,
		Labels:      p.Labels,
		Ingredients: strings.Join(p.Ingredients, listSeparator),
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if env := p.Environment; env != nil {
		if env.EcoScoreGrade != "" {
			row.EcoScoreGrade = sql.NullString{String: env.EcoScoreGrade, Valid: true}
		}
		if env.EcoScoreValue != nil {
			row.EcoScoreValue = sql.NullInt64{Int64: int64(*env.EcoScoreValue), Valid: true}
		}
		row.PackagingMaterials = strings.Join(env.PackagingMaterials, listSeparator)
		row.ContainsPalmOil = sql.NullBool{Bool: env.ContainsPalmOil, Valid: true}
		if env.CO2Per100g != nil {
			row.CO2Per100g = sql.NullFloat64{Float64: *env.CO2Per100g, Valid: true}
		}
	}
	return row
}

func fromRow(row productRow) domain.Product {
	p := domain.Product{
		ID:          row.ID,
		Barcode:     row.Barcode,
		Name:        row.Name,
		Brand:       row.Brand,
		GenericName: row.GenericName,
		Categories:  splitJoined(row.Categories),
		Packaging:   row.Packaging,
		Labels:      row.Labels,
		Ingredients: splitJoined(row.Ingredients),
		Quantity:    row.Quantity,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	if row.EcoScoreGrade.Valid || row.EcoScoreValue.Valid || row.ContainsPalmOil.Valid ||
		row.CO2Per100g.Valid || row.PackagingMaterials != "" {
		env := &domain.EnvironmentInfo{
			EcoScoreGrade:      row.EcoScoreGrade.String,
			PackagingMaterials: splitJoined(row.PackagingMaterials),
			ContainsPalmOil:    row.ContainsPalmOil.Bool,
		}
		if row.EcoScoreValue.Valid {
			v := int(row.EcoScoreValue.Int64)
			env.EcoScoreValue = &v
		}
		if row.CO2Per100g.Valid {
			v := row.CO2Per100g.Float64
			env.CO2Per100g = &v
		}
		p.Environment = env
	}
	return p
}

func splitJoined(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSeparator)
}
