package storage

import (
	"context"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// ProductRepository is the durable tier of the resolution pipeline. It is
// assumed to serialize concurrent access internally and to survive process
// restarts.
type ProductRepository interface {
	// Get retrieves a product by identifier.
	Get(ctx context.Context, id string) (domain.Product, bool, error)

	// Put inserts or replaces a product.
	Put(ctx context.Context, p domain.Product) error

	// SearchText finds previously stored products whose name, brand or
	// categories contain the query (case-insensitive).
	SearchText(ctx context.Context, query string) ([]domain.Product, error)
}

// WasteCategoryRepository serves the closed waste category set.
type WasteCategoryRepository interface {
	// Get retrieves a category by identifier.
	Get(ctx context.Context, id domain.WasteCategoryID) (domain.WasteCategory, bool, error)

	// List returns all categories in sort order.
	List(ctx context.Context) ([]domain.WasteCategory, error)
}

// ScanHistoryRepository records resolved scans.
type ScanHistoryRepository interface {
	// Append stores one scan record.
	Append(ctx context.Context, rec domain.ScanRecord) error

	// List returns the newest records first, up to limit.
	List(ctx context.Context, limit int) ([]domain.ScanRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
