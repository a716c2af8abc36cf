package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// ScanHistoryRepo implements storage.ScanHistoryRepository using
// PostgreSQL.
type ScanHistoryRepo struct {
	db *DB
}

// NewScanHistoryRepo creates a new PostgreSQL scan history repository.
func NewScanHistoryRepo(db *DB) *ScanHistoryRepo {
	return &ScanHistoryRepo{db: db}
}

type scanRow struct {
	ID          string    `db:"id"`
	Barcode     string    `db:"barcode"`
	ProductName string    `db:"product_name"`
	CategoryID  string    `db:"category_id"`
	ScannedAt   time.Time `db:"scanned_at"`
}

// Append stores one scan record, assigning an id when absent.
func (r *ScanHistoryRepo) Append(ctx context.Context, rec domain.ScanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO scan_history (id, barcode, product_name, category_id, scanned_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ID, rec.Barcode, rec.ProductName, string(rec.CategoryID), rec.ScannedAt)
	if err != nil {
		return fmt.Errorf("failed to append scan record: %w", err)
	}
	return nil
}

// List returns the newest records first, up to limit.
func (r *ScanHistoryRepo) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []scanRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM scan_history ORDER BY scanned_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scan history: %w", err)
	}

	records := make([]domain.ScanRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ScanRecord{
			ID:          row.ID,
			Barcode:     row.Barcode,
			ProductName: row.ProductName,
			CategoryID:  domain.WasteCategoryID(row.CategoryID),
			ScannedAt:   row.ScannedAt,
		})
	}
	return records, nil
}

// Clear removes all records.
func (r *ScanHistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scan_history`); err != nil {
		return fmt.Errorf("failed to clear scan history: %w", err)
	}
	return nil
}
