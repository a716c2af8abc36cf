// Package memory provides in-memory repository implementations, used when
// no database is configured and by tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mlehnert/binsight/internal/core/domain"
)

// Storage backs all in-memory repositories with one lock.
type Storage struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	scans    []domain.ScanRecord
}

// NewStorage creates empty in-memory storage.
func NewStorage() *Storage {
	return &Storage{
		products: make(map[string]domain.Product),
	}
}

// -----------------------------------------------------------------------------
// Product repository
// -----------------------------------------------------------------------------

type ProductRepo struct {
	store *Storage
}

func NewProductRepo(store *Storage) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	return p, ok, nil
}

func (r *ProductRepo) Put(ctx context.Context, p domain.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products[p.ID] = p
	return nil
}

func (r *ProductRepo) SearchText(ctx context.Context, query string) ([]domain.Product, error) {
	needle := strings.ToLower(query)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Product
	for _, p := range r.store.products {
		if matches(p, needle) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func matches(p domain.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle) {
		return true
	}
	for _, c := range p.Categories {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------
// Waste category repository
// -----------------------------------------------------------------------------

// CategoryRepo serves the fixed category set without persistence.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func (r *CategoryRepo) Get(ctx context.Context, id domain.WasteCategoryID) (domain.WasteCategory, bool, error) {
	c, ok := domain.CategoryByID(id)
	return c, ok, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.WasteCategory, error) {
	return domain.AllCategories(), nil
}

// -----------------------------------------------------------------------------
// Scan history repository
// -----------------------------------------------------------------------------

type ScanHistoryRepo struct {
	store *Storage
}

func NewScanHistoryRepo(store *Storage) *ScanHistoryRepo {
	return &ScanHistoryRepo{store: store}
}

func (r *ScanHistoryRepo) Append(ctx context.Context, rec domain.ScanRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.scans = append(r.store.scans, rec)
	return nil
}

func (r *ScanHistoryRepo) List(ctx context.Context, limit int) ([]domain.ScanRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.ScanRecord, len(r.store.scans))
	copy(out, r.store.scans)
	sort.Slice(out, func(i, j int) bool { return out[i].ScannedAt.After(out[j].ScannedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ScanHistoryRepo) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.scans = nil
	return nil
}
