// Package resolve implements the tiered product resolution pipeline:
// memory tier, persistent tier, remote catalog, with write-back and
// best-effort background refresh.
package resolve

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mlehnert/binsight/internal/classify"
	"github.com/mlehnert/binsight/internal/core/domain"
	"github.com/mlehnert/binsight/internal/infra/catalog"
	"github.com/mlehnert/binsight/internal/infra/connectivity"
	"github.com/mlehnert/binsight/internal/infra/storage"
	"github.com/mlehnert/binsight/internal/metrics"
)

// CatalogClient is the remote tier contract. Implementations enforce their
// own timeouts and surface status-class errors.
type CatalogClient interface {
	FetchByIdentifier(ctx context.Context, id string) (domain.Product, bool, error)
	Search(ctx context.Context, query string, regionOnly bool, pageSize, page int) ([]domain.Product, error)
}

// ProductCache is the memory tier contract. Implementations must be safe
// for concurrent use and are best-effort: a failed lookup is a miss.
type ProductCache interface {
	Get(ctx context.Context, id string) (domain.Product, bool)
	Set(ctx context.Context, p domain.Product)
}

// RefreshFunc receives the second, authoritative delivery when a background
// refresh supersedes a cache-served result. It runs on the refresh
// goroutine and must not block for long.
type RefreshFunc func(domain.Outcome[domain.Product])

// Config wires the resolver's collaborators.
type Config struct {
	Cache   ProductCache
	Store   storage.ProductRepository
	Catalog CatalogClient
	Online  connectivity.Checker
	History storage.ScanHistoryRepository // optional
	Logger  *slog.Logger

	// PageSize bounds remote search pages. Defaults to 20.
	PageSize int
	// RefreshTimeout bounds the background refresh call. Defaults to 15s.
	RefreshTimeout time.Duration
}

// Resolver orchestrates the tiered lookup. It owns all writes to the
// memory and persistent tiers and translates every collaborator failure
// into the error taxonomy before surfacing it.
type Resolver struct {
	cache   ProductCache
	store   storage.ProductRepository
	catalog CatalogClient
	online  connectivity.Checker
	history storage.ScanHistoryRepository
	log     *slog.Logger

	pageSize       int
	refreshTimeout time.Duration

	flight    singleflight.Group
	refreshWG sync.WaitGroup
}

// New creates a resolver. Cache, Store, Catalog and Online are required.
func New(cfg Config) *Resolver {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	refreshTimeout := cfg.RefreshTimeout
	if refreshTimeout <= 0 {
		refreshTimeout = 15 * time.Second
	}

	return &Resolver{
		cache:          cfg.Cache,
		store:          cfg.Store,
		catalog:        cfg.Catalog,
		online:         cfg.Online,
		history:        cfg.History,
		log:            log,
		pageSize:       pageSize,
		refreshTimeout: refreshTimeout,
	}
}

// ResolveByIdentifier resolves a product through the tiers in strict order:
// memory, persistent store, remote catalog. The returned outcome is the
// provisional delivery; when a persistent-tier hit triggers a background
// refresh, onRefresh (if non-nil) later receives the fresh, authoritative
// result. Refresh failures are swallowed; a served cached value is never
// retracted.
func (r *Resolver) ResolveByIdentifier(ctx context.Context, id string, onRefresh RefreshFunc) domain.Outcome[domain.Product] {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Fail[domain.Product](domain.InvalidInputError("Barcode cannot be empty"))
	}

	// Tier 1: memory
	if p, ok := r.cache.Get(ctx, id); ok {
		metrics.ResolutionsTotal.WithLabelValues("memory", "hit").Inc()
		r.recordScan(p)
		return domain.Cached(p)
	}

	// Tier 2: persistent store
	p, found, err := r.store.Get(ctx, id)
	if err != nil {
		// A broken store degrades to a miss; the remote tier may still serve.
		r.log.Warn("persistent tier read failed", "id", id, "error", err)
	}
	if found {
		r.cache.Set(ctx, p)
		r.recordScan(p)
		if !r.online.IsOnline() {
			metrics.ResolutionsTotal.WithLabelValues("store", "stale").Inc()
			return domain.Stale(p)
		}
		metrics.ResolutionsTotal.WithLabelValues("store", "hit").Inc()
		r.scheduleRefresh(id, onRefresh)
		return domain.Cached(p)
	}

	// Tier 3: remote catalog
	if !r.online.IsOnline() {
		metrics.ResolutionsTotal.WithLabelValues("none", "offline").Inc()
		return domain.Fail[domain.Product](domain.OfflineError("no connectivity and no cached product for " + id))
	}

	out := r.fetchRemote(ctx, id, true)
	if out.Ok() {
		metrics.ResolutionsTotal.WithLabelValues("remote", "hit").Inc()
		r.recordScan(out.Value())
	} else {
		metrics.ResolutionsTotal.WithLabelValues("remote", out.Err().Kind.String()).Inc()
	}
	return out
}

// Persist writes a product through both tiers. Used internally after remote
// fetches and by callers explicitly caching a record.
func (r *Resolver) Persist(ctx context.Context, p domain.Product) error {
	if err := r.store.Put(ctx, p); err != nil {
		return domain.DatabaseError("persist product "+p.ID, err)
	}
	r.cache.Set(ctx, p)
	return nil
}

// Close waits for in-flight background refreshes to finish.
func (r *Resolver) Close() {
	r.refreshWG.Wait()
}

// fetchRemote performs the remote fetch with in-flight deduplication:
// concurrent resolutions of the same identifier share one catalog call and
// one write-through. storeFallback enables the last-chance persistent read
// after a remote failure; only the synchronous path wants it, a background
// refresh must fail silently instead of re-delivering the stored value.
func (r *Resolver) fetchRemote(ctx context.Context, id string, storeFallback bool) domain.Outcome[domain.Product] {
	v, err, _ := r.flight.Do(id, func() (any, error) {
		p, found, err := r.catalog.FetchByIdentifier(ctx, id)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, domain.NotFoundError("catalog has no record for " + id)
		}
		if err := r.Persist(ctx, p); err != nil {
			// The product was resolved; a failed write-through only costs
			// the next caller a remote trip.
			r.log.Warn("write-through failed", "id", id, "error", err)
		}
		return p, nil
	})
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.Fail[domain.Product](domain.AsError(err))
		}
		// Last chance: a concurrent caller may have written the product
		// to the store while our remote call failed.
		if storeFallback {
			if p, found, serr := r.store.Get(ctx, id); serr == nil && found {
				r.cache.Set(ctx, p)
				return domain.Stale(p)
			}
		}
		return domain.Fail[domain.Product](translateCatalogError(err))
	}
	return domain.OK(v.(domain.Product))
}

// scheduleRefresh issues the fire-and-forget remote re-fetch after a
// persistent-tier hit. It never blocks the caller and never retracts the
// already-served value.
func (r *Resolver) scheduleRefresh(id string, onRefresh RefreshFunc) {
	r.refreshWG.Add(1)
	go func() {
		defer r.refreshWG.Done()

		ctx, cancel := context.WithTimeout(context.Background(), r.refreshTimeout)
		defer cancel()

		out := r.fetchRemote(ctx, id, false)
		if !out.Ok() {
			metrics.BackgroundRefreshTotal.WithLabelValues("failed").Inc()
			r.log.Debug("background refresh failed", "id", id, "error", out.Err())
			return
		}
		metrics.BackgroundRefreshTotal.WithLabelValues("ok").Inc()
		if onRefresh != nil {
			onRefresh(out)
		}
	}()
}

// recordScan appends a scan history entry. Failures are logged only; the
// resolve caller never sees them.
func (r *Resolver) recordScan(p domain.Product) {
	if r.history == nil {
		return
	}
	category := classify.Classify(p)
	rec := domain.ScanRecord{
		Barcode:     p.Barcode,
		ProductName: p.Name,
		CategoryID:  category.ID,
		ScannedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.history.Append(ctx, rec); err != nil {
		r.log.Warn("scan history append failed", "barcode", p.Barcode, "error", err)
		return
	}
	metrics.ScansTotal.WithLabelValues(string(category.ID)).Inc()
}

// translateCatalogError maps a raw catalog failure into the taxonomy. No
// foreign error type leaves the resolver.
func translateCatalogError(err error) *domain.Error {
	var appErr *domain.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var apiErr *catalog.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 404:
			return domain.NotFoundError(apiErr.Error())
		case apiErr.StatusCode >= 500:
			return domain.ServerError(apiErr.StatusCode, apiErr.Error())
		default:
			return domain.NetworkError(apiErr.Error(), apiErr)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.TimeoutError("catalog request deadline exceeded", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.TimeoutError("catalog request timed out", err)
	}

	return domain.NetworkError(err.Error(), err)
}
