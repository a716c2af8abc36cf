package resolve

import (
	"context"
	"strings"

	"github.com/mlehnert/binsight/internal/core/domain"
	"github.com/mlehnert/binsight/internal/metrics"
)

// SearchByTerm looks up products by free text. Online, the remote catalog
// is authoritative and every parsed record is written through to the
// persistent tier; an empty result list is a valid success. Offline, the
// persistent tier's text search serves stale results, and an empty offline
// result is an error.
func (r *Resolver) SearchByTerm(ctx context.Context, query string, regionOnly bool) domain.Outcome[[]domain.Product] {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Fail[[]domain.Product](domain.InvalidInputError("Search query cannot be empty"))
	}

	if !r.online.IsOnline() {
		return r.searchOffline(ctx, query)
	}

	products, err := r.catalog.Search(ctx, query, regionOnly, r.pageSize, 1)
	if err != nil {
		// Cached results beat a hard failure.
		if cached, serr := r.store.SearchText(ctx, query); serr == nil && len(cached) > 0 {
			metrics.ResolutionsTotal.WithLabelValues("store", "search_stale").Inc()
			return domain.Stale(cached)
		}
		metrics.ResolutionsTotal.WithLabelValues("remote", "search_error").Inc()
		return domain.Fail[[]domain.Product](translateCatalogError(err))
	}

	for _, p := range products {
		if err := r.Persist(ctx, p); err != nil {
			r.log.Warn("search write-through failed", "id", p.ID, "error", err)
		}
	}

	metrics.ResolutionsTotal.WithLabelValues("remote", "search_hit").Inc()
	return domain.OK(products)
}

func (r *Resolver) searchOffline(ctx context.Context, query string) domain.Outcome[[]domain.Product] {
	cached, err := r.store.SearchText(ctx, query)
	if err != nil {
		return domain.Fail[[]domain.Product](domain.DatabaseError("offline search for "+query, err))
	}
	if len(cached) == 0 {
		return domain.Fail[[]domain.Product](domain.OfflineError("no connectivity and no cached results for " + query))
	}
	metrics.ResolutionsTotal.WithLabelValues("store", "search_stale").Inc()
	return domain.Stale(cached)
}
