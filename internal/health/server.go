package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mlehnert/binsight/internal/classify"
	"github.com/mlehnert/binsight/internal/core/domain"
	"github.com/mlehnert/binsight/internal/infra/storage"
	"github.com/mlehnert/binsight/internal/resolve"
)

// Server provides the HTTP surface: health, metrics and the lookup API.
type Server struct {
	monitor    *Monitor
	resolver   *resolve.Resolver
	categories storage.WasteCategoryRepository
	history    storage.ScanHistoryRepository
	server     *http.Server
}

// NewServer creates the HTTP server.
func NewServer(
	monitor *Monitor,
	resolver *resolve.Resolver,
	categories storage.WasteCategoryRepository,
	history storage.ScanHistoryRepository,
	port int,
) *Server {
	mux := http.NewServeMux()
	s := &Server{
		monitor:    monitor,
		resolver:   resolver,
		categories: categories,
		history:    history,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/products/", s.handleProduct)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/history", s.handleHistory)

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reports, overall := s.monitor.Report(r.Context())

	code := http.StatusOK
	if overall == StatusCritical {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status":     overall,
		"components": reports,
	})
}

// productView is the API shape of a resolved product with its guidance.
type productView struct {
	Product   domain.Product        `json:"product"`
	Category  domain.WasteCategory  `json:"category"`
	Deposit   domain.DepositVerdict `json:"deposit"`
	FromCache bool                  `json:"from_cache"`
	Stale     bool                  `json:"stale"`
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	barcode := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if barcode == "" || strings.Contains(barcode, "/") {
		http.NotFound(w, r)
		return
	}

	out := s.resolver.ResolveByIdentifier(r.Context(), barcode, nil)
	if !out.Ok() {
		writeError(w, out.Err())
		return
	}

	p := out.Value()
	writeJSON(w, http.StatusOK, productView{
		Product:   p,
		Category:  classify.Classify(p),
		Deposit:   classify.CheckDeposit(p),
		FromCache: out.FromCache(),
		Stale:     out.IsStale(),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	regionOnly := r.URL.Query().Get("region") == "1"

	out := s.resolver.SearchByTerm(r.Context(), query, regionOnly)
	if !out.Ok() {
		writeError(w, out.Err())
		return
	}

	views := make([]productView, 0, len(out.Value()))
	for _, p := range out.Value() {
		views = append(views, productView{
			Product:   p,
			Category:  classify.Classify(p),
			Deposit:   classify.CheckDeposit(p),
			FromCache: out.FromCache(),
			Stale:     out.IsStale(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": views,
		"stale":   out.IsStale(),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		writeError(w, domain.DatabaseError("list categories", err))
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		records, err := s.history.List(r.Context(), limit)
		if err != nil {
			writeError(w, domain.DatabaseError("list scan history", err))
			return
		}
		writeJSON(w, http.StatusOK, records)
	case http.MethodDelete:
		if err := s.history.Clear(r.Context()); err != nil {
			writeError(w, domain.DatabaseError("clear scan history", err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err *domain.Error) {
	code := http.StatusInternalServerError
	switch err.Kind {
	case domain.KindInvalidInput:
		code = http.StatusBadRequest
	case domain.KindNotFound:
		code = http.StatusNotFound
	case domain.KindOffline, domain.KindNetwork:
		code = http.StatusServiceUnavailable
	case domain.KindTimeout:
		code = http.StatusGatewayTimeout
	case domain.KindServer:
		code = http.StatusBadGateway
	}
	writeJSON(w, code, map[string]any{
		"error":   err.Kind.String(),
		"message": err.UserMessage,
	})
}
