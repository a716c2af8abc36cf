// Package control wires the service together and manages its lifecycle.
package control

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pressly/goose/v3"

	"github.com/mlehnert/binsight/internal/core/config"
	"github.com/mlehnert/binsight/internal/health"
	"github.com/mlehnert/binsight/internal/infra/cache"
	"github.com/mlehnert/binsight/internal/infra/catalog"
	"github.com/mlehnert/binsight/internal/infra/connectivity"
	redisclient "github.com/mlehnert/binsight/internal/infra/redis"
	"github.com/mlehnert/binsight/internal/infra/storage"
	"github.com/mlehnert/binsight/internal/infra/storage/memory"
	"github.com/mlehnert/binsight/internal/infra/storage/postgres"
	"github.com/mlehnert/binsight/internal/resolve"
)

// Service is the assembled application.
type Service struct {
	cfg      *config.AppConfig
	resolver *resolve.Resolver
	server   *health.Server
	db       *postgres.DB
	redis    *redisclient.Cache
	log      *slog.Logger
}

// NewService initializes all dependencies. Without a database URL the
// persistent tier is in-memory; without a Redis URL the memory tier is
// in-process.
func NewService(cfg *config.AppConfig) (*Service, error) {
	log := slog.Default()

	// Persistent tier
	var (
		productRepo  storage.ProductRepository
		categoryRepo storage.WasteCategoryRepository
		historyRepo  storage.ScanHistoryRepository
		db           *postgres.DB
	)
	if cfg.Database.URL != "" {
		var err error
		db, err = postgres.NewDB(context.Background(), cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to init db: %w", err)
		}

		if err := goose.SetDialect("postgres"); err != nil {
			return nil, err
		}
		if err := goose.Up(db.DB.DB, "migrations"); err != nil {
			return nil, fmt.Errorf("failed to migrate db: %w", err)
		}

		productRepo = postgres.NewProductRepo(db)
		categoryRepo = postgres.NewCategoryRepo(db)
		historyRepo = postgres.NewScanHistoryRepo(db)
		log.Info("Using PostgreSQL storage")
	} else {
		store := memory.NewStorage()
		productRepo = memory.NewProductRepo(store)
		categoryRepo = memory.NewCategoryRepo()
		historyRepo = memory.NewScanHistoryRepo(store)
		log.Warn("No database configured, using in-memory storage")
	}

	// Memory tier
	var (
		productCache resolve.ProductCache
		redisCache   *redisclient.Cache
	)
	if cfg.Cache.Redis.URL != "" {
		var err error
		redisCache, err = redisclient.NewCache(cfg.Cache.Redis, log)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis cache: %w", err)
		}
		productCache = redisCache
		log.Info("Using Redis product cache")
	} else {
		productCache = cache.NewMemory(cfg.Cache.TTL)
	}

	// Remote tier and connectivity oracle
	catalogClient := catalog.NewClient(cfg.Catalog, log)
	checker := connectivity.NewProbe(cfg.Connectivity.ProbeURL, cfg.Connectivity.Interval)

	resolver := resolve.New(resolve.Config{
		Cache:   productCache,
		Store:   productRepo,
		Catalog: catalogClient,
		Online:  checker,
		History: historyRepo,
		Logger:  log,
	})

	// Health surface
	monitor := health.NewMonitor()
	if db != nil {
		monitor.Register(health.Check{Name: "postgres", Critical: true, Probe: db.Health})
	}
	if redisCache != nil {
		monitor.Register(health.Check{Name: "redis", Probe: redisCache.Health})
	}
	monitor.Register(health.Check{
		Name: "connectivity",
		Probe: func(ctx context.Context) error {
			if !checker.IsOnline() {
				return fmt.Errorf("catalog unreachable, serving cached data only")
			}
			return nil
		},
	})

	server := health.NewServer(monitor, resolver, categoryRepo, historyRepo, cfg.Server.Port)

	return &Service{
		cfg:      cfg,
		resolver: resolver,
		server:   server,
		db:       db,
		redis:    redisCache,
		log:      log,
	}, nil
}

// Resolver exposes the resolution engine for one-shot CLI use.
func (s *Service) Resolver() *resolve.Resolver {
	return s.resolver
}

// Start launches the HTTP server.
func (s *Service) Start(ctx context.Context) error {
	s.log.Info("Starting binsight", "port", s.cfg.Server.Port)
	go func() {
		if err := s.server.Start(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server failed", "error", err)
		}
	}()
	return nil
}

// Stop shuts the service down, waiting for background refreshes.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.server.Stop(ctx); err != nil {
		return err
	}
	s.resolver.Close()
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	s.log.Info("Service stopped")
	return nil
}
