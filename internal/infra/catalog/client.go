// Package catalog implements the remote catalog client for an Open Food
// Facts compatible API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mlehnert/binsight/internal/core/domain"
	"github.com/mlehnert/binsight/internal/metrics"
)

// APIError is a non-2xx response from the catalog service. The resolution
// engine maps it into the error taxonomy; it never crosses the engine's
// public surface.
type APIError struct {
	StatusCode int
	Operation  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog %s: unexpected status %d", e.Operation, e.StatusCode)
}

// Config holds catalog client settings.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Region    string        `yaml:"region"`
}

// Client talks to the catalog API. It enforces connect/read timeouts and
// retries transient failures with fibonacci backoff; callers see either a
// parsed product or a single terminal error.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a catalog client with sane defaults.
func NewClient(cfg Config, log *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://world.openfoodfacts.org"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "binsight/1.0"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Region == "" {
		cfg.Region = "Germany"
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// FetchByIdentifier fetches one product by barcode. found is false when the
// catalog has no record, without error.
func (c *Client) FetchByIdentifier(ctx context.Context, id string) (domain.Product, bool, error) {
	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.cfg.BaseURL, url.PathEscape(id))

	body, err := c.get(ctx, "fetch", reqURL)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return domain.Product{}, false, nil
		}
		return domain.Product{}, false, err
	}

	var resp productResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Product{}, false, domain.ParseError("decode product response", err)
	}

	// status 0 is the catalog's own "product not found"
	if resp.Status != 1 || resp.Product == nil {
		return domain.Product{}, false, nil
	}

	p, err := toDomain(*resp.Product, time.Now())
	if err != nil {
		return domain.Product{}, false, domain.ParseError("map product "+id, err)
	}
	return p, true, nil
}

// Search queries the catalog. Records that fail to map are skipped
// individually; partial results are preferred over failing the page.
func (c *Client) Search(ctx context.Context, query string, regionOnly bool, pageSize, page int) ([]domain.Product, error) {
	if pageSize <= 0 {
		pageSize = 20
	}
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("page_size", fmt.Sprintf("%d", pageSize))
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("action", "process")
	params.Set("json", "1")
	if regionOnly {
		params.Set("countries", c.cfg.Region)
	}
	reqURL := fmt.Sprintf("%s/cgi/search.pl?%s", c.cfg.BaseURL, params.Encode())

	body, err := c.get(ctx, "search", reqURL)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.ParseError("decode search response", err)
	}

	now := time.Now()
	products := make([]domain.Product, 0, len(resp.Products))
	for _, dto := range resp.Products {
		p, err := toDomain(dto, now)
		if err != nil {
			c.log.Debug("skipping unmappable search record", "error", err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// get executes a GET with retry on transient failures (transport errors
// and 5xx). 4xx responses are terminal.
func (c *Client) get(ctx context.Context, operation, reqURL string) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.CatalogLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var body []byte
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(500*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.CatalogRequestsTotal.WithLabelValues(operation, "transport_error").Inc()
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		metrics.CatalogRequestsTotal.WithLabelValues(operation, fmt.Sprintf("%d", resp.StatusCode)).Inc()

		if resp.StatusCode >= 500 {
			return retry.RetryableError(&APIError{StatusCode: resp.StatusCode, Operation: operation})
		}
		if resp.StatusCode != http.StatusOK {
			return &APIError{StatusCode: resp.StatusCode, Operation: operation}
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("read response: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
