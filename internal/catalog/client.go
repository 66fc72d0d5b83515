package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

const productsPath = "/products"

var errLoggerRequired = errors.New("catalog logger is required")

// Product is one record from the external catalog. Read-only; never mutated
// locally.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// Client fetches the product catalog from the external storefront API with
// centralized logging and error mapping.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient initializes the catalog wrapper and validates its configuration.
func NewClient(ctx context.Context, cfg config.CatalogConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("catalog base url is required")
	}

	c := &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    baseURL,
		logger:     logg,
	}

	logg.Info(ctx, "catalog client initialized")
	return c, nil
}

// BaseURL reports the configured catalog endpoint.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// ListProducts fetches the full product list. Transport errors and non-2xx
// responses map to a dependency error.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	if c == nil || c.httpClient == nil {
		return nil, errors.New("catalog client not initialized")
	}

	url := c.baseURL + productsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	c.log(ctx, "request", "list_products", map[string]any{"url": url})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx, "error", "list_products", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch products")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log(ctx, "error", "list_products", map[string]any{"status": resp.StatusCode})
		return nil, pkgerrors.New(pkgerrors.CodeDependency, fmt.Sprintf("catalog returned status %d", resp.StatusCode))
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		c.log(ctx, "error", "list_products", map[string]any{"error": err.Error()})
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode products")
	}

	c.log(ctx, "response", "list_products", map[string]any{"count": len(products)})
	return products, nil
}

// Ping issues a lightweight catalog request for readiness checks.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.httpClient == nil {
		return errors.New("catalog client not initialized")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) log(ctx context.Context, phase, operation string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	merged := map[string]any{"catalog_op": operation, "phase": phase}
	for k, v := range fields {
		merged[k] = v
	}
	ctx = c.logger.WithFields(ctx, merged)
	if phase == "error" {
		c.logger.Warn(ctx, "catalog request failed")
		return
	}
	c.logger.Info(ctx, "catalog "+phase)
}
