package catalog

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

type lister interface {
	ListProducts(ctx context.Context) ([]Product, error)
}

// Service exposes catalog reads for the shop surface. Fetch failures degrade
// to an empty catalog; the failure is logged and never surfaced to callers.
type Service interface {
	List(ctx context.Context) []Product
	Search(ctx context.Context, term string) []Product
	Get(ctx context.Context, id int64) (*Product, error)
}

type service struct {
	client lister
	logger *logger.Logger
}

// NewService builds a catalog service backed by the provided client.
func NewService(client lister, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("catalog client required")
	}
	return &service{client: client, logger: logg}, nil
}

// List fetches the catalog once per call. No retry, no partial results.
func (s *service) List(ctx context.Context) []Product {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "error fetching products", err)
		}
		return []Product{}
	}
	if products == nil {
		return []Product{}
	}
	return products
}

// Search filters the fetched catalog by case-insensitive title substring.
func (s *service) Search(ctx context.Context, term string) []Product {
	products := s.List(ctx)
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Get resolves a single product by identifier from the current catalog.
func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}
