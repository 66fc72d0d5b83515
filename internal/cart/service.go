package cart

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
)

// LineItem is one product-identifier-to-quantity entry in a session's cart.
type LineItem struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	UnitPrice decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}

// LineTotal is the item's unit price multiplied by its quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Service is the single source of truth for cart contents. All mutation
// funnels through AddToCart and RemoveFromCart so that a session never holds
// two line items for the same product identifier.
type Service interface {
	AddToCart(sessionID string, product catalog.Product)
	RemoveFromCart(sessionID string, productID int64)
	Items(sessionID string) []LineItem
	TotalAmount(sessionID string) decimal.Decimal
}

type memoryStore struct {
	mu    sync.Mutex
	carts map[string][]LineItem
}

// NewService builds the in-memory cart store. Contents are process-local and
// empty again after a restart.
func NewService() Service {
	return &memoryStore{carts: make(map[string][]LineItem)}
}

// AddToCart appends a quantity-1 line item, or increments the quantity in
// place when the identifier is already present. The item keeps its position.
func (s *memoryStore) AddToCart(sessionID string, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[sessionID] = append(items, LineItem{
		ID:        product.ID,
		Title:     product.Title,
		UnitPrice: product.Price,
		Image:     product.Image,
		Quantity:  1,
	})
}

// RemoveFromCart drops the line item with the given identifier. Removing an
// absent identifier is a no-op.
func (s *memoryStore) RemoveFromCart(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	filtered := items[:0]
	for _, item := range items {
		if item.ID != productID {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		delete(s.carts, sessionID)
		return
	}
	s.carts[sessionID] = filtered
}

// Items returns a snapshot copy of the session's cart in insertion order.
func (s *memoryStore) Items(sessionID string) []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	snapshot := make([]LineItem, len(items))
	copy(snapshot, items)
	return snapshot
}

// TotalAmount recomputes the cart total on every read.
func (s *memoryStore) TotalAmount(sessionID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.carts[sessionID] {
		total = total.Add(item.LineTotal())
	}
	return total
}
