package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/shopstreamhq/shopstream-backend/internal/auth"
	"github.com/shopstreamhq/shopstream-backend/internal/cart"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/kvstore"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// View routes the client is told to navigate to.
const (
	RedirectOrder = "/order"
	RedirectLogin = "/login"
)

// Order sources. Buy-now always wins over the cart; the two are never merged.
const (
	SourceBuyNow = "buy_now"
	SourceCart   = "cart"
)

// BuyDecision is the purchase guard's verdict for a single Buy action.
type BuyDecision struct {
	Redirect string
	Product  *catalog.Product
}

// Summary is the order view's read model.
type Summary struct {
	Source string
	Lines  []cart.LineItem
	Total  decimal.Decimal
}

type productStore interface {
	Get(ctx context.Context, id int64) (*catalog.Product, error)
}

type cartReader interface {
	Items(sessionID string) []cart.LineItem
	TotalAmount(sessionID string) decimal.Decimal
}

type loginStore interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	SessionKey(sessionID, name string) string
}

// Service gates checkout navigation and assembles the order view.
type Service interface {
	Buy(ctx context.Context, sessionID string, productID int64) (BuyDecision, error)
	BeginCartCheckout(sessionID string)
	Summary(ctx context.Context, sessionID string) (Summary, error)
	SelectPayment(ctx context.Context, sessionID, method string) (PaymentSelection, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Catalog catalog.Service
	Cart    cartReader
	Store   loginStore
	Payment config.PaymentConfig
	Logger  *logger.Logger
}

type service struct {
	catalog catalog.Service
	cart    cartReader
	store   loginStore
	payment config.PaymentConfig
	logger  *logger.Logger

	// pending holds each session's transient buy-now selection. It is the
	// server-side analogue of navigation state: process-local and lost on
	// restart.
	mu      sync.Mutex
	pending map[string]catalog.Product
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("key-value store required")
	}
	return &service{
		catalog: params.Catalog,
		cart:    params.Cart,
		store:   params.Store,
		payment: params.Payment,
		logger:  params.Logger,
		pending: make(map[string]catalog.Product),
	}, nil
}

// Buy decides whether the session may go straight to checkout. A prior login
// submission with a non-empty username is enough; no validity is checked.
// When the guard redirects to login, the selection is dropped and the user is
// not brought back to the product afterwards.
func (s *service) Buy(ctx context.Context, sessionID string, productID int64) (BuyDecision, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return BuyDecision{}, err
	}

	var creds auth.Credentials
	key := s.store.SessionKey(sessionID, kvstore.LoginDataKey)
	found, err := s.store.Load(ctx, key, &creds)
	if err != nil {
		return BuyDecision{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load login data")
	}

	if !found || creds.Username == "" {
		return BuyDecision{Redirect: RedirectLogin}, nil
	}

	s.mu.Lock()
	s.pending[sessionID] = *product
	s.mu.Unlock()

	return BuyDecision{Redirect: RedirectOrder, Product: product}, nil
}

// BeginCartCheckout is the cart view's checkout entry: it clears any buy-now
// selection so the order view reads the cart.
func (s *service) BeginCartCheckout(sessionID string) {
	s.mu.Lock()
	delete(s.pending, sessionID)
	s.mu.Unlock()
}

// Summary assembles the order view: the pending buy-now product (quantity 1)
// when one exists, otherwise the full cart. Totals are recomputed per read.
func (s *service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	s.mu.Lock()
	product, buyNow := s.pending[sessionID]
	s.mu.Unlock()

	if buyNow {
		line := cart.LineItem{
			ID:        product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Image:     product.Image,
			Quantity:  1,
		}
		return Summary{
			Source: SourceBuyNow,
			Lines:  []cart.LineItem{line},
			Total:  line.LineTotal(),
		}, nil
	}

	return Summary{
		Source: SourceCart,
		Lines:  s.cart.Items(sessionID),
		Total:  s.cart.TotalAmount(sessionID),
	}, nil
}
