package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	"github.com/shopstreamhq/shopstream-backend/api/responses"
	"github.com/shopstreamhq/shopstream-backend/api/validators"
	cartsvc "github.com/shopstreamhq/shopstream-backend/internal/cart"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	checkoutsvc "github.com/shopstreamhq/shopstream-backend/internal/checkout"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// CartFetch handles the cart view read: current line items plus the derived
// total.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		responses.WriteSuccess(w, newCartResponse(svc, sessionID))
	}
}

// CartAddItem handles Add To Cart from the shop view. Repeat adds of the same
// product merge into the existing line item.
func CartAddItem(svc cartsvc.Service, catalogSvc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := catalogSvc.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.AddToCart(sessionID, *product)
		responses.WriteSuccess(w, newCartResponse(svc, sessionID))
	}
}

// CartRemoveItem drops a line item regardless of quantity. Removing an absent
// product succeeds without changing the cart.
func CartRemoveItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		svc.RemoveFromCart(sessionID, productID)
		responses.WriteSuccess(w, newCartResponse(svc, sessionID))
	}
}

// CartCheckout is the cart view's checkout entry. It clears any buy-now
// selection so the order view reads the cart contents.
func CartCheckout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		svc.BeginCartCheckout(sessionID)

		responses.WriteSuccess(w, map[string]string{"redirect": checkoutsvc.RedirectOrder})
	}
}

type addCartItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

type cartResponse struct {
	Items []cartsvc.LineItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

func newCartResponse(svc cartsvc.Service, sessionID string) cartResponse {
	return cartResponse{
		Items: svc.Items(sessionID),
		Total: svc.TotalAmount(sessionID),
	}
}
