package controllers

import (
	"net/http"

	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	"github.com/shopstreamhq/shopstream-backend/api/responses"
	"github.com/shopstreamhq/shopstream-backend/api/validators"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	checkoutsvc "github.com/shopstreamhq/shopstream-backend/internal/checkout"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// ShopList handles the shop view's product listing, optionally filtered by a
// case-insensitive title search term.
func ShopList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		term := r.URL.Query().Get("search")
		products := svc.Search(r.Context(), term)

		responses.WriteSuccess(w, shopListResponse{
			Products: products,
			Count:    len(products),
		})
	}
}

// ShopBuy handles Buy Now from the shop view. The response tells the client
// where to navigate; an unauthenticated session is sent to login and the
// selection is not kept.
func ShopBuy(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload buyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		decision, err := svc.Buy(r.Context(), sessionID, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, buyResponse{
			Redirect: decision.Redirect,
			Product:  decision.Product,
		})
	}
}

type shopListResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}

type buyRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}

type buyResponse struct {
	Redirect string           `json:"redirect"`
	Product  *catalog.Product `json:"product,omitempty"`
}
