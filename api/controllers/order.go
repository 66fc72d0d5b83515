package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	"github.com/shopstreamhq/shopstream-backend/api/responses"
	"github.com/shopstreamhq/shopstream-backend/api/validators"
	cartsvc "github.com/shopstreamhq/shopstream-backend/internal/cart"
	checkoutsvc "github.com/shopstreamhq/shopstream-backend/internal/checkout"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// OrderFetch handles the order view read. A buy-now selection takes precedence
// over the cart; an empty summary renders as no orders on the client.
func OrderFetch(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		summary, err := svc.Summary(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, orderResponse{
			Source: summary.Source,
			Items:  summary.Lines,
			Total:  summary.Total,
		})
	}
}

// OrderPayment handles the payment method choice on the order view. Nothing is
// charged; online selections carry a reference string for the client to render.
func OrderPayment(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload paymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		selection, err := svc.SelectPayment(r.Context(), sessionID, payload.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, paymentResponse{
			Method:           selection.Method,
			Message:          selection.Message,
			PaymentReference: selection.PaymentReference,
		})
	}
}

type orderResponse struct {
	Source string             `json:"source"`
	Items  []cartsvc.LineItem `json:"items"`
	Total  decimal.Decimal    `json:"total"`
}

type paymentRequest struct {
	Method string `json:"method" validate:"required"`
}

type paymentResponse struct {
	Method           string `json:"method"`
	Message          string `json:"message"`
	PaymentReference string `json:"payment_reference,omitempty"`
}
