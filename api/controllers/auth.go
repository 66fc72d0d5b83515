package controllers

import (
	"net/http"

	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	"github.com/shopstreamhq/shopstream-backend/api/responses"
	"github.com/shopstreamhq/shopstream-backend/api/validators"
	authsvc "github.com/shopstreamhq/shopstream-backend/internal/auth"
	"github.com/shopstreamhq/shopstream-backend/internal/forms"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// AuthLogin handles login form submissions. Field-level failures come back as
// a 200 with status "invalid" and per-field messages so the client can render
// them inline; only a malformed body or a storage outage is an error.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), sessionID, forms.LoginForm{
			Username: payload.Username,
			Password: payload.Password,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := loginResponse{
			Status:    string(result.Status),
			Message:   result.Message,
			ResetForm: result.ResetForm,
		}
		if result.Status == authsvc.StatusInvalid {
			resp.Errors = &result.Errors
		}
		responses.WriteSuccess(w, resp)
	}
}

// AuthSignup handles signup form submissions. Same inline-error contract as
// login; a valid submission has no storage effect.
func AuthSignup(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload signupRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Signup(r.Context(), forms.SignupForm{
			FirstName:       payload.FirstName,
			LastName:        payload.LastName,
			Email:           payload.Email,
			Mobile:          payload.Mobile,
			Address:         payload.Address,
			Password:        payload.Password,
			ConfirmPassword: payload.ConfirmPassword,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := signupResponse{
			Status:    string(result.Status),
			Message:   result.Message,
			ResetForm: result.ResetForm,
		}
		if result.Status == authsvc.StatusInvalid {
			resp.Errors = &result.Errors
		}
		responses.WriteSuccess(w, resp)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status    string             `json:"status"`
	Message   string             `json:"message,omitempty"`
	Errors    *forms.LoginErrors `json:"errors,omitempty"`
	ResetForm bool               `json:"reset_form"`
}

type signupRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
	Address         string `json:"address"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type signupResponse struct {
	Status    string              `json:"status"`
	Message   string              `json:"message,omitempty"`
	Errors    *forms.SignupErrors `json:"errors,omitempty"`
	ResetForm bool                `json:"reset_form"`
}
