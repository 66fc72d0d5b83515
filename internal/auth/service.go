package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/shopstreamhq/shopstream-backend/internal/forms"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/kvstore"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

// Credentials is the persisted snapshot of a login submission.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Status classifies the outcome of a form submission.
type Status string

const (
	StatusSuccess Status = "success"
	StatusInvalid Status = "invalid"
	StatusFailed  Status = "failed"
)

const (
	loginSuccessMessage  = "Login successful!"
	loginFailedMessage   = "Login failed. Please try again."
	signupSuccessMessage = "Registration successful!"
)

// LoginResult is the outcome surfaced to the login view.
type LoginResult struct {
	Status    Status
	Message   string
	Errors    forms.LoginErrors
	ResetForm bool
}

// SignupResult is the outcome surfaced to the signup view.
type SignupResult struct {
	Status    Status
	Message   string
	Errors    forms.SignupErrors
	ResetForm bool
}

type store interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dest any) (bool, error)
	SessionKey(sessionID, name string) string
}

// Service runs the login and signup submission flows against the simulated
// backend.
type Service interface {
	Login(ctx context.Context, sessionID string, form forms.LoginForm) (LoginResult, error)
	Signup(ctx context.Context, form forms.SignupForm) (SignupResult, error)
}

// ServiceParams collects the dependencies for NewService.
type ServiceParams struct {
	Store  store
	Config config.AuthConfig
	Logger *logger.Logger

	// Wait simulates the backend confirmation delay. The default blocks for
	// the full duration and cannot be cancelled mid-flight, matching the
	// storefront's fire-and-forget submit.
	Wait func(time.Duration)
}

type service struct {
	store  store
	cfg    config.AuthConfig
	logger *logger.Logger
	wait   func(time.Duration)
}

// NewService builds the auth flow service.
func NewService(params ServiceParams) (Service, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("key-value store required")
	}
	wait := params.Wait
	if wait == nil {
		wait = func(d time.Duration) {
			if d > 0 {
				<-time.After(d)
			}
		}
	}
	return &service{
		store:  params.Store,
		cfg:    params.Config,
		logger: params.Logger,
		wait:   wait,
	}, nil
}

// Login persists the raw submission before checking it, then runs the
// simulated confirmation. The unconditional snapshot write is part of the
// observable contract: every submit attempt updates loginData, valid or not.
func (s *service) Login(ctx context.Context, sessionID string, form forms.LoginForm) (LoginResult, error) {
	snapshot := Credentials{Username: form.Username, Password: form.Password}
	loginKey := s.store.SessionKey(sessionID, kvstore.LoginDataKey)
	if err := s.store.Save(ctx, loginKey, snapshot); err != nil {
		return LoginResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist login snapshot")
	}

	if errs, ok := forms.ValidateLogin(form); !ok {
		return LoginResult{Status: StatusInvalid, Errors: errs}, nil
	}

	s.wait(s.cfg.LoginConfirmDelay)

	userKey := s.store.SessionKey(sessionID, kvstore.UserDataKey)
	if err := s.store.Save(ctx, userKey, snapshot); err != nil {
		if s.logger != nil {
			s.logger.Error(ctx, "login failed", err)
		}
		return LoginResult{Status: StatusFailed, Message: loginFailedMessage}, nil
	}

	return LoginResult{Status: StatusSuccess, Message: loginSuccessMessage, ResetForm: true}, nil
}

// Signup validates and runs the simulated confirmation. Invalid submissions
// have no storage or network effect.
func (s *service) Signup(ctx context.Context, form forms.SignupForm) (SignupResult, error) {
	if errs, ok := forms.ValidateSignup(form); !ok {
		return SignupResult{Status: StatusInvalid, Errors: errs}, nil
	}

	s.wait(s.cfg.SignupConfirmDelay)

	return SignupResult{Status: StatusSuccess, Message: signupSuccessMessage, ResetForm: true}, nil
}
