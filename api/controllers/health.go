package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/shopstreamhq/shopstream-backend/api/responses"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	pkgerrors "github.com/shopstreamhq/shopstream-backend/pkg/errors"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
)

const envHeader = "X-Shopstream-Env"

const readyCheckTimeout = 5 * time.Second

// Pinger is the dependency health surface checked by readiness.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the key-value store and the catalog endpoint. Failures
// from both are combined so one unhealthy dependency does not mask the other.
func HealthReady(cfg *config.Config, logg *logger.Logger, kv Pinger, catalog Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		var err error
		if kv != nil {
			err = multierr.Append(err, kv.Ping(ctx))
		}
		if catalog != nil {
			err = multierr.Append(err, catalog.Ping(ctx))
		}

		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
