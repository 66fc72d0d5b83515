package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopstreamhq/shopstream-backend/api/controllers"
	"github.com/shopstreamhq/shopstream-backend/api/middleware"
	authsvc "github.com/shopstreamhq/shopstream-backend/internal/auth"
	cartsvc "github.com/shopstreamhq/shopstream-backend/internal/cart"
	"github.com/shopstreamhq/shopstream-backend/internal/catalog"
	checkoutsvc "github.com/shopstreamhq/shopstream-backend/internal/checkout"
	"github.com/shopstreamhq/shopstream-backend/pkg/config"
	"github.com/shopstreamhq/shopstream-backend/pkg/logger"
	"github.com/shopstreamhq/shopstream-backend/pkg/metrics"
)

// RouterParams collects everything the HTTP surface depends on. The metrics
// handler is passed in so the registry stays owned by main.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	KV              controllers.Pinger
	CatalogPinger   controllers.Pinger
	CatalogService  catalog.Service
	CartService     cartsvc.Service
	AuthService     authsvc.Service
	CheckoutService checkoutsvc.Service
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsHandler  http.Handler
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(params.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.KV, params.CatalogPinger))
	})

	if params.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", params.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session.CookieName, logg))

		r.Route("/shop", func(r chi.Router) {
			r.Get("/", controllers.ShopList(params.CatalogService, logg))
			r.Post("/buy", controllers.ShopBuy(params.CheckoutService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(params.CartService, logg))
			r.Post("/items", controllers.CartAddItem(params.CartService, params.CatalogService, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(params.CartService, logg))
			r.Post("/checkout", controllers.CartCheckout(params.CheckoutService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(params.AuthService, logg))
			r.Post("/signup", controllers.AuthSignup(params.AuthService, logg))
		})

		r.Route("/order", func(r chi.Router) {
			r.Get("/", controllers.OrderFetch(params.CheckoutService, logg))
			r.Post("/payment", controllers.OrderPayment(params.CheckoutService, logg))
		})
	})

	return r
}
