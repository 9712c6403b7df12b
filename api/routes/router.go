package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opheliasgarden/nursery-backend/api/controllers"
	"github.com/opheliasgarden/nursery-backend/api/middleware"
	"github.com/opheliasgarden/nursery-backend/internal/cart"
	"github.com/opheliasgarden/nursery-backend/internal/catalog"
	"github.com/opheliasgarden/nursery-backend/internal/preorder"
	"github.com/opheliasgarden/nursery-backend/pkg/config"
	"github.com/opheliasgarden/nursery-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cat *catalog.Catalog,
	cartStore cart.Store,
	cartService cart.Service,
	preorderService preorder.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(cartStore, logg))

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", controllers.GetCatalog(cat, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.CartToken(logg, cfg.App.IsProd()))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(cartService, logg))
				r.Delete("/", controllers.ClearCart(cartService, logg))
				r.Post("/items", controllers.AddCartItem(cartService, logg))
				r.Patch("/items/{sku}", controllers.UpdateCartItem(cartService, logg))
				r.Delete("/items/{sku}", controllers.RemoveCartItem(cartService, logg))
			})

			r.Post("/preorders", controllers.SubmitPreOrder(preorderService, cartService, logg))
		})
	})

	return r
}
