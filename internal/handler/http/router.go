package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/health"
	"github.com/frbhusen/EPay-Store/pkg/middleware"
)

// RouterConfig carries the dependencies the router wires together.
type RouterConfig struct {
	CatalogService  *service.CatalogService
	ProductService  *service.ProductService
	ReviewService   *service.ReviewService
	CurrencyService *service.CurrencyService
	HealthHandler   *health.Handler
	CORS            middleware.CORSConfig
	Logger          *slog.Logger
}

// NewRouter creates a chi router with all catalog service routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("catalog-service"))

	// Health check endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := NewCatalogHandler(cfg.CatalogService, cfg.Logger)

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", catalogHandler.ListCategories)
		r.Get("/{id}", catalogHandler.GetCategory)
	})

	r.Route("/api/v1/subcategories", func(r chi.Router) {
		r.Get("/", catalogHandler.ListSubCategories)
	})

	productHandler := NewProductHandler(cfg.ProductService, cfg.Logger)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
	})

	reviewHandler := NewReviewHandler(cfg.ReviewService, cfg.Logger)

	r.Route("/api/v1/products/{productId}/reviews", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", reviewHandler.SubmitReview)
	})

	navigationHandler := NewNavigationHandler(cfg.CatalogService, cfg.Logger)

	r.Route("/api/v1/navigation", func(r chi.Router) {
		r.Get("/", navigationHandler.Sidebar)
		r.Get("/home", navigationHandler.Home)
	})

	sessionHandler := NewSessionHandler(cfg.CurrencyService, cfg.Logger)

	r.Route("/api/v1/session/currency", func(r chi.Router) {
		r.Get("/", sessionHandler.GetCurrency)
		// Only the explicit set carries a body; the toggle does not.
		r.With(ContentTypeJSON).Put("/", sessionHandler.SetCurrency)
		r.Post("/toggle", sessionHandler.ToggleCurrency)
	})

	return r
}
