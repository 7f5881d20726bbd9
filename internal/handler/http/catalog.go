package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/httputil"
)

// CatalogHandler handles HTTP requests for category and subcategory endpoints.
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog HTTP handler.
func NewCatalogHandler(svc *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: svc,
		logger:  logger,
	}
}

// ListCategories handles GET /api/v1/categories
// @Summary List all categories
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: categories})
}

// GetCategory handles GET /api/v1/categories/{id}
// @Summary Get a category by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/categories/{id} [get]
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: category})
}

// ListSubCategories handles GET /api/v1/subcategories
// @Summary List all subcategories
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/subcategories [get]
func (h *CatalogHandler) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListSubCategories(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: subs})
}
