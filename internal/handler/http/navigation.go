package http

import (
	"log/slog"
	"net/http"

	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/httputil"
)

// NavigationHandler handles HTTP requests for the assembled navigation trees.
type NavigationHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewNavigationHandler creates a new navigation HTTP handler.
func NewNavigationHandler(svc *service.CatalogService, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		service: svc,
		logger:  logger,
	}
}

// Sidebar handles GET /api/v1/navigation
// @Summary Full navigation tree
// @Description Returns the category tree with every active product, empty branches pruned
// @Tags navigation
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/navigation [get]
func (h *NavigationHandler) Sidebar(w http.ResponseWriter, r *http.Request) {
	tree, err := h.service.Sidebar(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: tree})
}

// Home handles GET /api/v1/navigation/home
// @Summary Landing page view
// @Description Returns the category tree capped at three products per subcategory plus the most-visited strip
// @Tags navigation
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/navigation/home [get]
func (h *NavigationHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Home(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
