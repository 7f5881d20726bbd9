package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/repository"
	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/httputil"
	"github.com/frbhusen/EPay-Store/pkg/logger"
)

// ProductHandler handles HTTP requests for product endpoints.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product HTTP handler.
func NewProductHandler(svc *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// ListProducts handles GET /api/v1/products
// @Summary List products
// @Description Returns paginated products with derived display fields and optional filtering
// @Tags products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (max 100)" default(20)
// @Param category_id query string false "Filter by category ID"
// @Param subcategory_id query string false "Filter by subcategory ID"
// @Param type query string false "Filter by product type" Enums(product,eservice)
// @Param most_visited query bool false "Only promotionally flagged products"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		ActiveOnly: true,
		Page:       1,
		PerPage:    20,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "page must be a valid positive integer"},
			})
			return
		}
		filter.Page = page
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		perPage, err := strconv.Atoi(v)
		if err != nil || perPage < 1 || perPage > 100 {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "per_page must be a valid integer between 1 and 100"},
			})
			return
		}
		filter.PerPage = perPage
	}
	if v := r.URL.Query().Get("category_id"); v != "" {
		filter.CategoryID = &v
	}
	if v := r.URL.Query().Get("subcategory_id"); v != "" {
		filter.SubCategoryID = &v
	}
	if v := r.URL.Query().Get("type"); v != "" {
		if v != domain.ProductTypePhysical && v != domain.ProductTypeEService {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "type must be one of: product, eservice"},
			})
			return
		}
		filter.Type = &v
	}
	if v := r.URL.Query().Get("most_visited"); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "most_visited must be a boolean"},
			})
			return
		}
		filter.MostVisited = &flag
	}

	sessionID := logger.SessionIDFromContext(r.Context())

	products, total, err := h.service.ListProducts(r.Context(), filter, sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.NewPaginatedResponse(products, total, filter.Page, filter.PerPage))
}

// GetProduct handles GET /api/v1/products/{id}
// @Summary Get product by ID
// @Description Returns a product with derived display fields, priced in the session currency
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "product id is required"},
		})
		return
	}

	sessionID := logger.SessionIDFromContext(r.Context())

	view, err := h.service.GetProduct(r.Context(), id, sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: view})
}
