package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/httputil"
	"github.com/frbhusen/EPay-Store/pkg/validator"
)

// ReviewHandler handles HTTP requests for review submission.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// SubmitReviewRequest is the JSON request body for submitting a review.
type SubmitReviewRequest struct {
	User    string `json:"user" validate:"required,max=255"`
	Comment string `json:"comment" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// SubmitReview handles POST /api/v1/products/{productId}/reviews
// @Summary Submit a product review
// @Description Appends a review and its rating to the product and returns the updated product
// @Tags reviews
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body SubmitReviewRequest true "Review to submit"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/products/{productId}/reviews [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "product id is required"},
		})
		return
	}

	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := &service.SubmitReviewInput{
		ProductID: productID,
		User:      req.User,
		Comment:   req.Comment,
		Rating:    req.Rating,
	}

	view, err := h.service.SubmitReview(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: view})
}
