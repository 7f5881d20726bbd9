package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frbhusen/EPay-Store/internal/domain"
	"github.com/frbhusen/EPay-Store/internal/service"
	"github.com/frbhusen/EPay-Store/pkg/httputil"
	"github.com/frbhusen/EPay-Store/pkg/logger"
	"github.com/frbhusen/EPay-Store/pkg/validator"
)

// SessionHandler handles HTTP requests for session-scoped preferences.
type SessionHandler struct {
	service *service.CurrencyService
	logger  *slog.Logger
}

// NewSessionHandler creates a new session HTTP handler.
func NewSessionHandler(svc *service.CurrencyService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		service: svc,
		logger:  logger,
	}
}

// currencyResponse is the JSON payload for currency preference endpoints.
type currencyResponse struct {
	Currency string `json:"currency"`
}

// GetCurrency handles GET /api/v1/session/currency
// @Summary Get the session's display currency
// @Tags session
// @Produce json
// @Param X-Session-ID header string false "Session identifier; without one the base currency is returned"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/session/currency [get]
func (h *SessionHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	sessionID := logger.SessionIDFromContext(r.Context())

	currency, err := h.service.GetPreference(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currencyResponse{Currency: string(currency)}})
}

// setCurrencyRequest is the JSON request body for setting an explicit
// display currency.
type setCurrencyRequest struct {
	Currency string `json:"currency" validate:"required,oneof=SYP USD"`
}

// SetCurrency handles PUT /api/v1/session/currency
// @Summary Set the session's display currency
// @Tags session
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param request body setCurrencyRequest true "Currency to set"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/session/currency [put]
func (h *SessionHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	sessionID := logger.SessionIDFromContext(r.Context())

	var req setCurrencyRequest
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

	if err := h.service.SetPreference(r.Context(), sessionID, domain.CurrencyCode(req.Currency)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currencyResponse{Currency: req.Currency}})
}

// ToggleCurrency handles POST /api/v1/session/currency/toggle
// @Summary Toggle the session's display currency between SYP and USD
// @Tags session
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/session/currency/toggle [post]
func (h *SessionHandler) ToggleCurrency(w http.ResponseWriter, r *http.Request) {
	sessionID := logger.SessionIDFromContext(r.Context())

	currency, err := h.service.TogglePreference(r.Context(), sessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: currencyResponse{Currency: string(currency)}})
}
