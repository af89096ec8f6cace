package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/middleware"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/request"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/response"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/model"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// session extracts the authenticated session, responding 401 when absent.
// Returns false when the response has already been written.
func (h *PortfolioHandler) session(w http.ResponseWriter, r *http.Request) (model.Session, bool) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", nil)
		return model.Session{}, false
	}
	return session, true
}

// Valuate returns the user's holdings valued at current prices
func (h *PortfolioHandler) Valuate(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	valuation, err := h.portfolioService.Valuate(r.Context(), session)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to valuate portfolio",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, valuation)
}

// Create records a new holding for the authenticated user
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req request.CreateHoldingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateHolding(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	holding, err := h.portfolioService.AddHolding(r.Context(), session, req.Symbol, req.Quantity, req.BuyPrice)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to add holding",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusCreated, holding)
}

// Delete removes a holding owned by the authenticated user
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	holdingID := chi.URLParam(r, "holdingId")
	if err := validation.ValidateUUID(holdingID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid holding ID", err.Error())
		return
	}

	err := h.portfolioService.DeleteHolding(r.Context(), session, holdingID)
	switch {
	case err == apperrors.ErrHoldingNotFound:
		response.RespondError(w, http.StatusNotFound, "holding not found", nil)
	case err == apperrors.ErrNotOwner:
		response.RespondError(w, http.StatusForbidden, "holding belongs to another user", nil)
	case err != nil:
		errorResponse := map[string]string{
			"error":  "Failed to delete holding",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
	default:
		respondJSON(w, http.StatusNoContent, nil)
	}
}

// UpdateQuantity changes the quantity of a holding owned by the authenticated user
func (h *PortfolioHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	holdingID := chi.URLParam(r, "holdingId")
	if err := validation.ValidateUUID(holdingID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid holding ID", err.Error())
		return
	}

	var req request.UpdateQuantityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateQuantity(req); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	err := h.portfolioService.UpdateQuantity(r.Context(), session, holdingID, req.Quantity)
	switch {
	case err == apperrors.ErrHoldingNotFound:
		response.RespondError(w, http.StatusNotFound, "holding not found", nil)
	case err == apperrors.ErrNotOwner:
		response.RespondError(w, http.StatusForbidden, "holding belongs to another user", nil)
	case err != nil:
		errorResponse := map[string]string{
			"error":  "Failed to update quantity",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
	default:
		respondJSON(w, http.StatusNoContent, nil)
	}
}
