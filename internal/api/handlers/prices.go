package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/response"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/validation"
)

// PriceHandler handles one-off price lookups
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

// Get fetches the current price for a single symbol
func (h *PriceHandler) Get(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	if err := validation.ValidateSymbol(symbol); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.priceService.GetPrice(r.Context(), symbol)
	if err != nil {
		response.RespondError(w, fetchStatus(err), "failed to fetch price", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, record)
}
