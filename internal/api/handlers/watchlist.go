package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/request"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/response"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/apperrors"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/service"
	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/validation"
)

// WatchlistHandler handles watchlist HTTP requests
type WatchlistHandler struct {
	watchlistService *service.WatchlistService
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistService *service.WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
	}
}

// WatchlistEntryResponse represents one tracked symbol and its latest snapshot
type WatchlistEntryResponse struct {
	Symbol    string     `json:"symbol"`
	Name      string     `json:"name,omitempty"`
	Price     *float64   `json:"price,omitempty"`
	Change24h *float64   `json:"change_24h,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// List returns the watchlist in insertion order
func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.watchlistService.Entries()

	resp := make([]WatchlistEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = WatchlistEntryResponse{Symbol: e.Symbol}
		if e.Record != nil {
			price := e.Record.Price
			change := e.Record.Change24h
			updated := e.Record.UpdatedAt
			resp[i].Name = e.Record.Name
			resp[i].Price = &price
			resp[i].Change24h = &change
			resp[i].UpdatedAt = &updated
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// Add starts tracking a new symbol
func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddSymbolRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateSymbol(req.Symbol); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			response.RespondValidationError(w, vErr.Fields)
			return
		}
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	record, err := h.watchlistService.AddSymbol(r.Context(), req.Symbol)
	if err == apperrors.ErrDuplicateSymbol {
		response.RespondError(w, http.StatusConflict, "symbol already tracked", nil)
		return
	}
	if err != nil {
		response.RespondError(w, fetchStatus(err), "failed to fetch price for symbol", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// Remove stops tracking a symbol
func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	if err := h.watchlistService.RemoveSymbol(symbol); err != nil {
		response.RespondError(w, http.StatusNotFound, "symbol not tracked", nil)
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// Refresh re-fetches all tracked symbols and reports partial failures
func (h *WatchlistHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result := h.watchlistService.RefreshAll(r.Context())
	respondJSON(w, http.StatusOK, result)
}
