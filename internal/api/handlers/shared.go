package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/coingecko"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// decodeJSON decodes a request body into dst, responding 400 on failure.
// Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errorResponse := map[string]string{
			"error":  "Invalid request body",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return false
	}
	return true
}

// fetchStatus maps a price fetch error to an HTTP status code. No data and
// non-200 provider statuses surface as 404 ("no data for that symbol"),
// exhausted rate limiting as 503, anything else (transport errors,
// timeouts) as 502.
func fetchStatus(err error) int {
	var statusErr *coingecko.HTTPStatusError
	switch {
	case errors.Is(err, coingecko.ErrNoData), errors.As(err, &statusErr):
		return http.StatusNotFound
	case errors.Is(err, coingecko.ErrRateLimited):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
