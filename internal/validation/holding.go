package validation

import (
	"strings"

	"github.com/mverbeek/Crypto-Price-Tracker-Backend/internal/api/request"
)

// ValidateCreateHolding checks a create-holding payload. Quantity and buy
// price must be strictly positive so valuation can never divide by a zero
// cost basis.
func ValidateCreateHolding(req request.CreateHoldingRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Symbol) == "" {
		errors["symbol"] = "symbol is required"
	} else if len(req.Symbol) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	}

	if req.Quantity <= 0 {
		errors["quantity"] = "quantity must be greater than zero"
	}
	if req.BuyPrice <= 0 {
		errors["buy_price"] = "buy_price must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateQuantity checks an update-quantity payload.
func ValidateUpdateQuantity(req request.UpdateQuantityRequest) error {
	if req.Quantity <= 0 {
		return &Error{Fields: map[string]string{
			"quantity": "quantity must be greater than zero",
		}}
	}
	return nil
}
