package request

// CreateHoldingRequest is the payload for recording a new purchase.
type CreateHoldingRequest struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
}

// UpdateQuantityRequest is the payload for changing a holding's quantity.
type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}
