package request

// AddSymbolRequest is the payload for tracking a new symbol.
type AddSymbolRequest struct {
	Symbol string `json:"symbol"`
}
