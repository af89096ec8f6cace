package validation

import "strings"

// ValidateSymbol checks a ticker symbol from a request path or payload.
func ValidateSymbol(symbol string) error {
	errors := make(map[string]string)

	trimmed := strings.TrimSpace(symbol)
	if trimmed == "" {
		errors["symbol"] = "symbol is required"
	} else if len(trimmed) > 20 {
		errors["symbol"] = "symbol must be 20 characters or less"
	} else {
		for _, r := range trimmed {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
			if !isAlnum {
				errors["symbol"] = "symbol may only contain letters, digits, and dashes"
				break
			}
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
