// Package dto defines data transfer objects for the symbollist HTTP API.
package dto

// SymbolItem represents a symbol in the API response.
// It contains only the public-facing fields needed by clients.
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// RegisterSymbolRequest is the body of POST /symbols.
// The "symbol" tag is registered by the chartinput binding package.
type RegisterSymbolRequest struct {
	Code    string `json:"code" binding:"required,symbol"`
	Name    string `json:"name" binding:"required,max=255"`
	Market  string `json:"market" binding:"required,max=100"`
	SortKey int    `json:"sort_key"`
}
