package dto

// CurrencyResponse salida de una moneda del catálogo.
type CurrencyResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CurrencyListResponse catálogo completo de monedas.
type CurrencyListResponse struct {
	Items []CurrencyResponse `json:"items"`
}
