package entity

// CurrencyUnit representa una moneda disponible para precios.
type CurrencyUnit struct {
	ID     string
	Code   string // ISO 4217, ej. TRY, EUR, USD
	Symbol string
	Name   string
}
