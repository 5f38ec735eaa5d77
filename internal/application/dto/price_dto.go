package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/ref"
)

// CreatePriceRequest entrada para fijar el precio de un producto en un canal
// y sucursal. Method y Branch pueden llegar como id pelado u objeto poblado.
type CreatePriceRequest struct {
	Method     ref.Ref         `json:"method" validate:"required"`
	Branch     ref.Ref         `json:"branch" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	CurrencyID string          `json:"currency_id"`
}

// PriceResponse salida de un registro de precio.
type PriceResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	MethodID   string          `json:"method_id"`
	BranchID   string          `json:"branch_id"`
	Amount     decimal.Decimal `json:"amount"`
	CurrencyID string          `json:"currency_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// PriceListResponse precios de un producto, con la completitud recalculada
// tras cada guardado (la pantalla de precios la muestra como indicador).
type PriceListResponse struct {
	Items    []PriceResponse `json:"items"`
	Complete *bool           `json:"complete,omitempty"`
}
