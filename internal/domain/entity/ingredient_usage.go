package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientUsage representa el uso de un ingrediente en un producto para una
// sucursal: cantidad + unidad, y opcionalmente un coste con su moneda.
//
// Dos registros que coinciden en la tupla completa (sucursal, ingrediente,
// cantidad, unidad, precio, moneda del precio) se consideran duplicados y se
// rechazan antes de enviar nada al backend (ver recipe.FindDuplicateIngredientUsage).
type IngredientUsage struct {
	ID           string
	ProductID    string
	IngredientID string
	BranchID     string
	Amount       decimal.Decimal
	AmountUnit   string
	Price        *decimal.Decimal // opcional
	PriceUnit    string           // moneda del precio; vacío si Price es nil
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
