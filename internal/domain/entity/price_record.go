package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord representa el precio de un producto en un canal de venta y una
// sucursal concretos. Unicidad por (ProductID, MethodID, BranchID): el precio
// de sucursal prevalece sobre cualquier valor por defecto del método.
//
// Un reemplazo se implementa como borrar-y-crear, no como update: los lectores
// concurrentes pueden observar la ventana intermedia sin el registro.
type PriceRecord struct {
	ID         string
	ProductID  string
	MethodID   string
	BranchID   string
	Amount     decimal.Decimal
	CurrencyID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
