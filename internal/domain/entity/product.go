package entity

import "time"

// Product representa un producto vendible de la empresa.
// No lleva precio propio: los precios son por (producto, método, sucursal)
// en PriceRecord.
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
