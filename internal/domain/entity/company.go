package entity

import "time"

// Company representa una empresa operadora de restaurantes (multi-sucursal).
type Company struct {
	ID        string
	Name      string
	TaxNumber string // número fiscal de la empresa
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
