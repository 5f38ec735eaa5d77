package entity

import "time"

// Category representa una categoría de productos de la empresa.
// No lleva jerarquía propia: su posición dentro de cada menú se define
// por CategoryAssignment.
type Category struct {
	ID        string
	CompanyID string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
