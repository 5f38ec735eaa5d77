package entity

import "time"

// Branch representa una sucursal física de una Company.
// Las sucursales hermanas (mismo CompanyID) son el objetivo del motor de propagación.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
