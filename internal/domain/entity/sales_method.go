package entity

import "time"

// SalesMethod representa un canal de venta (venta en mostrador, reparto, mesa...).
type SalesMethod struct {
	ID        string
	CompanyID string
	Name      string
	Code      string // código único por empresa
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
