package dto

import "time"

// CreateMethodRequest entrada para crear un método de venta.
type CreateMethodRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	Code string `json:"code" validate:"required,min=1,max=50"`
}

// UpdateMethodRequest entrada para actualizar un método de venta.
type UpdateMethodRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Active *bool   `json:"active"`
}

// MethodResponse salida de un método de venta.
type MethodResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MethodListResponse lista de métodos de venta de la empresa.
type MethodListResponse struct {
	Items []MethodResponse `json:"items"`
}
