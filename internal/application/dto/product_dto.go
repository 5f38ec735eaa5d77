package dto

import (
	"time"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/ref"
)

// CreateProductRequest entrada para crear un producto. Category puede llegar
// como id pelado o como objeto poblado.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description"`
	Category    ref.Ref `json:"category"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description"`
	Category    *ref.Ref `json:"category"`
	Active      *bool    `json:"active"`
}

// ProductResponse salida de un producto. PriceComplete solo se rellena si el
// listado se pidió con with_completeness; es un aviso no bloqueante.
type ProductResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	CategoryID    string    `json:"category_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Active        bool      `json:"active"`
	PriceComplete *bool     `json:"price_complete,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BranchCompletenessResponse completitud de precios de un producto en una
// sucursal concreta. Skipped indica sucursal sin métodos (no cuenta).
type BranchCompletenessResponse struct {
	BranchID   string `json:"branch_id"`
	BranchName string `json:"branch_name"`
	Complete   bool   `json:"complete"`
	Skipped    bool   `json:"skipped"`
}

// CompletenessResponse resultado agregado del chequeo de completitud.
type CompletenessResponse struct {
	ProductID string                       `json:"product_id"`
	Complete  bool                         `json:"complete"`
	Branches  []BranchCompletenessResponse `json:"branches"`
}
