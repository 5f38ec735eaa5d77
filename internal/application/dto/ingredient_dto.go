package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/ref"
)

// CreateIngredientRequest entrada para crear un ingrediente.
type CreateIngredientRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	DefaultUnit string `json:"default_unit"`
}

// UpdateIngredientRequest entrada para actualizar un ingrediente.
type UpdateIngredientRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	DefaultUnit *string `json:"default_unit"`
	Active      *bool   `json:"active"`
}

// IngredientResponse salida de un ingrediente.
type IngredientResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	DefaultUnit string    `json:"default_unit"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IngredientListResponse lista paginada de ingredientes.
type IngredientListResponse struct {
	Items []IngredientResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateUsageRequest entrada para registrar el uso de un ingrediente en un
// producto. Ingredient y Branch pueden llegar como id pelado u objeto poblado.
// Price y PriceUnit son opcionales pero van juntos.
type CreateUsageRequest struct {
	Ingredient ref.Ref          `json:"ingredient" validate:"required"`
	Branch     ref.Ref          `json:"branch" validate:"required"`
	Amount     decimal.Decimal  `json:"amount" validate:"required"`
	AmountUnit string           `json:"amount_unit" validate:"required"`
	Price      *decimal.Decimal `json:"price"`
	PriceUnit  string           `json:"price_unit"`
}

// UpdateUsageRequest entrada para modificar un uso de ingrediente. Todos los
// campos son opcionales; ClearPrice borra el precio y su moneda.
type UpdateUsageRequest struct {
	Branch     *ref.Ref         `json:"branch"`
	Amount     *decimal.Decimal `json:"amount"`
	AmountUnit *string          `json:"amount_unit"`
	Price      *decimal.Decimal `json:"price"`
	PriceUnit  *string          `json:"price_unit"`
	ClearPrice bool             `json:"clear_price"`
}

// UsageResponse salida de un uso de ingrediente.
type UsageResponse struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	IngredientID string           `json:"ingredient_id"`
	BranchID     string           `json:"branch_id"`
	Amount       decimal.Decimal  `json:"amount"`
	AmountUnit   string           `json:"amount_unit"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	PriceUnit    string           `json:"price_unit,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// UsageListResponse usos de ingrediente de un producto.
type UsageListResponse struct {
	Items []UsageResponse `json:"items"`
}
