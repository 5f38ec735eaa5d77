package dto

import "time"

// CreateBranchRequest entrada para crear una sucursal.
type CreateBranchRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateBranchRequest entrada para actualizar una sucursal.
type UpdateBranchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Active  *bool   `json:"active"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BranchListResponse lista de sucursales de la empresa (sin paginar, el
// conjunto es pequeño).
type BranchListResponse struct {
	Items []BranchResponse `json:"items"`
}

// AssignMethodRequest entrada para asignar un método de venta a la sucursal.
type AssignMethodRequest struct {
	MethodID string `json:"method_id" validate:"required"`
}

// BranchMethodLinkResponse salida de una asociación sucursal-método.
type BranchMethodLinkResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	MethodID string `json:"method_id"`
	Active   bool   `json:"active"`
}

// BranchMethodLinkListResponse lista de métodos asignados a una sucursal.
type BranchMethodLinkListResponse struct {
	Items []BranchMethodLinkResponse `json:"items"`
}
