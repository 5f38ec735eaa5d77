package dto

import (
	"time"

	"github.com/aslanalper2516/wmb-admin-api/internal/domain/ref"
)

// CreateMenuRequest entrada para crear un menú.
type CreateMenuRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateMenuRequest entrada para actualizar un menú.
type UpdateMenuRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=200"`
	Active *bool   `json:"active"`
}

// MenuResponse salida de un menú.
type MenuResponse struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuListResponse lista de menús de una sucursal.
type MenuListResponse struct {
	Items []MenuResponse `json:"items"`
}

// CreateAssignmentRequest entrada para colocar una categoría en el menú.
// Category y Parent pueden llegar como id pelado o como objeto poblado según
// qué pantalla origine la petición; ref.Ref absorbe ambas formas.
type CreateAssignmentRequest struct {
	Category     ref.Ref `json:"category" validate:"required"`
	Parent       ref.Ref `json:"parent"`
	DisplayOrder int     `json:"display_order"`
}

// UpdateAssignmentRequest entrada para reordenar o re-emparentar una
// asignación. Parent en nil deja el padre como está; ParentToRoot fuerza el
// paso a raíz (no se puede expresar con Ref vacía sin ambigüedad).
type UpdateAssignmentRequest struct {
	Parent       *ref.Ref `json:"parent"`
	ParentToRoot bool     `json:"parent_to_root"`
	DisplayOrder *int     `json:"display_order"`
}

// AssignmentResponse salida de una asignación de categoría.
type AssignmentResponse struct {
	ID           string    `json:"id"`
	MenuID       string    `json:"menu_id"`
	CategoryID   string    `json:"category_id"`
	ParentID     string    `json:"parent_id,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CategoryName string    `json:"category_name"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TreeNodeResponse un nodo del árbol con su profundidad calculada y la
// sangría en píxeles que debe aplicar el frontend (depth × unidad fija).
type TreeNodeResponse struct {
	AssignmentResponse
	Depth  int `json:"depth"`
	Indent int `json:"indent"`
}

// TreeResponse árbol aplanado en orden de emisión (todo nodo después de su
// padre).
type TreeResponse struct {
	MenuID string             `json:"menu_id"`
	Order  string             `json:"order"` // "admin" | "menu"
	Nodes  []TreeNodeResponse `json:"nodes"`
}
