package entity

import "time"

// Menu representa una carta de una sucursal. Las categorías se colocan dentro
// del menú mediante CategoryAssignment (la jerarquía vive en la asignación, no
// en la categoría).
type Menu struct {
	ID        string
	BranchID  string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
