package entity

import "time"

// Ingredient representa un ingrediente de la empresa (materia prima de recetas).
type Ingredient struct {
	ID          string
	CompanyID   string
	Name        string
	DefaultUnit string // unidad habitual, ej. "g", "ml", "unidad"
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
