package entity

import "time"

// CategoryAssignment representa la colocación de una Category dentro de un Menu.
// ParentID, si no está vacío, referencia otra asignación del mismo menú.
//
// El almacenamiento no garantiza que el grafo de padres sea acíclico ni que
// ParentID exista: el constructor de árbol (menutree) degrada esos casos a raíz
// en lugar de fallar, para que la pantalla de administración siga siendo usable.
type CategoryAssignment struct {
	ID           string
	MenuID       string
	CategoryID   string
	ParentID     string // vacío si es raíz
	DisplayOrder int
	CategoryName string // desnormalizado desde Category, para ordenar por nombre
	Active       bool   // derivado del flag de la Category subyacente
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
