package entity

import "time"

// BranchMethodLink asocia un SalesMethod a una Branch.
// Se crea solo con una acción explícita de asignar y se elimina solo con una
// de desasignar; nunca se crea implícitamente.
type BranchMethodLink struct {
	ID        string
	BranchID  string
	MethodID  string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
