package entity

import "time"

// User representa un usuario de la consola de administración.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	RoleID       string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
