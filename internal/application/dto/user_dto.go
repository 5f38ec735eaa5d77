package dto

import "time"

// RegisterRequest entrada de registro de usuario.
type RegisterRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name"`
	RoleID    string `json:"role_id"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	RoleID    string    `json:"role_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AssignRoleRequest entrada para asignar un rol a un usuario.
type AssignRoleRequest struct {
	RoleID string `json:"role_id" validate:"required"`
}

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Permissions []string `json:"permissions"`
}

// UpdateRoleRequest entrada para actualizar un rol.
type UpdateRoleRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Permissions *[]string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleListResponse lista de roles de la empresa.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
}
