package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/aslanalper2516/wmb-admin-api/internal/application/dto"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/entity"
	"github.com/aslanalper2516/wmb-admin-api/internal/domain/repository"
)

// UserUseCase casos de uso de administración de usuarios y roles. El alta de
// usuarios vive en el caso de uso de auth; aquí solo listado, asignación de
// rol y baja.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userToResponse(user), nil
}

// List lista usuarios por empresa con paginación.
func (uc *UserUseCase) List(companyID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *userToResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AssignRole asigna un rol existente a un usuario.
func (uc *UserUseCase) AssignRole(userID, roleID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	role, err := uc.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	user.RoleID = role.ID
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Deactivate marca un usuario como inactivo (el login lo rechaza).
func (uc *UserUseCase) Deactivate(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	user.Status = "inactive"
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// Delete elimina un usuario por ID.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// CreateRole crea un rol de la empresa.
func (uc *UserUseCase) CreateRole(companyID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// UpdateRole actualiza nombre o permisos de un rol.
func (uc *UserUseCase) UpdateRole(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Permissions != nil {
		role.Permissions = *in.Permissions
	}
	role.UpdatedAt = time.Now()
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// ListRoles lista los roles de la empresa.
func (uc *UserUseCase) ListRoles(companyID string) (*dto.RoleListResponse, error) {
	list, err := uc.roleRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

// DeleteRole elimina un rol por ID.
func (uc *UserUseCase) DeleteRole(id string) error {
	return uc.roleRepo.Delete(id)
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		RoleID:    u.RoleID,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		Name:        r.Name,
		Permissions: r.Permissions,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
