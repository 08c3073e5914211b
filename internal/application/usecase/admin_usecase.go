package usecase

import (
	"fmt"

	"github.com/ecolvin/tracelink-api/internal/application/dto"
	"github.com/ecolvin/tracelink-api/internal/domain"
	"github.com/ecolvin/tracelink-api/internal/domain/entity"
	"github.com/ecolvin/tracelink-api/internal/domain/repository"
)

// AdminUseCase administración de usuarios: listado, cambio de rol y permisos.
// El cambio de rol protege al último admin: nunca puede quedar el sistema sin uno.
type AdminUseCase struct {
	users repository.UserRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(users repository.UserRepository) *AdminUseCase {
	return &AdminUseCase{users: users}
}

// ListUsers lista todos los usuarios.
func (uc *AdminUseCase) ListUsers() ([]dto.UserResponse, error) {
	list, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateRole cambia el rol de un usuario. Degradar al último admin devuelve ErrLastAdmin.
func (uc *AdminUseCase) UpdateRole(userID string, in dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: rol %q no existe", domain.ErrInvalidInput, in.Role)
	}
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleAdmin && in.Role != entity.RoleAdmin {
		admins, err := uc.users.CountByRole(entity.RoleAdmin)
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, domain.ErrLastAdmin
		}
	}
	user.Role = in.Role
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdatePermissions reemplaza los permisos por sección de un usuario.
// Secciones desconocidas se descartan; las ausentes quedan como estaban.
func (uc *AdminUseCase) UpdatePermissions(userID string, in dto.UpdatePermissionsRequest) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Permissions == nil {
		user.Permissions = entity.DefaultPermissions()
	}
	for section, perm := range in.Permissions {
		if !inList(section, entity.PermissionSections) {
			continue
		}
		user.Permissions[section] = perm
	}
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = entity.DefaultPermissions()
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: perms,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
