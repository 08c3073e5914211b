package dto

import (
	"time"

	"github.com/ecolvin/tracelink-api/internal/domain/entity"
)

// RegisterRequest entrada de registro de usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Permissions entity.Permissions `json:"permissions"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// UpdateRoleRequest entrada del cambio de rol de un usuario.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdatePermissionsRequest entrada del cambio de permisos por sección.
type UpdatePermissionsRequest struct {
	Permissions entity.Permissions `json:"permissions"`
}
