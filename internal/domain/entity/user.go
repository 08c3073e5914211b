package entity

import "time"

// Roles disponibles.
const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleCliente = "cliente"
)

// ValidRole verifica si el rol es uno de los aceptados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser || role == RoleCliente
}

// PermissionSections secciones de la aplicación con permisos granulares.
var PermissionSections = []string{"dashboard", "import", "products", "trazabilidad"}

// Permission permisos de lectura/edición sobre una sección.
type Permission struct {
	View bool `json:"view"`
	Edit bool `json:"edit"`
}

// Permissions mapa sección -> permiso. Solo se aceptan las secciones conocidas.
type Permissions map[string]Permission

// DefaultPermissions permisos iniciales de un usuario nuevo: solo dashboard visible.
func DefaultPermissions() Permissions {
	return Permissions{
		"dashboard":    {View: true, Edit: false},
		"import":       {View: false, Edit: false},
		"products":     {View: false, Edit: false},
		"trazabilidad": {View: false, Edit: false},
	}
}

// User usuario de la aplicación con rol y permisos por sección.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Permissions  Permissions
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
