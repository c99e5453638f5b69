package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario. El password va a la
// columna legacy hasta que la migración al proveedor lo retire.
type CreateUsuarioRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Rol           string `json:"rol" validate:"required,oneof=admin auditor gestor visor"`
	Nombre        string `json:"nombre" validate:"omitempty,max=200"`
	Apellido      string `json:"apellido" validate:"omitempty,max=200"`
	DependenciaID *int   `json:"dependencia_id"`
}

// UpdateUsuarioRequest entrada para actualizar perfil/rol/estado.
type UpdateUsuarioRequest struct {
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	Estado        string `json:"estado"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	DependenciaID *int   `json:"dependencia_id"`
}

// UsuarioResponse salida de un usuario. Nunca incluye el password legacy ni
// llaves del proveedor.
type UsuarioResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	Estado        string    `json:"estado"`
	AuthUserID    string    `json:"auth_user_id,omitempty"`
	Nombre        string    `json:"nombre,omitempty"`
	Apellido      string    `json:"apellido,omitempty"`
	DependenciaID *int      `json:"dependencia_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UsuarioListResponse listado paginado de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
