package dto

import "time"

// CreateDependenciaRequest entrada para crear una dependencia.
type CreateDependenciaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=300"`
	Sigla  string `json:"sigla" validate:"omitempty,max=20"`
}

// UpdateDependenciaRequest entrada para actualizar una dependencia.
type UpdateDependenciaRequest struct {
	Nombre string `json:"nombre"`
	Sigla  string `json:"sigla"`
	Activa *bool  `json:"activa"`
}

// DependenciaResponse salida de una dependencia.
type DependenciaResponse struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Sigla     string    `json:"sigla,omitempty"`
	Activa    bool      `json:"activa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DependenciaListResponse listado paginado de dependencias.
type DependenciaListResponse struct {
	Items []DependenciaResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
