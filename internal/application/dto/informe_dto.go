package dto

import "time"

// CreateInformeRequest entrada para crear un informe de auditoría.
// Las fechas aceptan cualquier formato conocido y se normalizan a YYYY-MM-DD;
// una fecha no interpretable queda en NULL.
type CreateInformeRequest struct {
	UsuarioID        string   `json:"usuario_id" validate:"required,uuid"`
	DependenciaID    int      `json:"dependencia_id" validate:"required,min=1"`
	Objetivo         string   `json:"objetivo"`
	Criterios        string   `json:"criterios"`
	Conclusiones     string   `json:"conclusiones"`
	Recomendaciones  string   `json:"recomendaciones"`
	FechaAuditoria   string   `json:"fecha_auditoria"`
	FechaSeguimiento string   `json:"fecha_seguimiento"`
	Acompanantes     []string `json:"acompanantes"`
	Periodo          string   `json:"periodo"`
}

// UpdateInformeRequest entrada para actualizar un informe.
type UpdateInformeRequest struct {
	Objetivo         string   `json:"objetivo"`
	Criterios        string   `json:"criterios"`
	Conclusiones     string   `json:"conclusiones"`
	Recomendaciones  string   `json:"recomendaciones"`
	FechaAuditoria   string   `json:"fecha_auditoria"`
	FechaSeguimiento string   `json:"fecha_seguimiento"`
	Acompanantes     []string `json:"acompanantes"`
	Periodo          string   `json:"periodo"`
	Validado         *bool    `json:"validado"`
}

// InformeResponse salida de un informe.
type InformeResponse struct {
	ID               int       `json:"id"`
	UsuarioID        string    `json:"usuario_id"`
	DependenciaID    int       `json:"dependencia_id"`
	Objetivo         string    `json:"objetivo,omitempty"`
	Criterios        string    `json:"criterios,omitempty"`
	Conclusiones     string    `json:"conclusiones,omitempty"`
	Recomendaciones  string    `json:"recomendaciones,omitempty"`
	FechaAuditoria   *string   `json:"fecha_auditoria"`
	FechaSeguimiento *string   `json:"fecha_seguimiento"`
	Acompanantes     []string  `json:"acompanantes"`
	Periodo          string    `json:"periodo,omitempty"`
	Validado         bool      `json:"validado"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// InformeListResponse listado paginado de informes.
type InformeListResponse struct {
	Items []InformeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
