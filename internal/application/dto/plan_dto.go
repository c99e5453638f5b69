package dto

import "time"

// CreatePlanRequest entrada para programar una auditoría en el plan.
type CreatePlanRequest struct {
	DependenciaID   int    `json:"dependencia_id" validate:"required,min=1"`
	Periodo         string `json:"periodo" validate:"required"`
	FechaProgramada string `json:"fecha_programada"`
}

// PlanResponse salida de una entrada del plan.
type PlanResponse struct {
	ID              int       `json:"id"`
	DependenciaID   int       `json:"dependencia_id"`
	Periodo         string    `json:"periodo"`
	FechaProgramada *string   `json:"fecha_programada"`
	Estado          string    `json:"estado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PlanListResponse listado del plan de auditoría.
type PlanListResponse struct {
	Items []PlanResponse `json:"items"`
}
