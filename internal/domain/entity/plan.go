package entity

import "time"

// Estados del plan de auditoría.
const (
	PlanProgramada = "programada"
	PlanEnCurso    = "en_curso"
	PlanCerrada    = "cerrada"
)

// PlanAuditoria programa una auditoría sobre una dependencia en un período.
type PlanAuditoria struct {
	ID              int
	DependenciaID   int
	Periodo         string
	FechaProgramada *string // YYYY-MM-DD
	Estado          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
