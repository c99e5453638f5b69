package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEvaluacionRequest entrada para registrar una evaluación de auditor.
// Los criterios se califican de 0 a 5; la calificación final es derivada.
type CreateEvaluacionRequest struct {
	UsuarioID    string          `json:"usuario_id" validate:"required,uuid"`
	InformeID    int             `json:"informe_id" validate:"required,min=1"`
	Fecha        string          `json:"fecha"`
	Conocimiento decimal.Decimal `json:"conocimiento"`
	Metodologia  decimal.Decimal `json:"metodologia"`
	Comunicacion decimal.Decimal `json:"comunicacion"`
	Objetividad  decimal.Decimal `json:"objetividad"`
}

// CorregirFechaRequest entrada para corregir la fecha de una evaluación.
type CorregirFechaRequest struct {
	Fecha string `json:"fecha"`
}

// EvaluacionResponse salida de una evaluación.
type EvaluacionResponse struct {
	ID                int             `json:"id"`
	UsuarioID         string          `json:"usuario_id"`
	InformeID         int             `json:"informe_id"`
	Fecha             *string         `json:"fecha"`
	Conocimiento      decimal.Decimal `json:"conocimiento"`
	Metodologia       decimal.Decimal `json:"metodologia"`
	Comunicacion      decimal.Decimal `json:"comunicacion"`
	Objetividad       decimal.Decimal `json:"objetividad"`
	CalificacionFinal decimal.Decimal `json:"calificacion_final"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// EvaluacionListResponse listado de evaluaciones.
type EvaluacionListResponse struct {
	Items []EvaluacionResponse `json:"items"`
}
