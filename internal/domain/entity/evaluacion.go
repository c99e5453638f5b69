package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EvaluacionAuditor es la encuesta con la que una dependencia califica al
// auditor de un informe. CalificacionFinal es derivada: promedio de los cuatro
// criterios, recalculada en la base al crear o corregir la evaluación.
type EvaluacionAuditor struct {
	ID                int
	UsuarioID         string
	InformeID         int
	Fecha             *string // YYYY-MM-DD
	Conocimiento      decimal.Decimal
	Metodologia       decimal.Decimal
	Comunicacion      decimal.Decimal
	Objetividad       decimal.Decimal
	CalificacionFinal decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
