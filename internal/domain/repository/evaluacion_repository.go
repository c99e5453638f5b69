package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// EvaluacionRepository puerto de persistencia para evaluaciones de auditores.
type EvaluacionRepository interface {
	// Create inserta la evaluación y recalcula calificacion_final en la misma
	// operación; devuelve la fila resultante.
	Create(ctx context.Context, e *entity.EvaluacionAuditor) (*entity.EvaluacionAuditor, error)
	GetByID(ctx context.Context, id int) (*entity.EvaluacionAuditor, error)
	List(ctx context.Context, informeID int) ([]*entity.EvaluacionAuditor, error)
	// ActualizarFecha corrige la fecha de una evaluación; fecha nil limpia el campo.
	ActualizarFecha(ctx context.Context, id int, fecha *string) error
}
