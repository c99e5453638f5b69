package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// HallazgoRepository puerto de persistencia para hallazgos de auditoría.
// tipo selecciona la tabla (fortalezas, oportunidades_mejora, no_conformidades);
// un tipo desconocido produce error sin tocar la base.
type HallazgoRepository interface {
	Create(ctx context.Context, h *entity.Hallazgo) (*entity.Hallazgo, error)
	GetByID(ctx context.Context, tipo string, id int) (*entity.Hallazgo, error)
	ListByInforme(ctx context.Context, tipo string, informeID int) ([]*entity.Hallazgo, error)
	Update(ctx context.Context, h *entity.Hallazgo) error
	Delete(ctx context.Context, tipo string, id int) error
}
