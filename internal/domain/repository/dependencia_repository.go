package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// DependenciaRepository puerto de persistencia para dependencias.
type DependenciaRepository interface {
	Create(ctx context.Context, d *entity.Dependencia) (*entity.Dependencia, error)
	GetByID(ctx context.Context, id int) (*entity.Dependencia, error)
	// List filtra por búsqueda (insensible a mayúsculas y tildes) cuando
	// busqueda no está vacío.
	List(ctx context.Context, busqueda string, limit, offset int) ([]*entity.Dependencia, error)
	Update(ctx context.Context, d *entity.Dependencia) error
	Delete(ctx context.Context, id int) error
}
