package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// InformeFiltro criterios opcionales para listar informes.
type InformeFiltro struct {
	UsuarioID     string
	DependenciaID int
	Periodo       string
	Limit         int
	Offset        int
}

// InformeRepository puerto de persistencia para informes de auditoría.
type InformeRepository interface {
	Create(ctx context.Context, inf *entity.InformeAuditoria) (*entity.InformeAuditoria, error)
	GetByID(ctx context.Context, id int) (*entity.InformeAuditoria, error)
	List(ctx context.Context, filtro InformeFiltro) ([]*entity.InformeAuditoria, error)
	Update(ctx context.Context, inf *entity.InformeAuditoria) error
	Delete(ctx context.Context, id int) error
	// Periodos devuelve los períodos distintos con informes, el más reciente primero.
	Periodos(ctx context.Context) ([]string, error)
}
