package repository

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
)

// PlanRepository puerto de persistencia para el plan de auditoría.
type PlanRepository interface {
	Create(ctx context.Context, p *entity.PlanAuditoria) (*entity.PlanAuditoria, error)
	List(ctx context.Context, periodo string) ([]*entity.PlanAuditoria, error)
	Update(ctx context.Context, p *entity.PlanAuditoria) error
	Delete(ctx context.Context, id int) error
}
