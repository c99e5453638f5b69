package usecase

import (
	"context"
	"time"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// PlanUseCase casos de uso para el plan de auditoría.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso del plan.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Create programa una auditoría en estado inicial.
func (uc *PlanUseCase) Create(ctx context.Context, in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	now := time.Now()
	p := &entity.PlanAuditoria{
		DependenciaID:   in.DependenciaID,
		Periodo:         in.Periodo,
		FechaProgramada: dto.CoerceFecha(in.FechaProgramada),
		Estado:          entity.PlanProgramada,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(p), nil
}

// List lista el plan, opcionalmente filtrado por período.
func (uc *PlanUseCase) List(ctx context.Context, periodo string) (*dto.PlanListResponse, error) {
	list, err := uc.repo.List(ctx, periodo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PlanResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPlanResponse(p))
	}
	return &dto.PlanListResponse{Items: items}, nil
}

func toPlanResponse(p *entity.PlanAuditoria) *dto.PlanResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanResponse{
		ID:              p.ID,
		DependenciaID:   p.DependenciaID,
		Periodo:         p.Periodo,
		FechaProgramada: p.FechaProgramada,
		Estado:          p.Estado,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
