package usecase

import (
	"context"
	"time"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// EvaluacionUseCase casos de uso para evaluaciones de auditores.
type EvaluacionUseCase struct {
	repo repository.EvaluacionRepository
}

// NewEvaluacionUseCase construye el caso de uso de evaluaciones.
func NewEvaluacionUseCase(repo repository.EvaluacionRepository) *EvaluacionUseCase {
	return &EvaluacionUseCase{repo: repo}
}

// Create registra una evaluación; la calificación final la deriva la base.
func (uc *EvaluacionUseCase) Create(ctx context.Context, in dto.CreateEvaluacionRequest) (*dto.EvaluacionResponse, error) {
	now := time.Now()
	e := &entity.EvaluacionAuditor{
		UsuarioID:    in.UsuarioID,
		InformeID:    in.InformeID,
		Fecha:        dto.CoerceFecha(in.Fecha),
		Conocimiento: in.Conocimiento,
		Metodologia:  in.Metodologia,
		Comunicacion: in.Comunicacion,
		Objetividad:  in.Objetividad,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	e, err := uc.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	return toEvaluacionResponse(e), nil
}

// List lista evaluaciones, opcionalmente por informe.
func (uc *EvaluacionUseCase) List(ctx context.Context, informeID int) (*dto.EvaluacionListResponse, error) {
	list, err := uc.repo.List(ctx, informeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EvaluacionResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEvaluacionResponse(e))
	}
	return &dto.EvaluacionListResponse{Items: items}, nil
}

// CorregirFecha normaliza y corrige la fecha de una evaluación existente.
// Una fecha no interpretable limpia el campo (NULL), nunca falla por formato.
func (uc *EvaluacionUseCase) CorregirFecha(ctx context.Context, id int, in dto.CorregirFechaRequest) (*dto.EvaluacionResponse, error) {
	if err := uc.repo.ActualizarFecha(ctx, id, dto.CoerceFecha(in.Fecha)); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEvaluacionResponse(e), nil
}

func toEvaluacionResponse(e *entity.EvaluacionAuditor) *dto.EvaluacionResponse {
	if e == nil {
		return nil
	}
	return &dto.EvaluacionResponse{
		ID:                e.ID,
		UsuarioID:         e.UsuarioID,
		InformeID:         e.InformeID,
		Fecha:             e.Fecha,
		Conocimiento:      e.Conocimiento,
		Metodologia:       e.Metodologia,
		Comunicacion:      e.Comunicacion,
		Objetividad:       e.Objetividad,
		CalificacionFinal: e.CalificacionFinal,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
