package usecase

import (
	"context"
	"time"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// InformeUseCase casos de uso para informes de auditoría.
type InformeUseCase struct {
	repo repository.InformeRepository
}

// NewInformeUseCase construye el caso de uso con el puerto de persistencia.
func NewInformeUseCase(repo repository.InformeRepository) *InformeUseCase {
	return &InformeUseCase{repo: repo}
}

// Create crea un informe. Las fechas se normalizan a YYYY-MM-DD; las no
// interpretables quedan en NULL.
func (uc *InformeUseCase) Create(ctx context.Context, in dto.CreateInformeRequest) (*dto.InformeResponse, error) {
	now := time.Now()
	inf := &entity.InformeAuditoria{
		UsuarioID:        in.UsuarioID,
		DependenciaID:    in.DependenciaID,
		Objetivo:         in.Objetivo,
		Criterios:        in.Criterios,
		Conclusiones:     in.Conclusiones,
		Recomendaciones:  in.Recomendaciones,
		FechaAuditoria:   dto.CoerceFecha(in.FechaAuditoria),
		FechaSeguimiento: dto.CoerceFecha(in.FechaSeguimiento),
		Acompanantes:     in.Acompanantes,
		Periodo:          in.Periodo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	inf, err := uc.repo.Create(ctx, inf)
	if err != nil {
		return nil, err
	}
	return toInformeResponse(inf), nil
}

// GetByID obtiene un informe por ID.
func (uc *InformeUseCase) GetByID(ctx context.Context, id int) (*dto.InformeResponse, error) {
	inf, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, nil
	}
	return toInformeResponse(inf), nil
}

// List lista informes según el filtro.
func (uc *InformeUseCase) List(ctx context.Context, filtro repository.InformeFiltro) (*dto.InformeListResponse, error) {
	list, err := uc.repo.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InformeResponse, 0, len(list))
	for _, inf := range list {
		items = append(items, *toInformeResponse(inf))
	}
	return &dto.InformeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtro.Limit, Offset: filtro.Offset},
	}, nil
}

// Update aplica los campos presentes de la petición sobre el informe.
func (uc *InformeUseCase) Update(ctx context.Context, id int, in dto.UpdateInformeRequest) (*dto.InformeResponse, error) {
	inf, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, nil
	}
	if in.Objetivo != "" {
		inf.Objetivo = in.Objetivo
	}
	if in.Criterios != "" {
		inf.Criterios = in.Criterios
	}
	if in.Conclusiones != "" {
		inf.Conclusiones = in.Conclusiones
	}
	if in.Recomendaciones != "" {
		inf.Recomendaciones = in.Recomendaciones
	}
	if in.FechaAuditoria != "" {
		inf.FechaAuditoria = dto.CoerceFecha(in.FechaAuditoria)
	}
	if in.FechaSeguimiento != "" {
		inf.FechaSeguimiento = dto.CoerceFecha(in.FechaSeguimiento)
	}
	if in.Acompanantes != nil {
		inf.Acompanantes = in.Acompanantes
	}
	if in.Periodo != "" {
		inf.Periodo = in.Periodo
	}
	if in.Validado != nil {
		inf.Validado = *in.Validado
	}
	inf.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, inf); err != nil {
		return nil, err
	}
	return toInformeResponse(inf), nil
}

// Delete elimina un informe.
func (uc *InformeUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

// Periodos devuelve los períodos distintos con informes registrados.
func (uc *InformeUseCase) Periodos(ctx context.Context) (*dto.PeriodosResponse, error) {
	periodos, err := uc.repo.Periodos(ctx)
	if err != nil {
		return nil, err
	}
	if periodos == nil {
		periodos = []string{}
	}
	return &dto.PeriodosResponse{Periodos: periodos}, nil
}

func toInformeResponse(inf *entity.InformeAuditoria) *dto.InformeResponse {
	if inf == nil {
		return nil
	}
	acomp := inf.Acompanantes
	if acomp == nil {
		acomp = []string{}
	}
	return &dto.InformeResponse{
		ID:               inf.ID,
		UsuarioID:        inf.UsuarioID,
		DependenciaID:    inf.DependenciaID,
		Objetivo:         inf.Objetivo,
		Criterios:        inf.Criterios,
		Conclusiones:     inf.Conclusiones,
		Recomendaciones:  inf.Recomendaciones,
		FechaAuditoria:   inf.FechaAuditoria,
		FechaSeguimiento: inf.FechaSeguimiento,
		Acompanantes:     acomp,
		Periodo:          inf.Periodo,
		Validado:         inf.Validado,
		CreatedAt:        inf.CreatedAt,
		UpdatedAt:        inf.UpdatedAt,
	}
}
