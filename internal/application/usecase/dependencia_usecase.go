package usecase

import (
	"context"
	"time"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// DependenciaUseCase casos de uso para dependencias.
type DependenciaUseCase struct {
	repo repository.DependenciaRepository
}

// NewDependenciaUseCase construye el caso de uso con el puerto de persistencia.
func NewDependenciaUseCase(repo repository.DependenciaRepository) *DependenciaUseCase {
	return &DependenciaUseCase{repo: repo}
}

// Create crea una dependencia activa.
func (uc *DependenciaUseCase) Create(ctx context.Context, in dto.CreateDependenciaRequest) (*dto.DependenciaResponse, error) {
	now := time.Now()
	d := &entity.Dependencia{
		Nombre:    in.Nombre,
		Sigla:     in.Sigla,
		Activa:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d, err := uc.repo.Create(ctx, d)
	if err != nil {
		return nil, err
	}
	return toDependenciaResponse(d), nil
}

// GetByID obtiene una dependencia por ID.
func (uc *DependenciaUseCase) GetByID(ctx context.Context, id int) (*dto.DependenciaResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDependenciaResponse(d), nil
}

// List lista dependencias con búsqueda opcional y paginación.
func (uc *DependenciaUseCase) List(ctx context.Context, busqueda string, limit, offset int) (*dto.DependenciaListResponse, error) {
	list, err := uc.repo.List(ctx, busqueda, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DependenciaResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDependenciaResponse(d))
	}
	return &dto.DependenciaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update aplica los campos presentes de la petición sobre la dependencia.
func (uc *DependenciaUseCase) Update(ctx context.Context, id int, in dto.UpdateDependenciaRequest) (*dto.DependenciaResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Nombre != "" {
		d.Nombre = in.Nombre
	}
	if in.Sigla != "" {
		d.Sigla = in.Sigla
	}
	if in.Activa != nil {
		d.Activa = *in.Activa
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDependenciaResponse(d), nil
}

// Delete elimina una dependencia.
func (uc *DependenciaUseCase) Delete(ctx context.Context, id int) error {
	return uc.repo.Delete(ctx, id)
}

func toDependenciaResponse(d *entity.Dependencia) *dto.DependenciaResponse {
	if d == nil {
		return nil
	}
	return &dto.DependenciaResponse{
		ID:        d.ID,
		Nombre:    d.Nombre,
		Sigla:     d.Sigla,
		Activa:    d.Activa,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
