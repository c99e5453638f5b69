package usecase

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// HallazgoUseCase casos de uso para hallazgos de auditoría (fortalezas,
// oportunidades de mejora, no conformidades).
type HallazgoUseCase struct {
	repo        repository.HallazgoRepository
	informeRepo repository.InformeRepository
}

// NewHallazgoUseCase construye el caso de uso con los puertos de persistencia.
func NewHallazgoUseCase(repo repository.HallazgoRepository, informeRepo repository.InformeRepository) *HallazgoUseCase {
	return &HallazgoUseCase{repo: repo, informeRepo: informeRepo}
}

// Create crea un hallazgo bajo un informe existente. Devuelve
// domain.ErrNotFound si el informe no existe y domain.ErrValidacion ante un
// tipo desconocido.
func (uc *HallazgoUseCase) Create(ctx context.Context, tipo string, informeID int, in dto.CreateHallazgoRequest) (*dto.HallazgoResponse, error) {
	if !entity.TipoHallazgoValido(tipo) {
		return nil, domain.ErrValidacion
	}
	inf, err := uc.informeRepo.GetByID(ctx, informeID)
	if err != nil {
		return nil, err
	}
	if inf == nil {
		return nil, domain.ErrNotFound
	}
	h := &entity.Hallazgo{
		InformeID:   informeID,
		Tipo:        tipo,
		Norma:       in.Norma,
		Capitulo:    in.Capitulo,
		Numeral:     in.Numeral,
		Descripcion: in.Descripcion,
		Detalle:     detallePorTipo(tipo, in.Razon, in.Proposito, in.Evidencia),
	}
	h, err = uc.repo.Create(ctx, h)
	if err != nil {
		return nil, err
	}
	return toHallazgoResponse(h), nil
}

// ListByInforme lista los hallazgos de un tipo para un informe.
func (uc *HallazgoUseCase) ListByInforme(ctx context.Context, tipo string, informeID int) (*dto.HallazgoListResponse, error) {
	if !entity.TipoHallazgoValido(tipo) {
		return nil, domain.ErrValidacion
	}
	list, err := uc.repo.ListByInforme(ctx, tipo, informeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HallazgoResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHallazgoResponse(h))
	}
	return &dto.HallazgoListResponse{Items: items}, nil
}

// Update aplica los campos presentes de la petición sobre el hallazgo.
func (uc *HallazgoUseCase) Update(ctx context.Context, tipo string, id int, in dto.UpdateHallazgoRequest) (*dto.HallazgoResponse, error) {
	if !entity.TipoHallazgoValido(tipo) {
		return nil, domain.ErrValidacion
	}
	h, err := uc.repo.GetByID(ctx, tipo, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}
	if in.Norma != "" {
		h.Norma = in.Norma
	}
	if in.Capitulo != "" {
		h.Capitulo = in.Capitulo
	}
	if in.Numeral != "" {
		h.Numeral = in.Numeral
	}
	if in.Descripcion != "" {
		h.Descripcion = in.Descripcion
	}
	if d := detallePorTipo(tipo, in.Razon, in.Proposito, in.Evidencia); d != "" {
		h.Detalle = d
	}
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return toHallazgoResponse(h), nil
}

// Delete elimina un hallazgo.
func (uc *HallazgoUseCase) Delete(ctx context.Context, tipo string, id int) error {
	if !entity.TipoHallazgoValido(tipo) {
		return domain.ErrValidacion
	}
	return uc.repo.Delete(ctx, tipo, id)
}

// detallePorTipo selecciona el campo variante que corresponde al tipo.
func detallePorTipo(tipo, razon, proposito, evidencia string) string {
	switch tipo {
	case entity.TipoFortaleza:
		return razon
	case entity.TipoOportunidad:
		return proposito
	case entity.TipoNoConformidad:
		return evidencia
	}
	return ""
}

func toHallazgoResponse(h *entity.Hallazgo) *dto.HallazgoResponse {
	if h == nil {
		return nil
	}
	out := &dto.HallazgoResponse{
		ID:          h.ID,
		InformeID:   h.InformeID,
		Tipo:        h.Tipo,
		Norma:       h.Norma,
		Capitulo:    h.Capitulo,
		Numeral:     h.Numeral,
		Descripcion: h.Descripcion,
	}
	switch h.Tipo {
	case entity.TipoFortaleza:
		out.Razon = h.Detalle
	case entity.TipoOportunidad:
		out.Proposito = h.Detalle
	case entity.TipoNoConformidad:
		out.Evidencia = h.Detalle
	}
	return out
}
