package usecase

import (
	"context"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// EstadisticasUseCase agregaciones de informes y hallazgos.
type EstadisticasUseCase struct {
	repo repository.EstadisticasRepository
}

// NewEstadisticasUseCase construye el caso de uso de estadísticas.
func NewEstadisticasUseCase(repo repository.EstadisticasRepository) *EstadisticasUseCase {
	return &EstadisticasUseCase{repo: repo}
}

// Resumen devuelve totales del período y el desglose por dependencia.
func (uc *EstadisticasUseCase) Resumen(ctx context.Context, periodo string) (*dto.EstadisticasResponse, error) {
	validados, pendientes, err := uc.repo.TotalesInformes(ctx, periodo)
	if err != nil {
		return nil, err
	}
	resumen, err := uc.repo.ResumenPorDependencia(ctx, periodo)
	if err != nil {
		return nil, err
	}
	deps := make([]dto.ResumenDependenciaDTO, 0, len(resumen))
	for _, r := range resumen {
		deps = append(deps, dto.ResumenDependenciaDTO{
			DependenciaID:      r.DependenciaID,
			Dependencia:        r.Dependencia,
			Periodo:            r.Periodo,
			Informes:           r.Informes,
			Validados:          r.Validados,
			Fortalezas:         r.Fortalezas,
			Oportunidades:      r.Oportunidades,
			NoConformidades:    r.NoConformidades,
			PorcentajeValidado: r.PorcentajeValidado,
		})
	}
	return &dto.EstadisticasResponse{
		Periodo:      periodo,
		Validados:    validados,
		Pendientes:   pendientes,
		Dependencias: deps,
	}, nil
}

// Hallazgos devuelve la agregación de hallazgos por cláusula ISO.
func (uc *EstadisticasUseCase) Hallazgos(ctx context.Context, periodo string) (*dto.HallazgosAgregadosResponse, error) {
	conteos, err := uc.repo.HallazgosPorNumeral(ctx, periodo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConteoNumeralDTO, 0, len(conteos))
	for _, c := range conteos {
		items = append(items, dto.ConteoNumeralDTO{
			Norma:    c.Norma,
			Capitulo: c.Capitulo,
			Numeral:  c.Numeral,
			Tipo:     c.Tipo,
			Total:    c.Total,
		})
	}
	return &dto.HallazgosAgregadosResponse{Periodo: periodo, Items: items}, nil
}
