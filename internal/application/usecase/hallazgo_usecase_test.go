package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/dto"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

type fakeHallazgoRepo struct {
	hallazgos []*entity.Hallazgo
	nextID    int
}

func (f *fakeHallazgoRepo) Create(_ context.Context, h *entity.Hallazgo) (*entity.Hallazgo, error) {
	f.nextID++
	h.ID = f.nextID
	f.hallazgos = append(f.hallazgos, h)
	return h, nil
}

func (f *fakeHallazgoRepo) GetByID(_ context.Context, tipo string, id int) (*entity.Hallazgo, error) {
	for _, h := range f.hallazgos {
		if h.ID == id && h.Tipo == tipo {
			return h, nil
		}
	}
	return nil, nil
}

func (f *fakeHallazgoRepo) ListByInforme(_ context.Context, tipo string, informeID int) ([]*entity.Hallazgo, error) {
	var out []*entity.Hallazgo
	for _, h := range f.hallazgos {
		if h.Tipo == tipo && h.InformeID == informeID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHallazgoRepo) Update(_ context.Context, _ *entity.Hallazgo) error { return nil }

func (f *fakeHallazgoRepo) Delete(_ context.Context, _ string, _ int) error { return nil }

type fakeInformeRepo struct {
	informes map[int]*entity.InformeAuditoria
}

func (f *fakeInformeRepo) Create(_ context.Context, inf *entity.InformeAuditoria) (*entity.InformeAuditoria, error) {
	return inf, nil
}

func (f *fakeInformeRepo) GetByID(_ context.Context, id int) (*entity.InformeAuditoria, error) {
	return f.informes[id], nil
}

func (f *fakeInformeRepo) List(_ context.Context, _ repository.InformeFiltro) ([]*entity.InformeAuditoria, error) {
	return nil, nil
}

func (f *fakeInformeRepo) Update(_ context.Context, _ *entity.InformeAuditoria) error { return nil }

func (f *fakeInformeRepo) Delete(_ context.Context, _ int) error { return nil }

func (f *fakeInformeRepo) Periodos(_ context.Context) ([]string, error) { return nil, nil }

func nuevoHallazgoUC(informes ...int) (*HallazgoUseCase, *fakeHallazgoRepo) {
	repo := &fakeHallazgoRepo{}
	infRepo := &fakeInformeRepo{informes: map[int]*entity.InformeAuditoria{}}
	for _, id := range informes {
		infRepo.informes[id] = &entity.InformeAuditoria{ID: id}
	}
	return NewHallazgoUseCase(repo, infRepo), repo
}

func TestHallazgoCreate_InformeInexistente(t *testing.T) {
	uc, repo := nuevoHallazgoUC()

	_, err := uc.Create(context.Background(), entity.TipoFortaleza, 99, dto.CreateHallazgoRequest{
		Norma: "ISO 9001", Capitulo: "7", Numeral: "7.1.5", Descripcion: "calibración al día",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.hallazgos, "no debe escribir bajo un informe inexistente")
}

func TestHallazgoCreate_TipoDesconocido(t *testing.T) {
	uc, repo := nuevoHallazgoUC(1)

	_, err := uc.Create(context.Background(), "debilidad", 1, dto.CreateHallazgoRequest{
		Norma: "ISO 9001", Capitulo: "7", Numeral: "7.1", Descripcion: "x",
	})
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.Empty(t, repo.hallazgos)
}

func TestHallazgoCreate_Valido(t *testing.T) {
	uc, _ := nuevoHallazgoUC(1)

	out, err := uc.Create(context.Background(), entity.TipoNoConformidad, 1, dto.CreateHallazgoRequest{
		Norma:       "ISO 9001",
		Capitulo:    "8",
		Numeral:     "8.5.1",
		Descripcion: "producción sin control documentado",
		Evidencia:   "acta de revisión del 2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoNoConformidad, out.Tipo)
	assert.Equal(t, 1, out.InformeID)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "acta de revisión del 2024-03-01", out.Evidencia)
	assert.Empty(t, out.Razon)
	assert.Empty(t, out.Proposito)
}

func TestHallazgoCreate_IgnoraVarianteAjena(t *testing.T) {
	// Una fortaleza solo toma razon; proposito y evidencia enviados de más
	// no se guardan.
	uc, repo := nuevoHallazgoUC(1)

	out, err := uc.Create(context.Background(), entity.TipoFortaleza, 1, dto.CreateHallazgoRequest{
		Norma:       "ISO 9001",
		Capitulo:    "7",
		Numeral:     "7.1.5",
		Descripcion: "calibración al día",
		Razon:       "registros completos",
		Evidencia:   "no aplica",
	})
	require.NoError(t, err)
	assert.Equal(t, "registros completos", out.Razon)
	assert.Empty(t, out.Evidencia)
	require.Len(t, repo.hallazgos, 1)
	assert.Equal(t, "registros completos", repo.hallazgos[0].Detalle)
}

func TestHallazgoListByInforme_SeparaPorTipo(t *testing.T) {
	uc, _ := nuevoHallazgoUC(1)

	_, err := uc.Create(context.Background(), entity.TipoFortaleza, 1, dto.CreateHallazgoRequest{
		Norma: "ISO 9001", Capitulo: "7", Numeral: "7.2", Descripcion: "personal competente",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), entity.TipoOportunidad, 1, dto.CreateHallazgoRequest{
		Norma: "ISO 9001", Capitulo: "9", Numeral: "9.1.3", Descripcion: "ampliar indicadores",
	})
	require.NoError(t, err)

	fortalezas, err := uc.ListByInforme(context.Background(), entity.TipoFortaleza, 1)
	require.NoError(t, err)
	assert.Len(t, fortalezas.Items, 1)
	assert.Equal(t, "7.2", fortalezas.Items[0].Numeral)

	oportunidades, err := uc.ListByInforme(context.Background(), entity.TipoOportunidad, 1)
	require.NoError(t, err)
	assert.Len(t, oportunidades.Items, 1)
}
