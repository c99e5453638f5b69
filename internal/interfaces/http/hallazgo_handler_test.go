package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	apphttp "github.com/JuanF88/sistema-CGCAI-sub001/internal/interfaces/http"
)

type fakeHallazgoRepo struct {
	hallazgos []*entity.Hallazgo
	creates   int
}

func (f *fakeHallazgoRepo) Create(_ context.Context, h *entity.Hallazgo) (*entity.Hallazgo, error) {
	f.creates++
	h.ID = f.creates
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

func buildHallazgoApp(repo *fakeHallazgoRepo) *fiber.App {
	infRepo := &fakeInformeRepo{informes: []*entity.InformeAuditoria{{ID: 1}}}
	app := fiber.New()
	h := apphttp.NewHallazgoHandler(usecase.NewHallazgoUseCase(repo, infRepo))
	app.Post("/informes/:id/no-conformidades", h.Create(entity.TipoNoConformidad))
	app.Post("/informes/:id/fortalezas", h.Create(entity.TipoFortaleza))
	return app
}

func TestHallazgoCreate_SinNumeralRetorna400SinEscribir(t *testing.T) {
	repo := &fakeHallazgoRepo{}
	app := buildHallazgoApp(repo)

	body := `{"norma":"ISO 9001","capitulo":"8","descripcion":"sin control"}`
	req := httptest.NewRequest(http.MethodPost, "/informes/1/no-conformidades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates, "una petición sin numeral no debe escribir")
}

func TestHallazgoCreate_EmiteCampoVariantePorTipo(t *testing.T) {
	repo := &fakeHallazgoRepo{}
	app := buildHallazgoApp(repo)

	body := `{"norma":"ISO 9001","capitulo":"8","numeral":"8.5.1",` +
		`"descripcion":"producción sin control documentado","evidencia":"acta del 2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/informes/1/no-conformidades", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "acta del 2024-03-01", out["evidencia"])
	// El campo variante es por tipo: una no conformidad nunca emite razon ni proposito.
	assert.NotContains(t, out, "razon")
	assert.NotContains(t, out, "proposito")
}

func TestHallazgoCreate_FortalezaUsaRazon(t *testing.T) {
	repo := &fakeHallazgoRepo{}
	app := buildHallazgoApp(repo)

	body := `{"norma":"ISO 9001","capitulo":"7","numeral":"7.2",` +
		`"descripcion":"personal competente","razon":"registros de formación completos"}`
	req := httptest.NewRequest(http.MethodPost, "/informes/1/fortalezas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "registros de formación completos", out["razon"])
	assert.NotContains(t, out, "evidencia")
	require.Len(t, repo.hallazgos, 1)
	assert.Equal(t, "registros de formación completos", repo.hallazgos[0].Detalle)
}
