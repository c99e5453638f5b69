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
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
	apphttp "github.com/JuanF88/sistema-CGCAI-sub001/internal/interfaces/http"
)

// fakeInformeRepo cuenta las escrituras; las peticiones inválidas no deben
// llegar hasta aquí.
type fakeInformeRepo struct {
	informes []*entity.InformeAuditoria
	creates  int
}

func (f *fakeInformeRepo) Create(_ context.Context, inf *entity.InformeAuditoria) (*entity.InformeAuditoria, error) {
	f.creates++
	inf.ID = f.creates
	f.informes = append(f.informes, inf)
	return inf, nil
}

func (f *fakeInformeRepo) GetByID(_ context.Context, id int) (*entity.InformeAuditoria, error) {
	for _, inf := range f.informes {
		if inf.ID == id {
			return inf, nil
		}
	}
	return nil, nil
}

func (f *fakeInformeRepo) List(_ context.Context, _ repository.InformeFiltro) ([]*entity.InformeAuditoria, error) {
	return f.informes, nil
}

func (f *fakeInformeRepo) Update(_ context.Context, _ *entity.InformeAuditoria) error { return nil }

func (f *fakeInformeRepo) Delete(_ context.Context, _ int) error { return nil }

func (f *fakeInformeRepo) Periodos(_ context.Context) ([]string, error) { return nil, nil }

func buildInformeApp(repo *fakeInformeRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewInformeHandler(usecase.NewInformeUseCase(repo))
	app.Post("/informes", h.Create)
	app.Get("/informes", h.List)
	return app
}

func TestInformeCreate_SinUsuarioRetorna400SinEscribir(t *testing.T) {
	repo := &fakeInformeRepo{}
	app := buildInformeApp(repo)

	body := `{"dependencia_id":3,"objetivo":"verificar el proceso"}`
	req := httptest.NewRequest(http.MethodPost, "/informes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates, "una petición sin usuario_id no debe escribir")
}

func TestInformeCreate_CuerpoVacioRetorna400SinEscribir(t *testing.T) {
	repo := &fakeInformeRepo{}
	app := buildInformeApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/informes", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates)
}

func TestInformeCreate_Valido(t *testing.T) {
	repo := &fakeInformeRepo{}
	app := buildInformeApp(repo)

	body := `{"usuario_id":"00000000-0000-0000-0000-000000000001","dependencia_id":3,"periodo":"2024-1","fecha_auditoria":"2024-03-01T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/informes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, repo.creates)
	require.NotNil(t, repo.informes[0].FechaAuditoria)
	assert.Equal(t, "2024-03-01", *repo.informes[0].FechaAuditoria)
}

func TestInformeList_PaginacionPorDefecto(t *testing.T) {
	repo := &fakeInformeRepo{}
	app := buildInformeApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/informes", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Page struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"page"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 20, body.Page.Limit)
	assert.Equal(t, 0, body.Page.Offset)
}

func TestInformeList_LimiteConTope(t *testing.T) {
	repo := &fakeInformeRepo{}
	app := buildInformeApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/informes?limit=500", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Page struct {
			Limit int `json:"limit"`
		} `json:"page"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 100, body.Page.Limit, "el límite debe acotarse a 100")
}
