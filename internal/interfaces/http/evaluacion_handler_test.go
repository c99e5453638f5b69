package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	apphttp "github.com/JuanF88/sistema-CGCAI-sub001/internal/interfaces/http"
)

// fakeEvaluacionRepo reproduce el cálculo derivado de la base: promedio de
// los cuatro criterios redondeado a dos decimales.
type fakeEvaluacionRepo struct {
	evaluaciones []*entity.EvaluacionAuditor
	creates      int
}

func (f *fakeEvaluacionRepo) Create(_ context.Context, e *entity.EvaluacionAuditor) (*entity.EvaluacionAuditor, error) {
	f.creates++
	e.ID = f.creates
	suma := e.Conocimiento.Add(e.Metodologia).Add(e.Comunicacion).Add(e.Objetividad)
	e.CalificacionFinal = suma.Div(decimal.NewFromInt(4)).Round(2)
	f.evaluaciones = append(f.evaluaciones, e)
	return e, nil
}

func (f *fakeEvaluacionRepo) GetByID(_ context.Context, id int) (*entity.EvaluacionAuditor, error) {
	for _, e := range f.evaluaciones {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEvaluacionRepo) List(_ context.Context, _ int) ([]*entity.EvaluacionAuditor, error) {
	return f.evaluaciones, nil
}

func (f *fakeEvaluacionRepo) ActualizarFecha(_ context.Context, id int, fecha *string) error {
	for _, e := range f.evaluaciones {
		if e.ID == id {
			e.Fecha = fecha
		}
	}
	return nil
}

func buildEvaluacionApp(repo *fakeEvaluacionRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewEvaluacionHandler(usecase.NewEvaluacionUseCase(repo))
	app.Post("/evaluaciones", h.Create)
	app.Put("/evaluaciones/:id/fecha", h.CorregirFecha)
	return app
}

func TestEvaluacionCreate_SinUsuarioRetorna400SinEscribir(t *testing.T) {
	repo := &fakeEvaluacionRepo{}
	app := buildEvaluacionApp(repo)

	body := `{"informe_id":1,"conocimiento":"4.5"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluaciones", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates, "una petición sin usuario_id no debe escribir")
}

func TestEvaluacionCreate_SinInformeRetorna400SinEscribir(t *testing.T) {
	repo := &fakeEvaluacionRepo{}
	app := buildEvaluacionApp(repo)

	body := `{"usuario_id":"00000000-0000-0000-0000-000000000001"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluaciones", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates)
}

func TestEvaluacionCreate_Valido(t *testing.T) {
	repo := &fakeEvaluacionRepo{}
	app := buildEvaluacionApp(repo)

	body := `{"usuario_id":"00000000-0000-0000-0000-000000000001","informe_id":1,` +
		`"conocimiento":"4.0","metodologia":"5.0","comunicacion":"4.0","objetividad":"3.0"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluaciones", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, repo.creates)
	assert.True(t, repo.evaluaciones[0].CalificacionFinal.Equal(decimal.RequireFromString("4.00")))
}

func TestEvaluacionCorregirFecha_NormalizaFecha(t *testing.T) {
	repo := &fakeEvaluacionRepo{}
	app := buildEvaluacionApp(repo)

	crear := httptest.NewRequest(http.MethodPost, "/evaluaciones", strings.NewReader(
		`{"usuario_id":"00000000-0000-0000-0000-000000000001","informe_id":1}`))
	crear.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(crear, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	corregir := httptest.NewRequest(http.MethodPut, "/evaluaciones/1/fecha", strings.NewReader(
		`{"fecha":"2024-03-01T10:00:00Z"}`))
	corregir.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(corregir, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.evaluaciones[0].Fecha)
	assert.Equal(t, "2024-03-01", *repo.evaluaciones[0].Fecha)
}

func TestEvaluacionCorregirFecha_InvalidaLimpiaElCampo(t *testing.T) {
	repo := &fakeEvaluacionRepo{}
	app := buildEvaluacionApp(repo)

	crear := httptest.NewRequest(http.MethodPost, "/evaluaciones", strings.NewReader(
		`{"usuario_id":"00000000-0000-0000-0000-000000000001","informe_id":1,"fecha":"2024-03-01"}`))
	crear.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(crear, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	corregir := httptest.NewRequest(http.MethodPut, "/evaluaciones/1/fecha", strings.NewReader(
		`{"fecha":"no es fecha"}`))
	corregir.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(corregir, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, repo.evaluaciones[0].Fecha, "una fecha no interpretable se guarda como NULL")
}
