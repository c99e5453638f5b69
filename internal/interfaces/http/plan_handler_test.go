package http_test

import (
	"context"
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

type fakePlanRepo struct {
	planes  []*entity.PlanAuditoria
	creates int
}

func (f *fakePlanRepo) Create(_ context.Context, p *entity.PlanAuditoria) (*entity.PlanAuditoria, error) {
	f.creates++
	p.ID = f.creates
	f.planes = append(f.planes, p)
	return p, nil
}

func (f *fakePlanRepo) List(_ context.Context, _ string) ([]*entity.PlanAuditoria, error) {
	return f.planes, nil
}

func (f *fakePlanRepo) Update(_ context.Context, _ *entity.PlanAuditoria) error { return nil }

func (f *fakePlanRepo) Delete(_ context.Context, _ int) error { return nil }

func buildPlanApp(repo *fakePlanRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewPlanHandler(usecase.NewPlanUseCase(repo))
	app.Post("/plan", h.Create)
	return app
}

func TestPlanCreate_SinPeriodoRetorna400SinEscribir(t *testing.T) {
	repo := &fakePlanRepo{}
	app := buildPlanApp(repo)

	body := `{"dependencia_id":3}`
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates, "una petición sin periodo no debe escribir")
}

func TestPlanCreate_SinDependenciaRetorna400SinEscribir(t *testing.T) {
	repo := &fakePlanRepo{}
	app := buildPlanApp(repo)

	body := `{"periodo":"2024-1"}`
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.creates)
}

func TestPlanCreate_Valido(t *testing.T) {
	repo := &fakePlanRepo{}
	app := buildPlanApp(repo)

	body := `{"dependencia_id":3,"periodo":"2024-1","fecha_programada":"15/04/2024"}`
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 1, repo.creates)
	require.NotNil(t, repo.planes[0].FechaProgramada)
	assert.Equal(t, "2024-04-15", *repo.planes[0].FechaProgramada)
}
