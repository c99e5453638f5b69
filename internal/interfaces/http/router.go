package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/auth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/entity"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	DependenciaUC  *usecase.DependenciaUseCase
	InformeUC      *usecase.InformeUseCase
	HallazgoUC     *usecase.HallazgoUseCase
	EstadisticasUC *usecase.EstadisticasUseCase
	EvaluacionUC   *usecase.EvaluacionUseCase
	PlanUC         *usecase.PlanUseCase
	UsuarioRepo    repository.UsuarioRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token y fila en usuarios)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), LoadUsuario(deps.UsuarioRepo))

	// Migración por lotes (solo admin)
	protected.Post("/auth/migrar", RequireRole(entity.RolAdmin), authHandler.Migrar)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", RequireRole(entity.RolAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Dependencias
	dependencias := protected.Group("/dependencias")
	dependenciaHandler := NewDependenciaHandler(deps.DependenciaUC)
	dependencias.Get("/", dependenciaHandler.List)
	dependencias.Get("/:id", dependenciaHandler.GetByID)
	dependencias.Post("/", RequireRole(entity.RolAdmin, entity.RolGestor), dependenciaHandler.Create)
	dependencias.Put("/:id", RequireRole(entity.RolAdmin, entity.RolGestor), dependenciaHandler.Update)
	dependencias.Delete("/:id", RequireRole(entity.RolAdmin), dependenciaHandler.Delete)

	// Informes de auditoría
	informes := protected.Group("/informes")
	informeHandler := NewInformeHandler(deps.InformeUC)
	informes.Get("/", informeHandler.List)
	informes.Get("/:id", informeHandler.GetByID)
	informes.Post("/", RequireRole(entity.RolAdmin, entity.RolAuditor), informeHandler.Create)
	informes.Put("/:id", RequireRole(entity.RolAdmin, entity.RolAuditor), informeHandler.Update)
	informes.Delete("/:id", RequireRole(entity.RolAdmin), informeHandler.Delete)

	// Hallazgos por informe, una subruta por tipo
	hallazgoHandler := NewHallazgoHandler(deps.HallazgoUC)
	rutasHallazgo := []struct {
		segmento string
		tipo     string
	}{
		{"fortalezas", entity.TipoFortaleza},
		{"oportunidades", entity.TipoOportunidad},
		{"no-conformidades", entity.TipoNoConformidad},
	}
	for _, r := range rutasHallazgo {
		grupo := informes.Group("/:id/" + r.segmento)
		grupo.Get("/", hallazgoHandler.ListByInforme(r.tipo))
		grupo.Post("/", RequireRole(entity.RolAdmin, entity.RolAuditor), hallazgoHandler.Create(r.tipo))
		grupo.Put("/:hallazgoId", RequireRole(entity.RolAdmin, entity.RolAuditor), hallazgoHandler.Update(r.tipo))
		grupo.Delete("/:hallazgoId", RequireRole(entity.RolAdmin, entity.RolAuditor), hallazgoHandler.Delete(r.tipo))
	}

	// Estadísticas y periodos
	estadisticasHandler := NewEstadisticasHandler(deps.EstadisticasUC)
	protected.Get("/estadisticas", estadisticasHandler.Resumen)
	protected.Get("/estadisticas/hallazgos", estadisticasHandler.Hallazgos)
	protected.Get("/periodos", informeHandler.Periodos)

	// Evaluaciones de auditores
	evaluaciones := protected.Group("/evaluaciones")
	evaluacionHandler := NewEvaluacionHandler(deps.EvaluacionUC)
	evaluaciones.Get("/", evaluacionHandler.List)
	evaluaciones.Post("/", RequireRole(entity.RolAdmin, entity.RolGestor), evaluacionHandler.Create)
	evaluaciones.Put("/:id/fecha", RequireRole(entity.RolAdmin, entity.RolGestor), evaluacionHandler.CorregirFecha)

	// Plan de auditoría
	plan := protected.Group("/plan")
	planHandler := NewPlanHandler(deps.PlanUC)
	plan.Get("/", planHandler.List)
	plan.Post("/", RequireRole(entity.RolAdmin, entity.RolGestor), planHandler.Create)
}
