package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/auth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/usecase"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/infrastructure/goauth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/JuanF88/sistema-CGCAI-sub001/internal/interfaces/http"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/config"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	dependenciaRepo := postgres.NewDependenciaRepository(pool)
	informeRepo := postgres.NewInformeRepository(pool)
	hallazgoRepo := postgres.NewHallazgoRepository(pool)
	estadisticasRepo := postgres.NewEstadisticasRepository(pool)
	evaluacionRepo := postgres.NewEvaluacionRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	provider := goauth.NewClient(cfg.Auth.URL, cfg.Auth.AnonKey, cfg.Auth.ServiceKey)

	authUC := auth.NewAuthUseCase(usuarioRepo, provider, txRunner, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	dependenciaUC := usecase.NewDependenciaUseCase(dependenciaRepo)
	informeUC := usecase.NewInformeUseCase(informeRepo)
	hallazgoUC := usecase.NewHallazgoUseCase(hallazgoRepo, informeRepo)
	estadisticasUC := usecase.NewEstadisticasUseCase(estadisticasRepo)
	evaluacionUC := usecase.NewEvaluacionUseCase(evaluacionRepo)
	planUC := usecase.NewPlanUseCase(planRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema CGCAI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UsuarioUC:      usuarioUC,
		DependenciaUC:  dependenciaUC,
		InformeUC:      informeUC,
		HallazgoUC:     hallazgoUC,
		EstadisticasUC: estadisticasUC,
		EvaluacionUC:   evaluacionUC,
		PlanUC:         planUC,
		UsuarioRepo:    usuarioRepo,
		JWTSecret:      cfg.Auth.JWTSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
