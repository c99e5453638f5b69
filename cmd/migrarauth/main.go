// Comando de operación: migra por lotes los usuarios legados al proveedor
// de identidad gestionado. Pensado para correrse una sola vez por ambiente,
// es seguro repetirlo: los usuarios ya migrados se reportan como omitidos.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JuanF88/sistema-CGCAI-sub001/internal/application/auth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/infrastructure/goauth"
	"github.com/JuanF88/sistema-CGCAI-sub001/internal/infrastructure/postgres"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/config"
	"github.com/JuanF88/sistema-CGCAI-sub001/pkg/logger"
)

func main() {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrarauth",
		Short: "Migra los usuarios legados al proveedor de identidad",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if cfg.Auth.ServiceKey == "" {
				return fmt.Errorf("AUTH_SERVICE_KEY es requerida para la migración")
			}

			log := logger.New(logger.Config{
				Env:   cfg.App.Env,
				Level: "info",
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			usuarioRepo := postgres.NewUsuarioRepository(pool)
			txRunner := postgres.NewTxRunner(pool)
			provider := goauth.NewClient(cfg.Auth.URL, cfg.Auth.AnonKey, cfg.Auth.ServiceKey)
			authUC := auth.NewAuthUseCase(usuarioRepo, provider, txRunner, log)

			res, err := authUC.MigrarUsuarios(ctx)
			if err != nil {
				return fmt.Errorf("migración por lotes: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}

			log.Info().
				Int("exitosos", len(res.Exitosos)).
				Int("omitidos", len(res.Omitidos)).
				Int("errores", len(res.Errores)).
				Msg("migración finalizada")

			if len(res.Errores) > 0 {
				return fmt.Errorf("%d usuarios con error, revisar salida", len(res.Errores))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "tiempo máximo de ejecución")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
