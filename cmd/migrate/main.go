// migrate aplica las migraciones SQL embebidas sobre la base configurada.
//
// Uso: go run ./cmd/migrate [up|down|status]   (por defecto: up)
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/tanpopo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tanpopo-api/pkg/config"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "migrate"})

	command := postgres.MigrateUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if cfg.DB.Driver != config.StorageDriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("las migraciones solo aplican a postgres")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, command); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	log.Info().Str("command", command).Msg("migración completada")
}
