// seed_admin crea la primera cuenta de administrador.
//
// Uso: go run ./cmd/seed_admin -username admin -password 'secreto123' -name 'Directora'
// Sin flags toma SEED_ADMIN_USERNAME, SEED_ADMIN_PASSWORD y SEED_ADMIN_NAME.
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tanpopo-api/pkg/config"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed_admin"})

	username := flag.String("username", cfg.Seed.AdminUsername, "nombre de usuario")
	password := flag.String("password", cfg.Seed.AdminPassword, "password (mínimo 8 caracteres)")
	name := flag.String("name", cfg.Seed.AdminName, "nombre completo")
	flag.Parse()

	in := dto.CreateUserRequest{
		Username: *username,
		Password: *password,
		Role:     entity.RoleAdmin,
		FullName: *name,
	}
	if err := validation.New().Struct(in); err != nil {
		log.Fatal().Err(err).Msg("datos del admin inválidos")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	user, err := usecase.NewUserUseCase(postgres.NewUserRepository(pool)).Create(ctx, in, "")
	if errors.Is(err, domain.ErrUsernameTaken) {
		log.Warn().Str("username", in.Username).Msg("el usuario ya existe; nada que hacer")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("id", user.ID).Str("username", user.Username).Msg("admin creado")
}
