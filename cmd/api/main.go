package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tanpopo-api/internal/application/attendance"
	"github.com/jhoicas/tanpopo-api/internal/application/auth"
	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	domattendance "github.com/jhoicas/tanpopo-api/internal/domain/attendance"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tanpopo-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/tanpopo-api/internal/interfaces/http"
	"github.com/jhoicas/tanpopo-api/pkg/config"
	"github.com/jhoicas/tanpopo-api/pkg/geo"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// storage repositorios del driver configurado.
type storage struct {
	users         repository.UserRepository
	attendance    repository.AttendanceRepository
	homepage      repository.HomepageContentRepository
	registrations repository.RegistrationRepository
	contacts      repository.ContactMessageRepository
	txRunner      usecase.HomepageTxRunner
	close         func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	loc, err := time.LoadLocation(cfg.School.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.School.Timezone).Msg("zona horaria de la escuela")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.close()

	userUC := usecase.NewUserUseCase(store.users)
	if cfg.DB.Driver == config.StorageDriverMemory {
		seedMemoryAdmin(ctx, userUC, cfg.Seed, log)
	}

	attendanceUC := attendance.NewAttendanceUseCase(
		store.attendance, store.users, infrapdf.NewMarotoReportGenerator(),
		attendance.Config{
			Geofence: domattendance.Geofence{
				Center: geo.Point{Latitude: cfg.School.Latitude, Longitude: cfg.School.Longitude},
				Radius: cfg.School.RadiusMeters,
			},
			Location:   loc,
			SchoolName: cfg.School.Name,
		},
	).WithSpreadsheet(xlsx.NewExcelizeSheetGenerator())
	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	homepageUC := usecase.NewHomepageUseCase(store.homepage, store.txRunner)
	leadUC := usecase.NewLeadUseCase(store.registrations, store.contacts)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tanpopo Academy API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		AttendanceUC: attendanceUC,
		UserUC:       userUC,
		HomepageUC:   homepageUC,
		LeadUC:       leadUC,
		LoginLimiter: httpRouter.NewLoginRateLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst),
		Validator:    validation.New(),
		Logger:       log.Component("api"),
		JWTSecret:    cfg.JWT.Secret,
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

// openStorage construye los repositorios según STORAGE_DRIVER.
func openStorage(ctx context.Context, cfg config.DBConfig) (*storage, error) {
	if cfg.Driver == config.StorageDriverMemory {
		db := memory.Open()
		return &storage{
			users:         memory.NewUserRepository(db),
			attendance:    memory.NewAttendanceRepository(db),
			homepage:      memory.NewHomepageContentRepository(db),
			registrations: memory.NewRegistrationRepository(db),
			contacts:      memory.NewContactMessageRepository(db),
			txRunner:      memory.NewTxRunner(db),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &storage{
		users:         postgres.NewUserRepository(pool),
		attendance:    postgres.NewAttendanceRepository(pool),
		homepage:      postgres.NewHomepageContentRepository(pool),
		registrations: postgres.NewRegistrationRepository(pool),
		contacts:      postgres.NewContactMessageRepository(pool),
		txRunner:      postgres.NewTxRunner(pool),
		close:         pool.Close,
	}, nil
}

// seedMemoryAdmin crea la cuenta admin inicial; sin ella no hay forma de entrar con la base vacía.
func seedMemoryAdmin(ctx context.Context, uc *usecase.UserUseCase, seed config.SeedConfig, log *logger.Logger) {
	if seed.AdminUsername == "" || seed.AdminPassword == "" {
		log.Warn().Msg("STORAGE_DRIVER=memory sin SEED_ADMIN_USERNAME/SEED_ADMIN_PASSWORD: no habrá usuarios")
		return
	}
	_, err := uc.Create(ctx, dto.CreateUserRequest{
		Username: seed.AdminUsername,
		Password: seed.AdminPassword,
		Role:     entity.RoleAdmin,
		FullName: seed.AdminName,
	}, "")
	if err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
		log.Fatal().Err(err).Msg("crear admin inicial")
	}
	log.Info().Str("username", seed.AdminUsername).Msg("admin inicial creado en memoria")
}
