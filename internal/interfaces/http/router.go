package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tanpopo-api/internal/application/attendance"
	"github.com/jhoicas/tanpopo-api/internal/application/auth"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	AttendanceUC *attendance.AttendanceUseCase
	UserUC       *usecase.UserUseCase
	HomepageUC   *usecase.HomepageUseCase
	LeadUC       *usecase.LeadUseCase
	LoginLimiter *LoginRateLimiter
	Validator    *validation.Validator
	Logger       *logger.Logger
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	limiter := deps.LoginLimiter
	if limiter == nil {
		limiter = NewLoginRateLimiter(0, 0)
	}

	authHandler := NewAuthHandler(deps.AuthUC, v, log)
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC, v, log)
	userHandler := NewUserHandler(deps.UserUC, v, log)
	homepageHandler := NewHomepageHandler(deps.HomepageUC, v, log)
	leadHandler := NewLeadHandler(deps.LeadUC, v, log)

	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret, deps.AuthUC, log)

	// Público
	api.Post("/auth/login", limiter.Handler(), authHandler.Login)
	api.Get("/homepage", homepageHandler.List)
	api.Post("/registration", leadHandler.CreateRegistration)
	api.Post("/contact", leadHandler.CreateContactMessage)

	// Sesión
	api.Post("/auth/logout", requireAuth, authHandler.Logout)
	api.Get("/auth/me", requireAuth, authHandler.Me)

	// Asistencia (cualquier rol autenticado)
	att := api.Group("/attendance", requireAuth,
		RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStaff))
	att.Post("/checkin", attendanceHandler.CheckIn)
	att.Post("/checkout", attendanceHandler.CheckOut)
	att.Get("/today", attendanceHandler.Today)
	att.Get("/records", attendanceHandler.Records)
	att.Get("/stats", attendanceHandler.Stats)

	// Gestión (manager y admin)
	mgmt := api.Group("/admin", requireAuth)
	managers := RequireRole(entity.RoleAdmin, entity.RoleManager)
	admins := RequireRole(entity.RoleAdmin)

	mgmt.Get("/attendance", managers, attendanceHandler.ListAll)
	mgmt.Get("/attendance/report", managers, attendanceHandler.Report)
	mgmt.Get("/attendance/export", managers, attendanceHandler.Export)
	mgmt.Get("/registrations", managers, leadHandler.ListRegistrations)
	mgmt.Get("/contacts", managers, leadHandler.ListContactMessages)

	// Solo admin
	mgmt.Post("/users", admins, userHandler.Create)
	mgmt.Get("/users", admins, userHandler.List)
	mgmt.Put("/users/:id", admins, userHandler.Update)
	mgmt.Delete("/users/:id", admins, userHandler.Delete)

	mgmt.Post("/homepage", admins, homepageHandler.Upsert)
	mgmt.Put("/homepage", admins, homepageHandler.BulkUpsert)
	mgmt.Delete("/homepage/:id", admins, homepageHandler.Delete)
}
