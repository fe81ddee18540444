package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tanpopo-api/internal/application/attendance"
	"github.com/jhoicas/tanpopo-api/internal/application/auth"
	"github.com/jhoicas/tanpopo-api/internal/application/usecase"
	domattendance "github.com/jhoicas/tanpopo-api/internal/domain/attendance"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/tanpopo-api/internal/interfaces/http"
	"github.com/jhoicas/tanpopo-api/pkg/geo"
	pkgjwt "github.com/jhoicas/tanpopo-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el almacenamiento en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "tanpopo-api-test"
	testExpMin    = 60

	schoolLat = 10.7769
	schoolLng = 106.7009
)

type envelope struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Record  map[string]any    `json:"record"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testServer struct {
	app   *fiber.App
	users *memory.UserRepo
}

// seedUsers crea u-admin, u-mgr y u-staff (password "secreto123").
func seedUsers(t *testing.T, users *memory.UserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)
	for _, u := range []entity.User{
		{ID: "u-admin", Username: "admin", Role: entity.RoleAdmin, FullName: "Admin"},
		{ID: "u-mgr", Username: "mgr", Role: entity.RoleManager, FullName: "Manager"},
		{ID: "u-staff", Username: "lan", Role: entity.RoleStaff, FullName: "Cô Lan"},
	} {
		u := u
		u.PasswordHash = string(hash)
		u.IsActive = true
		u.CreatedAt = time.Now()
		require.NoError(t, users.Create(context.Background(), &u))
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := memory.Open()
	users := memory.NewUserRepository(db)
	seedUsers(t, users)

	attendanceUC := attendance.NewAttendanceUseCase(
		memory.NewAttendanceRepository(db),
		users,
		nil,
		attendance.Config{
			Geofence: domattendance.Geofence{
				Center: geo.Point{Latitude: schoolLat, Longitude: schoolLng},
				Radius: 200,
			},
			SchoolName: "Tanpopo Academy",
		},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		AttendanceUC: attendanceUC,
		UserUC:       usecase.NewUserUseCase(users),
		HomepageUC:   usecase.NewHomepageUseCase(memory.NewHomepageContentRepository(db), memory.NewTxRunner(db)),
		LeadUC:       usecase.NewLeadUseCase(memory.NewRegistrationRepository(db), memory.NewContactMessageRepository(db)),
		LoginLimiter: apphttp.NewLoginRateLimiter(1, 3),
		JWTSecret:    testJWTSecret,
	})
	return &testServer{app: app, users: users}
}

func bearer(t *testing.T, userID, username, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, username, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (s *testServer) do(t *testing.T, method, path, auth string, body any) (*http.Response, envelope) {
	t.Helper()
	return doJSON(t, s.app, method, path, auth, body)
}

// doJSON envía body como JSON y decodifica la respuesta si es JSON.
func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckIn_EnLaEscuela201(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng, "notes": "buen día"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)
	require.NotNil(t, env.Record)
	assert.Equal(t, "u-staff", env.Record["userId"])
	assert.Nil(t, env.Record["checkOutTime"])

	// Segunda entrada el mismo día
	resp, env = s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeAlreadyCheckedIn, env.Code)
	assert.False(t, env.Success)
}

func TestCheckIn_CincoKmRechazado(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": 10.8219, "longitude": schoolLng})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeOutsideGeofence, env.Code)
	assert.Contains(t, env.Message, "5004m")
}

func TestCheckIn_SinLatitud400ConErroresPorCampo(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"longitude": schoolLng})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.Code)
	assert.Contains(t, env.Errors, "latitude")
	assert.NotContains(t, env.Errors, "longitude")
}

func TestCheckIn_SinToken401(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(t, http.MethodPost, "/api/attendance/checkin", "",
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCheckIn_UsuarioDesactivadoPierdeAcceso(t *testing.T) {
	s := newTestServer(t)
	admin := bearer(t, "u-admin", "admin", entity.RoleAdmin)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, _ := s.do(t, http.MethodDelete, "/api/admin/users/u-staff", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "el token emitido antes de la baja ya no sirve")
	assert.Equal(t, apphttp.CodeUnauthorized, env.Code)
}

func TestAdminAttendance_ManagerDegradadoPierdeAcceso(t *testing.T) {
	s := newTestServer(t)
	admin := bearer(t, "u-admin", "admin", entity.RoleAdmin)
	mgr := bearer(t, "u-mgr", "mgr", entity.RoleManager)

	resp, _ := s.do(t, http.MethodGet, "/api/admin/attendance", mgr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodPut, "/api/admin/users/u-mgr", admin, map[string]any{"role": entity.RoleStaff})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = s.do(t, http.MethodGet, "/api/admin/attendance", mgr, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el rol sale del usuario almacenado")
}

func TestCheckOut_SinEntrada409(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodPost, "/api/attendance/checkout", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotCheckedIn, env.Code)
}

func TestToday_SinRegistroDataNull(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodGet, "/api/attendance/today", staff, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))

	s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})
	_, env = s.do(t, http.MethodGet, "/api/attendance/today", staff, nil)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "u-staff", rec["userId"])
}

func TestStats_StaffSinDiasPresentes(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)
	s.do(t, http.MethodPost, "/api/attendance/checkin", staff,
		map[string]any{"latitude": schoolLat, "longitude": schoolLng})

	// El parámetro userId se ignora para staff.
	resp, env := s.do(t, http.MethodGet, "/api/attendance/stats?userId=u-admin", staff, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1.0, stats["totalDays"])
	assert.Equal(t, 0.0, stats["presentDays"])
	assert.Equal(t, 0.0, stats["averageHours"])
}

func TestStats_ManagerNoVeAdmin403(t *testing.T) {
	s := newTestServer(t)
	mgr := bearer(t, "u-mgr", "mgr", entity.RoleManager)

	resp, env := s.do(t, http.MethodGet, "/api/attendance/stats?userId=u-admin", mgr, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, apphttp.CodeForbidden, env.Code)

	resp, _ = s.do(t, http.MethodGet, "/api/attendance/stats?userId=u-staff", mgr, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminAttendance_StaffBloqueado(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, _ := s.do(t, http.MethodGet, "/api/admin/attendance", staff, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRecords_FechaInvalida400(t *testing.T) {
	s := newTestServer(t)
	staff := bearer(t, "u-staff", "lan", entity.RoleStaff)

	resp, env := s.do(t, http.MethodGet, "/api/attendance/records?startDate=15-10-2026&endDate=2026-10-31", staff, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Errors, "startDate")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenUtilizable(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"LAN","password":"secreto123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)

	meResp, env := s.do(t, http.MethodGet, "/api/auth/me", "Bearer "+body.Token, nil)
	assert.Equal(t, http.StatusOK, meResp.StatusCode)
	var me map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "lan", me["username"])
	assert.NotContains(t, me, "passwordHash")
}

func TestLogin_CredencialesInvalidas401YLimitePorIP(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"username": "lan", "password": "incorrecto"}

	// El limitador admite 3 intentos seguidos.
	for i := 0; i < 3; i++ {
		resp, env := s.do(t, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, apphttp.CodeUnauthorized, env.Code)
	}
	resp, env := s.do(t, http.MethodPost, "/api/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "TOO_MANY_ATTEMPTS", env.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formularios públicos y gestión
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistration_PublicaYListadaParaManager(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/registration", "",
		map[string]any{"parentName": "<b>Chị Hoa</b>", "phone": "0901 234 567", "visitTime": "9h sáng"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	resp, env = s.do(t, http.MethodGet, "/api/admin/registrations", bearer(t, "u-mgr", "mgr", entity.RoleManager), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Chị Hoa", items[0]["parentName"])
}

func TestContact_EmailInvalido400(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(t, http.MethodPost, "/api/contact", "",
		map[string]any{"name": "Hoa", "email": "no-es-email", "message": "hola"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, env.Code)
	assert.Contains(t, env.Errors, "email")
}

func TestAdminUsers_NoPuedeEliminarseASiMismo(t *testing.T) {
	s := newTestServer(t)
	admin := bearer(t, "u-admin", "admin", entity.RoleAdmin)

	resp, _ := s.do(t, http.MethodDelete, "/api/admin/users/u-admin", admin, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/admin/users/u-staff", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	u, err := s.users.GetByID(context.Background(), "u-staff")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}

func TestHomepage_AdminPublicaYEsVisible(t *testing.T) {
	s := newTestServer(t)
	admin := bearer(t, "u-admin", "admin", entity.RoleAdmin)

	resp, _ := s.do(t, http.MethodPost, "/api/admin/homepage", admin,
		map[string]any{"section": "hero", "contentKey": "title", "contentValue": "Tanpopo"})
	assert.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)

	resp, env := s.do(t, http.MethodGet, "/api/homepage?section=hero", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Tanpopo", items[0]["contentValue"])

	resp, _ = s.do(t, http.MethodPost, "/api/admin/homepage", bearer(t, "u-mgr", "mgr", entity.RoleManager),
		map[string]any{"section": "hero", "contentKey": "title", "contentValue": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
