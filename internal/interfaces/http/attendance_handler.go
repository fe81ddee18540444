package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tanpopo-api/internal/application/attendance"
	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/pkg/logger"
	"github.com/jhoicas/tanpopo-api/pkg/validation"
)

// AttendanceHandler entrada/salida, historial, estadísticas y vistas de gestión.
type AttendanceHandler struct {
	uc       *attendance.AttendanceUseCase
	validate *validation.Validator
	log      *logger.Logger
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *attendance.AttendanceUseCase, v *validation.Validator, log *logger.Logger) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, validate: v, log: log}
}

// CheckIn godoc
// @Summary      Registrar entrada (dentro de la geocerca de la escuela)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckInRequest  true  "latitude, longitude, notes"
// @Success      201   {object}  dto.Response{record=dto.AttendanceRecordResponse}
// @Failure      400   {object}  dto.ErrorResponse  "VALIDATION u OUTSIDE_GEOFENCE"
// @Failure      409   {object}  dto.ErrorResponse  "ALREADY_CHECKED_IN"
// @Router       /api/attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	record, err := h.uc.CheckIn(c.UserContext(), caller(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Response{
		Success: true,
		Message: "Entrada registrada",
		Record:  record,
	})
}

// CheckOut godoc
// @Summary      Registrar salida
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckOutRequest  true  "latitude, longitude, notes"
// @Success      200   {object}  dto.Response{record=dto.AttendanceRecordResponse}
// @Failure      400   {object}  dto.ErrorResponse  "VALIDATION u OUTSIDE_GEOFENCE"
// @Failure      409   {object}  dto.ErrorResponse  "NOT_CHECKED_IN o ALREADY_CHECKED_OUT"
// @Router       /api/attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	var in dto.CheckOutRequest
	if ok, err := bind(c, h.validate, &in); !ok {
		return err
	}
	record, err := h.uc.CheckOut(c.UserContext(), caller(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.Response{
		Success: true,
		Message: "Salida registrada",
		Record:  record,
	})
}

// Today godoc
// @Summary      Registro de hoy (data null si no hay)
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.TodayResponse
// @Router       /api/attendance/today [get]
func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	record, err := h.uc.Today(c.UserContext(), caller(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.TodayResponse{Success: true, Data: record})
}

// Records godoc
// @Summary      Historial propio
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "AAAA-MM-DD"
// @Param        endDate    query  string  false  "AAAA-MM-DD"
// @Success      200  {object}  dto.Response{data=[]dto.AttendanceRecordResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/attendance/records [get]
func (h *AttendanceHandler) Records(c *fiber.Ctx) error {
	q, ok, err := h.rangeQuery(c)
	if !ok {
		return err
	}
	records, err := h.uc.Records(c.UserContext(), caller(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", records))
}

// Stats godoc
// @Summary      Estadísticas de asistencia según el rol
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query  string  false  "usuario objetivo (admin, manager)"
// @Success      200  {object}  dto.Response{data=dto.AttendanceStatsResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/attendance/stats [get]
func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, "parámetros inválidos"))
	}
	stats, err := h.uc.Stats(c.UserContext(), caller(c), q.UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", stats))
}

// ListAll godoc
// @Summary      Registros del personal (manager ve los propios y los de staff)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        startDate  query  string  false  "AAAA-MM-DD"
// @Param        endDate    query  string  false  "AAAA-MM-DD"
// @Success      200  {object}  dto.Response{data=[]dto.AttendanceRecordResponse}
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/attendance [get]
func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	q, ok, err := h.rangeQuery(c)
	if !ok {
		return err
	}
	records, err := h.uc.ListForManagement(c.UserContext(), caller(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK("", records))
}

// Report godoc
// @Summary      Reporte PDF de asistencia
// @Tags         admin
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        startDate  query  string  false  "AAAA-MM-DD"
// @Param        endDate    query  string  false  "AAAA-MM-DD"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/attendance/report [get]
func (h *AttendanceHandler) Report(c *fiber.Ctx) error {
	q, ok, err := h.rangeQuery(c)
	if !ok {
		return err
	}
	pdf, err := h.uc.Report(c.UserContext(), caller(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportName(q, "pdf")))
	return c.Send(pdf)
}

// Export godoc
// @Summary      Planilla XLSX de asistencia
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        startDate  query  string  false  "AAAA-MM-DD"
// @Param        endDate    query  string  false  "AAAA-MM-DD"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/attendance/export [get]
func (h *AttendanceHandler) Export(c *fiber.Ctx) error {
	q, ok, err := h.rangeQuery(c)
	if !ok {
		return err
	}
	sheet, err := h.uc.Export(c.UserContext(), caller(c), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportName(q, "xlsx")))
	return c.Send(sheet)
}

func (h *AttendanceHandler) rangeQuery(c *fiber.Ctx) (dto.DateRangeQuery, bool, error) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return q, false, c.Status(fiber.StatusBadRequest).JSON(dto.Fail(CodeValidation, "parámetros inválidos"))
	}
	ok, err := validate(c, h.validate, &q)
	return q, ok, err
}

// exportName nombre de archivo con el período cuando ambos extremos están presentes.
func exportName(q dto.DateRangeQuery, ext string) string {
	if q.StartDate != "" && q.EndDate != "" {
		return fmt.Sprintf("asistencia_%s_%s.%s", q.StartDate, q.EndDate, ext)
	}
	return "asistencia." + ext
}
