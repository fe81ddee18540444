package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tanpopo-api/internal/application/dto"
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/attendance"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
	"github.com/jhoicas/tanpopo-api/pkg/geo"
	"github.com/jhoicas/tanpopo-api/pkg/sanitize"
)

// Config parámetros del control de asistencia.
type Config struct {
	Geofence   attendance.Geofence
	Location   *time.Location // zona horaria de la escuela para la fecha laboral
	SchoolName string
}

// AttendanceUseCase entrada/salida con geocerca, historial, estadísticas y reportes.
type AttendanceUseCase struct {
	records repository.AttendanceRepository
	users   repository.UserRepository
	report  ReportGenerator
	sheet   SpreadsheetGenerator
	cfg     Config
	now     func() time.Time
}

// NewAttendanceUseCase construye el caso de uso. report puede ser nil si no se exponen reportes.
func NewAttendanceUseCase(
	records repository.AttendanceRepository,
	users repository.UserRepository,
	report ReportGenerator,
	cfg Config,
) *AttendanceUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &AttendanceUseCase{
		records: records,
		users:   users,
		report:  report,
		cfg:     cfg,
		now:     time.Now,
	}
}

// WithSpreadsheet habilita Export.
func (uc *AttendanceUseCase) WithSpreadsheet(sheet SpreadsheetGenerator) *AttendanceUseCase {
	uc.sheet = sheet
	return uc
}

// WithClock reemplaza el reloj (tests).
func (uc *AttendanceUseCase) WithClock(now func() time.Time) *AttendanceUseCase {
	uc.now = now
	return uc
}

// CheckIn registra la entrada del día. Orden de validación: coordenadas, geocerca, unicidad diaria.
func (uc *AttendanceUseCase) CheckIn(ctx context.Context, caller dto.Caller, in dto.CheckInRequest) (*dto.AttendanceRecordResponse, error) {
	point, err := toPoint(in.Latitude, in.Longitude)
	if err != nil {
		return nil, err
	}
	if _, err := uc.cfg.Geofence.Check(point); err != nil {
		return nil, err
	}

	now := uc.now()
	workDate := attendance.WorkDate(now, uc.cfg.Location)
	existing, err := uc.records.GetByUserAndDate(ctx, caller.UserID, workDate)
	if err != nil {
		return nil, err
	}
	if err := attendance.CanCheckIn(existing); err != nil {
		return nil, err
	}

	record := &entity.AttendanceRecord{
		ID:               uuid.New().String(),
		UserID:           caller.UserID,
		WorkDate:         workDate,
		CheckInTime:      now,
		CheckInLatitude:  decimal.NewFromFloat(point.Latitude),
		CheckInLongitude: decimal.NewFromFloat(point.Longitude),
		Notes:            sanitize.OptionalText(in.Notes),
	}
	// Una entrada concurrente que gane la carrera hace fallar Create con ErrAlreadyCheckedIn.
	if err := uc.records.Create(ctx, record); err != nil {
		return nil, err
	}
	return toRecordResponse(record, nil), nil
}

// CheckOut registra la salida del día sobre el registro abierto.
func (uc *AttendanceUseCase) CheckOut(ctx context.Context, caller dto.Caller, in dto.CheckOutRequest) (*dto.AttendanceRecordResponse, error) {
	point, err := toPoint(in.Latitude, in.Longitude)
	if err != nil {
		return nil, err
	}
	if _, err := uc.cfg.Geofence.Check(point); err != nil {
		return nil, err
	}

	now := uc.now()
	workDate := attendance.WorkDate(now, uc.cfg.Location)
	existing, err := uc.records.GetByUserAndDate(ctx, caller.UserID, workDate)
	if err != nil {
		return nil, err
	}
	if err := attendance.CanCheckOut(existing); err != nil {
		return nil, err
	}

	updated, err := uc.records.CheckOut(ctx, existing.ID, caller.UserID, repository.CheckOutData{
		Time:      now,
		Latitude:  point.Latitude,
		Longitude: point.Longitude,
		Notes:     sanitize.OptionalText(in.Notes),
	})
	if err != nil {
		return nil, err
	}
	return toRecordResponse(updated, nil), nil
}

// Today devuelve el registro de la fecha laboral actual o nil.
func (uc *AttendanceUseCase) Today(ctx context.Context, caller dto.Caller) (*dto.AttendanceRecordResponse, error) {
	record, err := uc.records.GetByUserAndDate(ctx, caller.UserID, attendance.WorkDate(uc.now(), uc.cfg.Location))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return toRecordResponse(record, nil), nil
}

// Records historial propio, fecha laboral descendente.
func (uc *AttendanceUseCase) Records(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) ([]dto.AttendanceRecordResponse, error) {
	records, err := uc.records.ListByUser(ctx, caller.UserID, toRange(q))
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toRecordResponse(r, nil))
	}
	return out, nil
}

// Stats estadísticas con alcance según el rol del solicitante:
//   - admin: el usuario pedido, o todos los registros si no se indica;
//   - manager: él mismo, o un usuario existente que no sea admin;
//   - staff: siempre él mismo.
func (uc *AttendanceUseCase) Stats(ctx context.Context, caller dto.Caller, targetUserID string) (*dto.AttendanceStatsResponse, error) {
	target, err := uc.statsTarget(ctx, caller, targetUserID)
	if err != nil {
		return nil, err
	}

	var records []*entity.AttendanceRecord
	if target == "" {
		records, err = uc.records.ListAll(ctx, repository.DateRange{})
	} else {
		records, err = uc.records.ListByUser(ctx, target, repository.DateRange{})
	}
	if err != nil {
		return nil, err
	}

	s := attendance.ComputeStats(records)
	return &dto.AttendanceStatsResponse{
		UserID:       target,
		TotalDays:    s.TotalDays,
		PresentDays:  s.PresentDays,
		AverageHours: roundHours(s.AverageHours),
	}, nil
}

// statsTarget resuelve el usuario cuyas estadísticas se calculan; "" = global (solo admin).
func (uc *AttendanceUseCase) statsTarget(ctx context.Context, caller dto.Caller, targetUserID string) (string, error) {
	switch caller.Role {
	case entity.RoleAdmin:
		return targetUserID, nil
	case entity.RoleManager:
		if targetUserID == "" || targetUserID == caller.UserID {
			return caller.UserID, nil
		}
		target, err := uc.users.GetByID(ctx, targetUserID)
		if err != nil {
			return "", err
		}
		if target == nil || target.Role == entity.RoleAdmin {
			return "", domain.ErrForbidden
		}
		return target.ID, nil
	case entity.RoleStaff:
		return caller.UserID, nil
	default:
		return "", domain.ErrForbidden
	}
}

// ListForManagement registros de todo el personal (admin) o propios + staff (manager),
// con el nombre de cada usuario.
func (uc *AttendanceUseCase) ListForManagement(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) ([]dto.AttendanceRecordResponse, error) {
	records, users, err := uc.managedRecords(ctx, caller, q)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttendanceRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toRecordResponse(r, users[r.UserID]))
	}
	return out, nil
}

// Report genera el reporte PDF del mismo conjunto que ListForManagement.
func (uc *AttendanceUseCase) Report(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("attendance: generador de reportes no configurado")
	}
	data, err := uc.reportData(ctx, caller, q)
	if err != nil {
		return nil, err
	}
	return uc.report.AttendanceReport(data)
}

// Export mismo contenido que Report como planilla XLSX.
func (uc *AttendanceUseCase) Export(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) ([]byte, error) {
	if uc.sheet == nil {
		return nil, fmt.Errorf("attendance: generador de planillas no configurado")
	}
	data, err := uc.reportData(ctx, caller, q)
	if err != nil {
		return nil, err
	}
	return uc.sheet.AttendanceSheet(data)
}

func (uc *AttendanceUseCase) reportData(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) (ReportData, error) {
	records, users, err := uc.managedRecords(ctx, caller, q)
	if err != nil {
		return ReportData{}, err
	}

	data := ReportData{
		SchoolName:  uc.cfg.SchoolName,
		GeneratedBy: caller.Username,
		GeneratedAt: uc.now().In(uc.cfg.Location),
		Rows:        make([]ReportRow, 0, len(records)),
		Stats:       attendance.ComputeStats(records),
	}
	if rng := toRange(q); rng.Active() {
		data.StartDate, data.EndDate = rng.Start, rng.End
	}
	for _, r := range records {
		row := ReportRow{
			Username:    r.UserID,
			WorkDate:    r.WorkDate,
			CheckInTime: r.CheckInTime.In(uc.cfg.Location),
			Hours:       roundHours(r.WorkedHours()),
		}
		if u := users[r.UserID]; u != nil {
			row.FullName, row.Username = u.FullName, u.Username
		}
		if r.CheckOutTime != nil {
			out := r.CheckOutTime.In(uc.cfg.Location)
			row.CheckOutTime = &out
		}
		if r.Notes != nil {
			row.Notes = *r.Notes
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}

// managedRecords aplica el alcance de gestión y devuelve los usuarios indexados por ID.
func (uc *AttendanceUseCase) managedRecords(ctx context.Context, caller dto.Caller, q dto.DateRangeQuery) ([]*entity.AttendanceRecord, map[string]*entity.User, error) {
	if caller.Role != entity.RoleAdmin && caller.Role != entity.RoleManager {
		return nil, nil, domain.ErrForbidden
	}
	records, err := uc.records.ListAll(ctx, toRange(q))
	if err != nil {
		return nil, nil, err
	}
	users, err := uc.users.ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	// Los registros de usuarios desactivados conservan nombre y rol.
	for _, r := range records {
		if _, ok := byID[r.UserID]; ok {
			continue
		}
		u, err := uc.users.GetByID(ctx, r.UserID)
		if err != nil {
			return nil, nil, err
		}
		byID[r.UserID] = u
	}
	if caller.Role == entity.RoleAdmin {
		return records, byID, nil
	}

	visible := records[:0]
	for _, r := range records {
		if r.UserID == caller.UserID {
			visible = append(visible, r)
			continue
		}
		if u := byID[r.UserID]; u != nil && u.Role == entity.RoleStaff {
			visible = append(visible, r)
		}
	}
	return visible, byID, nil
}

func toPoint(lat, lng *float64) (geo.Point, error) {
	if lat == nil || lng == nil {
		return geo.Point{}, fmt.Errorf("%w: latitud y longitud son obligatorias", domain.ErrInvalidInput)
	}
	p := geo.Point{Latitude: *lat, Longitude: *lng}
	if err := p.Validate(); err != nil {
		return geo.Point{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return p, nil
}

func toRange(q dto.DateRangeQuery) repository.DateRange {
	return repository.DateRange{Start: q.StartDate, End: q.EndDate}
}

// roundHours redondea a 2 decimales.
func roundHours(h float64) float64 {
	return decimal.NewFromFloat(h).Round(2).InexactFloat64()
}

func toRecordResponse(r *entity.AttendanceRecord, u *entity.User) *dto.AttendanceRecordResponse {
	if r == nil {
		return nil
	}
	res := &dto.AttendanceRecordResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		WorkDate:         r.WorkDate,
		CheckInTime:      r.CheckInTime,
		CheckInLatitude:  r.CheckInLatitude.InexactFloat64(),
		CheckInLongitude: r.CheckInLongitude.InexactFloat64(),
		CheckOutTime:     r.CheckOutTime,
		Notes:            r.Notes,
		WorkedHours:      roundHours(r.WorkedHours()),
	}
	if r.CheckOutLatitude.Valid {
		lat := r.CheckOutLatitude.Decimal.InexactFloat64()
		res.CheckOutLatitude = &lat
	}
	if r.CheckOutLongitude.Valid {
		lng := r.CheckOutLongitude.Decimal.InexactFloat64()
		res.CheckOutLongitude = &lng
	}
	if u != nil {
		res.Username = u.Username
		res.FullName = u.FullName
	}
	return res
}
