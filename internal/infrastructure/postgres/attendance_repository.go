package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
	"github.com/jhoicas/tanpopo-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

const attendanceColumns = `id, user_id, work_date, check_in_time, check_in_latitude, check_in_longitude,
	check_out_time, check_out_latitude, check_out_longitude, notes`

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
// La unicidad diaria la garantiza attendance_records_user_work_date_key.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create inserta el registro de entrada.
func (r *AttendanceRepo) Create(ctx context.Context, rec *entity.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (id, user_id, work_date, check_in_time, check_in_latitude, check_in_longitude, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.UserID, rec.WorkDate, rec.CheckInTime, rec.CheckInLatitude, rec.CheckInLongitude, rec.Notes,
	)
	if err != nil {
		if isUniqueViolation(err, "attendance_records_user_work_date_key") {
			return domain.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("insert attendance record: %w", err)
	}
	return nil
}

// GetByUserAndDate devuelve (nil, nil) si no hay registro.
func (r *AttendanceRepo) GetByUserAndDate(ctx context.Context, userID, workDate string) (*entity.AttendanceRecord, error) {
	if !validID(userID) {
		return nil, nil
	}
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE user_id = $1 AND work_date = $2`
	rec, err := scanAttendance(r.q.QueryRow(ctx, query, userID, workDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance record: %w", err)
	}
	return rec, nil
}

// CheckOut actualiza solo si check_out_time IS NULL; una segunda salida concurrente no afecta filas.
func (r *AttendanceRepo) CheckOut(ctx context.Context, recordID, userID string, data repository.CheckOutData) (*entity.AttendanceRecord, error) {
	query := `
		UPDATE attendance_records
		SET check_out_time = $3, check_out_latitude = $4, check_out_longitude = $5,
		    notes = COALESCE($6, notes)
		WHERE id = $1 AND user_id = $2 AND check_out_time IS NULL
		RETURNING ` + attendanceColumns
	rec, err := scanAttendance(r.q.QueryRow(ctx, query,
		recordID, userID, data.Time,
		decimal.NewFromFloat(data.Latitude), decimal.NewFromFloat(data.Longitude), data.Notes,
	))
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check out attendance record: %w", err)
	}

	// Sin filas: distinguir registro ajeno/inexistente de salida ya registrada.
	var exists bool
	err = r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendance_records WHERE id = $1 AND user_id = $2)`,
		recordID, userID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check attendance record: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyCheckedOut
	}
	return nil, domain.ErrNotFound
}

// ListByUser historial de un usuario, fecha laboral descendente.
func (r *AttendanceRepo) ListByUser(ctx context.Context, userID string, rng repository.DateRange) ([]*entity.AttendanceRecord, error) {
	if !validID(userID) {
		return nil, nil
	}
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE user_id = $1`
	args := []any{userID}
	if rng.Active() {
		query += ` AND work_date BETWEEN $2 AND $3`
		args = append(args, rng.Start, rng.End)
	}
	query += ` ORDER BY work_date DESC, check_in_time DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance by user: %w", err)
	}
	return collect(rows, scanAttendance)
}

// ListAll todos los registros, fecha laboral descendente.
func (r *AttendanceRepo) ListAll(ctx context.Context, rng repository.DateRange) ([]*entity.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records`
	var args []any
	if rng.Active() {
		query += ` WHERE work_date BETWEEN $1 AND $2`
		args = append(args, rng.Start, rng.End)
	}
	query += ` ORDER BY work_date DESC, check_in_time DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return collect(rows, scanAttendance)
}

func scanAttendance(row pgxScanner) (*entity.AttendanceRecord, error) {
	var rec entity.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.WorkDate,
		&rec.CheckInTime, &rec.CheckInLatitude, &rec.CheckInLongitude,
		&rec.CheckOutTime, &rec.CheckOutLatitude, &rec.CheckOutLongitude,
		&rec.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
