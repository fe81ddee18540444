package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

// DateRange filtro opcional por fecha laboral (inclusive). Se aplica solo si ambos extremos vienen.
type DateRange struct {
	Start string // AAAA-MM-DD
	End   string // AAAA-MM-DD
}

// Active indica si el rango debe aplicarse.
func (r DateRange) Active() bool {
	return r.Start != "" && r.End != ""
}

// CheckOutData datos de salida aplicados a un registro abierto.
type CheckOutData struct {
	Time      time.Time
	Latitude  float64
	Longitude float64
	Notes     *string // nil = conservar las notas de la entrada
}

// AttendanceRepository define el puerto de persistencia para AttendanceRecord.
type AttendanceRepository interface {
	// Create inserta el registro de entrada. Devuelve domain.ErrAlreadyCheckedIn si ya existe
	// un registro para (UserID, WorkDate).
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	// GetByUserAndDate devuelve (nil, nil) si no existe.
	GetByUserAndDate(ctx context.Context, userID, workDate string) (*entity.AttendanceRecord, error)
	// CheckOut completa un registro sin salida. Devuelve domain.ErrAlreadyCheckedOut si ya
	// tenía salida y domain.ErrNotFound si el registro no pertenece al usuario.
	CheckOut(ctx context.Context, recordID, userID string, data CheckOutData) (*entity.AttendanceRecord, error)
	// ListByUser ordenado por fecha laboral descendente.
	ListByUser(ctx context.Context, userID string, rng DateRange) ([]*entity.AttendanceRecord, error)
	// ListAll ordenado por fecha laboral descendente.
	ListAll(ctx context.Context, rng DateRange) ([]*entity.AttendanceRecord, error)
}
