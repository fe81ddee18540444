package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceRecord registro diario de asistencia de un usuario.
// Invariante: como máximo un registro por (UserID, WorkDate).
type AttendanceRecord struct {
	ID                string
	UserID            string
	WorkDate          string // AAAA-MM-DD en la zona horaria de la escuela
	CheckInTime       time.Time
	CheckInLatitude   decimal.Decimal
	CheckInLongitude  decimal.Decimal
	CheckOutTime      *time.Time
	CheckOutLatitude  decimal.NullDecimal
	CheckOutLongitude decimal.NullDecimal
	Notes             *string
}

// CheckedOut indica si el registro ya tiene hora de salida.
func (r *AttendanceRecord) CheckedOut() bool {
	return r.CheckOutTime != nil
}

// WorkedHours horas trabajadas; 0 si aún no hay salida.
func (r *AttendanceRecord) WorkedHours() float64 {
	if r.CheckOutTime == nil {
		return 0
	}
	return r.CheckOutTime.Sub(r.CheckInTime).Hours()
}
