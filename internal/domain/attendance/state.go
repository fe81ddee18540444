package attendance

import (
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/internal/domain/entity"
)

// Transiciones por (usuario, fecha laboral): sin registro → entrada → salida. Son terminales.

// CanCheckIn today es el registro del día (nil si no existe).
func CanCheckIn(today *entity.AttendanceRecord) error {
	if today != nil {
		return domain.ErrAlreadyCheckedIn
	}
	return nil
}

// CanCheckOut exige un registro de entrada sin salida.
func CanCheckOut(today *entity.AttendanceRecord) error {
	if today == nil {
		return domain.ErrNotCheckedIn
	}
	if today.CheckedOut() {
		return domain.ErrAlreadyCheckedOut
	}
	return nil
}
