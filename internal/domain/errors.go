package domain

import (
	"errors"
	"fmt"
	"math"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUserInactive      = errors.New("la cuenta está desactivada")
	ErrCannotDeleteSelf  = errors.New("no puede eliminar su propia cuenta")
	ErrAlreadyCheckedIn  = errors.New("ya registró su entrada hoy")
	ErrNotCheckedIn      = errors.New("todavía no registró su entrada hoy")
	ErrAlreadyCheckedOut = errors.New("ya registró su salida hoy")
	ErrOutsideGeofence   = errors.New("fuera del radio permitido")
)

// GeofenceError rechazo por distancia: incluye la distancia calculada y el radio permitido (metros).
type GeofenceError struct {
	Distance float64
	Radius   float64
}

// Error mensaje para el usuario con la distancia redondeada a metros.
func (e *GeofenceError) Error() string {
	return fmt.Sprintf("debe estar dentro de %gm de la escuela; distancia actual: %dm",
		e.Radius, int64(math.Round(e.Distance)))
}

// Is permite errors.Is(err, ErrOutsideGeofence).
func (e *GeofenceError) Is(target error) bool {
	return target == ErrOutsideGeofence
}
