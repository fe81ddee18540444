// Package attendance contiene las reglas de dominio del control de asistencia:
// validación por geocerca, transiciones entrada/salida y agregación de estadísticas.
package attendance

import (
	"github.com/jhoicas/tanpopo-api/internal/domain"
	"github.com/jhoicas/tanpopo-api/pkg/geo"
)

// Geofence círculo alrededor de la escuela dentro del cual se permite registrar asistencia.
type Geofence struct {
	Center geo.Point
	Radius float64 // metros
}

// Check calcula la distancia de p al centro. Devuelve *domain.GeofenceError si supera el radio.
func (g Geofence) Check(p geo.Point) (float64, error) {
	d := geo.Distance(p, g.Center)
	if d > g.Radius {
		return d, &domain.GeofenceError{Distance: d, Radius: g.Radius}
	}
	return d, nil
}
