// Package geo implementa cálculos geodésicos simples usados por el control de asistencia.
package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters radio medio de la Tierra usado por la fórmula de Haversine.
const EarthRadiusMeters = 6371000.0

// Point coordenada en grados decimales.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Validate verifica que la coordenada esté dentro de los rangos WGS84.
func (p Point) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("geo: latitud fuera de rango: %v", p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("geo: longitud fuera de rango: %v", p.Longitude)
	}
	return nil
}

// Distance devuelve la distancia de círculo máximo entre a y b en metros (Haversine).
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
