package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tanpopo-api/pkg/geo"
)

var school = geo.Point{Latitude: 10.7769, Longitude: 106.7009}

func TestDistance_PuntosCoincidentes(t *testing.T) {
	assert.Equal(t, 0.0, geo.Distance(school, school))
	origin := geo.Point{}
	assert.Equal(t, 0.0, geo.Distance(origin, origin))
}

func TestDistance_UnGradoDeLatitud(t *testing.T) {
	// 1° de latitud ≈ 2πR/360 ≈ 111 194.9 m
	d := geo.Distance(geo.Point{Latitude: 0, Longitude: 0}, geo.Point{Latitude: 1, Longitude: 0})
	assert.InDelta(t, 111194.93, d, 0.5)
}

func TestDistance_CincoKilometros(t *testing.T) {
	// 0.045° de latitud al norte de la escuela ≈ 5 003.8 m
	far := geo.Point{Latitude: school.Latitude + 0.045, Longitude: school.Longitude}
	assert.InDelta(t, 5003.8, geo.Distance(school, far), 1)
}

func TestDistance_Simetrica(t *testing.T) {
	other := geo.Point{Latitude: 10.80, Longitude: 106.65}
	assert.InDelta(t, geo.Distance(school, other), geo.Distance(other, school), 1e-9)
}

func TestPoint_Validate(t *testing.T) {
	assert.NoError(t, school.Validate())
	assert.NoError(t, geo.Point{Latitude: -90, Longitude: 180}.Validate())
	assert.Error(t, geo.Point{Latitude: 90.1, Longitude: 0}.Validate())
	assert.Error(t, geo.Point{Latitude: 0, Longitude: -180.5}.Validate())
}
