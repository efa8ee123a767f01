package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fouss011/ayii-ratp/internal/geo"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	t.Parallel()

	p := geo.Point{Lat: 48.8566, Lng: 2.3522}
	assert.Zero(t, geo.DistanceMeters(p, p))
}

func TestDistanceMeters_ParisLandmarks(t *testing.T) {
	t.Parallel()

	// Notre-Dame -> Tour Eiffel, ~4.1 km.
	notreDame := geo.Point{Lat: 48.8530, Lng: 2.3499}
	eiffel := geo.Point{Lat: 48.8584, Lng: 2.2945}

	d := geo.DistanceMeters(notreDame, eiffel)
	assert.InDelta(t, 4100, d, 100)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	t.Parallel()

	a := geo.Point{Lat: 48.8566, Lng: 2.3522}
	b := geo.Point{Lat: 48.8600, Lng: 2.3600}

	assert.InDelta(t, geo.DistanceMeters(a, b), geo.DistanceMeters(b, a), 1e-9)
}

func TestDistanceMeters_SmallOffsets(t *testing.T) {
	t.Parallel()

	// 0.001 deg of latitude is ~111 m anywhere on the globe.
	a := geo.Point{Lat: 48.8566, Lng: 2.3522}
	b := geo.Point{Lat: 48.8576, Lng: 2.3522}

	assert.InDelta(t, 111.2, geo.DistanceMeters(a, b), 1.0)
}

func TestWithinRadius(t *testing.T) {
	t.Parallel()

	a := geo.Point{Lat: 48.8566, Lng: 2.3522}
	b := geo.Point{Lat: 48.8576, Lng: 2.3522} // ~111 m north

	assert.True(t, geo.WithinRadius(a, b, 120))
	assert.False(t, geo.WithinRadius(a, b, 100))
	// boundary is inclusive
	assert.True(t, geo.WithinRadius(a, a, 0))
}
