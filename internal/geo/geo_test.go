package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownPoints(t *testing.T) {
	// Москва -> Санкт-Петербург, ~634 км
	d := DistanceKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634.0, d, 5.0)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	d := DistanceKm(55.7558, 37.6173, 55.7558, 37.6173)
	assert.InDelta(t, 0.0, d, 1e-9)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	d1 := DistanceKm(6.5244, 3.3792, 9.0765, 7.3986)
	d2 := DistanceKm(9.0765, 7.3986, 6.5244, 3.3792)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lon   float64
		valid bool
	}{
		{"обычная точка", 6.5244, 3.3792, true},
		{"граница широты", 90.0, 10.0, true},
		{"широта вне диапазона", 90.5, 10.0, false},
		{"долгота вне диапазона", 10.0, -180.5, false},
		{"NaN широта", math.NaN(), 3.0, false},
		{"бесконечная долгота", 3.0, math.Inf(1), false},
		{"нулевой остров", 0.0, 0.0, false},
		{"рядом с нулевым островом", 0.00001, 0.00001, false},
		{"нулевая широта, нормальная долгота", 0.0, 3.3792, true},
		{"нулевая долгота, нормальная широта", 51.4779, 0.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCoordinate(tt.lat, tt.lon))
		})
	}
}
