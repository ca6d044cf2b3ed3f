package geo

import (
	"math"
)

const (
	earthRadiusKm = 6371.0

	// nullIslandEpsilon - окрестность точки (0,0), типичный сигнал сбоя GPS
	nullIslandEpsilon = 1e-4
)

// DistanceKm возвращает расстояние по большому кругу между двумя точками
// в километрах (формула гаверсинусов)
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// ValidCoordinate проверяет правдоподобность координат: конечные числа,
// в допустимых диапазонах и не в окрестности (0,0)
func ValidCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	if math.Abs(lat) < nullIslandEpsilon && math.Abs(lon) < nullIslandEpsilon {
		return false
	}
	return true
}
