package geo

import (
	"math"

	"github.com/shenikar/restroom_finder/internal/models"
)

const (
	// Радиус Земли в милях для формулы гаверсинусов
	earthRadiusMiles = 3958.8

	// Приближение "градусов на милю" для предварительного bounding box.
	// Годится только для пре-фильтра, не для итогового решения по радиусу.
	degreesPerMile = 1.0 / 69.0

	// Запас, чтобы box гарантированно накрывал окружность радиуса поиска
	boxPadding = 1.1
)

// Point - координаты в градусах WGS-84
type Point struct {
	Latitude  float64
	Longitude float64
}

// Match - кандидат, прошедший фильтр по радиусу, с вычисленной дистанцией
type Match struct {
	Restroom      models.Restroom
	DistanceMiles float64
}

// Box - прямоугольный диапазон координат для серверного пре-фильтра
type Box struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Haversine возвращает дистанцию по дуге большого круга между двумя точками в милях
func Haversine(a, b Point) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// FilterByRadius возвращает кандидатов в пределах radiusMiles от origin
// с точной дистанцией. Граница включительно (distance <= radius).
// Порядок входа сохраняется; сортировка - дело вызывающего.
// radiusMiles <= 0 и пустой вход дают пустой результат без ошибки.
func FilterByRadius(origin Point, candidates []models.Restroom, radiusMiles float64) []Match {
	matches := make([]Match, 0, len(candidates))
	if radiusMiles <= 0 {
		return matches
	}

	for _, c := range candidates {
		d := Haversine(origin, Point{Latitude: c.Latitude, Longitude: c.Longitude})
		if d <= radiusMiles {
			matches = append(matches, Match{Restroom: c, DistanceMiles: d})
		}
	}
	return matches
}

// BoundingBox строит прямоугольник строго больше окружности радиуса поиска.
// Долготный размах растянут на 1/cos(lat); у полюсов и при пересечении
// антимеридиана диапазон долгот раскрывается полностью, потому что предикат
// BETWEEN в хранилище не умеет заворачиваться через +/-180.
// Ложные срабатывания допустимы, ложные пропуски - нет.
func BoundingBox(origin Point, radiusMiles float64) Box {
	if radiusMiles < 0 {
		radiusMiles = 0
	}

	latDelta := radiusMiles * degreesPerMile * boxPadding

	cosLat := math.Cos(origin.Latitude * math.Pi / 180)
	lonDelta := 180.0
	if cosLat > 1e-6 {
		lonDelta = latDelta / cosLat
		if lonDelta > 180 {
			lonDelta = 180
		}
	}

	minLon := origin.Longitude - lonDelta
	maxLon := origin.Longitude + lonDelta
	if minLon < -180 || maxLon > 180 {
		minLon = -180
		maxLon = 180
	}

	return Box{
		MinLat: math.Max(origin.Latitude-latDelta, -90),
		MaxLat: math.Min(origin.Latitude+latDelta, 90),
		MinLon: minLon,
		MaxLon: maxLon,
	}
}
