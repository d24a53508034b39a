package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/kmedian/model"
)

// Metric represents the distance metric used for point comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricChebyshev
	MetricHaversine
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricHaversine:
		return "Haversine"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Func is a function type for distance calculation between two points.
// Implementations must be symmetric and return 0 for identical points.
type Func func(a, b model.Point) float64

// Euclidean calculates the straight-line distance between two points.
func Euclidean(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SquaredEuclidean calculates the squared straight-line distance.
// Cheaper than Euclidean when only ordering matters.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Manhattan calculates the L1 distance between two points.
func Manhattan(a, b model.Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Chebyshev calculates the L∞ distance between two points.
func Chebyshev(a, b model.Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Haversine calculates the great-circle distance in meters between two
// points holding (X=longitude, Y=latitude) in degrees.
func Haversine(a, b model.Point) float64 {
	const earthRadiusMeters = 6371000.0

	dLat := (b.Y - a.Y) * math.Pi / 180
	dLon := (b.X - a.X) * math.Pi / 180
	lat1 := a.Y * math.Pi / 180
	lat2 := b.Y * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan:
		return Manhattan, nil
	case MetricChebyshev:
		return Chebyshev, nil
	case MetricHaversine:
		return Haversine, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
