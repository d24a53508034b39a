// Package distance provides the pluggable distance metrics used by the
// kmedian solver.
//
// # Supported Metrics
//
//   - MetricEuclidean: straight-line distance on the plane (default)
//   - MetricSquaredEuclidean: squared straight-line distance
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L∞ distance
//   - MetricHaversine: great-circle distance in meters, for points
//     holding (longitude, latitude) in degrees
//
// # Usage
//
//	fn, err := distance.Provider(distance.MetricEuclidean)
//	d := fn(a, b)
//
// Every Func must be symmetric (fn(a,b) == fn(b,a)) and satisfy
// fn(a,a) == 0. The solver's convergence argument additionally assumes
// the triangle inequality; it is not re-verified at runtime. Callers
// may supply their own Func (e.g. rail-network distance) as long as the
// contract holds.
package distance
