package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmedian/model"
)

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Point
		expected float64
	}{
		{"Zero", model.Point{}, model.Point{}, 0},
		{"Unit", model.Point{X: 0, Y: 0}, model.Point{X: 1, Y: 0}, 1},
		{"Pythagorean", model.Point{X: 0, Y: 0}, model.Point{X: 3, Y: 4}, 5},
		{"Negative", model.Point{X: -1, Y: -1}, model.Point{X: 2, Y: 3}, 5},
		{"Diagonal", model.Point{X: 0, Y: 0}, model.Point{X: 5, Y: 5}, math.Sqrt(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Euclidean(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSquaredEuclidean(t *testing.T) {
	a := model.Point{X: 1, Y: 2}
	b := model.Point{X: 4, Y: 6}
	assert.InDelta(t, 25.0, SquaredEuclidean(a, b), 1e-12)
	assert.Zero(t, SquaredEuclidean(a, a))
}

func TestManhattan(t *testing.T) {
	a := model.Point{X: 1, Y: 2}
	b := model.Point{X: 4, Y: 6}
	assert.InDelta(t, 7.0, Manhattan(a, b), 1e-12)
	assert.Zero(t, Manhattan(b, b))
}

func TestChebyshev(t *testing.T) {
	a := model.Point{X: 1, Y: 2}
	b := model.Point{X: 4, Y: 6}
	assert.InDelta(t, 4.0, Chebyshev(a, b), 1e-12)
	assert.Zero(t, Chebyshev(a, a))
}

func TestHaversine(t *testing.T) {
	// Hamburg -> Berlin, roughly 255 km.
	hamburg := model.Point{X: 9.9937, Y: 53.5511}
	berlin := model.Point{X: 13.4050, Y: 52.5200}

	d := Haversine(hamburg, berlin)
	assert.InDelta(t, 255000, d, 5000)
	assert.Zero(t, Haversine(hamburg, hamburg))
}

func TestSymmetry(t *testing.T) {
	a := model.Point{X: -2.5, Y: 7.25}
	b := model.Point{X: 11, Y: -0.5}

	for _, m := range []Metric{MetricEuclidean, MetricSquaredEuclidean, MetricManhattan, MetricChebyshev, MetricHaversine} {
		fn, err := Provider(m)
		require.NoError(t, err, m.String())
		assert.Equal(t, fn(a, b), fn(b, a), m.String())
	}
}

func TestProvider(t *testing.T) {
	fn, err := Provider(MetricEuclidean)
	require.NoError(t, err)
	assert.NotNil(t, fn)

	_, err = Provider(Metric(999))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "SquaredEuclidean", MetricSquaredEuclidean.String())
	assert.Equal(t, "Manhattan", MetricManhattan.String())
	assert.Equal(t, "Chebyshev", MetricChebyshev.String())
	assert.Equal(t, "Haversine", MetricHaversine.String())
	assert.Equal(t, "Unknown(999)", Metric(999).String())
}
