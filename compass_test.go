package compass

import (
	"math"
	"testing"

	"github.com/osuushi/compass/coordinate"
	"github.com/osuushi/compass/geometry"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestIsSimple(t *testing.T) {
	line, err := LineString(
		[]float64{0, 0},
		[]float64{1, 1},
		[]float64{0, 0},
	)
	require.NoError(t, err)
	simple, err := IsSimple(line)
	assert.NoError(t, err)
	assert.True(t, simple)

	line, err = LineString(
		[]float64{1, 1},
		[]float64{1, 1},
		[]float64{0, 0},
	)
	require.NoError(t, err)
	simple, err = IsSimple(line)
	assert.NoError(t, err)
	assert.False(t, simple)
}

func TestPoint(t *testing.T) {
	p, err := Point(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, C(1, 2, 3), p.Coordinate)

	_, err = Point(1, math.Inf(1))
	assert.Equal(t, coordinate.ErrInfiniteValue, errors.Cause(err))

	assert.Panics(t, func() { Point(1) })
	assert.Panics(t, func() { Point(1, 2, 3, 4) })
}

func TestLineStringRecoversConstructionErrors(t *testing.T) {
	_, err := LineString([]float64{0, 0}, []float64{math.NaN(), 1})
	require.Error(t, err)
	var constructionError *coordinate.ConstructionError
	require.True(t, errors.As(err, &constructionError))
	assert.Equal(t, coordinate.NaNValue, constructionError.Kind)
	assert.Equal(t, coordinate.X, constructionError.Ordinate)
}

func TestRing(t *testing.T) {
	ring, err := Ring([]float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, geometry.Dimension(ring))

	_, err = Ring([]float64{0, 0}, []float64{1, 0}, []float64{1, 1})
	assert.Equal(t, geometry.ErrRingNotClosed, errors.Cause(err))

	_, err = Ring([]float64{0, 0}, []float64{1, 0}, []float64{1, math.NaN()}, []float64{0, 0})
	assert.Equal(t, coordinate.ErrNaNValue, errors.Cause(err))
}
