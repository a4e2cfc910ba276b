package geometry

import (
	"testing"

	. "github.com/osuushi/compass/coordinate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size float64) LinearRing {
	ring, err := NewLinearRing(NewSequence(C(0, 0), C(size, 0), C(size, size), C(0, size), C(0, 0)))
	if err != nil {
		panic(err)
	}
	return ring
}

func TestNewLinearRing(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ring, err := NewLinearRing(nil)
		require.NoError(t, err)
		assert.True(t, ring.Sequence().IsEmpty())
	})

	t.Run("closed", func(t *testing.T) {
		ring, err := NewLinearRing(NewSequence(C(0, 0), C(1, 0), C(1, 1), C(0, 0)))
		require.NoError(t, err)
		assert.Equal(t, 4, ring.Sequence().Len())
	})

	t.Run("not closed", func(t *testing.T) {
		_, err := NewLinearRing(NewSequence(C(0, 0), C(1, 0), C(1, 1), C(0, 1)))
		assert.Equal(t, ErrRingNotClosed, errors.Cause(err))
	})

	t.Run("too short", func(t *testing.T) {
		_, err := NewLinearRing(NewSequence(C(0, 0), C(1, 0), C(0, 0)))
		assert.Equal(t, ErrRingTooShort, errors.Cause(err))
	})

	t.Run("single point", func(t *testing.T) {
		_, err := NewLinearRing(NewSequence(C(0, 0)))
		assert.Equal(t, ErrRingNotClosed, errors.Cause(err))
	})
}

func TestZeroValueLines(t *testing.T) {
	var line LineString
	assert.Equal(t, 0, line.Sequence().Len())
	var ring LinearRing
	assert.Equal(t, 0, ring.Sequence().Len())
}

func TestKind(t *testing.T) {
	assert.Equal(t, "Point", Point{}.Kind().String())
	assert.Equal(t, "LinearRing", LinearRing{}.Kind().String())
	assert.Equal(t, "GeometryCollection", GeometryCollection{}.Kind().String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestDimension(t *testing.T) {
	line := LineStringOf(C(0, 0), C(1, 1))
	cases := []struct {
		geometry  Geometry
		dimension int
	}{
		{Point{C(0, 0)}, 0},
		{MultiPoint{}, 0},
		{line, 1},
		{square(1), 1},
		{MultiLineString{[]LineString{line}}, 1},
		{Polygon{Exterior: square(1)}, 2},
		{MultiPolygon{}, 2},
		{GeometryCollection{}, -1},
		{GeometryCollection{[]Geometry{Point{}, line}}, 1},
		{GeometryCollection{[]Geometry{GeometryCollection{[]Geometry{Polygon{}}}, Point{}}}, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.dimension, Dimension(tc.geometry), "%s", tc.geometry.Kind())
	}
}

func TestCoordinates(t *testing.T) {
	poly := Polygon{
		Exterior: square(4),
		Holes:    []LinearRing{square(1)},
	}
	coords := Coordinates(GeometryCollection{[]Geometry{
		Point{C(9, 9)},
		poly,
		MultiPoint{[]Point{{C(7, 7)}}},
	}})
	require.Len(t, coords, 1+5+5+1)
	assert.Equal(t, C(9, 9), coords[0])
	assert.Equal(t, C(4, 0), coords[2])
	assert.Equal(t, C(1, 0), coords[7])
	assert.Equal(t, C(7, 7), coords[11])
}

func TestEqual(t *testing.T) {
	line := func(coords ...Coordinate) LineString { return LineStringOf(coords...) }

	t.Run("points", func(t *testing.T) {
		assert.True(t, Equal(Point{C(1, 2)}, Point{C(1, 2, 0)}))
		assert.False(t, Equal(Point{C(1, 2)}, Point{C(1, 3)}))
	})

	t.Run("different kinds", func(t *testing.T) {
		assert.False(t, Equal(Point{C(1, 2)}, MultiPoint{[]Point{{C(1, 2)}}}))
		assert.False(t, Equal(line(C(0, 0), C(1, 0), C(1, 1), C(0, 0)), square(1)))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, Equal(Point{C(1, 2)}, nil))
		assert.False(t, Equal(nil, Point{C(1, 2)}))
		assert.False(t, Equal(nil, nil))
		assert.False(t, Equal(
			GeometryCollection{[]Geometry{Point{C(1, 2)}}},
			GeometryCollection{[]Geometry{nil}},
		))
	})

	t.Run("lines", func(t *testing.T) {
		assert.True(t, Equal(line(C(0, 0), C(1, 1)), line(C(0, 0), C(1, 1))))
		assert.False(t, Equal(line(C(0, 0), C(1, 1)), line(C(1, 1), C(0, 0))))
		assert.False(t, Equal(line(C(0, 0), C(1, 1)), line(C(0, 0))))
	})

	t.Run("polygons", func(t *testing.T) {
		a := Polygon{Exterior: square(4), Holes: []LinearRing{square(1)}}
		b := Polygon{Exterior: square(4), Holes: []LinearRing{square(1)}}
		c := Polygon{Exterior: square(4)}
		assert.True(t, Equal(a, b))
		assert.False(t, Equal(a, c))
		assert.True(t, Equal(MultiPolygon{[]Polygon{a}}, MultiPolygon{[]Polygon{b}}))
		assert.False(t, Equal(MultiPolygon{[]Polygon{a}}, MultiPolygon{[]Polygon{c}}))
	})

	t.Run("collections", func(t *testing.T) {
		a := GeometryCollection{[]Geometry{Point{C(1, 1)}, MultiLineString{[]LineString{line(C(0, 0), C(1, 1))}}}}
		b := GeometryCollection{[]Geometry{Point{C(1, 1)}, MultiLineString{[]LineString{line(C(0, 0), C(1, 1))}}}}
		c := GeometryCollection{[]Geometry{Point{C(1, 1)}, MultiLineString{[]LineString{line(C(0, 0), C(2, 2))}}}}
		assert.True(t, Equal(a, b))
		assert.False(t, Equal(a, c))
		assert.False(t, Equal(a, GeometryCollection{}))
	})
}
