// Compass is the data layer of a planar geometry library in the JTS tradition.
//
// It provides a finite 2D/3D coordinate value, the ordered coordinate
// sequence geometries are built from, and a simplicity check for lines that
// runs in linear time, so it stays usable on lines with tens of millions of
// points.
//
// This package is a convenience layer over the coordinate and geometry
// packages for building geometries from raw ordinates.
package compass

import (
	"github.com/osuushi/compass/coordinate"
	"github.com/osuushi/compass/geometry"
)

type Coordinate = coordinate.Coordinate
type Sequence = coordinate.Sequence
type Geometry = geometry.Geometry

// C is the coordinate literal: C(x, y) or C(x, y, z). It panics on NaN or
// infinite ordinates.
func C(x, y float64, z ...float64) Coordinate {
	return coordinate.C(x, y, z...)
}

// Point builds a point from 2 or 3 ordinates.
func Point(ordinates ...float64) (result geometry.Point, err error) {
	defer func() {
		if recovered := coordinate.HandleConstructionPanic(recover()); recovered != nil {
			result = geometry.Point{}
			err = recovered
		}
	}()
	return geometry.Point{Coordinate: literal(ordinates)}, nil
}

// LineString builds a line from points given as 2 or 3 ordinates each. A
// non-finite ordinate is returned as a *coordinate.ConstructionError.
func LineString(points ...[]float64) (result geometry.LineString, err error) {
	defer func() {
		if recovered := coordinate.HandleConstructionPanic(recover()); recovered != nil {
			result = geometry.LineString{}
			err = recovered
		}
	}()
	return geometry.NewLineString(sequence(points)), nil
}

// Ring builds a linear ring, which must be closed and have at least four
// points.
func Ring(points ...[]float64) (result geometry.LinearRing, err error) {
	defer func() {
		if recovered := coordinate.HandleConstructionPanic(recover()); recovered != nil {
			result = geometry.LinearRing{}
			err = recovered
		}
	}()
	return geometry.NewLinearRing(sequence(points))
}

// IsSimple reports whether g is free of self intersection and self tangency.
// See geometry.IsSimple for which kinds are supported.
func IsSimple(g Geometry) (bool, error) {
	return geometry.IsSimple(g)
}

func sequence(points [][]float64) *coordinate.Sequence {
	seq := coordinate.NewSequence()
	for _, p := range points {
		seq.Add(literal(p))
	}
	return seq
}

// A point with fewer than 2 ordinates is a programming error, so it panics
// like C does with more than 3.
func literal(ordinates []float64) coordinate.Coordinate {
	if len(ordinates) < 2 {
		panic("compass: a point needs 2 or 3 ordinates")
	}
	return coordinate.C(ordinates[0], ordinates[1], ordinates[2:]...)
}
