package geometry

import "github.com/osuushi/compass/coordinate"

// Dimension is the topological dimension: 0 for points, 1 for lines, 2 for
// polygons. A collection takes the largest dimension among its members, and an
// empty collection is -1.
func Dimension(g Geometry) int {
	switch g := g.(type) {
	case Point, MultiPoint:
		return 0
	case LineString, LinearRing, MultiLineString:
		return 1
	case Polygon, MultiPolygon:
		return 2
	case GeometryCollection:
		dim := -1
		for _, member := range g.Geometries {
			if d := Dimension(member); d > dim {
				dim = d
			}
		}
		return dim
	}
	panic(unknown(g))
}

// Coordinates flattens g into its coordinates in traversal order: a polygon's
// exterior ring comes before its holes, and collections are walked depth
// first.
func Coordinates(g Geometry) []coordinate.Coordinate {
	var out []coordinate.Coordinate
	walk(g, func(seq []coordinate.Coordinate) {
		out = append(out, seq...)
	})
	return out
}

// Equal reports whether a and b are the same kind with pairwise structurally
// equal coordinates and the same nesting. A nil geometry equals nothing.
func Equal(a, b Geometry) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case Point:
		return a.Coordinate.Equal(b.(Point).Coordinate)
	case LineString:
		return equalSequences(a.Sequence(), b.(LineString).Sequence())
	case LinearRing:
		return equalSequences(a.Sequence(), b.(LinearRing).Sequence())
	case Polygon:
		return equalPolygons(a, b.(Polygon))
	case MultiPoint:
		other := b.(MultiPoint)
		if len(a.Points) != len(other.Points) {
			return false
		}
		for i := range a.Points {
			if !a.Points[i].Coordinate.Equal(other.Points[i].Coordinate) {
				return false
			}
		}
		return true
	case MultiLineString:
		other := b.(MultiLineString)
		if len(a.Lines) != len(other.Lines) {
			return false
		}
		for i := range a.Lines {
			if !equalSequences(a.Lines[i].Sequence(), other.Lines[i].Sequence()) {
				return false
			}
		}
		return true
	case MultiPolygon:
		other := b.(MultiPolygon)
		if len(a.Polygons) != len(other.Polygons) {
			return false
		}
		for i := range a.Polygons {
			if !equalPolygons(a.Polygons[i], other.Polygons[i]) {
				return false
			}
		}
		return true
	case GeometryCollection:
		other := b.(GeometryCollection)
		if len(a.Geometries) != len(other.Geometries) {
			return false
		}
		for i := range a.Geometries {
			if !Equal(a.Geometries[i], other.Geometries[i]) {
				return false
			}
		}
		return true
	}
	panic(unknown(a))
}

func equalPolygons(a, b Polygon) bool {
	if len(a.Holes) != len(b.Holes) {
		return false
	}
	if !equalSequences(a.Exterior.Sequence(), b.Exterior.Sequence()) {
		return false
	}
	for i := range a.Holes {
		if !equalSequences(a.Holes[i].Sequence(), b.Holes[i].Sequence()) {
			return false
		}
	}
	return true
}

func equalSequences(a, b *coordinate.Sequence) bool {
	if a.Len() != b.Len() {
		return false
	}
	ai, bi := a.Iterator(), b.Iterator()
	for ca, ok := ai.Next(); ok; ca, ok = ai.Next() {
		cb, _ := bi.Next()
		if !ca.Equal(cb) {
			return false
		}
	}
	return true
}

// walk calls fn with each run of coordinates in g, in traversal order.
func walk(g Geometry, fn func([]coordinate.Coordinate)) {
	switch g := g.(type) {
	case Point:
		fn([]coordinate.Coordinate{g.Coordinate})
	case LineString:
		fn(g.Sequence().Coordinates())
	case LinearRing:
		fn(g.Sequence().Coordinates())
	case Polygon:
		fn(g.Exterior.Sequence().Coordinates())
		for _, hole := range g.Holes {
			fn(hole.Sequence().Coordinates())
		}
	case MultiPoint:
		for _, p := range g.Points {
			walk(p, fn)
		}
	case MultiLineString:
		for _, l := range g.Lines {
			walk(l, fn)
		}
	case MultiPolygon:
		for _, p := range g.Polygons {
			walk(p, fn)
		}
	case GeometryCollection:
		for _, member := range g.Geometries {
			walk(member, fn)
		}
	default:
		panic(unknown(g))
	}
}
