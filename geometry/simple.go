package geometry

import (
	"github.com/osuushi/compass/coordinate"
	"github.com/pkg/errors"
)

// Checker decides whether a line is simple, meaning it neither crosses nor
// touches itself. It consumes the line one coordinate at a time, front to back,
// so the line never has to be materialized. A line is simple when no vertex
// repeats, except that the last vertex may close a ring by returning to the
// first.
//
// Work per coordinate is one hash lookup, and memory is one set entry per
// distinct vertex. Once a violation is seen the verdict can never go back to
// simple, and later coordinates are ignored.
//
// The zero value is ready to use.
type Checker struct {
	first    coordinate.Coordinate
	started  bool
	seen     coordinate.Set
	closed   bool
	violated bool
}

// NewChecker pre-sizes the checker for a line of about n coordinates.
func NewChecker(n int) *Checker {
	return &Checker{seen: coordinate.NewSet(n)}
}

// Push feeds the next coordinate of the line and reports whether the line is
// still simple.
func (c *Checker) Push(p coordinate.Coordinate) bool {
	switch {
	case c.violated:
	case !c.started:
		c.first = p
		c.started = true
	case c.closed:
		// The ring already closed, so the line carries on through its own start.
		c.violated = true
	case p.Equal(c.first):
		c.closed = true
	default:
		if c.seen == nil {
			c.seen = make(coordinate.Set)
		}
		if !c.seen.Add(p) {
			c.violated = true
		}
	}
	return !c.violated
}

// Simple is the verdict for everything pushed so far. An empty line and a
// single coordinate are both simple.
func (c *Checker) Simple() bool {
	return !c.violated
}

// Closed reports whether the line has returned to its first coordinate.
func (c *Checker) Closed() bool {
	return c.closed
}

func IsSimpleCoordinates(coords []coordinate.Coordinate) bool {
	return IsSimpleIterator(coordinate.Iterate(coords))
}

func IsSimpleSequence(seq *coordinate.Sequence) bool {
	return IsSimpleIterator(seq.Iterator())
}

func IsSimpleIterator(it *coordinate.Iterator) bool {
	checker := NewChecker(it.Remaining())
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if !checker.Push(p) {
			return false
		}
	}
	return checker.Simple()
}

// IsSimple reports whether g has no self intersection or self tangency.
//
// Points are always simple, and a multipoint is simple when no two of its
// points coincide. Line strings and rings go through Checker. Deciding the
// polygonal kinds and collections needs segment intersection tests this package
// does not have, so those return ErrUnsupported. g must not be nil.
func IsSimple(g Geometry) (bool, error) {
	switch g := g.(type) {
	case Point:
		return true, nil
	case MultiPoint:
		set := coordinate.NewSet(len(g.Points))
		for _, p := range g.Points {
			if !set.Add(p.Coordinate) {
				return false, nil
			}
		}
		return true, nil
	case LineString:
		return IsSimpleSequence(g.Sequence()), nil
	case LinearRing:
		return IsSimpleSequence(g.Sequence()), nil
	case Polygon, MultiLineString, MultiPolygon, GeometryCollection:
		return false, errors.Wrapf(ErrUnsupported, "simplicity of %s", g.Kind())
	}
	panic(unknown(g))
}
