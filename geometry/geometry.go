// Package geometry defines the closed set of geometry kinds built from
// coordinate sequences, and the predicates this library implements over them.
//
// The set of kinds is fixed. Geometry has an unexported method so that no
// other package can add to it, and every operation dispatches with an
// exhaustive type switch.
package geometry

import (
	"fmt"

	"github.com/osuushi/compass/coordinate"
	"github.com/pkg/errors"
)

var (
	ErrRingNotClosed = errors.New("linear ring is not closed")
	ErrRingTooShort  = errors.New("linear ring needs at least 4 coordinates")
	ErrUnsupported   = errors.New("operation not supported")
)

// MinRingSize is the smallest non-empty linear ring: a triangle plus its
// closing coordinate.
const MinRingSize = 4

type Kind int

const (
	KindPoint Kind = iota
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

var kindNames = [...]string{
	KindPoint:              "Point",
	KindLineString:         "LineString",
	KindLinearRing:         "LinearRing",
	KindPolygon:            "Polygon",
	KindMultiPoint:         "MultiPoint",
	KindMultiLineString:    "MultiLineString",
	KindMultiPolygon:       "MultiPolygon",
	KindGeometryCollection: "GeometryCollection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

type Geometry interface {
	Kind() Kind
	geometry()
}

type Point struct {
	Coordinate coordinate.Coordinate
}

// LineString owns its sequence. The zero value is an empty line.
type LineString struct {
	seq *coordinate.Sequence
}

func NewLineString(seq *coordinate.Sequence) LineString {
	return LineString{seq: seq}
}

// LineStringOf builds a line string from coordinates in order.
func LineStringOf(coords ...coordinate.Coordinate) LineString {
	return LineString{seq: coordinate.NewSequence(coords...)}
}

func (l LineString) Sequence() *coordinate.Sequence {
	return orEmpty(l.seq)
}

// LinearRing is a closed line string. It is either empty or has at least
// MinRingSize coordinates with the first equal to the last.
type LinearRing struct {
	seq *coordinate.Sequence
}

func NewLinearRing(seq *coordinate.Sequence) (LinearRing, error) {
	seq = orEmpty(seq)
	if seq.IsEmpty() {
		return LinearRing{seq: seq}, nil
	}
	if !seq.IsClosed() {
		first, _ := seq.First()
		last, _ := seq.Last()
		return LinearRing{}, errors.Wrapf(ErrRingNotClosed, "first %v, last %v", first, last)
	}
	if seq.Len() < MinRingSize {
		return LinearRing{}, errors.Wrapf(ErrRingTooShort, "got %d", seq.Len())
	}
	return LinearRing{seq: seq}, nil
}

func (r LinearRing) Sequence() *coordinate.Sequence {
	return orEmpty(r.seq)
}

type Polygon struct {
	Exterior LinearRing
	Holes    []LinearRing
}

type MultiPoint struct {
	Points []Point
}

type MultiLineString struct {
	Lines []LineString
}

type MultiPolygon struct {
	Polygons []Polygon
}

type GeometryCollection struct {
	Geometries []Geometry
}

func (Point) Kind() Kind              { return KindPoint }
func (LineString) Kind() Kind         { return KindLineString }
func (LinearRing) Kind() Kind         { return KindLinearRing }
func (Polygon) Kind() Kind            { return KindPolygon }
func (MultiPoint) Kind() Kind         { return KindMultiPoint }
func (MultiLineString) Kind() Kind    { return KindMultiLineString }
func (MultiPolygon) Kind() Kind       { return KindMultiPolygon }
func (GeometryCollection) Kind() Kind { return KindGeometryCollection }

func (Point) geometry()              {}
func (LineString) geometry()         {}
func (LinearRing) geometry()         {}
func (Polygon) geometry()            {}
func (MultiPoint) geometry()         {}
func (MultiLineString) geometry()    {}
func (MultiPolygon) geometry()       {}
func (GeometryCollection) geometry() {}

func orEmpty(seq *coordinate.Sequence) *coordinate.Sequence {
	if seq == nil {
		return coordinate.NewSequence()
	}
	return seq
}

func unknown(g Geometry) string {
	if g == nil {
		return "geometry: nil geometry"
	}
	return fmt.Sprintf("geometry: unknown geometry %T", g)
}
