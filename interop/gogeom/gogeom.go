// Package gogeom converts between compass geometries and
// github.com/twpayne/go-geom, which is where the codecs live.
package gogeom

import (
	"github.com/osuushi/compass/coordinate"
	"github.com/osuushi/compass/geometry"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// From converts a go-geom geometry. Z is taken from the layout's z index when
// there is one, and M is dropped. Non-finite ordinates are rejected with an
// error wrapping the *coordinate.ConstructionError, so errors.Cause still tells
// NaN apart from infinity.
func From(g geom.T) (geometry.Geometry, error) {
	zIndex := g.Layout().ZIndex()
	switch g := g.(type) {
	case *geom.Point:
		c, err := fromCoord(g.Coords(), zIndex)
		if err != nil {
			return nil, err
		}
		return geometry.Point{Coordinate: c}, nil
	case *geom.LineString:
		seq, err := fromCoords(g.Coords(), zIndex)
		if err != nil {
			return nil, err
		}
		return geometry.NewLineString(seq), nil
	case *geom.LinearRing:
		ring, err := fromRing(g.Coords(), zIndex)
		if err != nil {
			return nil, err
		}
		return ring, nil
	case *geom.Polygon:
		poly, err := fromPolygon(g.Coords(), zIndex)
		if err != nil {
			return nil, err
		}
		return poly, nil
	case *geom.MultiPoint:
		var mp geometry.MultiPoint
		for _, coord := range g.Coords() {
			c, err := fromCoord(coord, zIndex)
			if err != nil {
				return nil, err
			}
			mp.Points = append(mp.Points, geometry.Point{Coordinate: c})
		}
		return mp, nil
	case *geom.MultiLineString:
		var ml geometry.MultiLineString
		for _, coords := range g.Coords() {
			seq, err := fromCoords(coords, zIndex)
			if err != nil {
				return nil, err
			}
			ml.Lines = append(ml.Lines, geometry.NewLineString(seq))
		}
		return ml, nil
	case *geom.MultiPolygon:
		var mp geometry.MultiPolygon
		for _, rings := range g.Coords() {
			poly, err := fromPolygon(rings, zIndex)
			if err != nil {
				return nil, err
			}
			mp.Polygons = append(mp.Polygons, poly)
		}
		return mp, nil
	case *geom.GeometryCollection:
		var gc geometry.GeometryCollection
		for _, member := range g.Geoms() {
			converted, err := From(member)
			if err != nil {
				return nil, err
			}
			gc.Geometries = append(gc.Geometries, converted)
		}
		return gc, nil
	}
	return nil, errors.Wrapf(geometry.ErrUnsupported, "go-geom type %T", g)
}

// To converts to go-geom. The layout is XYZ if any coordinate is 3D, and XY
// otherwise.
func To(g geometry.Geometry) (geom.T, error) {
	layout := geom.XY
	for _, c := range geometry.Coordinates(g) {
		if c.Is3D() {
			layout = geom.XYZ
			break
		}
	}
	return to(g, layout)
}

func to(g geometry.Geometry, layout geom.Layout) (geom.T, error) {
	switch g := g.(type) {
	case geometry.Point:
		return done(geom.NewPoint(layout).SetCoords(toCoord(g.Coordinate, layout)))
	case geometry.LineString:
		return done(geom.NewLineString(layout).SetCoords(toCoords(g.Sequence(), layout)))
	case geometry.LinearRing:
		return done(geom.NewLinearRing(layout).SetCoords(toCoords(g.Sequence(), layout)))
	case geometry.Polygon:
		return done(geom.NewPolygon(layout).SetCoords(toPolygonCoords(g, layout)))
	case geometry.MultiPoint:
		coords := make([]geom.Coord, len(g.Points))
		for i, p := range g.Points {
			coords[i] = toCoord(p.Coordinate, layout)
		}
		return done(geom.NewMultiPoint(layout).SetCoords(coords))
	case geometry.MultiLineString:
		coords := make([][]geom.Coord, len(g.Lines))
		for i, l := range g.Lines {
			coords[i] = toCoords(l.Sequence(), layout)
		}
		return done(geom.NewMultiLineString(layout).SetCoords(coords))
	case geometry.MultiPolygon:
		coords := make([][][]geom.Coord, len(g.Polygons))
		for i, p := range g.Polygons {
			coords[i] = toPolygonCoords(p, layout)
		}
		return done(geom.NewMultiPolygon(layout).SetCoords(coords))
	case geometry.GeometryCollection:
		gc := geom.NewGeometryCollection()
		for _, member := range g.Geometries {
			converted, err := to(member, layout)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(converted); err != nil {
				return nil, errors.Wrap(err, "collection member")
			}
		}
		return gc, nil
	}
	return nil, errors.Wrapf(geometry.ErrUnsupported, "geometry %T", g)
}

// done keeps a failed SetCoords from leaking a typed nil into geom.T.
func done(g geom.T, err error) (geom.T, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

func fromCoord(coord geom.Coord, zIndex int) (coordinate.Coordinate, error) {
	if len(coord) < 2 {
		return coordinate.Coordinate{}, errors.Wrapf(ErrInvalidCoordinate, "%d ordinates", len(coord))
	}
	var (
		c   coordinate.Coordinate
		err error
	)
	if zIndex >= 0 && zIndex < len(coord) {
		c, err = coordinate.New3D(coord[0], coord[1], coord[zIndex])
	} else {
		c, err = coordinate.New(coord[0], coord[1])
	}
	if err != nil {
		return coordinate.Coordinate{}, errors.WithMessage(err, ErrInvalidCoordinate.Error())
	}
	return c, nil
}

func fromCoords(coords []geom.Coord, zIndex int) (*coordinate.Sequence, error) {
	seq := coordinate.NewSequence()
	for _, coord := range coords {
		c, err := fromCoord(coord, zIndex)
		if err != nil {
			return nil, err
		}
		seq.Add(c)
	}
	return seq, nil
}

func fromRing(coords []geom.Coord, zIndex int) (geometry.LinearRing, error) {
	seq, err := fromCoords(coords, zIndex)
	if err != nil {
		return geometry.LinearRing{}, err
	}
	return geometry.NewLinearRing(seq)
}

func fromPolygon(rings [][]geom.Coord, zIndex int) (geometry.Polygon, error) {
	var poly geometry.Polygon
	for i, coords := range rings {
		ring, err := fromRing(coords, zIndex)
		if err != nil {
			return geometry.Polygon{}, errors.Wrapf(err, "ring %d", i)
		}
		if i == 0 {
			poly.Exterior = ring
		} else {
			poly.Holes = append(poly.Holes, ring)
		}
	}
	return poly, nil
}

func toCoord(c coordinate.Coordinate, layout geom.Layout) geom.Coord {
	if layout == geom.XYZ {
		return geom.Coord{c.X(), c.Y(), c.Z()}
	}
	return geom.Coord{c.X(), c.Y()}
}

func toCoords(seq *coordinate.Sequence, layout geom.Layout) []geom.Coord {
	coords := make([]geom.Coord, 0, seq.Len())
	it := seq.Iterator()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		coords = append(coords, toCoord(c, layout))
	}
	return coords
}

func toPolygonCoords(p geometry.Polygon, layout geom.Layout) [][]geom.Coord {
	rings := [][]geom.Coord{toCoords(p.Exterior.Sequence(), layout)}
	for _, hole := range p.Holes {
		rings = append(rings, toCoords(hole.Sequence(), layout))
	}
	return rings
}
