package gogeom

import (
	"encoding/binary"

	"github.com/osuushi/compass/geometry"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// WKB encodes and decodes well known binary through go-geom. The zero value
// writes little endian.
type WKB struct {
	ByteOrder binary.ByteOrder
}

func (c WKB) Encode(g geometry.Geometry) ([]byte, error) {
	t, err := To(written(g))
	if err != nil {
		return nil, err
	}
	byteOrder := c.ByteOrder
	if byteOrder == nil {
		byteOrder = wkb.NDR
	}
	data, err := wkb.Marshal(t, byteOrder)
	return data, errors.Wrap(err, "wkb")
}

func (WKB) Decode(data []byte) (geometry.Geometry, error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "wkb")
	}
	return From(t)
}

// GeoJSON encodes and decodes a bare GeoJSON geometry object.
type GeoJSON struct{}

func (GeoJSON) Encode(g geometry.Geometry) ([]byte, error) {
	t, err := To(written(g))
	if err != nil {
		return nil, err
	}
	data, err := geojson.Marshal(t)
	return data, errors.Wrap(err, "geojson")
}

func (GeoJSON) Decode(data []byte) (geometry.Geometry, error) {
	var t geom.T
	if err := geojson.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "geojson")
	}
	return From(t)
}

// Neither format has a standalone ring, so rings are written as the closed line
// strings they are. Decoding gives back a LineString.
func written(g geometry.Geometry) geometry.Geometry {
	switch g := g.(type) {
	case geometry.LinearRing:
		return geometry.NewLineString(g.Sequence())
	case geometry.GeometryCollection:
		members := make([]geometry.Geometry, len(g.Geometries))
		for i, member := range g.Geometries {
			members[i] = written(member)
		}
		return geometry.GeometryCollection{Geometries: members}
	}
	return g
}

var (
	_ geometry.Encoder = WKB{}
	_ geometry.Decoder = WKB{}
	_ geometry.Encoder = GeoJSON{}
	_ geometry.Decoder = GeoJSON{}
)
