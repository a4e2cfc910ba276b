package geometry

// Operations provided by components outside this package. This package only
// names them; an implementation that cannot handle a kind returns
// ErrUnsupported.

// Encoder writes a geometry in some external format, such as WKT, WKB or
// GeoJSON.
type Encoder interface {
	Encode(g Geometry) ([]byte, error)
}

type Decoder interface {
	Decode(data []byte) (Geometry, error)
}

// Relater evaluates a named topological predicate (contains, crosses,
// overlaps, touches, within and so on) or a DE-9IM pattern.
type Relater interface {
	Relate(a, b Geometry, pattern string) (bool, error)
}

// Constructor covers the operations that build new geometry: buffering, hulls
// and overlay.
type Constructor interface {
	Buffer(g Geometry, distance float64) (Geometry, error)
	ConvexHull(g Geometry) (Geometry, error)
	Union(a, b Geometry) (Geometry, error)
	Intersection(a, b Geometry) (Geometry, error)
	Difference(a, b Geometry) (Geometry, error)
}

// Transformer reprojects between spatial reference systems.
type Transformer interface {
	Transform(g Geometry, fromSRID, toSRID int) (Geometry, error)
}
