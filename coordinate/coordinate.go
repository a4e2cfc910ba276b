// Package coordinate holds the value types every geometry is built from: a
// finite 2D or 3D Coordinate, a hash Set keyed by coordinate value, and the
// ordered Sequence a geometry owns.
package coordinate

import (
	"fmt"
	"math"
	"strconv"
)

// Ordinate indexes.
const (
	X = 0
	Y = 1
	Z = 2
)

// A location in 2 or 3 dimensional space. Coordinates are immutable values:
// every "setter" returns a new Coordinate. All ordinates of a Coordinate built
// through this package are finite, so nothing downstream has to guard against
// NaN. The zero value is the planar origin.
//
// A planar coordinate still has a z, it is just always 0. The dimension is
// tracked separately so that callers who care can tell the two apart, but
// equality and hashing only ever look at the ordinate values.
type Coordinate struct {
	x, y, z float64
	threeD  bool
}

// New builds a planar coordinate. It fails with a *ConstructionError if either
// ordinate is NaN or infinite.
func New(x, y float64) (Coordinate, error) {
	if err := checkFinite(X, x); err != nil {
		return Coordinate{}, err
	}
	if err := checkFinite(Y, y); err != nil {
		return Coordinate{}, err
	}
	return Coordinate{x: x, y: y}, nil
}

// New3D builds a 3D coordinate. It fails with a *ConstructionError if any
// ordinate is NaN or infinite.
func New3D(x, y, z float64) (Coordinate, error) {
	c, err := New(x, y)
	if err != nil {
		return Coordinate{}, err
	}
	if err := checkFinite(Z, z); err != nil {
		return Coordinate{}, err
	}
	c.z = z
	c.threeD = true
	return c, nil
}

// C is the literal shorthand: C(x, y) is planar and C(x, y, z) is 3D. It
// panics with a *ConstructionError on a non-finite ordinate, so it is meant for
// literals and for code that recovers with HandleConstructionPanic. Passing
// more than one z is a programming error.
func C(x, y float64, z ...float64) Coordinate {
	var (
		c   Coordinate
		err error
	)
	switch len(z) {
	case 0:
		c, err = New(x, y)
	case 1:
		c, err = New3D(x, y, z[0])
	default:
		panic(fmt.Sprintf("coordinate: C takes 2 or 3 ordinates, got %d", 2+len(z)))
	}
	if err != nil {
		throw(err)
	}
	return c
}

func (c Coordinate) X() float64 { return c.x }
func (c Coordinate) Y() float64 { return c.y }

// Z is 0 for planar coordinates.
func (c Coordinate) Z() float64 { return c.z }

// Dimension is 2 or 3 depending on how the coordinate was built.
func (c Coordinate) Dimension() int {
	if c.threeD {
		return 3
	}
	return 2
}

func (c Coordinate) Is3D() bool {
	return c.threeD
}

// Ordinate maps 0 to x, 1 to y and 2 to z. Any other index panics.
func (c Coordinate) Ordinate(i int) float64 {
	switch i {
	case X:
		return c.x
	case Y:
		return c.y
	case Z:
		return c.z
	}
	panic(fmt.Sprintf("coordinate: invalid ordinate index %d", i))
}

func (c Coordinate) SetX(x float64) (Coordinate, error) {
	if err := checkFinite(X, x); err != nil {
		return c, err
	}
	c.x = x
	return c, nil
}

func (c Coordinate) SetY(y float64) (Coordinate, error) {
	if err := checkFinite(Y, y); err != nil {
		return c, err
	}
	c.y = y
	return c, nil
}

// SetZ promotes a planar coordinate to 3D.
func (c Coordinate) SetZ(z float64) (Coordinate, error) {
	if err := checkFinite(Z, z); err != nil {
		return c, err
	}
	c.z = z
	c.threeD = true
	return c, nil
}

// SetOrdinate is the indexed form of SetX, SetY and SetZ. An index outside
// {0, 1, 2} panics rather than returning an error; callers are expected to
// have checked it.
func (c Coordinate) SetOrdinate(i int, v float64) (Coordinate, error) {
	switch i {
	case X:
		return c.SetX(v)
	case Y:
		return c.SetY(v)
	case Z:
		return c.SetZ(v)
	}
	panic(fmt.Sprintf("coordinate: invalid ordinate index %d", i))
}

// IsValid reports whether every ordinate is finite. This always holds for
// coordinates built through this package.
func (c Coordinate) IsValid() bool {
	return isFinite(c.x) && isFinite(c.y) && isFinite(c.z)
}

// Equals2D compares the planar projections exactly.
func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.x == other.x && c.y == other.y
}

// Equals3D compares x, y and z exactly. The implicit z of a planar coordinate
// takes part, so C(1, 2) equals C(1, 2, 0).
func (c Coordinate) Equals3D(other Coordinate) bool {
	return c.Equals2D(other) && c.z == other.z
}

// Equal is structural equality, which is Equals3D. Sets and sequences use it.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Equals3D(other)
}

func (c Coordinate) Equals2DWithTolerance(other Coordinate, tolerance float64) bool {
	return within(c.x, other.x, tolerance) && within(c.y, other.y, tolerance)
}

func (c Coordinate) Equals3DWithTolerance(other Coordinate, tolerance float64) bool {
	return c.Equals2DWithTolerance(other, tolerance) && c.EqualsInZ(other, tolerance)
}

// EqualsInZ only looks at the z gap.
func (c Coordinate) EqualsInZ(other Coordinate, tolerance float64) bool {
	return within(c.z, other.z, tolerance)
}

// Key is the hashable identity of a coordinate: the bit patterns of x, y and
// z. Two coordinates have the same key exactly when they are Equal.
type Key [3]uint64

func (c Coordinate) Key() Key {
	return Key{bits(c.x), bits(c.y), bits(c.z)}
}

// String renders "(x, y, z)" with the shortest decimal form of each ordinate.
func (c Coordinate) String() string {
	return "(" + format(c.x) + ", " + format(c.y) + ", " + format(c.z) + ")"
}

func within(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// -0 == 0 for Equal, so the two have to share a key.
func bits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
