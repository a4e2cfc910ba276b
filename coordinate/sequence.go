package coordinate

import "fmt"

// Sequence is the ordered list of coordinates a geometry owns. Order is the
// geometric point order. Duplicates are allowed; whether they are acceptable is
// up to the geometry.
//
// Mutators work in place and are not safe for concurrent use. To give a
// sequence to another reader while continuing to modify it, hand over a Clone.
type Sequence struct {
	coords []Coordinate
}

// NewSequence takes ownership of coords.
func NewSequence(coords ...Coordinate) *Sequence {
	return &Sequence{coords: coords}
}

func (s *Sequence) Len() int {
	return len(s.coords)
}

func (s *Sequence) IsEmpty() bool {
	return len(s.coords) == 0
}

// Get returns false if i is out of range.
func (s *Sequence) Get(i int) (Coordinate, bool) {
	if i < 0 || i >= len(s.coords) {
		return Coordinate{}, false
	}
	return s.coords[i], true
}

func (s *Sequence) First() (Coordinate, bool) {
	return s.Get(0)
}

func (s *Sequence) Last() (Coordinate, bool) {
	return s.Get(len(s.coords) - 1)
}

// Set replaces the coordinate at i. It panics if i is out of range.
func (s *Sequence) Set(i int, c Coordinate) {
	s.mustIndex(i)
	s.coords[i] = c
}

func (s *Sequence) Add(coords ...Coordinate) {
	s.coords = append(s.coords, coords...)
}

// Remove deletes and returns the coordinate at i. It panics if i is out of
// range.
func (s *Sequence) Remove(i int) Coordinate {
	s.mustIndex(i)
	c := s.coords[i]
	s.coords = append(s.coords[:i], s.coords[i+1:]...)
	return c
}

func (s *Sequence) Reverse() {
	for i, j := 0, len(s.coords)-1; i < j; i, j = i+1, j-1 {
		s.coords[i], s.coords[j] = s.coords[j], s.coords[i]
	}
}

// Coordinates returns a copy of the coordinates in order.
func (s *Sequence) Coordinates() []Coordinate {
	return append([]Coordinate(nil), s.coords...)
}

func (s *Sequence) Clone() *Sequence {
	return &Sequence{coords: s.Coordinates()}
}

// HasDuplicates reports whether any two coordinates are Equal. Note that a
// closed ring has a duplicate by construction.
func (s *Sequence) HasDuplicates() bool {
	set := NewSet(len(s.coords))
	for _, c := range s.coords {
		if !set.Add(c) {
			return true
		}
	}
	return false
}

// IsClosed is true when there are at least two coordinates and the first
// equals the last.
func (s *Sequence) IsClosed() bool {
	if len(s.coords) < 2 {
		return false
	}
	return s.coords[0].Equal(s.coords[len(s.coords)-1])
}

// Iterator returns a single pass, front to back cursor over the sequence. The
// sequence must not be modified while the iterator is in use.
func (s *Sequence) Iterator() *Iterator {
	return &Iterator{coords: s.coords}
}

func (s *Sequence) String() string {
	return fmt.Sprint(s.coords)
}

func (s *Sequence) mustIndex(i int) {
	if i < 0 || i >= len(s.coords) {
		panic(fmt.Sprintf("coordinate: index %d out of range [0, %d)", i, len(s.coords)))
	}
}

// Iterator walks a run of coordinates once.
type Iterator struct {
	coords []Coordinate
	next   int
}

// Iterate walks a plain slice.
func Iterate(coords []Coordinate) *Iterator {
	return &Iterator{coords: coords}
}

// Next returns the next coordinate, or false once the run is exhausted.
func (it *Iterator) Next() (Coordinate, bool) {
	if it.next >= len(it.coords) {
		return Coordinate{}, false
	}
	c := it.coords[it.next]
	it.next++
	return c, true
}

// Remaining is the number of coordinates Next has yet to return.
func (it *Iterator) Remaining() int {
	return len(it.coords) - it.next
}
