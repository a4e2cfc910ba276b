package coordinate

// Set is a hash set of coordinates under structural equality.
type Set map[Key]struct{}

// NewSet pre-sizes the set for about n coordinates.
func NewSet(n int) Set {
	return make(Set, n)
}

// Add inserts c and reports whether it was not already present.
func (s Set) Add(c Coordinate) bool {
	k := c.Key()
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

func (s Set) Contains(c Coordinate) bool {
	_, ok := s[c.Key()]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Equals(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}
