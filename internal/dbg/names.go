// Package dbg has helpers for looking at coordinates and lines while
// debugging. None of it is needed to use the library.
package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/compass/coordinate"
)

// This converts coordinates into random readable names, which are easier to
// tell apart in a long trace than strings of digits. Equal coordinates get the
// same name. It never forgets a name, so it leaks memory, but names are only
// generated on demand, so that only matters if you actually use it.

var memo map[coordinate.Key]string

func init() {
	memo = make(map[coordinate.Key]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same coordinate between runs.
	petname.NonDeterministicMode()
}

func Name(c coordinate.Coordinate) string {
	k := c.Key()
	if r, ok := memo[k]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[k] = r
	return r
}
