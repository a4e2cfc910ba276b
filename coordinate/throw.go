package coordinate

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Causes of a ConstructionError. Use errors.Cause (or errors.Is) to tell them
// apart.
var (
	ErrNaNValue      = errors.New("ordinate is NaN")
	ErrInfiniteValue = errors.New("ordinate is infinite")
)

type ErrorKind int

const (
	NaNValue ErrorKind = iota + 1
	InfiniteValue
)

func (k ErrorKind) String() string {
	switch k {
	case NaNValue:
		return "NaNValue"
	case InfiniteValue:
		return "InfiniteValue"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ConstructionError is returned when a coordinate would be built from a
// non-finite ordinate.
type ConstructionError struct {
	Kind     ErrorKind
	Ordinate int
	Value    float64
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid %s ordinate %v: %v", ordinateName(e.Ordinate), e.Value, e.Cause())
}

func (e *ConstructionError) Cause() error {
	if e.Kind == NaNValue {
		return ErrNaNValue
	}
	return ErrInfiniteValue
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause()
}

func checkFinite(ordinate int, v float64) error {
	switch {
	case math.IsNaN(v):
		return &ConstructionError{Kind: NaNValue, Ordinate: ordinate, Value: v}
	case math.IsInf(v, 0):
		return &ConstructionError{Kind: InfiniteValue, Ordinate: ordinate, Value: v}
	}
	return nil
}

func ordinateName(i int) string {
	switch i {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("#%d", i)
}

// Literal helpers like C have no error return, so they panic with the
// *ConstructionError instead. Public entry points that take untrusted data
// recover it with HandleConstructionPanic and return it as an ordinary error.

func throw(err error) {
	panic(err)
}

// HandleConstructionPanic converts a recovered *ConstructionError into an
// error. A nil recovery returns nil. Anything else is a genuine bug and is
// panicked again.
//
//	defer func() {
//		if recovered := coordinate.HandleConstructionPanic(recover()); recovered != nil {
//			err = recovered
//		}
//	}()
func HandleConstructionPanic(r interface{}) error {
	if r != nil {
		if constructionError, ok := r.(*ConstructionError); ok {
			return constructionError
		}
		panic(r)
	}
	return nil
}
