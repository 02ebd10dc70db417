package advanced

import "github.com/pkg/errors"

// The geometry itself is total, so the only failures are misuse, such as
// decomposing a triangle with a non-positive leg. Rather than threading errors
// through every helper, we panic with a LatticeError, and the public API
// recovers to convert it into an error.

// Wrapping in a struct keeps runtime errors, which are also errors, from being
// mistaken for ours.
type LatticeError struct {
	error
}

// Panic with a LatticeError.
func fatalf(format string, args ...interface{}) {
	panic(LatticeError{errors.Errorf(format, args...)})
}

func HandleLatticePanicRecover(r interface{}) error {
	if r != nil {
		if latticeError, ok := r.(LatticeError); ok {
			return latticeError.error
		}
		panic(r)
	}
	return nil
}
