package geometry

import "github.com/pkg/errors"

// Threading errors up and down the insertion and flipping loops would add a
// lot of noise. Instead, we panic with a geometryPanic, and every exported
// constructor recovers to convert it to an error. Any other panic is a bug and
// is re-raised.

type geometryPanic struct {
	err error
}

func fatalf(format string, args ...interface{}) {
	panic(geometryPanic{errors.Errorf(format, args...)})
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(geometryPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}

// Like fatalf, keeping err as the cause.
func wrapf(err error, format string, args ...interface{}) {
	panic(geometryPanic{errors.Wrapf(err, format, args...)})
}
