package kinematics

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is matched (with errors.Is) by every error caused by
	// malformed geometry or gait parameters.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnreachableTarget is matched by every UnreachableError.
	ErrUnreachableTarget = errors.New("unreachable target")
)

// Invalidf returns an error wrapping ErrInvalidParameter.
func Invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// UnreachableError is returned when a foot tip target lies outside of the
// annulus which the femur and tibia can reach from joint 2.
type UnreachableError struct {
	Leg    Leg
	Target r3.Vector

	// Distance from joint 2 to the target, and the closest and furthest
	// distances that the leg can reach.
	Distance float64
	Min      float64
	Max      float64
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("%s: leg %s cannot reach %v (distance %.2f, reach %.2f..%.2f)",
		ErrUnreachableTarget, e.Leg, e.Target, e.Distance, e.Min, e.Max)
}

func (e *UnreachableError) Is(target error) bool {
	return target == ErrUnreachableTarget
}
