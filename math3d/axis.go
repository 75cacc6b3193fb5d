package math3d

import (
	"fmt"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotation returns a rotation of deg degrees around the given axis.
func Rotation(a Axis, deg float64) Matrix44 {
	switch a {
	case AxisX:
		return RotateX(deg)

	case AxisY:
		return RotateY(deg)

	case AxisZ:
		return RotateZ(deg)

	default:
		panic("invalid axis")
	}
}

// Offset returns a translation of d along the given axis.
func Offset(a Axis, d float64) Matrix44 {
	switch a {
	case AxisX:
		return Translate(d, 0, 0)

	case AxisY:
		return Translate(0, d, 0)

	case AxisZ:
		return Translate(0, 0, d)

	default:
		panic("invalid axis")
	}
}
