package kinematics

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
)

// Pose holds the foot tip position of every leg, in the body frame.
type Pose [NumLegs]r3.Vector

// Add returns a new pose with the given offset added to the leg indicated.
func (p Pose) Add(leg Leg, v r3.Vector) Pose {
	p[leg] = p[leg].Add(v)
	return p
}

// Finite returns false if any coordinate is NaN or infinite.
func (p Pose) Finite() bool {
	for _, v := range p {
		if !finite(v.X, v.Y, v.Z) {
			return false
		}
	}
	return true
}

func (p Pose) String() string {
	s := make([]string, NumLegs)
	for i, v := range p {
		s[i] = fmt.Sprintf("%s:(%.2f, %.2f, %.2f)", Leg(i), v.X, v.Y, v.Z)
	}
	return "&Pose{" + strings.Join(s, " ") + "}"
}

// Joints are the angles (in degrees) of the three joints of one leg. Coxa is
// the yaw of joint 1, femur and tibia are the pitch of joints 2 and 3.
type Joints struct {
	Coxa  float64 `json:"coxa"`
	Femur float64 `json:"femur"`
	Tibia float64 `json:"tibia"`
}

func (j Joints) String() string {
	return fmt.Sprintf("&Joints{c=%.2f f=%.2f t=%.2f}", j.Coxa, j.Femur, j.Tibia)
}

// JointAngles holds the joints of every leg.
type JointAngles [NumLegs]Joints
