package kinematics

import (
	"fmt"
)

// Leg identifies one of the six legs. The index is the row of the leg in every
// Pose and JointAngles, and never changes. The names describe the default
// geometry; nothing in the engine depends on where a leg physically is.
type Leg int

const (
	RightFront  Leg = 0
	RightMiddle Leg = 1
	RightRear   Leg = 2
	LeftFront   Leg = 3
	LeftMiddle  Leg = 4
	LeftRear    Leg = 5

	NumLegs = 6
)

var (
	// Legs lists every leg in index order.
	Legs = [NumLegs]Leg{RightFront, RightMiddle, RightRear, LeftFront, LeftMiddle, LeftRear}

	// The two alternating tripods. Each one is statically stable on its own, so
	// one can swing while the other supports the body.
	TripodA = [3]Leg{RightFront, RightRear, LeftMiddle}
	TripodB = [3]Leg{RightMiddle, LeftFront, LeftRear}
)

var legNames = [NumLegs]string{"RF", "RM", "RR", "LF", "LM", "LR"}

func (l Leg) String() string {
	if l.Valid() {
		return legNames[l]
	}
	return fmt.Sprintf("Leg(%d)", int(l))
}

func (l Leg) Valid() bool {
	return l >= 0 && l < NumLegs
}

// Tripod returns the tripod the leg belongs to.
func (l Leg) Tripod() [3]Leg {
	if l%2 == 0 {
		return TripodA
	}
	return TripodB
}
