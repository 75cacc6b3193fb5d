package legs

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/servos"
)

type Leg struct {
	Index kinematics.Leg

	// The last foot position sent to this leg, and the joint angles which were
	// solved to reach it.
	Goal   r3.Vector
	Joints kinematics.Joints
}

func NewLeg(i kinematics.Leg) *Leg {
	return &Leg{Index: i}
}

func (leg *Leg) Name() string {
	return leg.Index.String()
}

// MoveTo sends the joint angles to the driver, and records the goal which they
// were solved for.
func (leg *Leg) MoveTo(d servos.Driver, goal r3.Vector, j kinematics.Joints) error {
	err := d.Move(leg.Index, j)
	if err != nil {
		return errors.Wrapf(err, "while moving %s", leg.Name())
	}

	leg.Goal = goal
	leg.Joints = j
	return nil
}

// Position returns the position of the foot, calculated from the joint angles
// most recently sent to it.
func (leg *Leg) Position(cfg kinematics.Config) r3.Vector {
	chain := kinematics.Chain(leg.Index, leg.Joints, cfg)
	return chain[len(chain)-1].End()
}
