package gait

import (
	"math"
	"strings"

	"github.com/rookidroid/hexapod/kinematics"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gait",
})

var (
	ErrInvalidParameter  = kinematics.ErrInvalidParameter
	ErrUnreachableTarget = kinematics.ErrUnreachableTarget
)

type Kind int

const (
	KindWalk Kind = iota
	KindFastWalk
	KindTurn
	KindClimb
	KindRotateX
	KindRotateY
	KindRotateZ
	KindTwist
	KindStandUp
)

// Kinds lists every kind of gait, in order.
var Kinds = []Kind{
	KindWalk,
	KindFastWalk,
	KindTurn,
	KindClimb,
	KindRotateX,
	KindRotateY,
	KindRotateZ,
	KindTwist,
	KindStandUp,
}

var kindNames = map[Kind]string{
	KindWalk:     "walk",
	KindFastWalk: "fastwalk",
	KindTurn:     "turn",
	KindClimb:    "climb",
	KindRotateX:  "rotatex",
	KindRotateY:  "rotatey",
	KindRotateZ:  "rotatez",
	KindTwist:    "twist",
	KindStandUp:  "standup",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind returns the kind with the given name. Case is ignored.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, kinematics.Invalidf("unknown gait: %q", s)
}

// Side is the direction of a turn, seen from above.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Params holds the arguments of every gait. Each gait reads only the fields
// which it needs, and ignores the rest.
type Params struct {
	Steps int

	// Walk, turn, and the translation of RotateX and RotateY.
	Radius float64

	// Walk heading, in degrees counter-clockwise from forwards.
	Direction float64

	// Turn.
	Side Side

	// FastWalk and Climb.
	YRadius float64
	ZRadius float64
	XRadius float64
	ZShift  float64
	Reverse bool

	// RotateX and RotateY.
	SwingAngle float64

	// RotateZ.
	ZLift    float64
	XYRadius float64

	// Twist.
	RaiseAngle float64
	ZAngle     float64
	XAngle     float64

	// StandUp starts from here. When zero, the laydown pose of the default
	// config is used.
	Laydown kinematics.Pose
}

// DefaultParams returns the parameters which the reference robot uses for the
// given kind of gait.
func DefaultParams(k Kind) Params {
	switch k {
	case KindWalk:
		return Params{Steps: 28, Radius: 30, Direction: 0}

	case KindFastWalk:
		return Params{Steps: 20, YRadius: 50, ZRadius: 40, XRadius: 15}

	case KindTurn:
		return Params{Steps: 28, Radius: 35, Side: Left}

	case KindClimb:
		return Params{Steps: 28, YRadius: 20, ZRadius: 80, XRadius: 30, ZShift: -30}

	case KindRotateX, KindRotateY:
		return Params{Steps: 28, SwingAngle: 15, Radius: 15}

	case KindRotateZ:
		return Params{Steps: 28, ZLift: 4.5, XYRadius: 1}

	case KindTwist:
		return Params{Steps: 28, RaiseAngle: 3, ZAngle: 20, XAngle: 12}

	case KindStandUp:
		return Params{Steps: 28}
	}

	return Params{}
}

// Generate returns one cycle of the given kind of gait around the standby
// pose.
func Generate(k Kind, standby kinematics.Pose, p Params) (Trajectory, error) {
	var t Trajectory
	var err error

	switch k {
	case KindWalk:
		t, err = Walk(standby, p.Steps, p.Radius, p.Direction)

	case KindFastWalk:
		t, err = FastWalk(standby, p.Steps, p.YRadius, p.ZRadius, p.XRadius, p.Reverse)

	case KindTurn:
		t, err = Turn(standby, p.Steps, p.Radius, p.Side)

	case KindClimb:
		t, err = Climb(standby, p.Steps, p.YRadius, p.ZRadius, p.XRadius, p.ZShift, p.Reverse)

	case KindRotateX:
		t, err = RotateX(standby, p.Steps, p.SwingAngle, p.Radius)

	case KindRotateY:
		t, err = RotateY(standby, p.Steps, p.SwingAngle, p.Radius)

	case KindRotateZ:
		t, err = RotateZ(standby, p.Steps, p.ZLift, p.XYRadius)

	case KindTwist:
		t, err = Twist(standby, p.Steps, p.RaiseAngle, p.ZAngle, p.XAngle)

	case KindStandUp:
		laydown := p.Laydown
		if laydown == (kinematics.Pose{}) {
			laydown, err = kinematics.DefaultLaydown(kinematics.DefaultConfig())
			if err != nil {
				return nil, err
			}
		}
		t, err = StandUp(standby, laydown, p.Steps)

	default:
		return nil, kinematics.Invalidf("unknown gait: %d", int(k))
	}

	if err != nil {
		return nil, err
	}

	log.Debugf("generated %s with %d waypoints", k, len(t))
	return t, nil
}

func checkSteps(steps, multiple int) error {
	if steps <= 0 || steps%multiple != 0 {
		return kinematics.Invalidf("steps must be a positive multiple of %d, got %d", multiple, steps)
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return kinematics.Invalidf("%s must be finite, got %f", name, v)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return kinematics.Invalidf("%s must be positive, got %f", name, v)
	}
	return nil
}

func checkPose(name string, p kinematics.Pose) error {
	if !p.Finite() {
		return kinematics.Invalidf("%s pose must be finite", name)
	}
	return nil
}

// tile returns a trajectory with the standby pose plus the matching waypoint of
// each leg's path.
func tile(standby kinematics.Pose, paths [kinematics.NumLegs]Path) Trajectory {
	steps := len(paths[0])
	t := make(Trajectory, steps)

	for i := range t {
		for _, leg := range kinematics.Legs {
			t[i][leg] = standby[leg].Add(paths[leg][i])
		}
	}

	return t
}
