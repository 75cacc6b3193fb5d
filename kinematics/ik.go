package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/math3d"
	"go.uber.org/multierr"
)

// Solve returns the joint angles which put the tip of every leg at the matching
// position of the target pose. Every leg is solved, and if any of them can't
// reach, the returned error contains one UnreachableError for each of those.
func Solve(target Pose, cfg Config) (JointAngles, error) {
	var out JointAngles

	if err := cfg.Validate(); err != nil {
		return out, err
	}

	var errs error
	for _, leg := range Legs {
		j, err := solveLeg(leg, target[leg], cfg)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		out[leg] = j
	}

	if errs != nil {
		log.Debugf("failed to solve %s: %s", target, errs)
		return JointAngles{}, errs
	}

	return out, nil
}

// SolveLeg returns the joint angles which put the tip of a single leg at the
// given point in the body frame.
func SolveLeg(leg Leg, target r3.Vector, cfg Config) (Joints, error) {
	if !leg.Valid() {
		return Joints{}, Invalidf("no such leg: %d", int(leg))
	}

	if err := cfg.Validate(); err != nil {
		return Joints{}, err
	}

	return solveLeg(leg, target, cfg)
}

func solveLeg(leg Leg, target r3.Vector, cfg Config) (Joints, error) {
	l2 := cfg.Joint2ToJoint3
	l3 := cfg.Joint3ToTip

	// Move the target into the leg frame, with X pointing along the mount angle.
	// Note that the Y axis of this frame is flipped, which is why the coxa angle
	// is ninety minus the heading rather than plus it.
	a := math3d.Rad(cfg.MountAngle[leg])
	c, s := math.Cos(a), math.Sin(a)
	t := target.Sub(cfg.Mount(leg))
	x := t.X*c + t.Y*s - cfg.RootToJoint1
	y := t.X*s - t.Y*c

	coxa := 90 - math3d.Deg(math.Atan2(y, x))

	// Everything after the coxa happens on the vertical plane through joint 1 and
	// the target, so this is just a triangle between joint 2, joint 3, and the
	// target:
	//
	//            (j3)
	//           /    \
	//         l2      l3
	//         /        \
	//      (j2)---lr---(tip)
	//
	h := math.Hypot(x, y)
	px := h - cfg.Joint1ToJoint2
	pz := t.Z
	lr := math.Hypot(px, pz)

	c1 := (lr*lr + l2*l2 - l3*l3) / (2 * l2 * lr)
	c2 := (lr*lr - l2*l2 + l3*l3) / (2 * l3 * lr)

	// A target straight above or below joint 1 leaves the coxa angle undefined.
	if h < 1e-9 || lr == 0 || !inDomain(c1) || !inDomain(c2) {
		lo, hi := cfg.Reach()
		return Joints{}, &UnreachableError{
			Leg:      leg,
			Target:   target,
			Distance: lr,
			Min:      lo,
			Max:      hi,
		}
	}

	a1 := math.Acos(c1)
	a2 := math.Acos(c2)
	ar := math.Atan2(pz, px)
	scale := cfg.Scale[leg]

	return Joints{
		Coxa:  coxa,
		Femur: 90 - math3d.Deg(ar+a1)*scale,
		Tibia: (90-math3d.Deg(a1+a2))*scale + 90,
	}, nil
}

// inDomain returns true if v is a valid argument to acos. NaN is not.
func inDomain(v float64) bool {
	return v >= -1 && v <= 1
}
