package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/math3d"
)

// Femur and tibia angles of the reference postures. Standby is the neutral
// standing pose which every gait is built around, and laydown is the pose with
// the body resting on the ground.
const (
	StandbyFemur = 60.0
	StandbyTibia = 75.0
	LaydownFemur = 40.0
	LaydownTibia = 105.0
)

// ForwardPosture returns the pose reached when every coxa is centered (so each
// leg points straight out along its mount angle), and every femur and tibia is
// at the given angle. The angles are in the same convention that Solve returns,
// so solving the result gives back (90, j2, j3) for each leg.
func ForwardPosture(j2, j3 float64, cfg Config) (Pose, error) {
	var p Pose

	if err := cfg.Validate(); err != nil {
		return p, err
	}

	if !finite(j2, j3) {
		return p, Invalidf("non-finite joint angles: %f, %f", j2, j3)
	}

	for _, leg := range Legs {
		p[leg] = tipPosition(leg, Joints{Coxa: 90, Femur: j2, Tibia: j3}, cfg)
	}

	return p, nil
}

// DefaultStandby returns the standby pose for the given geometry.
func DefaultStandby(cfg Config) (Pose, error) {
	return ForwardPosture(StandbyFemur, StandbyTibia, cfg)
}

// DefaultLaydown returns the laydown pose for the given geometry.
func DefaultLaydown(cfg Config) (Pose, error) {
	return ForwardPosture(LaydownFemur, LaydownTibia, cfg)
}

// LinkPosture returns the pose with every leg pointing straight out, the femur
// at j2 degrees from vertical, and the tibia at j3 degrees below horizontal.
// This is how postures are measured on the physical robot, rather than how the
// servos are driven.
func LinkPosture(j2, j3 float64, cfg Config) (Pose, error) {
	var p Pose

	if err := cfg.Validate(); err != nil {
		return p, err
	}

	a2, a3 := math3d.Rad(j2), math3d.Rad(j3)
	out := cfg.RootToJoint1 + cfg.Joint1ToJoint2 + cfg.Joint2ToJoint3*math.Sin(a2) + cfg.Joint3ToTip*math.Cos(a3)
	z := cfg.Joint2ToJoint3*math.Cos(a2) - cfg.Joint3ToTip*math.Sin(a3)

	for _, leg := range Legs {
		a := math3d.Rad(cfg.MountAngle[leg])
		p[leg] = cfg.Mount(leg).Add(r3.Vector{X: out * math.Cos(a), Y: out * math.Sin(a), Z: z})
	}

	return p, nil
}

// tipPosition is the closed form inverse of solveLeg.
func tipPosition(leg Leg, j Joints, cfg Config) r3.Vector {
	s := cfg.Scale[leg]

	// Elevation of the femur above horizontal, and the inner angle at joint 3.
	e := math3d.Rad((90 - j.Femur) / s)
	k := math3d.Rad(90 + (j.Tibia-90)/s)

	px := cfg.Joint2ToJoint3*math.Cos(e) + cfg.Joint3ToTip*math.Cos(e+k-math.Pi)
	pz := cfg.Joint2ToJoint3*math.Sin(e) + cfg.Joint3ToTip*math.Sin(e+k-math.Pi)

	r := px + cfg.Joint1ToJoint2
	h := math3d.Rad(90 - j.Coxa)
	x := r*math.Cos(h) + cfg.RootToJoint1
	y := r * math.Sin(h)

	// The leg frame is a reflection of the body frame, so this is the same
	// transform that solveLeg uses to go the other way.
	a := math3d.Rad(cfg.MountAngle[leg])
	c, sn := math.Cos(a), math.Sin(a)

	return cfg.Mount(leg).Add(r3.Vector{X: x*c + y*sn, Y: x*sn - y*c, Z: pz})
}
