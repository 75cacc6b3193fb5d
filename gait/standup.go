package gait

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/math3d"
	"gonum.org/v1/gonum/floats"
)

// The number of waypoints spent lifting the body off the ground, before the
// legs are moved in.
const LiftSteps = 10

// StandUp returns the (non-cyclic) sequence which lifts the body from the
// laydown pose to the standby pose. First every foot is pushed down until the
// body is at standing height, then TripodB steps to standby, then TripodA.
func StandUp(standby, laydown kinematics.Pose, steps int) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkPose("laydown", laydown); err != nil {
		return nil, err
	}

	adjust := (steps - LiftSteps) / 2
	if steps <= LiftSteps || adjust < 1 {
		return nil, kinematics.Invalidf("stand up needs at least %d steps, got %d", LiftSteps+2, steps)
	}

	t := make(Trajectory, steps)

	// Lift. X and Y stay where they were.
	var zs [kinematics.NumLegs][]float64
	for _, leg := range kinematics.Legs {
		zs[leg] = floats.Span(make([]float64, LiftSteps), laydown[leg].Z, standby[leg].Z)
	}

	for i := 0; i < LiftSteps; i++ {
		for _, leg := range kinematics.Legs {
			t[i][leg] = r3.Vector{X: laydown[leg].X, Y: laydown[leg].Y, Z: zs[leg][i]}
		}
	}

	lifted := t[LiftSteps-1]

	var arcs [kinematics.NumLegs]Path
	for _, leg := range kinematics.Legs {
		arcs[leg] = arc(lifted[leg], standby[leg], adjust)
	}

	// Move each tripod in turn, while every other leg holds still.
	n := LiftSteps
	cur := lifted
	for _, tripod := range [][3]kinematics.Leg{kinematics.TripodB, kinematics.TripodA} {
		for i := 0; i < adjust; i++ {
			t[n] = cur
			for _, leg := range tripod {
				t[n][leg] = arcs[leg][i]
			}
			n++
		}
		cur = t[n-1]
	}

	// An odd number of adjusting steps doesn't split between the tripods, so the
	// remainder just holds.
	for ; n < steps; n++ {
		t[n] = standby
	}

	log.Debugf("stand up: lift=%d adjust=%d hold=%d", LiftSteps, adjust, steps-LiftSteps-2*adjust)
	return t, nil
}

// arc returns the n waypoints of a semicircular step from one point to another
// at the same height, excluding the start and including the end.
func arc(from, to r3.Vector, n int) Path {
	d := to.Sub(from)
	dist := math.Hypot(d.X, d.Y)
	heading := math3d.Deg(math.Atan2(d.Y, d.X))
	r := dist / 2
	step := math.Pi / float64(n)

	base := make(Path, n)
	for i := range base {
		a := float64(i+1) * step
		base[i] = r3.Vector{X: r - r*math.Cos(a), Z: r * math.Sin(a)}
	}

	p := Path(math3d.TransformPath(math3d.RotateZ(heading), base)).Shift(from)
	p[n-1] = to
	return p
}
