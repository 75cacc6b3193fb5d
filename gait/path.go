package gait

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/math3d"
)

// Path is the sequence of offsets which a single foot follows over one gait
// cycle, relative to its standby position.
type Path []r3.Vector

// Trajectory is the sequence of poses which make up one gait cycle. The first
// pose is the start of the cycle, and the cycle can be looped.
type Trajectory []kinematics.Pose

// Length returns the number of waypoints necessary to complete a full cycle of
// the gait.
func (t Trajectory) Length() int {
	return len(t)
}

// SemicircleSwing returns the path of a single foot which pushes backwards
// along the Y axis for half of the cycle (the stance), and then swings forwards
// through the air along a semicircle of the same radius (the swing).
//
// The path is rolled by a quarter cycle, so it starts at the top of the swing
// and reaches the front of the stance at steps/4. When reverse is true, the
// path is traversed backwards.
func SemicircleSwing(radius float64, steps int, reverse bool) (Path, error) {
	if err := checkSteps(steps, 4); err != nil {
		return nil, err
	}

	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}

	half := steps / 2
	h := float64(half)
	p := make(Path, steps)

	for i := 0; i < half; i++ {
		p[i] = r3.Vector{Y: radius - float64(i)*2*radius/h}
	}

	for i := 0; i < half; i++ {
		a := math.Pi - float64(i)*math.Pi/h
		p[half+i] = r3.Vector{Y: radius * math.Cos(a), Z: radius * math.Sin(a)}
	}

	return phase(p, reverse), nil
}

// SemicircleSwing3Axis is like SemicircleSwing, but the swing is an ellipse
// with independent radii, and bulges outwards on the X axis. The sign of
// xRadius selects which way it bulges, so mirrored legs pass a negative one.
// The number of steps only needs to be even.
func SemicircleSwing3Axis(steps int, yRadius, zRadius, xRadius float64, reverse bool) (Path, error) {
	if err := checkSteps(steps, 2); err != nil {
		return nil, err
	}

	if err := checkPositive("y radius", yRadius); err != nil {
		return nil, err
	}

	if err := checkPositive("z radius", zRadius); err != nil {
		return nil, err
	}

	if err := checkFinite("x radius", xRadius); err != nil {
		return nil, err
	}

	half := steps / 2
	h := float64(half)
	p := make(Path, steps)

	for i := 0; i < half; i++ {
		p[i] = r3.Vector{Y: yRadius - float64(i)*2*yRadius/h}
	}

	for i := 0; i < half; i++ {
		a := math.Pi - float64(i)*math.Pi/h
		p[half+i] = r3.Vector{
			X: xRadius * math.Sin(a),
			Y: yRadius * math.Cos(a),
			Z: zRadius * math.Sin(a),
		}
	}

	return phase(p, reverse), nil
}

// phase rolls the path by a quarter cycle, and optionally reverses it. After
// reversing, it's rolled by one more so that the top of the swing stays at the
// start.
func phase(p Path, reverse bool) Path {
	out := math3d.Roll(p, len(p)/4)

	if reverse {
		slices.Reverse(out)
		out = math3d.Roll(out, 1)
	}

	return out
}

// Shift returns a copy of the path with the offset added to every waypoint.
func (p Path) Shift(v r3.Vector) Path {
	out := make(Path, len(p))
	for i := range p {
		out[i] = p[i].Add(v)
	}
	return out
}
