package gait

import (
	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/math3d"
)

// Heading of each leg's swing while turning left. Turning right is the same
// plus 180 degrees.
var turnAngles = [kinematics.NumLegs]float64{
	kinematics.RightFront:  45,
	kinematics.RightMiddle: 0,
	kinematics.RightRear:   315,
	kinematics.LeftFront:   135,
	kinematics.LeftMiddle:  180,
	kinematics.LeftRear:    225,
}

// Walk returns a tripod gait which moves the body in the given direction
// (degrees counter-clockwise from forwards). TripodA follows the swing path,
// and TripodB follows the same path half a cycle later, so one tripod is
// always on the ground.
func Walk(standby kinematics.Pose, steps int, radius, direction float64) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkFinite("direction", direction); err != nil {
		return nil, err
	}

	p, err := SemicircleSwing(radius, steps, false)
	if err != nil {
		return nil, err
	}

	a := Path(math3d.TransformPath(math3d.RotateZ(direction), p))
	b := math3d.Roll(a, steps/2)

	var paths [kinematics.NumLegs]Path
	for _, leg := range kinematics.TripodA {
		paths[leg] = a
	}
	for _, leg := range kinematics.TripodB {
		paths[leg] = b
	}

	return tile(standby, paths), nil
}

// FastWalk returns a faster walking gait, in which the feet swing outwards
// along elliptical paths. When reverse is true, it walks backwards.
func FastWalk(standby kinematics.Pose, steps int, yRadius, zRadius, xRadius float64, reverse bool) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkSteps(steps, 2); err != nil {
		return nil, err
	}

	right, left, err := sidePaths(steps, yRadius, zRadius, xRadius, reverse)
	if err != nil {
		return nil, err
	}

	return tile(standby, pairPaths(right, left)), nil
}

// Turn returns a gait which rotates the body in place. Each foot swings along
// the tangent of the circle through the feet.
func Turn(standby kinematics.Pose, steps int, radius float64, side Side) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if side != Left && side != Right {
		return nil, kinematics.Invalidf("invalid turn direction: %d", int(side))
	}

	p, err := SemicircleSwing(radius, steps, false)
	if err != nil {
		return nil, err
	}

	var paths [kinematics.NumLegs]Path
	for _, leg := range kinematics.Legs {
		a := turnAngles[leg]
		if side == Right {
			a += 180
		}

		lp := Path(math3d.TransformPath(math3d.RotateZ(a), p))
		if leg%2 == 1 {
			lp = math3d.Roll(lp, steps/2)
		}

		paths[leg] = lp
	}

	return tile(standby, paths), nil
}

// Climb is like FastWalk, with much higher steps, and with the whole path
// shifted on the Z axis so the body is raised.
func Climb(standby kinematics.Pose, steps int, yRadius, zRadius, xRadius, zShift float64, reverse bool) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkSteps(steps, 4); err != nil {
		return nil, err
	}

	if err := checkFinite("z shift", zShift); err != nil {
		return nil, err
	}

	right, left, err := sidePaths(steps, yRadius, zRadius, xRadius, reverse)
	if err != nil {
		return nil, err
	}

	shift := r3.Vector{Z: zShift}
	return tile(standby, pairPaths(right.Shift(shift), left.Shift(shift))), nil
}

// sidePaths returns the swing paths of the right and left legs, which bulge in
// opposite directions on the X axis.
func sidePaths(steps int, yRadius, zRadius, xRadius float64, reverse bool) (Path, Path, error) {
	right, err := SemicircleSwing3Axis(steps, yRadius, zRadius, xRadius, reverse)
	if err != nil {
		return nil, nil, err
	}

	left, err := SemicircleSwing3Axis(steps, yRadius, zRadius, -xRadius, reverse)
	if err != nil {
		return nil, nil, err
	}

	return right, left, nil
}

// pairPaths assigns the side paths to legs. Legs 0, 2, and 4 follow their
// side's path, and legs 1, 3, and 5 follow it half a cycle later.
func pairPaths(right, left Path) [kinematics.NumLegs]Path {
	half := len(right) / 2
	mright := math3d.Roll(right, half)
	mleft := math3d.Roll(left, half)

	return [kinematics.NumLegs]Path{
		kinematics.RightFront:  right,
		kinematics.RightMiddle: mright,
		kinematics.RightRear:   right,
		kinematics.LeftFront:   mleft,
		kinematics.LeftMiddle:  left,
		kinematics.LeftRear:    mleft,
	}
}
