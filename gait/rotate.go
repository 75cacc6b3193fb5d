package gait

import (
	"math"

	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/math3d"
)

// RotateX returns a gait which rocks the body around the X axis, while
// sliding it back and forth along the Y axis. The feet stay on the ground.
func RotateX(standby kinematics.Pose, steps int, swingAngle, radius float64) (Trajectory, error) {
	return rock(standby, steps, swingAngle, radius, math3d.AxisX, math3d.AxisY)
}

// RotateY is like RotateX, but rocks around the Y axis and slides along X.
func RotateY(standby kinematics.Pose, steps int, swingAngle, radius float64) (Trajectory, error) {
	// Slides along X, not Y as the firmware tables did, so the slide stays
	// perpendicular to the rocking axis.
	return rock(standby, steps, swingAngle, radius, math3d.AxisY, math3d.AxisX)
}

func rock(standby kinematics.Pose, steps int, swingAngle, radius float64, rot, off math3d.Axis) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkSteps(steps, 4); err != nil {
		return nil, err
	}

	if err := checkFinite("swing angle", swingAngle); err != nil {
		return nil, err
	}

	if err := checkPositive("radius", radius); err != nil {
		return nil, err
	}

	q := steps / 4
	sa := swingAngle / float64(q)
	so := radius / float64(q)

	// The angle and offset of each quarter, at step i.
	quarters := [4]func(i float64) (float64, float64){
		func(i float64) (float64, float64) { return swingAngle - i*sa, -i * so },
		func(i float64) (float64, float64) { return -i * sa, -radius + i*so },
		func(i float64) (float64, float64) { return i*sa - swingAngle, i * so },
		func(i float64) (float64, float64) { return i * sa, radius - i*so },
	}

	t := make(Trajectory, steps)
	for n, f := range quarters {
		for i := 0; i < q; i++ {
			angle, offset := f(float64(i))
			m := math3d.Offset(off, offset).Mul(math3d.Rotation(rot, angle))
			t[n*q+i] = transformPose(m, standby)
		}
	}

	return t, nil
}

// RotateZ returns a gait which tilts the body so that its top traces a circle,
// as if it were rotating around the Z axis. The tilt is that of a stick of
// height zLift whose top moves around a circle of radius xyRadius.
func RotateZ(standby kinematics.Pose, steps int, zLift, xyRadius float64) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkSteps(steps, 4); err != nil {
		return nil, err
	}

	if err := checkPositive("z lift", zLift); err != nil {
		return nil, err
	}

	if err := checkPositive("xy radius", xyRadius); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(steps)
	t := make(Trajectory, steps)

	for i := range t {
		x := xyRadius * math.Cos(float64(i)*step)
		y := xyRadius * math.Sin(float64(i)*step)

		m := math3d.RotateY(math3d.Deg(math.Atan2(x, zLift))).
			Mul(math3d.RotateX(math3d.Deg(math.Atan2(y, zLift))))

		t[i] = transformPose(m, standby)
	}

	return t, nil
}

// Twist returns a gait which raises the front of the body by raiseAngle, and
// then twists it back and forth around the Z axis by up to zAngle, while
// rolling around the X axis by up to xAngle.
func Twist(standby kinematics.Pose, steps int, raiseAngle, zAngle, xAngle float64) (Trajectory, error) {
	if err := checkPose("standby", standby); err != nil {
		return nil, err
	}

	if err := checkSteps(steps, 4); err != nil {
		return nil, err
	}

	for _, v := range []struct {
		name string
		val  float64
	}{{"raise angle", raiseAngle}, {"z angle", zAngle}, {"x angle", xAngle}} {
		if err := checkFinite(v.name, v.val); err != nil {
			return nil, err
		}
	}

	q := steps / 4
	fq := float64(q)
	sz := zAngle / fq
	sx := xAngle / fq
	base := math3d.RotateX(raiseAngle)

	// The Z and X multipliers of each quarter, at step i.
	quarters := [4]func(i float64) (float64, float64){
		func(i float64) (float64, float64) { return i, i },
		func(i float64) (float64, float64) { return fq - i, fq - i },
		func(i float64) (float64, float64) { return -i, i },
		func(i float64) (float64, float64) { return i - fq, fq - i },
	}

	t := make(Trajectory, steps)
	for n, f := range quarters {
		for i := 0; i < q; i++ {
			kz, kx := f(float64(i))
			m := base.Mul(math3d.RotateZ(kz * sz)).Mul(math3d.RotateX(kx * sx))
			t[n*q+i] = transformPose(m, standby)
		}
	}

	return t, nil
}

func transformPose(m math3d.Matrix44, p kinematics.Pose) kinematics.Pose {
	var out kinematics.Pose
	for i, v := range p {
		out[i] = math3d.TransformPoint(m, v)
	}
	return out
}
