package kinematics

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func assertVector(t *testing.T, exp, act r3.Vector, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, exp.X, act.X, delta, msgAndArgs...)
	assert.InDelta(t, exp.Y, act.Y, delta, msgAndArgs...)
	assert.InDelta(t, exp.Z, act.Z, delta, msgAndArgs...)
}

func assertJoints(t *testing.T, exp, act Joints, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, exp.Coxa, act.Coxa, 1e-6, msgAndArgs...)
	assert.InDelta(t, exp.Femur, act.Femur, 1e-6, msgAndArgs...)
	assert.InDelta(t, exp.Tibia, act.Tibia, 1e-6, msgAndArgs...)
}

func TestLegs(t *testing.T) {
	assert.Equal(t, "RF", RightFront.String())
	assert.Equal(t, "LR", LeftRear.String())
	assert.Equal(t, "Leg(9)", Leg(9).String())
	assert.False(t, Leg(-1).Valid())

	for _, leg := range TripodA {
		assert.Equal(t, TripodA, leg.Tripod())
	}
	for _, leg := range TripodB {
		assert.Equal(t, TripodB, leg.Tripod())
	}
}

func TestDefaultPostures(t *testing.T) {
	cfg := DefaultConfig()

	standby, err := DefaultStandby(cfg)
	require.NoError(t, err)

	// The middle legs point straight along the X axis.
	assertVector(t, r3.Vector{X: 138.565695, Y: 0, Z: -64.735013}, standby[RightMiddle], 1e-5)
	assertVector(t, r3.Vector{X: -138.565695, Y: 0, Z: -64.735013}, standby[LeftMiddle], 1e-5)
	assertVector(t, r3.Vector{X: 99.269463, Y: 132.269463, Z: -64.735013}, standby[RightFront], 1e-5)

	laydown, err := DefaultLaydown(cfg)
	require.NoError(t, err)
	assertVector(t, r3.Vector{X: 186.727587, Y: 0, Z: -5.009115}, laydown[RightMiddle], 1e-5)
}

func TestSolveForwardPostureRoundTrip(t *testing.T) {
	type eg struct {
		j2 float64
		j3 float64
	}

	examples := []eg{
		{60, 75},
		{40, 105},
		{30, 60},
		{80, 120},
		{55.5, 90},
		{72, 64},
	}

	cfg := DefaultConfig()
	for _, x := range examples {
		p, err := ForwardPosture(x.j2, x.j3, cfg)
		require.NoError(t, err)

		angles, err := Solve(p, cfg)
		require.NoError(t, err, "j2=%f j3=%f", x.j2, x.j3)

		for _, leg := range Legs {
			assertJoints(t, Joints{90, x.j2, x.j3}, angles[leg], "j2=%f j3=%f leg=%s", x.j2, x.j3, leg)
		}
	}
}

func TestSolveMirroredScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = [NumLegs]float64{1, 1, 1, -1, -1, -1}

	// With a scale of -1, femur 120 is an elevation of 30 degrees, and tibia 100
	// is an inner angle of 80.
	p, err := ForwardPosture(120, 100, cfg)
	require.NoError(t, err)

	angles, err := Solve(p, cfg)
	require.NoError(t, err)

	for _, leg := range Legs {
		assertJoints(t, Joints{90, 120, 100}, angles[leg], "leg=%s", leg)
	}
}

func TestForwardKinematics(t *testing.T) {
	cfg := DefaultConfig()

	// A centered coxa matches the closed form.
	var centered JointAngles
	for _, leg := range Legs {
		centered[leg] = Joints{90, 60, 75}
	}

	p1, err := ForwardKinematics(centered, cfg)
	require.NoError(t, err)
	p2, err := ForwardPosture(60, 75, cfg)
	require.NoError(t, err)

	for _, leg := range Legs {
		assertVector(t, p2[leg], p1[leg], 1e-9, "leg=%s", leg)
	}

	// And arbitrary angles survive a trip through the solver.
	angles := JointAngles{
		{70, 60, 75},
		{110, 45, 95},
		{90, 70, 80},
		{65, 50, 100},
		{120, 65, 70},
		{95, 40, 110},
	}

	p, err := ForwardKinematics(angles, cfg)
	require.NoError(t, err)

	solved, err := Solve(p, cfg)
	require.NoError(t, err)

	for _, leg := range Legs {
		assertJoints(t, angles[leg], solved[leg], "leg=%s", leg)
	}
}

func TestChain(t *testing.T) {
	cfg := DefaultConfig()
	chain := Chain(RightMiddle, Joints{90, 90, 90}, cfg)
	require.Len(t, chain, 5)

	// Femur horizontal, tibia straight down.
	assertVector(t, r3.Vector{X: 29.87}, chain[1].Start(), 1e-9)
	assertVector(t, r3.Vector{X: 50.62}, chain[2].Start(), 1e-9)
	assertVector(t, r3.Vector{X: 78.62}, chain[3].Start(), 1e-9)
	assertVector(t, r3.Vector{X: 121.22}, chain[4].Start(), 1e-9)
	assertVector(t, r3.Vector{X: 121.22, Z: -89.07}, chain[4].End(), 1e-9)

	assert.Equal(t, chain[2], chain[1].Child)
	assert.Nil(t, chain[4].Child)
}

func TestLinkPosture(t *testing.T) {
	cfg := DefaultConfig()

	// Link angles are measured from vertical and horizontal, so they map onto
	// the solver convention as (a, a + 90 - b).
	p1, err := LinkPosture(30, 20, cfg)
	require.NoError(t, err)
	p2, err := ForwardPosture(30, 100, cfg)
	require.NoError(t, err)

	for _, leg := range Legs {
		assertVector(t, p2[leg], p1[leg], 1e-9, "leg=%s", leg)
	}
}

func TestUnreachable(t *testing.T) {
	cfg := DefaultConfig()
	standby, err := DefaultStandby(cfg)
	require.NoError(t, err)

	type eg struct {
		name   string
		target r3.Vector
	}

	examples := []eg{
		{"too far", r3.Vector{X: 400, Y: 0, Z: -64}},
		{"too close", r3.Vector{X: 88.62, Y: 0, Z: 0}},
		{"at joint 2", r3.Vector{X: 78.62, Y: 0, Z: 0}},
	}

	for _, x := range examples {
		j, err := SolveLeg(RightMiddle, x.target, cfg)
		assert.True(t, errors.Is(err, ErrUnreachableTarget), x.name)
		assert.Equal(t, Joints{}, j, x.name)

		var ue *UnreachableError
		require.True(t, errors.As(err, &ue), x.name)
		assert.Equal(t, RightMiddle, ue.Leg)
		assert.InDelta(t, 46.47, ue.Min, 1e-9)
		assert.InDelta(t, 131.67, ue.Max, 1e-9)
		assert.False(t, math.IsNaN(ue.Distance))
	}

	// Directly below joint 1 the coxa has no heading, even though the femur and
	// tibia could reach.
	below := r3.Vector{X: cfg.MountX[RightMiddle] + cfg.RootToJoint1, Z: -80}
	_, err = SolveLeg(RightMiddle, below, cfg)
	assert.True(t, errors.Is(err, ErrUnreachableTarget))

	// Every failing leg is reported.
	p := standby
	p[RightFront] = r3.Vector{X: 500, Y: 500}
	p[LeftRear] = r3.Vector{X: -500, Y: -500}

	angles, err := Solve(p, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachableTarget))
	assert.Equal(t, JointAngles{}, angles)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var ue *UnreachableError
	require.True(t, errors.As(errs[0], &ue))
	assert.Equal(t, RightFront, ue.Leg)
	require.True(t, errors.As(errs[1], &ue))
	assert.Equal(t, LeftRear, ue.Leg)
}

func TestSolveInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Joint2ToJoint3 = 0

	_, err := Solve(Pose{}, cfg)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = SolveLeg(Leg(6), r3.Vector{}, DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = ForwardPosture(math.NaN(), 10, DefaultConfig())
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestValidate(t *testing.T) {
	type eg struct {
		name string
		fn   func(c *Config)
	}

	examples := []eg{
		{"zero scale", func(c *Config) { c.Scale[2] = 0 }},
		{"nan mount", func(c *Config) { c.MountX[4] = math.NaN() }},
		{"inf angle", func(c *Config) { c.MountAngle[0] = math.Inf(1) }},
		{"negative root", func(c *Config) { c.RootToJoint1 = -1 }},
		{"zero tibia", func(c *Config) { c.Joint3ToTip = 0 }},
		{"negative femur", func(c *Config) { c.Joint2ToJoint3 = -4 }},
	}

	assert.NoError(t, DefaultConfig().Validate())

	for _, x := range examples {
		cfg := DefaultConfig()
		x.fn(&cfg)
		assert.True(t, errors.Is(cfg.Validate(), ErrInvalidParameter), x.name)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("joint3_to_tip: 100\nscale: [1, 1, 1, -1, -1, -1]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.Joint3ToTip)
	assert.Equal(t, -1.0, cfg.Scale[LeftMiddle])
	assert.Equal(t, DefaultConfig().MountAngle, cfg.MountAngle)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("joint2_to_joint3: -1\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
