package gait

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standby(t *testing.T) kinematics.Pose {
	t.Helper()
	p, err := kinematics.DefaultStandby(kinematics.DefaultConfig())
	require.NoError(t, err)
	return p
}

// offset returns the position of a leg at step i, relative to standby.
func offset(tr Trajectory, sb kinematics.Pose, i int, leg kinematics.Leg) r3.Vector {
	return tr[i][leg].Sub(sb[leg])
}

func TestWalk(t *testing.T) {
	sb := standby(t)
	tr, err := Walk(sb, 28, 30, 0)
	require.NoError(t, err)
	require.Len(t, tr, 28)

	swing, err := SemicircleSwing(30, 28, false)
	require.NoError(t, err)

	for i := range tr {
		for _, leg := range kinematics.TripodA {
			assertVector(t, swing[i], offset(tr, sb, i, leg), "step %d leg %s", i, leg)
		}

		// TripodB is half a cycle behind.
		for _, leg := range kinematics.TripodB {
			assertVector(t, swing[(i+14)%28], offset(tr, sb, i, leg), "step %d leg %s", i, leg)
		}
	}

	// Leg 1 is leg 0 rolled by 14.
	for i := range tr {
		assertVector(t, offset(tr, sb, (i+14)%28, 0), offset(tr, sb, i, 1), "step %d", i)
	}
}

func TestWalkDirection(t *testing.T) {
	sb := standby(t)

	tr, err := Walk(sb, 28, 30, 90)
	require.NoError(t, err)

	// Forwards is rotated to the left.
	assertVector(t, r3.Vector{X: -30}, offset(tr, sb, 7, kinematics.RightFront))
	assertVector(t, r3.Vector{Z: 30}, offset(tr, sb, 0, kinematics.RightFront))

	_, err = Walk(sb, 28, 30, math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = Walk(sb, 30, 30, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	bad := sb
	bad[3].X = math.Inf(1)
	_, err = Walk(bad, 28, 30, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestFastWalk(t *testing.T) {
	sb := standby(t)
	tr, err := FastWalk(sb, 20, 50, 40, 15, false)
	require.NoError(t, err)
	require.Len(t, tr, 20)

	for i := range tr {
		a := offset(tr, sb, i, kinematics.RightFront)

		assertVector(t, a, offset(tr, sb, i, kinematics.RightRear), "step %d", i)
		assertVector(t, offset(tr, sb, (i+10)%20, kinematics.RightFront), offset(tr, sb, i, kinematics.RightMiddle), "step %d", i)

		// The left side bulges the other way.
		l := offset(tr, sb, i, kinematics.LeftMiddle)
		assertVector(t, r3.Vector{X: -a.X, Y: a.Y, Z: a.Z}, l, "step %d", i)
		assertVector(t, offset(tr, sb, (i+10)%20, kinematics.LeftMiddle), offset(tr, sb, i, kinematics.LeftFront), "step %d", i)
		assertVector(t, offset(tr, sb, (i+10)%20, kinematics.LeftMiddle), offset(tr, sb, i, kinematics.LeftRear), "step %d", i)
	}

	_, err = FastWalk(sb, 22, 50, 40, 15, false)
	assert.NoError(t, err)

	_, err = FastWalk(sb, 21, 50, 40, 15, false)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestTurn(t *testing.T) {
	sb := standby(t)

	left, err := Turn(sb, 28, 35, Left)
	require.NoError(t, err)
	right, err := Turn(sb, 28, 35, Right)
	require.NoError(t, err)
	require.Len(t, left, 28)
	require.Len(t, right, 28)

	s := 35 / math.Sqrt2
	assertVector(t, r3.Vector{X: -s, Y: s}, offset(left, sb, 7, kinematics.RightFront))
	assertVector(t, r3.Vector{X: s, Y: -s}, offset(right, sb, 7, kinematics.RightFront))

	// Turning right is the same swing rotated half way around each foot.
	for i := range left {
		for _, leg := range kinematics.Legs {
			l := offset(left, sb, i, leg)
			r := offset(right, sb, i, leg)
			assertVector(t, r3.Vector{X: -l.X, Y: -l.Y, Z: l.Z}, r, "step %d leg %s", i, leg)
		}
	}

	_, err = Turn(sb, 28, 35, Side(7))
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = Turn(sb, 26, 35, Left)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestClimb(t *testing.T) {
	sb := standby(t)
	tr, err := Climb(sb, 28, 20, 80, 30, -30, false)
	require.NoError(t, err)
	require.Len(t, tr, 28)

	assertVector(t, r3.Vector{Y: 20, Z: -30}, offset(tr, sb, 7, kinematics.RightFront))
	assertVector(t, r3.Vector{X: 30, Z: 50}, offset(tr, sb, 0, kinematics.RightFront))
	assertVector(t, r3.Vector{X: -30, Z: 50}, offset(tr, sb, 0, kinematics.LeftMiddle))
	assertVector(t, r3.Vector{X: 30, Z: 50}, offset(tr, sb, 14, kinematics.RightMiddle))

	_, err = Climb(sb, 22, 20, 80, 30, -30, false)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	_, err = Climb(sb, 28, 20, 80, 30, math.Inf(-1), false)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
