package gait

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		p, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, p)
	}

	k, err := ParseKind(" FastWalk ")
	require.NoError(t, err)
	assert.Equal(t, KindFastWalk, k)

	_, err = ParseKind("moonwalk")
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	assert.Equal(t, "unknown", Kind(99).String())
}

func TestGenerateDefaults(t *testing.T) {
	sb := standby(t)

	type eg struct {
		kind  Kind
		steps int
	}

	examples := []eg{
		{KindWalk, 28},
		{KindFastWalk, 20},
		{KindTurn, 28},
		{KindClimb, 28},
		{KindRotateX, 28},
		{KindRotateY, 28},
		{KindRotateZ, 28},
		{KindTwist, 28},
		{KindStandUp, 28},
	}

	for _, x := range examples {
		tr, err := Generate(x.kind, sb, DefaultParams(x.kind))
		require.NoError(t, err, x.kind.String())
		assert.Len(t, tr, x.steps, x.kind.String())
		assert.Equal(t, x.steps, tr.Length())

		for i, p := range tr {
			assert.True(t, p.Finite(), "%s step %d", x.kind, i)
		}
	}
}

func TestGenerateInvalid(t *testing.T) {
	sb := standby(t)

	_, err := Generate(Kind(42), sb, Params{Steps: 28})
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	p := DefaultParams(KindWalk)
	p.Steps = 30
	_, err = Generate(KindWalk, sb, p)
	assert.True(t, errors.Is(err, ErrInvalidParameter))

	p = DefaultParams(KindFastWalk)
	p.Steps = 22
	_, err = Generate(KindFastWalk, sb, p)
	assert.NoError(t, err)
}

func TestGenerateStandUpLaydown(t *testing.T) {
	sb := standby(t)
	ld := laydown(t)

	p := DefaultParams(KindStandUp)
	assert.Equal(t, kinematics.Pose{}, p.Laydown)

	tr, err := Generate(KindStandUp, sb, p)
	require.NoError(t, err)
	assert.Equal(t, ld, tr[0])

	// An explicit laydown pose is used as given.
	p.Laydown = ld
	for _, leg := range kinematics.Legs {
		p.Laydown[leg].Z -= 5
	}

	tr, err = Generate(KindStandUp, sb, p)
	require.NoError(t, err)
	assert.Equal(t, p.Laydown, tr[0])
	assertPose(t, sb, tr[len(tr)-1])
}
