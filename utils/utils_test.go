package utils

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/servos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync(t *testing.T) {
	r := servos.NewRecorder()

	err := Sync(r, func() error {
		for _, leg := range kinematics.Legs {
			if err := r.Move(leg, kinematics.Joints{Coxa: 90}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	// one frame for all six legs
	f := r.Frames()
	require.Len(t, f, 1)
	for _, leg := range kinematics.Legs {
		assert.Equal(t, 90.0, f[0][leg].Coxa)
	}

	// unbuffered again afterwards
	require.NoError(t, r.Move(kinematics.RightFront, kinematics.Joints{}))
	assert.Len(t, r.Frames(), 2)
}

func TestSyncError(t *testing.T) {
	r := servos.NewRecorder()
	boom := errors.New("boom")

	err := Sync(r, func() error {
		if err := r.Move(kinematics.RightFront, kinematics.Joints{Coxa: 1}); err != nil {
			return err
		}
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Empty(t, r.Frames())
}
