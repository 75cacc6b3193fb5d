package servo

import (
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "fake/servo",
})

// FakeServos is a driver which only logs what it's asked to do.
type FakeServos struct {
	buffered bool
	moves    int
}

func New() *FakeServos {
	return &FakeServos{}
}

func (s *FakeServos) SetBuffered(b bool) {
	s.buffered = b
}

func (s *FakeServos) Move(leg kinematics.Leg, j kinematics.Joints) error {
	s.moves++
	logger.Debugf("move %s: %s (buffered=%v)", leg, j, s.buffered)
	return nil
}

func (s *FakeServos) Action() error {
	logger.Debugf("action")
	return nil
}

func (s *FakeServos) Relax() error {
	logger.Infof("relax after %d moves", s.moves)
	return nil
}

// Moves returns the number of moves received.
func (s *FakeServos) Moves() int {
	return s.moves
}
