package legs

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod"
	"github.com/rookidroid/hexapod/gait"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/rookidroid/hexapod/servos"
	"github.com/rookidroid/hexapod/utils"
	"github.com/sirupsen/logrus"
)

type State string

const (
	sDefault  State = ""
	sHalt     State = "sHalt"
	sStandUp  State = "sStandUp"
	sSitDown  State = "sSitDown"
	sStanding State = "sStanding"
	sStepping State = "sStepping"

	// The number of ticks spent standing up, and sitting down again.
	standUpSteps = 28
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Legs plays trajectories. Each tick, the next waypoint is solved and sent to
// the driver.
type Legs struct {
	Driver servos.Driver
	Legs   [kinematics.NumLegs]*Leg

	// The state that the legs are currently in.
	State        State
	stateCounter int

	standUp gait.Trajectory

	// The looping trajectory of the active request, if it's a gait.
	gait   gait.Trajectory
	active *hexapod.Request

	// The pose held while standing.
	hold kinematics.Pose
}

func New(d servos.Driver) *Legs {
	l := &Legs{
		Driver: d,
		State:  sDefault,
	}

	for _, i := range kinematics.Legs {
		l.Legs[i] = NewLeg(i)
	}

	return l
}

func (l *Legs) Boot() error {
	log.Infof("booting with %d legs", len(l.Legs))
	return nil
}

func (l *Legs) SetState(s State) {
	log.Infof("state=%v", s)
	l.stateCounter = 0
	l.State = s
}

// Halted returns true once the legs have sat down and relaxed.
func (l *Legs) Halted() bool {
	return l.State == sHalt && l.stateCounter >= 1
}

func (l *Legs) Tick(now time.Time, state *hexapod.State) error {
	l.stateCounter += 1

	var pose kinematics.Pose
	move := true

	switch l.State {
	case sDefault:
		t, err := gait.StandUp(state.Standby, state.Laydown, standUpSteps)
		if err != nil {
			return errors.Wrap(err, "while generating stand up")
		}

		l.standUp = t
		l.hold = state.Standby
		pose = t[0]
		l.SetState(sStandUp)

	case sHalt:
		move = false
		if l.stateCounter == 1 {
			if err := l.Driver.Relax(); err != nil {
				return errors.Wrap(err, "while relaxing")
			}
		}

	// The stand up always runs to completion, and shutdown is handled once
	// standing.
	case sStandUp:
		pose = l.standUp[l.stateCounter-1]
		if l.stateCounter >= len(l.standUp) {
			l.SetState(sStanding)
		}

	case sStanding:
		pose = l.hold

		if state.Shutdown {
			if l.hold == state.Laydown {
				l.SetState(sHalt)
			} else {
				l.SetState(sSitDown)
			}
			break
		}

		if r := state.Request; r != nil && r != l.active {
			l.active = r
			log.Infof("request=%s", r.Name)

			if !r.Gait {
				l.hold = r.Pose
				break
			}

			t, err := gait.Generate(r.Kind, state.Standby, r.Params)
			if err != nil {
				return errors.Wrapf(err, "while generating %s", r.Name)
			}

			l.gait = t
			l.SetState(sStepping)
		}

	// Loop the gait. The request is only checked at the end of each cycle, so a
	// new one never interrupts a step.
	case sStepping:
		i := (l.stateCounter - 1) % len(l.gait)
		pose = l.gait[i]

		if i == len(l.gait)-1 && (state.Shutdown || state.Request != l.active) {
			l.hold = state.Standby
			l.SetState(sStanding)
		}

	// Stand up backwards.
	case sSitDown:
		i := len(l.standUp) - l.stateCounter
		pose = l.standUp[i]
		if i == 0 {
			l.SetState(sHalt)
		}

	default:
		return errors.Errorf("unknown state: %#v", l.State)
	}

	if !move {
		return nil
	}

	angles, err := kinematics.Solve(pose, state.Config)
	if err != nil {
		return errors.Wrapf(err, "while solving %s", pose)
	}

	return utils.Sync(l.Driver, func() error {
		for i, leg := range l.Legs {
			if err := leg.MoveTo(l.Driver, pose[i], angles[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
