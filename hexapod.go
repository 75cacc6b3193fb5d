package hexapod

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/gait"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "hexapod",
})

var (
	ErrInvalidParameter  = kinematics.ErrInvalidParameter
	ErrUnreachableTarget = kinematics.ErrUnreachableTarget
)

// GenerateTrajectory returns one cycle of the given kind of gait, around the
// given standby pose.
func GenerateTrajectory(kind gait.Kind, standby kinematics.Pose, params gait.Params) (gait.Trajectory, error) {
	return gait.Generate(kind, standby, params)
}

// SolveJointAngles returns the joint angles which put each foot at the
// matching position of the target pose.
func SolveJointAngles(target kinematics.Pose, cfg kinematics.Config) (kinematics.JointAngles, error) {
	return kinematics.Solve(target, cfg)
}

// ForwardPosture returns the pose with every coxa centered, and every femur
// and tibia at the given angles.
func ForwardPosture(j2, j3 float64, cfg kinematics.Config) (kinematics.Pose, error) {
	return kinematics.ForwardPosture(j2, j3, cfg)
}

// Request asks the legs to perform a motion. If Gait is true, Kind and Params
// describe a looping gait. Otherwise Pose is held still.
type Request struct {
	Name   string
	Gait   bool
	Kind   gait.Kind
	Params gait.Params
	Pose   kinematics.Pose
}

// State is shared between components, which read and modify it each tick.
type State struct {
	Config  kinematics.Config
	Standby kinematics.Pose
	Laydown kinematics.Pose

	// The most recently requested motion, or nil if nothing has been requested
	// yet. Set by the controller.
	Request *Request

	// Components can set this to true to indicate that the hex should shut down.
	Shutdown bool
}

type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

type Hexapod struct {
	Components []Component
	State      *State
}

// NewHexapod creates a new Hexapod with the given geometry, standing at the
// default standby pose.
func NewHexapod(cfg kinematics.Config) (*Hexapod, error) {
	standby, err := kinematics.DefaultStandby(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "while computing standby pose")
	}

	laydown, err := kinematics.DefaultLaydown(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "while computing laydown pose")
	}

	return &Hexapod{
		Components: []Component{},
		State: &State{
			Config:  cfg,
			Standby: standby,
			Laydown: laydown,
		},
	}, nil
}

// Add registers a component to receive ticks every frame.
func (h *Hexapod) Add(c Component) {
	h.Components = append(h.Components, c)
}

// Boot calls Boot on each component.
func (h *Hexapod) Boot() error {
	for i, c := range h.Components {
		err := c.Boot()
		if err != nil {
			return errors.Wrapf(err, "while booting component %d (%T)", i, c)
		}
	}

	return nil
}

// Tick calls Tick on each component. Every component is ticked, even if an
// earlier one fails, and the first error is returned.
func (h *Hexapod) Tick(now time.Time) error {
	var first error

	for i, c := range h.Components {
		err := c.Tick(now, h.State)
		if err != nil {
			log.Errorf("component %d (%T): %s", i, c, err)
			if first == nil {
				first = errors.Wrapf(err, "while ticking component %d (%T)", i, c)
			}
		}
	}

	return first
}
