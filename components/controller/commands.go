package controller

import (
	"strings"

	"github.com/rookidroid/hexapod"
	"github.com/rookidroid/hexapod/gait"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/samber/lo"
)

// Command is one of the motion commands which the robot understands. Commands
// are sent as their name followed by a colon, e.g. "walk0:".
type Command struct {
	Name string
	Help string

	// When Gait is false, the command holds one of the static poses.
	Gait      bool
	Kind      gait.Kind
	Direction float64
	Side      gait.Side
	Reverse   bool
	Laydown   bool
}

// Commands is the full vocabulary, in the order it's listed.
var Commands = []Command{
	{Name: "standby:", Help: "stand still at the standby pose"},
	{Name: "laydown:", Help: "rest the body on the ground", Laydown: true},
	{Name: "walk0:", Help: "walk forwards", Gait: true, Kind: gait.KindWalk, Direction: 0},
	{Name: "walk180:", Help: "walk backwards", Gait: true, Kind: gait.KindWalk, Direction: 180},
	{Name: "walkr45:", Help: "walk forwards and right", Gait: true, Kind: gait.KindWalk, Direction: -45},
	{Name: "walkr90:", Help: "walk right", Gait: true, Kind: gait.KindWalk, Direction: -90},
	{Name: "walkr135:", Help: "walk backwards and right", Gait: true, Kind: gait.KindWalk, Direction: -135},
	{Name: "walkl45:", Help: "walk forwards and left", Gait: true, Kind: gait.KindWalk, Direction: 45},
	{Name: "walkl90:", Help: "walk left", Gait: true, Kind: gait.KindWalk, Direction: 90},
	{Name: "walkl135:", Help: "walk backwards and left", Gait: true, Kind: gait.KindWalk, Direction: 135},
	{Name: "fastforward:", Help: "walk forwards quickly", Gait: true, Kind: gait.KindFastWalk},
	{Name: "fastbackward:", Help: "walk backwards quickly", Gait: true, Kind: gait.KindFastWalk, Reverse: true},
	{Name: "turnleft:", Help: "turn left on the spot", Gait: true, Kind: gait.KindTurn, Side: gait.Left},
	{Name: "turnright:", Help: "turn right on the spot", Gait: true, Kind: gait.KindTurn, Side: gait.Right},
	{Name: "climbforward:", Help: "climb forwards with high steps", Gait: true, Kind: gait.KindClimb},
	{Name: "climbbackward:", Help: "climb backwards with high steps", Gait: true, Kind: gait.KindClimb, Reverse: true},
	{Name: "rotatex:", Help: "rock around the X axis", Gait: true, Kind: gait.KindRotateX},
	{Name: "rotatey:", Help: "rock around the Y axis", Gait: true, Kind: gait.KindRotateY},
	{Name: "rotatez:", Help: "circle the body around the Z axis", Gait: true, Kind: gait.KindRotateZ},
	{Name: "twist:", Help: "twist the body back and forth", Gait: true, Kind: gait.KindTwist},
}

// Names returns the name of every command.
func Names() []string {
	return lo.Map(Commands, func(c Command, _ int) string {
		return c.Name
	})
}

// Lookup returns the command with the given name. The trailing colon is
// optional, and surrounding whitespace and case are ignored.
func Lookup(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.HasSuffix(name, ":") {
		name += ":"
	}

	c, ok := lo.Find(Commands, func(c Command) bool {
		return c.Name == name
	})
	if !ok {
		return Command{}, kinematics.Invalidf("unknown command: %q", name)
	}

	return c, nil
}

// Request returns the request for this command, built from the default
// parameters of its gait.
func (c Command) Request(standby, laydown kinematics.Pose) hexapod.Request {
	if !c.Gait {
		pose := standby
		if c.Laydown {
			pose = laydown
		}
		return hexapod.Request{Name: c.Name, Pose: pose}
	}

	p := gait.DefaultParams(c.Kind)
	p.Direction = c.Direction
	p.Side = c.Side
	p.Reverse = c.Reverse

	return hexapod.Request{
		Name:   c.Name,
		Gait:   true,
		Kind:   c.Kind,
		Params: p,
		Pose:   standby,
	}
}
