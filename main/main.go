package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

// Flags shared by every command which builds a trajectory. When set, they
// override the default parameters of the gait.
var gaitFlags = []cli.Flag{
	&cli.IntFlag{Name: "steps", Usage: "number of waypoints per cycle"},
	&cli.Float64Flag{Name: "radius", Usage: "swing radius (mm) of walk and turn, or slide of rotatex/rotatey"},
	&cli.Float64Flag{Name: "direction", Usage: "walk heading, in degrees counter-clockwise from forwards"},
	&cli.BoolFlag{Name: "reverse", Usage: "run fastwalk or climb backwards"},
}

func main() {
	app := &cli.App{
		Name:  "hexapod",
		Usage: "generate gait trajectories and joint angles for a six legged robot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load leg geometry from YAML `FILE`",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "one of panic, fatal, error, warn, info, debug, trace",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			logrus.SetOutput(os.Stderr)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Usage:     "print one cycle of a gait as JSON foot positions",
				ArgsUsage: "<command or gait>",
				Flags:     gaitFlags,
				Action:    genAction,
			},
			{
				Name:      "solve",
				Usage:     "print the joint angles of every waypoint of a gait as JSON",
				ArgsUsage: "<command or gait>",
				Flags:     gaitFlags,
				Action:    solveAction,
			},
			{
				Name:  "posture",
				Usage: "print the pose reached with centered coxas and the given femur and tibia angles",
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "femur", Value: 60, Usage: "femur angle, in degrees"},
					&cli.Float64Flag{Name: "tibia", Value: 75, Usage: "tibia angle, in degrees"},
				},
				Action: postureAction,
			},
			{
				Name:      "table",
				Usage:     "print a gait as a table of foot positions and joint angles",
				ArgsUsage: "<command or gait>",
				Flags:     gaitFlags,
				Action:    tableAction,
			},
			{
				Name:  "lut",
				Usage: "write a C header with the joint angles of every motion",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to `FILE` rather than stdout"},
				},
				Action: lutAction,
			},
			{
				Name:      "plot",
				Usage:     "draw the foot paths of a gait, seen from above and from the side",
				ArgsUsage: "<command or gait>",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "gait.png", Usage: "write the image to `FILE`"},
				}, gaitFlags...),
				Action: plotAction,
			},
			{
				Name:  "play",
				Usage: "read commands from stdin and play them against a fake servo driver",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "fps", Value: 60, Usage: "ticks per second"},
					&cli.IntFlag{Name: "ticks", Usage: "stop after this many ticks, or never if zero"},
				},
				Action: playAction,
			},
			{
				Name:   "commands",
				Usage:  "list the motion commands",
				Action: commandsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
