package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod"
	"github.com/rookidroid/hexapod/components/controller"
	"github.com/rookidroid/hexapod/components/legs"
	fakeservo "github.com/rookidroid/hexapod/fake/servo"
	"github.com/rookidroid/hexapod/gait"
	"github.com/rookidroid/hexapod/kinematics"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (kinematics.Config, error) {
	if path := c.String("config"); path != "" {
		return kinematics.LoadConfig(path)
	}
	return kinematics.DefaultConfig(), nil
}

// motion is a named trajectory, ready to be rendered.
type motion struct {
	Name       string
	Trajectory gait.Trajectory
}

// resolve builds the request named by the first argument, which is either one
// of the motion commands (walk0:) or the name of a gait (walk).
func resolve(c *cli.Context, h *hexapod.Hexapod) (hexapod.Request, error) {
	arg := c.Args().First()
	if arg == "" {
		return hexapod.Request{}, errors.New("missing command or gait")
	}

	var req hexapod.Request
	if cmd, err := controller.Lookup(arg); err == nil {
		req = cmd.Request(h.State.Standby, h.State.Laydown)
	} else {
		k, err := gait.ParseKind(arg)
		if err != nil {
			return req, errors.Errorf("%q is neither a command nor a gait", arg)
		}

		req = hexapod.Request{Name: k.String(), Gait: true, Kind: k, Params: gait.DefaultParams(k)}
		if k == gait.KindStandUp {
			req.Params.Laydown = h.State.Laydown
		}
	}

	if c.IsSet("steps") {
		req.Params.Steps = c.Int("steps")
	}
	if c.IsSet("radius") {
		req.Params.Radius = c.Float64("radius")
	}
	if c.IsSet("direction") {
		req.Params.Direction = c.Float64("direction")
	}
	if c.IsSet("reverse") {
		req.Params.Reverse = c.Bool("reverse")
	}

	return req, nil
}

// trajectory returns the trajectory named on the command line. Static poses
// are a trajectory of one waypoint.
func trajectory(c *cli.Context) (motion, kinematics.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return motion{}, cfg, err
	}

	h, err := hexapod.NewHexapod(cfg)
	if err != nil {
		return motion{}, cfg, err
	}

	req, err := resolve(c, h)
	if err != nil {
		return motion{}, cfg, err
	}

	if !req.Gait {
		return motion{req.Name, gait.Trajectory{req.Pose}}, cfg, nil
	}

	t, err := hexapod.GenerateTrajectory(req.Kind, h.State.Standby, req.Params)
	if err != nil {
		return motion{}, cfg, errors.Wrapf(err, "while generating %s", req.Name)
	}

	return motion{req.Name, t}, cfg, nil
}

func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func genAction(c *cli.Context) error {
	m, _, err := trajectory(c)
	if err != nil {
		return err
	}

	return writeJSON(m.Trajectory)
}

func solveAction(c *cli.Context) error {
	m, cfg, err := trajectory(c)
	if err != nil {
		return err
	}

	angles, err := gait.SolveTrajectory(c.Context, m.Trajectory, cfg)
	if err != nil {
		return errors.Wrapf(err, "while solving %s", m.Name)
	}

	return writeJSON(angles)
}

func postureAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, err := hexapod.ForwardPosture(c.Float64("femur"), c.Float64("tibia"), cfg)
	if err != nil {
		return err
	}

	a, err := hexapod.SolveJointAngles(p, cfg)
	if err != nil {
		return err
	}

	fmt.Println(renderTable(motion{"posture", gait.Trajectory{p}}, []kinematics.JointAngles{a}))
	return nil
}

func tableAction(c *cli.Context) error {
	m, cfg, err := trajectory(c)
	if err != nil {
		return err
	}

	angles, err := gait.SolveTrajectory(c.Context, m.Trajectory, cfg)
	if err != nil {
		return errors.Wrapf(err, "while solving %s", m.Name)
	}

	fmt.Println(renderTable(m, angles))
	return nil
}

func lutAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	h, err := hexapod.NewHexapod(cfg)
	if err != nil {
		return err
	}

	motions, err := allMotions(h)
	if err != nil {
		return err
	}

	luts := make([]lut, len(motions))
	for i, m := range motions {
		angles, err := gait.SolveTrajectory(c.Context, m.Trajectory, cfg)
		if err != nil {
			return errors.Wrapf(err, "while solving %s", m.Name)
		}
		luts[i] = lut{Name: m.Name, Angles: angles}
	}

	out := os.Stdout
	if path := c.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return renderLUT(out, luts)
}

// allMotions returns the trajectory of every command, followed by the stand
// up.
func allMotions(h *hexapod.Hexapod) ([]motion, error) {
	var out []motion

	for _, cmd := range controller.Commands {
		req := cmd.Request(h.State.Standby, h.State.Laydown)
		if !req.Gait {
			out = append(out, motion{cmd.Name, gait.Trajectory{req.Pose}})
			continue
		}

		t, err := hexapod.GenerateTrajectory(req.Kind, h.State.Standby, req.Params)
		if err != nil {
			return nil, errors.Wrapf(err, "while generating %s", cmd.Name)
		}
		out = append(out, motion{cmd.Name, t})
	}

	t, err := gait.StandUp(h.State.Standby, h.State.Laydown, gait.DefaultParams(gait.KindStandUp).Steps)
	if err != nil {
		return nil, errors.Wrap(err, "while generating stand up")
	}

	return append(out, motion{"standup", t}), nil
}

func plotAction(c *cli.Context) error {
	m, _, err := trajectory(c)
	if err != nil {
		return err
	}

	path := c.String("output")
	if err := renderPlot(m, path); err != nil {
		return err
	}

	log.Infof("wrote %s", path)
	return nil
}

func playAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	h, err := hexapod.NewHexapod(cfg)
	if err != nil {
		return err
	}

	fps := c.Int("fps")
	if fps <= 0 {
		return errors.Errorf("fps must be positive, got %d", fps)
	}

	l := legs.New(fakeservo.New())
	h.Add(l)
	h.Add(controller.New(os.Stdin))

	log.Info("booting components")
	if err := h.Boot(); err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM, to allow the legs to sit down
	// before exiting.
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, h, l, time.Second/time.Duration(fps), c.Int("ticks"))
}

// play ticks the hexapod until the legs have halted, or the tick limit is
// reached. When the context is cancelled, the hexapod is asked to shut down
// and keeps ticking until it has.
func play(ctx context.Context, h *hexapod.Hexapod, l *legs.Legs, interval time.Duration, limit int) error {
	t := time.NewTicker(interval)
	defer t.Stop()

	done := ctx.Done()
	for n := 1; limit == 0 || n <= limit; n++ {
		select {
		case <-done:
			log.Info("caught signal, shutting down")
			h.State.Shutdown = true
			done = nil
			n--
			continue

		case now := <-t.C:
			if err := h.Tick(now); err != nil {
				return err
			}
		}

		if l.Halted() {
			log.Info("halted")
			return nil
		}
	}

	return nil
}

func commandsAction(c *cli.Context) error {
	fmt.Println(renderCommands(controller.Commands))
	return nil
}
