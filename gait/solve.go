package gait

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// SolveTrajectory returns the joint angles of every waypoint of the
// trajectory. Waypoints are solved concurrently, but the result is the same as
// solving them in order. If any waypoint can't be solved, the error contains
// one entry for each of them, annotated with its index.
func SolveTrajectory(ctx context.Context, t Trajectory, cfg kinematics.Config) ([]kinematics.JointAngles, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]kinematics.JointAngles, len(t))
	errs := make([]error, len(t))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range t {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			a, err := kinematics.Solve(t[i], cfg)
			if err != nil {
				errs[i] = errors.Wrapf(err, "waypoint %d", i)
				return nil
			}

			out[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := multierr.Combine(errs...); err != nil {
		log.Debugf("failed to solve trajectory of %d waypoints: %s", len(t), err)
		return nil, err
	}

	return out, nil
}
