package controller

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/rookidroid/hexapod"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

// Controller reads commands, one per line, and turns them into requests for
// the legs. When the input ends, the hexapod is shut down.
type Controller struct {
	r     io.Reader
	lines chan string
	done  chan struct{}
	latch Latch[string]
}

func New(r io.Reader) *Controller {
	return &Controller{
		r:     r,
		lines: make(chan string, 16),
		done:  make(chan struct{}),
	}
}

func (c *Controller) Boot() error {
	go c.run()
	return nil
}

func (c *Controller) run() {
	defer close(c.done)

	s := bufio.NewScanner(c.r)
	for s.Scan() {
		c.lines <- s.Text()
	}

	if err := s.Err(); err != nil {
		log.Warnf("error reading commands: %s", err)
	}
}

// Tick handles every command received since the last tick. Unknown commands
// are logged and ignored. Repeating the current command does nothing, so that
// a gait in progress isn't restarted.
func (c *Controller) Tick(now time.Time, state *hexapod.State) error {
	for {
		select {
		case line := <-c.lines:
			c.handle(line, state)

		case <-c.done:
			// Drain anything sent before the reader finished.
			for {
				select {
				case line := <-c.lines:
					c.handle(line, state)
				default:
					if !state.Shutdown {
						log.Infof("end of input, shutting down")
						state.Shutdown = true
					}
					return nil
				}
			}

		default:
			return nil
		}
	}
}

func (c *Controller) handle(line string, state *hexapod.State) {
	if strings.TrimSpace(line) == "" {
		return
	}

	cmd, err := Lookup(line)
	if err != nil {
		log.Warnf("%s", err)
		return
	}

	if !c.latch.Run(cmd.Name) {
		return
	}

	req := cmd.Request(state.Standby, state.Laydown)
	state.Request = &req
	log.Infof("command=%s", cmd.Name)
}
