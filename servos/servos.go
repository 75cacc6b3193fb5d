package servos

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/kinematics"
)

// Driver moves the joints of the legs. Drivers may buffer moves, in which
// case nothing happens until Action is called.
type Driver interface {
	SetBuffered(bool)
	Move(leg kinematics.Leg, j kinematics.Joints) error
	Action() error

	// Relax powers down every joint. This should be called before terminating
	// the program, to ensure that servos don't stay powered up indefinitely.
	Relax() error
}

// Recorder is a Driver which keeps every frame sent to it in memory. A frame
// is recorded each time buffered moves are actioned, or on every move when not
// buffered.
type Recorder struct {
	mu       sync.Mutex
	buffered bool
	pending  kinematics.JointAngles
	frames   []kinematics.JointAngles
	relaxed  bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetBuffered(b bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buffered = b
}

func (r *Recorder) Move(leg kinematics.Leg, j kinematics.Joints) error {
	if !leg.Valid() {
		return errors.Errorf("no such leg: %d", int(leg))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[leg] = j
	r.relaxed = false
	if !r.buffered {
		r.frames = append(r.frames, r.pending)
	}

	return nil
}

func (r *Recorder) Action() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, r.pending)
	return nil
}

func (r *Recorder) Relax() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relaxed = true
	return nil
}

// Frames returns a copy of every frame recorded so far.
func (r *Recorder) Frames() []kinematics.JointAngles {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]kinematics.JointAngles(nil), r.frames...)
}

func (r *Recorder) Relaxed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.relaxed
}
