package utils

import (
	"github.com/pkg/errors"
	"github.com/rookidroid/hexapod/servos"
)

// Sync runs the given function while the driver is in buffered mode, then
// initiates any movements at once by calling Action. If the function fails,
// nothing is actioned.
func Sync(d servos.Driver, f func() error) error {
	d.SetBuffered(true)
	err := f()
	d.SetBuffered(false)

	if err != nil {
		return err
	}

	if err := d.Action(); err != nil {
		return errors.Wrap(err, "while sending action")
	}

	return nil
}
