package kinematics

import (
	"math"
	"os"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "kinematics",
})

const (

	// Where the corner legs are attached, relative to the center of the body.
	// The middle legs sit on the X axis, a bit further out.
	mountCornerX = 22.41
	mountCornerY = 55.41
	mountMiddleX = 29.87

	rootToJoint1   = 20.75
	joint1ToJoint2 = 28.0
	joint2ToJoint3 = 42.6
	joint3ToTip    = 89.07
)

// Config describes the geometry of the robot. It's passed by value to every
// solver, and never modified by them.
type Config struct {

	// Where each leg is attached to the body (mm), and the direction it points
	// in when the coxa is centered (degrees, counter-clockwise from +X).
	MountX     [NumLegs]float64 `yaml:"mount_x"`
	MountY     [NumLegs]float64 `yaml:"mount_y"`
	MountAngle [NumLegs]float64 `yaml:"mount_angle"`

	// Multiplied into the femur and tibia angles of each leg, so that mirrored
	// servos can be driven with -1.
	Scale [NumLegs]float64 `yaml:"scale"`

	RootToJoint1   float64 `yaml:"root_to_joint1"`
	Joint1ToJoint2 float64 `yaml:"joint1_to_joint2"`
	Joint2ToJoint3 float64 `yaml:"joint2_to_joint3"`
	Joint3ToTip    float64 `yaml:"joint3_to_tip"`
}

// DefaultConfig returns the geometry of the reference robot.
func DefaultConfig() Config {
	return Config{
		MountX:         [NumLegs]float64{mountCornerX, mountMiddleX, mountCornerX, -mountCornerX, -mountMiddleX, -mountCornerX},
		MountY:         [NumLegs]float64{mountCornerY, 0, -mountCornerY, mountCornerY, 0, -mountCornerY},
		MountAngle:     [NumLegs]float64{45, 0, -45, 135, 180, -135},
		Scale:          [NumLegs]float64{1, 1, 1, 1, 1, 1},
		RootToJoint1:   rootToJoint1,
		Joint1ToJoint2: joint1ToJoint2,
		Joint2ToJoint3: joint2ToJoint3,
		Joint3ToTip:    joint3ToTip,
	}
}

// LoadConfig reads a YAML geometry file. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "while reading config %s", path)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "while parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "while loading config %s", path)
	}

	log.Debugf("loaded config from %s", path)
	return cfg, nil
}

// Validate returns an error wrapping ErrInvalidParameter if the geometry can't
// describe a real robot.
func (c Config) Validate() error {
	for _, leg := range Legs {
		if !finite(c.MountX[leg], c.MountY[leg], c.MountAngle[leg], c.Scale[leg]) {
			return Invalidf("non-finite mount or scale for leg %s", leg)
		}

		if c.Scale[leg] == 0 {
			return Invalidf("zero scale for leg %s", leg)
		}
	}

	if !finite(c.RootToJoint1, c.Joint1ToJoint2, c.Joint2ToJoint3, c.Joint3ToTip) {
		return Invalidf("non-finite link length")
	}

	if c.RootToJoint1 < 0 {
		return Invalidf("root to joint 1 length must not be negative, got %f", c.RootToJoint1)
	}

	if c.Joint1ToJoint2 <= 0 || c.Joint2ToJoint3 <= 0 || c.Joint3ToTip <= 0 {
		return Invalidf("link lengths must be positive, got %f, %f, %f",
			c.Joint1ToJoint2, c.Joint2ToJoint3, c.Joint3ToTip)
	}

	return nil
}

// Mount returns the point at which the given leg is attached to the body.
func (c Config) Mount(leg Leg) r3.Vector {
	return r3.Vector{X: c.MountX[leg], Y: c.MountY[leg]}
}

// Reach returns the closest and furthest distances from joint 2 that the tip of
// a leg can be moved to.
func (c Config) Reach() (float64, float64) {
	return math.Abs(c.Joint2ToJoint3 - c.Joint3ToTip), c.Joint2ToJoint3 + c.Joint3ToTip
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
