package kinematics

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/rookidroid/hexapod/math3d"
)

// Segment is one rigid link of a leg. Its origin is at the end of its parent,
// rotated by the joint transform. The vector is the offset from the origin to
// the end of the segment, in its own coordinate space.
type Segment struct {
	Name   string
	parent *Segment
	Child  *Segment
	Joint  math3d.Matrix44
	vec    r3.Vector
}

func MakeSegment(name string, parent *Segment, joint math3d.Matrix44, vec r3.Vector) *Segment {
	s := &Segment{
		Name:   name,
		parent: parent,
		Joint:  joint,
		vec:    vec,
	}

	if parent != nil {
		parent.Child = s
	}

	return s
}

func MakeRootSegment(vec r3.Vector) *Segment {
	return MakeSegment("root", nil, math3d.Identity, vec)
}

func (s Segment) String() string {
	var childStr string

	if s.Child != nil {
		childStr = s.Child.String()
	} else {
		childStr = "nil"
	}

	return fmt.Sprintf("&Seg{%s: %v %s}", s.Name, s.vec, childStr)
}

// Start returns the coordinates of the start of this segment, in the body
// frame.
func (s *Segment) Start() r3.Vector {
	return s.Project(r3.Vector{})
}

// End returns the coordinates of the end of this segment, in the body frame.
func (s *Segment) End() r3.Vector {
	return s.Project(s.vec)
}

// WorldMatrix returns a matrix which can be applied to a vector in this
// segment's coordinate space to convert it to the body frame.
func (s *Segment) WorldMatrix() math3d.Matrix44 {
	if s.parent != nil {
		v := s.parent.vec
		return s.parent.WorldMatrix().Mul(math3d.Translate(v.X, v.Y, v.Z)).Mul(s.Joint)
	}

	return s.Joint
}

// Project transforms a vector in this segment's coordinate space into the body
// frame.
func (s *Segment) Project(v r3.Vector) r3.Vector {
	return math3d.TransformPoint(s.WorldMatrix(), v)
}

// Chain returns the segments of the given leg, posed at the given joint
// angles. The last one is the tibia, which ends at the foot tip.
func Chain(leg Leg, j Joints, cfg Config) []*Segment {
	s := cfg.Scale[leg]

	// The position of the leg is specified by two segments. The first positions
	// it, then the second (which is as long as the offset to joint 1) rotates it
	// into the mount orientation.
	root := MakeRootSegment(cfg.Mount(leg))
	mount := MakeSegment("mount", root, math3d.RotateZ(cfg.MountAngle[leg]), r3.Vector{X: cfg.RootToJoint1})

	// Solved angles are measured in the flipped leg frame, so the coxa yaws the
	// other way here. The femur is pitched up by its elevation, and the tibia
	// bends down by the supplement of the inner angle at joint 3.
	coxa := MakeSegment("coxa", mount, math3d.RotateZ(j.Coxa-90), r3.Vector{X: cfg.Joint1ToJoint2})
	femur := MakeSegment("femur", coxa, math3d.RotateY(-(90-j.Femur)/s), r3.Vector{X: cfg.Joint2ToJoint3})
	tibia := MakeSegment("tibia", femur, math3d.RotateY(180-(90+(j.Tibia-90)/s)), r3.Vector{X: cfg.Joint3ToTip})

	return []*Segment{root, mount, coxa, femur, tibia}
}

// ForwardKinematics returns the foot tip positions for the given joint angles,
// by walking the segment chain of each leg.
func ForwardKinematics(angles JointAngles, cfg Config) (Pose, error) {
	var p Pose

	if err := cfg.Validate(); err != nil {
		return p, err
	}

	for _, leg := range Legs {
		chain := Chain(leg, angles[leg], cfg)
		p[leg] = chain[len(chain)-1].End()
	}

	return p, nil
}
