package animation

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateAnimation is returned when a name is registered twice.
	ErrDuplicateAnimation = errors.New("animation: duplicate animation name")

	// ErrClipMismatch is returned when a clip animates none of the skeleton's joints.
	ErrClipMismatch = errors.New("animation: clip does not target skeleton")
)

// Clip is the immutable keyframe source an Action plays.
// Keyframe payloads stay with the model loader; the player only needs timing and targets.
type Clip struct {
	// Name is the clip identifier as stored in the source asset.
	Name string

	// Duration is the clip length in seconds. Zero means the clip never loops.
	Duration float32

	// Targets are the node names animated by the clip, in channel order without duplicates.
	Targets []string
}

// Skeleton is the shared joint hierarchy every Action of a model is bound to.
type Skeleton struct {
	// Name is the model the skeleton was read from.
	Name string

	// Joints are the joint names in skin order.
	Joints []string

	jointIndex map[string]int
}

// NewSkeleton creates a Skeleton from an ordered list of joint names.
//
// Parameters:
//   - name: the model name
//   - joints: joint names in skin order
//
// Returns:
//   - *Skeleton: the skeleton with its name lookup built
func NewSkeleton(name string, joints []string) *Skeleton {
	s := &Skeleton{
		Name:       name,
		Joints:     append([]string(nil), joints...),
		jointIndex: make(map[string]int, len(joints)),
	}
	for i, j := range s.Joints {
		if _, ok := s.jointIndex[j]; !ok {
			s.jointIndex[j] = i
		}
	}
	return s
}

// JointIndex returns the index of the named joint, or -1 when the skeleton has no such joint.
func (s *Skeleton) JointIndex(name string) int {
	if s == nil {
		return -1
	}
	if i, ok := s.jointIndex[name]; ok {
		return i
	}
	return -1
}

// Bind counts how many of the clip's targets resolve to joints of the skeleton.
// A clip with targets that resolves to none of them cannot drive this skeleton.
//
// Parameters:
//   - clip: the clip to bind
//
// Returns:
//   - int: the number of bound targets
//   - error: ErrClipMismatch when the clip has targets but none are joints
func (s *Skeleton) Bind(clip *Clip) (int, error) {
	if clip == nil {
		return 0, fmt.Errorf("animation: bind nil clip")
	}
	bound := 0
	for _, t := range clip.Targets {
		if s.JointIndex(t) >= 0 {
			bound++
		}
	}
	if len(clip.Targets) > 0 && bound == 0 {
		return 0, fmt.Errorf("%w: %q on %q", ErrClipMismatch, clip.Name, s.Name)
	}
	return bound, nil
}
