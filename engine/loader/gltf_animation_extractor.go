package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"github.com/qmuntal/gltf"
)

// extractClip converts the first animation of a glTF document into an animation.Clip.
// The clip duration is the largest keyframe timestamp across all samplers, read from the
// input accessors' max bounds, which glTF requires for animation inputs. Targets are the
// names of the animated nodes in channel order.
//
// Parameters:
//   - doc: the decoded glTF document
//   - fallbackName: the clip name to use when the animation is unnamed
//
// Returns:
//   - *animation.Clip: the extracted clip
//   - error: ErrNoAnimation when the document has no animations, or an index error
func extractClip(doc *gltf.Document, fallbackName string) (*animation.Clip, error) {
	if doc == nil || len(doc.Animations) == 0 {
		return nil, ErrNoAnimation
	}

	anim := doc.Animations[0]
	clip := &animation.Clip{Name: anim.Name}
	if clip.Name == "" {
		clip.Name = fallbackName
	}

	for i, s := range anim.Samplers {
		if s.Input == nil || int(*s.Input) >= len(doc.Accessors) {
			return nil, fmt.Errorf("animation %q sampler %d: input accessor out of range", clip.Name, i)
		}
		acc := doc.Accessors[*s.Input]
		if len(acc.Max) == 0 {
			continue
		}
		clip.Duration = max(clip.Duration, acc.Max[0])
	}

	seen := make(map[string]bool)
	for i, ch := range anim.Channels {
		if ch.Target.Node == nil {
			continue
		}
		n := int(*ch.Target.Node)
		if n >= len(doc.Nodes) {
			return nil, fmt.Errorf("animation %q channel %d: node %d out of range", clip.Name, i, n)
		}
		name := nodeName(doc, n)
		if seen[name] {
			continue
		}
		seen[name] = true
		clip.Targets = append(clip.Targets, name)
	}

	return clip, nil
}

// nodeName returns the name of node n, or a positional name for unnamed nodes.
func nodeName(doc *gltf.Document, n int) string {
	if name := doc.Nodes[n].Name; name != "" {
		return name
	}
	return fmt.Sprintf("node_%d", n)
}
