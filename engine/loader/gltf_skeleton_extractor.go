package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"github.com/qmuntal/gltf"
)

// extractSkeleton reads the joints of the first skin in a glTF document.
// Joint names come from the referenced nodes, in skin order.
//
// Parameters:
//   - doc: the decoded glTF document
//   - name: the model name recorded on the skeleton
//
// Returns:
//   - *animation.Skeleton: the skeleton
//   - error: ErrNoSkeleton when the document has no skin with joints
func extractSkeleton(doc *gltf.Document, name string) (*animation.Skeleton, error) {
	if doc == nil || len(doc.Skins) == 0 {
		return nil, ErrNoSkeleton
	}

	skin := doc.Skins[0]
	if len(skin.Joints) == 0 {
		return nil, ErrNoSkeleton
	}

	joints := make([]string, 0, len(skin.Joints))
	for _, j := range skin.Joints {
		if int(j) >= len(doc.Nodes) {
			return nil, fmt.Errorf("skin joint %d out of range", j)
		}
		joints = append(joints, nodeName(doc, int(j)))
	}
	return animation.NewSkeleton(name, joints), nil
}
