package viewer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewer/common"
)

// Bindings maps digit keys to animation names: element k is reached with key k+1.
// Both the top-row digits and the keypad digits are bound.
type Bindings []string

// NewBindings copies names into a binding table.
func NewBindings(names []string) Bindings {
	return append(Bindings(nil), names...)
}

// Resolve returns the animation bound to a key.
//
// Parameters:
//   - key: the GLFW key code
//
// Returns:
//   - string: the bound animation name
//   - bool: false for non-digit keys, 0, and digits past the end of the table
func (b Bindings) Resolve(key uint32) (string, bool) {
	d, ok := common.DigitValue(key)
	if !ok || d < 1 || d > len(b) {
		return "", false
	}
	return b[d-1], true
}

// Lines returns one "k: name" line per binding.
func (b Bindings) Lines() []string {
	lines := make([]string, len(b))
	for i, name := range b {
		lines[i] = fmt.Sprintf("%d: %s", i+1, name)
	}
	return lines
}
