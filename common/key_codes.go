package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)
)

// Keypad digits
const (
	KeyKP0 = 320 // Keypad 0 (GLFW)
	KeyKP1 = 321 // Keypad 1 (GLFW)
	KeyKP2 = 322 // Keypad 2 (GLFW)
	KeyKP3 = 323 // Keypad 3 (GLFW)
	KeyKP4 = 324 // Keypad 4 (GLFW)
	KeyKP5 = 325 // Keypad 5 (GLFW)
	KeyKP6 = 326 // Keypad 6 (GLFW)
	KeyKP7 = 327 // Keypad 7 (GLFW)
	KeyKP8 = 328 // Keypad 8 (GLFW)
	KeyKP9 = 329 // Keypad 9 (GLFW)
)

// DigitValue maps a top-row or keypad digit key to its value 0-9.
//
// Parameters:
//   - key: the GLFW key code
//
// Returns:
//   - int: the digit value
//   - bool: false when key is not a digit key
func DigitValue(key uint32) (int, bool) {
	switch {
	case key >= Key0 && key <= Key9:
		return int(key - Key0), true
	case key >= KeyKP0 && key <= KeyKP9:
		return int(key - KeyKP0), true
	}
	return 0, false
}
