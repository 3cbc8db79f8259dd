package slider

import "strings"

// pageMultiplier scales Step for PageUp/PageDown and shifted arrows.
const pageMultiplier = 10

// Key is a key the keyboard controller understands.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShiftArrowRight
	KeyShiftArrowUp
	KeyShiftArrowLeft
	KeyShiftArrowDown
)

var keyNames = map[string]Key{
	"arrowright":       KeyArrowRight,
	"right":            KeyArrowRight,
	"arrowup":          KeyArrowUp,
	"up":               KeyArrowUp,
	"arrowleft":        KeyArrowLeft,
	"left":             KeyArrowLeft,
	"arrowdown":        KeyArrowDown,
	"down":             KeyArrowDown,
	"home":             KeyHome,
	"end":              KeyEnd,
	"pageup":           KeyPageUp,
	"pgup":             KeyPageUp,
	"pagedown":         KeyPageDown,
	"pgdown":           KeyPageDown,
	"shift+arrowright": KeyShiftArrowRight,
	"shift+right":      KeyShiftArrowRight,
	"shift+arrowup":    KeyShiftArrowUp,
	"shift+up":         KeyShiftArrowUp,
	"shift+arrowleft":  KeyShiftArrowLeft,
	"shift+left":       KeyShiftArrowLeft,
	"shift+arrowdown":  KeyShiftArrowDown,
	"shift+down":       KeyShiftArrowDown,
}

// ParseKey maps DOM key names (ArrowRight, PageUp) and terminal key names
// (right, pgup, shift+left) to a Key. Matching is case-insensitive.
func ParseKey(name string) (Key, bool) {
	key, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return key, ok
}

func (k Key) String() string {
	switch k {
	case KeyArrowRight:
		return "ArrowRight"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyShiftArrowRight:
		return "Shift+ArrowRight"
	case KeyShiftArrowUp:
		return "Shift+ArrowUp"
	case KeyShiftArrowLeft:
		return "Shift+ArrowLeft"
	case KeyShiftArrowDown:
		return "Shift+ArrowDown"
	default:
		return "Unknown"
	}
}

// direction returns +1/-1 and a step multiplier for relative keys.
func (k Key) direction() (sign float64, multiplier float64, ok bool) {
	switch k {
	case KeyArrowRight, KeyArrowUp:
		return 1, 1, true
	case KeyArrowLeft, KeyArrowDown:
		return -1, 1, true
	case KeyPageUp, KeyShiftArrowRight, KeyShiftArrowUp:
		return 1, pageMultiplier, true
	case KeyPageDown, KeyShiftArrowLeft, KeyShiftArrowDown:
		return -1, pageMultiplier, true
	default:
		return 0, 0, false
	}
}

// KeyboardStepController turns key presses into values. It keeps no state of
// its own; the focused handle and current value are passed in.
type KeyboardStepController struct {
	model ValueModel
}

// NewKeyboardStepController returns a controller stepping through model.
func NewKeyboardStepController(model ValueModel) KeyboardStepController {
	return KeyboardStepController{model: model}
}

// Step returns the value after pressing k on handle h. The second result is
// false for keys that are not consumed, in which case current is returned.
func (c KeyboardStepController) Step(k Key, h HandleIndex, current Value) (Value, bool) {
	rng := c.model.Range()
	from := current.At(h)

	var candidate float64
	switch k {
	case KeyHome:
		candidate = rng.Min
	case KeyEnd:
		candidate = rng.Max
	default:
		sign, multiplier, ok := k.direction()
		if !ok {
			return current, false
		}
		if c.model.SnapsToMarks() {
			if sign > 0 {
				candidate, _ = c.model.NextMark(from)
			} else {
				candidate, _ = c.model.PrevMark(from)
			}
		} else {
			candidate = c.model.Normalize(from + sign*rng.Step*multiplier)
		}
	}

	return constrain(h, candidate, current), true
}
