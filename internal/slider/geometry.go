package slider

import (
	"fmt"
	"strings"
)

// Orientation selects the axis a slider moves along.
type Orientation int

const (
	Horizontal Orientation = iota
	// Vertical sliders grow upward: the top of the box is the maximum.
	Vertical
)

// String returns the configuration spelling of o.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	default:
		return "horizontal"
	}
}

// ParseOrientation accepts "horizontal" or "vertical"; an empty string is horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Point is a pointer position in the host's coordinate space.
type Point struct {
	X float64
	Y float64
}

// Rect is the control's bounding box in the same space as Point.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// PointerToPercentage converts p into a percentage along the active axis of box.
// The result is not clamped; a box with no extent on that axis maps to 0.
func PointerToPercentage(p Point, box Rect, o Orientation) float64 {
	if o == Vertical {
		if box.Height <= 0 {
			return 0
		}
		return (1 - (p.Y-box.Top)/box.Height) * 100
	}
	if box.Width <= 0 {
		return 0
	}
	return (p.X - box.Left) / box.Width * 100
}
