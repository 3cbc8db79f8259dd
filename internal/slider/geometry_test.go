package slider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointerToPercentage(t *testing.T) {
	t.Parallel()

	box := Rect{Left: 10, Top: 20, Width: 200, Height: 50}

	cases := []struct {
		name        string
		point       Point
		orientation Orientation
		want        float64
	}{
		{name: "horizontal left edge", point: Point{X: 10, Y: 30}, orientation: Horizontal, want: 0},
		{name: "horizontal middle", point: Point{X: 110, Y: 30}, orientation: Horizontal, want: 50},
		{name: "horizontal right edge", point: Point{X: 210, Y: 30}, orientation: Horizontal, want: 100},
		{name: "horizontal beyond right is not clamped", point: Point{X: 310, Y: 30}, orientation: Horizontal, want: 150},
		{name: "horizontal before left is not clamped", point: Point{X: -90, Y: 30}, orientation: Horizontal, want: -50},
		{name: "vertical top is maximum", point: Point{X: 0, Y: 20}, orientation: Vertical, want: 100},
		{name: "vertical bottom is minimum", point: Point{X: 0, Y: 70}, orientation: Vertical, want: 0},
		{name: "vertical quarter from top", point: Point{X: 0, Y: 32.5}, orientation: Vertical, want: 75},
		{name: "vertical below box", point: Point{X: 0, Y: 120}, orientation: Vertical, want: -100},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, PointerToPercentage(tc.point, box, tc.orientation), 1e-9)
		})
	}
}

func TestPointerToPercentageDegenerateBox(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, PointerToPercentage(Point{X: 5}, Rect{Width: 0, Height: 10}, Horizontal))
	require.Equal(t, 0.0, PointerToPercentage(Point{Y: 5}, Rect{Width: 10, Height: 0}, Vertical))
}

func TestParseOrientation(t *testing.T) {
	t.Parallel()

	o, err := ParseOrientation("")
	require.NoError(t, err)
	require.Equal(t, Horizontal, o)

	o, err = ParseOrientation(" Vertical ")
	require.NoError(t, err)
	require.Equal(t, Vertical, o)

	_, err = ParseOrientation("diagonal")
	require.Error(t, err)

	var decoded Orientation
	require.NoError(t, decoded.UnmarshalText([]byte("vertical")))
	require.Equal(t, Vertical, decoded)

	text, err := Vertical.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "vertical", string(text))
}
