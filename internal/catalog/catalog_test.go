package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

type countingHost struct {
	acquired int
	released int
	listener slider.PointerListener
}

func (h *countingHost) Bounds() slider.Rect {
	return slider.Rect{Width: 100, Height: 1}
}

func (h *countingHost) Capture(l slider.PointerListener) func() {
	h.acquired++
	h.listener = l
	return func() {
		h.released++
		h.listener = nil
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Version: "1.0",
		Name:    "Mixer",
		Sliders: []config.Slider{
			{ID: "volume", Label: "Volume", Max: 100, Step: 1, DefaultValue: &config.SliderValue{Values: []float64{40}}},
			{ID: "band", Max: 100, Step: 5, Range: true, DefaultValue: &config.SliderValue{Values: []float64{20, 80}}},
			{ID: "locked", Max: 10, Step: 1, Disabled: true},
		},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	c, err := Build(testConfig(), Options{})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	require.Equal(t, "Mixer", c.Name())
	require.Equal(t, 3, c.Len())
	require.Equal(t, "volume", c.At(0).Controller.ID())
	require.Equal(t, "Volume", c.At(0).Label())
	require.Equal(t, "band", c.At(1).Label(), "label falls back to the id")

	band, ok := c.Get("band")
	require.True(t, ok)
	require.Equal(t, slider.Pair{Low: 20, High: 80}, band.Controller.Value().Pair())

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestBuildReportsEverySliderFailure(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Sliders[0].Max = 0
	cfg.Sliders[2].Step = -1

	hosts := map[string]*countingHost{}
	c, err := Build(cfg, Options{HostFor: func(id string) slider.Host {
		h := &countingHost{}
		hosts[id] = h
		return h
	}})
	require.Nil(t, c)
	require.Zero(t, hosts["band"].acquired)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var sliderErr *slidekiterrors.SliderError
	require.ErrorAs(t, errs[0], &sliderErr)
	require.Equal(t, "volume", sliderErr.SliderID)
	require.ErrorIs(t, errs[0], slider.ErrInvalidBounds)

	require.ErrorAs(t, errs[1], &sliderErr)
	require.Equal(t, "locked", sliderErr.SliderID)
	require.ErrorIs(t, errs[1], slider.ErrInvalidStep)
}

func TestBuildNilConfig(t *testing.T) {
	t.Parallel()

	_, err := Build(nil, Options{})
	var validationErr *slidekiterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestCloseReleasesDragsInProgress(t *testing.T) {
	t.Parallel()

	var commits int
	hosts := map[string]*countingHost{}
	c, err := Build(testConfig(), Options{
		HostFor: func(id string) slider.Host {
			h := &countingHost{}
			hosts[id] = h
			return h
		},
		OnChangeCommitted: func(slider.ChangeEvent) { commits++ },
	})
	require.NoError(t, err)

	volume, _ := c.Get("volume")
	require.True(t, volume.Controller.PointerDown(slider.HandleLow))
	hosts["volume"].listener.PointerMove(slider.Point{X: 70})

	c.Close()
	c.Close()

	require.True(t, c.Closed())
	require.Equal(t, 1, hosts["volume"].acquired)
	require.Equal(t, 1, hosts["volume"].released)
	require.Zero(t, commits)
	for _, e := range c.Entries() {
		require.True(t, e.Controller.Closed())
	}
}

func TestPressKeys(t *testing.T) {
	t.Parallel()

	var events []string
	c, err := Build(testConfig(), Options{
		OnChange:          func(e slider.ChangeEvent) { events = append(events, "change "+e.SliderID+" "+e.Value.String()) },
		OnChangeCommitted: func(e slider.ChangeEvent) { events = append(events, "commit "+e.SliderID+" "+e.Value.String()) },
	})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	v, err := c.PressKeys("volume", slider.HandleLow, []string{"right", "ArrowRight", "end"})
	require.NoError(t, err)
	require.Equal(t, 100.0, v.Scalar())
	require.Equal(t, []string{
		"change volume 41", "commit volume 41",
		"change volume 42", "commit volume 42",
		"change volume 100", "commit volume 100",
	}, events)

	v, err = c.PressKeys("band", slider.HandleHigh, []string{"home"})
	require.NoError(t, err)
	require.Equal(t, slider.Pair{Low: 20, High: 20}, v.Pair())

	_, err = c.PressKeys("volume", slider.HandleLow, []string{"right", "enter"})
	require.ErrorContains(t, err, `unknown key "enter"`)

	_, err = c.PressKeys("nope", slider.HandleLow, nil)
	require.ErrorContains(t, err, "unknown slider")

	_, err = c.PressKeys("locked", slider.HandleLow, []string{"end"})
	var sliderErr *slidekiterrors.SliderError
	require.ErrorAs(t, err, &sliderErr)

	volume, _ := c.Get("volume")
	_, focused := volume.Controller.Focused()
	require.False(t, focused)
}

func TestSnapshot(t *testing.T) {
	t.Parallel()

	c, err := Build(testConfig(), Options{})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	states := c.Snapshot()
	require.Len(t, states, 3)

	require.Equal(t, SliderState{
		ID:          "volume",
		Label:       "Volume",
		Orientation: "horizontal",
		Step:        1,
		Handles:     []HandleState{{Handle: "value", Min: 0, Max: 100, Now: 40, ValueText: "40"}},
	}, states[0])

	require.True(t, states[1].Range)
	require.Equal(t, "low", states[1].Handles[0].Handle)
	require.Equal(t, "high", states[1].Handles[1].Handle)
	require.True(t, states[2].Disabled)
	require.Equal(t, 0.0, states[2].Handles[0].Now)
}
