package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidekit/internal/catalog"
	"github.com/alexisbeaulieu97/slidekit/internal/events"
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

type simulateOptions struct {
	sliderID string
	keys     []string
	handle   string
	drag     []float64
}

func newSimulateCmd(root *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <config>",
		Short: "Feed keys or a pointer gesture to one slider and print its events",
		Long: `Simulate drives one slider without a terminal UI. --keys presses the named keys
(ArrowRight, PageUp, shift+left, home, ...) on the focused handle. --drag presses the
track at the first percentage, moves through the others and releases at the last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.sliderID, "slider", "", "ID of the slider to drive")
	cmd.Flags().StringSliceVar(&opts.keys, "keys", nil, "Comma-separated key names")
	cmd.Flags().StringVar(&opts.handle, "handle", "low", "Handle receiving keys on range sliders (low or high)")
	cmd.Flags().Float64SliceVar(&opts.drag, "drag", nil, "Comma-separated track percentages for a pointer gesture")
	_ = cmd.MarkFlagRequired("slider")

	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootFlags, opts *simulateOptions, path string) error {
	if len(opts.keys) == 0 && len(opts.drag) == 0 {
		return newCommandError("simulate", "reading flags", errors.New("nothing to simulate"), "Pass --keys, --drag or both.")
	}

	var handle slider.HandleIndex
	switch opts.handle {
	case "low":
		handle = slider.HandleLow
	case "high":
		handle = slider.HandleHigh
	default:
		return newCommandError("simulate", "reading flags", fmt.Errorf("unknown handle %q", opts.handle), "Use --handle low or --handle high.")
	}

	cfg, err := loadConfig("simulate", path)
	if err != nil {
		return err
	}

	log, err := root.newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return newCommandError("simulate", "configuring logging", err, "Use one of debug, info, warn or error.")
	}

	out := cmd.OutOrStdout()
	host := &gestureHost{}
	publisher := events.NewPublisher(log)
	publisher.SubscribeAll(printEvent(out))

	cat, err := catalog.Build(cfg, catalog.Options{
		Logger: log,
		HostFor: func(id string) slider.Host {
			if id == opts.sliderID {
				return host
			}
			return nil
		},
		OnChange:          publisher.OnChange,
		OnChangeCommitted: publisher.OnCommit,
	})
	if err != nil {
		return newCommandError("simulate", "building sliders", err, "Check the bounds and default values of the reported sliders.")
	}
	defer cat.Close()

	entry, ok := cat.Get(opts.sliderID)
	if !ok {
		return newCommandError("simulate", "selecting slider", fmt.Errorf("unknown slider %q", opts.sliderID), "Run 'slidekit inspect' to list the slider ids.")
	}

	if len(opts.keys) > 0 {
		if _, err := cat.PressKeys(opts.sliderID, handle, opts.keys); err != nil {
			return newCommandError("simulate", "pressing keys", err, "Use arrow, page, home and end key names on an enabled slider.")
		}
	}

	if len(opts.drag) > 0 {
		if err := host.perform(entry.Controller, opts.drag); err != nil {
			return newCommandError("simulate", "dragging", err, "Drag an enabled slider.")
		}
	}

	fmt.Fprintf(out, "final %s %s\n", entry.Controller.ID(), entry.Controller.Value())
	return nil
}

func printEvent(w io.Writer) events.Handler {
	return func(e events.Event) {
		fmt.Fprintf(w, "%s %s %s (%s, %s)\n", e.Kind, e.SliderID, e.Value, e.Source, e.Handle)
	}
}

// gestureHost mounts a slider in a 100x100 box so percentages are
// coordinates.
type gestureHost struct {
	listener slider.PointerListener
}

func (h *gestureHost) Bounds() slider.Rect {
	return slider.Rect{Width: 100, Height: 100}
}

func (h *gestureHost) Capture(l slider.PointerListener) func() {
	h.listener = l
	return func() {
		h.listener = nil
	}
}

func (h *gestureHost) perform(ctrl *slider.Controller, percents []float64) error {
	point := func(pct float64) slider.Point {
		if ctrl.Orientation() == slider.Vertical {
			return slider.Point{X: 50, Y: 100 - pct}
		}
		return slider.Point{X: pct, Y: 50}
	}

	if !ctrl.PointerDownOnTrack(point(percents[0])) {
		return errors.New("slider did not accept the press")
	}
	for _, pct := range percents[1:] {
		if h.listener != nil {
			h.listener.PointerMove(point(pct))
		}
	}
	if h.listener != nil {
		h.listener.PointerUp(point(percents[len(percents)-1]))
	}
	return nil
}
