package slider

// HandleSemantics is the numeric description of one handle exposed to
// assistive technology and external inspection.
type HandleSemantics struct {
	Handle      HandleIndex
	Min         float64
	Max         float64
	Now         float64
	Disabled    bool
	Orientation Orientation
	ValueText   string
}

// Semantics returns one record per handle.
func (c *Controller) Semantics() []HandleSemantics {
	rng := c.model.Range()
	value := c.Value()

	handles := make([]HandleSemantics, 0, value.Handles())
	for i := 0; i < value.Handles(); i++ {
		h := HandleIndex(i)
		now := value.At(h)
		handles = append(handles, HandleSemantics{
			Handle:      h,
			Min:         rng.Min,
			Max:         rng.Max,
			Now:         now,
			Disabled:    c.disabled,
			Orientation: c.orientation,
			ValueText:   c.format(now),
		})
	}
	return handles
}

// HandleFrame is the render state of one handle.
type HandleFrame struct {
	Handle  HandleIndex
	Value   float64
	Percent float64
	// Active is set while the handle is being dragged.
	Active  bool
	Focused bool
	Label   string
}

// MarkFrame is a mark positioned on the track.
type MarkFrame struct {
	Mark
	Percent float64
	// Selected marks fall inside the filled part of the track.
	Selected bool
}

// Frame is everything a renderer needs for one paint.
type Frame struct {
	Orientation Orientation
	Disabled    bool
	Handles     []HandleFrame
	// TrackStart and TrackEnd delimit the filled part of the track, in percent.
	TrackStart float64
	TrackEnd   float64
	Marks      []MarkFrame
}

// Frame returns the current render state.
func (c *Controller) Frame() Frame {
	value := c.Value()
	session, dragging := c.drag.Session()

	frame := Frame{
		Orientation: c.orientation,
		Disabled:    c.disabled,
		Handles:     make([]HandleFrame, 0, value.Handles()),
		Marks:       make([]MarkFrame, 0, len(c.marks)),
	}

	for i := 0; i < value.Handles(); i++ {
		h := HandleIndex(i)
		v := value.At(h)
		frame.Handles = append(frame.Handles, HandleFrame{
			Handle:  h,
			Value:   v,
			Percent: c.model.ToPercentage(v),
			Active:  dragging && session.Handle == h,
			Focused: c.hasFocus && c.focused == h,
			Label:   c.format(v),
		})
	}

	if c.isRange {
		frame.TrackStart = c.model.ToPercentage(value.Low())
		frame.TrackEnd = c.model.ToPercentage(value.High())
	} else {
		frame.TrackEnd = c.model.ToPercentage(value.Low())
	}

	for _, mark := range c.marks {
		pct := c.model.ToPercentage(mark.Value)
		frame.Marks = append(frame.Marks, MarkFrame{
			Mark:     mark,
			Percent:  pct,
			Selected: pct >= frame.TrackStart && pct <= frame.TrackEnd,
		})
	}

	return frame
}
