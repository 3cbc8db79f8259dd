package slider

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/slidekit/internal/logger"
)

// ErrControlled is returned by SetValue when the caller owns the value.
var ErrControlled = errors.New("slider value is controlled by the caller")

// ownership is either owned (the controller stores the value) or mirrored
// (the caller does, and the controller only reads it).
type ownership interface {
	isOwnership()
}

type owned struct {
	value Value
}

type mirrored struct {
	get func() Value
}

func (*owned) isOwnership()   {}
func (mirrored) isOwnership() {}

// Controller is a slider: it holds the value, routes pointer and keyboard input
// and emits change and commit events.
type Controller struct {
	id          string
	model       ValueModel
	keys        KeyboardStepController
	drag        *PointerDragController
	orientation Orientation
	isRange     bool
	disabled    bool
	marks       []Mark
	format      func(float64) string

	value ownership

	focused  HandleIndex
	hasFocus bool
	closed   bool

	onChange func(ChangeEvent)
	onCommit func(ChangeEvent)
	log      *logger.Logger
}

// New validates opts and builds a Controller. Invalid bounds or step are
// rejected with a *errors.ValidationError wrapping ErrInvalidBounds or
// ErrInvalidStep.
func New(opts Options) (*Controller, error) {
	rng, err := NewRange(opts.Min, opts.Max, opts.Step)
	if err != nil {
		return nil, err
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	marks := opts.allMarks(rng)
	model := NewValueModel(rng, marks, opts.SnapToMarks)

	format := opts.Format
	if format == nil {
		format = formatNumber
	}

	c := &Controller{
		id:          id,
		model:       model,
		keys:        NewKeyboardStepController(model),
		orientation: opts.Orientation,
		isRange:     opts.Range,
		disabled:    opts.Disabled,
		marks:       marks,
		format:      format,
		onChange:    opts.OnChange,
		onCommit:    opts.OnChangeCommitted,
		log:         opts.Logger.WithFields(map[string]any{"slider_id": id}),
	}
	c.drag = newPointerDragController(opts.Host, model, opts.Orientation, c)

	if opts.Controlled != nil {
		c.value = mirrored{get: opts.Controlled}
	} else {
		c.value = &owned{value: c.normalizeValue(opts.DefaultValue)}
	}

	c.log.Debug("slider created", "range", opts.Range, "controlled", c.Controlled())
	return c, nil
}

// ID returns the slider's identifier.
func (c *Controller) ID() string {
	return c.id
}

// Range returns the configured bounds.
func (c *Controller) Range() Range {
	return c.model.Range()
}

// Model exposes the value model.
func (c *Controller) Model() ValueModel {
	return c.model
}

// Orientation returns the slider axis.
func (c *Controller) Orientation() Orientation {
	return c.orientation
}

// IsRange reports whether the slider has two handles.
func (c *Controller) IsRange() bool {
	return c.isRange
}

// Marks returns the slider's marks, including generated step marks.
func (c *Controller) Marks() []Mark {
	return append([]Mark(nil), c.marks...)
}

// Controlled reports whether the caller owns the value.
func (c *Controller) Controlled() bool {
	_, ok := c.value.(mirrored)
	return ok
}

// Value returns the current value. In controlled mode the caller's value is
// read and clamped into range.
func (c *Controller) Value() Value {
	switch o := c.value.(type) {
	case mirrored:
		return c.clampValue(o.get())
	case *owned:
		return o.value
	default:
		return c.normalizeValue(Value{})
	}
}

// SetValue replaces the value of an uncontrolled slider without emitting
// events. Values are normalized and a pair is put in order.
func (c *Controller) SetValue(v Value) error {
	o, ok := c.value.(*owned)
	if !ok {
		c.log.Debug("rejected write to controlled slider", "value", v.String())
		return ErrControlled
	}
	o.value = c.normalizeValue(v)
	return nil
}

// Disabled reports whether input is suppressed.
func (c *Controller) Disabled() bool {
	return c.disabled
}

// SetDisabled toggles input. Disabling cancels a drag in progress and drops focus.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
	if !disabled {
		return
	}
	c.hasFocus = false
	if c.drag.Cancel() {
		c.log.Debug("drag cancelled by disable")
	}
}

// Focus moves keyboard focus to handle h. Disabled sliders cannot be focused.
func (c *Controller) Focus(h HandleIndex) bool {
	if c.disabled || c.closed {
		return false
	}
	if !c.isRange {
		h = HandleLow
	}
	c.focused = h
	c.hasFocus = true
	return true
}

// Blur removes keyboard focus.
func (c *Controller) Blur() {
	c.hasFocus = false
}

// Focused returns the focused handle.
func (c *Controller) Focused() (HandleIndex, bool) {
	return c.focused, c.hasFocus
}

// KeyDown applies k to the focused handle. It reports whether the key was
// consumed. Each consumed key is its own commit.
func (c *Controller) KeyDown(k Key) bool {
	if c.disabled || c.closed || !c.hasFocus {
		return false
	}
	next, ok := c.keys.Step(k, c.focused, c.Value())
	if !ok {
		return false
	}
	c.propose(c.focused, next, SourceKeyboard)
	c.commit(c.focused, next, SourceKeyboard)
	return true
}

// PointerDown starts dragging handle h. It is a no-op when disabled, closed or
// not mounted in a host.
func (c *Controller) PointerDown(h HandleIndex) bool {
	if c.disabled || c.closed {
		return false
	}
	if !c.isRange {
		h = HandleLow
	}
	if !c.drag.Begin(h) {
		return false
	}
	c.focused, c.hasFocus = h, true
	c.log.Debug("drag started", "handle", h.String())
	return true
}

// PointerDownOnTrack moves the closest handle to p and starts dragging it.
func (c *Controller) PointerDownOnTrack(p Point) bool {
	if c.disabled || c.closed {
		return false
	}
	h, ok := c.drag.BeginAt(p)
	if !ok {
		return false
	}
	c.focused, c.hasFocus = h, true
	c.log.Debug("drag started from track", "handle", h.String())
	return true
}

// Dragging reports whether a pointer gesture is active.
func (c *Controller) Dragging() bool {
	return c.drag.Dragging()
}

// DragSession returns the active gesture, if any.
func (c *Controller) DragSession() (DragSession, bool) {
	return c.drag.Session()
}

// CancelDrag ends a gesture in progress without committing. It reports
// whether one was active.
func (c *Controller) CancelDrag() bool {
	if !c.drag.Cancel() {
		return false
	}
	c.log.Debug("drag cancelled")
	return true
}

// Close tears the slider down. A drag still in progress releases its global
// listeners here without committing. Close is idempotent.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.hasFocus = false
	if c.drag.Cancel() {
		c.log.Warn("slider closed mid-drag, pointer listeners released")
	}
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	return c.closed
}

func (c *Controller) currentValue() Value {
	return c.Value()
}

func (c *Controller) preview(h HandleIndex, v Value) {
	c.propose(h, v, SourcePointer)
}

func (c *Controller) settle(h HandleIndex, v Value) {
	if c.closed || c.disabled {
		return
	}
	c.log.Debug("drag committed", "handle", h.String(), "value", v.String())
	c.commit(h, v, SourcePointer)
}

// propose runs a candidate through ownership: stored when owned, only
// announced when mirrored. Unchanged values are not announced.
func (c *Controller) propose(h HandleIndex, v Value, source Source) {
	if v.Equal(c.Value()) {
		return
	}
	if o, ok := c.value.(*owned); ok {
		o.value = v
	}
	if c.onChange != nil {
		c.onChange(ChangeEvent{SliderID: c.id, Value: v, Handle: h, Source: source})
	}
}

func (c *Controller) commit(h HandleIndex, v Value, source Source) {
	if c.onCommit != nil {
		c.onCommit(ChangeEvent{SliderID: c.id, Value: v, Handle: h, Source: source})
	}
}

// normalizeValue shapes v to the slider mode, quantizes each handle and orders a pair.
func (c *Controller) normalizeValue(v Value) Value {
	return c.shape(v, c.model.Normalize)
}

func (c *Controller) clampValue(v Value) Value {
	return c.shape(v, c.model.Clamp)
}

func (c *Controller) shape(v Value, fix func(float64) float64) Value {
	if !c.isRange {
		return Single(fix(v.Low()))
	}
	if !v.IsRange() {
		rng := c.model.Range()
		return PairOf(rng.Min, rng.Max)
	}
	ends := []float64{fix(v.Low()), fix(v.High())}
	sort.Float64s(ends)
	return PairOf(ends[0], ends[1])
}
