package slider

import "math"

// PointerListener receives pointer events from anywhere in the host while a
// drag holds the capture, including positions outside the control.
type PointerListener interface {
	PointerMove(p Point)
	PointerUp(p Point)
}

// Host is the collaborator a slider is mounted in. It answers bounding-box
// queries and owns the global move/up listener slot.
type Host interface {
	// Bounds returns the control's bounding box in pointer coordinates.
	Bounds() Rect
	// Capture installs l as the global move/up listener and returns the
	// function that removes it.
	Capture(l PointerListener) (release func())
}

// DragSession is the state of one gesture. It only exists between a press and
// the matching release or teardown.
type DragSession struct {
	Handle HandleIndex
	// Origin is the bounding box captured at press time. Moves are mapped
	// against it even if the control moves during the gesture.
	Origin Rect
}

// dragSink is the owner of the live value a drag writes to.
type dragSink interface {
	currentValue() Value
	preview(h HandleIndex, v Value)
	settle(h HandleIndex, v Value)
}

// listenerLease pairs one Capture with exactly one release.
type listenerLease struct {
	release func()
}

func acquireListeners(host Host, l PointerListener) *listenerLease {
	return &listenerLease{release: host.Capture(l)}
}

// Release removes the listeners; further calls are no-ops.
func (l *listenerLease) Release() {
	if l == nil || l.release == nil {
		return
	}
	release := l.release
	l.release = nil
	release()
}

// PointerDragController runs the Idle -> Dragging -> Idle state machine.
type PointerDragController struct {
	host        Host
	model       ValueModel
	orientation Orientation
	sink        dragSink

	session *DragSession
	lease   *listenerLease
}

func newPointerDragController(host Host, model ValueModel, orientation Orientation, sink dragSink) *PointerDragController {
	return &PointerDragController{
		host:        host,
		model:       model,
		orientation: orientation,
		sink:        sink,
	}
}

// Session returns the active drag session, if any.
func (d *PointerDragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// Dragging reports whether a gesture is in progress.
func (d *PointerDragController) Dragging() bool {
	return d.session != nil
}

// Begin starts dragging handle h. The bounding box is captured once here.
func (d *PointerDragController) Begin(h HandleIndex) bool {
	if d.host == nil {
		return false
	}
	d.start(h, d.host.Bounds())
	return true
}

// BeginAt starts a drag from a press on the track: the handle closest to p is
// moved there and becomes the dragged handle.
func (d *PointerDragController) BeginAt(p Point) (HandleIndex, bool) {
	if d.host == nil {
		return HandleLow, false
	}
	origin := d.host.Bounds()
	target := d.model.FromPercentage(PointerToPercentage(p, origin, d.orientation))
	h := closestHandle(d.sink.currentValue(), target)

	d.start(h, origin)
	d.track(p)
	return h, true
}

func (d *PointerDragController) start(h HandleIndex, origin Rect) {
	// A press without a release in between replaces the stale gesture.
	d.end()
	d.session = &DragSession{Handle: h, Origin: origin}
	d.lease = acquireListeners(d.host, d)
}

// PointerMove updates the dragged handle. Moves outside a gesture are ignored.
func (d *PointerDragController) PointerMove(p Point) {
	if d.session == nil {
		return
	}
	d.track(p)
}

// PointerUp treats p as the last move, releases the listeners and commits.
func (d *PointerDragController) PointerUp(p Point) {
	if d.session == nil {
		return
	}
	h := d.session.Handle
	final, live := d.finish(p)
	if !live {
		return
	}
	d.sink.settle(h, final)
}

// Cancel ends a gesture without committing. It reports whether one was active.
func (d *PointerDragController) Cancel() bool {
	active := d.session != nil
	d.end()
	return active
}

// finish applies the last move and ends the gesture. live is false when a
// change handler tore the gesture down during that move.
func (d *PointerDragController) finish(p Point) (final Value, live bool) {
	defer d.end()
	final = d.track(p)
	return final, d.session != nil
}

func (d *PointerDragController) track(p Point) Value {
	pct := PointerToPercentage(p, d.session.Origin, d.orientation)
	candidate := d.model.FromPercentage(pct)
	next := constrain(d.session.Handle, candidate, d.sink.currentValue())
	d.sink.preview(d.session.Handle, next)
	return next
}

func (d *PointerDragController) end() {
	lease := d.lease
	d.lease = nil
	d.session = nil
	lease.Release()
}

// closestHandle picks the handle a track press should move. Ties between
// coincident handles go to the one that can move toward target.
func closestHandle(v Value, target float64) HandleIndex {
	if !v.IsRange() {
		return HandleLow
	}
	dLow := math.Abs(target - v.Low())
	dHigh := math.Abs(target - v.High())
	switch {
	case dLow < dHigh:
		return HandleLow
	case dHigh < dLow:
		return HandleHigh
	case target > v.High():
		return HandleHigh
	default:
		return HandleLow
	}
}
