package tui

import (
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
)

// placement is where a slider view was laid out on screen.
type placement struct {
	x, y   int
	layout components.SliderLayout
}

// contains reports whether the screen cell (x, y) lies inside the view.
func (p placement) contains(x, y int) bool {
	return x >= p.x && x < p.x+p.layout.Width && y >= p.y && y < p.y+p.layout.Height
}

// router is the screen-wide pointer plumbing shared by every slider. It
// holds the single capture slot and the last known placement of each view.
type router struct {
	placements map[string]placement
	captured   slider.PointerListener
	owner      string
	// last is the most recent position routed to the captured listener.
	last  slider.Point
	moved bool
}

func newRouter() *router {
	return &router{placements: make(map[string]placement)}
}

// hostFor returns the slider.Host for the slider with the given id.
func (r *router) hostFor(id string) slider.Host {
	return &screenHost{id: id, router: r}
}

func (r *router) place(placements map[string]placement) {
	r.placements = placements
}

// reset forgets placements and drops a capture left by a discarded catalog.
func (r *router) reset() {
	r.placements = make(map[string]placement)
	r.captured = nil
	r.owner = ""
	r.moved = false
}

func (r *router) move(p slider.Point) bool {
	if r.captured == nil {
		return false
	}
	r.last, r.moved = p, true
	r.captured.PointerMove(p)
	return true
}

func (r *router) up(p slider.Point) bool {
	if r.captured == nil {
		return false
	}
	r.captured.PointerUp(p)
	return true
}

// screenHost mounts one slider in the terminal screen.
type screenHost struct {
	id     string
	router *router
}

// Bounds returns the track box of the slider as last placed.
func (h *screenHost) Bounds() slider.Rect {
	p, ok := h.router.placements[h.id]
	if !ok {
		return slider.Rect{}
	}
	return p.layout.TrackBounds(p.x, p.y)
}

// Capture routes every move and release on the screen to l until released.
func (h *screenHost) Capture(l slider.PointerListener) func() {
	h.router.captured = l
	h.router.owner = h.id
	h.router.moved = false
	return func() {
		if h.router.captured == l {
			h.router.captured = nil
			h.router.owner = ""
			h.router.moved = false
		}
	}
}
