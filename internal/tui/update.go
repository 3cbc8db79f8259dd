package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Next):
		m.selectEntry(m.selected + 1)

	case key.Matches(msg, m.keys.Prev):
		m.selectEntry(m.selected - 1)

	case key.Matches(msg, m.keys.LowHandle):
		m.focusSelected(slider.HandleLow)

	case key.Matches(msg, m.keys.HighHandle):
		m.focusSelected(slider.HandleHigh)

	case m.keys.adjusts(msg):
		e := m.Selected()
		if e == nil {
			return m, nil
		}
		if k, ok := sliderKey(msg); ok {
			e.Controller.KeyDown(k)
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := slider.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.router.move(p)

	case tea.MouseActionRelease:
		m.router.up(p)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.endStaleGesture()
		m.press(msg.X, msg.Y, p)
	}

	return m, nil
}

// endStaleGesture handles a press while another gesture still holds the
// capture, which means its release was lost. The gesture ends where the
// pointer was last routed to it, or is cancelled if it never moved.
func (m *Model) endStaleGesture() {
	r := m.router
	if r.captured == nil {
		return
	}
	if r.moved {
		r.up(r.last)
		return
	}
	if e, ok := m.catalog.Get(r.owner); ok {
		e.Controller.CancelDrag()
	}
	r.captured, r.owner = nil, ""
}

// press starts a gesture on whichever slider track lies under (x, y).
func (m *Model) press(x, y int, p slider.Point) {
	placements := m.arrange()
	m.router.place(placements)

	for i, e := range m.catalog.Entries() {
		pl, ok := placements[e.Config.ID]
		if !ok || !pl.contains(x, y) {
			continue
		}
		row, col := y-pl.y, x-pl.x
		if !pl.layout.OnTrack(row, col) {
			return
		}

		ctrl := e.Controller
		if ctrl.Disabled() {
			return
		}
		m.selected = i
		m.focusSelected(slider.HandleLow)

		var under []slider.HandleIndex
		for _, h := range ctrl.Frame().Handles {
			if r, c := pl.layout.HandleCell(h.Percent); r == row && c == col {
				under = append(under, h.Handle)
			}
		}
		if len(under) == 1 {
			ctrl.PointerDown(under[0])
			return
		}
		ctrl.PointerDownOnTrack(p)
		return
	}
}

func (m Model) handleReload(msg ReloadMsg) (tea.Model, tea.Cmd) {
	next := m.Init()

	if msg.Err != nil {
		m.reloadErr = msg.Err.Error()
		m.log.Warn("keeping previous catalog", "error", msg.Err.Error())
		return m, next
	}

	cat, err := m.build(msg.Config)
	if err != nil {
		m.reloadErr = err.Error()
		m.log.Warn("keeping previous catalog", "error", err.Error())
		return m, next
	}

	previous := m.catalog
	if err := m.adopt(cat); err != nil {
		cat.Close()
		m.reloadErr = err.Error()
		return m, next
	}
	previous.Close()
	m.router.reset()

	m.reloadErr = ""
	m.log.Info("catalog reloaded", "sliders", cat.Len())
	return m, next
}
