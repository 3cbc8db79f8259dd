package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
)

// View renders the current model state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.renderContext()
	header := m.header()
	lines := []string{header.ViewWithContext(ctx), ""}

	for i, v := range m.sliderViews() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, v.ViewWithContext(ctx))
	}

	lines = append(lines, "", m.statusLine(), m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m Model) renderContext() components.RenderContext {
	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx = ctx.WithWidth(min(m.width, maxTrackWidth))
	}
	return ctx
}

func (m Model) header() *components.Header {
	return components.NewHeader(m.catalog.Name()).WithSubtitle(m.catalog.Description())
}

func (m Model) sliderViews() []*components.SliderView {
	entries := m.catalog.Entries()
	views := make([]*components.SliderView, 0, len(entries))
	for i, e := range entries {
		views = append(views, components.NewSliderView(e.Label(), e.Controller.Frame()).WithSelected(i == m.selected))
	}
	return views
}

// arrange computes where View draws each slider. It must follow the same
// row order as View.
func (m Model) arrange() map[string]placement {
	ctx := m.renderContext()
	placements := make(map[string]placement, m.catalog.Len())

	y := m.header().Height() + 1
	for i, v := range m.sliderViews() {
		if i > 0 {
			y++
		}
		layout := v.Layout(ctx)
		placements[m.catalog.At(i).Config.ID] = placement{x: 0, y: y, layout: layout}
		y += layout.Height
	}
	return placements
}

func (m Model) statusLine() string {
	hint := m.theme.Typography.Hint
	if m.reloadErr != "" {
		danger := components.Foreground(components.PaletteDanger)(lipgloss.NewStyle(), m.theme)
		return danger.Render("reload failed: " + m.reloadErr)
	}

	a := m.activity
	if !a.seen {
		return hint.Render("no changes yet")
	}

	kind := "change"
	if a.committed {
		kind = "commit"
	}
	return hint.Render(fmt.Sprintf("%s %s %s (%s)  changes: %d  commits: %d",
		kind, a.last.SliderID, a.last.Value, a.last.Source, a.changes, a.commits))
}
