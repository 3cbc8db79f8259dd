package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

const (
	// DefaultTrackLength is used for horizontal sliders when neither the
	// component nor the context sets a width.
	DefaultTrackLength = 30
	// DefaultVerticalTrackLength is the height of a vertical track.
	DefaultVerticalTrackLength = 10
	// MinTrackLength keeps both ends of a track distinct.
	MinTrackLength = 2

	trackIndent = 2
)

// SliderLayout describes where a rendered slider puts its track, relative to
// the top-left cell of the view.
type SliderLayout struct {
	Orientation slider.Orientation
	TrackRow    int
	TrackCol    int
	Length      int
	Width       int
	Height      int
}

// TrackBounds returns the pointer-space box of the track for a view drawn at
// (originX, originY). The box spans cell centres, so the first and last cell
// map exactly to 0% and 100%.
func (l SliderLayout) TrackBounds(originX, originY int) slider.Rect {
	left := float64(originX + l.TrackCol)
	top := float64(originY + l.TrackRow)
	span := float64(l.Length - 1)
	if l.Orientation == slider.Vertical {
		return slider.Rect{Left: left, Top: top, Width: 1, Height: span}
	}
	return slider.Rect{Left: left, Top: top, Width: span, Height: 1}
}

// HandleCell returns the cell, relative to the view, where a handle at pct is drawn.
func (l SliderLayout) HandleCell(pct float64) (row, col int) {
	if l.Orientation == slider.Vertical {
		return l.TrackRow + l.Length - 1 - CellForPercent(pct, l.Length), l.TrackCol
	}
	return l.TrackRow, l.TrackCol + CellForPercent(pct, l.Length)
}

// OnTrack reports whether the view-relative cell (row, col) lies on the track.
func (l SliderLayout) OnTrack(row, col int) bool {
	if l.Orientation == slider.Vertical {
		return col == l.TrackCol && row >= l.TrackRow && row < l.TrackRow+l.Length
	}
	return row == l.TrackRow && col >= l.TrackCol && col < l.TrackCol+l.Length
}

// CellForPercent maps a percentage onto a track of length cells.
func CellForPercent(pct float64, length int) int {
	if length < 2 {
		return 0
	}
	pct = math.Max(0, math.Min(100, pct))
	return int(math.Round(pct / 100 * float64(length-1)))
}

// SliderView renders one slider frame: a header with label and value text,
// the track with its thumbs, and mark labels.
type SliderView struct {
	BaseComponent
	label    string
	frame    slider.Frame
	length   int
	selected bool
}

// NewSliderView creates a view for frame.
func NewSliderView(label string, frame slider.Frame) *SliderView {
	return &SliderView{
		BaseComponent: NewBaseComponent(),
		label:         label,
		frame:         frame,
	}
}

// WithLength fixes the track length in cells.
func (v *SliderView) WithLength(length int) *SliderView {
	v.length = length
	return v
}

// WithSelected marks the view as the catalog's current slider.
func (v *SliderView) WithSelected(selected bool) *SliderView {
	v.selected = selected
	return v
}

// WithAppliers applies theme-based style modifiers to the header.
func (v *SliderView) WithAppliers(appliers ...StyleFunc) *SliderView {
	v.SetAppliers(appliers...)
	return v
}

// View renders the slider with the default theme.
func (v *SliderView) View() string {
	return v.ViewWithContext(DefaultContext())
}

// Layout computes the geometry the view will be drawn with under ctx.
func (v *SliderView) Layout(ctx RenderContext) SliderLayout {
	layout := SliderLayout{
		Orientation: v.frame.Orientation,
		TrackRow:    1,
		TrackCol:    trackIndent,
		Length:      v.trackLength(ctx),
	}

	header := lipgloss.Width(v.headerText())
	if layout.Orientation == slider.Vertical {
		layout.Height = 1 + layout.Length
		layout.Width = trackIndent + header
		if w := trackIndent + 2 + v.longestMarkLabel(); w > layout.Width {
			layout.Width = w
		}
		return layout
	}

	layout.Height = 2
	if v.hasMarkLabels() {
		layout.Height = 3
	}
	layout.Width = trackIndent + layout.Length
	if w := trackIndent + header; w > layout.Width {
		layout.Width = w
	}
	return layout
}

// ViewWithContext renders the slider with the given theme context.
func (v *SliderView) ViewWithContext(ctx RenderContext) string {
	layout := v.Layout(ctx)
	theme := ctx.Theme

	lines := []string{v.renderHeader(theme)}
	if layout.Orientation == slider.Vertical {
		lines = append(lines, v.renderVertical(theme, layout)...)
	} else {
		lines = append(lines, v.renderHorizontal(theme, layout)...)
	}
	return strings.Join(lines, "\n")
}

func (v *SliderView) trackLength(ctx RenderContext) int {
	length := v.length
	if length <= 0 {
		if v.frame.Orientation == slider.Vertical {
			length = DefaultVerticalTrackLength
		} else if ctx.Width > 0 {
			length = ctx.Width - trackIndent
		} else {
			length = DefaultTrackLength
		}
	}
	if length < MinTrackLength {
		length = MinTrackLength
	}
	return length
}

func (v *SliderView) valueText() string {
	values := make([]string, 0, len(v.frame.Handles))
	for _, h := range v.frame.Handles {
		values = append(values, h.Label)
	}
	return strings.Join(values, " - ")
}

func (v *SliderView) headerText() string {
	text := v.label + "  " + v.valueText()
	if v.frame.Disabled {
		text += " (disabled)"
	}
	return text
}

func (v *SliderView) renderHeader(theme Theme) string {
	gutter := " "
	if v.selected {
		gutter = lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Render(theme.Glyphs.Gutter)
	}

	label := v.ComputeStyle(theme).Inherit(theme.Typography.Label)
	value := theme.Typography.Value
	if v.frame.Disabled {
		label = label.Faint(true)
		value = value.Faint(true)
	}

	text := label.Render(v.label) + "  " + value.Render(v.valueText())
	if v.frame.Disabled {
		text += theme.Typography.Hint.Render(" (disabled)")
	}
	return gutter + " " + text
}

// cell is one glyph of the track before styling.
type cell struct {
	glyph string
	style lipgloss.Style
}

// trackCells lays the track out from the minimum end (index 0) to the maximum end.
func (v *SliderView) trackCells(theme Theme, length int, track, fill string) []cell {
	g := theme.Glyphs
	trackStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	fillStyle := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	markStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Base)
	thumbStyle := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(theme.Palette.Secondary.Base).Bold(true)

	start := CellForPercent(v.frame.TrackStart, length)
	end := CellForPercent(v.frame.TrackEnd, length)

	cells := make([]cell, length)
	for i := range cells {
		if i >= start && i <= end && end > start {
			cells[i] = cell{glyph: fill, style: fillStyle}
		} else {
			cells[i] = cell{glyph: track, style: trackStyle}
		}
	}

	dense := len(v.frame.Marks) > length/2
	for _, m := range v.frame.Marks {
		if dense && m.Label == "" {
			continue
		}
		i := CellForPercent(m.Percent, length)
		st := markStyle
		if m.Selected {
			st = fillStyle
		}
		cells[i] = cell{glyph: g.Mark, style: st}
	}

	for _, h := range v.frame.Handles {
		i := CellForPercent(h.Percent, length)
		switch {
		case h.Active:
			cells[i] = cell{glyph: g.ActiveThumb, style: activeStyle}
		case h.Focused:
			cells[i] = cell{glyph: g.FocusedThumb, style: activeStyle}
		default:
			cells[i] = cell{glyph: g.Thumb, style: thumbStyle}
		}
	}

	if v.frame.Disabled {
		for i := range cells {
			cells[i].style = cells[i].style.UnsetForeground().UnsetBold().Faint(true)
		}
	}
	return cells
}

func (v *SliderView) renderHorizontal(theme Theme, layout SliderLayout) []string {
	cells := v.trackCells(theme, layout.Length, theme.Glyphs.Track, theme.Glyphs.Fill)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", layout.TrackCol))
	for _, c := range cells {
		b.WriteString(c.style.Render(c.glyph))
	}
	lines := []string{b.String()}

	if v.hasMarkLabels() {
		lines = append(lines, theme.Typography.Hint.Render(v.markLabelRow(layout)))
	}
	return lines
}

// markLabelRow places each label under its mark, skipping labels that would
// overlap the previous one. Columns are display cells, so wide labels take
// more than one.
func (v *SliderView) markLabelRow(layout SliderLayout) string {
	width := layout.TrackCol + layout.Length
	row := make([]string, width)
	for i := range row {
		row[i] = " "
	}

	next := 0
	for _, m := range v.frame.Marks {
		if m.Label == "" {
			continue
		}
		w := lipgloss.Width(m.Label)
		col := layout.TrackCol + CellForPercent(m.Percent, layout.Length) - w/2
		if col+w > width {
			col = width - w
		}
		if col < 0 {
			col = 0
		}
		if col < next || col+w > width {
			continue
		}
		row[col] = m.Label
		for i := col + 1; i < col+w; i++ {
			row[i] = ""
		}
		next = col + w + 1
	}
	return strings.TrimRight(strings.Join(row, ""), " ")
}

func (v *SliderView) renderVertical(theme Theme, layout SliderLayout) []string {
	cells := v.trackCells(theme, layout.Length, theme.Glyphs.VerticalTrack, theme.Glyphs.VerticalFill)

	labels := make(map[int]string, len(v.frame.Marks))
	for _, m := range v.frame.Marks {
		if m.Label == "" {
			continue
		}
		row := layout.Length - 1 - CellForPercent(m.Percent, layout.Length)
		if _, taken := labels[row]; !taken {
			labels[row] = m.Label
		}
	}

	lines := make([]string, 0, layout.Length)
	indent := strings.Repeat(" ", layout.TrackCol)
	for row := 0; row < layout.Length; row++ {
		c := cells[layout.Length-1-row]
		line := indent + c.style.Render(c.glyph)
		if label, ok := labels[row]; ok {
			line += " " + theme.Typography.Hint.Render(label)
		}
		lines = append(lines, line)
	}
	return lines
}

func (v *SliderView) hasMarkLabels() bool {
	for _, m := range v.frame.Marks {
		if m.Label != "" {
			return true
		}
	}
	return false
}

func (v *SliderView) longestMarkLabel() int {
	longest := 0
	for _, m := range v.frame.Marks {
		if n := lipgloss.Width(m.Label); n > longest {
			longest = n
		}
	}
	return longest
}
