package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header renders a catalog title with an optional faint subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	h := &Header{BaseComponent: NewBaseComponent(), title: title}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	if h.subtitle == "" {
		return style.Render(h.title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(h.subtitle),
	)
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers replaces the header styling.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Height returns the number of rows the header occupies.
func (h *Header) Height() int {
	if h.subtitle == "" {
		return 1
	}
	return 2
}
