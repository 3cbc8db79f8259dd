package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slidekit/internal/ui"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// RenderContext provides layout information and theme to components during rendering.
type RenderContext struct {
	Theme Theme
	// Width is the space available to the component in cells. Zero means
	// the component picks its own size.
	Width int
}

// DefaultContext returns a render context with the default theme and no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a new context limited to width cells.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}
