// Package components renders slider frames and catalog chrome with lipgloss.
//
// Themes are immutable values passed through RenderContext:
//
//	theme, _ := components.ThemeByName("dark")
//	ctx := components.DefaultContext().WithTheme(theme).WithWidth(40)
//	out := components.NewSliderView("Volume", ctrl.Frame()).ViewWithContext(ctx)
//
// SliderView.Layout reports where the track lands so hosts can map pointer
// cells back to the slider.
package components
