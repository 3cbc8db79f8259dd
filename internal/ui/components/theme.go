package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantLabel
	TypographyVariantValue
	TypographyVariantHint
)

// ColourSet groups related colours for a semantic palette slot.
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//   - Contrast: An accent color that "pops" against Base
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Neutral   ColourSet
	Danger    ColourSet
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Hint     lipgloss.Style
}

// SliderGlyphs are the cells a slider is drawn with.
type SliderGlyphs struct {
	Track         string
	Fill          string
	VerticalTrack string
	VerticalFill  string
	Thumb         string
	FocusedThumb  string
	ActiveThumb   string
	Mark          string
	Gutter        string
}

// UnicodeGlyphs draws sliders with box-drawing characters.
func UnicodeGlyphs() SliderGlyphs {
	return SliderGlyphs{
		Track:         "─",
		Fill:          "━",
		VerticalTrack: "│",
		VerticalFill:  "┃",
		Thumb:         "●",
		FocusedThumb:  "◉",
		ActiveThumb:   "◆",
		Mark:          "┼",
		Gutter:        "▌",
	}
}

// ASCIIGlyphs is the fallback for terminals without unicode support.
func ASCIIGlyphs() SliderGlyphs {
	return SliderGlyphs{
		Track:         "-",
		Fill:          "=",
		VerticalTrack: "|",
		VerticalFill:  "#",
		Thumb:         "o",
		FocusedThumb:  "O",
		ActiveThumb:   "@",
		Mark:          "+",
		Gutter:        ">",
	}
}

// Theme represents an immutable styling theme for components.
type Theme struct {
	Name       string
	Palette    Palette
	Typography TypographyScale
	Glyphs     SliderGlyphs
}

// ThemeNames lists the themes ThemeByName accepts.
var ThemeNames = []string{"default", "dark", "light"}

// ThemeByName resolves a theme from its configuration name. An empty name is the default theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (expected one of %s)", name, strings.Join(ThemeNames, ", "))
	}
}

// WithGlyphs returns a copy of the theme drawing with glyphs.
func (t Theme) WithGlyphs(glyphs SliderGlyphs) Theme {
	t.Glyphs = glyphs
	return t
}

// DefaultTheme returns the default theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f8fafc", "#0f172a"),
			Muted:    ac("#cbd5e1", "#475569"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#fef2f2", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	return Theme{
		Name:       "default",
		Palette:    palette,
		Typography: defaultTypography(palette),
		Glyphs:     UnicodeGlyphs(),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Faint(true),
		Label:    base.Bold(true),
		Value:    base.Foreground(p.Secondary.Base),
		Hint:     base.Foreground(p.Neutral.Base).Italic(true),
	}
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return theme
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	return theme
}

// TypographyStyle returns the style for a typography variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return theme.Typography.Title
	case TypographyVariantSubtitle:
		return theme.Typography.Subtitle
	case TypographyVariantLabel:
		return theme.Typography.Label
	case TypographyVariantValue:
		return theme.Typography.Value
	case TypographyVariantHint:
		return theme.Typography.Hint
	default:
		return theme.Typography.Base
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// Foreground applies a semantic foreground colour without changing the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Muted applies the muted shade of a slot as foreground.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Faint dims the style when enabled is true.
func Faint(enabled bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		if !enabled {
			return base
		}
		return base.Faint(true)
	}
}
