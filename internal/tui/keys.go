package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

// KeyMap holds the bindings of the catalog screen.
type KeyMap struct {
	Increase     key.Binding
	Decrease     key.Binding
	IncreaseMore key.Binding
	DecreaseMore key.Binding
	Min          key.Binding
	Max          key.Binding
	Next         key.Binding
	Prev         key.Binding
	LowHandle    key.Binding
	HighHandle   key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "up", "l", "k"),
			key.WithHelp("→/l", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "down", "h", "j"),
			key.WithHelp("←/h", "decrease"),
		),
		IncreaseMore: key.NewBinding(
			key.WithKeys("shift+right", "shift+up", "pgup"),
			key.WithHelp("pgup", "increase ×10"),
		),
		DecreaseMore: key.NewBinding(
			key.WithKeys("shift+left", "shift+down", "pgdown"),
			key.WithHelp("pgdn", "decrease ×10"),
		),
		Min: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "minimum"),
		),
		Max: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "maximum"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next slider"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous slider"),
		),
		LowHandle: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "low handle"),
		),
		HighHandle: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "high handle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.IncreaseMore, k.DecreaseMore},
		{k.Min, k.Max, k.LowHandle, k.HighHandle},
		{k.Next, k.Prev, k.Help, k.Quit},
	}
}

// adjusts reports whether msg is one of the value keys.
func (k KeyMap) adjusts(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Increase, k.Decrease, k.IncreaseMore, k.DecreaseMore, k.Min, k.Max)
}

var vimKeys = map[string]slider.Key{
	"h": slider.KeyArrowLeft,
	"j": slider.KeyArrowDown,
	"k": slider.KeyArrowUp,
	"l": slider.KeyArrowRight,
}

// sliderKey translates a terminal key press into the key the slider understands.
func sliderKey(msg tea.KeyMsg) (slider.Key, bool) {
	if k, ok := vimKeys[msg.String()]; ok {
		return k, true
	}
	return slider.ParseKey(msg.String())
}
