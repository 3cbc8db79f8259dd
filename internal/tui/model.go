package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slidekit/internal/catalog"
	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/events"
	"github.com/alexisbeaulieu97/slidekit/internal/logger"
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
)

// maxTrackWidth keeps horizontal tracks readable on wide terminals.
const maxTrackWidth = 72

// ReloadMsg carries a new version of the catalog document.
type ReloadMsg struct {
	config.Reload
}

// Options configures the catalog screen.
type Options struct {
	Logger *logger.Logger
	// Theme overrides the theme named by the document settings.
	Theme *components.Theme
	// Glyphs replaces the glyphs of whichever theme is in effect.
	Glyphs *components.SliderGlyphs
	// Watcher, when set, feeds document reloads into the model.
	Watcher *config.Watcher
}

// activity remembers the most recent events for the status line.
type activity struct {
	last      slider.ChangeEvent
	committed bool
	seen      bool
	changes   int
	commits   int
}

func (a *activity) record(e events.Event) {
	a.last, a.seen = e.ChangeEvent, true
	a.committed = e.Kind == events.KindCommit
	if a.committed {
		a.commits++
	} else {
		a.changes++
	}
}

// Model is the Bubbletea state of the interactive slider catalog.
type Model struct {
	catalog  *catalog.Catalog
	theme    components.Theme
	override bool
	glyphs   *components.SliderGlyphs
	watcher  *config.Watcher
	log      *logger.Logger

	keys     KeyMap
	help     help.Model
	router   *router
	events   *events.Publisher
	activity *activity

	width     int
	height    int
	selected  int
	reloadErr string
	quitting  bool
}

// NewModel builds the catalog described by cfg and the screen around it.
func NewModel(cfg *config.Config, opts Options) (Model, error) {
	m := Model{
		watcher:  opts.Watcher,
		glyphs:   opts.Glyphs,
		log:      opts.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		router:   newRouter(),
		events:   events.NewPublisher(opts.Logger),
		activity: &activity{},
	}
	m.events.SubscribeAll(m.activity.record)

	if opts.Theme != nil {
		m.theme = *opts.Theme
		m.override = true
	}

	cat, err := m.build(cfg)
	if err != nil {
		return Model{}, err
	}
	if err := m.adopt(cat); err != nil {
		cat.Close()
		return Model{}, err
	}
	return m, nil
}

func (m Model) build(cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.Build(cfg, catalog.Options{
		Logger:            m.log,
		HostFor:           m.router.hostFor,
		OnChange:          m.events.OnChange,
		OnChangeCommitted: m.events.OnCommit,
	})
}

// adopt makes cat the live catalog and focuses the selected slider.
func (m *Model) adopt(cat *catalog.Catalog) error {
	theme := m.theme
	if !m.override {
		named, err := components.ThemeByName(cat.Settings().Theme)
		if err != nil {
			return fmt.Errorf("resolve theme: %w", err)
		}
		theme = named
	}
	if m.glyphs != nil {
		theme = theme.WithGlyphs(*m.glyphs)
	}
	m.theme = theme

	m.catalog = cat
	if m.selected >= cat.Len() {
		m.selected = cat.Len() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.focusSelected(slider.HandleLow)
	return nil
}

// Init starts listening for reloads when a watcher is attached.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForReload(m.watcher)
}

func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.Reloads()
		if !ok {
			return nil
		}
		return ReloadMsg{Reload: r}
	}
}

// Catalog returns the live catalog.
func (m Model) Catalog() *catalog.Catalog {
	return m.catalog
}

// Selected returns the entry that receives keyboard input.
func (m Model) Selected() *catalog.Entry {
	if m.catalog == nil || m.catalog.Len() == 0 {
		return nil
	}
	return m.catalog.At(m.selected)
}

// Close tears the live catalog down. Call it once the program has exited.
func (m Model) Close() {
	if m.catalog != nil {
		m.catalog.Close()
	}
	m.router.reset()
}

// focusSelected blurs every other slider and focuses handle h of the selected one.
func (m *Model) focusSelected(h slider.HandleIndex) {
	for i, e := range m.catalog.Entries() {
		if i != m.selected {
			e.Controller.Blur()
		}
	}
	if e := m.Selected(); e != nil {
		e.Controller.Focus(h)
	}
}

func (m *Model) selectEntry(i int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	m.selected = ((i % n) + n) % n
	m.focusSelected(slider.HandleLow)
}
