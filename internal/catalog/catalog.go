// Package catalog turns a slider document into live controllers and owns
// their lifetime.
package catalog

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/slidekit/internal/config"
	"github.com/alexisbeaulieu97/slidekit/internal/logger"
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

// Entry pairs a document slider with its controller.
type Entry struct {
	Config     config.Slider
	Controller *slider.Controller
}

// Label returns the display label of the entry.
func (e *Entry) Label() string {
	return e.Config.DisplayLabel()
}

// Options wires controllers to their surroundings.
type Options struct {
	Logger *logger.Logger
	// HostFor returns the host the slider is mounted in. A nil func or a nil
	// host leaves the slider keyboard-only.
	HostFor           func(id string) slider.Host
	OnChange          func(slider.ChangeEvent)
	OnChangeCommitted func(slider.ChangeEvent)
}

// Catalog is an ordered set of sliders built from one document.
type Catalog struct {
	cfg     *config.Config
	entries []*Entry
	byID    map[string]*Entry
	log     *logger.Logger
	closed  bool
}

// Build creates one controller per slider of cfg. Every failing slider is
// reported as a *errors.SliderError; on failure nothing stays open.
func Build(cfg *config.Config, opts Options) (*Catalog, error) {
	if cfg == nil {
		return nil, slidekiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	c := &Catalog{
		cfg:  cfg,
		byID: make(map[string]*Entry, len(cfg.Sliders)),
		log:  opts.Logger.WithFields(map[string]any{"catalog": cfg.Name}),
	}

	var errs error
	for _, s := range cfg.Sliders {
		sliderOpts := s.Options()
		sliderOpts.Logger = opts.Logger
		sliderOpts.OnChange = opts.OnChange
		sliderOpts.OnChangeCommitted = opts.OnChangeCommitted
		if opts.HostFor != nil {
			if host := opts.HostFor(s.ID); host != nil {
				sliderOpts.Host = host
			}
		}

		ctrl, err := slider.New(sliderOpts)
		if err != nil {
			errs = multierr.Append(errs, slidekiterrors.NewSliderError(s.ID, err))
			continue
		}

		entry := &Entry{Config: s, Controller: ctrl}
		c.entries = append(c.entries, entry)
		c.byID[s.ID] = entry
	}

	if errs != nil {
		c.Close()
		return nil, errs
	}

	c.log.Debug("catalog built", "sliders", len(c.entries))
	return c, nil
}

// Name returns the document name.
func (c *Catalog) Name() string {
	return c.cfg.Name
}

// Description returns the document description.
func (c *Catalog) Description() string {
	return c.cfg.Description
}

// Settings returns the document settings.
func (c *Catalog) Settings() config.Settings {
	return c.cfg.Settings
}

// Len returns the number of sliders.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the sliders in document order.
func (c *Catalog) Entries() []*Entry {
	return append([]*Entry(nil), c.entries...)
}

// At returns the i-th slider.
func (c *Catalog) At(i int) *Entry {
	return c.entries[i]
}

// Get looks a slider up by id.
func (c *Catalog) Get(id string) (*Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Close tears every controller down, releasing drags in progress. It is
// idempotent.
func (c *Catalog) Close() {
	if c.closed {
		return
	}
	c.closed = true
	for _, e := range c.entries {
		e.Controller.Close()
	}
	c.log.Debug("catalog closed")
}

// Closed reports whether Close has been called.
func (c *Catalog) Closed() bool {
	return c.closed
}

// PressKeys focuses handle h of slider id and feeds it the named keys, as
// if typed. Key names use slider.ParseKey. It returns the final value.
func (c *Catalog) PressKeys(id string, h slider.HandleIndex, keys []string) (slider.Value, error) {
	e, ok := c.Get(id)
	if !ok {
		return slider.Value{}, fmt.Errorf("unknown slider %q", id)
	}

	parsed := make([]slider.Key, 0, len(keys))
	for _, name := range keys {
		k, ok := slider.ParseKey(name)
		if !ok {
			return slider.Value{}, slidekiterrors.NewSliderError(id, fmt.Errorf("unknown key %q", name))
		}
		parsed = append(parsed, k)
	}

	if !e.Controller.Focus(h) {
		return e.Controller.Value(), slidekiterrors.NewSliderError(id, errors.New("slider cannot take focus"))
	}
	defer e.Controller.Blur()

	for _, k := range parsed {
		e.Controller.KeyDown(k)
	}
	return e.Controller.Value(), nil
}
