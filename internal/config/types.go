package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

// Defaults applied to sliders that leave the bounds out.
const (
	DefaultMin  = 0
	DefaultMax  = 100
	DefaultStep = 1
)

// Config represents a slider catalog document.
type Config struct {
	Version     string   `yaml:"version" validate:"required,doc_version"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Sliders     []Slider `yaml:"sliders" validate:"required,min=1"`
}

// Settings holds document-wide presentation parameters.
type Settings struct {
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark light"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Slider describes one control of the catalog.
type Slider struct {
	ID           string             `yaml:"id" validate:"required,slider_id"`
	Label        string             `yaml:"label,omitempty" validate:"max=40"`
	Min          float64            `yaml:"min"`
	Max          float64            `yaml:"max" validate:"gtfield=Min"`
	Step         float64            `yaml:"step" validate:"gt=0"`
	DefaultValue *SliderValue       `yaml:"default_value,omitempty"`
	Range        bool               `yaml:"range,omitempty"`
	Disabled     bool               `yaml:"disabled,omitempty"`
	Orientation  slider.Orientation `yaml:"orientation,omitempty"`
	Marks        []Mark             `yaml:"marks,omitempty"`
	StepMarks    bool               `yaml:"step_marks,omitempty"`
	SnapToMarks  bool               `yaml:"snap_to_marks,omitempty"`
	Unit         string             `yaml:"unit,omitempty" validate:"max=8"`
}

// UnmarshalYAML fills in the default bounds before decoding.
func (s *Slider) UnmarshalYAML(value *yaml.Node) error {
	type rawSlider Slider
	raw := rawSlider{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Slider(raw)
	return nil
}

// Mark is a labelled point on a slider track.
type Mark struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label,omitempty"`
}

// SliderValue is a default value written either as a number or as a
// two-element list.
type SliderValue struct {
	Values []float64
}

// UnmarshalYAML accepts `50` and `[20, 80]`.
func (v *SliderValue) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return err
		}
		v.Values = []float64{f}
	case yaml.SequenceNode:
		var fs []float64
		if err := value.Decode(&fs); err != nil {
			return err
		}
		if len(fs) != 2 {
			return fmt.Errorf("line %d: default_value list must have 2 elements, got %d", value.Line, len(fs))
		}
		v.Values = fs
	default:
		return fmt.Errorf("line %d: default_value must be a number or a [low, high] list", value.Line)
	}
	return nil
}

// MarshalYAML writes the value back in its short form.
func (v SliderValue) MarshalYAML() (any, error) {
	if len(v.Values) == 1 {
		return v.Values[0], nil
	}
	return v.Values, nil
}

// IsPair reports whether the value was given as a list.
func (v *SliderValue) IsPair() bool {
	return v != nil && len(v.Values) == 2
}

// Value converts to the slider value type.
func (v *SliderValue) Value() slider.Value {
	switch {
	case v == nil || len(v.Values) == 0:
		return slider.Value{}
	case len(v.Values) == 2:
		return slider.PairOf(v.Values[0], v.Values[1])
	default:
		return slider.Single(v.Values[0])
	}
}

// Options converts the document entry into controller options. Host, logger
// and callbacks are left for the caller.
func (s Slider) Options() slider.Options {
	opts := slider.DefaultOptions()
	opts.ID = s.ID
	opts.Min = s.Min
	opts.Max = s.Max
	opts.Step = s.Step
	opts.DefaultValue = s.DefaultValue.Value()
	opts.Range = s.Range
	opts.Disabled = s.Disabled
	opts.Orientation = s.Orientation
	opts.StepMarks = s.StepMarks
	opts.SnapToMarks = s.SnapToMarks

	for _, m := range s.Marks {
		opts.Marks = append(opts.Marks, slider.Mark{Value: m.Value, Label: m.Label})
	}

	if s.Unit != "" {
		unit := s.Unit
		opts.Format = func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64) + unit
		}
	}
	return opts
}

// DisplayLabel returns the label, falling back to the id.
func (s Slider) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.ID
}
