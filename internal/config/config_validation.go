package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/slidekit/internal/slider"
	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire
// document. Document-level problems stop validation; every slider is then
// checked and all slider problems are returned together.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return slidekiterrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError("", err)
	}

	var errs error
	seen := make(map[string]int, len(cfg.Sliders))

	for i, s := range cfg.Sliders {
		if first, exists := seen[s.ID]; exists && s.ID != "" {
			errs = multierr.Append(errs, slidekiterrors.NewValidationError(
				fieldForSlider(i, "id"),
				fmt.Sprintf("duplicate slider id %q (first defined at sliders[%d])", s.ID, first),
				nil,
			))
			continue
		}
		seen[s.ID] = i

		errs = multierr.Append(errs, ValidateSlider(s, i))
	}

	return errs
}

// ValidateSlider checks one slider entry.
func ValidateSlider(s Slider, index int) error {
	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(fieldForSlider(index, ""), err)
	}

	if _, err := slider.NewRange(s.Min, s.Max, s.Step); err != nil {
		return slidekiterrors.NewValidationError(
			fieldForSlider(index, "max"),
			fmt.Sprintf("invalid bounds [%v, %v] with step %v", s.Min, s.Max, s.Step),
			err,
		)
	}

	if s.DefaultValue.IsPair() && !s.Range {
		return slidekiterrors.NewValidationError(
			fieldForSlider(index, "default_value"),
			"a [low, high] default requires range: true",
			nil,
		)
	}

	for j, m := range s.Marks {
		if m.Value < s.Min || m.Value > s.Max {
			return slidekiterrors.NewValidationError(
				fieldForSlider(index, fmt.Sprintf("marks[%d].value", j)),
				fmt.Sprintf("mark %v lies outside [%v, %v]", m.Value, s.Min, s.Max),
				nil,
			)
		}
	}

	if s.SnapToMarks && len(s.Marks) == 0 && !s.StepMarks {
		return slidekiterrors.NewValidationError(
			fieldForSlider(index, "snap_to_marks"),
			"snap_to_marks needs marks or step_marks",
			nil,
		)
	}

	return nil
}
