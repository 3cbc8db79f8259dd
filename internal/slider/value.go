package slider

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

var (
	// ErrInvalidBounds is wrapped by construction errors where min >= max or a bound is not finite.
	ErrInvalidBounds = errors.New("min must be lower than max")
	// ErrInvalidStep is wrapped by construction errors where step <= 0 or is not finite.
	ErrInvalidStep = errors.New("step must be greater than zero")
)

const maxPrecision = 12

// Range is the numeric domain of a slider.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// NewRange validates the bounds and step. A range with min >= max has no sane
// semantics and is rejected rather than repaired.
func NewRange(min, max, step float64) (Range, error) {
	if !isFinite(min) || !isFinite(max) || min >= max {
		return Range{}, slidekiterrors.NewValidationError("max", "must be greater than min", ErrInvalidBounds)
	}
	if !isFinite(step) || step <= 0 {
		return Range{}, slidekiterrors.NewValidationError("step", "must be greater than zero", ErrInvalidStep)
	}
	return Range{Min: min, Max: max, Step: step}, nil
}

// Span returns max - min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// ValueModel quantizes, clamps and converts values for one Range. It holds no
// mutable state and may be shared freely.
type ValueModel struct {
	rng       Range
	precision int
	// marks is sorted ascending; only consulted when snap is set.
	marks []float64
	snap  bool
}

// NewValueModel returns a model for rng. When snapToMarks is set and at least
// one mark lies inside the range, values snap to the closest mark instead of the
// step grid.
func NewValueModel(rng Range, marks []Mark, snapToMarks bool) ValueModel {
	precision := decimalPlaces(rng.Step)
	if p := decimalPlaces(rng.Min); p > precision {
		precision = p
	}

	values := make([]float64, 0, len(marks))
	for _, mark := range marks {
		if mark.Value >= rng.Min && mark.Value <= rng.Max {
			values = append(values, mark.Value)
		}
	}
	sort.Float64s(values)

	return ValueModel{
		rng:       rng,
		precision: precision,
		marks:     values,
		snap:      snapToMarks && len(values) > 0,
	}
}

// Range returns the model's range.
func (m ValueModel) Range() Range {
	return m.rng
}

// SnapsToMarks reports whether values are restricted to mark positions.
func (m ValueModel) SnapsToMarks() bool {
	return m.snap
}

// Normalize rounds raw to the nearest step offset from min and clamps the result
// to [min, max]. Inputs at or beyond an edge return the edge itself so a max that
// is not step aligned stays reachable.
func (m ValueModel) Normalize(raw float64) float64 {
	switch {
	case math.IsNaN(raw), raw <= m.rng.Min:
		return m.rng.Min
	case raw >= m.rng.Max:
		return m.rng.Max
	}

	if m.snap {
		return m.nearestMark(raw)
	}

	steps := math.Round((raw - m.rng.Min) / m.rng.Step)
	value := roundTo(m.rng.Min+steps*m.rng.Step, m.precision)
	return clamp(value, m.rng.Min, m.rng.Max)
}

// Clamp limits v to [min, max] without quantizing it.
func (m ValueModel) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return m.rng.Min
	}
	return clamp(v, m.rng.Min, m.rng.Max)
}

// ToPercentage maps v onto [0, 100].
func (m ValueModel) ToPercentage(v float64) float64 {
	return (m.Clamp(v) - m.rng.Min) / m.rng.Span() * 100
}

// FromPercentage maps a percentage back to a normalized value. The percentage
// is not required to lie in [0, 100].
func (m ValueModel) FromPercentage(pct float64) float64 {
	return m.Normalize(m.rng.Min + pct/100*m.rng.Span())
}

// NextMark returns the first mark strictly above v.
func (m ValueModel) NextMark(v float64) (float64, bool) {
	idx := sort.Search(len(m.marks), func(i int) bool { return m.marks[i] > v })
	if idx >= len(m.marks) {
		return v, false
	}
	return m.marks[idx], true
}

// PrevMark returns the last mark strictly below v.
func (m ValueModel) PrevMark(v float64) (float64, bool) {
	idx := sort.Search(len(m.marks), func(i int) bool { return m.marks[i] >= v })
	if idx == 0 {
		return v, false
	}
	return m.marks[idx-1], true
}

func (m ValueModel) nearestMark(v float64) float64 {
	idx := sort.SearchFloat64s(m.marks, v)
	switch {
	case idx == 0:
		return m.marks[0]
	case idx >= len(m.marks):
		return m.marks[len(m.marks)-1]
	}
	below, above := m.marks[idx-1], m.marks[idx]
	if v-below <= above-v {
		return below
	}
	return above
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// roundTo rounds v to places decimals. Magnitudes too large to scale are
// already coarser than the requested precision and are returned as is.
func roundTo(v float64, places int) float64 {
	scale := math.Pow10(places)
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / scale
}

// decimalPlaces counts fractional digits in the shortest representation of f.
func decimalPlaces(f float64) int {
	s := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	idx := strings.IndexByte(s, '.')
	if idx < 0 {
		return 0
	}
	places := len(s) - idx - 1
	if places > maxPrecision {
		return maxPrecision
	}
	return places
}
