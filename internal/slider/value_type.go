package slider

import (
	"fmt"
	"strconv"
)

// HandleIndex identifies a thumb. Single-handle sliders only use HandleLow.
type HandleIndex int

const (
	HandleLow HandleIndex = iota
	HandleHigh
)

func (h HandleIndex) String() string {
	if h == HandleHigh {
		return "high"
	}
	return "low"
}

// Pair is an ordered [low, high] interval.
type Pair struct {
	Low  float64
	High float64
}

// Value is either a single number or an ordered pair.
type Value struct {
	pair    Pair
	isRange bool
}

// Single returns a one-handle value.
func Single(v float64) Value {
	return Value{pair: Pair{Low: v, High: v}}
}

// PairOf returns a two-handle value. The caller is responsible for ordering;
// the controller sorts and constrains values it accepts.
func PairOf(low, high float64) Value {
	return Value{pair: Pair{Low: low, High: high}, isRange: true}
}

// IsRange reports whether v carries two handles.
func (v Value) IsRange() bool {
	return v.isRange
}

// Handles returns the number of handles v represents.
func (v Value) Handles() int {
	if v.isRange {
		return 2
	}
	return 1
}

// Scalar returns the single value, or the low end of a pair.
func (v Value) Scalar() float64 {
	return v.pair.Low
}

// Low returns the low end (the value itself in single mode).
func (v Value) Low() float64 {
	return v.pair.Low
}

// High returns the high end (the value itself in single mode).
func (v Value) High() float64 {
	if !v.isRange {
		return v.pair.Low
	}
	return v.pair.High
}

// Pair returns v as an interval.
func (v Value) Pair() Pair {
	return Pair{Low: v.Low(), High: v.High()}
}

// At returns the value of handle h.
func (v Value) At(h HandleIndex) float64 {
	if h == HandleHigh {
		return v.High()
	}
	return v.Low()
}

// Equal reports whether both values have the same shape and numbers.
func (v Value) Equal(other Value) bool {
	if v.isRange != other.isRange {
		return false
	}
	return v.Low() == other.Low() && v.High() == other.High()
}

func (v Value) String() string {
	if v.isRange {
		return fmt.Sprintf("[%s, %s]", formatNumber(v.pair.Low), formatNumber(v.pair.High))
	}
	return formatNumber(v.pair.Low)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
