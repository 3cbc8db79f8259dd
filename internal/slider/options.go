package slider

import (
	"github.com/alexisbeaulieu97/slidekit/internal/logger"
)

// maxStepMarks bounds the marks generated by StepMarks.
const maxStepMarks = 1000

// Mark is a labelled reference point on the track.
type Mark struct {
	Value float64
	Label string
}

// Source identifies what produced a change.
type Source int

const (
	SourcePointer Source = iota
	SourceKeyboard
)

func (s Source) String() string {
	if s == SourceKeyboard {
		return "keyboard"
	}
	return "pointer"
}

// ChangeEvent is passed to OnChange and OnChangeCommitted.
type ChangeEvent struct {
	SliderID string
	Value    Value
	Handle   HandleIndex
	Source   Source
}

// Options configures a Controller. Start from DefaultOptions; New does not fill
// in missing bounds.
type Options struct {
	// ID names the slider in logs and events. A random id is generated when empty.
	ID string

	Min  float64
	Max  float64
	Step float64

	// DefaultValue seeds an uncontrolled slider. A single value given to a
	// range slider becomes [min, max]; a pair given to a single slider keeps
	// its low end.
	DefaultValue Value
	// Controlled, when set, makes the caller the owner of the value. The
	// controller reads it on every access and never stores proposals.
	Controlled func() Value

	Range       bool
	Disabled    bool
	Orientation Orientation

	Marks []Mark
	// StepMarks adds an unlabelled mark at every step.
	StepMarks bool
	// SnapToMarks restricts values to mark positions.
	SnapToMarks bool

	// Format renders a value for assistive output; defaults to the shortest
	// decimal representation.
	Format func(float64) string

	OnChange          func(ChangeEvent)
	OnChangeCommitted func(ChangeEvent)

	// Host enables pointer input. Without a host only keyboard and
	// programmatic changes are possible.
	Host   Host
	Logger *logger.Logger
}

// DefaultOptions returns min 0, max 100, step 1, horizontal, single handle.
func DefaultOptions() Options {
	return Options{
		Min:         0,
		Max:         100,
		Step:        1,
		Orientation: Horizontal,
	}
}

// allMarks drops marks outside the range and appends generated step marks.
func (o Options) allMarks(rng Range) []Mark {
	marks := make([]Mark, 0, len(o.Marks))
	for _, m := range o.Marks {
		if m.Value >= rng.Min && m.Value <= rng.Max {
			marks = append(marks, m)
		}
	}
	if !o.StepMarks {
		return marks
	}

	precision := decimalPlaces(rng.Step)
	if p := decimalPlaces(rng.Min); p > precision {
		precision = p
	}
	for i := 0; i < maxStepMarks; i++ {
		v := roundTo(rng.Min+float64(i)*rng.Step, precision)
		if v > rng.Max {
			break
		}
		if !hasMarkAt(marks, v) {
			marks = append(marks, Mark{Value: v})
		}
	}
	return marks
}

func hasMarkAt(marks []Mark, v float64) bool {
	for _, m := range marks {
		if m.Value == v {
			return true
		}
	}
	return false
}
