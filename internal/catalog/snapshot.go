package catalog

import (
	"github.com/alexisbeaulieu97/slidekit/internal/slider"
)

// HandleState is the inspectable state of one handle.
type HandleState struct {
	Handle    string  `json:"handle"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Now       float64 `json:"now"`
	ValueText string  `json:"value_text"`
}

// SliderState is the inspectable state of one slider.
type SliderState struct {
	ID          string        `json:"id"`
	Label       string        `json:"label"`
	Orientation string        `json:"orientation"`
	Range       bool          `json:"range"`
	Disabled    bool          `json:"disabled"`
	Step        float64       `json:"step"`
	Marks       int           `json:"marks"`
	Handles     []HandleState `json:"handles"`
}

// Snapshot returns the state of every slider in document order.
func (c *Catalog) Snapshot() []SliderState {
	states := make([]SliderState, 0, len(c.entries))
	for _, e := range c.entries {
		states = append(states, stateOf(e))
	}
	return states
}

func stateOf(e *Entry) SliderState {
	ctrl := e.Controller
	state := SliderState{
		ID:          ctrl.ID(),
		Label:       e.Label(),
		Orientation: ctrl.Orientation().String(),
		Range:       ctrl.IsRange(),
		Disabled:    ctrl.Disabled(),
		Step:        ctrl.Range().Step,
		Marks:       len(ctrl.Marks()),
	}
	for _, sem := range ctrl.Semantics() {
		state.Handles = append(state.Handles, HandleState{
			Handle:    handleName(sem.Handle, ctrl.IsRange()),
			Min:       sem.Min,
			Max:       sem.Max,
			Now:       sem.Now,
			ValueText: sem.ValueText,
		})
	}
	return state
}

func handleName(h slider.HandleIndex, isRange bool) string {
	if !isRange {
		return "value"
	}
	return h.String()
}
