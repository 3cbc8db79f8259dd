package slider

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	slidekiterrors "github.com/alexisbeaulieu97/slidekit/pkg/errors"
)

func mustRange(t *testing.T, min, max, step float64) Range {
	t.Helper()
	rng, err := NewRange(min, max, step)
	require.NoError(t, err)
	return rng
}

func TestNewRangeRejectsInvalidConfiguration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		min      float64
		max      float64
		step     float64
		sentinel error
		field    string
	}{
		{name: "min equals max", min: 5, max: 5, step: 1, sentinel: ErrInvalidBounds, field: "max"},
		{name: "min above max", min: 10, max: 0, step: 1, sentinel: ErrInvalidBounds, field: "max"},
		{name: "infinite max", min: 0, max: math.Inf(1), step: 1, sentinel: ErrInvalidBounds, field: "max"},
		{name: "nan min", min: math.NaN(), max: 1, step: 1, sentinel: ErrInvalidBounds, field: "max"},
		{name: "zero step", min: 0, max: 100, step: 0, sentinel: ErrInvalidStep, field: "step"},
		{name: "negative step", min: 0, max: 100, step: -1, sentinel: ErrInvalidStep, field: "step"},
		{name: "nan step", min: 0, max: 100, step: math.NaN(), sentinel: ErrInvalidStep, field: "step"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewRange(tc.min, tc.max, tc.step)
			require.ErrorIs(t, err, tc.sentinel)

			var validationErr *slidekiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestNormalizeRoundsToStepAndClamps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		min   float64
		max   float64
		step  float64
		value float64
		want  float64
	}{
		{name: "on grid", min: 0, max: 100, step: 1, value: 42, want: 42},
		{name: "rounds down", min: 0, max: 100, step: 1, value: 50.4, want: 50},
		{name: "half rounds up", min: 0, max: 100, step: 1, value: 50.5, want: 51},
		{name: "below min", min: 0, max: 10, step: 1, value: -5, want: 0},
		{name: "above max", min: 0, max: 10, step: 1, value: 25, want: 10},
		{name: "nan becomes min", min: 3, max: 10, step: 1, value: math.NaN(), want: 3},
		{name: "negative toward grid", min: -10, max: 10, step: 2.5, value: -6.2, want: -5},
		{name: "positive toward grid", min: -10, max: 10, step: 2.5, value: 6.1, want: 5},
		{name: "clamp after rounding", min: -10, max: 10, step: 2.5, value: 8.9, want: 10},
		{name: "grid offset from min", min: 1, max: 21, step: 5, value: 7, want: 6},
		{name: "decimal step drift", min: 0, max: 1, step: 0.1, value: 0.1 + 0.2, want: 0.3},
		{name: "unaligned max reachable", min: 0, max: 95, step: 10, value: 95, want: 95},
		{name: "near unaligned max snaps down", min: 0, max: 94, step: 10, value: 93, want: 90},
		{name: "rounding past unaligned max clamps", min: 0, max: 96, step: 10, value: 95.5, want: 96},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			model := NewValueModel(mustRange(t, tc.min, tc.max, tc.step), nil, false)
			require.Equal(t, tc.want, model.Normalize(tc.value))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	models := []ValueModel{
		NewValueModel(mustRange(t, 0, 100, 1), nil, false),
		NewValueModel(mustRange(t, 0, 1, 0.1), nil, false),
		NewValueModel(mustRange(t, -10, 10, 2.5), nil, false),
		NewValueModel(mustRange(t, 0, 94, 10), nil, false),
		NewValueModel(mustRange(t, 0.05, 3.3, 0.25), nil, false),
		NewValueModel(mustRange(t, 0, 100, 1), []Mark{{Value: 10}, {Value: 55}, {Value: 90}}, true),
	}

	for _, model := range models {
		rng := model.Range()
		for x := rng.Min - 5; x <= rng.Max+5; x += rng.Span() / 337 {
			once := model.Normalize(x)
			require.Equal(t, once, model.Normalize(once), "x=%v range=%+v", x, rng)
			require.GreaterOrEqual(t, once, rng.Min)
			require.LessOrEqual(t, once, rng.Max)
		}
	}
}

func TestToPercentage(t *testing.T) {
	t.Parallel()

	model := NewValueModel(mustRange(t, -50, 50, 1), nil, false)

	require.Equal(t, 0.0, model.ToPercentage(-50))
	require.Equal(t, 50.0, model.ToPercentage(0))
	require.Equal(t, 100.0, model.ToPercentage(50))
	require.Equal(t, 100.0, model.ToPercentage(500), "out of range input is clamped")
	require.Equal(t, 0.0, model.ToPercentage(-500))
}

func TestPercentageRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []Range{
		mustRange(t, 0, 100, 1),
		mustRange(t, -3, 7, 0.5),
		mustRange(t, 0, 1, 0.01),
		mustRange(t, 10, 1000, 7),
	}

	for _, rng := range cases {
		model := NewValueModel(rng, nil, false)
		for v := rng.Min; v <= rng.Max; v += rng.Step {
			grid := model.Normalize(v)
			back := model.FromPercentage(model.ToPercentage(grid))
			require.InDelta(t, grid, back, 1e-9, "range=%+v", rng)
		}
	}
}

func TestFromPercentageClampsOutsideTrack(t *testing.T) {
	t.Parallel()

	model := NewValueModel(mustRange(t, 0, 95, 10), nil, false)

	require.Equal(t, 95.0, model.FromPercentage(100))
	require.Equal(t, 95.0, model.FromPercentage(180))
	require.Equal(t, 0.0, model.FromPercentage(-20))
	require.Equal(t, 50.0, model.FromPercentage(50))
}

func TestNormalizeHugeSpanKeepsMidRangeValues(t *testing.T) {
	t.Parallel()

	model := NewValueModel(mustRange(t, 0, 1e300, 1.000000000001), nil, false)

	got := model.Normalize(5e299)
	require.False(t, math.IsInf(got, 0))
	require.InEpsilon(t, 5e299, got, 1e-9)
	require.Less(t, got, 1e300)
}

func TestSnapToMarks(t *testing.T) {
	t.Parallel()

	marks := []Mark{{Value: 80}, {Value: 0}, {Value: 25}, {Value: 300, Label: "outside"}}
	model := NewValueModel(mustRange(t, 0, 100, 1), marks, true)
	require.True(t, model.SnapsToMarks())

	require.Equal(t, 25.0, model.Normalize(30))
	require.Equal(t, 80.0, model.Normalize(60))
	require.Equal(t, 25.0, model.Normalize(52.5), "ties go to the lower mark")
	require.Equal(t, 100.0, model.Normalize(100), "edges stay reachable")

	next, ok := model.NextMark(25)
	require.True(t, ok)
	require.Equal(t, 80.0, next)

	_, ok = model.NextMark(80)
	require.False(t, ok)

	prev, ok := model.PrevMark(25)
	require.True(t, ok)
	require.Equal(t, 0.0, prev)

	_, ok = model.PrevMark(0)
	require.False(t, ok)
}

func TestSnapToMarksWithoutMarksFallsBackToStep(t *testing.T) {
	t.Parallel()

	model := NewValueModel(mustRange(t, 0, 100, 5), nil, true)
	require.False(t, model.SnapsToMarks())
	require.Equal(t, 35.0, model.Normalize(36))
}
