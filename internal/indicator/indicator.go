// Package indicator computes technical indicators as pure functions over price data.
//
// Every function returns a Series aligned index-for-index with its input. Points whose
// lookback window is not yet full (or whose value is otherwise undefined) are None.
// Inputs are never modified.
package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Series is an indicator output aligned with the series it was computed from.
type Series []optional.Option[float64]

// FromValues wraps plain values into a fully defined Series.
func FromValues(values []float64) Series {
	series := make(Series, len(values))
	for i, v := range values {
		series[i] = optional.Some(v)
	}

	return series
}

// Len returns the number of points, defined or not.
func (s Series) Len() int {
	return len(s)
}

// At returns the value at index i, or None when i is out of range or undefined.
func (s Series) At(i int) optional.Option[float64] {
	if i < 0 || i >= len(s) {
		return optional.None[float64]()
	}

	return s[i]
}

// Last returns the most recent value.
func (s Series) Last() optional.Option[float64] {
	return s.At(len(s) - 1)
}

// FirstDefined returns the index of the first defined point, or -1.
func (s Series) FirstDefined() int {
	for i, v := range s {
		if v.IsSome() {
			return i
		}
	}

	return -1
}

// window returns the values of the period points ending at end,
// or false when the window runs off the start or contains an undefined point.
func (s Series) window(end, period int) ([]float64, bool) {
	start := end - period + 1
	if start < 0 {
		return nil, false
	}

	values := make([]float64, 0, period)

	for i := start; i <= end; i++ {
		if s[i].IsNone() {
			return nil, false
		}

		values = append(values, s[i].Unwrap())
	}

	return values, true
}

func validatePeriod(kind types.IndicatorType, period int) error {
	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "%s period must be a positive integer, got %d", kind, period)
	}

	return nil
}

func requireLength(kind types.IndicatorType, actual, required int) error {
	if actual < required {
		return errors.NewInsufficientDataErrorf(required, actual, "", "insufficient data points for %s: required %d, got %d", kind, required, actual)
	}

	return nil
}

// mean is taken relative to the first value so a constant window averages
// to exactly that value.
func mean(values []float64) float64 {
	base := values[0]

	sum := 0.0
	for _, v := range values {
		sum += v - base
	}

	return base + sum/float64(len(values))
}
