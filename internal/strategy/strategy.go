// Package strategy turns indicator values into BUY, SELL or HOLD classifications.
//
// Strategies hold only their immutable configuration, so a single instance may be
// evaluated from many goroutines at once.
package strategy

import (
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Strategy classifies the most recent bar of a price series.
type Strategy interface {
	// Name returns the identifier the strategy is registered under
	Name() types.StrategyType
	// RequiredBars returns the minimum series length Evaluate accepts
	RequiredBars() int
	// Evaluate classifies the last bar of series. It returns an *errors.InvalidInputError
	// for a malformed series and an *errors.InsufficientDataError for a short one.
	Evaluate(series types.PriceSeries) (types.Signal, error)
}

// checkSeries validates series and makes sure it is long enough for the strategy.
func checkSeries(name types.StrategyType, series types.PriceSeries, required int) error {
	if err := series.Validate(); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidInput, err, "%s: invalid price series", name)
	}

	if len(series) < required {
		return errors.NewInsufficientDataErrorf(required, len(series), series[0].Symbol,
			"insufficient data for %s: required %d bars, got %d", name, required, len(series))
	}

	return nil
}

func newSignal(name types.StrategyType, title string, series types.PriceSeries, signalType types.SignalType, reason string, raw map[string]float64) types.Signal {
	last := series.Last()

	return types.Signal{
		Time:     last.Time,
		Type:     signalType,
		Name:     title,
		Reason:   reason,
		RawValue: raw,
		Symbol:   last.Symbol,
		Strategy: name,
	}
}
