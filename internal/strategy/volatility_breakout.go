package strategy

import (
	"fmt"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// VolatilityBreakout buys when return volatility expands well beyond its recent mean
// while the close breaks above the prior rolling high. It never sells.
type VolatilityBreakout struct {
	config VolatilityBreakoutConfig
}

// NewVolatilityBreakout creates a volatility breakout strategy from a validated config.
func NewVolatilityBreakout(config VolatilityBreakoutConfig) (*VolatilityBreakout, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &VolatilityBreakout{config: config}, nil
}

// Name implements Strategy.
func (v *VolatilityBreakout) Name() types.StrategyType {
	return types.StrategyTypeVolatilityBreakout
}

// RequiredBars implements Strategy.
// Volatility needs StdPeriod returns (StdPeriod+1 bars) and its mean VolMeanPeriod-1 more;
// the prior high needs HighPeriod bars before the current one.
func (v *VolatilityBreakout) RequiredBars() int {
	return max(v.config.StdPeriod+v.config.VolMeanPeriod, v.config.HighPeriod+1, v.config.ATRPeriod)
}

// Evaluate implements Strategy.
//
// The rolling high is read at the previous bar, so the window excludes the current bar
// and a breakout means closing above the prior HighPeriod-bar range. ATR is reported in
// the raw values but does not take part in the decision.
func (v *VolatilityBreakout) Evaluate(series types.PriceSeries) (types.Signal, error) {
	if err := checkSeries(v.Name(), series, v.RequiredBars()); err != nil {
		return types.Signal{}, err
	}

	closes := series.Closes()
	lastIndex := len(series) - 1

	volatility, err := indicator.RollingStdDevOfSeries(indicator.PercentChange(closes), v.config.StdPeriod)
	if err != nil {
		return types.Signal{}, err
	}

	volMean, err := indicator.SMAOfSeries(volatility, v.config.VolMeanPeriod)
	if err != nil {
		return types.Signal{}, err
	}

	rollingHigh, err := indicator.RollingMax(series.Highs(), v.config.HighPeriod)
	if err != nil {
		return types.Signal{}, err
	}

	atr, err := indicator.ATR(series, v.config.ATRPeriod)
	if err != nil {
		return types.Signal{}, err
	}

	closePrice := closes[lastIndex]
	recentHigh := rollingHigh.At(lastIndex - 1).Unwrap()

	raw := map[string]float64{
		"close":       closePrice,
		"recent_high": recentHigh,
		"atr":         atr.Last().Unwrap(),
	}

	latestVol, latestMean := volatility.Last(), volMean.Last()
	if latestVol.IsNone() || latestMean.IsNone() {
		// a zero close inside the window leaves the return undefined
		return newSignal(v.Name(), "Volatility Breakout", series, types.SignalTypeHold, "volatility undefined", raw), nil
	}

	vol, mean := latestVol.Unwrap(), latestMean.Unwrap()
	threshold := mean * v.config.BreakoutMultiplier
	raw["volatility"] = vol
	raw["volatility_mean"] = mean

	expanded := vol > threshold
	brokeOut := closePrice > recentHigh

	var reason string

	switch {
	case expanded && brokeOut:
		return newSignal(v.Name(), "Volatility Breakout", series, types.SignalTypeBuy,
			fmt.Sprintf("volatility %.6f above %.6f and close %.4f above prior high %.4f", vol, threshold, closePrice, recentHigh), raw), nil
	case expanded:
		reason = fmt.Sprintf("volatility expanded but close %.4f did not clear prior high %.4f", closePrice, recentHigh)
	case brokeOut:
		reason = fmt.Sprintf("close above prior high but volatility %.6f not above %.6f", vol, threshold)
	default:
		reason = "no volatility expansion or breakout"
	}

	return newSignal(v.Name(), "Volatility Breakout", series, types.SignalTypeHold, reason, raw), nil
}
