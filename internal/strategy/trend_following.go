package strategy

import (
	"fmt"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// TrendFollowing buys when the fast, medium and slow EMAs are stacked bullishly and
// sells when they are stacked bearishly.
type TrendFollowing struct {
	config TrendFollowingConfig
}

// NewTrendFollowing creates a trend following strategy from a validated config.
func NewTrendFollowing(config TrendFollowingConfig) (*TrendFollowing, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &TrendFollowing{config: config}, nil
}

// Name implements Strategy.
func (t *TrendFollowing) Name() types.StrategyType {
	return types.StrategyTypeTrendFollowing
}

// RequiredBars implements Strategy.
func (t *TrendFollowing) RequiredBars() int {
	return t.config.SlowSpan
}

// Evaluate implements Strategy. Any ordering other than a strict stack, ties included, is HOLD.
func (t *TrendFollowing) Evaluate(series types.PriceSeries) (types.Signal, error) {
	if err := checkSeries(t.Name(), series, t.RequiredBars()); err != nil {
		return types.Signal{}, err
	}

	closes := series.Closes()

	spans := []int{t.config.FastSpan, t.config.MediumSpan, t.config.SlowSpan}
	latest := make([]float64, len(spans))

	for i, span := range spans {
		ema, err := indicator.EMA(closes, span)
		if err != nil {
			return types.Signal{}, err
		}

		latest[i] = ema.Last().Unwrap()
	}

	fast, medium, slow := latest[0], latest[1], latest[2]
	raw := map[string]float64{
		"ema_fast":   fast,
		"ema_medium": medium,
		"ema_slow":   slow,
	}

	signalType := classifyAlignment(fast, medium, slow)

	reason := "EMAs not aligned"

	switch signalType {
	case types.SignalTypeBuy:
		reason = fmt.Sprintf("bullish alignment: EMA%d > EMA%d > EMA%d", spans[0], spans[1], spans[2])
	case types.SignalTypeSell:
		reason = fmt.Sprintf("bearish alignment: EMA%d < EMA%d < EMA%d", spans[0], spans[1], spans[2])
	}

	return newSignal(t.Name(), "Trend Following", series, signalType, reason, raw), nil
}

// classifyAlignment requires a strict ordering; any tie is HOLD.
func classifyAlignment(fast, medium, slow float64) types.SignalType {
	switch {
	case fast > medium && medium > slow:
		return types.SignalTypeBuy
	case fast < medium && medium < slow:
		return types.SignalTypeSell
	default:
		return types.SignalTypeHold
	}
}
