package strategy

import "github.com/rxtech-lab/argo-signals/internal/types"

// MeanReversionSignal classifies the last bar of series with the mean reversion strategy.
// An optional config overrides DefaultMeanReversionConfig.
func MeanReversionSignal(series types.PriceSeries, config ...MeanReversionConfig) (types.SignalType, error) {
	cfg := DefaultMeanReversionConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	s, err := NewMeanReversion(cfg)
	if err != nil {
		return "", err
	}

	return signalType(s, series)
}

// TrendFollowingSignal classifies the last bar of series with the trend following strategy.
// An optional config overrides DefaultTrendFollowingConfig.
func TrendFollowingSignal(series types.PriceSeries, config ...TrendFollowingConfig) (types.SignalType, error) {
	cfg := DefaultTrendFollowingConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	s, err := NewTrendFollowing(cfg)
	if err != nil {
		return "", err
	}

	return signalType(s, series)
}

// VolatilityBreakoutSignal classifies the last bar of series with the volatility breakout
// strategy. It never returns SELL. An optional config overrides DefaultVolatilityBreakoutConfig.
func VolatilityBreakoutSignal(series types.PriceSeries, config ...VolatilityBreakoutConfig) (types.SignalType, error) {
	cfg := DefaultVolatilityBreakoutConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	s, err := NewVolatilityBreakout(cfg)
	if err != nil {
		return "", err
	}

	return signalType(s, series)
}

// MomentumSignal classifies the last bar of series with the momentum strategy.
// An optional config overrides DefaultMomentumConfig.
func MomentumSignal(series types.PriceSeries, config ...MomentumConfig) (types.SignalType, error) {
	cfg := DefaultMomentumConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	s, err := NewMomentum(cfg)
	if err != nil {
		return "", err
	}

	return signalType(s, series)
}

func signalType(s Strategy, series types.PriceSeries) (types.SignalType, error) {
	signal, err := s.Evaluate(series)
	if err != nil {
		return "", err
	}

	return signal.Type, nil
}
