package strategy

import (
	"fmt"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// Momentum buys an oversold RSI accompanied by a volume surge and sells an overbought RSI.
type Momentum struct {
	config MomentumConfig
}

// NewMomentum creates a momentum strategy from a validated config.
func NewMomentum(config MomentumConfig) (*Momentum, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Momentum{config: config}, nil
}

// Name implements Strategy.
func (m *Momentum) Name() types.StrategyType {
	return types.StrategyTypeMomentum
}

// RequiredBars implements Strategy.
func (m *Momentum) RequiredBars() int {
	return max(m.config.RSIPeriod+1, m.config.VolumePeriod)
}

// Evaluate implements Strategy.
func (m *Momentum) Evaluate(series types.PriceSeries) (types.Signal, error) {
	if err := checkSeries(m.Name(), series, m.RequiredBars()); err != nil {
		return types.Signal{}, err
	}

	rsi, err := indicator.RSI(series.Closes(), m.config.RSIPeriod)
	if err != nil {
		return types.Signal{}, err
	}

	volumeMA, err := indicator.SMA(series.Volumes(), m.config.VolumePeriod)
	if err != nil {
		return types.Signal{}, err
	}

	rsiValue := rsi.Last().Unwrap()
	volume := series.Last().Volume
	volumeThreshold := volumeMA.Last().Unwrap() * m.config.VolumeMultiplier

	raw := map[string]float64{
		"rsi":              rsiValue,
		"volume":           volume,
		"volume_threshold": volumeThreshold,
	}

	signalType := types.SignalTypeHold
	reason := fmt.Sprintf("RSI %.2f neutral", rsiValue)

	switch {
	case rsiValue < m.config.OversoldThreshold && volume > volumeThreshold:
		signalType = types.SignalTypeBuy
		reason = fmt.Sprintf("RSI oversold (value=%.2f) on volume surge %.0f > %.0f", rsiValue, volume, volumeThreshold)
	case rsiValue > m.config.OverboughtThreshold:
		signalType = types.SignalTypeSell
		reason = fmt.Sprintf("RSI overbought (value=%.2f)", rsiValue)
	case rsiValue < m.config.OversoldThreshold:
		reason = fmt.Sprintf("RSI oversold (value=%.2f) without volume confirmation", rsiValue)
	}

	return newSignal(m.Name(), "Momentum", series, signalType, reason, raw), nil
}
