package strategy

import (
	"fmt"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// MeanReversion buys when the close sits far below its Bollinger middle band and sells
// when it sits far above, measured as a z-score scaled by the band half-width.
type MeanReversion struct {
	config MeanReversionConfig
}

// NewMeanReversion creates a mean reversion strategy from a validated config.
func NewMeanReversion(config MeanReversionConfig) (*MeanReversion, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &MeanReversion{config: config}, nil
}

// Name implements Strategy.
func (m *MeanReversion) Name() types.StrategyType {
	return types.StrategyTypeMeanReversion
}

// RequiredBars implements Strategy.
func (m *MeanReversion) RequiredBars() int {
	return m.config.Period
}

// Evaluate implements Strategy.
//
// z = (close - middle) / (upper - middle). Flat bands leave z undefined and yield HOLD.
// Thresholds are strict, so a z-score equal to a threshold is HOLD.
func (m *MeanReversion) Evaluate(series types.PriceSeries) (types.Signal, error) {
	if err := checkSeries(m.Name(), series, m.RequiredBars()); err != nil {
		return types.Signal{}, err
	}

	bands, err := indicator.BollingerBands(series.Closes(), m.config.Period, m.config.NumStdDev)
	if err != nil {
		return types.Signal{}, err
	}

	closePrice := series.Last().Close
	upper := bands.Upper.Last().Unwrap()
	middle := bands.Middle.Last().Unwrap()
	lower := bands.Lower.Last().Unwrap()

	raw := map[string]float64{
		"close":  closePrice,
		"upper":  upper,
		"middle": middle,
		"lower":  lower,
	}

	halfWidth := upper - middle
	if halfWidth <= 0 {
		return newSignal(m.Name(), "Mean Reversion", series, types.SignalTypeHold, "flat bands, z-score undefined", raw), nil
	}

	z := (closePrice - middle) / halfWidth
	raw["z_score"] = z

	signalType, reason := m.classify(z)

	return newSignal(m.Name(), "Mean Reversion", series, signalType, reason, raw), nil
}

func (m *MeanReversion) classify(z float64) (types.SignalType, string) {
	switch {
	case z < m.config.BuyThreshold:
		return types.SignalTypeBuy, fmt.Sprintf("z-score %.4f below %.2f", z, m.config.BuyThreshold)
	case z > m.config.SellThreshold:
		return types.SignalTypeSell, fmt.Sprintf("z-score %.4f above %.2f", z, m.config.SellThreshold)
	default:
		return types.SignalTypeHold, fmt.Sprintf("z-score %.4f within [%.2f, %.2f]", z, m.config.BuyThreshold, m.config.SellThreshold)
	}
}
