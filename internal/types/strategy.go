package types

type StrategyType string

const (
	StrategyTypeMeanReversion      StrategyType = "mean_reversion"
	StrategyTypeTrendFollowing     StrategyType = "trend_following"
	StrategyTypeVolatilityBreakout StrategyType = "volatility_breakout"
	StrategyTypeMomentum           StrategyType = "momentum"
)

// AllStrategyTypes lists every built-in strategy in a stable order.
func AllStrategyTypes() []StrategyType {
	return []StrategyType{
		StrategyTypeMeanReversion,
		StrategyTypeTrendFollowing,
		StrategyTypeVolatilityBreakout,
		StrategyTypeMomentum,
	}
}
