package types

type IndicatorType string

const (
	IndicatorTypeMA             IndicatorType = "ma"
	IndicatorTypeEMA            IndicatorType = "ema"
	IndicatorTypeStdDev         IndicatorType = "std_dev"
	IndicatorTypeBollingerBands IndicatorType = "bollinger_bands"
	IndicatorTypeATR            IndicatorType = "atr"
	IndicatorTypeRollingMax     IndicatorType = "rolling_max"
	IndicatorTypeRollingMin     IndicatorType = "rolling_min"
	IndicatorTypePercentChange  IndicatorType = "percent_change"
	IndicatorTypeRSI            IndicatorType = "rsi"
)
