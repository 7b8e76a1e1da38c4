package strategy

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MeanReversionConfig configures the mean reversion strategy.
type MeanReversionConfig struct {
	Period        int     `yaml:"period" json:"period" jsonschema:"title=Period,description=Bollinger Band lookback in bars,default=20,minimum=2" validate:"min=2"`
	NumStdDev     float64 `yaml:"num_std_dev" json:"num_std_dev" jsonschema:"title=Standard Deviations,description=Band width in sample standard deviations,default=2" validate:"gt=0"`
	BuyThreshold  float64 `yaml:"buy_threshold" json:"buy_threshold" jsonschema:"title=Buy Threshold,description=BUY when the z-score is strictly below this value,default=-1.5" validate:"ltfield=SellThreshold"`
	SellThreshold float64 `yaml:"sell_threshold" json:"sell_threshold" jsonschema:"title=Sell Threshold,description=SELL when the z-score is strictly above this value,default=1.5"`
}

// TrendFollowingConfig configures the trend following strategy.
type TrendFollowingConfig struct {
	FastSpan   int `yaml:"fast_span" json:"fast_span" jsonschema:"title=Fast Span,description=Span of the fast EMA,default=20,minimum=1" validate:"min=1,ltfield=MediumSpan"`
	MediumSpan int `yaml:"medium_span" json:"medium_span" jsonschema:"title=Medium Span,description=Span of the medium EMA,default=50,minimum=1" validate:"min=1,ltfield=SlowSpan"`
	SlowSpan   int `yaml:"slow_span" json:"slow_span" jsonschema:"title=Slow Span,description=Span of the slow EMA,default=200,minimum=1" validate:"min=1"`
}

// VolatilityBreakoutConfig configures the volatility breakout strategy.
type VolatilityBreakoutConfig struct {
	StdPeriod          int     `yaml:"std_period" json:"std_period" jsonschema:"title=Volatility Period,description=Window of the rolling standard deviation of returns,default=20,minimum=2" validate:"min=2"`
	VolMeanPeriod      int     `yaml:"vol_mean_period" json:"vol_mean_period" jsonschema:"title=Volatility Mean Period,description=Window of the moving average of volatility,default=50,minimum=1" validate:"min=1"`
	BreakoutMultiplier float64 `yaml:"breakout_multiplier" json:"breakout_multiplier" jsonschema:"title=Breakout Multiplier,description=Volatility must exceed its mean times this factor,default=1.5" validate:"gt=0"`
	HighPeriod         int     `yaml:"high_period" json:"high_period" jsonschema:"title=High Period,description=Bars in the prior range the close must break above,default=20,minimum=1" validate:"min=1"`
	ATRPeriod          int     `yaml:"atr_period" json:"atr_period" jsonschema:"title=ATR Period,description=Average true range window (reported only),default=14,minimum=1" validate:"min=1"`
}

// MomentumConfig configures the momentum strategy.
type MomentumConfig struct {
	RSIPeriod           int     `yaml:"rsi_period" json:"rsi_period" jsonschema:"title=RSI Period,default=14,minimum=1" validate:"min=1"`
	OversoldThreshold   float64 `yaml:"oversold_threshold" json:"oversold_threshold" jsonschema:"title=Oversold Threshold,default=30,minimum=0,maximum=100" validate:"gte=0,lte=100,ltfield=OverboughtThreshold"`
	OverboughtThreshold float64 `yaml:"overbought_threshold" json:"overbought_threshold" jsonschema:"title=Overbought Threshold,default=70,minimum=0,maximum=100" validate:"gte=0,lte=100"`
	VolumePeriod        int     `yaml:"volume_period" json:"volume_period" jsonschema:"title=Volume Period,description=Window of the volume moving average,default=20,minimum=1" validate:"min=1"`
	VolumeMultiplier    float64 `yaml:"volume_multiplier" json:"volume_multiplier" jsonschema:"title=Volume Multiplier,description=Volume must exceed its average times this factor to confirm a BUY,default=1.5" validate:"gt=0"`
}

// Config is the strategy configuration file.
type Config struct {
	Version            string                   `yaml:"version" json:"version" jsonschema:"title=Version,description=argo-signals version the config was written for,required" validate:"required"`
	Enabled            []types.StrategyType     `yaml:"enabled" json:"enabled" jsonschema:"title=Enabled Strategies,required,enum=mean_reversion,enum=trend_following,enum=volatility_breakout,enum=momentum" validate:"required,min=1,unique,dive,oneof=mean_reversion trend_following volatility_breakout momentum"`
	MeanReversion      MeanReversionConfig      `yaml:"mean_reversion" json:"mean_reversion" jsonschema:"title=Mean Reversion"`
	TrendFollowing     TrendFollowingConfig     `yaml:"trend_following" json:"trend_following" jsonschema:"title=Trend Following"`
	VolatilityBreakout VolatilityBreakoutConfig `yaml:"volatility_breakout" json:"volatility_breakout" jsonschema:"title=Volatility Breakout"`
	Momentum           MomentumConfig           `yaml:"momentum" json:"momentum" jsonschema:"title=Momentum"`
}

// DefaultMeanReversionConfig returns period 20, 2 standard deviations and thresholds of ±1.5.
func DefaultMeanReversionConfig() MeanReversionConfig {
	return MeanReversionConfig{
		Period:        20,
		NumStdDev:     2,
		BuyThreshold:  -1.5,
		SellThreshold: 1.5,
	}
}

// DefaultTrendFollowingConfig returns the 20/50/200 EMA stack.
func DefaultTrendFollowingConfig() TrendFollowingConfig {
	return TrendFollowingConfig{
		FastSpan:   20,
		MediumSpan: 50,
		SlowSpan:   200,
	}
}

// DefaultVolatilityBreakoutConfig returns the defaults of the volatility breakout strategy.
func DefaultVolatilityBreakoutConfig() VolatilityBreakoutConfig {
	return VolatilityBreakoutConfig{
		StdPeriod:          20,
		VolMeanPeriod:      50,
		BreakoutMultiplier: 1.5,
		HighPeriod:         20,
		ATRPeriod:          14,
	}
}

// DefaultMomentumConfig returns RSI(14) with 30/70 thresholds and a 1.5x volume surge over 20 bars.
func DefaultMomentumConfig() MomentumConfig {
	return MomentumConfig{
		RSIPeriod:           14,
		OversoldThreshold:   30,
		OverboughtThreshold: 70,
		VolumePeriod:        20,
		VolumeMultiplier:    1.5,
	}
}

// DefaultConfig returns a config enabling every built-in strategy with default parameters.
func DefaultConfig() Config {
	return Config{
		Version:            version.GetVersion(),
		Enabled:            types.AllStrategyTypes(),
		MeanReversion:      DefaultMeanReversionConfig(),
		TrendFollowing:     DefaultTrendFollowingConfig(),
		VolatilityBreakout: DefaultVolatilityBreakoutConfig(),
		Momentum:           DefaultMomentumConfig(),
	}
}

func validateStruct(name string, s any) error {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return errors.Wrapf(errors.ErrCodeStrategyConfigError, err, "invalid %s config", name)
	}

	return nil
}

// Validate validates the MeanReversionConfig.
func (c MeanReversionConfig) Validate() error {
	return validateStruct(string(types.StrategyTypeMeanReversion), c)
}

// Validate validates the TrendFollowingConfig.
func (c TrendFollowingConfig) Validate() error {
	return validateStruct(string(types.StrategyTypeTrendFollowing), c)
}

// Validate validates the VolatilityBreakoutConfig.
func (c VolatilityBreakoutConfig) Validate() error {
	return validateStruct(string(types.StrategyTypeVolatilityBreakout), c)
}

// Validate validates the MomentumConfig.
func (c MomentumConfig) Validate() error {
	return validateStruct(string(types.StrategyTypeMomentum), c)
}

// Validate validates the whole config and checks its version against the running build.
func (c Config) Validate() error {
	if err := validateStruct("strategy", c); err != nil {
		return err
	}

	return version.CheckConfigCompatibility(version.GetVersion(), c.Version)
}

// ParseConfig parses YAML on top of DefaultConfig, so omitted sections keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse strategy config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, fmt.Sprintf("failed to read config %s", path), err)
	}

	return ParseConfig(data)
}

// ToYAML renders the config with a yaml-language-server schema header.
func (c Config) ToYAML(schemaName string) ([]byte, error) {
	body, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal strategy config", err)
	}

	return append([]byte("# yaml-language-server: $schema="+schemaName+"\n"), body...), nil
}
