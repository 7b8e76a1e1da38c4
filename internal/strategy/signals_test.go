package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SignalsTestSuite struct {
	suite.Suite
}

func TestSignalsSuite(t *testing.T) {
	suite.Run(t, new(SignalsTestSuite))
}

func (suite *SignalsTestSuite) TestDefaults() {
	signal, err := MeanReversionSignal(barsFromCloses(append(constant(19, 100), 90)))
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeBuy, signal)

	signal, err = TrendFollowingSignal(barsFromCloses(linear(250, 100, 1)))
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeBuy, signal)

	signal, err = VolatilityBreakoutSignal(barsFromCloses(expansionThenMove(0.10)))
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeBuy, signal)

	signal, err = MomentumSignal(barsFromCloses(linear(30, 100, 1)))
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeSell, signal)
}

func (suite *SignalsTestSuite) TestConfigOverride() {
	series := barsFromCloses(append(constant(19, 100), 90))

	config := DefaultMeanReversionConfig()
	config.BuyThreshold = -3

	signal, err := MeanReversionSignal(series, config)
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeHold, signal)
}

func (suite *SignalsTestSuite) TestShortSeriesIsAnErrorNotHold() {
	short := barsFromCloses(constant(5, 100))

	checks := map[string]func(types.PriceSeries) (types.SignalType, error){
		"mean reversion": func(s types.PriceSeries) (types.SignalType, error) { return MeanReversionSignal(s) },
		"trend":          func(s types.PriceSeries) (types.SignalType, error) { return TrendFollowingSignal(s) },
		"volatility":     func(s types.PriceSeries) (types.SignalType, error) { return VolatilityBreakoutSignal(s) },
		"momentum":       func(s types.PriceSeries) (types.SignalType, error) { return MomentumSignal(s) },
	}

	for name, check := range checks {
		suite.Run(name, func() {
			signal, err := check(short)
			suite.Require().Error(err)
			suite.True(errors.IsInsufficientDataError(err))
			suite.Empty(signal)
		})
	}
}

func (suite *SignalsTestSuite) TestInvalidConfig() {
	_, err := TrendFollowingSignal(barsFromCloses(linear(250, 100, 1)), TrendFollowingConfig{FastSpan: 3, MediumSpan: 2, SlowSpan: 1})
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

func (suite *SignalsTestSuite) TestDoesNotMutateInput() {
	series := barsFromCloses(expansionThenMove(0.10))
	snapshot := make(types.PriceSeries, len(series))
	copy(snapshot, series)

	_, err := VolatilityBreakoutSignal(series)
	suite.Require().NoError(err)
	suite.Equal(snapshot, series)
}

func (suite *SignalsTestSuite) TestSameSeriesGivesSameSignal() {
	falling := barsFromCloses(linear(30, 200, -1))
	falling[len(falling)-1].Volume = 5000

	cases := []struct {
		name     string
		series   types.PriceSeries
		expected types.SignalType
		signal   func(types.PriceSeries) (types.SignalType, error)
	}{
		{"mean reversion", barsFromCloses(append(constant(19, 100), 90)), types.SignalTypeBuy, func(s types.PriceSeries) (types.SignalType, error) { return MeanReversionSignal(s) }},
		{"trend rising", barsFromCloses(linear(250, 100, 1)), types.SignalTypeBuy, func(s types.PriceSeries) (types.SignalType, error) { return TrendFollowingSignal(s) }},
		{"trend falling", barsFromCloses(linear(250, 400, -1)), types.SignalTypeSell, func(s types.PriceSeries) (types.SignalType, error) { return TrendFollowingSignal(s) }},
		{"volatility breakout", barsFromCloses(expansionThenMove(0.10)), types.SignalTypeBuy, func(s types.PriceSeries) (types.SignalType, error) { return VolatilityBreakoutSignal(s) }},
		{"volatility hold", barsFromCloses(expansionThenMove(-0.25)), types.SignalTypeHold, func(s types.PriceSeries) (types.SignalType, error) { return VolatilityBreakoutSignal(s) }},
		{"momentum sell", barsFromCloses(linear(30, 100, 1)), types.SignalTypeSell, func(s types.PriceSeries) (types.SignalType, error) { return MomentumSignal(s) }},
		{"momentum buy", falling, types.SignalTypeBuy, func(s types.PriceSeries) (types.SignalType, error) { return MomentumSignal(s) }},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			first, err := tc.signal(tc.series)
			suite.Require().NoError(err)

			second, err := tc.signal(tc.series)
			suite.Require().NoError(err)

			suite.Equal(tc.expected, first)
			suite.Equal(first, second)
		})
	}
}
