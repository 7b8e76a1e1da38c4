package strategy

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MomentumTestSuite struct {
	suite.Suite
	strategy *Momentum
}

func TestMomentumSuite(t *testing.T) {
	suite.Run(t, new(MomentumTestSuite))
}

func (suite *MomentumTestSuite) SetupTest() {
	strategy, err := NewMomentum(DefaultMomentumConfig())
	suite.Require().NoError(err)
	suite.strategy = strategy
}

func (suite *MomentumTestSuite) TestName() {
	suite.Equal(types.StrategyTypeMomentum, suite.strategy.Name())
	suite.Equal(20, suite.strategy.RequiredBars())
}

func (suite *MomentumTestSuite) TestOversoldWithVolumeSurgeBuys() {
	series := barsFromCloses(linear(30, 200, -1))
	series[len(series)-1].Volume = 5000

	signal, err := suite.strategy.Evaluate(series)
	suite.Require().NoError(err)

	suite.Equal(types.SignalTypeBuy, signal.Type)
	suite.Equal(0.0, signal.RawValue["rsi"])
	suite.InDelta(1800.0, signal.RawValue["volume_threshold"], 1e-9)
}

func (suite *MomentumTestSuite) TestOversoldWithoutVolumeHolds() {
	signal, err := suite.strategy.Evaluate(barsFromCloses(linear(30, 200, -1)))
	suite.Require().NoError(err)

	suite.Equal(types.SignalTypeHold, signal.Type)
	suite.Contains(signal.Reason, "without volume confirmation")
}

func (suite *MomentumTestSuite) TestOverboughtSells() {
	signal, err := suite.strategy.Evaluate(barsFromCloses(linear(30, 100, 1)))
	suite.Require().NoError(err)

	suite.Equal(types.SignalTypeSell, signal.Type)
	suite.Equal(100.0, signal.RawValue["rsi"])
}

func (suite *MomentumTestSuite) TestNeutralHolds() {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i%2)
	}

	signal, err := suite.strategy.Evaluate(barsFromCloses(closes))
	suite.Require().NoError(err)
	suite.Equal(types.SignalTypeHold, signal.Type)
}

func (suite *MomentumTestSuite) TestInsufficientData() {
	_, err := suite.strategy.Evaluate(barsFromCloses(linear(19, 100, 1)))
	suite.Require().Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *MomentumTestSuite) TestInvalidConfig() {
	config := DefaultMomentumConfig()
	config.OversoldThreshold = 80

	_, err := NewMomentum(config)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}
