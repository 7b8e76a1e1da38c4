package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) bars() types.PriceSeries {
	return types.PriceSeries{
		{Open: 10, High: 12, Low: 9, Close: 11},    // TR 3 (no previous close)
		{Open: 11, High: 11.5, Low: 10, Close: 10}, // max(1.5, 0.5, 1) = 1.5
		{Open: 13, High: 15, Low: 13, Close: 14},   // gap up: max(2, 5, 3) = 5
		{Open: 12, High: 13, Low: 8, Close: 9},     // gap down: max(5, 1, 6) = 6
	}
}

func (suite *ATRTestSuite) TestTrueRange() {
	requireValues(&suite.Suite, []*float64{f(3), f(1.5), f(5), f(6)}, TrueRange(suite.bars()))
}

func (suite *ATRTestSuite) TestATRIsSimpleAverageOfTrueRange() {
	result, err := ATR(suite.bars(), 2)
	suite.Require().NoError(err)

	requireValues(&suite.Suite, []*float64{nil, f(2.25), f(3.25), f(5.5)}, result)
}

func (suite *ATRTestSuite) TestInsufficientData() {
	_, err := ATR(suite.bars(), 14)
	suite.Require().Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *ATRTestSuite) TestInvalidPeriod() {
	_, err := ATR(suite.bars(), 0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
