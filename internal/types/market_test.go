package types

import (
	"math"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func (suite *MarketTestSuite) series() PriceSeries {
	start := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)

	return PriceSeries{
		{Symbol: "SPY", Time: start, Open: 450.0, High: 455.0, Low: 448.0, Close: 452.0, Volume: 5000000.0},
		{Symbol: "SPY", Time: start.Add(time.Minute), Open: 452.0, High: 453.5, Low: 451.0, Close: 453.0, Volume: 4200000.0},
		{Symbol: "SPY", Time: start.Add(2 * time.Minute), Open: 453.0, High: 454.0, Low: 449.5, Close: 450.0, Volume: 6100000.0},
	}
}

func (suite *MarketTestSuite) TestColumns() {
	s := suite.series()

	suite.Equal(3, s.Len())
	suite.Equal([]float64{452.0, 453.0, 450.0}, s.Closes())
	suite.Equal([]float64{455.0, 453.5, 454.0}, s.Highs())
	suite.Equal([]float64{448.0, 451.0, 449.5}, s.Lows())
	suite.Equal([]float64{5000000.0, 4200000.0, 6100000.0}, s.Volumes())
	suite.Equal(450.0, s.Last().Close)
}

func (suite *MarketTestSuite) TestColumnsDoNotAliasSeries() {
	s := suite.series()
	closes := s.Closes()
	closes[0] = -1

	suite.Equal(452.0, s[0].Close)
}

func (suite *MarketTestSuite) TestValidateAcceptsWellFormedSeries() {
	suite.NoError(suite.series().Validate())
}

func (suite *MarketTestSuite) TestValidateAcceptsMissingTimestamps() {
	s := PriceSeries{
		{Open: 1, High: 1, Low: 1, Close: 1},
		{Open: 1, High: 1, Low: 1, Close: 1},
	}

	suite.NoError(s.Validate())
}

func (suite *MarketTestSuite) TestValidateRejectsMalformedSeries() {
	tests := []struct {
		name   string
		mutate func(PriceSeries) PriceSeries
		index  int
		field  string
	}{
		{
			name:   "empty series",
			mutate: func(PriceSeries) PriceSeries { return PriceSeries{} },
			index:  -1,
			field:  "",
		},
		{
			name: "NaN close",
			mutate: func(s PriceSeries) PriceSeries {
				s[1].Close = math.NaN()
				return s
			},
			index: 1,
			field: "close",
		},
		{
			name: "infinite high",
			mutate: func(s PriceSeries) PriceSeries {
				s[2].High = math.Inf(1)
				return s
			},
			index: 2,
			field: "high",
		},
		{
			name: "negative open",
			mutate: func(s PriceSeries) PriceSeries {
				s[0].Open = -3
				return s
			},
			index: 0,
			field: "open",
		},
		{
			name: "high below low",
			mutate: func(s PriceSeries) PriceSeries {
				s[1].High = 440
				return s
			},
			index: 1,
			field: "high",
		},
		{
			name: "duplicate timestamp",
			mutate: func(s PriceSeries) PriceSeries {
				s[2].Time = s[1].Time
				return s
			},
			index: 2,
			field: "time",
		},
		{
			name: "timestamps out of order",
			mutate: func(s PriceSeries) PriceSeries {
				s[1].Time = s[0].Time.Add(-time.Hour)
				return s
			},
			index: 1,
			field: "time",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.mutate(suite.series()).Validate()
			suite.Require().Error(err)
			suite.True(errors.IsInvalidInputError(err))

			var invalid *errors.InvalidInputError
			suite.Require().True(errors.As(err, &invalid))
			suite.Equal(tt.index, invalid.Index)
			suite.Equal(tt.field, invalid.Field)
		})
	}
}
