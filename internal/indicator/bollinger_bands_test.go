package indicator

import (
	"math"
	"testing"

	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BollingerBandsTestSuite struct {
	suite.Suite
}

func TestBollingerBandsSuite(t *testing.T) {
	suite.Run(t, new(BollingerBandsTestSuite))
}

func (suite *BollingerBandsTestSuite) TestBands() {
	// window {1,3}: middle 2, sample std sqrt(2)
	bands, err := BollingerBands([]float64{1, 3}, 2, 2)
	suite.Require().NoError(err)

	suite.True(bands.Middle.At(0).IsNone())
	suite.True(bands.Upper.At(0).IsNone())
	suite.True(bands.Lower.At(0).IsNone())

	suite.InDelta(2.0, bands.Middle.Last().Unwrap(), 1e-12)
	suite.InDelta(2+2*math.Sqrt2, bands.Upper.Last().Unwrap(), 1e-12)
	suite.InDelta(2-2*math.Sqrt2, bands.Lower.Last().Unwrap(), 1e-12)
}

func (suite *BollingerBandsTestSuite) TestFlatSeriesCollapsesBands() {
	values := make([]float64, 20)
	for i := range values {
		values[i] = 100
	}

	bands, err := BollingerBands(values, 20, 2)
	suite.Require().NoError(err)

	suite.Equal(100.0, bands.Middle.Last().Unwrap())
	suite.Equal(100.0, bands.Upper.Last().Unwrap())
	suite.Equal(100.0, bands.Lower.Last().Unwrap())
}

func (suite *BollingerBandsTestSuite) TestSeriesAreAligned() {
	values := []float64{10, 11, 12, 11, 10, 9, 10}

	bands, err := BollingerBands(values, 3, 2)
	suite.Require().NoError(err)

	suite.Len(bands.Upper, len(values))
	suite.Len(bands.Middle, len(values))
	suite.Len(bands.Lower, len(values))

	for i := 2; i < len(values); i++ {
		suite.GreaterOrEqual(bands.Upper[i].Unwrap(), bands.Middle[i].Unwrap())
		suite.LessOrEqual(bands.Lower[i].Unwrap(), bands.Middle[i].Unwrap())
	}
}

func (suite *BollingerBandsTestSuite) TestInvalidStdDev() {
	_, err := BollingerBands([]float64{1, 2, 3}, 2, 0)
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidMultiplier))
}

func (suite *BollingerBandsTestSuite) TestInsufficientData() {
	_, err := BollingerBands([]float64{1, 2, 3}, 20, 2)
	suite.Require().Error(err)
	suite.True(errors.IsInsufficientDataError(err))
	suite.Contains(err.Error(), "bollinger_bands")
}
