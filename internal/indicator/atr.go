package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// TrueRange returns max(high-low, |high-prevClose|, |low-prevClose|) per bar.
// The first bar has no previous close, so its true range is high-low.
func TrueRange(series types.PriceSeries) Series {
	result := make(Series, len(series))

	for i, bar := range series {
		tr := bar.High - bar.Low
		if i > 0 {
			prevClose := series[i-1].Close
			tr = math.Max(tr, math.Max(math.Abs(bar.High-prevClose), math.Abs(bar.Low-prevClose)))
		}

		result[i] = optional.Some(tr)
	}

	return result
}

// ATR returns the Average True Range as the simple moving average of TrueRange
// over period bars.
func ATR(series types.PriceSeries, period int) (Series, error) {
	if err := validatePeriod(types.IndicatorTypeATR, period); err != nil {
		return nil, err
	}

	if err := requireLength(types.IndicatorTypeATR, len(series), period); err != nil {
		return nil, err
	}

	return SMAOfSeries(TrueRange(series), period)
}
