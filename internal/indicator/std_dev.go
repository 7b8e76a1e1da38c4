package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// RollingStdDev returns the sample standard deviation (n-1 denominator)
// of the trailing period values. period must be at least 2.
func RollingStdDev(values []float64, period int) (Series, error) {
	return RollingStdDevOfSeries(FromValues(values), period)
}

// RollingStdDevOfSeries is RollingStdDev over a derived series. A window that
// contains an undefined point yields an undefined deviation.
func RollingStdDevOfSeries(series Series, period int) (Series, error) {
	if period < 2 {
		return nil, errors.Newf(errors.ErrCodeInvalidStdDevPeriod, "%s period must be at least 2, got %d", types.IndicatorTypeStdDev, period)
	}

	if err := requireLength(types.IndicatorTypeStdDev, len(series), period); err != nil {
		return nil, err
	}

	result := make(Series, len(series))

	for i := range series {
		window, ok := series.window(i, period)
		if !ok {
			continue
		}

		result[i] = optional.Some(sampleStdDev(window))
	}

	return result, nil
}

func sampleStdDev(values []float64) float64 {
	m := mean(values)

	var squaredDiffSum float64

	for _, v := range values {
		diff := v - m
		squaredDiffSum += diff * diff
	}

	return math.Sqrt(squaredDiffSum / float64(len(values)-1))
}
