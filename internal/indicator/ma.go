package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// SMA returns the simple moving average of the trailing period values.
// The first defined point is at index period-1.
func SMA(values []float64, period int) (Series, error) {
	return SMAOfSeries(FromValues(values), period)
}

// SMAOfSeries is SMA over a derived series. A window that contains an
// undefined point yields an undefined average.
func SMAOfSeries(series Series, period int) (Series, error) {
	if err := validatePeriod(types.IndicatorTypeMA, period); err != nil {
		return nil, err
	}

	if err := requireLength(types.IndicatorTypeMA, len(series), period); err != nil {
		return nil, err
	}

	result := make(Series, len(series))

	for i := range series {
		window, ok := series.window(i, period)
		if !ok {
			continue
		}

		result[i] = optional.Some(mean(window))
	}

	return result, nil
}
