package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// RollingMax returns the maximum of the trailing period values, current value included.
func RollingMax(values []float64, period int) (Series, error) {
	return rollingExtreme(types.IndicatorTypeRollingMax, values, period, math.Max)
}

// RollingMin returns the minimum of the trailing period values, current value included.
func RollingMin(values []float64, period int) (Series, error) {
	return rollingExtreme(types.IndicatorTypeRollingMin, values, period, math.Min)
}

func rollingExtreme(kind types.IndicatorType, values []float64, period int, pick func(a, b float64) float64) (Series, error) {
	if err := validatePeriod(kind, period); err != nil {
		return nil, err
	}

	if err := requireLength(kind, len(values), period); err != nil {
		return nil, err
	}

	result := make(Series, len(values))

	for i := period - 1; i < len(values); i++ {
		extreme := values[i-period+1]
		for _, v := range values[i-period+2 : i+1] {
			extreme = pick(extreme, v)
		}

		result[i] = optional.Some(extreme)
	}

	return result, nil
}
