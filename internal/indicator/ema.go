package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// EMA returns the exponential moving average with smoothing factor 2/(span+1).
//
// The average is seeded with the simple mean of the first span values, placed at
// index span-1; every earlier point is undefined. After the seed:
//
//	EMA[i] = value[i]*alpha + EMA[i-1]*(1-alpha)
func EMA(values []float64, span int) (Series, error) {
	if err := validatePeriod(types.IndicatorTypeEMA, span); err != nil {
		return nil, err
	}

	if err := requireLength(types.IndicatorTypeEMA, len(values), span); err != nil {
		return nil, err
	}

	result := make(Series, len(values))
	alpha := 2.0 / float64(span+1)

	ema := mean(values[:span])
	result[span-1] = optional.Some(ema)

	for i := span; i < len(values); i++ {
		ema = values[i]*alpha + ema*(1-alpha)
		result[i] = optional.Some(ema)
	}

	return result, nil
}
