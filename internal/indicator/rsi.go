package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// RSI returns the Relative Strength Index using Wilder's smoothing.
// The first defined point is at index period; it is seeded with the simple means of
// the first period gains and losses. A window without losses has an RSI of 100.
func RSI(values []float64, period int) (Series, error) {
	if err := validatePeriod(types.IndicatorTypeRSI, period); err != nil {
		return nil, err
	}

	if err := requireLength(types.IndicatorTypeRSI, len(values), period+1); err != nil {
		return nil, err
	}

	result := make(Series, len(values))

	var avgGain, avgLoss float64

	for i := 1; i < len(values); i++ {
		gain, loss := 0.0, 0.0

		change := values[i] - values[i-1]
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		switch {
		case i < period:
			avgGain += gain
			avgLoss += loss

			continue
		case i == period:
			avgGain = (avgGain + gain) / float64(period)
			avgLoss = (avgLoss + loss) / float64(period)
		default:
			avgGain = (avgGain*float64(period-1) + gain) / float64(period)
			avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		}

		result[i] = optional.Some(rsiValue(avgGain, avgLoss))
	}

	return result, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss

	return 100 - (100 / (1 + rs))
}
