package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// Bands holds the three aligned Bollinger Band series.
type Bands struct {
	Upper  Series
	Middle Series
	Lower  Series
}

// BollingerBands computes the middle band as SMA(values, period) and the outer bands
// at numStdDev sample standard deviations on either side of it.
func BollingerBands(values []float64, period int, numStdDev float64) (Bands, error) {
	if numStdDev <= 0 {
		return Bands{}, errors.Newf(errors.ErrCodeInvalidMultiplier, "stdDev must be a positive number, got %f", numStdDev)
	}

	if err := requireLength(types.IndicatorTypeBollingerBands, len(values), period); err != nil {
		return Bands{}, err
	}

	middle, err := SMA(values, period)
	if err != nil {
		return Bands{}, err
	}

	deviation, err := RollingStdDev(values, period)
	if err != nil {
		return Bands{}, err
	}

	bands := Bands{
		Upper:  make(Series, len(values)),
		Middle: middle,
		Lower:  make(Series, len(values)),
	}

	for i := range values {
		if middle[i].IsNone() || deviation[i].IsNone() {
			continue
		}

		m := middle[i].Unwrap()
		width := numStdDev * deviation[i].Unwrap()
		bands.Upper[i] = optional.Some(m + width)
		bands.Lower[i] = optional.Some(m - width)
	}

	return bands, nil
}
