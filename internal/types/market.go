package types

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// MarketData is a single OHLCV bar.
type MarketData struct {
	Symbol string    `yaml:"symbol" json:"symbol" csv:"symbol"`
	Time   time.Time `yaml:"time" json:"time" csv:"time"`
	Open   float64   `yaml:"open" json:"open" csv:"open"`
	High   float64   `yaml:"high" json:"high" csv:"high"`
	Low    float64   `yaml:"low" json:"low" csv:"low"`
	Close  float64   `yaml:"close" json:"close" csv:"close"`
	Volume float64   `yaml:"volume" json:"volume" csv:"volume"`
}

// PriceSeries is a time-ordered sequence of bars, oldest first.
// Callers must treat a PriceSeries as immutable once handed to an indicator or strategy.
type PriceSeries []MarketData

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int {
	return len(s)
}

// Last returns the most recent bar. The series must not be empty.
func (s PriceSeries) Last() MarketData {
	return s[len(s)-1]
}

// Closes returns the close prices of the series.
func (s PriceSeries) Closes() []float64 {
	return s.column(func(d MarketData) float64 { return d.Close })
}

// Highs returns the high prices of the series.
func (s PriceSeries) Highs() []float64 {
	return s.column(func(d MarketData) float64 { return d.High })
}

// Lows returns the low prices of the series.
func (s PriceSeries) Lows() []float64 {
	return s.column(func(d MarketData) float64 { return d.Low })
}

// Volumes returns the traded volumes of the series.
func (s PriceSeries) Volumes() []float64 {
	return s.column(func(d MarketData) float64 { return d.Volume })
}

func (s PriceSeries) column(pick func(MarketData) float64) []float64 {
	values := make([]float64, len(s))
	for i, d := range s {
		values[i] = pick(d)
	}

	return values
}

// Validate checks that the series can be fed to an indicator.
// It returns an *errors.InvalidInputError when the series is empty, when a price is
// NaN, infinite or negative, when a bar's high is below its low, or when timestamps
// are present but not strictly increasing. Bars with a zero Time skip the ordering check.
func (s PriceSeries) Validate() error {
	if len(s) == 0 {
		return errors.NewInvalidInputError(-1, "", "price series is empty")
	}

	for i, bar := range s {
		fields := []struct {
			name  string
			value float64
		}{
			{"open", bar.Open},
			{"high", bar.High},
			{"low", bar.Low},
			{"close", bar.Close},
			{"volume", bar.Volume},
		}

		for _, f := range fields {
			if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
				return errors.NewInvalidInputErrorf(i, f.name, "bar %d has a non-finite %s", i, f.name)
			}

			if f.value < 0 {
				return errors.NewInvalidInputErrorf(i, f.name, "bar %d has a negative %s: %f", i, f.name, f.value)
			}
		}

		if bar.High < bar.Low {
			return errors.NewInvalidInputErrorf(i, "high", "bar %d has high %f below low %f", i, bar.High, bar.Low)
		}

		if i > 0 && !bar.Time.IsZero() && !s[i-1].Time.IsZero() && !bar.Time.After(s[i-1].Time) {
			return errors.NewInvalidInputErrorf(i, "time", "bar %d at %s is not after bar %d at %s",
				i, bar.Time.Format(time.RFC3339), i-1, s[i-1].Time.Format(time.RFC3339))
		}
	}

	return nil
}
