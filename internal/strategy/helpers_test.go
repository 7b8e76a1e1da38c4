package strategy

import (
	"math"
	"time"

	"github.com/rxtech-lab/argo-signals/internal/types"
)

var testStart = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// barsFromCloses builds one-minute bars whose open is the previous close and whose
// high and low sit 0.1% beyond the open/close range.
func barsFromCloses(closes []float64) types.PriceSeries {
	series := make(types.PriceSeries, len(closes))

	for i, c := range closes {
		open := c
		if i > 0 {
			open = closes[i-1]
		}

		series[i] = types.MarketData{
			Symbol: "TEST",
			Time:   testStart.Add(time.Duration(i) * time.Minute),
			Open:   open,
			High:   math.Max(open, c) * 1.001,
			Low:    math.Min(open, c) * 0.999,
			Close:  c,
			Volume: 1000,
		}
	}

	return series
}

// closesFromReturns compounds returns onto start; the result has len(returns)+1 points.
func closesFromReturns(start float64, returns []float64) []float64 {
	closes := make([]float64, 0, len(returns)+1)
	closes = append(closes, start)

	for _, r := range returns {
		closes = append(closes, closes[len(closes)-1]*(1+r))
	}

	return closes
}

// alternating returns n returns of +size, -size, +size, ...
func alternating(n int, size float64) []float64 {
	returns := make([]float64, n)
	for j := range returns {
		if j%2 == 0 {
			returns[j] = size
		} else {
			returns[j] = -size
		}
	}

	return returns
}

func constant(n int, value float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = value
	}

	return values
}

func linear(n int, start, step float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + step*float64(i)
	}

	return values
}
