package indicator

import "github.com/moznion/go-optional"

// PercentChange returns (value[i]-value[i-1])/value[i-1].
// Index 0 is undefined, as is every point whose previous value is zero.
func PercentChange(values []float64) Series {
	result := make(Series, len(values))

	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}

		result[i] = optional.Some((values[i] - prev) / prev)
	}

	return result
}
