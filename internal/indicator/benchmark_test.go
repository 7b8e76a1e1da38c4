package indicator_test

import (
	"testing"

	"github.com/rxtech-lab/argo-signals/internal/indicator"
	"github.com/rxtech-lab/argo-signals/internal/strategy"
	"github.com/rxtech-lab/argo-signals/mocks"
)

// BenchmarkIndicators10K benchmarks each indicator over 10,000 generated bars.
func BenchmarkIndicators10K(b *testing.B) {
	series := mocks.Generate10K("AAPL")
	closes := series.Closes()

	benchmarks := []struct {
		name string
		run  func() error
	}{
		{"SMA", func() error { _, err := indicator.SMA(closes, 20); return err }},
		{"EMA", func() error { _, err := indicator.EMA(closes, 200); return err }},
		{"RollingStdDev", func() error { _, err := indicator.RollingStdDev(closes, 20); return err }},
		{"BollingerBands", func() error { _, err := indicator.BollingerBands(closes, 20, 2); return err }},
		{"ATR", func() error { _, err := indicator.ATR(series, 14); return err }},
		{"RollingMax", func() error { _, err := indicator.RollingMax(series.Highs(), 20); return err }},
		{"RSI", func() error { _, err := indicator.RSI(closes, 14); return err }},
		{"Volatility", func() error {
			_, err := indicator.RollingStdDevOfSeries(indicator.PercentChange(closes), 20)
			return err
		}},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if err := bm.run(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStrategiesLatestBar benchmarks classifying the last bar with the minimum history each strategy needs.
func BenchmarkStrategiesLatestBar(b *testing.B) {
	series := mocks.Generate10K("AAPL")

	registry, err := strategy.NewStrategyRegistryFromConfig(strategy.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}

	for _, name := range registry.ListStrategies() {
		s, err := registry.GetStrategy(name)
		if err != nil {
			b.Fatal(err)
		}

		window := series[len(series)-s.RequiredBars():]

		b.Run(string(name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := s.Evaluate(window); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
