package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/types"
)

// DataSource loads OHLCV bars for strategy evaluation.
type DataSource interface {
	// Initialize points the data source at a parquet or CSV file of bars.
	Initialize(path string) error
	// ReadAll yields the bars of symbol in chronological order, optionally bounded by start and end.
	// An empty symbol reads every symbol.
	ReadAll(symbol string, start optional.Option[time.Time], end optional.Option[time.Time]) func(yield func(types.MarketData, error) bool)
	// GetPreviousNumberOfDataPoints returns up to count bars of symbol ending at end, oldest first.
	// When fewer bars exist the partial series is returned with an InsufficientDataError.
	GetPreviousNumberOfDataPoints(end time.Time, symbol string, count int) (types.PriceSeries, error)
	// ReadLastData reads the most recent bar of symbol.
	ReadLastData(symbol string) (types.MarketData, error)
	// Count returns the number of bars of symbol.
	Count(symbol string) (int, error)
	// GetAllSymbols returns the distinct symbols in the data set.
	GetAllSymbols() ([]string, error)
	// Close releases the underlying database.
	Close() error
}
