package engine

import (
	"time"

	"github.com/rxtech-lab/argo-signals/internal/types"
)

// OnSignalCallback is called for every signal produced during a scan.
// Returning an error aborts the scan.
type OnSignalCallback func(signal types.Signal) error

// OnProcessDataCallback is called after each bar is processed during a scan.
type OnProcessDataCallback func(current int, total int) error

// ScanCallbacks holds the scan callbacks. A nil field means no callback is invoked.
type ScanCallbacks struct {
	OnSignal      *OnSignalCallback
	OnProcessData *OnProcessDataCallback
}

// Evaluation is the result of running every registered strategy on the latest bars of a symbol.
type Evaluation struct {
	// ID identifies this evaluation run.
	ID string `json:"id"`
	// Symbol is the evaluated symbol.
	Symbol string `json:"symbol"`
	// Time is the time of the bar the signals refer to.
	Time time.Time `json:"time"`
	// Signals holds one signal per strategy that could be evaluated, in registry order.
	Signals []types.Signal `json:"signals"`
	// Errors holds the strategies that could not be evaluated, for example because the
	// data source has fewer bars than they require. A failed strategy is never reported as HOLD.
	Errors map[types.StrategyType]error `json:"-"`
}

// ScanSummary counts what a scan produced.
type ScanSummary struct {
	Bars    int                                              `json:"bars"`
	Signals map[types.StrategyType]map[types.SignalType]int `json:"signals"`
	Errors  int                                              `json:"errors"`
}
