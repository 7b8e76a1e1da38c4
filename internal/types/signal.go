package types

import "time"

type SignalType string

const (
	// SignalTypeBuy tells the caller the heuristic favours entering a long position
	SignalTypeBuy SignalType = "BUY"
	// SignalTypeSell tells the caller the heuristic favours exiting or shorting
	SignalTypeSell SignalType = "SELL"
	// SignalTypeHold means every indicator was computed and no threshold was crossed
	SignalTypeHold SignalType = "HOLD"
)

// IsAction reports whether the signal asks the caller to do something.
func (s SignalType) IsAction() bool {
	return s == SignalTypeBuy || s == SignalTypeSell
}

type Signal struct {
	// Time is the time of the bar the signal was computed on
	Time time.Time `json:"time"`
	// Type is the classification
	Type SignalType `json:"type"`
	// Name is the human readable name of the strategy
	Name string `json:"name"`
	// Reason explains which condition produced the classification
	Reason string `json:"reason"`
	// RawValue holds the latest indicator values the decision was based on
	RawValue map[string]float64 `json:"rawValue,omitempty"`
	// Symbol is the symbol of the evaluated series
	Symbol string `json:"symbol"`
	// Strategy is the strategy that generated the signal
	Strategy StrategyType `json:"strategy"`
}
