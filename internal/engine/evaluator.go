package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/datasource"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/strategy"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
	"go.uber.org/zap"
)

// Evaluator runs the strategies of a registry against bars read from a data source.
type Evaluator struct {
	dataSource datasource.DataSource
	registry   strategy.StrategyRegistry
	log        *logger.Logger
}

// NewEvaluator creates an evaluator. A nil logger discards logs.
func NewEvaluator(dataSource datasource.DataSource, registry strategy.StrategyRegistry, log *logger.Logger) *Evaluator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Evaluator{
		dataSource: dataSource,
		registry:   registry,
		log:        log,
	}
}

// Evaluate classifies the bar of symbol at end, or the latest bar when end is None,
// with every registered strategy. Each strategy reads exactly RequiredBars bars.
// Strategies that cannot be evaluated are reported in Evaluation.Errors.
func (e *Evaluator) Evaluate(ctx context.Context, symbol string, end optional.Option[time.Time]) (Evaluation, error) {
	names := e.registry.ListStrategies()
	if len(names) == 0 {
		return Evaluation{}, errors.New(errors.ErrCodeNoStrategies, "no strategies registered")
	}

	endTime, err := e.resolveEnd(symbol, end)
	if err != nil {
		return Evaluation{}, err
	}

	evaluation := Evaluation{
		ID:      uuid.New().String(),
		Symbol:  symbol,
		Time:    endTime,
		Signals: make([]types.Signal, 0, len(names)),
		Errors:  make(map[types.StrategyType]error),
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return Evaluation{}, errors.Wrap(errors.ErrCodeEvaluationCancelled, "evaluation cancelled", err)
		}

		s, err := e.registry.GetStrategy(name)
		if err != nil {
			return Evaluation{}, err
		}

		series, err := e.dataSource.GetPreviousNumberOfDataPoints(endTime, symbol, s.RequiredBars())
		if err != nil {
			if !errors.IsInsufficientDataError(err) {
				return Evaluation{}, err
			}

			e.log.Warn("Not enough bars for strategy",
				zap.String("evaluation", evaluation.ID),
				zap.String("strategy", string(name)),
				zap.Error(err))

			evaluation.Errors[name] = err

			continue
		}

		signal, err := s.Evaluate(series)
		if err != nil {
			e.log.Warn("Strategy evaluation failed",
				zap.String("evaluation", evaluation.ID),
				zap.String("strategy", string(name)),
				zap.Error(err))

			evaluation.Errors[name] = err

			continue
		}

		e.log.Debug("Strategy evaluated",
			zap.String("evaluation", evaluation.ID),
			zap.String("strategy", string(name)),
			zap.String("signal", string(signal.Type)),
			zap.String("reason", signal.Reason))

		evaluation.Signals = append(evaluation.Signals, signal)
	}

	return evaluation, nil
}

func (e *Evaluator) resolveEnd(symbol string, end optional.Option[time.Time]) (time.Time, error) {
	if end.IsSome() {
		return end.Unwrap(), nil
	}

	last, err := e.dataSource.ReadLastData(symbol)
	if err != nil {
		return time.Time{}, err
	}

	return last.Time, nil
}

// Scan walks forward through every bar of symbol and classifies each bar with every
// strategy that has enough history, as if the strategies had run live.
// Per-bar strategy errors are logged and counted; callback errors and cancellation abort the scan.
func (e *Evaluator) Scan(ctx context.Context, symbol string, callbacks ScanCallbacks) (ScanSummary, error) {
	strategies, window, err := e.loadStrategies()
	if err != nil {
		return ScanSummary{}, err
	}

	total, err := e.dataSource.Count(symbol)
	if err != nil {
		return ScanSummary{}, err
	}

	summary := ScanSummary{
		Signals: make(map[types.StrategyType]map[types.SignalType]int, len(strategies)),
	}
	for _, s := range strategies {
		summary.Signals[s.Name()] = make(map[types.SignalType]int)
	}

	e.log.Info("Starting scan",
		zap.String("symbol", symbol),
		zap.Int("bars", total),
		zap.Int("strategies", len(strategies)))

	history := make(types.PriceSeries, 0, window*2)

	for data, err := range e.dataSource.ReadAll(symbol, optional.None[time.Time](), optional.None[time.Time]()) {
		select {
		case <-ctx.Done():
			return summary, errors.Wrap(errors.ErrCodeEvaluationCancelled, "scan cancelled", ctx.Err())
		default:
		}

		if err != nil {
			return summary, err
		}

		history = append(history, data)
		if len(history) > window {
			history = history[len(history)-window:]
		}

		summary.Bars++

		for _, s := range strategies {
			required := s.RequiredBars()
			if len(history) < required {
				continue
			}

			signal, err := s.Evaluate(history[len(history)-required:])
			if err != nil {
				summary.Errors++

				e.log.Debug("Strategy evaluation failed",
					zap.String("strategy", string(s.Name())),
					zap.Time("time", data.Time),
					zap.Error(err))

				continue
			}

			summary.Signals[s.Name()][signal.Type]++

			if callbacks.OnSignal != nil {
				if err := (*callbacks.OnSignal)(signal); err != nil {
					return summary, errors.Wrap(errors.ErrCodeCallbackFailed, "OnSignal callback failed", err)
				}
			}
		}

		if callbacks.OnProcessData != nil {
			if err := (*callbacks.OnProcessData)(summary.Bars, total); err != nil {
				return summary, errors.Wrap(errors.ErrCodeCallbackFailed, "OnProcessData callback failed", err)
			}
		}
	}

	e.log.Info("Scan finished",
		zap.String("symbol", symbol),
		zap.Int("bars", summary.Bars),
		zap.Int("errors", summary.Errors))

	return summary, nil
}

// loadStrategies resolves the registered strategies and the longest history any of them needs.
func (e *Evaluator) loadStrategies() ([]strategy.Strategy, int, error) {
	names := e.registry.ListStrategies()
	if len(names) == 0 {
		return nil, 0, errors.New(errors.ErrCodeNoStrategies, "no strategies registered")
	}

	strategies := make([]strategy.Strategy, 0, len(names))
	window := 0

	for _, name := range names {
		s, err := e.registry.GetStrategy(name)
		if err != nil {
			return nil, 0, err
		}

		strategies = append(strategies, s)
		window = max(window, s.RequiredBars())
	}

	return strategies, window, nil
}
