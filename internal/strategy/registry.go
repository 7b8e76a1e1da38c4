package strategy

import (
	"slices"
	"sync"

	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// StrategyRegistry manages the strategies an evaluator runs.
type StrategyRegistry interface {
	RegisterStrategy(strategy Strategy) error
	GetStrategy(name types.StrategyType) (Strategy, error)
	ListStrategies() []types.StrategyType
	RemoveStrategy(name types.StrategyType) error
}

// StrategyRegistryV1 is a StrategyRegistry safe for concurrent use.
type StrategyRegistryV1 struct {
	strategies map[types.StrategyType]Strategy
	mu         sync.RWMutex
}

// NewStrategyRegistry creates an empty strategy registry.
func NewStrategyRegistry() StrategyRegistry {
	return &StrategyRegistryV1{
		strategies: make(map[types.StrategyType]Strategy),
		mu:         sync.RWMutex{},
	}
}

// NewStrategyRegistryFromConfig builds and registers every strategy enabled in config.
func NewStrategyRegistryFromConfig(config Config) (StrategyRegistry, error) {
	registry := NewStrategyRegistry()

	for _, name := range config.Enabled {
		strategy, err := NewStrategy(name, config)
		if err != nil {
			return nil, err
		}

		if err := registry.RegisterStrategy(strategy); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

// NewStrategy builds the named strategy from its section of config.
func NewStrategy(name types.StrategyType, config Config) (Strategy, error) {
	var (
		strategy Strategy
		err      error
	)

	switch name {
	case types.StrategyTypeMeanReversion:
		strategy, err = asStrategy(NewMeanReversion(config.MeanReversion))
	case types.StrategyTypeTrendFollowing:
		strategy, err = asStrategy(NewTrendFollowing(config.TrendFollowing))
	case types.StrategyTypeVolatilityBreakout:
		strategy, err = asStrategy(NewVolatilityBreakout(config.VolatilityBreakout))
	case types.StrategyTypeMomentum:
		strategy, err = asStrategy(NewMomentum(config.Momentum))
	default:
		return nil, errors.Newf(errors.ErrCodeUnsupportedStrategy, "unsupported strategy %q", name)
	}

	if err != nil {
		return nil, err
	}

	return strategy, nil
}

// asStrategy drops the typed nil a failed constructor returns.
func asStrategy[T Strategy](s T, err error) (Strategy, error) {
	if err != nil {
		return nil, err
	}

	return s, nil
}

// RegisterStrategy adds a strategy to the registry.
func (r *StrategyRegistryV1) RegisterStrategy(strategy Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strategy.Name()
	if _, exists := r.strategies[name]; exists {
		return errors.Newf(errors.ErrCodeStrategyAlreadyExists, "RegisterStrategy: strategy with name %s already registered", name)
	}

	r.strategies[name] = strategy

	return nil
}

// GetStrategy retrieves a strategy by name.
func (r *StrategyRegistryV1) GetStrategy(name types.StrategyType) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.strategies[name]
	if !exists {
		return nil, errors.Newf(errors.ErrCodeStrategyNotFound, "GetStrategy: strategy with name %s not found", name)
	}

	return strategy, nil
}

// ListStrategies returns the registered strategy names in sorted order.
func (r *StrategyRegistryV1) ListStrategies() []types.StrategyType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]types.StrategyType, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// RemoveStrategy removes a strategy from the registry.
func (r *StrategyRegistryV1) RemoveStrategy(name types.StrategyType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; !exists {
		return errors.Newf(errors.ErrCodeStrategyNotFound, "RemoveStrategy: strategy with name %s not found", name)
	}

	delete(r.strategies, name)

	return nil
}
