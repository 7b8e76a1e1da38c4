package mocks

//go:generate mockgen -destination=./mock_datasource.go -package=mocks github.com/rxtech-lab/argo-signals/internal/datasource DataSource
//go:generate mockgen -destination=./mock_strategy.go -package=mocks github.com/rxtech-lab/argo-signals/internal/strategy Strategy
//go:generate mockgen -destination=./mock_strategy_registry.go -package=mocks github.com/rxtech-lab/argo-signals/internal/strategy StrategyRegistry
