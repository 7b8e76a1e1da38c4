package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-signals/internal/datasource"
	"github.com/rxtech-lab/argo-signals/internal/engine"
	"github.com/rxtech-lab/argo-signals/internal/logger"
	"github.com/rxtech-lab/argo-signals/internal/strategy"
	"github.com/rxtech-lab/argo-signals/internal/types"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	schemaFileName = "strategy-config.schema.json"
	configFileName = "strategy-config.yaml"
)

// loadConfig reads --config when set, falls back to the defaults and applies --strategy.
func loadConfig(cmd *cli.Command) (strategy.Config, error) {
	config := strategy.DefaultConfig()

	if path := cmd.String("config"); path != "" {
		loaded, err := strategy.LoadConfig(path)
		if err != nil {
			return strategy.Config{}, err
		}

		config = loaded
	}

	if names := cmd.StringSlice("strategy"); len(names) > 0 {
		config.Enabled = make([]types.StrategyType, 0, len(names))
		for _, name := range names {
			config.Enabled = append(config.Enabled, types.StrategyType(name))
		}

		if err := config.Validate(); err != nil {
			return strategy.Config{}, err
		}
	}

	return config, nil
}

// newEvaluator wires the data file, the configured strategies and the logger into an evaluator.
// The returned cleanup closes the data source and flushes the logger.
func newEvaluator(cmd *cli.Command) (*engine.Evaluator, func(), error) {
	log, err := logger.NewCLILogger(cmd.String("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	config, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	registry, err := strategy.NewStrategyRegistryFromConfig(config)
	if err != nil {
		return nil, nil, err
	}

	ds, err := datasource.NewDataSource(":memory:", log)
	if err != nil {
		return nil, nil, err
	}

	if err := ds.Initialize(cmd.String("data")); err != nil {
		_ = ds.Close()

		return nil, nil, err
	}

	names := make([]string, 0, len(config.Enabled))
	for _, name := range registry.ListStrategies() {
		names = append(names, string(name))
	}

	log.Debug("Evaluator ready",
		zap.String("data", cmd.String("data")),
		zap.Strings("strategies", names))

	cleanup := func() {
		_ = ds.Close()
		_ = log.Sync()
	}

	return engine.NewEvaluator(ds, registry, log), cleanup, nil
}

type evaluationOutput struct {
	engine.Evaluation
	Errors map[types.StrategyType]string `json:"errors,omitempty"`
}

func evaluateAction(ctx context.Context, cmd *cli.Command) error {
	evaluator, cleanup, err := newEvaluator(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	at := optional.None[time.Time]()
	if cmd.IsSet("at") {
		at = optional.Some(cmd.Timestamp("at"))
	}

	evaluation, err := evaluator.Evaluate(ctx, cmd.String("symbol"), at)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		output := evaluationOutput{Evaluation: evaluation, Errors: make(map[types.StrategyType]string, len(evaluation.Errors))}
		for name, evalErr := range evaluation.Errors {
			output.Errors[name] = evalErr.Error()
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(output)
	}

	fmt.Println(RenderEvaluation(evaluation))

	return nil
}

func scanAction(ctx context.Context, cmd *cli.Command) error {
	evaluator, cleanup, err := newEvaluator(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	symbol := cmd.String("symbol")
	onlyActions := cmd.Bool("only-actions")

	onSignal := engine.OnSignalCallback(func(signal types.Signal) error {
		if onlyActions && !signal.Type.IsAction() {
			return nil
		}

		_, err := fmt.Println(RenderSignalLine(signal))

		return err
	})

	callbacks := engine.ScanCallbacks{OnSignal: &onSignal}

	if !cmd.Bool("no-progress") {
		var bar *progressbar.ProgressBar

		onProcessData := engine.OnProcessDataCallback(func(current int, total int) error {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("scanning "+symbol),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			return bar.Set(current)
		})
		callbacks.OnProcessData = &onProcessData

		defer func() {
			if bar != nil {
				_ = bar.Finish()
			}
		}()
	}

	summary, err := evaluator.Scan(ctx, symbol, callbacks)
	if err != nil {
		return err
	}

	fmt.Println(RenderSummary(symbol, summary))

	return nil
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	schemaJSON, err := strategy.GenerateSchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	dir := cmd.String("output")
	if dir == "" {
		fmt.Println(schemaJSON)

		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	schemaPath := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaPath, []byte(schemaJSON), 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	fmt.Println(HelpStyle.Render("Schema written to " + schemaPath))

	// write a sample config only if there is none yet
	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		yamlBytes, err := strategy.DefaultConfig().ToYAML(schemaFileName)
		if err != nil {
			return err
		}

		if err := os.WriteFile(configPath, yamlBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write sample config: %w", err)
		}

		fmt.Println(HelpStyle.Render("Sample config written to " + configPath))
	}

	return nil
}

func versionAction(_ context.Context, _ *cli.Command) error {
	fmt.Println(version.GetVersion())

	return nil
}
