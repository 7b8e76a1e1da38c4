package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps the zap logger used across argo-signals.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a production logger at info level writing to stdout.
func NewLogger() (*Logger, error) {
	return NewLoggerWithLevel(zapcore.InfoLevel)
}

// NewLoggerWithLevel creates a production logger at the given level writing to stdout.
func NewLoggerWithLevel(level zapcore.Level) (*Logger, error) {
	return build(level, []string{"stdout"})
}

// NewCLILogger creates a logger that writes to stderr so signal output on stdout stays clean.
func NewCLILogger(level string) (*Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return build(parsed, []string{"stderr"})
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func build(level zapcore.Level, outputs []string) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = outputs
	config.ErrorOutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := config.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{
		Logger: zapLogger,
	}, nil
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	if l.Logger != nil {
		return l.Logger.Sync()
	}

	return nil
}
