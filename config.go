package collabkit

import (
	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/ygrebnov/collabkit/metrics"
)

// config holds dispatcher configuration.
type config struct {
	// logger receives one Error entry per failed handler invocation.
	// Default: zap.NewNop().
	logger *zap.Logger

	// recorder receives per-message dispatch observations.
	// Default: metrics.Noop{}.
	recorder metrics.Recorder
}

// defaultConfig centralizes default values for config.
func defaultConfig() config {
	return config{
		logger:   zap.NewNop(),
		recorder: metrics.NewNoop(),
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			return cfg, errorc.With(ErrInvalidOption, errorc.String("", "nil option"))
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Option configures a dispatcher. Options are applied by HandleMessages and
// return an error on invalid input instead of panicking.
type Option func(*config) error

// WithLogger sets the logger used to report handler failures.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			return errorc.With(ErrInvalidOption, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.logger = logger
		return nil
	}
}

// WithMetrics sets the recorder receiving dispatch observations.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(cfg *config) error {
		if recorder == nil {
			return errorc.With(ErrInvalidOption, errorc.String("", "WithMetrics requires a non-nil recorder"))
		}
		cfg.recorder = recorder
		return nil
	}
}
