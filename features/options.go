package features

import "github.com/cwbudde/algo-osmo/peaks"

// Config defines extraction settings.
type Config struct {
	// TieWindow is the half-width, in samples, searched for equal-valued
	// samples around the first peak and the valley. Equal maxima are
	// resolved over the whole curve.
	TieWindow int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used for Lorrca osmoscans.
func DefaultConfig() Config {
	return Config{
		TieWindow: peaks.DefaultTieWindow,
	}
}

// WithTieWindow sets the tie-break half-width. Negative values are ignored.
func WithTieWindow(samples int) Option {
	return func(cfg *Config) {
		if samples >= 0 {
			cfg.TieWindow = samples
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
