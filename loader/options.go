package loader

import "github.com/rs/zerolog"

// Config defines parser settings.
type Config struct {
	// Delimiter separates cells. Lorrca exports use ';'.
	Delimiter rune
	// DecimalComma accepts ',' as the decimal separator.
	DecimalComma bool
	// Logger receives warnings about skipped rows and unparsable cells.
	Logger zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings of a Lorrca export.
func DefaultConfig() Config {
	return Config{
		Delimiter:    ';',
		DecimalComma: true,
		Logger:       zerolog.Nop(),
	}
}

// WithDelimiter sets the cell separator. Zero, '\r', '\n' and '"' are
// ignored.
func WithDelimiter(r rune) Option {
	return func(cfg *Config) {
		switch r {
		case 0, '\r', '\n', '"':
			return
		}
		cfg.Delimiter = r
	}
}

// WithDecimalComma toggles ',' as the decimal separator.
func WithDecimalComma(enabled bool) Option {
	return func(cfg *Config) {
		cfg.DecimalComma = enabled
	}
}

// WithLogger sets the warning logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
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
