// Package config loads the settings of the osmoscan command from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-osmo/features"
	"github.com/cwbudde/algo-osmo/loader"
	"github.com/cwbudde/algo-osmo/peaks"
	"github.com/cwbudde/algo-osmo/report"
	"github.com/cwbudde/algo-osmo/scan"
)

// Config is the root of the configuration file.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Loader   LoaderConfig   `yaml:"loader"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// AnalysisConfig selects the analysis and its parameters.
type AnalysisConfig struct {
	Kind      string `yaml:"kind"`
	TieWindow int    `yaml:"tie_window"`
}

// LoaderConfig describes the export dialect.
type LoaderConfig struct {
	Delimiter    string `yaml:"delimiter"`
	DecimalComma bool   `yaml:"decimal_comma"`
}

// OutputConfig controls reports and charts.
type OutputConfig struct {
	Format  string `yaml:"format"`
	PlotDir string `yaml:"plot_dir,omitempty"`
}

// LogConfig sets the log verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{Kind: "osmo", TieWindow: peaks.DefaultTieWindow},
		Loader:   LoaderConfig{Delimiter: ";", DecimalComma: true},
		Output:   OutputConfig{Format: string(report.FormatJSON)},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := scan.ParseKind(c.Analysis.Kind); err != nil {
		return err
	}
	if c.Analysis.TieWindow < 0 {
		return fmt.Errorf("analysis.tie_window must be >= 0, got %d", c.Analysis.TieWindow)
	}
	if utf8.RuneCountInString(c.Loader.Delimiter) != 1 {
		return fmt.Errorf("loader.delimiter must be a single character, got %q", c.Loader.Delimiter)
	}
	if c.Loader.DecimalComma && c.Loader.Delimiter == "," {
		return errors.New("loader.delimiter ',' conflicts with loader.decimal_comma")
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// FeatureOptions returns the extraction options of c.
func (c Config) FeatureOptions() []features.Option {
	return []features.Option{features.WithTieWindow(c.Analysis.TieWindow)}
}

// LoaderOptions returns the parser options of c, logging to l.
func (c Config) LoaderOptions(l zerolog.Logger) []loader.Option {
	r, _ := utf8.DecodeRuneInString(c.Loader.Delimiter)
	return []loader.Option{
		loader.WithDelimiter(r),
		loader.WithDecimalComma(c.Loader.DecimalComma),
		loader.WithLogger(l),
	}
}
