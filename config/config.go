package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairing/pair"
	"github.com/katalvlaran/pairing/report"
	"github.com/katalvlaran/pairing/search"
)

// DefaultPath is the file read when no --config flag is given.
const DefaultPath = "pairing.yaml"

// Environment variables consulted by Load.
const (
	EnvSum           = "PAIRING_SUM"
	EnvCollectOthers = "PAIRING_COLLECT_OTHERS"
	EnvLogLevel      = "PAIRING_LOG_LEVEL"
)

var (
	// ErrInvalidSum indicates a negative or non-finite sum.
	ErrInvalidSum = errors.New("config: invalid sum")

	// ErrInvalidMaxRounds indicates max_rounds < 1.
	ErrInvalidMaxRounds = errors.New("config: max_rounds must be at least 1")

	// ErrInvalidTolerance indicates a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("config: invalid tolerance")

	// ErrInvalidOtherLimit indicates a negative other_limit.
	ErrInvalidOtherLimit = errors.New("config: other_limit must not be negative")

	// ErrInvalidLogging indicates an unknown log level or format.
	ErrInvalidLogging = errors.New("config: invalid logging settings")

	// ErrInvalidEnv indicates an environment override that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment override")
)

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"json", "text"}

// Config holds every setting of the pairing command.
type Config struct {
	Sum           float64 `yaml:"sum"`
	CollectOthers bool    `yaml:"collect_others"`
	MaxRounds     int     `yaml:"max_rounds"`
	Tolerance     float64 `yaml:"tolerance"`
	OtherLimit    int     `yaml:"other_limit"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Sum:           pair.DefaultSum,
		CollectOthers: true,
		MaxRounds:     search.DefaultMaxRounds,
		Tolerance:     pair.MinimumPrecision,
		OtherLimit:    report.DefaultOtherLimit,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSum); v != "" {
		sum, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvSum, v)
		}
		c.Sum = sum
	}
	if v := os.Getenv(EnvCollectOthers); v != "" {
		collect, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvCollectOthers, v)
		}
		c.CollectOthers = collect
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Sum < 0 || math.IsNaN(c.Sum) || math.IsInf(c.Sum, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSum, c.Sum)
	}
	if c.MaxRounds < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxRounds, c.MaxRounds)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, c.Tolerance)
	}
	if c.OtherLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOtherLimit, c.OtherLimit)
	}
	if _, err := zap.ParseAtomicLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: level %q", ErrInvalidLogging, c.Logging.Level)
	}

	validFormat := false
	for _, f := range ValidLogFormats {
		if c.Logging.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("%w: format %q (valid: %v)", ErrInvalidLogging, c.Logging.Format, ValidLogFormats)
	}

	return nil
}

// SearchOptions translates the configuration into search options.
func (c *Config) SearchOptions(logger *zap.Logger) []search.Option {
	return []search.Option{
		search.WithCollectOthers(c.CollectOthers),
		search.WithMaxRounds(c.MaxRounds),
		search.WithTolerance(c.Tolerance),
		search.WithLogger(logger),
	}
}

// ReportOptions translates the configuration into report options.
func (c *Config) ReportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.OtherLimit = c.OtherLimit

	return opts
}
