package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kbukum/seqkit/config"
	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/server"
	"github.com/kbukum/seqkit/validation"
)

const (
	serviceName = "seqkit"
	envPrefix   = "SEQKIT"
)

// AppConfig is the full seqkit configuration. Every key can be overridden
// with a SEQKIT_ environment variable, e.g. SEQKIT_PIPELINE_FIB_TAKE=3.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Pipeline      PipelineConfig      `yaml:"pipeline" mapstructure:"pipeline"`
	Server        server.Config       `yaml:"server" mapstructure:"server"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// PipelineConfig bounds the demo pipelines.
type PipelineConfig struct {
	// BufferLimit caps the items a grouping stage holds. 0 disables the cap.
	BufferLimit int `yaml:"buffer_limit" mapstructure:"buffer_limit" validate:"gte=0"`
	// FibTake is the default number of Fibonacci values to emit. 0 emits
	// nothing.
	FibTake int `yaml:"fib_take" mapstructure:"fib_take" validate:"gte=0,lte=11"`
	// MaxLines caps the lines a single HTTP word count request may send. 0
	// disables the cap.
	MaxLines int `yaml:"max_lines" mapstructure:"max_lines" validate:"gte=0"`
}

// ObservabilityConfig turns on OTLP trace and metric export. A SampleRate
// of 0 samples nothing; a MetricInterval of 0 uses the SDK default.
type ObservabilityConfig struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	TLS            bool          `yaml:"tls" mapstructure:"tls"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval"`
}

// defaultAppConfig returns the defaults for settings where zero is a valid
// value. The loader decodes over it, so keys absent from the file and the
// environment keep these values and an explicit 0 is kept as 0.
func defaultAppConfig() AppConfig {
	return AppConfig{
		Pipeline: PipelineConfig{
			BufferLimit: 1 << 20,
			FibTake:     5,
			MaxLines:    10000,
		},
		Observability: ObservabilityConfig{
			Endpoint:       "localhost:4318",
			SampleRate:     1.0,
			MetricInterval: 15 * time.Second,
		},
	}
}

// ApplyDefaults fills the unset service and server fields.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Server.ApplyDefaults()
}

// Validate runs the struct tag checks and the section validators.
func (c *AppConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

// loadAppConfig starts from defaultAppConfig, decodes the config file and
// the environment over it, then fills the remaining defaults. A non-empty logLevel overrides logging.level.
func loadAppConfig(path, logLevel string) (*AppConfig, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, apperrors.InvalidConfig("file", fmt.Errorf("config file %s: %w", path, err))
		}
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg := defaultAppConfig()
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, apperrors.InvalidConfig("file", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.InvalidConfig(serviceName, err)
	}
	return &cfg, nil
}
