package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

type pipelineSection struct {
	BufferLimit int `mapstructure:"buffer_limit"`
	FibTake     int `mapstructure:"fib_take"`
}

type testConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Pipeline      pipelineSection `mapstructure:"pipeline"`
}

func TestServiceConfigApplyDefaults(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		var cfg ServiceConfig
		cfg.ApplyDefaults()
		if cfg.Name != "seqkit" {
			t.Errorf("expected name 'seqkit', got %q", cfg.Name)
		}
		if cfg.Environment != "development" {
			t.Errorf("expected 'development', got %q", cfg.Environment)
		}
		if !cfg.Debug {
			t.Error("expected debug=true for development")
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("expected debug logging in development, got %q", cfg.Logging.Level)
		}
	})

	t.Run("production keeps debug false", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc", Environment: "production"}
		cfg.ApplyDefaults()
		if cfg.Debug {
			t.Error("expected debug=false for production")
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("expected info logging, got %q", cfg.Logging.Level)
		}
	})

	t.Run("explicit level survives development", func(t *testing.T) {
		cfg := ServiceConfig{Name: "svc"}
		cfg.Logging.Level = "warn"
		cfg.ApplyDefaults()
		if cfg.Logging.Level != "warn" {
			t.Errorf("expected warn, got %q", cfg.Logging.Level)
		}
	})
}

func TestServiceConfigValidate(t *testing.T) {
	valid := func(env string) ServiceConfig {
		c := ServiceConfig{Name: "svc", Environment: env}
		c.Logging.ApplyDefaults()
		return c
	}
	badLogging := valid("staging")
	badLogging.Logging.Format = "xml"

	tests := []struct {
		name    string
		cfg     ServiceConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", valid("development"), false, ""},
		{"valid staging", valid("staging"), false, ""},
		{"valid production", valid("production"), false, ""},
		{"missing name", ServiceConfig{Environment: "production"}, true, "config.name is required"},
		{"invalid environment", valid("qa"), true, "config.environment must be one of"},
		{"invalid logging", badLogging, true, "config.logging"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")

	yamlContent := `
name: seqkit-test
environment: staging
logging:
  level: warn
  format: json
pipeline:
  buffer_limit: 1000
  fib_take: 7
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("seqkit", &cfg, WithConfigFile(configPath), WithEnvPrefix("SEQKIT_TEST_NONE")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Name != "seqkit-test" {
		t.Errorf("expected name 'seqkit-test', got %q", cfg.Name)
	}
	if cfg.Environment != "staging" {
		t.Errorf("expected environment 'staging', got %q", cfg.Environment)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging section: %+v", cfg.Logging)
	}
	if cfg.Pipeline.BufferLimit != 1000 || cfg.Pipeline.FibTake != 7 {
		t.Errorf("unexpected pipeline section: %+v", cfg.Pipeline)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("pipeline:\n  fib_take: 5\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("SEQKITTEST_PIPELINE_FIB_TAKE", "12")

	var cfg testConfig
	if err := LoadConfig("seqkit", &cfg, WithConfigFile(configPath), WithEnvPrefix("seqkittest")); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Pipeline.FibTake != 12 {
		t.Errorf("expected env override 12, got %d", cfg.Pipeline.FibTake)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SEQKITENV_PIPELINE_BUFFER_LIMIT=64\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("SEQKITENV_PIPELINE_BUFFER_LIMIT") })

	var cfg testConfig
	err := LoadConfig("seqkit", &cfg,
		WithConfigFile(filepath.Join(dir, "missing.yml")),
		WithEnvFile(envPath),
		WithEnvPrefix("SEQKITENV"),
	)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Pipeline.BufferLimit != 64 {
		t.Errorf("expected buffer limit from .env, got %d", cfg.Pipeline.BufferLimit)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg testConfig
	err := LoadConfig("nonexistent-service", &cfg,
		WithConfigFile("/nonexistent/path.yml"),
		WithEnvPrefix("SEQKIT_TEST_NONE"),
	)
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("pipeline: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg testConfig
	if err := LoadConfig("seqkit", &cfg, WithConfigFile(configPath)); err == nil {
		t.Fatal("expected parse error")
	}
}

type mockFS struct {
	files   map[string]bool
	envErr  error
	envSeen []string
}

func (m *mockFS) Exists(path string) bool { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error {
	m.envSeen = append(m.envSeen, path)
	return m.envErr
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./cmd/seqkit/config.yml": true,
		"./config.yml":            true,
		"./.env":                  true,
	}}
	resolver := &Resolver{FileSystem: fs}

	files := resolver.ResolveFiles("seqkit", LoaderConfig{})
	if files.ConfigFile != "./cmd/seqkit/config.yml" {
		t.Errorf("expected cmd config first, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected root .env, got %q", files.EnvFile)
	}

	files = resolver.ResolveFiles("seqkit", LoaderConfig{ConfigFile: "/explicit.yml"})
	if files.ConfigFile != "/explicit.yml" {
		t.Errorf("explicit path should win, got %q", files.ConfigFile)
	}

	files = (&Resolver{FileSystem: &mockFS{}}).ResolveFiles("seqkit", LoaderConfig{})
	if files.ConfigFile != "" || files.EnvFile != "" {
		t.Errorf("expected nothing resolved, got %+v", files)
	}
}

func TestLoadConfigEnvFileErrorIsNotFatal(t *testing.T) {
	fs := &mockFS{
		files:  map[string]bool{"./.env": true},
		envErr: errors.New("permission denied"),
	}
	var cfg testConfig
	if err := LoadConfig("seqkit", &cfg, WithFileSystem(fs), WithEnvPrefix("SEQKIT_TEST_NONE")); err != nil {
		t.Fatalf("env file errors should only warn, got %v", err)
	}
	if len(fs.envSeen) != 1 || fs.envSeen[0] != "./.env" {
		t.Errorf("expected .env to be attempted, got %v", fs.envSeen)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	got := envKeyVariants("PIPELINE_BUFFER_LIMIT")
	for _, want := range []string{
		"pipeline_buffer_limit",
		"pipeline.buffer.limit",
		"pipeline.buffer_limit",
		"pipeline_buffer.limit",
	} {
		if !slices.Contains(got, want) {
			t.Errorf("expected variant %q in %v", want, got)
		}
	}
	if got := envKeyVariants("NAME"); len(got) != 1 || got[0] != "name" {
		t.Errorf("unexpected single-part variants: %v", got)
	}
}

func TestBindEnvPrefix(t *testing.T) {
	v := viper.New()
	bindEnv(v, []string{"APP_NAME=demo", "OTHER_NAME=ignored", "broken"}, "APP")
	if v.GetString("name") != "demo" {
		t.Errorf("expected prefixed variable bound, got %q", v.GetString("name"))
	}
	if v.IsSet("other_name") {
		t.Error("expected variable without prefix to be skipped")
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("seqkit")(&lc)

	if lc.FileSystem == nil {
		t.Error("expected FileSystem to be set")
	}
	if lc.ConfigFile != "/path/to/config.yml" {
		t.Errorf("expected config file path, got %q", lc.ConfigFile)
	}
	if lc.EnvFile != "/path/to/.env" {
		t.Errorf("expected env file path, got %q", lc.EnvFile)
	}
	if lc.EnvPrefix != "SEQKIT" {
		t.Errorf("expected upper-cased prefix, got %q", lc.EnvPrefix)
	}
}
