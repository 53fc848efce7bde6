// Package config provides the layered configuration loader for errdex.
// Values resolve as defaults, then the optional YAML file, then ERRDEX_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.errdex.dev/errdex/internal/core/domain"
	"go.errdex.dev/errdex/internal/core/ports"
)

const (
	// EnvPrefix is prepended to every environment override.
	EnvPrefix = "ERRDEX_"

	// ConfigPathEnvVar overrides the configuration file location.
	ConfigPathEnvVar = "ERRDEX_CONFIG"

	// DefaultSearchTool is the metadata search binary.
	DefaultSearchTool = "mdfind"

	// DefaultSearchTimeout bounds a single metadata search run.
	DefaultSearchTimeout = 30 * time.Second

	// DefaultWatchDebounce is the quiet window for watch-triggered refreshes.
	DefaultWatchDebounce = 500 * time.Millisecond
)

// Duration is a time.Duration that unmarshals from human-readable strings
// ("6h", "500ms") in YAML documents and environment variables.
type Duration time.Duration

func (d Duration) String() string { return time.Duration(d).String() }

// UnmarshalText implements encoding.TextUnmarshaler for environment parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(raw))
}

// Config holds all configuration for errdex.
type Config struct {
	CacheDir         string   `yaml:"cache_dir" env:"CACHE_DIR"`
	MaxAge           Duration `yaml:"max_age" env:"MAX_AGE"`
	RerunInterval    Duration `yaml:"rerun_interval" env:"RERUN_INTERVAL"`
	SearchRoot       string   `yaml:"search_root" env:"SEARCH_ROOT" validate:"required"`
	SearchTool       string   `yaml:"search_tool" env:"SEARCH_TOOL" validate:"required"`
	SearchTimeout    Duration `yaml:"search_timeout" env:"SEARCH_TIMEOUT"`
	KernReturnHeader string   `yaml:"kern_return_header" env:"KERN_RETURN_HEADER"`
	ErrnoHeader      string   `yaml:"errno_header" env:"ERRNO_HEADER"`
	ReleaseURL       string   `yaml:"release_url" env:"RELEASE_URL"`
	LogLevel         string   `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat        string   `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=pretty json"`
	WatchDebounce    Duration `yaml:"watch_debounce" env:"WATCH_DEBOUNCE"`
	Output           string   `yaml:"output" env:"OUTPUT" validate:"oneof=auto feedback text"`
}

// Default returns the built-in configuration. CacheDir is left empty and
// resolved against the user cache root during Load.
func Default() Config {
	return Config{
		MaxAge:           Duration(domain.FreshnessThreshold),
		RerunInterval:    Duration(domain.DefaultRerunInterval),
		SearchRoot:       domain.SearchRootPath,
		SearchTool:       DefaultSearchTool,
		SearchTimeout:    Duration(DefaultSearchTimeout),
		KernReturnHeader: domain.KernReturnHeaderPath,
		ErrnoHeader:      domain.ErrnoHeaderPath,
		LogLevel:         "info",
		LogFormat:        "pretty",
		WatchDebounce:    Duration(DefaultWatchDebounce),
		Output:           "auto",
	}
}

// Loader assembles a Config from defaults, file, and environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the effective configuration. A missing file at the default
// location is fine; a missing file at an explicit ERRDEX_CONFIG path is not.
func (l *Loader) Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if err := l.applyFile(&cfg); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if err := l.finalize(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l *Loader) applyFile(cfg *Config) error {
	path := os.Getenv(ConfigPathEnvVar)
	explicit := path != ""

	if !explicit {
		defaultPath, err := domain.DefaultConfigPath()
		if err != nil {
			l.Logger.Debug("no user config directory, skipping config file", "reason", err.Error())
			return nil
		}
		path = defaultPath
	}

	// #nosec G304 -- path comes from the user's own environment
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.Logger.Debug("loaded config file", "path", path)
	return nil
}

func (l *Loader) finalize(cfg *Config) error {
	if cfg.CacheDir == "" {
		dir, err := domain.DefaultCacheDir()
		if err != nil {
			return zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
		cfg.CacheDir = dir
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return zerr.Wrap(formatValidationError(err), domain.ErrConfigInvalid.Error())
	}

	if time.Duration(cfg.MaxAge) <= 0 {
		return zerr.With(domain.ErrConfigInvalid, "max_age", cfg.MaxAge.String())
	}
	if time.Duration(cfg.SearchTimeout) <= 0 {
		return zerr.With(domain.ErrConfigInvalid, "search_timeout", cfg.SearchTimeout.String())
	}
	if time.Duration(cfg.WatchDebounce) < 0 {
		return zerr.With(domain.ErrConfigInvalid, "watch_debounce", cfg.WatchDebounce.String())
	}

	rerun := time.Duration(cfg.RerunInterval)
	if rerun < domain.MinRerunInterval || rerun > domain.MaxRerunInterval {
		err := zerr.With(domain.ErrConfigInvalid, "rerun_interval", rerun.String())
		err = zerr.With(err, "bounds", fmt.Sprintf("[%s, %s]", domain.MinRerunInterval, domain.MaxRerunInterval))
		return err
	}

	return nil
}

// formatValidationError formats validation errors into readable messages.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "oneof":
				messages = append(messages, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s failed validation: %s", e.Field(), e.Tag()))
			}
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}
