package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"

	"wordwatch/internal/watcher"
)

type Config struct {
	Env   string      `yaml:"env" env-default:"local" env:"ENV"`
	Watch WatchConfig `yaml:"watch"`
}

type WatchConfig struct {
	Path            string        `yaml:"path" env:"WATCH_PATH"`
	Delimiter       string        `yaml:"delimiter" env:"WATCH_DELIMITER" env-default:","`
	SkipEmptyTokens bool          `yaml:"skip_empty_tokens" env:"WATCH_SKIP_EMPTY_TOKENS" env-default:"false"`
	Debounce        time.Duration `yaml:"debounce" env:"WATCH_DEBOUNCE" env-default:"0s"`
	ReadAttempts    int           `yaml:"read_attempts" env:"WATCH_READ_ATTEMPTS" env-default:"3"`
	RetryInterval   time.Duration `yaml:"retry_interval" env:"WATCH_RETRY_INTERVAL" env-default:"50ms"`
	ErrorBuffer     int           `yaml:"error_buffer" env:"WATCH_ERROR_BUFFER" env-default:"100"`
}

var ErrInvalidDelimiter = errors.New("delimiter must be a single character")

// Load reads configPath when it is set, otherwise only the environment.
// Priority: env > file > default.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	} else {
		// check if file exists
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s: %w", configPath, err)
		}
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	if err := cfg.Watch.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}

func (w WatchConfig) Validate() error {
	if utf8.RuneCountInString(w.Delimiter) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, w.Delimiter)
	}
	return nil
}

func (w WatchConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(w.Delimiter)
	return r
}

// WatcherConfig maps the file configuration onto watcher.Config.
func (c *Config) WatcherConfig(logger *slog.Logger) watcher.Config {
	return watcher.Config{
		Delimiter:        c.Watch.DelimiterRune(),
		SkipEmptyTokens:  c.Watch.SkipEmptyTokens,
		DebounceDuration: c.Watch.Debounce,
		ErrorBufferSize:  c.Watch.ErrorBuffer,
		ReadAttempts:     c.Watch.ReadAttempts,
		RetryInterval:    c.Watch.RetryInterval,
		Logger:           logger,
	}
}

// EnvConfigPath returns CONFIG_PATH; the --config flag takes priority over it.
func EnvConfigPath() string {
	return os.Getenv("CONFIG_PATH")
}
