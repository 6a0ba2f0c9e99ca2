package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the resolved usersearch settings.
type Config struct {
	DataURL        string
	RequestTimeout time.Duration
	FilterDebounce time.Duration
	HoverDebounce  time.Duration
	Theme          string
	LogFile        string
	LogLevel       string
	LogFormat      string
}

const (
	defaultConfigPath     = "~/.config/usersearch/config.toml"
	defaultLogFile        = "~/.local/state/usersearch/usersearch.log"
	defaultDataURL        = "https://fe-take-home-assignment.s3.us-east-2.amazonaws.com/Data.json"
	defaultRequestTimeout = 10 * time.Second
	defaultFilterDebounce = 150
	defaultHoverDebounce  = 50
	defaultTheme          = "Nightfox"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

// Environment variables that override file values.
const (
	EnvDataURL  = "USERSEARCH_DATA_URL"
	EnvLogLevel = "USERSEARCH_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		DataURL:        defaultDataURL,
		RequestTimeout: defaultRequestTimeout,
		FilterDebounce: defaultFilterDebounce * time.Millisecond,
		HoverDebounce:  defaultHoverDebounce * time.Millisecond,
		Theme:          defaultTheme,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
	}
}

// Load locates and parses the usersearch config, falling back to defaults when missing.
// Environment overrides are applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataURL          string  `toml:"data_url"`
		RequestTimeout   string  `toml:"request_timeout"`
		FilterDebounceMS *int    `toml:"filter_debounce_ms"`
		HoverDebounceMS  *int    `toml:"hover_debounce_ms"`
		Theme            string  `toml:"theme"`
		LogFile          *string `toml:"log_file"`
		LogLevel         string  `toml:"log_level"`
		LogFormat        string  `toml:"log_format"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataURL); v != "" {
		cfg.DataURL = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.FilterDebounceMS != nil && *raw.FilterDebounceMS > 0 {
		cfg.FilterDebounce = time.Duration(*raw.FilterDebounceMS) * time.Millisecond
	}
	if raw.HoverDebounceMS != nil && *raw.HoverDebounceMS > 0 {
		cfg.HoverDebounce = time.Duration(*raw.HoverDebounceMS) * time.Millisecond
	}
	if v := strings.TrimSpace(raw.Theme); v != "" {
		cfg.Theme = v
	}
	// An explicit empty log_file disables logging.
	if raw.LogFile != nil {
		cfg.LogFile = ""
		if v := strings.TrimSpace(*raw.LogFile); v != "" {
			cfg.LogFile = mustExpand(v)
		}
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.LogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvDataURL)); v != "" {
		cfg.DataURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

// DefaultPath returns the expanded default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
