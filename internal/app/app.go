package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/usersearch/internal/config"
	"github.com/five82/usersearch/internal/directory"
	"github.com/five82/usersearch/internal/logging"
	"github.com/five82/usersearch/internal/prefs"
	"github.com/five82/usersearch/internal/ui"
)

// Options configure a usersearch run. Non-empty fields override the config file.
type Options struct {
	ConfigPath string
	DataURL    string
	LogLevel   string
	Theme      string
	// SelectID pre-selects a user by id once the directory loads.
	SelectID string
	// PrefsPath overrides ~/.config/usersearch/prefs.toml.
	PrefsPath string
}

// Env is the set of collaborators shared by the TUI and the one-shot commands.
type Env struct {
	Config config.Config
	Logger *log.Logger
	Source directory.Fetcher

	closeLog func() error
}

// Open loads configuration, opens the log file, and builds the data source.
func Open(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closeLog, err := logging.New(logging.Options{
		Path:   cfg.LogFile,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	src, err := directory.NewSource(cfg.DataURL, cfg.RequestTimeout, logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init data source: %w", err)
	}

	return &Env{Config: cfg, Logger: logger, Source: src, closeLog: closeLog}, nil
}

// Close releases the log file.
func (e *Env) Close() error {
	if e == nil || e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Run boots the search TUI until the user quits or the context is cancelled,
// and returns the user selected during the session, if any.
func Run(ctx context.Context, opts Options) (*directory.User, error) {
	env, err := Open(opts)
	if err != nil {
		return nil, err
	}
	defer env.Close()

	env.Logger.Info("starting", "source", env.Config.DataURL, "theme", env.Config.Theme)

	saveTheme := func(name string) {
		if err := prefs.Save(opts.PrefsPath, prefs.Prefs{Theme: name}); err != nil {
			env.Logger.Warn("save prefs failed", "err", err)
		}
	}

	selected, err := ui.Run(ui.Options{
		Context:       ctx,
		Load:          Loader(env.Source, env.Logger),
		Logger:        env.Logger,
		ThemeName:     resolveTheme(env, opts),
		OnThemeChange: saveTheme,
		FilterDelay:   env.Config.FilterDebounce,
		HoverDelay:    env.Config.HoverDebounce,
		SelectID:      strings.TrimSpace(opts.SelectID),
	})
	if err != nil {
		return nil, fmt.Errorf("run ui: %w", err)
	}
	return selected, nil
}

// resolveTheme picks the --theme flag, then the remembered theme, then the
// configured one.
func resolveTheme(env *Env, opts Options) string {
	if strings.TrimSpace(opts.Theme) != "" {
		return env.Config.Theme
	}
	p, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		env.Logger.Warn("load prefs failed", "err", err)
	}
	if p.Theme != "" {
		return p.Theme
	}
	return env.Config.Theme
}

func applyOverrides(cfg *config.Config, opts Options) {
	if v := strings.TrimSpace(opts.DataURL); v != "" {
		cfg.DataURL = v
	}
	if v := strings.TrimSpace(opts.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(opts.Theme); v != "" {
		cfg.Theme = v
	}
}
