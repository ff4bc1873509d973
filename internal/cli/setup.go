package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"shaderinspector/internal/common/fsutil"
	"shaderinspector/internal/config"
	"shaderinspector/internal/inspector"
	"shaderinspector/internal/locator"
	"shaderinspector/internal/output"
)

// app is the per-invocation wiring shared by commands.
type app struct {
	cfg      *Config
	settings *config.Settings
	log      zerolog.Logger
	locator  *locator.Locator
}

func newApp(cfg *Config, errOut io.Writer) (*app, error) {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", cfg.EnvFile, err)
		}
	}
	a := &app{cfg: cfg, log: newLogger(cfg, errOut)}

	path := cfg.ConfigPath
	if path == "" {
		path = findSettingsFile()
	}
	if path != "" {
		expanded, err := fsutil.ExpandHome(path)
		if err != nil {
			return nil, err
		}
		s, err := config.Load(expanded)
		if err != nil {
			return nil, err
		}
		a.settings = s
		a.log.Debug().Str("path", expanded).Msg("settings loaded")
	} else {
		a.settings = config.New(nil)
	}

	a.locator = locator.New(locator.Config{Settings: a.settings, Probe: fnProbe, Logger: &a.log})
	return a, nil
}

func newLogger(cfg *Config, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		lvl = zerolog.WarnLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// findSettingsFile looks for settings.{yaml,yml,json,toml} in the user config dir.
func findSettingsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, ext := range []string{".yaml", ".yml", ".json", ".toml"} {
		p := filepath.Join(dir, config.Namespace, "settings"+ext)
		if fsutil.IsFile(p) {
			return p
		}
	}
	return ""
}

// statePath resolves where the last compile request is persisted.
func (a *app) statePath() string {
	if a.cfg.StateFile != "" {
		if p, err := fsutil.ExpandHome(a.cfg.StateFile); err == nil {
			return p
		}
		return a.cfg.StateFile
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, config.Namespace, "last.json")
}

// stateMode controls how a session uses the state file.
type stateMode int

const (
	stateOff    stateMode = iota
	stateRecord           // write each compile for a later repeat
	stateResume           // also load the compile recorded by an earlier run
)

func (a *app) session(surfaces output.Factory, mode stateMode) *inspector.Session {
	cfg := inspector.SessionConfig{
		Settings: a.settings,
		Locator:  a.locator,
		Runner:   fnRunner,
		Surfaces: surfaces,
		Logger:   &a.log,
	}
	if mode != stateOff {
		cfg.StatePath = a.statePath()
		cfg.ResumeLast = mode == stateResume
	}
	return inspector.NewWithConfig(cfg)
}
