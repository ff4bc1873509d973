package inspector

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"shaderinspector/internal/config"
	"shaderinspector/internal/execx"
	"shaderinspector/internal/locator"
	"shaderinspector/internal/output"
	"shaderinspector/internal/shader"
)

// Settings is the configuration surface a Session reads on every compile.
// *config.Settings satisfies it.
type Settings interface {
	shader.Settings
	TabSize() int
	FontFamily() string
	FontSize() string
	CompileTimeout() time.Duration
	AddDeclarationsOnInteractive() bool
}

// CompilerLocator resolves a compiler name to an executable path.
type CompilerLocator interface {
	Locate(ctx context.Context, compiler string, d *shader.Declaration) (string, error)
}

// SessionConfig encapsulates everything a Session needs. Unset fields get
// working defaults in NewWithConfig.
type SessionConfig struct {
	Settings  Settings
	Locator   CompilerLocator
	Runner    execx.Runner
	Surfaces  output.Factory
	Publisher EventPublisher
	// StatePath persists the last request between processes when set.
	StatePath string
	// ResumeLast loads the request recorded at StatePath by an earlier process.
	// Long-lived hosts leave it off so repeat only sees their own compiles.
	ResumeLast bool
	// TempDir holds materialized untitled buffers. Defaults to os.TempDir().
	TempDir string
	Logger  *zerolog.Logger
}

// NewWithConfig constructs a Session from cfg.
func NewWithConfig(cfg SessionConfig) *Session {
	s := &Session{
		settings:  cfg.Settings,
		locator:   cfg.Locator,
		runner:    cfg.Runner,
		surfaces:  cfg.Surfaces,
		publisher: cfg.Publisher,
		statePath: cfg.StatePath,
		tempDir:   cfg.TempDir,
		log:       zerolog.Nop(),
		state:     StateIdle,
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	// Apply defaults if unset
	if s.settings == nil {
		s.settings = config.New(nil)
	}
	if s.locator == nil {
		s.locator = locator.New(locator.Config{Settings: s.settings, Logger: &s.log})
	}
	if s.runner == nil {
		s.runner = execx.ExecRunner{}
	}
	if s.surfaces == nil {
		s.surfaces = output.NewBoard().Open
	}
	if s.publisher == nil {
		s.publisher = noopPublisher{}
	}
	if s.tempDir == "" {
		s.tempDir = os.TempDir()
	}
	if cfg.ResumeLast {
		s.loadLast()
	}
	return s
}
